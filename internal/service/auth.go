package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/journalapp/journal/internal/apperror"
	"github.com/journalapp/journal/internal/metrics"
	"github.com/journalapp/journal/internal/model"
	"github.com/journalapp/journal/internal/repository"
)

// UserStore persists user accounts.
type UserStore interface {
	CreateUser(ctx context.Context, username, hashedPassword string) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
}

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(encodedHash, password string) (bool, error)
}

// TokenSigner issues session tokens.
type TokenSigner interface {
	Sign(id model.Identity) (string, error)
}

// Session is the result of a successful sign-in.
type Session struct {
	Token string
	User  model.Identity
}

// AccountService handles sign-up and sign-in.
type AccountService struct {
	users   UserStore
	hasher  PasswordHasher
	signer  TokenSigner
	metrics metrics.Recorder
}

// NewAccountService creates a new AccountService.
func NewAccountService(users UserStore, hasher PasswordHasher, signer TokenSigner, recorder metrics.Recorder) *AccountService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &AccountService{
		users:   users,
		hasher:  hasher,
		signer:  signer,
		metrics: recorder,
	}
}

// SignUp creates a user with a hashed password.
func (s *AccountService) SignUp(ctx context.Context, creds Credentials) (*model.User, error) {
	if !credentialsPresent(creds) {
		s.metrics.IncSignUp(metrics.StatusFailed)
		return nil, apperror.Validation(MsgCredentialsNeeded)
	}

	hashed, err := s.hasher.Hash(creds.Password)
	if err != nil {
		return nil, apperror.Unexpected(fmt.Errorf("hash password: %w", err))
	}

	user, err := s.users.CreateUser(ctx, creds.Username, hashed)
	if err != nil {
		s.metrics.IncSignUp(metrics.StatusFailed)
		if errors.Is(err, repository.ErrUsernameExists) {
			return nil, apperror.Conflict("username already exists")
		}
		return nil, apperror.Unexpected(err)
	}

	s.metrics.IncSignUp(metrics.StatusSuccess)
	return user, nil
}

// SignIn verifies credentials and issues a session token.
// Unknown users and wrong passwords produce the same error.
func (s *AccountService) SignIn(ctx context.Context, creds Credentials) (*Session, error) {
	if !credentialsPresent(creds) {
		s.metrics.IncSignIn(metrics.StatusFailed)
		return nil, apperror.Authentication(MsgInvalidLogin)
	}

	user, err := s.users.GetUserByUsername(ctx, creds.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			s.metrics.IncSignIn(metrics.StatusFailed)
			return nil, apperror.Authentication(MsgInvalidLogin)
		}
		return nil, apperror.Unexpected(err)
	}

	ok, err := s.hasher.Verify(user.HashedPassword, creds.Password)
	if err != nil {
		return nil, apperror.Unexpected(fmt.Errorf("verify password: %w", err))
	}
	if !ok {
		s.metrics.IncSignIn(metrics.StatusFailed)
		return nil, apperror.Authentication(MsgInvalidLogin)
	}

	identity := user.Identity()
	token, err := s.signer.Sign(identity)
	if err != nil {
		return nil, apperror.Unexpected(fmt.Errorf("sign token: %w", err))
	}

	s.metrics.IncSignIn(metrics.StatusSuccess)
	return &Session{Token: token, User: identity}, nil
}
