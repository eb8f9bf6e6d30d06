package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/journalapp/journal/internal/model"
)

var (
	// ErrMissingSecret is returned when no signing secret is configured.
	ErrMissingSecret = errors.New("token secret is not configured")
	// ErrInvalidToken covers every token verification failure.
	ErrInvalidToken = errors.New("invalid token")
)

// sessionClaims is the JWT payload of a session token.
type sessionClaims struct {
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Signer issues and verifies HS256 session tokens with a process-wide secret.
type Signer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewSigner creates a Signer. A zero ttl issues tokens without expiry.
func NewSigner(secret string, ttl time.Duration) (*Signer, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}
	return &Signer{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// Sign issues a token asserting the identity.
func (s *Signer) Sign(id model.Identity) (string, error) {
	now := s.now()
	claims := sessionClaims{
		UserID:   id.UserID,
		Username: id.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if s.ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(s.ttl))
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return token, nil
}

// Verify checks the token signature and expiry and returns the asserted identity.
// Every failure is reported as ErrInvalidToken.
func (s *Signer) Verify(token string) (model.Identity, error) {
	claims := &sessionClaims{}

	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !parsed.Valid {
		return model.Identity{}, ErrInvalidToken
	}

	if claims.UserID <= 0 || claims.Username == "" {
		return model.Identity{}, ErrInvalidToken
	}

	return model.Identity{UserID: claims.UserID, Username: claims.Username}, nil
}
