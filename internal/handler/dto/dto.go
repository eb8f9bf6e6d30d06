// Package dto provides Data Transfer Objects for API requests and responses.
package dto

import (
	"time"

	"github.com/journalapp/journal/internal/model"
)

// CredentialsRequest is the body of sign-up and sign-in.
type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// EntryRequest is the body of entry create and update.
// A userId sent by the client is not part of the contract and is ignored.
type EntryRequest struct {
	Title    string `json:"title"`
	Notes    string `json:"notes"`
	PhotoURL string `json:"photoUrl"`
}

// UserResponse represents a newly created user.
type UserResponse struct {
	UserID    int64     `json:"userId"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToUserResponse converts a user, dropping the password hash.
func ToUserResponse(u *model.User) UserResponse {
	return UserResponse{UserID: u.ID, Username: u.Username, CreatedAt: u.CreatedAt}
}

// SignInResponse carries the session token and the identity it asserts.
type SignInResponse struct {
	Token string         `json:"token"`
	User  model.Identity `json:"user"`
}

// ErrorResponse is the body of every error response.
type ErrorResponse struct {
	Error string `json:"error"`
}
