// Package model defines domain entities for the application.
package model

import "time"

// User is an account that owns journal entries.
// HashedPassword is never serialized.
type User struct {
	ID             int64     `json:"userId"`
	Username       string    `json:"username"`
	HashedPassword string    `json:"-"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Identity is the authenticated principal carried by a session token.
type Identity struct {
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
}

// Identity returns the session identity for the user.
func (u *User) Identity() Identity {
	return Identity{UserID: u.ID, Username: u.Username}
}
