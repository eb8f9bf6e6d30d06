package auth

import (
	"context"

	"github.com/journalapp/journal/internal/model"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

const identityContextKey contextKey = "identity"

// ContextWithIdentity attaches the authenticated identity to the context.
func ContextWithIdentity(ctx context.Context, id model.Identity) context.Context {
	return context.WithValue(ctx, identityContextKey, id)
}

// IdentityFromContext retrieves the authenticated identity.
// ok is false when the request did not pass the auth middleware.
func IdentityFromContext(ctx context.Context) (model.Identity, bool) {
	id, ok := ctx.Value(identityContextKey).(model.Identity)
	return id, ok
}

// UserIDFromContext returns a pointer to the caller's user ID, or nil if unauthenticated.
// The pointer form feeds straight into owner-scoped repository predicates.
func UserIDFromContext(ctx context.Context) *int64 {
	id, ok := IdentityFromContext(ctx)
	if !ok {
		return nil
	}
	userID := id.UserID
	return &userID
}
