package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/journalapp/journal/internal/auth"
	"github.com/journalapp/journal/internal/model"
)

// Authentication failure messages.
const (
	MsgAuthRequired = "authentication required"
	MsgInvalidToken = "invalid token"
)

// TokenVerifier decodes a session token into the identity it asserts.
type TokenVerifier interface {
	Verify(token string) (model.Identity, error)
}

// AuthConfig holds configuration for the auth middleware.
type AuthConfig struct {
	Logger   *slog.Logger
	Verifier TokenVerifier
}

// Auth returns a middleware that requires a valid bearer session token.
// The decoded identity is attached to the request context.
func Auth(cfg AuthConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				logAuthFailure(cfg.Logger, r, "missing_token")
				writeError(w, http.StatusUnauthorized, MsgAuthRequired)
				return
			}

			identity, err := cfg.Verifier.Verify(token)
			if err != nil {
				logAuthFailure(cfg.Logger, r, "invalid_token")
				writeError(w, http.StatusUnauthorized, MsgInvalidToken)
				return
			}

			noteIdentity(r.Context(), identity.UserID)
			ctx := auth.ContextWithIdentity(r.Context(), identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken extracts the token from "Authorization: Bearer <token>".
// The scheme is matched case-insensitively.
func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func logAuthFailure(logger *slog.Logger, r *http.Request, reason string) {
	if logger == nil {
		return
	}
	logger.Warn("authentication failed",
		slog.String("reason", reason),
		slog.String("ip", r.RemoteAddr),
		slog.String("endpoint", r.Method+" "+r.URL.Path),
		slog.String("request_id", GetRequestID(r.Context())),
	)
}
