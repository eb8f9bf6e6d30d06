package handler

import (
	"log/slog"
	"net/http"

	"github.com/journalapp/journal/internal/apperror"
	"github.com/journalapp/journal/internal/handler/dto"
	"github.com/journalapp/journal/internal/service"
)

// AuthHandler handles account sign-up and sign-in.
type AuthHandler struct {
	svc    *service.AccountService
	logger *slog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc *service.AccountService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, logger: logger}
}

// SignUp handles POST /api/auth/sign-up.
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req dto.CredentialsRequest
	if err := decodeJSON(r, &req); err != nil {
		// a body that is not an object is treated as missing credentials
		writeServiceError(w, r, h.logger, apperror.Validation(service.MsgCredentialsNeeded))
		return
	}

	user, err := h.svc.SignUp(r.Context(), service.Credentials{Username: req.Username, Password: req.Password})
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}

	h.logger.Info("user_signed_up", "user_id", user.ID)
	writeJSON(w, http.StatusCreated, dto.ToUserResponse(user))
}

// SignIn handles POST /api/auth/sign-in.
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req dto.CredentialsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeServiceError(w, r, h.logger, apperror.Authentication(service.MsgInvalidLogin))
		return
	}

	session, err := h.svc.SignIn(r.Context(), service.Credentials{Username: req.Username, Password: req.Password})
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.SignInResponse{Token: session.Token, User: session.User})
}
