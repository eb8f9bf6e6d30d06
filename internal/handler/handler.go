// Package handler provides HTTP request handlers.
package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/journalapp/journal/internal/apperror"
	"github.com/journalapp/journal/internal/handler/dto"
)

// MsgInvalidBody is returned for bodies that are not a JSON object of the
// expected shape.
const MsgInvalidBody = "invalid request body"

// Handler serves the informational and fallback endpoints.
type Handler struct {
	version string
}

// New creates a new Handler instance.
func New(version string) *Handler {
	return &Handler{version: version}
}

// Hello describes the service.
// GET /
func (h *Handler) Hello(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "journal api",
		"version": h.version,
	})
}

// NotFound handles 404 responses.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, dto.ErrorResponse{Error: "resource not found"})
}

// MethodNotAllowed handles 405 responses.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusMethodNotAllowed, dto.ErrorResponse{Error: "method not allowed"})
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// headers are already sent; nothing useful can be done with the error
	_ = json.NewEncoder(w).Encode(data)
}

// decodeJSON decodes a single JSON object from the request body.
// Wrong field types, trailing data and oversize bodies are all
// reported as an invalid body.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(v); err != nil {
		return apperror.Validation(MsgInvalidBody)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return apperror.Validation(MsgInvalidBody)
	}
	return nil
}
