package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/journalapp/journal/internal/handler/dto"
	"github.com/journalapp/journal/internal/service"
)

// EntryHandler handles HTTP requests for journal entries.
type EntryHandler struct {
	svc    *service.EntryService
	logger *slog.Logger
}

// NewEntryHandler creates a new EntryHandler.
func NewEntryHandler(svc *service.EntryService, logger *slog.Logger) *EntryHandler {
	return &EntryHandler{svc: svc, logger: logger}
}

// List handles GET /api/entries.
func (h *EntryHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.svc.List(r.Context())
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

// Get handles GET /api/entries/{entryId}.
func (h *EntryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := service.ParseEntryID(chi.URLParam(r, "entryId"))
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}

	entry, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

// Create handles POST /api/entries.
func (h *EntryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.EntryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}

	entry, err := h.svc.Create(r.Context(), toEntryInput(req))
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}

	h.logger.Info("entry_created", "entry_id", entry.ID)
	writeJSON(w, http.StatusCreated, entry)
}

// Update handles PUT /api/entries/{entryId}.
func (h *EntryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := service.ParseEntryID(chi.URLParam(r, "entryId"))
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}

	var req dto.EntryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}

	entry, err := h.svc.Update(r.Context(), id, toEntryInput(req))
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}

	h.logger.Info("entry_updated", "entry_id", entry.ID)
	writeJSON(w, http.StatusOK, entry)
}

// Delete handles DELETE /api/entries/{entryId}.
func (h *EntryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := service.ParseEntryID(chi.URLParam(r, "entryId"))
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}

	if _, err := h.svc.Delete(r.Context(), id); err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}

	h.logger.Info("entry_deleted", "entry_id", id)
	w.WriteHeader(http.StatusNoContent)
}

func toEntryInput(req dto.EntryRequest) service.EntryInput {
	return service.EntryInput{Title: req.Title, Notes: req.Notes, PhotoURL: req.PhotoURL}
}
