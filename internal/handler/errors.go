package handler

import (
	"log/slog"
	"net/http"

	"github.com/journalapp/journal/internal/apperror"
	"github.com/journalapp/journal/internal/handler/dto"
	"github.com/journalapp/journal/internal/middleware"
)

// writeServiceError translates err into a status code and a client-safe
// body. Unexpected errors are logged with the request ID.
func writeServiceError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	appErr := apperror.From(err)
	if appErr.Kind == apperror.KindUnexpected {
		logger.Error("internal_error",
			slog.String("request_id", middleware.GetRequestID(r.Context())),
			slog.String("endpoint", r.Method+" "+r.URL.Path),
			slog.Any("error", err),
		)
	}
	writeJSON(w, appErr.Kind.Status(), dto.ErrorResponse{Error: appErr.PublicMessage()})
}
