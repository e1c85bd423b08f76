package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"formworks/internal/domain"
	"formworks/internal/httputil"
)

// handleError converts domain errors to HTTP responses
func handleError(w http.ResponseWriter, err error) {
	var submissionErr *domain.SubmissionValidationError

	switch {
	case errors.As(err, &submissionErr):
		// Every violated field rule is surfaced in one response
		httputil.RespondErrorWithExtras(w, http.StatusBadRequest, "submission failed validation", map[string]interface{}{
			"errors": submissionErr.Errors,
		})
	case errors.Is(err, domain.ErrValidation):
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		httputil.RespondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		httputil.RespondError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, domain.ErrForbidden):
		httputil.RespondError(w, http.StatusForbidden, err.Error())
	default:
		// Store faults and misconfigured forms land here
		slog.Error("unexpected error", "error", err)
		httputil.RespondError(w, http.StatusInternalServerError, "internal server error")
	}
}
