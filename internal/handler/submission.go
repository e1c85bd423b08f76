package handler

import (
	"log/slog"
	"net/http"

	"formworks/internal/domain/services"
	"formworks/internal/httputil"
)

// SubmissionHandler handles the public form rendering and submission
// surface, plus the admin submissions listing.
type SubmissionHandler struct {
	submissionService services.SubmissionService
	logger            *slog.Logger
}

// NewSubmissionHandler creates a new submission handler
func NewSubmissionHandler(submissionService services.SubmissionService, logger *slog.Logger) *SubmissionHandler {
	return &SubmissionHandler{
		submissionService: submissionService,
		logger:            logger,
	}
}

// GetPublicForm retrieves a form with its fields for rendering
// GET /api/forms/{id}
func (h *SubmissionHandler) GetPublicForm(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Form ID is required")
		return
	}

	form, err := h.submissionService.GetPublicForm(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, form)
}

// SubmitForm validates and persists an end user's responses
// POST /api/forms/{id}/submit
func (h *SubmissionHandler) SubmitForm(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Form ID is required")
		return
	}

	var req services.SubmitFormRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	submission, err := h.submissionService.SubmitForm(r.Context(), id, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, submission)
}

// ListSubmissions retrieves all submissions for a form, newest first
// GET /api/admin/forms/{id}/submissions
func (h *SubmissionHandler) ListSubmissions(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Form ID is required")
		return
	}

	submissions, err := h.submissionService.ListSubmissions(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, submissions)
}
