package handler

import (
	"log/slog"
	"net/http"

	"formworks/internal/domain/services"
	"formworks/internal/httputil"
)

// FormHandler handles the admin form management HTTP surface
type FormHandler struct {
	formService services.FormService
	logger      *slog.Logger
}

// NewFormHandler creates a new form handler
func NewFormHandler(formService services.FormService, logger *slog.Logger) *FormHandler {
	return &FormHandler{
		formService: formService,
		logger:      logger,
	}
}

// HealthCheck reports liveness
// GET /health
func (h *FormHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// CreateForm creates a new form
// POST /api/admin/forms
func (h *FormHandler) CreateForm(w http.ResponseWriter, r *http.Request) {
	var req services.CreateFormRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	form, err := h.formService.CreateForm(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, form)
}

// ListForms retrieves summaries of all non-deleted forms
// GET /api/admin/forms
func (h *FormHandler) ListForms(w http.ResponseWriter, r *http.Request) {
	forms, err := h.formService.ListForms(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, forms)
}

// GetForm retrieves a full form by ID
// GET /api/admin/forms/{id}
func (h *FormHandler) GetForm(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Form ID is required")
		return
	}

	form, err := h.formService.GetForm(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, form)
}

// updateFormRequest is the PATCH body for form metadata. OptionalString
// distinguishes absent keys from supplied ones.
type updateFormRequest struct {
	Title       httputil.OptionalString `json:"title"`
	Description httputil.OptionalString `json:"description"`
}

// UpdateForm merges supplied metadata keys into the form
// PATCH /api/admin/forms/{id}
func (h *FormHandler) UpdateForm(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Form ID is required")
		return
	}

	var body updateFormRequest
	if err := httputil.ParseJSON(w, r, &body); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	req := &services.UpdateFormRequest{}
	if body.Title.Present {
		title := body.Title.StringOrEmpty()
		req.Title = &title
	}
	if body.Description.Present {
		description := body.Description.StringOrEmpty()
		req.Description = &description
	}

	form, err := h.formService.UpdateForm(r.Context(), id, req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, form)
}

// DeleteForm soft-deletes a form
// DELETE /api/admin/forms/{id}
func (h *FormHandler) DeleteForm(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Form ID is required")
		return
	}

	if err := h.formService.DeleteForm(r.Context(), id); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AddField appends a field to a form
// POST /api/admin/forms/{id}/fields
func (h *FormHandler) AddField(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Form ID is required")
		return
	}

	var req services.AddFieldRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	field, err := h.formService.AddField(r.Context(), id, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, field)
}

// UpdateField applies the allow-listed keys to a field
// PATCH /api/admin/forms/{id}/fields/{fieldId}
func (h *FormHandler) UpdateField(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	fieldID := r.PathValue("fieldId")
	if id == "" || fieldID == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Form ID and field ID are required")
		return
	}

	var req services.UpdateFieldRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	field, err := h.formService.UpdateField(r.Context(), id, fieldID, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, field)
}

// DeleteField removes a field from a form
// DELETE /api/admin/forms/{id}/fields/{fieldId}
func (h *FormHandler) DeleteField(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	fieldID := r.PathValue("fieldId")
	if id == "" || fieldID == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Form ID and field ID are required")
		return
	}

	if err := h.formService.DeleteField(r.Context(), id, fieldID); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ReorderFields applies new order values to a form's fields
// PUT /api/admin/forms/{id}/fields/reorder
func (h *FormHandler) ReorderFields(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Form ID is required")
		return
	}

	var req services.ReorderFieldsRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	fields, err := h.formService.ReorderFields(r.Context(), id, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, fields)
}
