package handler

import (
	"log/slog"
	"net/http"

	"formworks/internal/fieldtypes"
	"formworks/internal/httputil"
)

// FieldTypesHandler exposes the field type registry to form-builder UIs
type FieldTypesHandler struct {
	types  *fieldtypes.Registry
	logger *slog.Logger
}

// NewFieldTypesHandler creates a new field types handler
func NewFieldTypesHandler(types *fieldtypes.Registry, logger *slog.Logger) *FieldTypesHandler {
	return &FieldTypesHandler{
		types:  types,
		logger: logger,
	}
}

// ListFieldTypes returns the supported field types and their capabilities
// GET /api/fieldtypes
func (h *FieldTypesHandler) ListFieldTypes(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, h.types.List())
}
