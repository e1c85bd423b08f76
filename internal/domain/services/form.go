package services

import (
	"context"

	"formworks/internal/domain/models"
)

// CreateFormRequest represents a request to create a form
type CreateFormRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// UpdateFormRequest represents a metadata-only update. Nil keys were absent
// from the request and are left untouched; metadata updates never bump the
// form version. This is transport-agnostic - the handler maps from
// httputil.OptionalString.
type UpdateFormRequest struct {
	Title       *string
	Description *string
}

// AddFieldRequest represents a request to append a field to a form
type AddFieldRequest struct {
	Label      string                  `json:"label"`
	Name       string                  `json:"name"`
	Type       string                  `json:"type"`
	Required   bool                    `json:"required"`
	Options    []string                `json:"options"`
	Validation *models.ValidationRules `json:"validation"`
	Order      *int                    `json:"order"`
}

// UpdateFieldRequest carries the allow-listed mutable field keys. Only
// non-nil keys are applied.
type UpdateFieldRequest struct {
	Label      *string                 `json:"label"`
	Name       *string                 `json:"name"`
	Type       *string                 `json:"type"`
	Required   *bool                   `json:"required"`
	Options    *[]string               `json:"options"`
	Validation *models.ValidationRules `json:"validation"`
	Order      *int                    `json:"order"`
}

// FieldOrder assigns a new order value to the field with the given id
type FieldOrder struct {
	ID    string `json:"id"`
	Order int    `json:"order"`
}

// ReorderFieldsRequest represents a bulk reorder of a form's fields.
// Entries referencing unknown field ids are silently ignored.
type ReorderFieldsRequest struct {
	Orders []FieldOrder `json:"orders"`
}

// FormService defines business logic for form metadata and embedded fields.
// Every structural mutation (field add/update/delete/reorder) increments the
// form version exactly once; metadata updates never do.
type FormService interface {
	// CreateForm creates a new form with an empty field list and version 1
	CreateForm(ctx context.Context, req *CreateFormRequest) (*models.Form, error)

	// ListForms retrieves summaries of all non-deleted forms, newest first
	ListForms(ctx context.Context) ([]models.FormSummary, error)

	// GetForm retrieves a full form by ID, excluding soft-deleted forms
	GetForm(ctx context.Context, id string) (*models.Form, error)

	// UpdateForm merges supplied metadata keys into the form
	UpdateForm(ctx context.Context, id string, req *UpdateFormRequest) (*models.Form, error)

	// DeleteForm soft-deletes a form
	DeleteForm(ctx context.Context, id string) error

	// AddField appends a new field, enforcing name uniqueness and re-sorting
	// by order. Returns the created field with its generated id.
	AddField(ctx context.Context, formID string, req *AddFieldRequest) (*models.Field, error)

	// UpdateField applies the allow-listed keys to an existing field,
	// re-validating name uniqueness when the name changes.
	UpdateField(ctx context.Context, formID, fieldID string, req *UpdateFieldRequest) (*models.Field, error)

	// DeleteField removes a field from the form
	DeleteField(ctx context.Context, formID, fieldID string) error

	// ReorderFields applies new order values and returns the re-sorted list
	ReorderFields(ctx context.Context, formID string, req *ReorderFieldsRequest) ([]models.Field, error)
}
