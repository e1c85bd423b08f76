package services

import (
	"context"

	"formworks/internal/domain/models"
)

// SubmitFormRequest represents an end user's response set for a form
type SubmitFormRequest struct {
	Responses []models.Response `json:"responses"`
}

// SubmissionService validates and persists end-user responses against a
// form's current field definitions.
type SubmissionService interface {
	// GetPublicForm retrieves a form with its fields for rendering. Unlike
	// the admin read path this does not exclude soft-deleted forms.
	GetPublicForm(ctx context.Context, formID string) (*models.Form, error)

	// SubmitForm validates every field's response, aggregating all
	// violations. On any violation the whole submission fails with a
	// SubmissionValidationError and nothing is persisted; otherwise the
	// full original responses array is stored.
	SubmitForm(ctx context.Context, formID string, req *SubmitFormRequest) (*models.Submission, error)

	// ListSubmissions retrieves all submissions for a non-deleted form,
	// newest first.
	ListSubmissions(ctx context.Context, formID string) ([]models.Submission, error)
}
