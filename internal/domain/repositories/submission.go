package repositories

import (
	"context"

	"formworks/internal/domain/models"
)

// SubmissionRepository defines data access operations for submissions.
// Submissions are append-only; there are no update or delete operations.
type SubmissionRepository interface {
	// Create inserts a new submission and fills in its generated ID and timestamp
	Create(ctx context.Context, submission *models.Submission) error

	// ListByForm retrieves all submissions for a form, newest first
	ListByForm(ctx context.Context, formID string) ([]models.Submission, error)
}
