package repositories

import (
	"context"

	"formworks/internal/domain/models"
)

// FormRepository defines data access operations for forms.
//
// The store is trusted to provide atomic single-row reads and writes but no
// cross-row transactions. Update overwrites the whole fields document, so
// two concurrent structural mutations on the same form race and the last
// writer wins; callers needing stronger guarantees must add a conditional
// write keyed on the loaded version.
type FormRepository interface {
	// Create inserts a new form and fills in its generated ID and timestamps
	Create(ctx context.Context, form *models.Form) error

	// GetByID retrieves a form by ID, excluding soft-deleted forms
	GetByID(ctx context.Context, id string) (*models.Form, error)

	// GetPublicByID retrieves a form by ID without the soft-delete filter.
	// Used by the public render/submit path, which deliberately does not
	// hide deleted forms (see DESIGN.md).
	GetPublicByID(ctx context.Context, id string) (*models.Form, error)

	// List retrieves summaries of all non-deleted forms, newest-created first
	List(ctx context.Context) ([]models.FormSummary, error)

	// Update persists the form's title, description, fields and version,
	// refreshing updated_at. Soft-deleted forms are never updated.
	Update(ctx context.Context, form *models.Form) error

	// SoftDelete marks a form deleted. Deleting an absent or already-deleted
	// form reports ErrNotFound; the flag is never re-applied.
	SoftDelete(ctx context.Context, id string) error
}
