package postgres

import (
	"context"
	"fmt"

	"formworks/internal/domain"
	"formworks/internal/domain/models"
	"formworks/internal/domain/repositories"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresFormRepository implements the FormRepository interface. A form is
// stored as a single row with its embedded fields in a JSONB column, so
// every read and write of a form (fields included) is atomic.
type PostgresFormRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewFormRepository creates a new form repository
func NewFormRepository(config *RepositoryConfig) repositories.FormRepository {
	return &PostgresFormRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Create inserts a new form
func (r *PostgresFormRepository) Create(ctx context.Context, form *models.Form) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (title, description, fields, version, is_deleted, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`, r.tables.Forms)

	err := r.pool.QueryRow(ctx, query,
		form.Title,
		form.Description,
		form.Fields,
		form.Version,
		form.IsDeleted,
		form.CreatedAt,
		form.UpdatedAt,
	).Scan(&form.ID, &form.CreatedAt, &form.UpdatedAt)

	if err != nil {
		return fmt.Errorf("create form: %w", err)
	}

	return nil
}

// GetByID retrieves a form by ID, excluding soft-deleted forms
func (r *PostgresFormRepository) GetByID(ctx context.Context, id string) (*models.Form, error) {
	query := fmt.Sprintf(`
		SELECT id, title, description, fields, version, is_deleted, created_at, updated_at
		FROM %s
		WHERE id = $1 AND is_deleted = FALSE
	`, r.tables.Forms)

	return r.getForm(ctx, query, id)
}

// GetPublicByID retrieves a form by ID without the soft-delete filter.
// The public render/submit path deliberately matches this behavior.
func (r *PostgresFormRepository) GetPublicByID(ctx context.Context, id string) (*models.Form, error) {
	query := fmt.Sprintf(`
		SELECT id, title, description, fields, version, is_deleted, created_at, updated_at
		FROM %s
		WHERE id = $1
	`, r.tables.Forms)

	return r.getForm(ctx, query, id)
}

func (r *PostgresFormRepository) getForm(ctx context.Context, query, id string) (*models.Form, error) {
	var form models.Form
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&form.ID,
		&form.Title,
		&form.Description,
		&form.Fields,
		&form.Version,
		&form.IsDeleted,
		&form.CreatedAt,
		&form.UpdatedAt,
	)

	if err != nil {
		if IsPgNoRowsError(err) || IsPgInvalidUUIDError(err) {
			return nil, fmt.Errorf("form %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get form: %w", err)
	}

	if form.Fields == nil {
		form.Fields = []models.Field{}
	}

	return &form, nil
}

// List retrieves summaries of all non-deleted forms, newest-created first
func (r *PostgresFormRepository) List(ctx context.Context) ([]models.FormSummary, error) {
	query := fmt.Sprintf(`
		SELECT id, title, description, version, created_at, updated_at
		FROM %s
		WHERE is_deleted = FALSE
		ORDER BY created_at DESC
	`, r.tables.Forms)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list forms: %w", err)
	}
	defer rows.Close()

	var forms []models.FormSummary
	for rows.Next() {
		var form models.FormSummary
		err := rows.Scan(
			&form.ID,
			&form.Title,
			&form.Description,
			&form.Version,
			&form.CreatedAt,
			&form.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan form: %w", err)
		}
		forms = append(forms, form)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate forms: %w", err)
	}

	// Return empty slice instead of nil if no forms
	if forms == nil {
		forms = []models.FormSummary{}
	}

	return forms, nil
}

// Update persists the form's metadata, fields and version. The last writer
// wins: no conditional write guards the read-modify-write sequence.
func (r *PostgresFormRepository) Update(ctx context.Context, form *models.Form) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET title = $1, description = $2, fields = $3, version = $4, updated_at = $5
		WHERE id = $6 AND is_deleted = FALSE
	`, r.tables.Forms)

	result, err := r.pool.Exec(ctx, query,
		form.Title,
		form.Description,
		form.Fields,
		form.Version,
		form.UpdatedAt,
		form.ID,
	)

	if err != nil {
		if IsPgInvalidUUIDError(err) {
			return fmt.Errorf("form %s: %w", form.ID, domain.ErrNotFound)
		}
		return fmt.Errorf("update form: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("form %s: %w", form.ID, domain.ErrNotFound)
	}

	return nil
}

// SoftDelete marks a form deleted. Repeated deletes affect no rows and
// report not-found rather than re-applying the flag.
func (r *PostgresFormRepository) SoftDelete(ctx context.Context, id string) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET is_deleted = TRUE, updated_at = NOW()
		WHERE id = $1 AND is_deleted = FALSE
	`, r.tables.Forms)

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		if IsPgInvalidUUIDError(err) {
			return fmt.Errorf("form %s: %w", id, domain.ErrNotFound)
		}
		return fmt.Errorf("delete form: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("form %s: %w", id, domain.ErrNotFound)
	}

	return nil
}
