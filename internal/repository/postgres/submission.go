package postgres

import (
	"context"
	"fmt"

	"formworks/internal/domain"
	"formworks/internal/domain/models"
	"formworks/internal/domain/repositories"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresSubmissionRepository implements the SubmissionRepository
// interface. Submissions are append-only rows with the response set stored
// in a JSONB column.
type PostgresSubmissionRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewSubmissionRepository creates a new submission repository
func NewSubmissionRepository(config *RepositoryConfig) repositories.SubmissionRepository {
	return &PostgresSubmissionRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Create inserts a new submission
func (r *PostgresSubmissionRepository) Create(ctx context.Context, submission *models.Submission) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (form_id, responses)
		VALUES ($1, $2)
		RETURNING id, created_at
	`, r.tables.Submissions)

	err := r.pool.QueryRow(ctx, query,
		submission.FormID,
		submission.Responses,
	).Scan(&submission.ID, &submission.CreatedAt)

	if err != nil {
		// The form row vanished between validation and insert
		if IsPgForeignKeyError(err) || IsPgInvalidUUIDError(err) {
			return fmt.Errorf("form %s: %w", submission.FormID, domain.ErrNotFound)
		}
		return fmt.Errorf("create submission: %w", err)
	}

	return nil
}

// ListByForm retrieves all submissions for a form, newest first
func (r *PostgresSubmissionRepository) ListByForm(ctx context.Context, formID string) ([]models.Submission, error) {
	query := fmt.Sprintf(`
		SELECT id, form_id, responses, created_at
		FROM %s
		WHERE form_id = $1
		ORDER BY created_at DESC
	`, r.tables.Submissions)

	rows, err := r.pool.Query(ctx, query, formID)
	if err != nil {
		if IsPgInvalidUUIDError(err) {
			return nil, fmt.Errorf("form %s: %w", formID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	defer rows.Close()

	var submissions []models.Submission
	for rows.Next() {
		var submission models.Submission
		err := rows.Scan(
			&submission.ID,
			&submission.FormID,
			&submission.Responses,
			&submission.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan submission: %w", err)
		}
		submissions = append(submissions, submission)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate submissions: %w", err)
	}

	// Return empty slice instead of nil if no submissions
	if submissions == nil {
		submissions = []models.Submission{}
	}

	return submissions, nil
}
