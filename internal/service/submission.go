package service

import (
	"context"
	"fmt"
	"log/slog"

	"formworks/internal/domain"
	"formworks/internal/domain/models"
	"formworks/internal/domain/repositories"
	"formworks/internal/domain/services"
	"formworks/internal/fieldtypes"
	"formworks/internal/validate"
)

// submissionService implements the SubmissionService interface
type submissionService struct {
	formRepo       repositories.FormRepository
	submissionRepo repositories.SubmissionRepository
	types          *fieldtypes.Registry
	logger         *slog.Logger
}

// NewSubmissionService creates a new submission service
func NewSubmissionService(
	formRepo repositories.FormRepository,
	submissionRepo repositories.SubmissionRepository,
	types *fieldtypes.Registry,
	logger *slog.Logger,
) services.SubmissionService {
	return &submissionService{
		formRepo:       formRepo,
		submissionRepo: submissionRepo,
		types:          types,
		logger:         logger,
	}
}

// GetPublicForm retrieves a form with its fields for rendering. The public
// read path does not filter soft-deleted forms; see DESIGN.md.
func (s *submissionService) GetPublicForm(ctx context.Context, formID string) (*models.Form, error) {
	return s.formRepo.GetPublicByID(ctx, formID)
}

// SubmitForm validates the response set against the form's current fields
// and persists an accepted submission. Violations across all fields are
// aggregated into one SubmissionValidationError; a failed submission
// persists nothing.
func (s *submissionService) SubmitForm(ctx context.Context, formID string, req *services.SubmitFormRequest) (*models.Submission, error) {
	form, err := s.formRepo.GetPublicByID(ctx, formID)
	if err != nil {
		return nil, err
	}

	responses := req.Responses
	if responses == nil {
		responses = []models.Response{}
	}

	violations, err := validate.Responses(s.types, form.Fields, responses)
	if err != nil {
		// A stored constraint that cannot be evaluated (e.g. an invalid
		// regex) is a fault on the form, not on the submitter.
		return nil, fmt.Errorf("validate submission for form %s: %w", formID, err)
	}
	if len(violations) > 0 {
		s.logger.Debug("submission rejected",
			"form_id", formID,
			"violations", len(violations),
		)
		return nil, &domain.SubmissionValidationError{Errors: violations}
	}

	// Persist the full original responses array, not just the validated
	// subset.
	submission := &models.Submission{
		FormID:    formID,
		Responses: responses,
	}

	if err := s.submissionRepo.Create(ctx, submission); err != nil {
		return nil, err
	}

	s.logger.Info("submission created",
		"id", submission.ID,
		"form_id", formID,
		"responses", len(responses),
	)

	return submission, nil
}

// ListSubmissions retrieves all submissions for a non-deleted form, newest
// first. This is an admin read, so the soft-delete filter applies to the
// form lookup.
func (s *submissionService) ListSubmissions(ctx context.Context, formID string) ([]models.Submission, error) {
	if _, err := s.formRepo.GetByID(ctx, formID); err != nil {
		return nil, err
	}

	return s.submissionRepo.ListByForm(ctx, formID)
}
