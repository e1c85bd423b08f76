package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"formworks/internal/config"
	"formworks/internal/domain"
	"formworks/internal/domain/models"
	"formworks/internal/domain/repositories"
	"formworks/internal/domain/services"
	"formworks/internal/fieldtypes"

	"github.com/google/uuid"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// formService implements the FormService interface
type formService struct {
	formRepo repositories.FormRepository
	types    *fieldtypes.Registry
	logger   *slog.Logger
}

// NewFormService creates a new form service
func NewFormService(
	formRepo repositories.FormRepository,
	types *fieldtypes.Registry,
	logger *slog.Logger,
) services.FormService {
	return &formService{
		formRepo: formRepo,
		types:    types,
		logger:   logger,
	}
}

// CreateForm creates a new form with an empty field list and version 1
func (s *formService) CreateForm(ctx context.Context, req *services.CreateFormRequest) (*models.Form, error) {
	if err := s.validateCreateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	now := time.Now()
	form := &models.Form{
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		Fields:      []models.Field{},
		Version:     1,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.formRepo.Create(ctx, form); err != nil {
		return nil, err
	}

	s.logger.Info("form created",
		"id", form.ID,
		"title", form.Title,
	)

	return form, nil
}

// ListForms retrieves summaries of all non-deleted forms, newest first
func (s *formService) ListForms(ctx context.Context) ([]models.FormSummary, error) {
	return s.formRepo.List(ctx)
}

// GetForm retrieves a full form by ID, excluding soft-deleted forms
func (s *formService) GetForm(ctx context.Context, id string) (*models.Form, error) {
	return s.formRepo.GetByID(ctx, id)
}

// UpdateForm merges supplied metadata keys into the form. Metadata-only
// updates never change the form version.
func (s *formService) UpdateForm(ctx context.Context, id string, req *services.UpdateFormRequest) (*models.Form, error) {
	form, err := s.formRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, fmt.Errorf("%w: title cannot be empty", domain.ErrValidation)
		}
		if len(title) > config.MaxFormTitleLength {
			return nil, fmt.Errorf("%w: title must be at most %d characters", domain.ErrValidation, config.MaxFormTitleLength)
		}
		form.Title = title
	}
	if req.Description != nil {
		form.Description = strings.TrimSpace(*req.Description)
	}
	form.UpdatedAt = time.Now()

	if err := s.formRepo.Update(ctx, form); err != nil {
		return nil, err
	}

	s.logger.Info("form updated",
		"id", form.ID,
		"title", form.Title,
	)

	return form, nil
}

// DeleteForm soft-deletes a form. A repeated delete reports not-found; the
// flag is never applied twice.
func (s *formService) DeleteForm(ctx context.Context, id string) error {
	if err := s.formRepo.SoftDelete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("form deleted", "id", id)

	return nil
}

// AddField appends a new field to the form, enforcing name uniqueness,
// assigning a generated id and a default order, and bumping the version.
func (s *formService) AddField(ctx context.Context, formID string, req *services.AddFieldRequest) (*models.Field, error) {
	if err := s.validateAddFieldRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	form, err := s.formRepo.GetByID(ctx, formID)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if form.HasFieldName(name, "") {
		return nil, fmt.Errorf("%w: Field name must be unique within the form", domain.ErrValidation)
	}

	field := models.Field{
		ID:         uuid.NewString(),
		Label:      strings.TrimSpace(req.Label),
		Name:       name,
		Type:       req.Type,
		Required:   req.Required,
		Options:    req.Options,
		Validation: req.Validation,
		Order:      len(form.Fields) + 1,
	}
	if req.Order != nil {
		field.Order = *req.Order
	}

	if err := s.validateFieldShape(&field); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	form.Fields = sortFields(append(form.Fields, field))
	form.Version++
	form.UpdatedAt = time.Now()

	if err := s.formRepo.Update(ctx, form); err != nil {
		return nil, err
	}

	s.logger.Info("field added",
		"form_id", form.ID,
		"field_id", field.ID,
		"name", field.Name,
		"type", field.Type,
		"version", form.Version,
	)

	return &field, nil
}

// UpdateField applies the allow-listed mutable keys to an existing field.
// A name change is re-validated for uniqueness against all other fields.
func (s *formService) UpdateField(ctx context.Context, formID, fieldID string, req *services.UpdateFieldRequest) (*models.Field, error) {
	if err := s.validateUpdateFieldRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	form, err := s.formRepo.GetByID(ctx, formID)
	if err != nil {
		return nil, err
	}

	field := form.FieldByID(fieldID)
	if field == nil {
		return nil, fmt.Errorf("field %s: %w", fieldID, domain.ErrNotFound)
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name != field.Name && form.HasFieldName(name, fieldID) {
			return nil, fmt.Errorf("%w: Field name must be unique within the form", domain.ErrValidation)
		}
		field.Name = name
	}
	if req.Label != nil {
		field.Label = strings.TrimSpace(*req.Label)
	}
	if req.Type != nil {
		field.Type = *req.Type
	}
	if req.Required != nil {
		field.Required = *req.Required
	}
	if req.Options != nil {
		field.Options = *req.Options
	}
	if req.Validation != nil {
		field.Validation = req.Validation
	}
	if req.Order != nil {
		field.Order = *req.Order
	}

	if err := s.validateFieldShape(field); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	form.Fields = sortFields(form.Fields)
	form.Version++
	form.UpdatedAt = time.Now()

	if err := s.formRepo.Update(ctx, form); err != nil {
		return nil, err
	}

	s.logger.Info("field updated",
		"form_id", form.ID,
		"field_id", fieldID,
		"version", form.Version,
	)

	return form.FieldByID(fieldID), nil
}

// DeleteField removes a field from the form and bumps the version
func (s *formService) DeleteField(ctx context.Context, formID, fieldID string) error {
	form, err := s.formRepo.GetByID(ctx, formID)
	if err != nil {
		return err
	}

	kept := make([]models.Field, 0, len(form.Fields))
	for _, f := range form.Fields {
		if f.ID != fieldID {
			kept = append(kept, f)
		}
	}
	if len(kept) == len(form.Fields) {
		return fmt.Errorf("field %s: %w", fieldID, domain.ErrNotFound)
	}

	form.Fields = kept
	form.Version++
	form.UpdatedAt = time.Now()

	if err := s.formRepo.Update(ctx, form); err != nil {
		return err
	}

	s.logger.Info("field deleted",
		"form_id", form.ID,
		"field_id", fieldID,
		"version", form.Version,
	)

	return nil
}

// ReorderFields applies new order values to matching fields and re-sorts.
// Entries referencing unknown field ids are silently ignored. The version
// increments exactly once per call.
func (s *formService) ReorderFields(ctx context.Context, formID string, req *services.ReorderFieldsRequest) ([]models.Field, error) {
	if req == nil || req.Orders == nil {
		return nil, fmt.Errorf("%w: orders array is required", domain.ErrValidation)
	}

	form, err := s.formRepo.GetByID(ctx, formID)
	if err != nil {
		return nil, err
	}

	orderByID := make(map[string]int, len(req.Orders))
	for _, o := range req.Orders {
		if o.ID != "" {
			orderByID[o.ID] = o.Order
		}
	}

	fields := make([]models.Field, len(form.Fields))
	copy(fields, form.Fields)
	for i := range fields {
		if order, ok := orderByID[fields[i].ID]; ok {
			fields[i].Order = order
		}
	}

	form.Fields = sortFields(fields)
	form.Version++
	form.UpdatedAt = time.Now()

	if err := s.formRepo.Update(ctx, form); err != nil {
		return nil, err
	}

	s.logger.Info("fields reordered",
		"form_id", form.ID,
		"count", len(req.Orders),
		"version", form.Version,
	)

	return form.Fields, nil
}

// sortFields returns a new slice sorted ascending by order. The sort is
// stable: fields with equal order keep their prior relative sequence.
// Sorting never mutates the input slice (reordering produces a new sequence).
func sortFields(fields []models.Field) []models.Field {
	sorted := make([]models.Field, len(fields))
	copy(sorted, fields)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Order < sorted[j].Order
	})
	return sorted
}

// validateCreateRequest validates a create form request
func (s *formService) validateCreateRequest(req *services.CreateFormRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Title,
			validation.Required,
			validation.Length(1, config.MaxFormTitleLength),
			validation.By(validateNotBlank("title")),
		),
		validation.Field(&req.Description,
			validation.Length(0, config.MaxFormDescriptionLength),
		),
	)
}

// validateAddFieldRequest validates the mandatory attributes of a new field
func (s *formService) validateAddFieldRequest(req *services.AddFieldRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Label,
			validation.Required,
			validation.Length(1, config.MaxFieldLabelLength),
			validation.By(validateNotBlank("label")),
		),
		validation.Field(&req.Name,
			validation.Required,
			validation.Length(1, config.MaxFieldNameLength),
			validation.By(validateNotBlank("name")),
		),
		validation.Field(&req.Type, validation.Required),
	)
}

// validateUpdateFieldRequest validates the supplied keys of a field update
func (s *formService) validateUpdateFieldRequest(req *services.UpdateFieldRequest) error {
	if req.Label != nil {
		if err := validation.Validate(*req.Label,
			validation.Required,
			validation.Length(1, config.MaxFieldLabelLength),
			validation.By(validateNotBlank("label")),
		); err != nil {
			return fmt.Errorf("label: %v", err)
		}
	}
	if req.Name != nil {
		if err := validation.Validate(*req.Name,
			validation.Required,
			validation.Length(1, config.MaxFieldNameLength),
			validation.By(validateNotBlank("name")),
		); err != nil {
			return fmt.Errorf("name: %v", err)
		}
	}
	if req.Type != nil {
		if err := validation.Validate(*req.Type, validation.Required); err != nil {
			return fmt.Errorf("type: %v", err)
		}
	}
	return nil
}

// validateFieldShape checks a field's type against the registry and rejects
// constraint bundles the type does not support.
func (s *formService) validateFieldShape(field *models.Field) error {
	caps, ok := s.types.Get(field.Type)
	if !ok {
		return fmt.Errorf("unknown field type %q", field.Type)
	}

	if len(field.Options) > 0 && !caps.SupportsOptions {
		return fmt.Errorf("field type %q does not accept options", field.Type)
	}

	if field.Validation != nil {
		if (field.Validation.MinLength != nil || field.Validation.MaxLength != nil) && !caps.SupportsLength {
			return fmt.Errorf("field type %q does not accept length constraints", field.Type)
		}
		if field.Validation.MinLength != nil && *field.Validation.MinLength < 0 {
			return fmt.Errorf("minLength cannot be negative")
		}
		if field.Validation.MaxLength != nil && *field.Validation.MaxLength < 0 {
			return fmt.Errorf("maxLength cannot be negative")
		}
		if field.Validation.MinLength != nil && field.Validation.MaxLength != nil &&
			*field.Validation.MinLength > *field.Validation.MaxLength {
			return fmt.Errorf("minLength cannot exceed maxLength")
		}
		if field.Validation.Regex != "" && !caps.SupportsPattern {
			return fmt.Errorf("field type %q does not accept a regex constraint", field.Type)
		}
	}

	return nil
}

// validateNotBlank rejects values that are empty after trimming
func validateNotBlank(name string) validation.RuleFunc {
	return func(value interface{}) error {
		str, ok := value.(string)
		if !ok {
			return fmt.Errorf("%s must be a string", name)
		}
		if strings.TrimSpace(str) == "" {
			return fmt.Errorf("%s cannot be blank", name)
		}
		return nil
	}
}
