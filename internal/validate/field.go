// Package validate implements the per-field response checks run on every
// form submission: required, min/max length and regex pattern. All checks
// are pure functions with no shared state, so they are safe to call from
// concurrent request handlers.
package validate

import (
	"fmt"
	"regexp"
	"unicode/utf8"

	"formworks/internal/domain/models"
	"formworks/internal/fieldtypes"
)

// Field evaluates one response against one field's declared constraints and
// returns every violated rule as a human-readable message. Failures
// accumulate; they do not short-circuit, except that a required-field
// failure skips the remaining checks for that field.
//
// caps may be nil when the stored field type is unknown; length checks are
// then skipped, but a stored regex is still applied.
//
// A regex that does not compile is a configuration fault on the form, not a
// user error: it is returned as an error so the caller can fail the whole
// request instead of reporting it as a field message.
func Field(f *models.Field, caps *fieldtypes.Capabilities, resp *models.Response) ([]string, error) {
	if f.Required && isBlank(resp) {
		return []string{fmt.Sprintf("%s is required", f.Label)}, nil
	}
	if resp == nil || f.Validation == nil {
		return nil, nil
	}

	value, isString := resp.Value.(string)

	var errs []string

	// Length checks apply only to free-text types holding a string value
	if isString && caps != nil && caps.SupportsLength {
		length := utf8.RuneCountInString(value)
		if f.Validation.MinLength != nil && length < *f.Validation.MinLength {
			errs = append(errs, fmt.Sprintf("%s must be at least %d characters", f.Label, *f.Validation.MinLength))
		}
		if f.Validation.MaxLength != nil && length > *f.Validation.MaxLength {
			errs = append(errs, fmt.Sprintf("%s must be less than %d characters", f.Label, *f.Validation.MaxLength))
		}
	}

	// Pattern check applies to any string value with a stored regex
	if isString && f.Validation.Regex != "" {
		re, err := regexp.Compile(f.Validation.Regex)
		if err != nil {
			return errs, fmt.Errorf("field %q has invalid regex pattern %q: %w", f.Name, f.Validation.Regex, err)
		}
		if !re.MatchString(value) {
			errs = append(errs, fmt.Sprintf("%s format is invalid", f.Label))
		}
	}

	return errs, nil
}

// Responses evaluates a whole response set against a form's fields,
// aggregating every violation across every field. The returned slice is
// empty when the submission passes.
func Responses(reg *fieldtypes.Registry, fields []models.Field, responses []models.Response) ([]string, error) {
	var errs []string
	for i := range fields {
		f := &fields[i]
		caps, _ := reg.Get(f.Type)

		fieldErrs, err := Field(f, caps, findResponse(responses, f.ID))
		if err != nil {
			return nil, err
		}
		errs = append(errs, fieldErrs...)
	}
	return errs, nil
}

// isBlank reports whether a required field should be considered unanswered:
// the response is absent entirely, or its value is the empty string.
func isBlank(resp *models.Response) bool {
	if resp == nil {
		return true
	}
	if s, ok := resp.Value.(string); ok && s == "" {
		return true
	}
	return false
}

// findResponse locates the response matching a field id, or nil
func findResponse(responses []models.Response, fieldID string) *models.Response {
	for i := range responses {
		if responses[i].FieldID == fieldID {
			return &responses[i]
		}
	}
	return nil
}
