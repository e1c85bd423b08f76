package validate

import (
	"strings"
	"testing"

	"formworks/internal/domain/models"
	"formworks/internal/fieldtypes"
)

func intPtr(v int) *int { return &v }

func testRegistry(t *testing.T) *fieldtypes.Registry {
	t.Helper()
	reg, err := fieldtypes.NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry failed: %v", err)
	}
	return reg
}

func TestField_Required(t *testing.T) {
	reg := testRegistry(t)
	caps, _ := reg.Get("text")
	field := &models.Field{
		ID:       "f1",
		Label:    "Email",
		Name:     "email",
		Type:     "text",
		Required: true,
	}

	t.Run("absent response", func(t *testing.T) {
		errs, err := Field(field, caps, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(errs) != 1 || errs[0] != "Email is required" {
			t.Errorf("expected [Email is required], got %v", errs)
		}
	})

	t.Run("empty string value", func(t *testing.T) {
		errs, err := Field(field, caps, &models.Response{FieldID: "f1", Value: ""})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(errs) != 1 || errs[0] != "Email is required" {
			t.Errorf("expected [Email is required], got %v", errs)
		}
	})

	t.Run("required failure skips remaining checks", func(t *testing.T) {
		strict := &models.Field{
			ID:       "f1",
			Label:    "Email",
			Type:     "text",
			Required: true,
			Validation: &models.ValidationRules{
				MinLength: intPtr(5),
				Regex:     "^a+$",
			},
		}
		errs, err := Field(strict, caps, &models.Response{FieldID: "f1", Value: ""})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(errs) != 1 {
			t.Errorf("expected only the required error, got %v", errs)
		}
	})

	t.Run("answered field passes", func(t *testing.T) {
		errs, err := Field(field, caps, &models.Response{FieldID: "f1", Value: "a@b.co"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(errs) != 0 {
			t.Errorf("expected no errors, got %v", errs)
		}
	})

	t.Run("array value counts as answered", func(t *testing.T) {
		checkCaps, _ := reg.Get("checkbox")
		checks := &models.Field{
			ID:       "f2",
			Label:    "Toppings",
			Type:     "checkbox",
			Required: true,
			Options:  []string{"cheese", "ham"},
		}
		errs, err := Field(checks, checkCaps, &models.Response{FieldID: "f2", Value: []any{"cheese"}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(errs) != 0 {
			t.Errorf("expected no errors, got %v", errs)
		}
	})

	t.Run("optional absent field passes", func(t *testing.T) {
		optional := &models.Field{ID: "f3", Label: "Nickname", Type: "text"}
		errs, err := Field(optional, caps, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(errs) != 0 {
			t.Errorf("expected no errors, got %v", errs)
		}
	})
}

func TestField_Length(t *testing.T) {
	reg := testRegistry(t)
	caps, _ := reg.Get("text")
	field := &models.Field{
		ID:    "f1",
		Label: "Username",
		Type:  "text",
		Validation: &models.ValidationRules{
			MinLength: intPtr(3),
			MaxLength: intPtr(8),
		},
	}

	t.Run("below minimum", func(t *testing.T) {
		errs, err := Field(field, caps, &models.Response{FieldID: "f1", Value: "ab"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(errs) != 1 || errs[0] != "Username must be at least 3 characters" {
			t.Errorf("unexpected errors: %v", errs)
		}
	})

	t.Run("above maximum", func(t *testing.T) {
		errs, err := Field(field, caps, &models.Response{FieldID: "f1", Value: "abcdefghi"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(errs) != 1 || errs[0] != "Username must be less than 8 characters" {
			t.Errorf("unexpected errors: %v", errs)
		}
	})

	t.Run("within bounds", func(t *testing.T) {
		errs, err := Field(field, caps, &models.Response{FieldID: "f1", Value: "abcd"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(errs) != 0 {
			t.Errorf("expected no errors, got %v", errs)
		}
	})

	t.Run("length measured in runes", func(t *testing.T) {
		errs, err := Field(field, caps, &models.Response{FieldID: "f1", Value: "héllo"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(errs) != 0 {
			t.Errorf("expected no errors for 5-rune value, got %v", errs)
		}
	})

	t.Run("skipped for types without length support", func(t *testing.T) {
		dateCaps, _ := reg.Get("date")
		dateField := &models.Field{
			ID:         "f2",
			Label:      "Birthday",
			Type:       "date",
			Validation: &models.ValidationRules{MinLength: intPtr(20)},
		}
		errs, err := Field(dateField, dateCaps, &models.Response{FieldID: "f2", Value: "2020-01-01"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(errs) != 0 {
			t.Errorf("expected no errors, got %v", errs)
		}
	})
}

func TestField_Pattern(t *testing.T) {
	reg := testRegistry(t)
	caps, _ := reg.Get("text")

	t.Run("mismatch", func(t *testing.T) {
		field := &models.Field{
			ID:         "f1",
			Label:      "Zip Code",
			Type:       "text",
			Validation: &models.ValidationRules{Regex: `^\d{5}$`},
		}
		errs, err := Field(field, caps, &models.Response{FieldID: "f1", Value: "abc"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(errs) != 1 || errs[0] != "Zip Code format is invalid" {
			t.Errorf("unexpected errors: %v", errs)
		}
	})

	t.Run("match", func(t *testing.T) {
		field := &models.Field{
			ID:         "f1",
			Label:      "Zip Code",
			Type:       "text",
			Validation: &models.ValidationRules{Regex: `^\d{5}$`},
		}
		errs, err := Field(field, caps, &models.Response{FieldID: "f1", Value: "12345"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(errs) != 0 {
			t.Errorf("expected no errors, got %v", errs)
		}
	})

	t.Run("invalid stored regex is a fault, not a message", func(t *testing.T) {
		field := &models.Field{
			ID:         "f1",
			Label:      "Zip Code",
			Name:       "zip",
			Type:       "text",
			Validation: &models.ValidationRules{Regex: `([`},
		}
		errs, err := Field(field, caps, &models.Response{FieldID: "f1", Value: "12345"})
		if err == nil {
			t.Fatal("expected error for invalid regex")
		}
		if !strings.Contains(err.Error(), "zip") {
			t.Errorf("error should name the field: %v", err)
		}
		for _, msg := range errs {
			if strings.Contains(msg, "format") {
				t.Errorf("invalid regex must not produce a validation message, got %v", errs)
			}
		}
	})

	t.Run("length and pattern failures accumulate", func(t *testing.T) {
		field := &models.Field{
			ID:    "f1",
			Label: "Code",
			Type:  "text",
			Validation: &models.ValidationRules{
				MinLength: intPtr(5),
				Regex:     `^\d+$`,
			},
		}
		errs, err := Field(field, caps, &models.Response{FieldID: "f1", Value: "ab"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(errs) != 2 {
			t.Errorf("expected 2 errors for one field, got %v", errs)
		}
	})
}

func TestResponses_Aggregation(t *testing.T) {
	reg := testRegistry(t)
	fields := []models.Field{
		{ID: "f1", Label: "Name", Name: "name", Type: "text", Required: true, Order: 1},
		{ID: "f2", Label: "Email", Name: "email", Type: "email", Required: true, Order: 2},
		{
			ID: "f3", Label: "Zip", Name: "zip", Type: "text", Order: 3,
			Validation: &models.ValidationRules{Regex: `^\d{5}$`},
		},
	}

	t.Run("every violation across every field is reported", func(t *testing.T) {
		errs, err := Responses(reg, fields, []models.Response{
			{FieldID: "f3", Value: "nope"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(errs) != 3 {
			t.Fatalf("expected 3 errors, got %d: %v", len(errs), errs)
		}
		want := []string{
			"Name is required",
			"Email is required",
			"Zip format is invalid",
		}
		for i, msg := range want {
			if errs[i] != msg {
				t.Errorf("errs[%d] = %q, want %q", i, errs[i], msg)
			}
		}
	})

	t.Run("clean submission has no errors", func(t *testing.T) {
		errs, err := Responses(reg, fields, []models.Response{
			{FieldID: "f1", Value: "Ada"},
			{FieldID: "f2", Value: "ada@example.com"},
			{FieldID: "f3", Value: "12345"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(errs) != 0 {
			t.Errorf("expected no errors, got %v", errs)
		}
	})

	t.Run("unknown stored type skips length but keeps required", func(t *testing.T) {
		odd := []models.Field{
			{ID: "f1", Label: "Legacy", Name: "legacy", Type: "slider", Required: true},
		}
		errs, err := Responses(reg, odd, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(errs) != 1 || errs[0] != "Legacy is required" {
			t.Errorf("unexpected errors: %v", errs)
		}
	})
}
