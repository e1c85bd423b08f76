package models

import (
	"time"
)

// Form is a named, versioned collection of ordered fields that end users
// fill out. Forms are soft-deleted: IsDeleted excludes them from admin
// reads and writes, but the row is never removed.
//
// JSON names are camelCase to match the wire contract consumed by the
// form-builder frontend.
type Form struct {
	ID          string    `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	Fields      []Field   `json:"fields" db:"fields"`
	Version     int       `json:"version" db:"version"`
	IsDeleted   bool      `json:"isDeleted" db:"is_deleted"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

// FormSummary is the listing projection of a form: metadata only, no fields.
type FormSummary struct {
	ID          string    `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	Version     int       `json:"version" db:"version"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

// Field is a single input definition embedded in a form. It is not an
// independent root: fields live inside the owning form's fields column and
// are addressed by their generated id.
//
// Name is the machine key and must be unique among sibling fields at all
// times. Order defines display position; it is not required to be contiguous
// or unique, and ties keep prior relative order (stable sort).
type Field struct {
	ID         string           `json:"id"`
	Label      string           `json:"label"`
	Name       string           `json:"name"`
	Type       string           `json:"type"`
	Required   bool             `json:"required"`
	Options    []string         `json:"options,omitempty"`
	Validation *ValidationRules `json:"validation,omitempty"`
	Order      int              `json:"order"`
}

// ValidationRules is the optional per-field constraint bundle. Regex is
// stored as a string and compiled at validation time; a pattern that fails
// to compile is a configuration fault, not a submission error.
type ValidationRules struct {
	MinLength *int   `json:"minLength,omitempty"`
	MaxLength *int   `json:"maxLength,omitempty"`
	Regex     string `json:"regex,omitempty"`
}

// FieldByID returns the embedded field with the given id, or nil.
func (f *Form) FieldByID(fieldID string) *Field {
	for i := range f.Fields {
		if f.Fields[i].ID == fieldID {
			return &f.Fields[i]
		}
	}
	return nil
}

// HasFieldName reports whether any field other than excludeID already uses
// the given machine name. Pass an empty excludeID when adding a new field.
func (f *Form) HasFieldName(name, excludeID string) bool {
	for i := range f.Fields {
		if f.Fields[i].Name == name && f.Fields[i].ID != excludeID {
			return true
		}
	}
	return false
}
