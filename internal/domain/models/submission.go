package models

import (
	"time"
)

// Submission is an immutable record of one user's responses to a form.
// It references the owning form by id only (weak reference for lookup);
// no update or delete operations exist.
type Submission struct {
	ID        string     `json:"id" db:"id"`
	FormID    string     `json:"formId" db:"form_id"`
	Responses []Response `json:"responses" db:"responses"`
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`
}

// Response pairs a field id with the submitted value. Value is loosely
// typed: a scalar for most field types, an array for multi-select inputs
// like checkboxes. It is persisted verbatim after validation.
type Response struct {
	FieldID string `json:"fieldId"`
	Value   any    `json:"value"`
}
