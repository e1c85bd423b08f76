package httputil

import (
	"bytes"
	"encoding/json"
)

// OptionalString tracks presence and value for JSON merge-patch semantics
// (RFC 7396). This enables tri-state handling that a plain *string cannot
// express:
//   - Present=false: key absent from JSON (leave unchanged)
//   - Present=true, Value=nil: key is JSON null (clear)
//   - Present=true, Value=&"": key is the empty string
//   - Present=true, Value=&"text": key has a value
type OptionalString struct {
	Present bool
	Value   *string
}

// UnmarshalJSON implements json.Unmarshaler.
// When this method is called, the key was present in the JSON.
func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.Present = true

	// Check for JSON null
	if string(bytes.TrimSpace(data)) == "null" {
		o.Value = nil
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	o.Value = &s
	return nil
}

// StringOrEmpty returns the supplied value, treating JSON null as the empty
// string. Only meaningful when Present is true.
func (o OptionalString) StringOrEmpty() string {
	if o.Value == nil {
		return ""
	}
	return *o.Value
}
