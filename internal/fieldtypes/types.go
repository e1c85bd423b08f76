package fieldtypes

import "gopkg.in/yaml.v3"

// Capabilities describes what one field type supports. The registry is the
// single source of truth for the field type enumeration; services validate
// a field's type and constraint bundle against it.
type Capabilities struct {
	// Type identifier (set during YAML unmarshaling)
	ID string `yaml:"-" json:"id"`

	// Display information for form-builder UIs
	DisplayName string `yaml:"display_name" json:"displayName"`
	Description string `yaml:"description" json:"description"`

	// SupportsOptions: the field renders a fixed choice list
	// (select, radio, checkbox); options are rejected elsewhere.
	SupportsOptions bool `yaml:"supports_options" json:"supportsOptions"`

	// SupportsLength: free-text types where min/max length checks apply
	SupportsLength bool `yaml:"supports_length" json:"supportsLength"`

	// SupportsPattern: types that accept a regex constraint
	SupportsPattern bool `yaml:"supports_pattern" json:"supportsPattern"`
}

// registryFile is the on-disk shape of the embedded YAML file
type registryFile struct {
	Types []Capabilities `yaml:"-"`
}

// UnmarshalYAML implements custom YAML unmarshaling to preserve the type
// order from the YAML file (maps would lose it).
func (r *registryFile) UnmarshalYAML(node *yaml.Node) error {
	var typesNode *yaml.Node
	for i := 0; i < len(node.Content); i += 2 {
		if node.Content[i].Value == "types" {
			typesNode = node.Content[i+1]
			break
		}
	}
	if typesNode == nil {
		return nil
	}

	for i := 0; i < len(typesNode.Content); i += 2 {
		var caps Capabilities
		if err := typesNode.Content[i+1].Decode(&caps); err != nil {
			return err
		}
		caps.ID = typesNode.Content[i].Value
		r.Types = append(r.Types, caps)
	}
	return nil
}
