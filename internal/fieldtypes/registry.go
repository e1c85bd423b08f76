package fieldtypes

import (
	"embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed config/*.yaml
var configFiles embed.FS

// Registry holds the supported field types and their capabilities.
type Registry struct {
	byID    map[string]*Capabilities
	ordered []Capabilities
	mu      sync.RWMutex
}

// NewRegistry creates a field type registry from the embedded YAML file
func NewRegistry() (*Registry, error) {
	data, err := configFiles.ReadFile("config/fieldtypes.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read field type config: %w", err)
	}

	var file registryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to unmarshal field type config: %w", err)
	}
	if len(file.Types) == 0 {
		return nil, fmt.Errorf("field type config defines no types")
	}

	r := &Registry{
		byID:    make(map[string]*Capabilities, len(file.Types)),
		ordered: file.Types,
	}
	for i := range r.ordered {
		r.byID[r.ordered[i].ID] = &r.ordered[i]
	}

	return r, nil
}

// Get returns the capabilities for a field type
func (r *Registry) Get(fieldType string) (*Capabilities, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	caps, ok := r.byID[fieldType]
	return caps, ok
}

// Known reports whether the given field type is part of the enumeration
func (r *Registry) Known(fieldType string) bool {
	_, ok := r.Get(fieldType)
	return ok
}

// List returns all field types (ordered as defined in the YAML file)
func (r *Registry) List() []Capabilities {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.ordered
}
