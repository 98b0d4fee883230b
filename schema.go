package mcpcore

import (
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
)

// Param declares one tool input parameter.
type Param struct {
	Name        string
	Type        string // one of TypeString, TypeNumber, TypeBoolean, TypeArray, TypeObject
	Description string
	Required    bool
	Default     any      // applied when an optional parameter is absent
	Enum        []string // Optional enum values
}

// InputSchema is the ordered parameter list a tool declares. Order is
// preserved into the discovery surface.
type InputSchema []Param

// validate checks the schema at registration time: non-empty unique names
// and types from the closed set. An empty type means "any" and skips the
// runtime type check for that parameter.
func (s InputSchema) validate() error {
	seen := make(map[string]struct{}, len(s))
	for _, p := range s {
		if p.Name == "" {
			return fmt.Errorf("schema parameter: %w", ErrEmptyName)
		}
		if _, dup := seen[p.Name]; dup {
			return fmt.Errorf("schema parameter %q declared twice", p.Name)
		}
		seen[p.Name] = struct{}{}
		if p.Type != "" && !validParamType(p.Type) {
			return fmt.Errorf("%w: parameter %q has type %q (must be string, number, boolean, array, or object)", ErrInvalidParamType, p.Name, p.Type)
		}
	}
	return nil
}

// JSONSchema converts the parameter list into a JSON schema for the
// tools/list discovery response.
func (s InputSchema) JSONSchema() *jsonschema.Schema {
	properties := make(map[string]*jsonschema.Schema)
	var required []string

	for _, p := range s {
		prop := &jsonschema.Schema{
			Type:        p.Type,
			Description: p.Description,
		}

		if len(p.Enum) > 0 {
			enum := make([]any, len(p.Enum))
			for i, v := range p.Enum {
				enum[i] = v
			}
			prop.Enum = enum
		}

		properties[p.Name] = prop

		if p.Required {
			required = append(required, p.Name)
		}
	}

	return &jsonschema.Schema{
		Type:       "object",
		Properties: properties,
		Required:   required,
	}
}
