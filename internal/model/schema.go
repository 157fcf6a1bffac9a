package model

// Schema is one parsed OpenAPI schema fragment. Instances are built once
// per run by the loader and treated as read-only afterwards; callers that
// need to override a flag must work on a shallow copy.
type Schema struct {
	Name        string
	Description string
	Type        SchemaType
	Format      string
	Nullable    bool
	Example     any

	// Object properties, in document order
	Properties []Property
	Required   []string

	// Array items
	Items *Schema

	// Inline enum values
	Enum []any

	// Composition
	AllOf []*Schema
	OneOf []*Schema
	AnyOf []*Schema

	// Reference
	Ref string
}

type SchemaType string

const (
	TypeString  SchemaType = "string"
	TypeNumber  SchemaType = "number"
	TypeInteger SchemaType = "integer"
	TypeBoolean SchemaType = "boolean"
	TypeArray   SchemaType = "array"
	TypeObject  SchemaType = "object"
)

type Property struct {
	Name   string
	Schema *Schema
}

// IsComposition reports whether the schema is a pure allOf/oneOf/anyOf
// composition with no direct properties. The model generator skips these.
func (s *Schema) IsComposition() bool {
	if s == nil {
		return false
	}
	return len(s.Properties) == 0 && (len(s.AllOf) > 0 || len(s.OneOf) > 0 || len(s.AnyOf) > 0)
}

// RequiredSet returns the declared required field names as a set.
func (s *Schema) RequiredSet() map[string]bool {
	set := make(map[string]bool, len(s.Required))
	for _, name := range s.Required {
		set[name] = true
	}
	return set
}

// PropertyNames returns the names of all direct properties as a set.
func (s *Schema) PropertyNames() map[string]bool {
	set := make(map[string]bool, len(s.Properties))
	for _, p := range s.Properties {
		set[p.Name] = true
	}
	return set
}
