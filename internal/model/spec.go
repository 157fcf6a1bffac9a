package model

import "strings"

type Spec struct {
	Info       Info
	Servers    []Server
	Paths      []Path
	Operations []Operation
	Schemas    []Schema
}

// SchemaByRef returns a schema by its $ref path (e.g.
// "#/components/schemas/Widget"), or nil if not found.
func (s *Spec) SchemaByRef(ref string) *Schema {
	name := RefName(ref)
	if name == "" {
		return nil
	}
	for i := range s.Schemas {
		if s.Schemas[i].Name == name {
			return &s.Schemas[i]
		}
	}
	return nil
}

// RefName extracts the final segment of a $ref path.
func RefName(ref string) string {
	if ref == "" {
		return ""
	}
	parts := strings.Split(ref, "/")
	return parts[len(parts)-1]
}

type Info struct {
	Title       string
	Description string
	Version     string
}

type Server struct {
	URL         string
	Description string
}

type Path struct {
	Path       string
	Operations []Operation
}
