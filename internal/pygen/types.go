package pygen

import (
	"strings"

	"github.com/bmrskit/bmrsgen/internal/model"
)

// Fallback type for schemas the generator cannot resolve.
const AnyDictType = "Dict[str, Any]"

var typeMapping = map[model.SchemaType]string{
	model.TypeString:  "str",
	model.TypeInteger: "int",
	model.TypeNumber:  "float",
	model.TypeBoolean: "bool",
	model.TypeObject:  AnyDictType,
}

// Format-specific mappings take priority over the generic type mapping:
// a date-time format forces a datetime even when the declared type is
// string.
var formatMapping = map[string]string{
	"date":      "date",
	"date-time": "datetime",
	"int32":     "int",
	"int64":     "int",
	"float":     "float",
	"double":    "float",
}

// TypeResolver maps a schema node to a type expression for the emitted
// source. The enum override table redirects known classification fields
// to their enum types regardless of the declared schema type.
type TypeResolver struct {
	enumOverrides map[string]string
}

func NewTypeResolver(enumOverrides map[string]string) *TypeResolver {
	return &TypeResolver{enumOverrides: enumOverrides}
}

// Resolve returns the type expression for a field. Priority order: enum
// override, $ref, array, nullable/optional wrapping, base type. Optional
// wrapping is idempotent.
func (r *TypeResolver) Resolve(s *model.Schema, required bool, fieldName string) string {
	if enumType, ok := r.enumOverrides[fieldName]; ok && fieldName != "" {
		return optionalUnless(enumType, required)
	}

	if s == nil {
		return optionalUnless("Any", required)
	}

	if s.Ref != "" {
		return optionalUnless(TypeName(model.RefName(s.Ref)), required)
	}

	if s.Type == model.TypeArray {
		// Array elements are never individually optional.
		itemType := r.Resolve(s.Items, true, fieldName)
		return optionalUnless("List["+itemType+"]", required)
	}

	base := baseType(s)
	if s.Nullable || !required {
		return optionalUnless(base, false)
	}
	return base
}

func baseType(s *model.Schema) string {
	if s.Format != "" {
		if t, ok := formatMapping[s.Format]; ok {
			return t
		}
	}
	if t, ok := typeMapping[s.Type]; ok {
		return t
	}
	return "Any"
}

func optionalUnless(t string, required bool) string {
	if required {
		return t
	}
	if strings.HasPrefix(t, "Optional[") {
		return t
	}
	return "Optional[" + t + "]"
}
