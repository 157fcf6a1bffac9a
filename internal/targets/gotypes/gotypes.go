// Package gotypes renders the parsed document as plain Go structs. It is
// the second emission back end: it consumes the same resolved plan as the
// Python targets but maps types independently, working from the retained
// schema nodes rather than the Python type expressions.
package gotypes

import (
	"strings"

	enumtables "github.com/bmrskit/bmrsgen/internal/enums"
	"github.com/bmrskit/bmrsgen/internal/model"
	"github.com/bmrskit/bmrsgen/internal/pygen"
	"github.com/bmrskit/bmrsgen/internal/templates"
)

type Target struct{}

func New() *Target {
	return &Target{}
}

func (t *Target) Name() string {
	return "gotypes"
}

type templateData struct {
	Package   string
	NeedsTime bool
	Enums     []enumView
	Models    []modelView
	Wrappers  []wrapperView
}

type enumView struct {
	Name    string
	Field   string
	Members []enumMemberView
}

type enumMemberView struct {
	ConstName string
	TypeName  string
	Value     string
}

type modelView struct {
	Name   string
	Doc    string
	Fields []fieldView
}

type fieldView struct {
	Name    string
	Type    string
	Tag     string
	Comment string
}

type wrapperView struct {
	Name string
	Item string
}

func (t *Target) Generate(engine templates.Engine, plan *pygen.Plan, pkg string, enumOverrides map[string]string) (string, error) {
	data := templateData{Package: pkg}

	for _, def := range enumtables.Definitions() {
		view := enumView{Name: def.ClassName, Field: def.Field}
		for _, m := range def.Members {
			view.Members = append(view.Members, enumMemberView{
				ConstName: def.ClassName + goTypeName(strings.ToLower(m.Name)),
				TypeName:  def.ClassName,
				Value:     m.Value,
			})
		}
		data.Enums = append(data.Enums, view)
	}

	for _, m := range plan.Models {
		view := modelView{
			Name: goTypeName(m.ClassName),
			Doc:  docSentence(m.Description),
		}
		for _, f := range m.Fields {
			view.Fields = append(view.Fields, buildField(f, enumOverrides, ""))
		}
		for _, f := range m.MixinFields {
			view.Fields = append(view.Fields, buildField(f, enumOverrides, "provided by "+f.Mixin))
		}
		for _, f := range view.Fields {
			if strings.Contains(f.Type, "time.Time") {
				data.NeedsTime = true
			}
		}
		data.Models = append(data.Models, view)
	}

	for _, w := range plan.Wrappers {
		data.Wrappers = append(data.Wrappers, wrapperView{
			Name: goTypeName(w.ClassName),
			Item: goTypeName(w.ItemClass),
		})
	}

	return engine.Execute("go/types.tmpl", data)
}

// buildField maps a resolved field onto a Go struct field. Composed
// Python back ends source these fields from mixin classes; the flat Go
// structs carry them inline with an attribution comment instead.
func buildField(f pygen.FieldSpec, enumOverrides map[string]string, comment string) fieldView {
	return fieldView{
		Name:    pascal(f.Name),
		Type:    goType(f.Schema, f.Required, f.Name, enumOverrides),
		Tag:     f.Name,
		Comment: comment,
	}
}

func goType(s *model.Schema, required bool, fieldName string, enumOverrides map[string]string) string {
	if class, ok := enumOverrides[fieldName]; ok && fieldName != "" {
		return pointerUnless(class, required)
	}
	if s == nil {
		return "any"
	}
	if s.Ref != "" {
		return pointerUnless(goTypeName(pygen.TypeName(model.RefName(s.Ref))), required)
	}
	if s.Type == model.TypeArray {
		return "[]" + goType(s.Items, true, fieldName, enumOverrides)
	}

	var base string
	switch {
	case s.Format == "date" || s.Format == "date-time":
		base = "time.Time"
	case s.Type == model.TypeInteger:
		base = "int"
	case s.Type == model.TypeNumber:
		base = "float64"
	case s.Type == model.TypeBoolean:
		base = "bool"
	case s.Type == model.TypeObject:
		return "map[string]any"
	case s.Type == model.TypeString:
		base = "string"
	default:
		return "any"
	}

	if s.Nullable || !required {
		return "*" + base
	}
	return base
}

func pointerUnless(t string, required bool) string {
	if required {
		return t
	}
	return "*" + t
}

// goTypeName converts an emitted class name (which may carry underscore
// suffixes like _DatasetResponse or _2) into an exported identifier.
func goTypeName(class string) string {
	parts := strings.Split(class, "_")
	var b strings.Builder
	for _, p := range parts {
		b.WriteString(pascal(p))
	}
	return b.String()
}

func pascal(s string) string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func docSentence(desc string) string {
	desc = strings.TrimSpace(strings.ReplaceAll(desc, "\n", " "))
	if desc == "" {
		return ""
	}
	if i := strings.Index(desc, ". "); i >= 0 {
		desc = desc[:i+1]
	}
	return desc
}
