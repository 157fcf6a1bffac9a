package models

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bmrskit/bmrsgen/internal/pygen"
	"github.com/bmrskit/bmrsgen/internal/templates"
)

type Target struct{}

func New() *Target {
	return &Target{}
}

func (t *Target) Name() string {
	return "models"
}

type templateData struct {
	Title             string
	Package           string
	UsesEnums         bool
	UsesValidators    bool
	UsesFieldMixins   bool
	FieldMixinAliases []string
	EnumAliases       []string
	ValidatorAliases  []string
	Models            []modelView
	Wrappers          []pygen.WrapperDefinition
}

type modelView struct {
	ClassName string
	Bases     string
	Docstring string
	Fields    []string
}

func (t *Target) Generate(engine templates.Engine, plan *pygen.Plan, pkg string, defs pygen.MixinDefinitions, enumOverrides map[string]string) (string, error) {
	structural := make(map[string]bool)
	for _, g := range defs.FieldGroups {
		structural[g.Name] = true
	}
	for _, g := range defs.SingleFieldGroups {
		structural[g.Name] = true
	}

	enumNames := make([]string, 0, len(enumOverrides))
	for _, class := range enumOverrides {
		enumNames = append(enumNames, class)
	}
	sort.Strings(enumNames)

	data := templateData{
		Title:    plan.Title,
		Package:  pkg,
		Wrappers: plan.Wrappers,
	}

	usedStructural := make(map[string]bool)
	usedBehavioral := make(map[string]bool)
	usedEnums := make(map[string]bool)

	for _, m := range plan.Models {
		view := modelView{
			ClassName: m.ClassName,
			Docstring: sanitizeText(m.Description),
		}
		if len(m.Mixins) > 0 {
			view.Bases = strings.Join(append(append([]string{}, m.Mixins...), "BaseModel"), ", ")
		} else {
			view.Bases = "BaseModel"
		}
		for _, mixin := range m.Mixins {
			if structural[mixin] {
				usedStructural[mixin] = true
			} else {
				usedBehavioral[mixin] = true
			}
		}
		for _, f := range m.Fields {
			view.Fields = append(view.Fields, fieldLine(f))
			for _, class := range enumNames {
				if strings.Contains(f.Type, class) {
					usedEnums[class] = true
				}
			}
		}
		data.Models = append(data.Models, view)
	}

	data.UsesFieldMixins = len(usedStructural) > 0
	data.UsesValidators = len(usedBehavioral) > 0
	data.UsesEnums = len(usedEnums) > 0
	data.FieldMixinAliases = sortedKeys(usedStructural)
	data.ValidatorAliases = sortedKeys(usedBehavioral)
	data.EnumAliases = sortedKeys(usedEnums)

	return engine.Execute("python/models.py.tmpl", data)
}

// fieldLine renders one field declaration. Fields whose requiredness was
// widened beyond the published document carry a trailing marker so the
// divergence stays visible in the output.
func fieldLine(f pygen.FieldSpec) string {
	var params []string
	if f.Alias != "" {
		params = append(params, fmt.Sprintf("alias=%q", f.Alias))
	}
	if f.Description != "" {
		params = append(params, fmt.Sprintf("description=%q", sanitizeText(f.Description)))
	}
	if f.Example != nil {
		switch v := f.Example.(type) {
		case string:
			params = append(params, fmt.Sprintf("examples=[%q]", v))
		default:
			params = append(params, fmt.Sprintf("examples=[%v]", v))
		}
	}

	var line string
	switch {
	case len(params) > 0 && f.Required:
		line = fmt.Sprintf("%s: %s = Field(%s)", f.PyName, f.Type, strings.Join(params, ", "))
	case len(params) > 0:
		line = fmt.Sprintf("%s: %s = Field(default=None, %s)", f.PyName, f.Type, strings.Join(params, ", "))
	case f.Required:
		line = fmt.Sprintf("%s: %s", f.PyName, f.Type)
	default:
		line = fmt.Sprintf("%s: %s = None", f.PyName, f.Type)
	}

	if f.Forced {
		line += "  # required per observed API behaviour"
	}
	return line
}

func sanitizeText(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", "")
	return strings.TrimSpace(s)
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
