package pygen

import (
	"fmt"
	"strings"

	"github.com/bmrskit/bmrsgen/internal/model"
)

// ParameterSpec is one bound parameter of a client method. Name is the
// wire-format key sent to the API; PyName is the escaped identifier used
// in the signature and body.
type ParameterSpec struct {
	Name        string
	PyName      string
	In          model.ParameterLocation
	Type        string
	Required    bool
	Description string
}

// ResponseKind classifies how a method's return value is built from the
// raw response body.
type ResponseKind int

const (
	// ResponseFallback returns the decoded body untyped.
	ResponseFallback ResponseKind = iota
	// ResponseModel coerces the body into a single model.
	ResponseModel
	// ResponseModelList coerces each element of a top-level array.
	ResponseModelList
	// ResponseEnvelope coerces the body into a generated wrapper whose
	// data attribute holds a list of Model instances.
	ResponseEnvelope
)

// MethodDefinition is a fully resolved client method ready for rendering.
// Path has reserved-word placeholders rewritten to their escaped names so
// it can be interpolated directly; RawPath keeps the original template.
type MethodDefinition struct {
	Name          string
	Verb          string
	RawPath       string
	Path          string
	Summary       string
	Description   string
	Deprecated    bool
	PathParams    []ParameterSpec
	QueryParams   []ParameterSpec
	ResponseKind  ResponseKind
	ResponseModel string
}

// WrapperDefinition is a synthesized envelope model for endpoints whose
// success response is an inline object holding a data array of referenced
// rows. The wrapper is emitted alongside the regular models.
type WrapperDefinition struct {
	ClassName string
	ItemClass string
}

// MethodGenerator turns path operations into client method definitions.
type MethodGenerator struct {
	ctx           *GenerationContext
	stripPrefixes []string
	wrappers      map[string]string
}

func NewMethodGenerator(ctx *GenerationContext, stripPrefixes []string) *MethodGenerator {
	return &MethodGenerator{
		ctx:           ctx,
		stripPrefixes: stripPrefixes,
		wrappers:      make(map[string]string),
	}
}

// Generate walks paths in document order and produces one method per
// operation. When two operations reduce to the same method name the first
// wins and later ones are skipped with a note, so reordering unrelated
// paths never silently changes which implementation survives.
func (g *MethodGenerator) Generate(spec *model.Spec) ([]MethodDefinition, []WrapperDefinition, []string) {
	var methods []MethodDefinition
	var wrappers []WrapperDefinition
	var notes []string

	for _, path := range spec.Paths {
		for i := range path.Operations {
			op := &path.Operations[i]
			name := MethodName(op.ID, string(op.Method), op.Path, g.stripPrefixes)
			if !g.ctx.ClaimMethodName(name) {
				notes = append(notes, fmt.Sprintf("skipped duplicate method %q (%s %s)", name, op.Method, op.Path))
				continue
			}

			def := MethodDefinition{
				Name:        name,
				Verb:        string(op.Method),
				RawPath:     op.Path,
				Path:        op.Path,
				Summary:     op.Summary,
				Description: op.Description,
				Deprecated:  op.Deprecated,
			}
			g.bindParameters(op, &def)

			kind, modelName, wrapper := g.resolveResponse(op.SuccessSchema())
			def.ResponseKind = kind
			def.ResponseModel = modelName
			if wrapper != nil {
				wrappers = append(wrappers, *wrapper)
			}

			methods = append(methods, def)
		}
	}
	return methods, wrappers, notes
}

// bindParameters splits parameters by location. Path parameters are
// always required regardless of what the document declares; query
// parameters are ordered required-first so the signature keeps valid
// default ordering.
func (g *MethodGenerator) bindParameters(op *model.Operation, def *MethodDefinition) {
	var optional []ParameterSpec
	for _, p := range op.Parameters {
		spec := ParameterSpec{
			Name:        p.Name,
			PyName:      ParamName(p.Name),
			In:          p.In,
			Type:        paramType(p.Schema),
			Required:    p.Required,
			Description: p.Description,
		}
		switch p.In {
		case model.LocationPath:
			spec.Required = true
			def.PathParams = append(def.PathParams, spec)
			if spec.PyName != spec.Name {
				def.Path = strings.ReplaceAll(def.Path, "{"+spec.Name+"}", "{"+spec.PyName+"}")
			}
		case model.LocationQuery:
			if spec.Required {
				def.QueryParams = append(def.QueryParams, spec)
			} else {
				optional = append(optional, spec)
			}
		}
	}
	def.QueryParams = append(def.QueryParams, optional...)
}

// paramType maps a parameter schema onto a plain hint. Parameters stay
// simple strings unless the document says otherwise; nested objects are
// not supported in query position.
func paramType(s *model.Schema) string {
	if s == nil {
		return "str"
	}
	if s.Type == model.TypeArray {
		return "List[" + paramType(s.Items) + "]"
	}
	base := baseType(s)
	if base == AnyDictType || base == "Any" {
		return "str"
	}
	return base
}

// resolveResponse decides the return type for a success schema. Envelope
// wrappers are synthesized once per item class and shared by every
// endpoint returning the same shape.
func (g *MethodGenerator) resolveResponse(s *model.Schema) (ResponseKind, string, *WrapperDefinition) {
	if s == nil {
		return ResponseFallback, "", nil
	}
	if s.Ref != "" {
		return ResponseModel, TypeName(model.RefName(s.Ref)), nil
	}
	if s.Type == model.TypeArray && s.Items != nil && s.Items.Ref != "" {
		return ResponseModelList, TypeName(model.RefName(s.Items.Ref)), nil
	}

	for _, p := range s.Properties {
		if p.Name != "data" || p.Schema == nil {
			continue
		}
		if p.Schema.Type == model.TypeArray && p.Schema.Items != nil && p.Schema.Items.Ref != "" {
			item := TypeName(model.RefName(p.Schema.Items.Ref))
			if existing, ok := g.wrappers[item]; ok {
				return ResponseEnvelope, existing, nil
			}
			className := g.ctx.ClaimTypeName(item + "Response")
			g.wrappers[item] = className
			return ResponseEnvelope, className, &WrapperDefinition{ClassName: className, ItemClass: item}
		}
	}
	return ResponseFallback, "", nil
}
