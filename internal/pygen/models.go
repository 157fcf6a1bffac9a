package pygen

import (
	"fmt"
	"sort"

	"github.com/bmrskit/bmrsgen/internal/model"
)

// FieldSpec is one emitted field of a generated model. Name is the wire
// name from the source document; PyName is the sanitized identifier. When
// the two differ the emitter must preserve the wire name as an alias so
// round-tripping stays lossless.
type FieldSpec struct {
	Name        string
	PyName      string
	Type        string
	Required    bool
	Forced      bool
	Alias       string
	Description string
	Example     any
	Mixin       string
	Schema      *model.Schema
}

// ModelDefinition is a fully resolved model ready for rendering. Fields
// holds the model's own fields in document order; MixinFields holds the
// fields claimed by structural groups, for back ends that emit flat
// records instead of composed classes. Own and claimed fields together
// cover every property of the source schema exactly once.
type ModelDefinition struct {
	ClassName   string
	SchemaName  string
	Description string
	Mixins      []string
	Fields      []FieldSpec
	MixinFields []FieldSpec
}

// ModelGenerator turns named document schemas into model definitions.
type ModelGenerator struct {
	resolver   *TypeResolver
	inferrer   *Inferrer
	classifier *Classifier
	ctx        *GenerationContext
}

func NewModelGenerator(resolver *TypeResolver, inferrer *Inferrer, classifier *Classifier, ctx *GenerationContext) *ModelGenerator {
	return &ModelGenerator{
		resolver:   resolver,
		inferrer:   inferrer,
		classifier: classifier,
		ctx:        ctx,
	}
}

// Generate produces a definition per named schema, sorted by raw schema
// name so output order is stable across runs. Pure composition schemas
// (allOf/oneOf/anyOf with no own properties) are skipped with a note.
func (g *ModelGenerator) Generate(spec *model.Spec) ([]ModelDefinition, []string) {
	schemas := make([]*model.Schema, 0, len(spec.Schemas))
	for i := range spec.Schemas {
		schemas = append(schemas, &spec.Schemas[i])
	}
	sort.Slice(schemas, func(i, j int) bool { return schemas[i].Name < schemas[j].Name })

	defs := make([]ModelDefinition, 0, len(schemas))
	var notes []string
	for _, s := range schemas {
		if s.IsComposition() {
			notes = append(notes, fmt.Sprintf("skipped composition schema %q: no own properties", s.Name))
			continue
		}
		defs = append(defs, g.generateOne(s.Name, s))
	}
	return defs, notes
}

func (g *ModelGenerator) generateOne(name string, s *model.Schema) ModelDefinition {
	def := ModelDefinition{
		ClassName:   g.ctx.ClaimTypeName(TypeName(name)),
		SchemaName:  name,
		Description: s.Description,
	}

	mixins, claimed := g.classifier.Classify(s.PropertyNames())
	def.Mixins = mixins

	declared := s.RequiredSet()
	for _, p := range s.Properties {
		fs := g.buildField(p, declared)
		if owner := claimed[p.Name]; owner != "" {
			fs.Mixin = owner
			def.MixinFields = append(def.MixinFields, fs)
			continue
		}
		def.Fields = append(def.Fields, fs)
	}
	return def
}

func (g *ModelGenerator) buildField(p model.Property, declared map[string]bool) FieldSpec {
	required := g.inferrer.IsRequired(p.Name, declared)
	fs := FieldSpec{
		Name:     p.Name,
		PyName:   FieldName(p.Name),
		Type:     g.resolver.Resolve(g.inferrer.EffectiveSchema(p.Name, p.Schema), required, p.Name),
		Required: required,
		Forced:   g.inferrer.Forced(p.Name) && !declared[p.Name],
		Schema:   p.Schema,
	}
	if fs.PyName != p.Name {
		fs.Alias = p.Name
	}
	if p.Schema != nil {
		fs.Description = p.Schema.Description
		fs.Example = p.Schema.Example
	}
	return fs
}
