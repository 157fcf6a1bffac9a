package pygen

import "github.com/bmrskit/bmrsgen/internal/model"

// Options carries the curated configuration tables that shape a run.
type Options struct {
	EnumOverrides     map[string]string
	AlwaysRequired    []string
	Mixins            MixinDefinitions
	StripPathPrefixes []string
}

// Plan is the fully resolved output of one generation run: every model,
// synthesized envelope wrapper, and client method, plus the notes the
// generators recorded along the way. Targets render from a Plan and never
// touch the source document directly.
type Plan struct {
	Title   string
	Version string

	Models   []ModelDefinition
	Wrappers []WrapperDefinition
	Methods  []MethodDefinition
	Notes    []string
}

// MixinsInUse returns the mixin names referenced by at least one model,
// preserving first-use order.
func (p *Plan) MixinsInUse() []string {
	seen := make(map[string]bool)
	var names []string
	for _, m := range p.Models {
		for _, mixin := range m.Mixins {
			if !seen[mixin] {
				seen[mixin] = true
				names = append(names, mixin)
			}
		}
	}
	return names
}

// BuildPlan runs the model and method generators over a parsed document
// with a fresh collision context, so model classes, envelope wrappers and
// method names share one namespace and repeated runs over the same input
// produce identical output.
func BuildPlan(spec *model.Spec, opts Options) *Plan {
	ctx := NewGenerationContext()
	resolver := NewTypeResolver(opts.EnumOverrides)
	inferrer := NewInferrer(opts.AlwaysRequired)
	classifier := NewClassifier(opts.Mixins)

	models, modelNotes := NewModelGenerator(resolver, inferrer, classifier, ctx).Generate(spec)
	methods, wrappers, methodNotes := NewMethodGenerator(ctx, opts.StripPathPrefixes).Generate(spec)

	plan := &Plan{
		Title:    spec.Info.Title,
		Version:  spec.Info.Version,
		Models:   models,
		Wrappers: wrappers,
		Methods:  methods,
	}
	plan.Notes = append(plan.Notes, modelNotes...)
	plan.Notes = append(plan.Notes, methodNotes...)
	return plan
}
