package pygen

import "github.com/bmrskit/bmrsgen/internal/model"

// Inferrer decides per-field requiredness. A field is required when the
// schema declares it so, or when it appears in the curated allow-list of
// names the source API always populates. The allow-list is injected
// configuration, never computed; treat it as empirical data and do not
// extend it without fresh sampling evidence.
type Inferrer struct {
	always map[string]bool
}

func NewInferrer(alwaysRequired []string) *Inferrer {
	always := make(map[string]bool, len(alwaysRequired))
	for _, name := range alwaysRequired {
		always[name] = true
	}
	return &Inferrer{always: always}
}

// IsRequired reports whether a field is semantically required.
func (i *Inferrer) IsRequired(field string, declared map[string]bool) bool {
	return declared[field] || i.always[field]
}

// Forced reports whether requiredness comes from the allow-list rather
// than the schema. Forced fields are annotated in the emitted output so
// the widening beyond the published spec stays visible.
func (i *Inferrer) Forced(field string) bool {
	return i.always[field]
}

// EffectiveSchema returns the node to use for type resolution. When the
// allow-list forces requiredness on a nullable field, a shallow copy with
// the nullable flag cleared is returned; the source node is never mutated.
func (i *Inferrer) EffectiveSchema(field string, s *model.Schema) *model.Schema {
	if s == nil || !i.always[field] || !s.Nullable {
		return s
	}
	copied := *s
	copied.Nullable = false
	return &copied
}
