package pygen

import (
	_ "embed"
	"fmt"
	"os"

	"go.yaml.in/yaml/v4"
)

//go:embed mixins.yaml
var defaultMixinDefs []byte

// FieldGroup is a multi-field structural mixin: all listed fields must be
// present for the group to match, and matching claims every one of them.
type FieldGroup struct {
	Name   string   `yaml:"name"`
	Fields []string `yaml:"fields"`
}

// SingleFieldGroup is a structural mixin keyed by one field. Evaluated
// after the multi-field groups so a field already claimed there is never
// claimed again for the same concept.
type SingleFieldGroup struct {
	Name  string `yaml:"name"`
	Field string `yaml:"field"`
}

// BehavioralGroup attaches helper semantics (validators, interpretation
// methods) without claiming fields. A field may belong to a structural
// group and still contribute to a behavioral one.
type BehavioralGroup struct {
	Name          string   `yaml:"name"`
	Any           []string `yaml:"any"`
	All           []string `yaml:"all"`
	UnlessClaimed bool     `yaml:"unless-claimed"`
}

type MixinDefinitions struct {
	FieldGroups       []FieldGroup       `yaml:"field-groups"`
	SingleFieldGroups []SingleFieldGroup `yaml:"single-field-groups"`
	BehavioralGroups  []BehavioralGroup  `yaml:"behavioral-groups"`
}

// DefaultMixinDefinitions parses the embedded group tables.
func DefaultMixinDefinitions() (MixinDefinitions, error) {
	var defs MixinDefinitions
	if err := yaml.Unmarshal(defaultMixinDefs, &defs); err != nil {
		return MixinDefinitions{}, fmt.Errorf("parsing embedded mixin definitions: %w", err)
	}
	return defs, nil
}

// LoadMixinDefinitions reads group tables from a YAML file, for overriding
// the embedded defaults.
func LoadMixinDefinitions(path string) (MixinDefinitions, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return MixinDefinitions{}, fmt.Errorf("reading mixin definitions: %w", err)
	}
	var defs MixinDefinitions
	if err := yaml.Unmarshal(data, &defs); err != nil {
		return MixinDefinitions{}, fmt.Errorf("parsing mixin definitions %s: %w", path, err)
	}
	return defs, nil
}

// Classifier determines which mixin groups apply to a model's field set.
type Classifier struct {
	defs MixinDefinitions
}

func NewClassifier(defs MixinDefinitions) *Classifier {
	return &Classifier{defs: defs}
}

// Classify evaluates the group tables against a field-name set. It returns
// the applicable mixin names in declaration order and a map from each
// structurally claimed field to the group that owns it. The order is
// stable for identical input: it becomes the emitted base-class order.
func (c *Classifier) Classify(fields map[string]bool) ([]string, map[string]string) {
	var mixins []string
	claimed := make(map[string]string)

	for _, g := range c.defs.FieldGroups {
		if !containsAll(fields, g.Fields) {
			continue
		}
		mixins = append(mixins, g.Name)
		for _, f := range g.Fields {
			claimed[f] = g.Name
		}
	}

	for _, g := range c.defs.SingleFieldGroups {
		if fields[g.Field] && claimed[g.Field] == "" {
			mixins = append(mixins, g.Name)
			claimed[g.Field] = g.Name
		}
	}

	for _, g := range c.defs.BehavioralGroups {
		if c.behavioralApplies(g, fields, claimed) {
			mixins = append(mixins, g.Name)
		}
	}

	return mixins, claimed
}

func (c *Classifier) behavioralApplies(g BehavioralGroup, fields map[string]bool, claimed map[string]string) bool {
	if len(g.All) > 0 {
		return containsAll(fields, g.All)
	}
	for _, f := range g.Any {
		if fields[f] && !(g.UnlessClaimed && claimed[f] != "") {
			return true
		}
	}
	return false
}

func containsAll(fields map[string]bool, names []string) bool {
	for _, name := range names {
		if !fields[name] {
			return false
		}
	}
	return true
}
