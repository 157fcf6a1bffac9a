package codegen

import (
	"fmt"

	"github.com/bmrskit/bmrsgen/internal/config"
	enumtables "github.com/bmrskit/bmrsgen/internal/enums"
	"github.com/bmrskit/bmrsgen/internal/model"
	"github.com/bmrskit/bmrsgen/internal/pygen"
	"github.com/bmrskit/bmrsgen/internal/targets/client"
	enumstarget "github.com/bmrskit/bmrsgen/internal/targets/enums"
	"github.com/bmrskit/bmrsgen/internal/targets/gotypes"
	"github.com/bmrskit/bmrsgen/internal/targets/models"
	"github.com/bmrskit/bmrsgen/internal/templates"
	embeddedtmpl "github.com/bmrskit/bmrsgen/templates"
)

type Generator struct {
	config *config.Config
	engine templates.Engine
}

type Output struct {
	Filename string
	Content  string
}

func New(cfg *config.Config) (*Generator, error) {
	engine, err := templates.NewEngine(embeddedtmpl.FS, cfg.Templates.Dir, nil)
	if err != nil {
		return nil, fmt.Errorf("creating template engine: %w", err)
	}

	return &Generator{
		config: cfg,
		engine: engine,
	}, nil
}

// Generate runs every selected target against one shared plan. The plan
// is built once with a single collision context so model, wrapper and
// method names stay consistent across targets regardless of which subset
// is selected.
func (g *Generator) Generate(spec *model.Spec) ([]Output, []string, error) {
	defs, err := g.mixinDefinitions()
	if err != nil {
		return nil, nil, err
	}
	overrides := g.enumOverrides()

	plan := pygen.BuildPlan(spec, pygen.Options{
		EnumOverrides:     overrides,
		AlwaysRequired:    g.config.Generation.AlwaysRequired,
		Mixins:            defs,
		StripPathPrefixes: g.config.Generation.StripPathPrefixes,
	})

	var outputs []Output

	if g.config.HasTarget("models") {
		content, err := models.New().Generate(g.engine, plan, g.config.Python.Package, defs, overrides)
		if err != nil {
			return nil, nil, fmt.Errorf("generating models: %w", err)
		}
		outputs = append(outputs, Output{
			Filename: "generated_models.py",
			Content:  content,
		})
	}

	if g.config.HasTarget("client") {
		content, err := client.New().Generate(g.engine, plan, g.config.Python.Package)
		if err != nil {
			return nil, nil, fmt.Errorf("generating client: %w", err)
		}
		outputs = append(outputs, Output{
			Filename: "generated_client.py",
			Content:  content,
		})
	}

	if g.config.HasTarget("enums") {
		content, err := enumstarget.New().Generate(g.engine)
		if err != nil {
			return nil, nil, fmt.Errorf("generating enums: %w", err)
		}
		outputs = append(outputs, Output{
			Filename: "enums.py",
			Content:  content,
		})
	}

	if g.config.HasTarget("gotypes") {
		content, err := gotypes.New().Generate(g.engine, plan, g.config.Go.Package, overrides)
		if err != nil {
			return nil, nil, fmt.Errorf("generating go types: %w", err)
		}
		formatted, err := gotypes.Format([]byte(content))
		if err != nil {
			return nil, nil, fmt.Errorf("formatting go types: %w", err)
		}
		outputs = append(outputs, Output{
			Filename: "types.go",
			Content:  string(formatted),
		})
	}

	return outputs, plan.Notes, nil
}

func (g *Generator) mixinDefinitions() (pygen.MixinDefinitions, error) {
	if g.config.Generation.MixinsFile != "" {
		return pygen.LoadMixinDefinitions(g.config.Generation.MixinsFile)
	}
	return pygen.DefaultMixinDefinitions()
}

func (g *Generator) enumOverrides() map[string]string {
	if !g.config.Generation.UseEnumOverrides {
		return nil
	}
	if len(g.config.Generation.EnumOverrides) > 0 {
		return g.config.Generation.EnumOverrides
	}
	return enumtables.DefaultOverrides()
}
