package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmrskit/bmrsgen/internal/codegen"
	"github.com/bmrskit/bmrsgen/internal/config"
	"github.com/bmrskit/bmrsgen/internal/loader"
	"github.com/spf13/cobra"
)

func GenerateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate client code from the OpenAPI specification",
	}

	config.BindCommonFlags(cmd)

	cmd.AddCommand(
		newModelsCmd(),
		newClientCmd(),
		newEnumsCmd(),
		newGoTypesCmd(),
		newAllCmd(),
	)

	return cmd
}

func newModelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "Generate Pydantic model definitions",
		RunE:  runGenerate("models"),
	}
}

func newClientCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "client",
		Short: "Generate typed client methods",
		RunE:  runGenerate("client"),
	}
}

func newEnumsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "enums",
		Short: "Generate enum types for classification fields",
		RunE:  runGenerate("enums"),
	}
}

func newGoTypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gotypes",
		Short: "Generate Go struct definitions",
		RunE:  runGenerate("gotypes"),
	}
}

func newAllCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Generate all targets (models, client, enums, gotypes)",
		RunE:  runGenerate("all"),
	}
}

func runGenerate(target string) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cmd, []string{target})
		if err != nil {
			return err
		}

		result, err := loader.LoadFile(cfg.Spec)
		if err != nil {
			return fmt.Errorf("loading spec: %w", err)
		}

		for _, w := range result.Warnings {
			cmd.PrintErrf("Warning: %s\n", w)
		}

		spec, err := loader.Transform(result)
		if err != nil {
			return fmt.Errorf("transforming spec: %w", err)
		}

		cmd.PrintErrf("Loaded OpenAPI %s: %s v%s\n", result.Version, spec.Info.Title, spec.Info.Version)
		cmd.PrintErrf("  Schemas: %d\n", len(spec.Schemas))
		cmd.PrintErrf("  Operations: %d\n", len(spec.Operations))

		gen, err := codegen.New(cfg)
		if err != nil {
			return fmt.Errorf("creating generator: %w", err)
		}

		outputs, notes, err := gen.Generate(spec)
		if err != nil {
			return fmt.Errorf("generating code: %w", err)
		}

		for _, note := range notes {
			cmd.PrintErrf("Note: %s\n", note)
		}

		dryRun, _ := cmd.Flags().GetBool("dry-run")
		if dryRun {
			for _, out := range outputs {
				cmd.Printf("# %s\n%s\n", out.Filename, out.Content)
			}
			return nil
		}

		if err := os.MkdirAll(cfg.Python.OutputDir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}

		for _, out := range outputs {
			dir := cfg.Python.OutputDir
			if out.Filename == "types.go" {
				dir = cfg.Go.OutputDir
				if err := os.MkdirAll(dir, 0755); err != nil {
					return fmt.Errorf("creating output directory: %w", err)
				}
			}
			path := filepath.Join(dir, out.Filename)
			if err := os.WriteFile(path, []byte(out.Content), 0644); err != nil {
				return fmt.Errorf("writing %s: %w", path, err)
			}
			cmd.PrintErrf("Written: %s\n", path)
		}

		return nil
	}
}
