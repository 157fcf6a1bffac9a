package config

import (
	"fmt"
	"os"
	"slices"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
)

type Config struct {
	Spec       string           `koanf:"spec"`
	Templates  TemplateConfig   `koanf:"templates"`
	Python     PythonConfig     `koanf:"python"`
	Go         GoConfig         `koanf:"go"`
	Generation GenerationConfig `koanf:"generation"`
	Validation ValidationConfig `koanf:"validation"`
	Targets    []string         `koanf:"targets"`
}

type TemplateConfig struct {
	Dir string `koanf:"dir"`
}

type PythonConfig struct {
	OutputDir string `koanf:"output-dir"`
	Package   string `koanf:"package"`
}

type GoConfig struct {
	OutputDir string `koanf:"output-dir"`
	Package   string `koanf:"package"`
}

// GenerationConfig carries the curated tables that steer naming,
// requiredness and typing. The defaults are tuned for the Elexon BMRS
// document; point mixins-file at a YAML file to swap the group tables.
type GenerationConfig struct {
	AlwaysRequired    []string          `koanf:"always-required"`
	StripPathPrefixes []string          `koanf:"strip-path-prefixes"`
	MixinsFile        string            `koanf:"mixins-file"`
	EnumOverrides     map[string]string `koanf:"enum-overrides"`
	UseEnumOverrides  bool              `koanf:"use-enum-overrides"`
}

type ValidationConfig struct {
	Client       string `koanf:"client"`
	PreviewLimit int    `koanf:"preview-limit"`
}

// BindCommonFlags binds flags shared by every generate subcommand.
func BindCommonFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.StringP("config", "c", "", "Config file path (default: bmrsgen.yaml)")
	flags.StringP("spec", "s", "", "OpenAPI spec file path")
	flags.String("templates", "", "Custom templates directory")
	flags.String("output-dir", "", "Output directory for generated sources")
	flags.String("package", "", "Package name for generated sources")
	flags.String("mixins-file", "", "Mixin group definitions (YAML)")
	flags.Bool("dry-run", false, "Print output without writing files")
}

func Load(cmd *cobra.Command, targets []string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	configFile, _ := cmd.Flags().GetString("config")
	if configFile == "" {
		configFile, _ = cmd.PersistentFlags().GetString("config")
	}
	if configFile == "" {
		if _, err := os.Stat("bmrsgen.yaml"); err == nil {
			configFile = "bmrsgen.yaml"
		}
	}

	if configFile != "" {
		if err := k.Load(file.Provider(configFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	flagsMap := buildFlagsMap(cmd)
	if len(flagsMap) > 0 {
		if err := k.Load(confmap.Provider(flagsMap, "."), nil); err != nil {
			return nil, fmt.Errorf("loading flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	// CLI targets override config file targets
	if len(targets) > 0 {
		cfg.Targets = targets
	}
	cfg.Targets = expandTargets(cfg.Targets)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func expandTargets(targets []string) []string {
	var result []string
	for _, t := range targets {
		if t == "all" {
			result = append(result, "models", "client", "enums", "gotypes")
		} else {
			result = append(result, t)
		}
	}
	return result
}

func buildFlagsMap(cmd *cobra.Command) map[string]any {
	m := make(map[string]any)

	getString := func(name string) string {
		if v, err := cmd.Flags().GetString(name); err == nil && v != "" {
			return v
		}
		if v, err := cmd.PersistentFlags().GetString(name); err == nil && v != "" {
			return v
		}
		return ""
	}

	if v := getString("spec"); v != "" {
		m["spec"] = v
	}
	if v := getString("templates"); v != "" {
		m["templates.dir"] = v
	}
	if v := getString("output-dir"); v != "" {
		m["python.output-dir"] = v
	}
	if v := getString("package"); v != "" {
		m["python.package"] = v
	}
	if v := getString("mixins-file"); v != "" {
		m["generation.mixins-file"] = v
	}
	if v := getString("client"); v != "" {
		m["validation.client"] = v
	}

	return m
}

func (c *Config) Validate() error {
	if c.Spec == "" {
		return fmt.Errorf("spec file is required")
	}
	if c.Python.Package == "" {
		return fmt.Errorf("package name is required")
	}
	if c.Python.OutputDir == "" {
		return fmt.Errorf("output directory is required")
	}

	validTargets := map[string]bool{
		"models": true, "client": true, "enums": true, "gotypes": true,
	}
	for _, t := range c.Targets {
		if !validTargets[t] {
			return fmt.Errorf("invalid target: %s (valid: models, client, enums, gotypes)", t)
		}
	}

	return nil
}

// HasTarget checks if a specific target should be generated
func (c *Config) HasTarget(target string) bool {
	return slices.Contains(c.Targets, target)
}
