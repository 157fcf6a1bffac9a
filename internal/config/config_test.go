package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		wantErr     bool
		errContains string
	}{
		{
			name: "valid config",
			config: Config{
				Spec:    "spec.json",
				Python:  PythonConfig{OutputDir: "generated", Package: "elexon_bmrs"},
				Targets: []string{"models", "client"},
			},
			wantErr: false,
		},
		{
			name: "missing spec",
			config: Config{
				Python: PythonConfig{OutputDir: "generated", Package: "elexon_bmrs"},
			},
			wantErr:     true,
			errContains: "spec file is required",
		},
		{
			name: "missing package",
			config: Config{
				Spec:   "spec.json",
				Python: PythonConfig{OutputDir: "generated"},
			},
			wantErr:     true,
			errContains: "package name is required",
		},
		{
			name: "missing output dir",
			config: Config{
				Spec:   "spec.json",
				Python: PythonConfig{Package: "elexon_bmrs"},
			},
			wantErr:     true,
			errContains: "output directory is required",
		},
		{
			name: "invalid target",
			config: Config{
				Spec:    "spec.json",
				Python:  PythonConfig{OutputDir: "generated", Package: "elexon_bmrs"},
				Targets: []string{"server"},
			},
			wantErr:     true,
			errContains: "invalid target",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func newTestCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	BindCommonFlags(cmd)
	return cmd
}

func TestLoadDefaults(t *testing.T) {
	cmd := newTestCmd()
	require.NoError(t, cmd.PersistentFlags().Set("spec", "openapi.json"))

	cfg, err := Load(cmd, []string{"models"})
	require.NoError(t, err)

	assert.Equal(t, "openapi.json", cfg.Spec)
	assert.Equal(t, "elexon_bmrs", cfg.Python.Package)
	assert.Equal(t, "generated", cfg.Python.OutputDir)
	assert.Equal(t, []string{"models"}, cfg.Targets)
	assert.Equal(t, []string{"api", "v1", "v2", "bmrs"}, cfg.Generation.StripPathPrefixes)
	assert.True(t, cfg.Generation.UseEnumOverrides)
	assert.Equal(t, 10, cfg.Validation.PreviewLimit)
	assert.Contains(t, cfg.Generation.AlwaysRequired, "publishTime")
	assert.Contains(t, cfg.Generation.AlwaysRequired, "settlementDate")
}

// Fields the response sampling showed as nullable must never be forced
// required, or the emitted models reject real rows.
func TestAlwaysRequiredExcludesNullableFields(t *testing.T) {
	nullable := []string{
		"frequency", "temperature", "energyPrice", "procurementPrice",
		"amount", "forecastDate", "forecastWeek", "forecastYear",
		"weekStartDate", "calendarWeekNumber", "minimumPossible",
		"maximumAvailable", "affectedArea", "systemZone",
		"interconnectorName", "gspGroupId", "availableCapacity",
		"unavailableCapacity",
	}
	for _, field := range nullable {
		assert.NotContains(t, AlwaysRequired, field)
	}

	assert.Contains(t, AlwaysRequired, "settlementRunType")
	assert.Contains(t, AlwaysRequired, "systemManagementActionFlag")
	assert.Contains(t, AlwaysRequired, "price")
}

func TestLoadConfigFileAndFlagOverride(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "bmrsgen.yaml")
	content := `spec: from-file.json
python:
  package: custom_pkg
  output-dir: out
targets:
  - models
  - enums
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))

	cmd := newTestCmd()
	require.NoError(t, cmd.PersistentFlags().Set("config", configPath))

	cfg, err := Load(cmd, nil)
	require.NoError(t, err)
	assert.Equal(t, "from-file.json", cfg.Spec)
	assert.Equal(t, "custom_pkg", cfg.Python.Package)
	assert.Equal(t, "out", cfg.Python.OutputDir)
	assert.Equal(t, []string{"models", "enums"}, cfg.Targets)

	// Flags override file values.
	cmd2 := newTestCmd()
	require.NoError(t, cmd2.PersistentFlags().Set("config", configPath))
	require.NoError(t, cmd2.PersistentFlags().Set("spec", "from-flag.json"))

	cfg2, err := Load(cmd2, nil)
	require.NoError(t, err)
	assert.Equal(t, "from-flag.json", cfg2.Spec)
}

func TestLoadExpandsAllTarget(t *testing.T) {
	cmd := newTestCmd()
	require.NoError(t, cmd.PersistentFlags().Set("spec", "openapi.json"))

	cfg, err := Load(cmd, []string{"all"})
	require.NoError(t, err)
	assert.Equal(t, []string{"models", "client", "enums", "gotypes"}, cfg.Targets)
}

func TestHasTarget(t *testing.T) {
	cfg := Config{Targets: []string{"models", "enums"}}
	assert.True(t, cfg.HasTarget("models"))
	assert.False(t, cfg.HasTarget("client"))
}
