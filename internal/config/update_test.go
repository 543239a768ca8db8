package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.Table.Basic = true
	cfg.Process.HiddenColumns = []string{"user"}
	cfg.Colors.Header = "#FF2E97"

	require.NoError(t, Save(cfg, path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestMarshal(t *testing.T) {
	data, err := Marshal(DefaultConfig())
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "rate: 1s")
	assert.Contains(t, out, "default_widget: proc")
	assert.Contains(t, out, "  left_to_right: true")
	assert.NotContains(t, out, "log_file")
	assert.NotContains(t, out, "selected_bg", "empty colors are omitted")
}

func TestSetValue(t *testing.T) {
	tests := []struct {
		name    string
		initial string
		key     string
		value   string
		check   func(t *testing.T, cfg *Config, raw string)
	}{
		{
			name:    "replace existing value",
			initial: "# my settings\ntable:\n  basic: false\n  gap: 1\n",
			key:     "table.basic",
			value:   "true",
			check: func(t *testing.T, cfg *Config, raw string) {
				assert.True(t, cfg.Table.Basic)
				assert.Equal(t, 1, cfg.Table.Gap)
				assert.Contains(t, raw, "# my settings")
			},
		},
		{
			name:    "add key to existing section",
			initial: "table:\n  gap: 0\n",
			key:     "table.show_scroll_position",
			value:   "true",
			check: func(t *testing.T, cfg *Config, raw string) {
				assert.True(t, cfg.Table.ShowScrollPosition)
				assert.Equal(t, 0, cfg.Table.Gap)
			},
		},
		{
			name:    "create missing section",
			initial: "rate: 2s\n",
			key:     "temperature.unit",
			value:   "kelvin",
			check: func(t *testing.T, cfg *Config, raw string) {
				assert.Equal(t, UnitKelvin, cfg.Temperature.Unit)
			},
		},
		{
			name:    "empty file",
			initial: "",
			key:     "rate",
			value:   "5s",
			check: func(t *testing.T, cfg *Config, raw string) {
				assert.Equal(t, "5s", cfg.Rate.String())
			},
		},
		{
			name:    "color needs quoting",
			initial: "rate: 1s\n",
			key:     "colors.header",
			value:   "#00FF00",
			check: func(t *testing.T, cfg *Config, raw string) {
				assert.Equal(t, "#00FF00", cfg.Colors.Header)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.initial), 0o644))

			require.NoError(t, SetValue(path, tt.key, tt.value))

			raw, err := os.ReadFile(path)
			require.NoError(t, err)
			cfg, err := Load(path)
			require.NoError(t, err)
			tt.check(t, cfg, string(raw))
		})
	}
}

func TestSetValue_Errors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rate: 1s\n"), 0o644))

	assert.Error(t, SetValue(path, "table..gap", "1"))
	assert.Error(t, SetValue(path, "rate.value", "1"), "rate is a scalar, not a section")
	assert.Error(t, SetValue(filepath.Join(t.TempDir(), "missing.yaml"), "rate", "1s"))
}
