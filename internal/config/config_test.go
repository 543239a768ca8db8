package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rileyhilliard/rtop/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, CurrentConfigVersion, cfg.Version)
	assert.Equal(t, time.Second, cfg.Rate)
	assert.Equal(t, WidgetProcess, cfg.DefaultWidget)
	assert.True(t, cfg.Table.LeftToRight)
	assert.Equal(t, 1, cfg.Table.Gap)
	assert.False(t, cfg.Table.Basic)
	assert.False(t, cfg.Table.ShowScrollPosition)
	assert.Equal(t, UnitCelsius, cfg.Temperature.Unit)
	assert.Equal(t, "cpu", cfg.Process.DefaultSort)
	assert.Empty(t, cfg.Process.HiddenColumns)
	assert.True(t, cfg.Battery.Enabled)
	assert.NoError(t, Validate(cfg))
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
version: 1
rate: 2s
default_widget: disk
table:
  show_scroll_position: true
  left_to_right: false
  gap: 0
  basic: true
temperature:
  unit: fahrenheit
process:
  default_sort: mem
  show_command: true
  hidden_columns: [user, state]
disk:
  hidden_columns: [read, write]
battery:
  enabled: false
colors:
  header: "#00FF00"
  selected_bg: "33"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 2*time.Second, cfg.Rate)
	assert.Equal(t, WidgetDisk, cfg.DefaultWidget)
	assert.True(t, cfg.Table.ShowScrollPosition)
	assert.False(t, cfg.Table.LeftToRight)
	assert.Equal(t, 0, cfg.Table.Gap)
	assert.True(t, cfg.Table.Basic)
	assert.Equal(t, UnitFahrenheit, cfg.Temperature.Unit)
	assert.Equal(t, "mem", cfg.Process.DefaultSort)
	assert.True(t, cfg.Process.ShowCommand)
	assert.Equal(t, []string{"user", "state"}, cfg.Process.HiddenColumns)
	assert.Equal(t, []string{"read", "write"}, cfg.Disk.HiddenColumns)
	assert.False(t, cfg.Battery.Enabled)
	assert.Equal(t, "#00FF00", cfg.Colors.Header)
	assert.Equal(t, "33", cfg.Colors.SelectedBg)
	assert.NoError(t, Validate(cfg))
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "table:\n  basic: true\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.Table.Basic)
	assert.True(t, cfg.Table.LeftToRight)
	assert.Equal(t, 1, cfg.Table.Gap)
	assert.Equal(t, time.Second, cfg.Rate)
	assert.Equal(t, WidgetProcess, cfg.DefaultWidget)
	assert.True(t, cfg.Battery.Enabled)
}

func TestLoad_ExpandsLogFile(t *testing.T) {
	t.Setenv("RTOP_TEST_DIR", "/var/tmp")
	path := writeConfig(t, t.TempDir(), "log_file: $RTOP_TEST_DIR/rtop.log\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/var/tmp/rtop.log", cfg.LogFile)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		assert.True(t, errors.IsCode(err, errors.ErrConfig))
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "table: [unterminated\n")
		_, err := Load(path)
		require.Error(t, err)
		assert.True(t, errors.IsCode(err, errors.ErrConfig))
	})

	t.Run("wrong type", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "rate: soon\n")
		_, err := Load(path)
		require.Error(t, err)
		assert.True(t, errors.IsCode(err, errors.ErrConfig))
	})
}

func TestFind(t *testing.T) {
	t.Run("explicit path", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "rate: 1s\n")
		got, err := Find(path)
		require.NoError(t, err)
		assert.Equal(t, path, got)
	})

	t.Run("explicit path missing", func(t *testing.T) {
		_, err := Find(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
		assert.True(t, errors.IsCode(err, errors.ErrConfig))
	})

	t.Run("current directory", func(t *testing.T) {
		dir := t.TempDir()
		path := writeConfig(t, dir, "rate: 1s\n")
		t.Chdir(dir)
		t.Setenv("HOME", t.TempDir())

		got, err := Find("")
		require.NoError(t, err)
		assert.Equal(t, filepath.Base(path), filepath.Base(got))
	})

	t.Run("global config", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("HOME", home)
		t.Chdir(t.TempDir())

		global := filepath.Join(home, GlobalConfigDir, GlobalConfigFile)
		require.NoError(t, os.MkdirAll(filepath.Dir(global), 0o755))
		require.NoError(t, os.WriteFile(global, []byte("rate: 1s\n"), 0o644))

		got, err := Find("")
		require.NoError(t, err)
		assert.Equal(t, global, got)
	})

	t.Run("nothing found", func(t *testing.T) {
		t.Setenv("HOME", t.TempDir())
		t.Chdir(t.TempDir())

		got, err := Find("")
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestLoadOrDefault(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, path, err := LoadOrDefault("")
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("RTOP_X", "logs")

	assert.Equal(t, "", ExpandPath(""))
	assert.Equal(t, home, ExpandPath("~"))
	assert.Equal(t, filepath.Join(home, "rtop.log"), ExpandPath("~/rtop.log"))
	assert.Equal(t, "/tmp/logs/rtop.log", ExpandPath("/tmp/${RTOP_X}/rtop.log"))
	assert.Equal(t, "relative/path", ExpandPath("relative/path"))
}
