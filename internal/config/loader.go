package config

import (
	"os"
	"path/filepath"

	"github.com/rileyhilliard/rtop/internal/errors"
	"github.com/spf13/viper"
)

const (
	// ConfigFileName is the per-directory config file name.
	ConfigFileName = ".rtop.yaml"
	// GlobalConfigDir is the directory for the user config, relative to home.
	GlobalConfigDir = ".config/rtop"
	// GlobalConfigFile is the user config file name.
	GlobalConfigFile = "config.yaml"
)

// Load reads config from the specified path.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Config file not found",
				"Run 'rtop config init' to create one, or point --config at an existing file")
		}
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to read config file",
			"Check the file exists and is valid YAML")
	}

	return parseConfig(v, path)
}

// Find locates the config file using the search order:
// 1. Explicit path (from --config flag)
// 2. .rtop.yaml in current directory
// 3. ~/.config/rtop/config.yaml
//
// Returns the path to the config file, or empty string if not found.
func Find(explicit string) (string, error) {
	if explicit != "" {
		explicit = ExpandPath(explicit)
		if _, err := os.Stat(explicit); err != nil {
			if os.IsNotExist(err) {
				return "", errors.WrapWithCode(err, errors.ErrConfig,
					"Specified config file not found: "+explicit,
					"Check the path is correct")
			}
			return "", errors.WrapWithCode(err, errors.ErrConfig,
				"Cannot access config file: "+explicit,
				"Check file permissions")
		}
		return explicit, nil
	}

	if cwd, err := os.Getwd(); err == nil {
		local := filepath.Join(cwd, ConfigFileName)
		if _, err := os.Stat(local); err == nil {
			return local, nil
		}
	}

	if global := GlobalPath(); global != "" {
		if _, err := os.Stat(global); err == nil {
			return global, nil
		}
	}

	return "", nil
}

// GlobalPath returns the user config path, or empty if the home directory
// is unknown.
func GlobalPath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, GlobalConfigDir, GlobalConfigFile)
}

// LoadOrDefault loads the config found by Find(explicit), or returns the
// defaults when no file exists. The second return value is the path used.
func LoadOrDefault(explicit string) (*Config, string, error) {
	path, err := Find(explicit)
	if err != nil {
		return nil, "", err
	}

	if path == "" {
		return DefaultConfig(), "", nil
	}

	cfg, err := Load(path)
	if err != nil {
		return nil, path, err
	}
	return cfg, path, nil
}

// parseConfig converts viper config to our Config struct with defaults merged in.
func parseConfig(v *viper.Viper, path string) (*Config, error) {
	cfg := DefaultConfig()
	setDefaults(v, cfg)

	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid config format",
			"Check the YAML syntax in "+path)
	}

	cfg.LogFile = ExpandPath(cfg.LogFile)
	return cfg, nil
}

// setDefaults registers the default value of every key so that partial
// files merge over the defaults.
func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("version", cfg.Version)
	v.SetDefault("rate", cfg.Rate.String())
	v.SetDefault("default_widget", cfg.DefaultWidget)
	v.SetDefault("table.show_scroll_position", cfg.Table.ShowScrollPosition)
	v.SetDefault("table.left_to_right", cfg.Table.LeftToRight)
	v.SetDefault("table.gap", cfg.Table.Gap)
	v.SetDefault("table.basic", cfg.Table.Basic)
	v.SetDefault("table.show_current_entry_when_unfocused", cfg.Table.ShowCurrentWhenUnfocused)
	v.SetDefault("table.auto_width", cfg.Table.AutoWidth)
	v.SetDefault("temperature.unit", cfg.Temperature.Unit)
	v.SetDefault("process.default_sort", cfg.Process.DefaultSort)
	v.SetDefault("process.show_command", cfg.Process.ShowCommand)
	v.SetDefault("battery.enabled", cfg.Battery.Enabled)
}
