package config

import "time"

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Widget names accepted by default_widget.
const (
	WidgetCPU         = "cpu"
	WidgetTemperature = "temp"
	WidgetDisk        = "disk"
	WidgetProcess     = "proc"
	WidgetBattery     = "battery"
)

// Widgets lists every widget name in focus order.
var Widgets = []string{WidgetCPU, WidgetTemperature, WidgetDisk, WidgetBattery, WidgetProcess}

// Temperature units.
const (
	UnitCelsius    = "celsius"
	UnitFahrenheit = "fahrenheit"
	UnitKelvin     = "kelvin"
)

// ProcessColumns are the column keys of the process table, in display order.
var ProcessColumns = []string{"pid", "name", "cpu", "mem", "memb", "read", "write", "user", "state"}

// DiskColumns are the column keys of the disk table, in display order.
var DiskColumns = []string{"disk", "mount", "used", "free", "total", "used%", "read", "write"}

// Config represents the complete rtop configuration file.
type Config struct {
	Version int `yaml:"version" mapstructure:"version"`

	// Rate is how often metrics are refreshed.
	Rate time.Duration `yaml:"rate" mapstructure:"rate"`

	// DefaultWidget is the widget focused at startup.
	DefaultWidget string `yaml:"default_widget" mapstructure:"default_widget"`

	// LogFile receives log output while the dashboard runs. Empty discards it.
	LogFile string `yaml:"log_file,omitempty" mapstructure:"log_file"`

	Table       TableConfig       `yaml:"table" mapstructure:"table"`
	Temperature TemperatureConfig `yaml:"temperature" mapstructure:"temperature"`
	Process     ProcessConfig     `yaml:"process" mapstructure:"process"`
	Disk        DiskConfig        `yaml:"disk" mapstructure:"disk"`
	Battery     BatteryConfig     `yaml:"battery" mapstructure:"battery"`
	Colors      ColorsConfig      `yaml:"colors" mapstructure:"colors"`
}

// TableConfig controls how every table widget is laid out.
type TableConfig struct {
	// ShowScrollPosition appends "(n of total)" to table titles.
	ShowScrollPosition bool `yaml:"show_scroll_position" mapstructure:"show_scroll_position"`

	// LeftToRight keeps the leftmost columns when a table is too narrow.
	LeftToRight bool `yaml:"left_to_right" mapstructure:"left_to_right"`

	// Gap is the number of blank lines under the header (0 or 1).
	Gap int `yaml:"gap" mapstructure:"gap"`

	// Basic draws tables without box borders.
	Basic bool `yaml:"basic" mapstructure:"basic"`

	// ShowCurrentWhenUnfocused keeps the selected row highlighted on
	// widgets that are not focused.
	ShowCurrentWhenUnfocused bool `yaml:"show_current_entry_when_unfocused" mapstructure:"show_current_entry_when_unfocused"`

	// AutoWidth sizes flexible columns to their widest value on resize.
	AutoWidth bool `yaml:"auto_width" mapstructure:"auto_width"`
}

// TemperatureConfig controls the temperature widget.
type TemperatureConfig struct {
	// Unit is "celsius", "fahrenheit" or "kelvin".
	Unit string `yaml:"unit" mapstructure:"unit"`
}

// ProcessConfig controls the process widget.
type ProcessConfig struct {
	// DefaultSort is the column key the table starts sorted by.
	DefaultSort string `yaml:"default_sort" mapstructure:"default_sort"`

	// ShowCommand shows the full command line instead of the process name.
	ShowCommand bool `yaml:"show_command" mapstructure:"show_command"`

	// HiddenColumns are column keys to hide at startup.
	HiddenColumns []string `yaml:"hidden_columns" mapstructure:"hidden_columns"`
}

// DiskConfig controls the disk widget.
type DiskConfig struct {
	// HiddenColumns are column keys to hide at startup.
	HiddenColumns []string `yaml:"hidden_columns" mapstructure:"hidden_columns"`
}

// BatteryConfig controls the battery widget.
type BatteryConfig struct {
	Enabled bool `yaml:"enabled" mapstructure:"enabled"`
}

// ColorsConfig overrides table colors. Values are lipgloss colors: hex
// strings like "#FF2E97" or ANSI numbers like "205". Empty keeps the default.
type ColorsConfig struct {
	Header            string `yaml:"header,omitempty" mapstructure:"header"`
	Text              string `yaml:"text,omitempty" mapstructure:"text"`
	SelectedFg        string `yaml:"selected_fg,omitempty" mapstructure:"selected_fg"`
	SelectedBg        string `yaml:"selected_bg,omitempty" mapstructure:"selected_bg"`
	Border            string `yaml:"border,omitempty" mapstructure:"border"`
	HighlightedBorder string `yaml:"highlighted_border,omitempty" mapstructure:"highlighted_border"`
	Title             string `yaml:"title,omitempty" mapstructure:"title"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version:       CurrentConfigVersion,
		Rate:          time.Second,
		DefaultWidget: WidgetProcess,
		Table: TableConfig{
			LeftToRight: true,
			Gap:         1,
		},
		Temperature: TemperatureConfig{
			Unit: UnitCelsius,
		},
		Process: ProcessConfig{
			DefaultSort:   "cpu",
			HiddenColumns: []string{},
		},
		Disk: DiskConfig{
			HiddenColumns: []string{},
		},
		Battery: BatteryConfig{
			Enabled: true,
		},
	}
}
