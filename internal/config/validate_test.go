package config

import (
	"testing"
	"time"

	"github.com/rileyhilliard/rtop/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			modify: func(*Config) {},
		},
		{
			name:    "future version",
			modify:  func(c *Config) { c.Version = CurrentConfigVersion + 1 },
			wantErr: "from the future",
		},
		{
			name:    "rate too fast",
			modify:  func(c *Config) { c.Rate = 100 * time.Millisecond },
			wantErr: "too fast",
		},
		{
			name:   "minimum rate is allowed",
			modify: func(c *Config) { c.Rate = MinRate },
		},
		{
			name:    "unknown default widget",
			modify:  func(c *Config) { c.DefaultWidget = "gpu" },
			wantErr: "Unknown default widget 'gpu'",
		},
		{
			name: "default widget disabled",
			modify: func(c *Config) {
				c.DefaultWidget = WidgetBattery
				c.Battery.Enabled = false
			},
			wantErr: "disabled",
		},
		{
			name:    "table gap out of range",
			modify:  func(c *Config) { c.Table.Gap = 3 },
			wantErr: "table gap must be 0 or 1",
		},
		{
			name:    "unknown temperature unit",
			modify:  func(c *Config) { c.Temperature.Unit = "rankine" },
			wantErr: "Unknown temperature unit",
		},
		{
			name:   "abbreviated temperature unit",
			modify: func(c *Config) { c.Temperature.Unit = "F" },
		},
		{
			name:    "unknown hidden process column",
			modify:  func(c *Config) { c.Process.HiddenColumns = []string{"pid", "gpu"} },
			wantErr: "Unknown column 'gpu' in process.hidden_columns",
		},
		{
			name:    "unknown sort column",
			modify:  func(c *Config) { c.Process.DefaultSort = "nice" },
			wantErr: "Unknown process sort column",
		},
		{
			name: "sort column hidden",
			modify: func(c *Config) {
				c.Process.DefaultSort = "mem"
				c.Process.HiddenColumns = []string{"mem"}
			},
			wantErr: "hidden column 'mem'",
		},
		{
			name:    "unknown hidden disk column",
			modify:  func(c *Config) { c.Disk.HiddenColumns = []string{"inode"} },
			wantErr: "Unknown column 'inode' in disk.hidden_columns",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)

			err := Validate(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.True(t, errors.IsCode(err, errors.ErrConfig))
		})
	}
}

func TestValidate_Nil(t *testing.T) {
	assert.Error(t, Validate(nil))
}

func TestNormalizeUnit(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"c", UnitCelsius},
		{"Celsius", UnitCelsius},
		{"f", UnitFahrenheit},
		{" fahrenheit ", UnitFahrenheit},
		{"K", UnitKelvin},
		{"kelvin", UnitKelvin},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := NormalizeUnit(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := NormalizeUnit("")
	assert.Error(t, err)
}

func TestValidate_Suggestions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DefaultWidget = "porc"

	err := Validate(cfg)
	var rerr *errors.Error
	require.ErrorAs(t, err, &rerr)
	assert.Contains(t, rerr.Suggestion, "Did you mean 'proc'?")

	cfg = DefaultConfig()
	cfg.Process.HiddenColumns = []string{"usr"}
	require.ErrorAs(t, Validate(cfg), &rerr)
	assert.Contains(t, rerr.Suggestion, "Did you mean 'user'?")

	cfg = DefaultConfig()
	cfg.DefaultWidget = "network"
	require.ErrorAs(t, Validate(cfg), &rerr)
	assert.NotContains(t, rerr.Suggestion, "Did you mean")
	assert.Contains(t, rerr.Suggestion, "Pick one of:")
}
