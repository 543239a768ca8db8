package config

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/rileyhilliard/rtop/internal/errors"
	"github.com/rileyhilliard/rtop/internal/util"
)

// MinRate is the fastest refresh rate allowed.
const MinRate = 250 * time.Millisecond

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New(errors.ErrConfig,
			"Config is nil",
			"This is unexpected, try reloading the configuration.")
	}

	if cfg.Version > CurrentConfigVersion {
		return errors.Newf(errors.ErrConfig,
			"Upgrade rtop or lower the version field.",
			"This config is from the future (version %d, but rtop only knows up to %d)", cfg.Version, CurrentConfigVersion)
	}

	if cfg.Rate < MinRate {
		return errors.Newf(errors.ErrConfig,
			fmt.Sprintf("Set rate to %s or slower, e.g. rate: 1s", MinRate),
			"Refresh rate %s is too fast", cfg.Rate)
	}

	if !slices.Contains(Widgets, cfg.DefaultWidget) {
		return errors.Newf(errors.ErrConfig,
			pickOne(cfg.DefaultWidget, Widgets),
			"Unknown default widget '%s'", cfg.DefaultWidget)
	}

	if cfg.DefaultWidget == WidgetBattery && !cfg.Battery.Enabled {
		return errors.New(errors.ErrConfig,
			"The default widget is the battery widget, but it is disabled",
			"Enable battery.enabled or pick another default_widget.")
	}

	if err := validateTable(cfg.Table); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'table' section of your config.")
	}

	if _, err := NormalizeUnit(cfg.Temperature.Unit); err != nil {
		return err
	}

	if err := validateColumns("process.hidden_columns", cfg.Process.HiddenColumns, ProcessColumns); err != nil {
		return err
	}
	if !slices.Contains(ProcessColumns, cfg.Process.DefaultSort) {
		return errors.Newf(errors.ErrConfig,
			pickOne(cfg.Process.DefaultSort, ProcessColumns),
			"Unknown process sort column '%s'", cfg.Process.DefaultSort)
	}
	if slices.Contains(cfg.Process.HiddenColumns, cfg.Process.DefaultSort) {
		return errors.Newf(errors.ErrConfig,
			"Unhide the column or sort by another one.",
			"Can't sort processes by hidden column '%s'", cfg.Process.DefaultSort)
	}

	if err := validateColumns("disk.hidden_columns", cfg.Disk.HiddenColumns, DiskColumns); err != nil {
		return err
	}

	return nil
}

func validateTable(t TableConfig) error {
	if t.Gap < 0 || t.Gap > 1 {
		return fmt.Errorf("table gap must be 0 or 1, got %d", t.Gap)
	}
	return nil
}

func validateColumns(field string, names, known []string) error {
	for _, name := range names {
		if !slices.Contains(known, name) {
			return errors.Newf(errors.ErrConfig,
				pickOne(name, known),
				"Unknown column '%s' in %s", name, field)
		}
	}
	return nil
}

// pickOne suggests the closest known values to value, then lists them all.
func pickOne(value string, known []string) string {
	hint := "Pick one of: " + strings.Join(known, ", ")
	if similar := util.SuggestSimilar(value, known, 1); len(similar) > 0 {
		return fmt.Sprintf("Did you mean '%s'? %s", similar[0], hint)
	}
	return hint
}

// NormalizeUnit maps a temperature unit or its abbreviation (c, f, k) to
// its canonical name.
func NormalizeUnit(unit string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(unit)) {
	case "c", UnitCelsius:
		return UnitCelsius, nil
	case "f", UnitFahrenheit:
		return UnitFahrenheit, nil
	case "k", UnitKelvin:
		return UnitKelvin, nil
	}
	return "", errors.Newf(errors.ErrConfig,
		"Use celsius, fahrenheit or kelvin.",
		"Unknown temperature unit '%s'", unit)
}
