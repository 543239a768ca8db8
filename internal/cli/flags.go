package cli

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/rileyhilliard/rtop/internal/config"
)

// dashboardFlags override config file values for one run.
type dashboardFlags struct {
	Rate               time.Duration
	Basic              bool
	DefaultWidget      string
	TemperatureUnit    string
	ShowScrollPosition bool
	RightToLeft        bool
}

// addDashboardFlags registers the override flags on cmd.
func addDashboardFlags(cmd *cobra.Command, f *dashboardFlags) {
	flags := cmd.Flags()
	flags.DurationVarP(&f.Rate, "rate", "r", time.Second, "refresh rate (e.g. 500ms, 2s)")
	flags.BoolVarP(&f.Basic, "basic", "b", false, "draw tables without borders")
	flags.StringVar(&f.DefaultWidget, "default-widget", "", "widget focused at startup (cpu, temp, disk, battery, proc)")
	flags.StringVar(&f.TemperatureUnit, "temperature-unit", "", "celsius, fahrenheit or kelvin")
	flags.BoolVar(&f.ShowScrollPosition, "show-table-scroll-position", false, `show "(n of total)" in table titles`)
	flags.BoolVar(&f.RightToLeft, "right-to-left", false, "keep the rightmost columns when tables are too narrow")
}

// apply copies every flag the user set onto cfg. Unset flags leave the file
// value alone.
func (f *dashboardFlags) apply(flags *pflag.FlagSet, cfg *config.Config) error {
	if flags.Changed("rate") {
		cfg.Rate = f.Rate
	}
	if flags.Changed("basic") {
		cfg.Table.Basic = f.Basic
	}
	if flags.Changed("default-widget") {
		cfg.DefaultWidget = f.DefaultWidget
	}
	if flags.Changed("temperature-unit") {
		unit, err := config.NormalizeUnit(f.TemperatureUnit)
		if err != nil {
			return err
		}
		cfg.Temperature.Unit = unit
	}
	if flags.Changed("show-table-scroll-position") {
		cfg.Table.ShowScrollPosition = f.ShowScrollPosition
	}
	if flags.Changed("right-to-left") {
		cfg.Table.LeftToRight = !f.RightToLeft
	}
	return nil
}
