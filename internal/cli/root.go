package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rileyhilliard/rtop/internal/config"
	"github.com/rileyhilliard/rtop/internal/ui"
)

var (
	configPath string
	noColor    bool
	dashFlags  dashboardFlags
)

// rootCmd starts the dashboard.
var rootCmd = &cobra.Command{
	Use:   "rtop",
	Short: "Terminal system monitor",
	Long: `rtop shows processes, disks, temperatures, CPU usage and batteries
in sortable, scrollable tables.

Keys:
  tab / shift+tab   move between widgets
  enter / esc       expand / collapse the focused widget
  ↑↓ jk g G         move the selection
  s, I              cycle sort column, reverse order
  f, r, ?, q        freeze, refresh, help, quit

Examples:
  rtop
  rtop --rate 2s --default-widget disk
  rtop --basic --right-to-left`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if !ui.ColorsRequested(noColor) {
			ui.DisableColors()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		return runDashboard(cfg)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default: ./.rtop.yaml or ~/.config/rtop/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	addDashboardFlags(rootCmd, &dashFlags)
}

// loadConfig loads the config file and applies flag overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, _, err := config.LoadOrDefault(configPath)
	if err != nil {
		return nil, err
	}
	if err := dashFlags.apply(cmd.Flags(), cfg); err != nil {
		return nil, err
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if isUnknownCommandError(err) {
			fmt.Fprintln(os.Stderr, ui.ErrorStyle().Render(err.Error()))
			fmt.Fprintln(os.Stderr, ui.MutedStyle().Render("Run 'rtop --help' for usage."))
		} else {
			fmt.Fprintln(os.Stderr, ui.FormatError(err))
		}
		os.Exit(1)
	}
}

// isUnknownCommandError reports whether err comes from cobra rejecting the
// command line itself.
func isUnknownCommandError(err error) bool {
	msg := err.Error()
	return strings.HasPrefix(msg, "unknown command") ||
		strings.HasPrefix(msg, "unknown flag") ||
		strings.HasPrefix(msg, "unknown shorthand flag")
}
