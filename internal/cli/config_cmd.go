package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/rileyhilliard/rtop/internal/config"
	rterrors "github.com/rileyhilliard/rtop/internal/errors"
	"github.com/rileyhilliard/rtop/internal/ui"
)

var (
	initGlobal bool
	initForce  bool
	initYes    bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the rtop config file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a config file",
	Long: `Create a config file with the default settings.

Asks for the common settings interactively unless --yes is given or stdin
is not a terminal. Writes ./.rtop.yaml, or ~/.config/rtop/config.yaml with
--global.

Examples:
  rtop config init
  rtop config init --global --yes`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := filepath.Join(".", config.ConfigFileName)
		switch {
		case configPath != "":
			path = config.ExpandPath(configPath)
		case initGlobal:
			path = config.GlobalPath()
		}
		return Init(cmd.OutOrStdout(), InitOptions{
			Path:           path,
			Overwrite:      initForce,
			NonInteractive: initYes || !isTerminal(),
		})
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the resolved config",
	Long: `Print the config rtop would run with, after defaults and flags are
applied, as YAML.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		return showConfig(cmd.OutOrStdout(), cfg)
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one setting in the config file",
	Long: `Set a dotted key in the config file, keeping comments and the order of
other keys. The result must still be a valid config.

Examples:
  rtop config set rate 2s
  rtop config set table.basic true
  rtop config set temperature.unit fahrenheit`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.Find(configPath)
		if err != nil {
			return err
		}
		if path == "" {
			return rterrors.New(rterrors.ErrConfig,
				"No config file found",
				"Run 'rtop config init' first.")
		}
		return setConfigValue(cmd.OutOrStdout(), path, args[0], args[1])
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&initGlobal, "global", false, "write the user config instead of ./.rtop.yaml")
	configInitCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite an existing file")
	configInitCmd.Flags().BoolVarP(&initYes, "yes", "y", false, "accept the defaults without prompting")

	addDashboardFlags(configShowCmd, &dashFlags)

	configCmd.AddCommand(configInitCmd, configShowCmd, configSetCmd)
	rootCmd.AddCommand(configCmd)
}

// InitOptions holds options for creating a config file.
type InitOptions struct {
	Path           string
	Overwrite      bool // Overwrite an existing file without asking
	NonInteractive bool // Skip prompts, use defaults
}

// Init writes a new config file to opts.Path.
func Init(out io.Writer, opts InitOptions) error {
	if opts.Path == "" {
		return rterrors.New(rterrors.ErrConfig,
			"Couldn't work out where to write the config",
			"Pass --config or run from a directory you can write to.")
	}

	if _, err := os.Stat(opts.Path); err == nil && !opts.Overwrite {
		if opts.NonInteractive {
			return rterrors.New(rterrors.ErrConfig,
				"Config file already exists: "+opts.Path,
				"Use --force to overwrite")
		}

		var overwrite bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("'%s' already exists. Overwrite?", opts.Path)).
					Value(&overwrite),
			),
		)
		if err := form.Run(); err != nil {
			return rterrors.WrapWithCode(err, rterrors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}
		if !overwrite {
			fmt.Fprintln(out, "Cancelled.")
			return nil
		}
	}

	cfg := config.DefaultConfig()
	if !opts.NonInteractive {
		if err := promptConfig(cfg); err != nil {
			return err
		}
	}

	if err := config.Validate(cfg); err != nil {
		return err
	}
	if err := config.Save(cfg, opts.Path); err != nil {
		return rterrors.WrapWithCode(err, rterrors.ErrConfig,
			"Failed to write config",
			"Check you can write to "+filepath.Dir(opts.Path))
	}

	ui.PrintSuccess(out, "Created "+opts.Path)
	return nil
}

// promptConfig asks for the common settings and stores the answers in cfg.
func promptConfig(cfg *config.Config) error {
	rate := cfg.Rate.String()
	widgetOptions := make([]huh.Option[string], 0, len(config.Widgets))
	for _, w := range config.Widgets {
		widgetOptions = append(widgetOptions, huh.NewOption(w, w))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Refresh rate").
				Description("How often metrics are collected").
				Placeholder("1s").
				Value(&rate).
				Validate(func(s string) error {
					d, err := time.ParseDuration(strings.TrimSpace(s))
					if err != nil {
						return fmt.Errorf("use a duration like 500ms or 2s")
					}
					if d < config.MinRate {
						return fmt.Errorf("must be at least %s", config.MinRate)
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Focused widget at startup").
				Options(widgetOptions...).
				Value(&cfg.DefaultWidget),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Temperature unit").
				Options(
					huh.NewOption("Celsius", config.UnitCelsius),
					huh.NewOption("Fahrenheit", config.UnitFahrenheit),
					huh.NewOption("Kelvin", config.UnitKelvin),
				).
				Value(&cfg.Temperature.Unit),
			huh.NewConfirm().
				Title("Draw tables without borders?").
				Value(&cfg.Table.Basic),
			huh.NewConfirm().
				Title("Show the battery widget?").
				Value(&cfg.Battery.Enabled),
		),
	)

	if err := form.Run(); err != nil {
		return rterrors.WrapWithCode(err, rterrors.ErrConfig,
			"Failed to get user input",
			"Check terminal compatibility or use --yes")
	}

	d, err := time.ParseDuration(strings.TrimSpace(rate))
	if err != nil {
		return rterrors.WrapWithCode(err, rterrors.ErrConfig, "Invalid refresh rate", "")
	}
	cfg.Rate = d
	return nil
}

// showConfig writes cfg as YAML.
func showConfig(out io.Writer, cfg *config.Config) error {
	data, err := config.Marshal(cfg)
	if err != nil {
		return rterrors.WrapWithCode(err, rterrors.ErrConfig,
			"Failed to encode config",
			"This shouldn't happen, please report this bug")
	}
	_, err = out.Write(data)
	return err
}

// setConfigValue updates key in the file at path and checks the file still
// loads and validates. The previous contents are restored if it does not.
func setConfigValue(out io.Writer, path, key, value string) error {
	original, err := os.ReadFile(path)
	if err != nil {
		return rterrors.WrapWithCode(err, rterrors.ErrConfig,
			"Cannot read config file: "+path,
			"Check file permissions")
	}

	if err := config.SetValue(path, key, value); err != nil {
		return rterrors.WrapWithCode(err, rterrors.ErrConfig,
			fmt.Sprintf("Couldn't set %s", key),
			"Keys are dotted paths such as table.basic or process.default_sort")
	}

	cfg, err := config.Load(path)
	if err == nil {
		err = config.Validate(cfg)
	}
	if err != nil {
		if restoreErr := os.WriteFile(path, original, 0o644); restoreErr != nil {
			return rterrors.WrapWithCode(restoreErr, rterrors.ErrConfig,
				"Couldn't restore "+path+" after an invalid change",
				"Fix the file by hand or recreate it with 'rtop config init --force'.")
		}
		return err
	}

	ui.PrintSuccess(out, fmt.Sprintf("Set %s = %s in %s", key, value, path))
	return nil
}
