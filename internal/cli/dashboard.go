package cli

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/rileyhilliard/rtop/internal/collect"
	"github.com/rileyhilliard/rtop/internal/config"
	rterrors "github.com/rileyhilliard/rtop/internal/errors"
	"github.com/rileyhilliard/rtop/internal/logger"
	"github.com/rileyhilliard/rtop/internal/monitor"
	"github.com/rileyhilliard/rtop/internal/widgets"
)

// isTerminal reports whether stdin and stdout are both terminals.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// requireTerminal fails with a TERMINAL error when the dashboard cannot own
// the screen.
func requireTerminal() error {
	if isTerminal() {
		return nil
	}
	return rterrors.New(rterrors.ErrTerminal,
		"rtop needs an interactive terminal",
		"Run it directly in a terminal rather than through a pipe or redirect.")
}

// newModel wires the collector and widgets for cfg into a dashboard model.
func newModel(cfg *config.Config, log logger.Logger) monitor.Model {
	collector := collect.New(log)
	return monitor.NewModel(collector, widgets.NewAll(cfg), monitor.Options{
		Interval:      cfg.Rate,
		DefaultWidget: cfg.DefaultWidget,
	})
}

// runDashboard runs the dashboard until the user quits.
func runDashboard(cfg *config.Config) error {
	if err := requireTerminal(); err != nil {
		return err
	}

	closer, err := logger.Redirect(cfg.LogFile)
	if err != nil {
		return rterrors.WrapWithCode(err, rterrors.ErrConfig,
			"Couldn't open log file "+cfg.LogFile,
			"Check the directory exists and is writable, or remove log_file from the config.")
	}
	defer closer.Close()

	log := logger.NewEnvLogger("[rtop]")
	logger.SetDefault(log)
	log.Info("starting dashboard, rate %s", cfg.Rate)

	p := tea.NewProgram(newModel(cfg, log), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = p.Run()
	return err
}
