// Package widgets implements the dashboard's table widgets. Each widget
// owns a table from the table package, feeds it rows from collector
// snapshots, and translates key and mouse input into table operations.
package widgets

import (
	"github.com/rileyhilliard/rtop/internal/collect"
	"github.com/rileyhilliard/rtop/internal/config"
	"github.com/rileyhilliard/rtop/internal/table"
)

// Widget is a focusable dashboard panel.
type Widget interface {
	// Name is the widget's config key, e.g. "proc".
	Name() string
	// Update replaces the widget's rows with data from snap.
	Update(snap *collect.Snapshot)
	// Draw lays the widget out for one frame.
	Draw(info table.DrawInfo) table.Frame
	// HandleKey applies a key press while the widget has focus. It reports
	// whether the key was used.
	HandleKey(key string) bool
	// HandleClick applies a left click at absolute terminal coordinates.
	HandleClick(x, y int) bool
	// HandleScroll moves the selection by delta rows.
	HandleScroll(delta int)
	// Contains reports whether (x, y) lies inside the last drawn area.
	Contains(x, y int) bool
}

// Options are the display settings shared by all widgets.
type Options struct {
	Table   config.TableConfig
	Styling table.Styling
}

// OptionsFromConfig builds widget options from the loaded config.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		Table:   cfg.Table,
		Styling: StylingFromConfig(cfg.Colors),
	}
}

// props returns the table props for a widget titled title.
func (o Options) props(title string) table.Props {
	return table.Props{
		Title:                    " " + title + " ",
		TableGap:                 o.Table.Gap,
		LeftToRight:              o.Table.LeftToRight,
		IsBasic:                  o.Table.Basic,
		ShowScrollPosition:       o.Table.ShowScrollPosition,
		ShowCurrentWhenUnfocused: o.Table.ShowCurrentWhenUnfocused,
		AutoWidth:                o.Table.AutoWidth,
	}
}

// StylingFromConfig applies color overrides on top of the default styles.
func StylingFromConfig(c config.ColorsConfig) table.Styling {
	return table.StylingFromPalette(table.Palette{
		Header:            c.Header,
		Text:              c.Text,
		SelectedFg:        c.SelectedFg,
		SelectedBg:        c.SelectedBg,
		Border:            c.Border,
		HighlightedBorder: c.HighlightedBorder,
		Title:             c.Title,
	})
}

// area remembers where a widget was last drawn so clicks can be routed.
type area struct {
	rect table.Rect
}

func (a *area) set(r table.Rect) { a.rect = r }

// Contains reports whether (x, y) lies inside the last drawn area.
func (a *area) Contains(x, y int) bool { return a.rect.Contains(x, y) }

// NewAll creates every enabled widget in focus order.
func NewAll(cfg *config.Config) []Widget {
	opts := OptionsFromConfig(cfg)
	unit, err := config.NormalizeUnit(cfg.Temperature.Unit)
	if err != nil {
		unit = config.UnitCelsius
	}

	var out []Widget
	for _, name := range config.Widgets {
		switch name {
		case config.WidgetCPU:
			out = append(out, NewCPUWidget(opts))
		case config.WidgetTemperature:
			out = append(out, NewTemperatureWidget(unit, opts))
		case config.WidgetDisk:
			out = append(out, NewDiskWidget(cfg.Disk, opts))
		case config.WidgetBattery:
			if cfg.Battery.Enabled {
				out = append(out, NewBatteryWidget(opts))
			}
		case config.WidgetProcess:
			out = append(out, NewProcessWidget(cfg.Process, opts))
		}
	}
	return out
}
