package widgets

import (
	"fmt"

	"github.com/rileyhilliard/rtop/internal/collect"
	"github.com/rileyhilliard/rtop/internal/config"
	"github.com/rileyhilliard/rtop/internal/table"
)

const (
	tempSensor = iota
	tempValue
)

// ConvertTemperature converts degrees Celsius to unit. Unknown units are
// treated as Celsius.
func ConvertTemperature(celsius float64, unit string) float64 {
	switch unit {
	case config.UnitFahrenheit:
		return celsius*9/5 + 32
	case config.UnitKelvin:
		return celsius + 273.15
	}
	return celsius
}

func temperatureSuffix(unit string) string {
	switch unit {
	case config.UnitFahrenheit:
		return "°F"
	case config.UnitKelvin:
		return "K"
	}
	return "°C"
}

type temperatureRow struct {
	sensor string
	value  float64
	unit   string
}

func (r temperatureRow) CellText(column int) string {
	switch column {
	case tempSensor:
		return r.sensor
	case tempValue:
		return fmt.Sprintf("%.0f%s", r.value, temperatureSuffix(r.unit))
	}
	return ""
}

func (r temperatureRow) SortKey(column int) table.Key {
	if column == tempValue {
		return table.NumberKey(r.value)
	}
	return table.StringKey(r.sensor)
}

// TemperatureWidget lists sensor temperatures.
type TemperatureWidget struct {
	area
	table *table.SortTable[temperatureRow]
	unit  string
}

// NewTemperatureWidget creates the temperature table. unit must be a
// normalized unit name.
func NewTemperatureWidget(unit string, opts Options) *TemperatureWidget {
	columns := []*table.SortColumn{
		table.NewSortColumn("Sensor", table.SoftWithMax(20, 0.6)).WithShortcut('n'),
		table.NewSortColumn("Temp", table.Hard(6)).WithShortcut('t').Descending(),
	}
	return &TemperatureWidget{
		table: table.NewSortTable[temperatureRow](columns, tempSensor, opts.props("Temperatures"), opts.Styling),
		unit:  unit,
	}
}

// Name implements Widget.
func (w *TemperatureWidget) Name() string { return config.WidgetTemperature }

// Update implements Widget.
func (w *TemperatureWidget) Update(snap *collect.Snapshot) {
	if snap == nil {
		return
	}
	rows := make([]temperatureRow, len(snap.Temperatures))
	for i, t := range snap.Temperatures {
		rows[i] = temperatureRow{
			sensor: t.Sensor,
			value:  ConvertTemperature(t.Celsius, w.unit),
			unit:   w.unit,
		}
	}
	w.table.SetData(rows)
}

// Draw implements Widget.
func (w *TemperatureWidget) Draw(info table.DrawInfo) table.Frame {
	w.set(info.Rect)
	return w.table.Draw(info)
}

// HandleKey implements Widget.
func (w *TemperatureWidget) HandleKey(key string) bool {
	return handleNavKey(w.table, key) || handleSortKey(w.table, key)
}

// HandleClick implements Widget.
func (w *TemperatureWidget) HandleClick(x, y int) bool {
	if _, ok := w.table.TrySelectLocation(x, y); ok {
		return true
	}
	return w.table.TrySelectRow(x, y)
}

// HandleScroll implements Widget.
func (w *TemperatureWidget) HandleScroll(delta int) { w.table.ScrollBy(delta) }
