package collect

import (
	"errors"
	"testing"
	"time"

	"github.com/distatus/battery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatteryFromReading(t *testing.T) {
	tests := []struct {
		name  string
		state string
		in    battery.Battery
		want  Battery
	}{
		{
			name:  "discharging",
			state: "Discharging",
			in:    battery.Battery{Current: 24000, Full: 48000, Design: 60000, ChargeRate: 12000},
			want:  Battery{Name: "BAT0", State: "Discharging", Percent: 50, TimeLeft: 2 * time.Hour, Health: 80},
		},
		{
			name:  "charging counts time to full",
			state: "Charging",
			in:    battery.Battery{Current: 30000, Full: 40000, Design: 50000, ChargeRate: 20000},
			want:  Battery{Name: "BAT0", State: "Charging", Percent: 75, TimeLeft: 30 * time.Minute, Health: 80},
		},
		{
			name:  "full has no estimate",
			state: "Full",
			in:    battery.Battery{Current: 50000, Full: 50000, ChargeRate: 5000},
			want:  Battery{Name: "BAT0", State: "Full", Percent: 100},
		},
		{
			name: "missing readings",
			in:   battery.Battery{},
			want: Battery{Name: "BAT0", State: "Unknown"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := tt.in
			assert.Equal(t, tt.want, batteryFromReading("BAT0", tt.state, &in))
		})
	}
}

func TestReadBatteries(t *testing.T) {
	got, err := readBatteries(func() ([]*battery.Battery, error) {
		return []*battery.Battery{
			{Current: 10000, Full: 40000},
			{Current: 20000, Full: 40000},
		}, nil
	})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "BAT0", got[0].Name)
	assert.Equal(t, 25.0, got[0].Percent)
	assert.Equal(t, "BAT1", got[1].Name)
	assert.Equal(t, 50.0, got[1].Percent)
}

func TestReadBatteries_None(t *testing.T) {
	got, err := readBatteries(func() ([]*battery.Battery, error) { return nil, nil })
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestReadBatteries_Fatal(t *testing.T) {
	fatal := battery.ErrFatal{Err: errors.New("no power supply class")}
	_, err := readBatteries(func() ([]*battery.Battery, error) { return nil, fatal })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no power supply class")
}

func TestReadBatteries_Partial(t *testing.T) {
	got, err := readBatteries(func() ([]*battery.Battery, error) {
		return []*battery.Battery{
				{Current: 10000, Full: 20000},
				{},
			}, battery.Errors{
				battery.ErrPartial{ChargeRate: errors.New("rate unavailable")},
				battery.ErrFatal{Err: errors.New("unreadable")},
			}
	})
	require.NoError(t, err)
	require.Len(t, got, 1, "fully failed battery is dropped")
	assert.Equal(t, "BAT0", got[0].Name)
	assert.Equal(t, 50.0, got[0].Percent)
	assert.Zero(t, got[0].TimeLeft)
}
