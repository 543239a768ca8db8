package collect

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/distatus/battery"
)

// batteryReader lists the machine's batteries. battery.GetAll in
// production; tests substitute fixed readings.
type batteryReader func() ([]*battery.Battery, error)

// readBatteries converts every battery reader returns. A partial failure
// keeps the batteries that could be read; a battery whose own read failed
// outright is dropped. The error is only returned when nothing was read.
func readBatteries(read batteryReader) ([]Battery, error) {
	raw, err := read()

	var perBattery battery.Errors
	if err != nil && !errors.As(err, &perBattery) {
		return nil, err
	}

	batteries := make([]Battery, 0, len(raw))
	for i, b := range raw {
		if b == nil || batteryFailed(perBattery, i) {
			continue
		}
		batteries = append(batteries, batteryFromReading(fmt.Sprintf("BAT%d", i), b.State.String(), b))
	}

	if len(batteries) == 0 && err != nil {
		return nil, err
	}
	return batteries, nil
}

func batteryFailed(errs battery.Errors, i int) bool {
	if i >= len(errs) || errs[i] == nil {
		return false
	}
	var fatal battery.ErrFatal
	return errors.As(errs[i], &fatal)
}

// batteryFromReading maps a reading in mWh and mW onto a Battery. state is
// the reading's state name ("Charging", "Discharging", "Full" ...).
func batteryFromReading(name, state string, b *battery.Battery) Battery {
	out := Battery{Name: name, State: state}
	if out.State == "" {
		out.State = "Unknown"
	}

	if b.Full > 0 {
		out.Percent = math.Min(b.Current/b.Full*100, 100)
	}
	if b.Design > 0 && b.Full > 0 {
		out.Health = b.Full / b.Design * 100
	}

	rate := math.Abs(b.ChargeRate)
	if rate > 0 {
		var hours float64
		switch out.State {
		case "Discharging":
			hours = b.Current / rate
		case "Charging":
			hours = math.Max(b.Full-b.Current, 0) / rate
		}
		out.TimeLeft = time.Duration(hours * float64(time.Hour)).Round(time.Minute)
	}

	return out
}
