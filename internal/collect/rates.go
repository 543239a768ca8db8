package collect

// ioCounters are cumulative byte counts read from the kernel.
type ioCounters struct {
	read  uint64
	write uint64
}

// ratesSince returns bytes per second for both counters. A counter that went
// backwards (process restarted, device reset) yields zero, as does a
// non-positive interval.
func (c ioCounters) ratesSince(prev ioCounters, elapsedSec float64) (read, write float64) {
	if elapsedSec <= 0 {
		return 0, 0
	}
	return counterRate(prev.read, c.read, elapsedSec), counterRate(prev.write, c.write, elapsedSec)
}

func counterRate(prev, cur uint64, elapsedSec float64) float64 {
	if cur < prev {
		return 0
	}
	return float64(cur-prev) / elapsedSec
}
