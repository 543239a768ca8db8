package widgets

import (
	"fmt"
	"time"
)

// formatBytes formats a byte count as a compact human-readable string.
func formatBytes(bytes uint64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%dB", bytes)
	}

	div, exp := uint64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}

	units := []string{"KB", "MB", "GB", "TB", "PB", "EB"}
	return fmt.Sprintf("%.1f%s", float64(bytes)/float64(div), units[exp])
}

// formatRate formats a bytes-per-second rate.
func formatRate(bytesPerSecond float64) string {
	switch {
	case bytesPerSecond < 1024:
		return fmt.Sprintf("%.0fB/s", bytesPerSecond)
	case bytesPerSecond < 1024*1024:
		return fmt.Sprintf("%.1fKB/s", bytesPerSecond/1024)
	case bytesPerSecond < 1024*1024*1024:
		return fmt.Sprintf("%.1fMB/s", bytesPerSecond/(1024*1024))
	}
	return fmt.Sprintf("%.1fGB/s", bytesPerSecond/(1024*1024*1024))
}

func formatPercent(p float64) string {
	return fmt.Sprintf("%.1f%%", p)
}

// formatDuration formats d as hours and minutes, e.g. "2h05m". Zero is
// shown as "N/A".
func formatDuration(d time.Duration) string {
	if d <= 0 {
		return "N/A"
	}
	d = d.Round(time.Minute)
	return fmt.Sprintf("%dh%02dm", int(d.Hours()), int(d.Minutes())%60)
}
