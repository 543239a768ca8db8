package collect

import "time"

// Snapshot is one harvest of the local machine's metrics.
type Snapshot struct {
	Timestamp    time.Time
	CPU          CPUStats
	Memory       MemoryStats
	Processes    []Process
	Disks        []Disk
	Temperatures []Temperature
	Batteries    []Battery
}

// CPUStats contains CPU usage as percentages in the range 0-100.
type CPUStats struct {
	Total   float64
	PerCore []float64
}

// MemoryStats contains RAM and swap usage.
type MemoryStats struct {
	UsedBytes   uint64
	TotalBytes  uint64
	Percent     float64
	SwapUsed    uint64
	SwapTotal   uint64
	SwapPercent float64
}

// Process is a single running process.
type Process struct {
	PID        int32
	Name       string
	Command    string
	User       string
	State      string
	CPUPercent float64
	MemPercent float64
	MemBytes   uint64

	// ReadRate and WriteRate are bytes per second since the previous
	// snapshot. Both are zero on the first harvest.
	ReadRate  float64
	WriteRate float64
}

// Disk is a mounted partition.
type Disk struct {
	Device      string
	Mount       string
	UsedBytes   uint64
	FreeBytes   uint64
	TotalBytes  uint64
	UsedPercent float64
	ReadRate    float64
	WriteRate   float64
}

// Temperature is a sensor reading in degrees Celsius.
type Temperature struct {
	Sensor  string
	Celsius float64
}

// Battery is a power supply of type Battery.
type Battery struct {
	Name    string
	Percent float64
	State   string
	// TimeLeft is the estimated time to empty while discharging or to full
	// while charging. Zero means unknown.
	TimeLeft time.Duration
	// Health is the full charge capacity relative to the design capacity,
	// in percent. Zero means unknown.
	Health float64
}
