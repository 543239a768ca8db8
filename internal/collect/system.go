package collect

import (
	"context"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/distatus/battery"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/process"

	"github.com/rileyhilliard/rtop/internal/logger"
)

// SystemHarvester reads metrics from the local machine with gopsutil.
type SystemHarvester struct {
	log logger.Logger

	batteries batteryReader

	// Process handles are kept between harvests because gopsutil measures
	// CPU usage relative to the previous call on the same handle.
	mu    sync.Mutex
	procs map[int32]*trackedProcess
}

type trackedProcess struct {
	proc    *process.Process
	created int64
}

// NewSystemHarvester creates a harvester for the local machine.
func NewSystemHarvester(log logger.Logger) *SystemHarvester {
	if log == nil {
		log = logger.Noop()
	}
	return &SystemHarvester{
		log:       log,
		batteries: battery.GetAll,
		procs:     make(map[int32]*trackedProcess),
	}
}

// CPU returns total and per-core usage since the previous call.
func (h *SystemHarvester) CPU(ctx context.Context) (CPUStats, error) {
	total, err := cpu.PercentWithContext(ctx, 0, false)
	if err != nil {
		return CPUStats{}, err
	}
	perCore, err := cpu.PercentWithContext(ctx, 0, true)
	if err != nil {
		return CPUStats{}, err
	}

	stats := CPUStats{PerCore: perCore}
	if len(total) > 0 {
		stats.Total = total[0]
	}
	return stats, nil
}

// Memory returns RAM and swap usage. Missing swap information is not an
// error.
func (h *SystemHarvester) Memory(ctx context.Context) (MemoryStats, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return MemoryStats{}, err
	}
	stats := MemoryStats{
		UsedBytes:  vm.Used,
		TotalBytes: vm.Total,
		Percent:    vm.UsedPercent,
	}

	swap, err := mem.SwapMemoryWithContext(ctx)
	if err != nil {
		h.log.Debug("reading swap: %v", err)
		return stats, nil
	}
	stats.SwapUsed = swap.Used
	stats.SwapTotal = swap.Total
	stats.SwapPercent = swap.UsedPercent
	return stats, nil
}

// Processes lists running processes. Processes that exit while being read
// are skipped.
func (h *SystemHarvester) Processes(ctx context.Context) ([]ProcessSample, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	seen := make(map[int32]*trackedProcess, len(procs))
	samples := make([]ProcessSample, 0, len(procs))
	for _, p := range procs {
		tp := h.track(ctx, p)
		sample, ok := readProcess(ctx, tp.proc)
		if !ok {
			continue
		}
		seen[p.Pid] = tp
		samples = append(samples, sample)
	}
	h.procs = seen

	return samples, nil
}

// track returns the kept handle for p, replacing it when the PID was reused
// by a new process.
func (h *SystemHarvester) track(ctx context.Context, p *process.Process) *trackedProcess {
	created, _ := p.CreateTimeWithContext(ctx)
	if tp, ok := h.procs[p.Pid]; ok && tp.created == created {
		return tp
	}
	return &trackedProcess{proc: p, created: created}
}

func readProcess(ctx context.Context, p *process.Process) (ProcessSample, bool) {
	name, err := p.NameWithContext(ctx)
	if err != nil {
		return ProcessSample{}, false
	}

	s := ProcessSample{Process: Process{PID: p.Pid, Name: name}}

	s.CPUPercent, _ = p.PercentWithContext(ctx, 0)
	if memPct, err := p.MemoryPercentWithContext(ctx); err == nil {
		s.MemPercent = float64(memPct)
	}
	if info, err := p.MemoryInfoWithContext(ctx); err == nil {
		s.MemBytes = info.RSS
	}

	s.Command, _ = p.CmdlineWithContext(ctx)
	if s.Command == "" {
		s.Command = "[" + name + "]"
	}

	if s.User, err = p.UsernameWithContext(ctx); err != nil {
		s.User = "n/a"
	}
	if status, err := p.StatusWithContext(ctx); err == nil && len(status) > 0 {
		s.State = status[0]
	}

	// Reading another user's I/O counters needs privileges; the rates stay
	// at zero without them.
	if io, err := p.IOCountersWithContext(ctx); err == nil {
		s.ReadBytes = io.ReadBytes
		s.WriteBytes = io.WriteBytes
	}

	return s, true
}

// Disks lists mounted physical partitions with their usage and I/O counters.
func (h *SystemHarvester) Disks(ctx context.Context) ([]DiskSample, error) {
	parts, err := disk.PartitionsWithContext(ctx, false)
	if err != nil {
		return nil, err
	}

	counters, err := disk.IOCountersWithContext(ctx)
	if err != nil {
		h.log.Debug("reading disk I/O counters: %v", err)
	}

	samples := make([]DiskSample, 0, len(parts))
	for _, part := range parts {
		usage, err := disk.UsageWithContext(ctx, part.Mountpoint)
		if err != nil {
			h.log.Debug("reading usage of %s: %v", part.Mountpoint, err)
			continue
		}
		s := DiskSample{Disk: Disk{
			Device:      part.Device,
			Mount:       part.Mountpoint,
			UsedBytes:   usage.Used,
			FreeBytes:   usage.Free,
			TotalBytes:  usage.Total,
			UsedPercent: usage.UsedPercent,
		}}
		if io, ok := counters[filepath.Base(part.Device)]; ok {
			s.ReadBytes = io.ReadBytes
			s.WriteBytes = io.WriteBytes
		}
		samples = append(samples, s)
	}
	return samples, nil
}

// Temperatures returns sensor readings. Some platforms report warnings
// alongside valid readings; those are only an error when nothing was read.
func (h *SystemHarvester) Temperatures(ctx context.Context) ([]Temperature, error) {
	stats, err := host.SensorsTemperaturesWithContext(ctx)
	if err != nil && len(stats) == 0 {
		return nil, err
	}
	if err != nil {
		h.log.Debug("reading sensors: %v", err)
	}

	temps := make([]Temperature, 0, len(stats))
	for _, s := range stats {
		if s.Temperature <= 0 {
			continue
		}
		temps = append(temps, Temperature{
			Sensor:  strings.TrimSuffix(s.SensorKey, "_input"),
			Celsius: s.Temperature,
		})
	}
	sort.SliceStable(temps, func(i, j int) bool {
		return temps[i].Sensor < temps[j].Sensor
	})
	return temps, nil
}

// Batteries reads every battery the platform reports. Machines without
// batteries return an empty list.
func (h *SystemHarvester) Batteries(_ context.Context) ([]Battery, error) {
	return readBatteries(h.batteries)
}
