package collect

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	rterrors "github.com/rileyhilliard/rtop/internal/errors"
	"github.com/rileyhilliard/rtop/internal/logger"
)

// Source produces snapshots. The dashboard depends on this rather than on
// Collector so tests can feed it fixed data.
type Source interface {
	Collect(ctx context.Context) (*Snapshot, error)
}

// ProcessSample is a process together with its cumulative I/O counters.
type ProcessSample struct {
	Process
	ReadBytes  uint64
	WriteBytes uint64
}

// DiskSample is a partition together with its device's cumulative I/O
// counters.
type DiskSample struct {
	Disk
	ReadBytes  uint64
	WriteBytes uint64
}

// Harvester reads raw metrics from the machine. Each method is called from
// its own goroutine.
type Harvester interface {
	CPU(ctx context.Context) (CPUStats, error)
	Memory(ctx context.Context) (MemoryStats, error)
	Processes(ctx context.Context) ([]ProcessSample, error)
	Disks(ctx context.Context) ([]DiskSample, error)
	Temperatures(ctx context.Context) ([]Temperature, error)
	Batteries(ctx context.Context) ([]Battery, error)
}

// Collector turns harvester readings into snapshots, converting cumulative
// I/O counters into per-second rates.
type Collector struct {
	harvester Harvester
	log       logger.Logger
	timeout   time.Duration
	now       func() time.Time

	mu       sync.Mutex // Serializes Collect and protects the previous sample
	last     time.Time
	prevProc map[int32]ioCounters
	prevDisk map[string]ioCounters
}

// DefaultTimeout bounds a single harvest.
const DefaultTimeout = 5 * time.Second

// New creates a collector for the local machine.
func New(log logger.Logger) *Collector {
	return NewWithHarvester(NewSystemHarvester(log), log)
}

// NewWithHarvester creates a collector that reads from h.
func NewWithHarvester(h Harvester, log logger.Logger) *Collector {
	if log == nil {
		log = logger.Noop()
	}
	return &Collector{
		harvester: h,
		log:       log,
		timeout:   DefaultTimeout,
		now:       time.Now,
		prevProc:  make(map[int32]ioCounters),
		prevDisk:  make(map[string]ioCounters),
	}
}

// SetTimeout sets the per-harvest timeout.
func (c *Collector) SetTimeout(timeout time.Duration) {
	c.timeout = timeout
}

type harvestStep struct {
	name string
	run  func(context.Context) error
}

// Collect harvests every metric source in parallel. A failing source is
// logged and leaves its part of the snapshot empty; an error is returned
// only when every source failed.
func (c *Collector) Collect(ctx context.Context) (*Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var (
		snap  = &Snapshot{}
		procs []ProcessSample
		disks []DiskSample
	)

	steps := []harvestStep{
		{"cpu", func(ctx context.Context) (err error) {
			snap.CPU, err = c.harvester.CPU(ctx)
			return err
		}},
		{"memory", func(ctx context.Context) (err error) {
			snap.Memory, err = c.harvester.Memory(ctx)
			return err
		}},
		{"processes", func(ctx context.Context) (err error) {
			procs, err = c.harvester.Processes(ctx)
			return err
		}},
		{"disks", func(ctx context.Context) (err error) {
			disks, err = c.harvester.Disks(ctx)
			return err
		}},
		{"temperatures", func(ctx context.Context) (err error) {
			snap.Temperatures, err = c.harvester.Temperatures(ctx)
			return err
		}},
		{"batteries", func(ctx context.Context) (err error) {
			snap.Batteries, err = c.harvester.Batteries(ctx)
			return err
		}},
	}

	var (
		errMu sync.Mutex
		errs  []error
	)

	// Failures are collected rather than returned so one slow or broken
	// source does not cancel the others.
	g, gctx := errgroup.WithContext(ctx)
	for _, step := range steps {
		g.Go(func() error {
			if err := step.run(gctx); err != nil {
				c.log.Warn("harvesting %s failed: %v", step.name, err)
				errMu.Lock()
				errs = append(errs, fmt.Errorf("%s: %w", step.name, err))
				errMu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	if len(errs) == len(steps) {
		return nil, rterrors.Wrap(errors.Join(errs...), "Couldn't read any system metrics")
	}

	now := c.now()
	elapsed := 0.0
	if !c.last.IsZero() {
		elapsed = now.Sub(c.last).Seconds()
	}
	snap.Timestamp = now
	snap.Processes = c.processRates(procs, elapsed)
	snap.Disks = c.diskRates(disks, elapsed)
	c.last = now

	c.log.Debug("collected %d processes, %d disks, %d sensors, %d batteries",
		len(snap.Processes), len(snap.Disks), len(snap.Temperatures), len(snap.Batteries))

	return snap, nil
}

func (c *Collector) processRates(samples []ProcessSample, elapsed float64) []Process {
	if samples == nil {
		return nil
	}
	next := make(map[int32]ioCounters, len(samples))
	out := make([]Process, len(samples))
	for i, s := range samples {
		cur := ioCounters{read: s.ReadBytes, write: s.WriteBytes}
		out[i] = s.Process
		if prev, ok := c.prevProc[s.PID]; ok {
			out[i].ReadRate, out[i].WriteRate = cur.ratesSince(prev, elapsed)
		}
		next[s.PID] = cur
	}
	c.prevProc = next
	return out
}

func (c *Collector) diskRates(samples []DiskSample, elapsed float64) []Disk {
	if samples == nil {
		return nil
	}
	next := make(map[string]ioCounters, len(samples))
	out := make([]Disk, len(samples))
	for i, s := range samples {
		cur := ioCounters{read: s.ReadBytes, write: s.WriteBytes}
		out[i] = s.Disk
		if prev, ok := c.prevDisk[s.Device]; ok {
			out[i].ReadRate, out[i].WriteRate = cur.ratesSince(prev, elapsed)
		}
		next[s.Device] = cur
	}
	c.prevDisk = next
	return out
}
