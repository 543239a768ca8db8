package monitor

import (
	"sync"

	"github.com/rileyhilliard/rtop/internal/collect"
)

// DefaultHistorySize is the default number of data points to retain per metric.
const DefaultHistorySize = 120

// History keeps recent CPU and memory usage for the header sparklines.
type History struct {
	mu   sync.RWMutex
	size int
	cpu  *ringBuffer
	mem  *ringBuffer
}

// ringBuffer is a fixed-size circular buffer for float64 values.
type ringBuffer struct {
	data  []float64
	head  int
	count int
	size  int
}

// NewHistory creates a new history tracker with the specified buffer size.
func NewHistory(size int) *History {
	if size <= 0 {
		size = DefaultHistorySize
	}
	return &History{
		size: size,
		cpu:  newRingBuffer(size),
		mem:  newRingBuffer(size),
	}
}

// Push records the usage percentages of snap.
func (h *History) Push(snap *collect.Snapshot) {
	if snap == nil {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.cpu.push(snap.CPU.Total)
	h.mem.push(snap.Memory.Percent)
}

// CPU returns the last count CPU percentages, oldest first. Fewer values are
// returned if not enough history is available.
func (h *History) CPU(count int) []float64 {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.cpu.getLast(count)
}

// Memory returns the last count memory percentages, oldest first.
func (h *History) Memory(count int) []float64 {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.mem.getLast(count)
}

// Count returns the number of samples stored.
func (h *History) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.cpu.count
}

// Clear removes all history.
func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.cpu = newRingBuffer(h.size)
	h.mem = newRingBuffer(h.size)
}

// newRingBuffer creates a new ring buffer with the specified capacity.
func newRingBuffer(size int) *ringBuffer {
	return &ringBuffer{
		data: make([]float64, size),
		size: size,
	}
}

// push adds a value to the ring buffer.
func (r *ringBuffer) push(value float64) {
	r.data[r.head] = value
	r.head = (r.head + 1) % r.size
	if r.count < r.size {
		r.count++
	}
}

// getLast returns the last count values in chronological order (oldest first).
func (r *ringBuffer) getLast(count int) []float64 {
	if count <= 0 || r.count == 0 {
		return nil
	}

	count = min(count, r.count)
	result := make([]float64, count)

	// head is the next write position, so the newest value is at head-1.
	start := (r.head - count + r.size) % r.size
	for i := 0; i < count; i++ {
		result[i] = r.data[(start+i)%r.size]
	}

	return result
}
