package handler

import (
	"sync/atomic"

	"github.com/philipp01105/rawlog/core"
)

// Stats tracks what happened to raw log calls. Every counter is updated with
// a single atomic add, so recording never blocks or allocates.
type Stats struct {
	// Separate atomic counters per severity
	EmittedInfo    uint64
	EmittedWarning uint64
	EmittedError   uint64
	EmittedFatal   uint64

	// SuppressedTotal counts lines a prefix hook asked to drop
	SuppressedTotal uint64

	// TruncatedTotal counts lines cut to fit the output buffer
	TruncatedTotal uint64

	// DroppedTotal counts lines lost to a failed write or an exhausted buffer pool
	DroppedTotal uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

func (s *Stats) emittedCounter(sev core.Severity) *uint64 {
	switch sev {
	case core.Info:
		return &s.EmittedInfo
	case core.Warning:
		return &s.EmittedWarning
	case core.Error:
		return &s.EmittedError
	case core.Fatal:
		return &s.EmittedFatal
	default:
		return nil
	}
}

// IncrementEmitted atomically increments the emitted counter for a severity.
// Non-canonical severities are ignored.
func (s *Stats) IncrementEmitted(sev core.Severity) {
	if c := s.emittedCounter(sev); c != nil {
		atomic.AddUint64(c, 1)
	}
}

// IncrementSuppressed atomically increments the suppressed counter
func (s *Stats) IncrementSuppressed() {
	atomic.AddUint64(&s.SuppressedTotal, 1)
}

// IncrementTruncated atomically increments the truncated counter
func (s *Stats) IncrementTruncated() {
	atomic.AddUint64(&s.TruncatedTotal, 1)
}

// IncrementDropped atomically increments the dropped counter
func (s *Stats) IncrementDropped() {
	atomic.AddUint64(&s.DroppedTotal, 1)
}

// GetEmitted returns the emitted count for a severity
func (s *Stats) GetEmitted(sev core.Severity) uint64 {
	if c := s.emittedCounter(sev); c != nil {
		return atomic.LoadUint64(c)
	}
	return 0
}

// GetSuppressed returns the suppressed count
func (s *Stats) GetSuppressed() uint64 {
	return atomic.LoadUint64(&s.SuppressedTotal)
}

// GetTruncated returns the truncated count
func (s *Stats) GetTruncated() uint64 {
	return atomic.LoadUint64(&s.TruncatedTotal)
}

// GetDropped returns the dropped count
func (s *Stats) GetDropped() uint64 {
	return atomic.LoadUint64(&s.DroppedTotal)
}

// GetTotalEmitted returns the total emitted across all severities
func (s *Stats) GetTotalEmitted() uint64 {
	return atomic.LoadUint64(&s.EmittedInfo) +
		atomic.LoadUint64(&s.EmittedWarning) +
		atomic.LoadUint64(&s.EmittedError) +
		atomic.LoadUint64(&s.EmittedFatal)
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	atomic.StoreUint64(&s.EmittedInfo, 0)
	atomic.StoreUint64(&s.EmittedWarning, 0)
	atomic.StoreUint64(&s.EmittedError, 0)
	atomic.StoreUint64(&s.EmittedFatal, 0)
	atomic.StoreUint64(&s.SuppressedTotal, 0)
	atomic.StoreUint64(&s.TruncatedTotal, 0)
	atomic.StoreUint64(&s.DroppedTotal, 0)
}

// Snapshot is a point-in-time copy of Stats
type Snapshot struct {
	Emitted    map[core.Severity]uint64
	Suppressed uint64
	Truncated  uint64
	Dropped    uint64
}

// GetSnapshot returns a snapshot of current statistics. It allocates and is
// meant for monitoring code, not for the raw path.
func (s *Stats) GetSnapshot() Snapshot {
	emitted := make(map[core.Severity]uint64, 4)
	for _, sev := range core.Severities() {
		emitted[sev] = s.GetEmitted(sev)
	}
	return Snapshot{
		Emitted:    emitted,
		Suppressed: s.GetSuppressed(),
		Truncated:  s.GetTruncated(),
		Dropped:    s.GetDropped(),
	}
}
