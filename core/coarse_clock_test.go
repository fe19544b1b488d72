package core

import (
	"testing"
	"time"
)

func TestCoarseNow(t *testing.T) {
	StartCoarseClock()
	time.Sleep(2 * time.Millisecond)

	diff := time.Since(CoarseNow())
	if diff < 0 {
		diff = -diff
	}
	// generous bound for loaded CI machines
	if diff > 50*time.Millisecond {
		t.Errorf("CoarseNow() drifted %v from time.Now()", diff)
	}
}

func TestStartCoarseClockIdempotent(t *testing.T) {
	StartCoarseClock()
	StartCoarseClock()

	if CoarseNow().IsZero() {
		t.Error("CoarseNow() returned zero time after StartCoarseClock")
	}
}

func TestCoarseNow_NoAllocs(t *testing.T) {
	StartCoarseClock()
	allocs := testing.AllocsPerRun(100, func() {
		_ = CoarseNow()
	})
	if allocs != 0 {
		t.Errorf("CoarseNow allocated %v times per run", allocs)
	}
}
