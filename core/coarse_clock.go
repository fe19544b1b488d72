package core

import (
	"sync"
	"sync/atomic"
	"time"
)

// coarseInterval is how often the cached wall clock is refreshed
const coarseInterval = 500 * time.Microsecond

var (
	coarseOnce sync.Once
	coarseNow  atomic.Pointer[time.Time]
)

// StartCoarseClock starts the goroutine that refreshes the time returned by
// CoarseNow. Only the first call has an effect; the goroutine lives as long
// as the process.
func StartCoarseClock() {
	coarseOnce.Do(func() {
		t := time.Now()
		coarseNow.Store(&t)
		go func() {
			ticker := time.NewTicker(coarseInterval)
			for range ticker.C {
				t := time.Now()
				coarseNow.Store(&t)
			}
		}()
	})
}

// CoarseNow returns the cached wall clock: a single atomic load, no
// allocation. Before StartCoarseClock it falls back to time.Now.
func CoarseNow() time.Time {
	if t := coarseNow.Load(); t != nil {
		return *t
	}
	return time.Now()
}
