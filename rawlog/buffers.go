package rawlog

import (
	"runtime"
	"sync/atomic"
)

const (
	// BufferSize is the capacity of one rendered line, prefix included.
	// Longer lines are truncated.
	BufferSize = 3000

	// numBuffers is how many lines can be rendered at the same time.
	numBuffers = 32
)

// lineBuffer is one statically allocated output buffer
type lineBuffer struct {
	busy atomic.Bool
	data [BufferSize]byte
}

func (b *lineBuffer) release() {
	b.busy.Store(false)
}

// bufferPool hands out line buffers without locking or allocating
type bufferPool struct {
	next  atomic.Uint32
	slots [numBuffers]lineBuffer
	// reserved is only handed to Fatal calls once slots is exhausted
	reserved lineBuffer
}

// acquire claims a free buffer, or returns nil when all are in use.
func (p *bufferPool) acquire() *lineBuffer {
	start := p.next.Add(1)
	for i := uint32(0); i < numBuffers; i++ {
		b := &p.slots[(start+i)%numBuffers]
		if b.busy.CompareAndSwap(false, true) {
			return b
		}
	}
	return nil
}

// acquireReserved claims the Fatal-only buffer, yielding until it is free.
// Its holder is about to end the process, so the wait is short or final.
func (p *bufferPool) acquireReserved() *lineBuffer {
	for !p.reserved.busy.CompareAndSwap(false, true) {
		runtime.Gosched()
	}
	return &p.reserved
}
