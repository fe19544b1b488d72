package rawlog

import (
	"runtime"
	"sync/atomic"
	"unsafe"

	"github.com/philipp01105/rawlog/core"
)

const (
	slotEmpty int32 = iota
	slotBusy
	slotSet
)

// hookSlot holds a callback that can be installed exactly once. After the
// one-shot set the slot is read-only, so readers need a single atomic load.
type hookSlot[F any] struct {
	state atomic.Int32
	fn    F
	id    uintptr
}

// set installs fn if the slot is empty. It reports whether the slot holds
// fn afterwards, which is also true when fn was installed earlier.
func (s *hookSlot[F]) set(fn F) bool {
	id := funcID(fn)
	if s.state.CompareAndSwap(slotEmpty, slotBusy) {
		s.fn = fn
		s.id = id
		s.state.Store(slotSet)
		return true
	}
	// A concurrent set is between its two stores.
	for s.state.Load() != slotSet {
		runtime.Gosched()
	}
	return s.id == id
}

func (s *hookSlot[F]) load() (fn F, ok bool) {
	if s.state.Load() != slotSet {
		return fn, false
	}
	return s.fn, true
}

// funcID identifies a func value by the closure it refers to. References to
// the same top-level function share one; each created closure has its own.
// F must be a func type.
func funcID[F any](fn F) uintptr {
	return *(*uintptr)(unsafe.Pointer(&fn))
}

// registry is the process-wide hook state
type registry struct {
	prefix hookSlot[core.PrefixHook]
	abort  hookSlot[core.AbortHook]
}

func (l *rawLogger) registerPrefixHook(fn core.PrefixHook, file string, line int) {
	if fn == nil {
		return
	}
	if !l.hooks.prefix.set(fn) {
		l.log(core.Fatal, file, line, "Check failed: %s", []any{"a different prefix hook is already registered"})
	}
}

func (l *rawLogger) registerAbortHook(fn core.AbortHook, file string, line int) {
	if fn == nil {
		return
	}
	if !l.hooks.abort.set(fn) {
		l.log(core.Fatal, file, line, "Check failed: %s", []any{"a different abort hook is already registered"})
	}
}

// callPrefixHook runs hook and keeps its result inside the window. A panic
// is treated as "no prefix, emit".
func callPrefixHook(hook core.PrefixHook, sev core.Severity, file string, line int, window []byte) (n int, emit bool) {
	defer func() {
		if recover() != nil {
			n, emit = 0, true
		}
	}()
	n, emit = hook(sev, file, line, window)
	if n < 0 {
		n = 0
	} else if n > len(window) {
		n = len(window)
	}
	return n, emit
}

// callAbortHook runs hook; a panic must not keep the process alive.
func callAbortHook(hook core.AbortHook, file string, line int, buf []byte, prefixEnd int) {
	defer func() {
		_ = recover()
	}()
	hook(file, line, buf, prefixEnd)
}

// RegisterPrefixHook installs the process-wide prefix hook. It may be called
// any number of times with the same function; registering a different one
// is a programming error reported at Fatal severity. A nil hook is ignored.
//
// It does not block or allocate and is safe to call at any point during
// initialization.
func RegisterPrefixHook(fn PrefixHook) {
	c := core.GetCaller(1)
	std.registerPrefixHook(fn, c.File, c.Line)
}

// RegisterAbortHook installs the process-wide abort hook with the same
// one-shot rules as RegisterPrefixHook.
func RegisterAbortHook(fn AbortHook) {
	c := core.GetCaller(1)
	std.registerAbortHook(fn, c.File, c.Line)
}
