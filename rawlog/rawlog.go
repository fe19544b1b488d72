package rawlog

import (
	"os"
	"sync/atomic"

	"github.com/philipp01105/rawlog/core"
	"github.com/philipp01105/rawlog/formatter"
	"github.com/philipp01105/rawlog/handler"
)

// osExit is a variable to allow overriding os.Exit in tests
var osExit = os.Exit

// exitCode is the status a Fatal message ends the process with; it matches
// the status of a Go runtime fatal error.
const exitCode = 2

// truncatedSuffix replaces the newline of a line that did not fit.
const truncatedSuffix = " ... (message truncated)\n"

// rawLogger is the dispatch state behind the package-level functions
type rawLogger struct {
	stats    handler.Stats // first for 64-bit atomic alignment
	hooks    registry
	bufs     bufferPool
	aborting atomic.Bool
	write    func([]byte) bool
}

func newRawLogger(write func([]byte) bool) *rawLogger {
	return &rawLogger{write: write}
}

// std is the process-wide logger
var std = newRawLogger(handler.WriteToStderr)

// log renders one line and writes it. It does not allocate or lock; the
// only shared state it touches is claimed or updated atomically.
func (l *rawLogger) log(sev core.Severity, file string, line int, format string, args []any) {
	sev = core.Normalize(sev)
	if stripLog && sev != core.Fatal {
		return
	}
	file = core.Basename(file)

	b := l.bufs.acquire()
	if b == nil {
		switch {
		case sev != core.Fatal:
			l.stats.IncrementDropped()
			return
		case l.aborting.Load():
			// The reserved buffer may belong to the Fatal that is aborting.
			l.stats.IncrementDropped()
			l.abort(file, line, nil, 0)
			return
		}
		b = l.bufs.acquireReserved()
	}
	defer b.release()

	// The tail is reserved so the newline or truncation marker always fits.
	limit := len(b.data) - len(truncatedSuffix)
	window := b.data[:limit:limit]

	emit := true
	prefixEnd := 0
	if hook, ok := l.hooks.prefix.load(); ok {
		prefixEnd, emit = callPrefixHook(hook, sev, file, line, window)
	} else {
		prefix, _ := formatter.AppendRawPrefix(window[:0], file, line)
		prefixEnd = len(prefix)
	}
	if !emit {
		l.stats.IncrementSuppressed()
		prefixEnd = 0
	}

	end := prefixEnd
	if emit || sev == core.Fatal {
		msg, complete := formatter.Appendf(window[prefixEnd:prefixEnd], format, args...)
		end += len(msg)
		if complete {
			b.data[end] = '\n'
			end++
		} else {
			end += copy(b.data[end:], truncatedSuffix)
			l.stats.IncrementTruncated()
		}

		if l.write(b.data[:end]) {
			l.stats.IncrementEmitted(sev)
		} else {
			l.stats.IncrementDropped()
		}
	}

	if sev == core.Fatal {
		l.abort(file, line, b.data[:end], prefixEnd)
	}
}

// abort runs the abort hook and ends the process. Nothing registered can
// keep the process alive. The hook runs at most once, so a Fatal logged from
// inside it exits directly.
func (l *rawLogger) abort(file string, line int, buf []byte, prefixEnd int) {
	if l.aborting.CompareAndSwap(false, true) {
		if hook, ok := l.hooks.abort.load(); ok {
			callAbortHook(hook, file, line, buf, prefixEnd)
		}
	}
	osExit(exitCode)
}

func (l *rawLogger) check(cond bool, msg string, file string, line int) {
	if cond {
		return
	}
	l.log(core.Fatal, file, line, "Check failed: %s", []any{msg})
}

// Log writes a printf-style message to stderr, reporting the caller's file
// and line. It never allocates or takes a lock, so it is safe from allocator,
// synchronization and signal handling code. Messages longer than BufferSize
// are truncated.
//
// Severities outside Info..Fatal are normalized (too high becomes Error).
// At Fatal the process is terminated after the message is written, even if
// the prefix hook suppressed it.
//
// Only strings, []byte, bools, integers, floats, uintptr and unsafe.Pointer
// are formatted; see formatter.Appendf.
func Log(sev Severity, format string, args ...any) {
	if stripLog && core.Normalize(sev) != core.Fatal {
		return
	}
	c := core.GetCaller(1)
	std.log(sev, c.File, c.Line, format, args)
}

// LogAt is Log with an explicit call site. file may be a full path; only its
// basename is printed.
func LogAt(sev Severity, file string, line int, format string, args ...any) {
	if stripLog && core.Normalize(sev) != core.Fatal {
		return
	}
	std.log(sev, file, line, format, args)
}

// Check terminates the process with "Check failed: msg" when cond is false.
// It takes a plain message rather than format arguments so nothing is
// computed on the success path; use Log(Fatal, ...) behind an if for
// detailed diagnostics.
func Check(cond bool, msg string) {
	if cond {
		return
	}
	c := core.GetCaller(1)
	std.check(cond, msg, c.File, c.Line)
}

// DLog is Log in rawlog_debug builds and a no-op otherwise.
func DLog(sev Severity, format string, args ...any) {
	if !core.DebugMode {
		return
	}
	c := core.GetCaller(1)
	std.log(sev, c.File, c.Line, format, args)
}

// DCheck is Check in rawlog_debug builds and a no-op otherwise.
func DCheck(cond bool, msg string) {
	if !core.DebugMode || cond {
		return
	}
	c := core.GetCaller(1)
	std.check(cond, msg, c.File, c.Line)
}

// FullySupported reports whether raw log output reaches stderr on this
// platform. When false, nothing is printed but Fatal still terminates.
func FullySupported() bool {
	return handler.FullySupported()
}

// Stats returns a snapshot of the process-wide raw logging counters.
func Stats() handler.Snapshot {
	return std.stats.GetSnapshot()
}
