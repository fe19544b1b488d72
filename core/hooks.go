package core

// PrefixHook customizes the prefix of every raw log line and may suppress it.
//
// buf is the writable front of the output buffer. The hook writes its prefix
// into buf[:n] and returns n together with whether the line should be
// emitted. A Fatal message is written and still terminates the process even
// when the hook returns false.
//
// Hooks run on the raw path, possibly while the runtime is in a bad state.
// They must not allocate, take locks, or panic.
type PrefixHook func(sev Severity, file string, line int, buf []byte) (n int, emit bool)

// AbortHook is called immediately before a Fatal message terminates the
// process. buf holds the rendered line and buf[:prefixEnd] is the part written
// as prefix. If the hook returns, the process is terminated anyway.
//
// The same restrictions as for PrefixHook apply.
type AbortHook func(file string, line int, buf []byte, prefixEnd int)
