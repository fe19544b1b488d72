// Package rawlog is a logging primitive for code that cannot use ordinary
// logging: memory allocators, synchronization primitives and signal
// handling goroutines.
//
// A call never allocates heap memory and never blocks on a lock. Lines are
// rendered into one of a fixed set of statically allocated buffers (claimed
// with compare-and-swap), formatted by formatter.Appendf, and written
// straight to file descriptor 2 by handler.WriteToStderr:
//
//	rawlog.Log(rawlog.Error, "Failed foo with %d: %s", status, reason)
//
// prints
//
//	[file.go : 123] RAW: Failed foo with 22: bad_file
//
// Logging at Fatal, or a failed Check, terminates the process with exit
// status 2 once the line is written. This cannot be prevented: a prefix hook
// that suppresses the line only hides non-fatal output, and the abort hook
// only gets a last look before the exit.
//
// Two hooks customize the output. Each can be registered once per process;
// registering the same function again is a no-op and registering a different
// one is fatal:
//
//	rawlog.RegisterPrefixHook(formatter.NewPrefixHook(formatter.PrefixConfig{
//		MinSeverity: rawlog.Warning,
//		IncludeTime: true,
//	}))
//
// Hooks run on the raw path and must follow its rules: no allocation, no
// locks, no panics.
//
// Build tags:
//
//   - rawlog_debug makes DFatal equal Fatal and enables DLog and DCheck.
//   - rawlog_strip compiles out every non-fatal call; Fatal and Check keep
//     working.
package rawlog
