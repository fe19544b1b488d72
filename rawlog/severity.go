package rawlog

import "github.com/philipp01105/rawlog/core"

// Severity re-exports core.Severity for convenience
type Severity = core.Severity

// PrefixHook re-exports core.PrefixHook for convenience
type PrefixHook = core.PrefixHook

// AbortHook re-exports core.AbortHook for convenience
type AbortHook = core.AbortHook

const (
	Info    = core.Info
	Warning = core.Warning
	Error   = core.Error
	Fatal   = core.Fatal

	// DFatal is Fatal in rawlog_debug builds and Error otherwise
	DFatal = core.DebugFatal
)
