package core

import "strings"

// Severity represents the importance of a raw log message
type Severity int

const (
	// Info for informational messages
	Info Severity = iota
	// Warning for unexpected but recoverable conditions
	Warning
	// Error for failures the caller survives
	Error
	// Fatal terminates the process after the message is written
	Fatal
)

// severityNames is indexed by the canonical severities
var severityNames = [...]string{
	Info:    "INFO",
	Warning: "WARNING",
	Error:   "ERROR",
	Fatal:   "FATAL",
}

// Severities returns every canonical severity ordered from least to most severe.
func Severities() [4]Severity {
	return [4]Severity{Info, Warning, Error, Fatal}
}

// Normalize clamps s to the canonical set. Values below Info become Info and
// values above Fatal become Error, never Fatal, so an unrecognized severity can
// not end the process.
func Normalize(s Severity) Severity {
	switch {
	case s < Info:
		return Info
	case s > Fatal:
		return Error
	default:
		return s
	}
}

// NormalizeInt is Normalize for a raw integer.
func NormalizeInt(v int) Severity {
	return Normalize(Severity(v))
}

// Name returns the all-caps name of s, or "UNKNOWN" for a non-canonical value.
func Name(s Severity) string {
	if s >= Info && s <= Fatal {
		return severityNames[s]
	}
	return "UNKNOWN"
}

// String returns the string representation of the severity
func (s Severity) String() string {
	return Name(s)
}

// Letter returns the single-letter glog tag for s ('I', 'W', 'E', 'F'),
// or '?' for a non-canonical value.
func (s Severity) Letter() byte {
	switch s {
	case Info:
		return 'I'
	case Warning:
		return 'W'
	case Error:
		return 'E'
	case Fatal:
		return 'F'
	default:
		return '?'
	}
}

// ParseSeverity converts a name to a Severity. DFATAL resolves to DebugFatal.
func ParseSeverity(s string) (Severity, bool) {
	switch strings.ToUpper(s) {
	case "INFO":
		return Info, true
	case "WARN", "WARNING":
		return Warning, true
	case "ERROR":
		return Error, true
	case "FATAL":
		return Fatal, true
	case "DFATAL":
		return DebugFatal, true
	default:
		return Info, false
	}
}
