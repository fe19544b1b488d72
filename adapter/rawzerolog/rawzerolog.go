// Package rawzerolog lets zerolog loggers write through the raw logger.
// Writer is a zerolog.LevelWriter: every event becomes one raw line holding
// zerolog's JSON object, attributed to the code that logged it.
//
//	log := zerolog.New(rawzerolog.Writer{})
//	log.Warn().Int("fd", 7).Msg("closing")
package rawzerolog

import (
	"bytes"
	"runtime"
	"strings"

	"github.com/rs/zerolog"

	"github.com/philipp01105/rawlog/core"
	"github.com/philipp01105/rawlog/rawlog"
)

// logAt is a variable to allow capturing output in tests
var logAt = rawlog.LogAt

const zerologPkg = "github.com/rs/zerolog"

// maxCallerDepth bounds the stack walk that finds the logging call site
const maxCallerDepth = 32

// Writer is a zerolog.LevelWriter backed by rawlog
type Writer struct{}

var _ zerolog.LevelWriter = Writer{}

// NewLogger returns a zerolog.Logger that writes through rawlog.
func NewLogger() zerolog.Logger {
	return zerolog.New(Writer{})
}

// Write logs p at Info.
func (w Writer) Write(p []byte) (int, error) {
	return w.WriteLevel(zerolog.NoLevel, p)
}

// WriteLevel logs p, minus its trailing newline, at the severity matching
// level. It always reports success.
func (w Writer) WriteLevel(level zerolog.Level, p []byte) (int, error) {
	file, line := callSite()
	logAt(SeverityFromLevel(level), file, line, "%s", bytes.TrimRight(p, "\n"))
	return len(p), nil
}

// callSite returns the first frame outside zerolog above the zerolog frames
// that called the writer.
func callSite() (string, int) {
	var pcs [maxCallerDepth]uintptr
	n := runtime.Callers(3, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])
	inZerolog := false
	for {
		f, more := frames.Next()
		if strings.HasPrefix(f.Function, zerologPkg) {
			inZerolog = true
		} else if inZerolog {
			return f.File, f.Line
		}
		if !more {
			return "???", 0
		}
	}
}

// SeverityFromLevel maps a zerolog level to a raw severity. Panic is logged
// at Error and left to zerolog to raise.
func SeverityFromLevel(l zerolog.Level) core.Severity {
	switch l {
	case zerolog.WarnLevel:
		return core.Warning
	case zerolog.ErrorLevel, zerolog.PanicLevel:
		return core.Error
	case zerolog.FatalLevel:
		return core.Fatal
	default:
		return core.Info
	}
}
