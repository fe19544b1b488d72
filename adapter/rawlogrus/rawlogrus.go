// Package rawlogrus sends logrus entries through the raw logger with a
// logrus hook. Data fields follow the message as sorted key=value pairs.
//
//	log := rawlogrus.NewLogger()
//	log.WithField("peer", addr).Warn("handshake failed")
package rawlogrus

import (
	"fmt"
	"io"
	"slices"

	"github.com/sirupsen/logrus"

	"github.com/philipp01105/rawlog/core"
	"github.com/philipp01105/rawlog/rawlog"
)

// logAt is a variable to allow capturing output in tests
var logAt = rawlog.LogAt

// Hook is a logrus.Hook that writes every fired entry through rawlog
type Hook struct {
	levels []logrus.Level
}

// NewHook creates a Hook for the given levels, or for every level when none
// are given.
func NewHook(levels ...logrus.Level) *Hook {
	if len(levels) == 0 {
		levels = logrus.AllLevels
	}
	return &Hook{levels: levels}
}

// NewLogger returns a logrus.Logger whose only output is the raw hook. It
// reports call sites so raw lines carry the logging file and line.
func NewLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetReportCaller(true)
	l.AddHook(NewHook())
	return l
}

// Levels implements logrus.Hook.
func (h *Hook) Levels() []logrus.Level {
	return h.levels
}

// Fire implements logrus.Hook.
func (h *Hook) Fire(e *logrus.Entry) error {
	buf := make([]byte, 0, len(e.Message)+16*len(e.Data))
	buf = append(buf, e.Message...)

	keys := make([]string, 0, len(e.Data))
	for k := range e.Data {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		buf = fmt.Appendf(buf, " %s=%v", k, e.Data[k])
	}

	file, line := "???", 0
	if e.HasCaller() {
		file, line = e.Caller.File, e.Caller.Line
	}
	logAt(SeverityFromLevel(e.Level), file, line, "%s", buf)
	return nil
}

// SeverityFromLevel maps a logrus level to a raw severity. Panic is logged
// at Error and left to logrus to raise.
func SeverityFromLevel(l logrus.Level) core.Severity {
	switch l {
	case logrus.WarnLevel:
		return core.Warning
	case logrus.ErrorLevel, logrus.PanicLevel:
		return core.Error
	case logrus.FatalLevel:
		return core.Fatal
	default:
		return core.Info
	}
}
