// Package rawzap routes zap loggers through the raw logger, for programs
// that want zap's API in places where only raw output is safe to produce
// (early startup, crash handlers).
//
// Each entry becomes one raw line; fields are appended in zap's console
// style:
//
//	[server.go : 88] RAW: listener closed {"addr": ":8080"}
//
// zapcore.FatalLevel terminates through the raw logger, so the abort hook
// runs before the process exits.
package rawzap

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/rawlog/core"
	"github.com/philipp01105/rawlog/rawlog"
)

// logAt is a variable to allow capturing output in tests
var logAt = rawlog.LogAt

// Core is a zapcore.Core that writes through rawlog
type Core struct {
	zapcore.LevelEnabler
	enc zapcore.Encoder
}

// NewCore creates a Core that accepts the levels enab enables.
func NewCore(enab zapcore.LevelEnabler) *Core {
	return &Core{
		LevelEnabler: enab,
		enc: zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
			MessageKey:       "msg",
			NameKey:          "logger",
			ConsoleSeparator: " ",
			SkipLineEnding:   true,
			EncodeDuration:   zapcore.StringDurationEncoder,
			EncodeTime:       zapcore.ISO8601TimeEncoder,
			EncodeName:       zapcore.FullNameEncoder,
		}),
	}
}

// NewLogger returns a zap.Logger backed by NewCore that records call sites.
func NewLogger(enab zapcore.LevelEnabler, opts ...zap.Option) *zap.Logger {
	return zap.New(NewCore(enab), append([]zap.Option{zap.AddCaller()}, opts...)...)
}

// With adds structured context to a copy of the Core.
func (c *Core) With(fields []zapcore.Field) zapcore.Core {
	enc := c.enc.Clone()
	for i := range fields {
		fields[i].AddTo(enc)
	}
	return &Core{LevelEnabler: c.LevelEnabler, enc: enc}
}

// Check implements zapcore.Core.
func (c *Core) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

// Write renders the entry and hands it to rawlog.LogAt.
func (c *Core) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	buf, err := c.enc.EncodeEntry(ent, fields)
	if err != nil {
		return err
	}
	defer buf.Free()

	file, line := "???", 0
	if ent.Caller.Defined {
		file, line = ent.Caller.File, ent.Caller.Line
	}
	logAt(SeverityFromLevel(ent.Level), file, line, "%s", buf.Bytes())
	return nil
}

// Sync is a no-op; raw lines are unbuffered.
func (c *Core) Sync() error {
	return nil
}

// SeverityFromLevel maps a zap level to a raw severity. DPanic becomes
// DFatal; Panic is logged at Error and left to zap to raise.
func SeverityFromLevel(l zapcore.Level) core.Severity {
	switch l {
	case zapcore.WarnLevel:
		return core.Warning
	case zapcore.ErrorLevel, zapcore.PanicLevel:
		return core.Error
	case zapcore.DPanicLevel:
		return core.DebugFatal
	case zapcore.FatalLevel:
		return core.Fatal
	default:
		return core.Info
	}
}

// LevelFromSeverity is the inverse of SeverityFromLevel for the canonical
// severities.
func LevelFromSeverity(s core.Severity) zapcore.Level {
	switch core.Normalize(s) {
	case core.Warning:
		return zapcore.WarnLevel
	case core.Error:
		return zapcore.ErrorLevel
	case core.Fatal:
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}
