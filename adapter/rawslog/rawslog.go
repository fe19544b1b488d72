// Package rawslog provides a log/slog handler that writes through the raw
// logger. Attributes follow the message as key=value pairs, with group
// names joined by dots:
//
//	[main.go : 31] RAW: shutting down signal=terminated db.open=3
package rawslog

import (
	"context"
	"log/slog"
	"runtime"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/philipp01105/rawlog/core"
	"github.com/philipp01105/rawlog/rawlog"
)

// LevelFatal is the slog level that terminates the process through rawlog.
const LevelFatal = slog.Level(12)

// logAt is a variable to allow capturing output in tests
var logAt = rawlog.LogAt

// Handler is an adapter that implements slog.Handler on top of rawlog
type Handler struct {
	level slog.Leveler
	group string // dotted group path, "" at the top level
	attrs []byte // rendered WithAttrs attributes
}

// NewHandler creates a Handler that accepts records at or above level.
// A nil level means slog.LevelInfo.
func NewHandler(level slog.Leveler) *Handler {
	if level == nil {
		level = slog.LevelInfo
	}
	return &Handler{level: level}
}

// Enabled reports whether the handler handles records at the given level.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle renders the record into a single raw line.
func (h *Handler) Handle(_ context.Context, record slog.Record) error {
	buf := make([]byte, 0, 256)
	buf = append(buf, record.Message...)
	buf = append(buf, h.attrs...)
	record.Attrs(func(a slog.Attr) bool {
		buf = appendAttr(buf, h.group, a)
		return true
	})

	file, line := "???", 0
	if record.PC != 0 {
		frame, _ := runtime.CallersFrames([]uintptr{record.PC}).Next()
		if frame.File != "" {
			file, line = frame.File, frame.Line
		}
	}
	logAt(SeverityFromLevel(record.Level), file, line, "%s", buf)
	return nil
}

// WithAttrs returns a new Handler with additional attributes.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	rendered := make([]byte, len(h.attrs), len(h.attrs)+32*len(attrs))
	copy(rendered, h.attrs)
	for _, a := range attrs {
		rendered = appendAttr(rendered, h.group, a)
	}
	return &Handler{level: h.level, group: h.group, attrs: rendered}
}

// WithGroup returns a new Handler with the given group name.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	group := name
	if h.group != "" {
		group = h.group + "." + name
	}
	return &Handler{level: h.level, group: group, attrs: h.attrs}
}

// SeverityFromLevel maps a slog level to a raw severity.
func SeverityFromLevel(level slog.Level) core.Severity {
	switch {
	case level >= LevelFatal:
		return core.Fatal
	case level >= slog.LevelError:
		return core.Error
	case level >= slog.LevelWarn:
		return core.Warning
	default:
		return core.Info
	}
}

// appendAttr appends " group.key=value", flattening nested groups.
func appendAttr(buf []byte, group string, a slog.Attr) []byte {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return buf
	}

	if a.Value.Kind() == slog.KindGroup {
		prefix := group
		if a.Key != "" {
			prefix = joinKey(group, a.Key)
		}
		for _, ga := range a.Value.Group() {
			buf = appendAttr(buf, prefix, ga)
		}
		return buf
	}

	buf = append(buf, ' ')
	buf = append(buf, joinKey(group, a.Key)...)
	buf = append(buf, '=')
	return appendValue(buf, a.Value)
}

func joinKey(group, key string) string {
	if group == "" {
		return key
	}
	return group + "." + key
}

func appendValue(buf []byte, v slog.Value) []byte {
	switch v.Kind() {
	case slog.KindString:
		return appendString(buf, v.String())
	case slog.KindInt64:
		return strconv.AppendInt(buf, v.Int64(), 10)
	case slog.KindUint64:
		return strconv.AppendUint(buf, v.Uint64(), 10)
	case slog.KindFloat64:
		return strconv.AppendFloat(buf, v.Float64(), 'g', -1, 64)
	case slog.KindBool:
		return strconv.AppendBool(buf, v.Bool())
	case slog.KindDuration:
		return append(buf, v.Duration().String()...)
	case slog.KindTime:
		return v.Time().AppendFormat(buf, time.RFC3339Nano)
	default:
		if err, ok := v.Any().(error); ok {
			return appendString(buf, err.Error())
		}
		return appendString(buf, v.String())
	}
}

// appendString quotes s when it would not read back as a single value.
func appendString(buf []byte, s string) []byte {
	if needsQuoting(s) {
		return strconv.AppendQuote(buf, s)
	}
	return append(buf, s...)
}

func needsQuoting(s string) bool {
	if s == "" {
		return true
	}
	if !utf8.ValidString(s) {
		return true
	}
	return strings.ContainsFunc(s, func(r rune) bool {
		return r == ' ' || r == '=' || r == '"' || r < 0x20 || r == 0x7f
	})
}
