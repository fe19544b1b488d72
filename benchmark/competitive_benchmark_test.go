package benchmark

import (
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/rawlog/formatter"
	"github.com/philipp01105/rawlog/rawlog"
)

// ---------------------------------------------------------------------------
// Helpers – identical sink for every framework (io.Discard)
// ---------------------------------------------------------------------------

// renderRaw renders a line the way rawlog does and discards it. rawlog
// itself always writes to fd 2, so the rendering path is measured here.
func renderRaw(buf []byte, format string, args ...any) {
	out, _ := formatter.AppendRawPrefix(buf[:0], "file.go", 123)
	out, _ = formatter.Appendf(out, format, args...)
	_, _ = io.Discard.Write(out)
}

// newZapLogger returns a sugared zap logger that writes console lines to
// io.Discard.
func newZapLogger() *zap.SugaredLogger {
	enc := zapcore.NewConsoleEncoder(zap.NewProductionEncoderConfig())
	core := zapcore.NewCore(enc, zapcore.AddSync(io.Discard), zap.InfoLevel)
	return zap.New(core).Sugar()
}

// newSlogLogger returns an slog.Logger that writes text to io.Discard.
func newSlogLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelInfo}))
}

// newLogrusLogger returns a logrus.Logger that writes text to io.Discard.
func newLogrusLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	l.SetLevel(logrus.InfoLevel)
	return l
}

// newZerologLogger returns a zerolog.Logger that writes JSON to io.Discard.
func newZerologLogger() zerolog.Logger {
	return zerolog.New(io.Discard).Level(zerolog.InfoLevel)
}

var registerQuietHook sync.Once

// quietRawlog drops every non-fatal raw line for the rest of the process.
func quietRawlog() {
	registerQuietHook.Do(func() {
		rawlog.RegisterPrefixHook(formatter.NewPrefixHook(formatter.PrefixConfig{
			MinSeverity: rawlog.Fatal,
		}))
	})
}

// ---------------------------------------------------------------------------
// Scenario 1 – printf style message
// ---------------------------------------------------------------------------

func BenchmarkCompetitive_Printf(b *testing.B) {
	b.Run("rawlog", func(b *testing.B) {
		var buf [rawlog.BufferSize]byte
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			renderRaw(buf[:], "Failed foo with %d: %s", i, "bad_file")
		}
	})

	b.Run("zap", func(b *testing.B) {
		l := newZapLogger()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Infof("Failed foo with %d: %s", i, "bad_file")
		}
	})

	b.Run("slog", func(b *testing.B) {
		l := newSlogLogger()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info(fmt.Sprintf("Failed foo with %d: %s", i, "bad_file"))
		}
	})

	b.Run("logrus", func(b *testing.B) {
		l := newLogrusLogger()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Infof("Failed foo with %d: %s", i, "bad_file")
		}
	})

	b.Run("zerolog", func(b *testing.B) {
		l := newZerologLogger()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info().Msgf("Failed foo with %d: %s", i, "bad_file")
		}
	})
}

// ---------------------------------------------------------------------------
// Scenario 2 – Suppressed message (measure filtering overhead)
// ---------------------------------------------------------------------------

func BenchmarkCompetitive_Suppressed(b *testing.B) {
	b.Run("rawlog", func(b *testing.B) {
		quietRawlog()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			rawlog.Log(rawlog.Info, "should be skipped %d", i)
		}
	})

	b.Run("zap", func(b *testing.B) {
		l := newZapLogger()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Debugf("should be skipped %d", i)
		}
	})

	b.Run("slog", func(b *testing.B) {
		l := newSlogLogger()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Debug("should be skipped", "i", i)
		}
	})

	b.Run("logrus", func(b *testing.B) {
		l := newLogrusLogger()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Debugf("should be skipped %d", i)
		}
	})

	b.Run("zerolog", func(b *testing.B) {
		l := newZerologLogger()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Debug().Msgf("should be skipped %d", i)
		}
	})
}

// ---------------------------------------------------------------------------
// Scenario 3 – Parallel / high-concurrency logging
// ---------------------------------------------------------------------------

func BenchmarkCompetitive_Parallel(b *testing.B) {
	b.Run("rawlog", func(b *testing.B) {
		b.ReportAllocs()
		b.RunParallel(func(pb *testing.PB) {
			var buf [rawlog.BufferSize]byte
			i := 0
			for pb.Next() {
				renderRaw(buf[:], "parallel message %d", i)
				i++
			}
		})
	})

	b.Run("zap", func(b *testing.B) {
		l := newZapLogger()
		b.ReportAllocs()
		b.RunParallel(func(pb *testing.PB) {
			i := 0
			for pb.Next() {
				l.Infof("parallel message %d", i)
				i++
			}
		})
	})

	b.Run("slog", func(b *testing.B) {
		l := newSlogLogger()
		b.ReportAllocs()
		b.RunParallel(func(pb *testing.PB) {
			i := 0
			for pb.Next() {
				l.Info("parallel message", "i", i)
				i++
			}
		})
	})

	b.Run("logrus", func(b *testing.B) {
		l := newLogrusLogger()
		b.ReportAllocs()
		b.RunParallel(func(pb *testing.PB) {
			i := 0
			for pb.Next() {
				l.Infof("parallel message %d", i)
				i++
			}
		})
	})

	b.Run("zerolog", func(b *testing.B) {
		l := newZerologLogger()
		b.ReportAllocs()
		b.RunParallel(func(pb *testing.PB) {
			i := 0
			for pb.Next() {
				l.Info().Msgf("parallel message %d", i)
				i++
			}
		})
	})
}
