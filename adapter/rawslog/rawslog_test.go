package rawslog

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/philipp01105/rawlog/core"
)

type record struct {
	sev  core.Severity
	file string
	line int
	msg  string
}

func captureLogAt(t *testing.T) *[]record {
	t.Helper()
	var records []record
	orig := logAt
	logAt = func(sev core.Severity, file string, line int, format string, args ...any) {
		records = append(records, record{sev, file, line, string(args[0].([]byte))})
	}
	t.Cleanup(func() { logAt = orig })
	return &records
}

func TestHandler_Enabled(t *testing.T) {
	h := NewHandler(slog.LevelInfo)
	ctx := context.Background()

	if h.Enabled(ctx, slog.LevelDebug) {
		t.Error("Debug should not be enabled when level is Info")
	}
	if !h.Enabled(ctx, slog.LevelInfo) {
		t.Error("Info should be enabled when level is Info")
	}
	if !h.Enabled(ctx, LevelFatal) {
		t.Error("Fatal should be enabled when level is Info")
	}

	if !NewHandler(nil).Enabled(ctx, slog.LevelInfo) || NewHandler(nil).Enabled(ctx, slog.LevelDebug) {
		t.Error("nil level should default to Info")
	}
}

func TestHandler_DynamicLevel(t *testing.T) {
	var lv slog.LevelVar
	h := NewHandler(&lv)
	ctx := context.Background()

	if !h.Enabled(ctx, slog.LevelInfo) {
		t.Fatal("Info should be enabled by default")
	}
	lv.Set(slog.LevelError)
	if h.Enabled(ctx, slog.LevelWarn) {
		t.Error("Warn should be disabled after raising the level")
	}
}

func TestHandler_Handle(t *testing.T) {
	records := captureLogAt(t)
	logger := slog.New(NewHandler(slog.LevelDebug))

	logger.Warn("test message", "key", "value", "count", 42, "ok", true)

	if len(*records) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(*records))
	}
	r := (*records)[0]
	if r.msg != "test message key=value count=42 ok=true" {
		t.Errorf("Unexpected message %q", r.msg)
	}
	if r.sev != core.Warning {
		t.Errorf("Expected WARNING, got %v", r.sev)
	}
	if !strings.HasSuffix(r.file, "rawslog_test.go") || r.line == 0 {
		t.Errorf("Expected the test call site, got %s:%d", r.file, r.line)
	}
}

func TestHandler_WithAttrs(t *testing.T) {
	records := captureLogAt(t)
	logger := slog.New(NewHandler(nil)).With("request_id", "req-123")

	logger.Info("test message", "status", 200)

	if got := (*records)[0].msg; got != "test message request_id=req-123 status=200" {
		t.Errorf("Unexpected message %q", got)
	}
}

func TestHandler_WithGroup(t *testing.T) {
	records := captureLogAt(t)
	logger := slog.New(NewHandler(nil)).
		With("service", "api").
		WithGroup("db").
		With("pool", 4).
		WithGroup("query")

	logger.Info("slow", "ms", 250, slog.Group("plan", "rows", 10, "index", "pk"))

	want := "slow service=api db.pool=4 db.query.ms=250 db.query.plan.rows=10 db.query.plan.index=pk"
	if got := (*records)[0].msg; got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestHandler_EmptyGroupAndAttrs(t *testing.T) {
	h := NewHandler(nil)
	if h.WithGroup("") != slog.Handler(h) {
		t.Error("Empty group should return the same handler")
	}
	if h.WithAttrs(nil) != slog.Handler(h) {
		t.Error("No attrs should return the same handler")
	}

	records := captureLogAt(t)
	slog.New(h).Info("msg", slog.Attr{}, slog.Group("", "inline", 1), slog.Group("empty"))
	if got := (*records)[0].msg; got != "msg inline=1" {
		t.Errorf("Unexpected message %q", got)
	}
}

func TestHandler_Values(t *testing.T) {
	records := captureLogAt(t)
	logger := slog.New(NewHandler(nil))

	logger.Info("values",
		"text", "two words",
		"empty", "",
		"err", errors.New("boom"),
		"dur", 1500*time.Millisecond,
		"ratio", 0.25,
		"big", uint64(1<<63),
		"at", time.Date(2026, 10, 16, 8, 0, 0, 0, time.UTC),
	)

	want := `values text="two words" empty="" err=boom dur=1.5s ratio=0.25 big=9223372036854775808 at=2026-10-16T08:00:00Z`
	if got := (*records)[0].msg; got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestHandler_DisabledNotLogged(t *testing.T) {
	records := captureLogAt(t)
	logger := slog.New(NewHandler(slog.LevelError))

	logger.Info("skip")
	logger.Error("keep")

	if len(*records) != 1 || (*records)[0].sev != core.Error {
		t.Errorf("Expected one ERROR record, got %+v", *records)
	}
}

func TestHandler_NoPC(t *testing.T) {
	records := captureLogAt(t)
	r := slog.NewRecord(time.Now(), slog.LevelInfo, "no caller", 0)
	if err := NewHandler(nil).Handle(context.Background(), r); err != nil {
		t.Fatal(err)
	}
	if got := (*records)[0]; got.file != "???" || got.line != 0 {
		t.Errorf("Expected unknown call site, got %s:%d", got.file, got.line)
	}
}

func TestSeverityFromLevel(t *testing.T) {
	tests := []struct {
		level slog.Level
		want  core.Severity
	}{
		{slog.LevelDebug, core.Info},
		{slog.LevelInfo, core.Info},
		{slog.LevelWarn, core.Warning},
		{slog.LevelError, core.Error},
		{slog.LevelError + 2, core.Error},
		{LevelFatal, core.Fatal},
		{LevelFatal + 4, core.Fatal},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			if got := SeverityFromLevel(tt.level); got != tt.want {
				t.Errorf("SeverityFromLevel(%v) = %v, want %v", tt.level, got, tt.want)
			}
		})
	}
}
