package skeleton

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestNopHandler_Disabled(t *testing.T) {
	h := nopHandler{}
	for _, level := range []slog.Level{
		slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError,
	} {
		if h.Enabled(context.Background(), level) {
			t.Errorf("nopHandler enabled at %v", level)
		}
	}
}

func TestNopHandler_Derived(t *testing.T) {
	h := nopHandler{}
	if _, ok := h.WithAttrs([]slog.Attr{slog.String("k", "v")}).(nopHandler); !ok {
		t.Error("WithAttrs must return a nopHandler")
	}
	if _, ok := h.WithGroup("g").(nopHandler); !ok {
		t.Error("WithGroup must return a nopHandler")
	}
}

func TestLogger_DefaultSilent(t *testing.T) {
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger must be silent")
	}
}

func TestSetLogger(t *testing.T) {
	t.Cleanup(func() { SetLogger(nil) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))
	logger().Debug("wavefront test message")
	if !strings.Contains(buf.String(), "wavefront test message") {
		t.Errorf("configured logger received nothing: %q", buf.String())
	}

	SetLogger(nil)
	buf.Reset()
	logger().Error("should be dropped")
	if buf.Len() != 0 {
		t.Errorf("nil reset still logs: %q", buf.String())
	}
}

func TestProgress_DebugLogging(t *testing.T) {
	t.Cleanup(func() { SetLogger(nil) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))
	New([][]Point{sq(10)}).Progress(2, nil).Collect()
	if buf.Len() == 0 {
		t.Error("a debug-level run should log event-loop diagnostics")
	}
}
