package app

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestPkHandler_Handle(t *testing.T) {
	ts := time.Date(2025, 1, 5, 9, 30, 45, 0, time.UTC)

	tests := []struct {
		name      string
		sessionID string
		level     slog.Level
		message   string
		attrs     []slog.Attr
		want      string
	}{
		{
			name:      "basic info message",
			sessionID: "s-123",
			level:     slog.LevelInfo,
			message:   "profile updated",
			want:      "2025-01-05T09:30:45Z\tINFO\ts-123\tprofile updated\n",
		},
		{
			name:      "debug level",
			sessionID: "s-456",
			level:     slog.LevelDebug,
			message:   "document saved",
			want:      "2025-01-05T09:30:45Z\tDEBUG\ts-456\tdocument saved\n",
		},
		{
			name:      "with record attrs",
			sessionID: "s-789",
			level:     slog.LevelInfo,
			message:   "profile updated",
			attrs:     []slog.Attr{slog.String("intent", "set_bio"), slog.Int("bytes", 42)},
			want:      "2025-01-05T09:30:45Z\tINFO\ts-789\tprofile updated\tintent=set_bio\tbytes=42\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := &pkHandler{w: &buf, sessionID: tt.sessionID, level: slog.LevelDebug}

			r := slog.NewRecord(ts, tt.level, tt.message, 0)
			for _, a := range tt.attrs {
				r.AddAttrs(a)
			}

			if err := h.Handle(context.Background(), r); err != nil {
				t.Fatalf("Handle() error = %v", err)
			}

			if got := buf.String(); got != tt.want {
				t.Errorf("Handle() output =\n%q\nwant:\n%q", got, tt.want)
			}
		})
	}
}

func TestPkHandler_WithAttrs(t *testing.T) {
	var buf bytes.Buffer
	h := &pkHandler{w: &buf, sessionID: "s-1"}

	h2 := h.WithAttrs([]slog.Attr{slog.String("component", "store")}).(*pkHandler)

	ts := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	r := slog.NewRecord(ts, slog.LevelInfo, "saved", 0)
	r.AddAttrs(slog.String("key", "insta_profile_data"))

	if err := h2.Handle(context.Background(), r); err != nil {
		t.Fatalf("Handle() error = %v", err)
	}

	got := buf.String()
	if !strings.Contains(got, "component=store") {
		t.Errorf("expected pre-set attr component=store, got: %q", got)
	}
	if !strings.Contains(got, "key=insta_profile_data") {
		t.Errorf("expected record attr key=insta_profile_data, got: %q", got)
	}
}

func TestPkHandler_WithAttrs_doesNotMutateOriginal(t *testing.T) {
	h := &pkHandler{sessionID: "s-1", attrs: []slog.Attr{slog.String("a", "1")}}

	h2 := h.WithAttrs([]slog.Attr{slog.String("b", "2")}).(*pkHandler)

	if len(h.attrs) != 1 {
		t.Errorf("original handler attrs modified: got %d, want 1", len(h.attrs))
	}
	if len(h2.attrs) != 2 {
		t.Errorf("new handler attrs: got %d, want 2", len(h2.attrs))
	}
}

func TestPkHandler_Enabled(t *testing.T) {
	h := &pkHandler{level: slog.LevelInfo}

	if h.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("Enabled(DEBUG) = true at INFO level, want false")
	}
	for _, level := range []slog.Level{slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if !h.Enabled(context.Background(), level) {
			t.Errorf("Enabled(%v) = false, want true", level)
		}
	}
}

func TestTeeHandler(t *testing.T) {
	var all, warn bytes.Buffer
	h := &teeHandler{handlers: []slog.Handler{
		&pkHandler{w: &all, sessionID: "s", level: slog.LevelDebug},
		&pkHandler{w: &warn, sessionID: "s", level: slog.LevelWarn},
	}}
	logger := slog.New(h).With("component", "test")

	logger.Debug("quiet")
	logger.Warn("loud")

	if got := strings.Count(all.String(), "\n"); got != 2 {
		t.Errorf("debug handler got %d lines, want 2: %q", got, all.String())
	}
	if strings.Contains(warn.String(), "quiet") || !strings.Contains(warn.String(), "loud") {
		t.Errorf("warn handler output = %q, want only the warning", warn.String())
	}
	if !strings.Contains(warn.String(), "component=test") {
		t.Errorf("warn handler lost attrs: %q", warn.String())
	}
}

func TestNewLogger(t *testing.T) {
	dir := t.TempDir()

	logger, f, err := newLogger(dir, "test-session", slog.LevelDebug)
	if err != nil {
		t.Fatalf("newLogger() error = %v", err)
	}
	defer f.Close()

	logger.Debug("hello", "n", 1)

	data, err := os.ReadFile(filepath.Join(dir, logFileName))
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), "test-session\thello\tn=1") {
		t.Errorf("log file = %q, want the debug record", data)
	}
}
