package logging

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/bytedance/sonic"
)

func TestLogger_WritesJSONWithAttributes(t *testing.T) {
	var buf bytes.Buffer
	logger := New(LevelInfo, &buf).With("service", "league-views")

	logger.Info("feed fetched", "range", "past", "count", 12)
	logger.Debug("dropped by level")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected one record, got %d: %q", len(lines), buf.String())
	}

	var record map[string]any
	if err := sonic.UnmarshalString(lines[0], &record); err != nil {
		t.Fatalf("decode record: %v", err)
	}
	if record["msg"] != "feed fetched" || record["service"] != "league-views" || record["range"] != "past" {
		t.Fatalf("unexpected record: %v", record)
	}
}

func TestLogger_MirrorReceivesContextRecords(t *testing.T) {
	var (
		mu   sync.Mutex
		msgs []string
		args [][]any
	)
	SetMirror(func(_ context.Context, level Level, msg string, kv ...any) {
		mu.Lock()
		defer mu.Unlock()
		if level < LevelWarn {
			return
		}
		msgs = append(msgs, msg)
		args = append(args, kv)
	})
	t.Cleanup(func() { SetMirror(nil) })

	var buf bytes.Buffer
	logger := New(LevelDebug, &buf).With("component", "feed")
	logger.WarnContext(context.Background(), "fetch failed", "range", "future")
	logger.Info("ignored by mirror filter")

	mu.Lock()
	defer mu.Unlock()
	if len(msgs) != 1 || msgs[0] != "fetch failed" {
		t.Fatalf("unexpected mirrored messages: %v", msgs)
	}
	want := []any{"component", "feed", "range", "future"}
	if len(args[0]) != len(want) {
		t.Fatalf("unexpected mirrored args: %v", args[0])
	}
	for i := range want {
		if args[0][i] != want[i] {
			t.Fatalf("mirrored arg %d: got=%v want=%v", i, args[0][i], want[i])
		}
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := map[string]Level{
		"":        LevelInfo,
		"DEBUG":   LevelDebug,
		"warning": LevelWarn,
		" error ": LevelError,
	}
	for in, want := range tests {
		got, err := ParseLevel(in)
		if err != nil {
			t.Fatalf("parse %q: %v", in, err)
		}
		if got != want {
			t.Fatalf("parse %q: got=%v want=%v", in, got, want)
		}
	}

	if _, err := ParseLevel("trace"); err == nil {
		t.Fatalf("expected error for unsupported level")
	}
}

func TestLogger_NilReceiverFallsBackToDefault(t *testing.T) {
	var logger *Logger
	logger.Info("no panic")
	logger.ErrorContext(context.Background(), "no panic either")
}
