package main

import (
	"path/filepath"
	"testing"
)

func TestParsePositive(t *testing.T) {
	if got, err := parsePositive(" 3 "); err != nil || got != 3 {
		t.Fatalf("expected 3, got %d (%v)", got, err)
	}
	for _, raw := range []string{"0", "-1", "x"} {
		if _, err := parsePositive(raw); err == nil {
			t.Fatalf("expected error for %q", raw)
		}
	}
}

func TestResolveMigrationsDir_Override(t *testing.T) {
	dir := t.TempDir()
	got, err := resolveMigrationsDir(dir)
	if err != nil {
		t.Fatalf("resolve migrations dir: %v", err)
	}
	want, _ := filepath.Abs(dir)
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestResolveMigrationsDir_Missing(t *testing.T) {
	t.Chdir(t.TempDir())
	if _, err := resolveMigrationsDir(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatalf("expected error when no directory exists")
	}
}
