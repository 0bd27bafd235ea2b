package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDisabledLoggingWritesNothing(t *testing.T) {
	tmp := t.TempDir()
	if err := Initialize(tmp, false, LevelDebug); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	defer Close()

	Fetch("should not appear")

	if _, err := os.Stat(filepath.Join(tmp, "logs")); !os.IsNotExist(err) {
		t.Error("logs directory created while logging disabled")
	}
}

func TestCategoryFiles(t *testing.T) {
	tmp := t.TempDir()
	if err := Initialize(tmp, true, LevelDebug); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	defer Close()

	Fetch("projects round trip branch=%s rows=%d", "France", 2)
	Insight("marketing ideas requested")
	Close()

	data, err := os.ReadFile(filepath.Join(tmp, "logs", "fetch.log"))
	if err != nil {
		t.Fatalf("fetch.log not written: %v", err)
	}
	if !strings.Contains(string(data), "branch=France rows=2") {
		t.Errorf("fetch.log missing entry, got: %s", data)
	}

	if _, err := os.Stat(filepath.Join(tmp, "logs", "insight.log")); err != nil {
		t.Errorf("insight.log not written: %v", err)
	}
}

func TestLevelGate(t *testing.T) {
	tmp := t.TempDir()
	if err := Initialize(tmp, true, LevelWarn); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	defer Close()

	l := Get(CategoryStore)
	l.Debug("filtered out")
	l.Info("filtered out too")
	l.Error("kept")
	Close()

	data, err := os.ReadFile(filepath.Join(tmp, "logs", "store.log"))
	if err != nil {
		t.Fatalf("store.log not written: %v", err)
	}
	if strings.Contains(string(data), "filtered out") {
		t.Error("entries below the level gate were written")
	}
	if !strings.Contains(string(data), "kept") {
		t.Error("error entry missing")
	}
}
