package gitops

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

type nopLogger struct{}

func (nopLogger) Debug(_ context.Context, _ ...interface{})            {}
func (nopLogger) Debugf(_ context.Context, _ string, _ ...interface{}) {}
func (nopLogger) Info(_ context.Context, _ ...interface{})             {}
func (nopLogger) Infof(_ context.Context, _ string, _ ...interface{})  {}
func (nopLogger) Warn(_ context.Context, _ ...interface{})             {}
func (nopLogger) Warnf(_ context.Context, _ string, _ ...interface{})  {}
func (nopLogger) Error(_ context.Context, _ ...interface{})            {}
func (nopLogger) Errorf(_ context.Context, _ string, _ ...interface{}) {}

func TestParsePorcelain(t *testing.T) {
	out := " M internal/routing/detector.go\n?? notes.txt\nA  cmd/api/main.go\n\n"

	changes := parsePorcelain(out)
	if len(changes) != 3 {
		t.Fatalf("expected 3 changes, got %d: %+v", len(changes), changes)
	}

	tests := []FileChange{
		{Code: " M", Path: "internal/routing/detector.go"},
		{Code: "??", Path: "notes.txt"},
		{Code: "A ", Path: "cmd/api/main.go"},
	}
	for i, want := range tests {
		if changes[i] != want {
			t.Errorf("change %d = %+v, want %+v", i, changes[i], want)
		}
	}
}

func TestParsePorcelain_Empty(t *testing.T) {
	if changes := parsePorcelain(""); len(changes) != 0 {
		t.Errorf("empty output must yield no changes, got %+v", changes)
	}
}

func TestStatsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".git_stats.json")

	want := Stats{
		Commits:      7,
		Pushes:       3,
		LastCommitAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		LastPushAt:   time.Date(2026, 8, 1, 12, 5, 0, 0, time.UTC),
	}
	if err := saveStats(path, want); err != nil {
		t.Fatalf("saveStats: %v", err)
	}

	got, err := loadStats(path)
	if err != nil {
		t.Fatalf("loadStats: %v", err)
	}
	if !got.LastCommitAt.Equal(want.LastCommitAt) || got.Commits != want.Commits || got.Pushes != want.Pushes {
		t.Errorf("round trip mismatch: got %+v, want %+v", got, want)
	}
}

func TestLoadStats_MissingFile(t *testing.T) {
	stats, err := loadStats(filepath.Join(t.TempDir(), "does-not-exist.json"))
	if err != nil {
		t.Fatalf("missing file must not be an error: %v", err)
	}
	if stats != (Stats{}) {
		t.Errorf("expected zero stats, got %+v", stats)
	}
}

func TestNew_Defaults(t *testing.T) {
	m := New(nopLogger{}, Config{Workdir: t.TempDir()})

	if m.timeout != DefaultTimeout {
		t.Errorf("expected default timeout %v, got %v", DefaultTimeout, m.timeout)
	}
	if m.statsPath != DefaultStatsFile {
		t.Errorf("expected default stats path %q, got %q", DefaultStatsFile, m.statsPath)
	}
	if len(m.Failures()) != 0 {
		t.Errorf("fresh manager must have no failures")
	}
}

func TestRecordFailure(t *testing.T) {
	m := New(nopLogger{}, Config{Workdir: t.TempDir()})

	detail := m.recordFailure("push", context.DeadlineExceeded)
	if detail == "" {
		t.Fatal("detail must describe the failure")
	}

	failures := m.Failures()
	if len(failures) != 1 || failures[0] != detail {
		t.Errorf("failure not recorded: %+v", failures)
	}
}
