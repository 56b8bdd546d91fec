package gitops

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"sync"
	"time"

	"agent-switchboard/pkg/log"
)

const (
	DefaultTimeout   = 30 * time.Second
	DefaultStatsFile = ".git_stats.json"
)

// Manager shells out to the git CLI and tracks commit/push counters.
// Failures are never fatal: every operation returns (ok, detail) and the
// detail string is also recorded into the failure list. Construct once and
// pass by reference; there is no global instance.
type Manager struct {
	l         log.Logger
	workdir   string
	statsPath string
	timeout   time.Duration

	mu       sync.Mutex
	stats    Stats
	failures []string
}

// New creates a manager and loads the persisted counters. A missing or
// unreadable stats file degrades to zero counters.
func New(l log.Logger, cfg Config) *Manager {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.StatsPath == "" {
		cfg.StatsPath = DefaultStatsFile
	}

	m := &Manager{
		l:         l,
		workdir:   cfg.Workdir,
		statsPath: cfg.StatsPath,
		timeout:   cfg.Timeout,
	}

	stats, err := loadStats(cfg.StatsPath)
	if err != nil {
		l.Warnf(context.Background(), "internal.gitops: stats file not loaded, starting from zero: %v", err)
	}
	m.stats = stats

	return m
}

// Status returns the working tree changes from `git status --porcelain`.
func (m *Manager) Status(ctx context.Context) ([]FileChange, error) {
	out, err := m.run(ctx, "status", "--porcelain")
	if err != nil {
		return nil, err
	}
	return parsePorcelain(out), nil
}

// CurrentBranch returns the checked-out branch name.
func (m *Manager) CurrentBranch(ctx context.Context) (string, error) {
	out, err := m.run(ctx, "branch", "--show-current")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// Add stages the given paths, or everything when none are given.
func (m *Manager) Add(ctx context.Context, paths ...string) (bool, string) {
	args := append([]string{"add"}, paths...)
	if len(paths) == 0 {
		args = []string{"add", "-A"}
	}
	if _, err := m.run(ctx, args...); err != nil {
		return false, m.recordFailure("add", err)
	}
	return true, ""
}

// Commit records a commit with the given message and bumps the counter.
func (m *Manager) Commit(ctx context.Context, message string) (bool, string) {
	if _, err := m.run(ctx, "commit", "-m", message); err != nil {
		return false, m.recordFailure("commit", err)
	}

	m.mu.Lock()
	m.stats.Commits++
	m.stats.LastCommitAt = time.Now()
	stats := m.stats
	m.mu.Unlock()

	if err := saveStats(m.statsPath, stats); err != nil {
		m.l.Warnf(ctx, "internal.gitops: failed to persist stats: %v", err)
	}
	return true, ""
}

// Push pushes the current branch to origin and bumps the counter.
func (m *Manager) Push(ctx context.Context) (bool, string) {
	branch, err := m.CurrentBranch(ctx)
	if err != nil {
		return false, m.recordFailure("push", err)
	}
	if _, err := m.run(ctx, "push", "origin", branch); err != nil {
		return false, m.recordFailure("push", err)
	}

	m.mu.Lock()
	m.stats.Pushes++
	m.stats.LastPushAt = time.Now()
	stats := m.stats
	m.mu.Unlock()

	if err := saveStats(m.statsPath, stats); err != nil {
		m.l.Warnf(ctx, "internal.gitops: failed to persist stats: %v", err)
	}
	return true, ""
}

// CommitAndPush runs the full stage-commit-push sequence. A clean working
// tree is not an error: it returns (false, "nothing to commit").
func (m *Manager) CommitAndPush(ctx context.Context, message string) (bool, string) {
	changes, err := m.Status(ctx)
	if err != nil {
		return false, m.recordFailure("status", err)
	}
	if len(changes) == 0 {
		return false, "nothing to commit"
	}

	if ok, detail := m.Add(ctx); !ok {
		return false, detail
	}
	if ok, detail := m.Commit(ctx, message); !ok {
		return false, detail
	}
	if ok, detail := m.Push(ctx); !ok {
		return false, detail
	}
	return true, ""
}

// Stats returns a copy of the current counters.
func (m *Manager) Stats() Stats {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stats
}

// Failures returns the recorded failure details in order of occurrence.
func (m *Manager) Failures() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.failures))
	copy(out, m.failures)
	return out
}

// run executes one git command with the fixed per-command timeout.
// stderr is folded into the returned error; stdout is returned as-is.
func (m *Manager) run(ctx context.Context, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = m.workdir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("git %s: %v: %s", strings.Join(args, " "), err, strings.TrimSpace(stderr.String()))
	}
	return stdout.String(), nil
}

func (m *Manager) recordFailure(op string, err error) string {
	detail := fmt.Sprintf("%s failed: %v", op, err)

	m.mu.Lock()
	m.failures = append(m.failures, detail)
	m.mu.Unlock()

	m.l.Warnf(context.Background(), "internal.gitops: %s", detail)
	return detail
}

// parsePorcelain splits `git status --porcelain` output into changes:
// first two characters are the status code, the rest is the path.
func parsePorcelain(out string) []FileChange {
	var changes []FileChange
	for _, line := range strings.Split(out, "\n") {
		if len(line) < 4 {
			continue
		}
		changes = append(changes, FileChange{
			Code: line[:2],
			Path: strings.TrimSpace(line[3:]),
		})
	}
	return changes
}
