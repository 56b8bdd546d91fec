package gitops

import "time"

// FileChange is one line of `git status --porcelain`: a two-character
// status code and a path. No further parsing is done.
type FileChange struct {
	Code string
	Path string
}

// Stats are the persisted commit/push counters. The whole struct is read
// from .git_stats.json at startup and rewritten fully on each update.
type Stats struct {
	Commits      int       `json:"commits"`
	Pushes       int       `json:"pushes"`
	LastCommitAt time.Time `json:"last_commit_at,omitzero"`
	LastPushAt   time.Time `json:"last_push_at,omitzero"`
}

// Config configures the git manager.
type Config struct {
	Workdir   string
	StatsPath string        // path to the counters file, default .git_stats.json
	Timeout   time.Duration // per-command timeout, default 30s
}
