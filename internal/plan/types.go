package plan

import "time"

// Status is the lifecycle state of one microtask.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusBlocked    Status = "blocked"
	StatusSkipped    Status = "skipped"
)

// IsValid reports whether s is a known status.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusBlocked, StatusSkipped:
		return true
	}
	return false
}

// Kind selects which fixed template a plan is built from.
type Kind string

const (
	KindFeature  Kind = "feature"
	KindBugfix   Kind = "bugfix"
	KindRefactor Kind = "refactor"
	KindAudit    Kind = "audit"
	KindGeneric  Kind = "generic"
)

// Tags classifying microtasks. The commit heuristic keys off TagImplementation.
const (
	TagAnalysis       = "analysis"
	TagImplementation = "implementation"
	TagVerification   = "verification"
)

// Microtask is one ordered step of a plan. Mutated in place as work
// progresses; lives only for the duration of a conversation turn.
type Microtask struct {
	ID            string
	Title         string
	EstimatedTime time.Duration
	Status        Status
	DependsOn     []string // ids that must be completed or skipped first
	Tag           string
}

// Plan is an ephemeral, template-derived checklist. Never persisted.
type Plan struct {
	ID        string
	Kind      Kind
	Tasks     []Microtask
	CreatedAt time.Time
}

// Stats summarizes plan progress.
type Stats struct {
	Total     int     `json:"total"`
	Completed int     `json:"completed"`
	Pending   int     `json:"pending"`
	Progress  float64 `json:"progress"` // percentage, 0-100
}
