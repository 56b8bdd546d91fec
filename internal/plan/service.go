package plan

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrTaskNotFound  = errors.New("microtask not found in plan")
	ErrInvalidStatus = errors.New("invalid microtask status")
)

// Service builds and advances microtask plans.
type Service interface {
	// Build creates a plan from the template matching the task description.
	Build(description string) *Plan

	// UpdateStatus sets the status of one microtask by id.
	UpdateStatus(p *Plan, taskID string, status Status) error

	// Next returns the first pending microtask whose dependencies are done.
	Next(p *Plan) (*Microtask, bool)

	// GetStats summarizes plan progress.
	GetStats(p *Plan) Stats

	// ShouldCommit applies the commit heuristic to current progress.
	ShouldCommit(p *Plan) (bool, string)

	// Render formats the plan as a markdown checklist for the user.
	Render(p *Plan) string
}

type service struct{}

// New creates the plan service.
func New() Service {
	return &service{}
}

// Build copies the template for the detected kind into a fresh plan.
// Templates stay untouched; the returned plan is the caller's to mutate.
func (s *service) Build(description string) *Plan {
	kind := DetectKind(description)

	template := templates[kind]
	tasks := make([]Microtask, len(template))
	copy(tasks, template)
	for i := range tasks {
		tasks[i].Status = StatusPending
	}

	return &Plan{
		ID:        uuid.NewString(),
		Kind:      kind,
		Tasks:     tasks,
		CreatedAt: time.Now(),
	}
}

func (s *service) UpdateStatus(p *Plan, taskID string, status Status) error {
	if !status.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	for i := range p.Tasks {
		if p.Tasks[i].ID == taskID {
			p.Tasks[i].Status = status
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrTaskNotFound, taskID)
}

// Next walks tasks in order and returns the first pending one whose
// dependencies are all completed or skipped.
func (s *service) Next(p *Plan) (*Microtask, bool) {
	done := make(map[string]bool, len(p.Tasks))
	for _, t := range p.Tasks {
		if t.Status == StatusCompleted || t.Status == StatusSkipped {
			done[t.ID] = true
		}
	}

	for i := range p.Tasks {
		t := &p.Tasks[i]
		if t.Status != StatusPending {
			continue
		}
		ready := true
		for _, dep := range t.DependsOn {
			if !done[dep] {
				ready = false
				break
			}
		}
		if ready {
			return t, true
		}
	}

	return nil, false
}

func (s *service) GetStats(p *Plan) Stats {
	total := len(p.Tasks)
	if total == 0 {
		return Stats{}
	}

	completed := 0
	for _, t := range p.Tasks {
		if t.Status == StatusCompleted {
			completed++
		}
	}

	return Stats{
		Total:     total,
		Completed: completed,
		Pending:   total - completed,
		Progress:  float64(completed) / float64(total) * 100,
	}
}

// ShouldCommit reports whether enough of the plan is done to commit:
// everything completed, or at least half, or the full implementation-tagged
// subset. Checked in that order; the first reason wins.
func (s *service) ShouldCommit(p *Plan) (bool, string) {
	stats := s.GetStats(p)
	if stats.Total == 0 {
		return false, ""
	}

	if stats.Completed == stats.Total {
		return true, "all microtasks completed"
	}
	if float64(stats.Completed)/float64(stats.Total) >= 0.5 {
		return true, "at least half of microtasks completed"
	}

	implTotal, implDone := 0, 0
	for _, t := range p.Tasks {
		if t.Tag != TagImplementation {
			continue
		}
		implTotal++
		if t.Status == StatusCompleted {
			implDone++
		}
	}
	if implTotal > 0 && implDone == implTotal {
		return true, "implementation microtasks completed"
	}

	return false, ""
}

// Render writes the plan as a markdown checklist, one checkbox per
// microtask, with status markers for blocked and skipped steps.
func (s *service) Render(p *Plan) string {
	var b strings.Builder
	fmt.Fprintf(&b, "План (%s):\n", p.Kind)

	for _, t := range p.Tasks {
		box := "- [ ]"
		if t.Status == StatusCompleted {
			box = "- [x]"
		}
		fmt.Fprintf(&b, "%s %s (~%s)", box, t.Title, formatDuration(t.EstimatedTime))
		switch t.Status {
		case StatusInProgress:
			b.WriteString(" — в работе")
		case StatusBlocked:
			b.WriteString(" — заблокировано")
		case StatusSkipped:
			b.WriteString(" — пропущено")
		}
		b.WriteString("\n")
	}

	stats := s.GetStats(p)
	fmt.Fprintf(&b, "Прогресс: %d/%d (%.0f%%)\n", stats.Completed, stats.Total, stats.Progress)
	return b.String()
}

func formatDuration(d time.Duration) string {
	return fmt.Sprintf("%d мин", int(d.Minutes()))
}
