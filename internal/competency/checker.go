package competency

import (
	"fmt"
	"strings"

	"agent-switchboard/internal/model"
)

// Checker scores task descriptions against the static competency matrix.
// Construct once and pass by reference; Check is pure and deterministic.
type Checker struct {
	matrix map[model.AgentKind]Area
	order  []model.AgentKind
}

// NewChecker creates a checker over the built-in matrix.
func NewChecker() *Checker {
	return &Checker{
		matrix: competencyMatrix,
		order:  model.AllAgentKinds,
	}
}

// Area returns the competency area for an agent kind.
func (c *Checker) Area(kind model.AgentKind) (Area, bool) {
	area, ok := c.matrix[kind]
	return area, ok
}

// Check decides whether the given agent may handle the task description.
//
// Exclusion keywords are an absolute veto: a single match rejects the task
// with confidence 0 no matter how many primary keywords also match.
// Otherwise confidence = min(1, (2*primary + secondary) / (|primary| + |secondary|)),
// accepted iff confidence >= area threshold (boundary inclusive).
func (c *Checker) Check(task string, kind model.AgentKind) Result {
	area, ok := c.matrix[kind]
	if !ok {
		return Result{
			CanHandle:      false,
			Confidence:     0,
			Reason:         fmt.Sprintf("unknown agent kind %q", kind),
			SuggestedAgent: fallbackAgent,
			Priority:       model.PriorityMedium,
		}
	}

	lower := strings.ToLower(task)

	if kw, hit := firstMatch(lower, area.Exclusions); hit {
		return Result{
			CanHandle:      false,
			Confidence:     0,
			Reason:         fmt.Sprintf("exclusion keyword %q", kw),
			SuggestedAgent: c.findDelegate(lower, kind),
			Priority:       model.PriorityHigh,
		}
	}

	primary := matchCount(lower, area.Primary)
	secondary := matchCount(lower, area.Secondary)

	total := len(area.Primary) + len(area.Secondary)
	confidence := 0.0
	if total > 0 {
		confidence = float64(2*primary+secondary) / float64(total)
	}
	if confidence > 1.0 {
		confidence = 1.0
	}

	if confidence >= area.Threshold {
		return Result{
			CanHandle:  true,
			Confidence: confidence,
			Reason:     fmt.Sprintf("%d primary, %d secondary keyword matches", primary, secondary),
			Priority:   priorityFor(confidence),
		}
	}

	return Result{
		CanHandle:      false,
		Confidence:     confidence,
		Reason:         fmt.Sprintf("confidence %.2f below threshold %.2f", confidence, area.Threshold),
		SuggestedAgent: c.findDelegate(lower, kind),
		Priority:       model.PriorityLow,
	}
}

// findDelegate picks the best alternate agent for a rejected task.
// Scans agent kinds in declaration order, skips the rejected kind and any
// kind whose own exclusions match, keeps the highest weighted score with
// strict > so ties resolve to the earliest declared kind. Falls back to the
// project manager when nothing scores positive.
func (c *Checker) findDelegate(lower string, exclude model.AgentKind) model.AgentKind {
	best := fallbackAgent
	bestScore := 0

	for _, kind := range c.order {
		if kind == exclude {
			continue
		}
		area := c.matrix[kind]
		if _, hit := firstMatch(lower, area.Exclusions); hit {
			continue
		}
		score := 2*matchCount(lower, area.Primary) + matchCount(lower, area.Secondary)
		if score > bestScore {
			best = kind
			bestScore = score
		}
	}

	return best
}

// matchCount counts how many keywords occur in the lowered text.
// Each keyword counts at most once.
func matchCount(lower string, keywords []string) int {
	n := 0
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			n++
		}
	}
	return n
}

// firstMatch returns the first keyword present in the lowered text.
func firstMatch(lower string, keywords []string) (string, bool) {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return kw, true
		}
	}
	return "", false
}

// priorityFor grades an accepted task by confidence.
func priorityFor(confidence float64) model.Priority {
	switch {
	case confidence >= 0.7:
		return model.PriorityHigh
	case confidence >= 0.4:
		return model.PriorityMedium
	default:
		return model.PriorityLow
	}
}
