package switchboard

import (
	"context"

	"agent-switchboard/internal/competency"
	"agent-switchboard/internal/model"
	"agent-switchboard/internal/routing"
	"agent-switchboard/pkg/log"
)

// Router is the interface consumed by delivery layers and the orchestrator.
type Router interface {
	Route(ctx context.Context, input RouteInput) Decision
	ShouldEscalate(task string, confidence float64) (bool, string)
	Check(task string, kind model.AgentKind) competency.Result
	Detect(text string) routing.DetectionResult
}

// Switchboard combines the command detector, the competency checker, and
// the escalation rules into a single routing decision.
type Switchboard struct {
	detector *routing.Detector
	checker  *competency.Checker
	l        log.Logger
}

var _ Router = (*Switchboard)(nil)

// New creates a switchboard over explicit detector and checker instances.
// Dependencies are passed in rather than held as package globals so tests
// and call sites control construction.
func New(detector *routing.Detector, checker *competency.Checker, l log.Logger) *Switchboard {
	return &Switchboard{
		detector: detector,
		checker:  checker,
		l:        l,
	}
}
