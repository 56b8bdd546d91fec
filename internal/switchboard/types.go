package switchboard

import (
	"agent-switchboard/internal/model"
	"agent-switchboard/internal/routing"
)

// DecisionKind is the routing verdict for one user message.
type DecisionKind string

const (
	// DecisionProceed lets the current agent handle the message.
	DecisionProceed DecisionKind = "proceed"

	// DecisionDelegate reroutes the message to the suggested agent.
	DecisionDelegate DecisionKind = "delegate"

	// DecisionSwitchToManager hands the conversation to the project manager.
	DecisionSwitchToManager DecisionKind = "switch_to_manager"
)

// RouteInput is one message to route on behalf of the current agent.
type RouteInput struct {
	Message      string
	CurrentAgent model.AgentKind
}

// Decision is the combined routing verdict. Created per call, never cached.
type Decision struct {
	Kind           DecisionKind
	Action         routing.Action // detected command, ActionNone when none
	SuggestedAgent model.AgentKind
	Confidence     float64
	Reason         string
	Priority       model.Priority
}
