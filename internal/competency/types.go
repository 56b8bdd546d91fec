package competency

import "agent-switchboard/internal/model"

// Area is the static set of keyword signals defining what task topics one
// agent kind is permitted to accept. Read-only after construction.
type Area struct {
	Primary    []string // strong signals, weighted 2x
	Secondary  []string // supporting signals, weighted 1x
	Exclusions []string // any match is an absolute veto, not a weighted factor
	Threshold  float64  // minimal confidence to accept, compared with >=
}

// Result is the outcome of checking one task description against one agent.
type Result struct {
	CanHandle      bool
	Confidence     float64 // in [0,1]
	Reason         string
	SuggestedAgent model.AgentKind // set when CanHandle is false
	Priority       model.Priority
}
