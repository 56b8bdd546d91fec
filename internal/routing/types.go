package routing

// Action is a command the detector can recognize in free-form user text.
type Action string

const (
	// ActionNone means no command pattern matched.
	ActionNone Action = ""

	ActionContinueWork Action = "continue_work"
	ActionSwitchToPM   Action = "switch_to_pm"
	ActionShowStatus   Action = "show_status"
	ActionCreatePlan   Action = "create_plan"
	ActionDelegateTask Action = "delegate_task"
)

// KeywordPattern maps a set of trigger keywords to an action.
// Patterns are immutable after startup; Detect never mutates them.
type KeywordPattern struct {
	Keywords        []string // lowercase trigger substrings, declaration order
	Action          Action
	BaseConfidence  float64 // in [0,1]
	ContextRequired bool    // demand co-occurring context indicators
}

// DetectionResult is the best match for one input, discarded after use.
type DetectionResult struct {
	Action     Action
	Confidence float64 // in [0,1], 0.0 when Action is ActionNone
}

// Matched reports whether any pattern matched.
func (r DetectionResult) Matched() bool {
	return r.Action != ActionNone
}
