package orchestrator

import (
	"time"

	"agent-switchboard/internal/model"
	"agent-switchboard/internal/switchboard"
	"agent-switchboard/pkg/llmprovider"
)

// SessionMemory holds the recent conversation history for a user.
type SessionMemory struct {
	UserID      string
	Messages    []llmprovider.Message
	LastUpdated time.Time
}

// QueryInput is one chat message to process.
type QueryInput struct {
	UserID       string
	CurrentAgent model.AgentKind
	Message      string
}

// QueryResult is the outcome of processing one chat message.
// When the routing decision is not "proceed", Answer explains the handoff
// and no LLM call is made.
type QueryResult struct {
	Answer   string
	Decision switchboard.Decision
	PlanID   string
	Provider string
}
