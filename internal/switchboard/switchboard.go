package switchboard

import (
	"context"
	"fmt"
	"strings"

	"agent-switchboard/internal/competency"
	"agent-switchboard/internal/model"
	"agent-switchboard/internal/routing"
)

// Log prefixes
const (
	LogPrefixRoute = "internal.switchboard.Route"
)

// lowConfidenceBound triggers escalation when competency confidence is below it.
const lowConfidenceBound = 0.3

// managementKeywords escalate a task to the project manager on sight.
var managementKeywords = []string{
	"приоритет",
	"координация",
	"менеджер",
	"срочно",
	"распредели",
}

// coordinationPhrases are explicit requests for team-wide coordination.
var coordinationPhrases = []string{
	"все агенты",
	"всем агентам",
	"вся команда",
	"общая координация",
}

// ShouldEscalate applies the escalation rules in fixed order: management
// keyword, then low confidence, then team-wide coordination phrase. The
// first matching rule supplies the reason; (false, "") when none apply.
func (s *Switchboard) ShouldEscalate(task string, confidence float64) (bool, string) {
	lower := strings.ToLower(task)

	for _, kw := range managementKeywords {
		if strings.Contains(lower, kw) {
			return true, fmt.Sprintf("management keyword %q", kw)
		}
	}

	if confidence < lowConfidenceBound {
		return true, fmt.Sprintf("confidence %.2f below %.2f", confidence, lowConfidenceBound)
	}

	for _, phrase := range coordinationPhrases {
		if strings.Contains(lower, phrase) {
			return true, fmt.Sprintf("coordination phrase %q", phrase)
		}
	}

	return false, ""
}

// Route decides what to do with one message on behalf of the current agent:
//
//  1. an explicit coordination command switches to the project manager;
//  2. a competency reject with a concrete alternate agent delegates there;
//  3. otherwise the escalation rules run on the competency confidence and
//     hand over to the project manager when any of them fires;
//  4. everything else proceeds with the current agent.
//
// Delegation is checked before escalation on purpose: an off-topic task
// with a clearly competent alternate agent goes to that agent, not to the
// manager, even though its confidence for the current agent is low.
// Route only reads the static tables and never mutates shared state.
func (s *Switchboard) Route(ctx context.Context, input RouteInput) Decision {
	det := s.detector.Detect(input.Message)

	if s.detector.ShouldSwitchToPM(input.Message) {
		decision := Decision{
			Kind:           DecisionSwitchToManager,
			Action:         det.Action,
			SuggestedAgent: model.AgentProjectManager,
			Confidence:     det.Confidence,
			Reason:         fmt.Sprintf("coordination command %q", det.Action),
			Priority:       model.PriorityHigh,
		}
		s.l.Debugf(ctx, "%s: %s (%.2f) for agent %s", LogPrefixRoute, decision.Kind, decision.Confidence, input.CurrentAgent)
		return decision
	}

	comp := s.checker.Check(input.Message, input.CurrentAgent)

	if !comp.CanHandle && comp.SuggestedAgent != model.AgentProjectManager {
		decision := Decision{
			Kind:           DecisionDelegate,
			Action:         det.Action,
			SuggestedAgent: comp.SuggestedAgent,
			Confidence:     comp.Confidence,
			Reason:         comp.Reason,
			Priority:       comp.Priority,
		}
		s.l.Debugf(ctx, "%s: %s to %s for agent %s", LogPrefixRoute, decision.Kind, decision.SuggestedAgent, input.CurrentAgent)
		return decision
	}

	if escalate, reason := s.ShouldEscalate(input.Message, comp.Confidence); escalate {
		decision := Decision{
			Kind:           DecisionSwitchToManager,
			Action:         det.Action,
			SuggestedAgent: model.AgentProjectManager,
			Confidence:     comp.Confidence,
			Reason:         reason,
			Priority:       model.PriorityHigh,
		}
		s.l.Debugf(ctx, "%s: %s (%s) for agent %s", LogPrefixRoute, decision.Kind, reason, input.CurrentAgent)
		return decision
	}

	if !comp.CanHandle {
		decision := Decision{
			Kind:           DecisionDelegate,
			Action:         det.Action,
			SuggestedAgent: comp.SuggestedAgent,
			Confidence:     comp.Confidence,
			Reason:         comp.Reason,
			Priority:       comp.Priority,
		}
		s.l.Debugf(ctx, "%s: %s to %s for agent %s", LogPrefixRoute, decision.Kind, decision.SuggestedAgent, input.CurrentAgent)
		return decision
	}

	return Decision{
		Kind:       DecisionProceed,
		Action:     det.Action,
		Confidence: comp.Confidence,
		Reason:     comp.Reason,
		Priority:   comp.Priority,
	}
}

// Check exposes the competency checker for tools and handlers.
func (s *Switchboard) Check(task string, kind model.AgentKind) competency.Result {
	return s.checker.Check(task, kind)
}

// Detect exposes the command detector for tools and handlers.
func (s *Switchboard) Detect(text string) routing.DetectionResult {
	return s.detector.Detect(text)
}
