package tools

import (
	"context"
	"fmt"

	"agent-switchboard/internal/agent"
	"agent-switchboard/internal/model"
	"agent-switchboard/internal/switchboard"
	pkgLog "agent-switchboard/pkg/log"
)

// CheckCompetencyTool lets the model ask whether an agent can handle a task.
type CheckCompetencyTool struct {
	router switchboard.Router
	l      pkgLog.Logger
}

// NewCheckCompetencyTool creates a new competency check tool.
func NewCheckCompetencyTool(router switchboard.Router, l pkgLog.Logger) *CheckCompetencyTool {
	return &CheckCompetencyTool{router: router, l: l}
}

func (t *CheckCompetencyTool) Name() string {
	return "check_competency"
}

func (t *CheckCompetencyTool) Description() string {
	return "Check whether a given agent is competent to handle a task. Returns the verdict, confidence, and a suggested agent when the task should be delegated."
}

func (t *CheckCompetencyTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"task": map[string]interface{}{
				"type":        "string",
				"description": "Task description to evaluate",
			},
			"agent": map[string]interface{}{
				"type":        "string",
				"description": "Agent kind to evaluate, e.g. security_audit_agent",
			},
		},
		"required": []string{"task", "agent"},
	}
}

func (t *CheckCompetencyTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	task, ok := params["task"].(string)
	if !ok || task == "" {
		return nil, fmt.Errorf("task parameter is required")
	}

	agentName, ok := params["agent"].(string)
	if !ok || agentName == "" {
		return nil, fmt.Errorf("agent parameter is required")
	}

	kind, ok := model.ParseAgentKind(agentName)
	if !ok {
		return nil, fmt.Errorf("unknown agent %q", agentName)
	}

	t.l.Infof(ctx, "check_competency: agent=%s task=%q", kind, task)

	result := t.router.Check(task, kind)

	return map[string]interface{}{
		"can_handle":      result.CanHandle,
		"confidence":      result.Confidence,
		"reason":          result.Reason,
		"suggested_agent": result.SuggestedAgent.String(),
		"priority":        string(result.Priority),
	}, nil
}

var _ agent.Tool = (*CheckCompetencyTool)(nil)
