package tools

import (
	"context"
	"fmt"

	"agent-switchboard/internal/agent"
	"agent-switchboard/internal/plan"
	pkgLog "agent-switchboard/pkg/log"
)

// GetPlanProgressTool reports microtask plan progress.
type GetPlanProgressTool struct {
	store   *plan.Store
	planSvc plan.Service
	l       pkgLog.Logger
}

// NewGetPlanProgressTool creates a new plan progress tool.
func NewGetPlanProgressTool(store *plan.Store, planSvc plan.Service, l pkgLog.Logger) *GetPlanProgressTool {
	return &GetPlanProgressTool{
		store:   store,
		planSvc: planSvc,
		l:       l,
	}
}

func (t *GetPlanProgressTool) Name() string {
	return "get_plan_progress"
}

func (t *GetPlanProgressTool) Description() string {
	return "Get progress of a microtask plan. Returns completed/total counts, the rendered checklist, and whether enough is done to commit."
}

func (t *GetPlanProgressTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"plan_id": map[string]interface{}{
				"type":        "string",
				"description": "Plan identifier",
			},
		},
		"required": []string{"plan_id"},
	}
}

// GetPlanProgressOutput is the tool result passed back to the LLM.
type GetPlanProgressOutput struct {
	PlanID       string     `json:"plan_id"`
	Stats        plan.Stats `json:"stats"`
	Rendered     string     `json:"rendered"`
	ShouldCommit bool       `json:"should_commit"`
	CommitReason string     `json:"commit_reason,omitempty"`
}

func (t *GetPlanProgressTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	planID, ok := params["plan_id"].(string)
	if !ok || planID == "" {
		return nil, fmt.Errorf("plan_id parameter is required")
	}

	p, ok := t.store.Get(planID)
	if !ok {
		return nil, fmt.Errorf("plan %q not found", planID)
	}

	t.l.Infof(ctx, "get_plan_progress: plan_id=%s", planID)

	shouldCommit, reason := t.planSvc.ShouldCommit(p)

	return GetPlanProgressOutput{
		PlanID:       p.ID,
		Stats:        t.planSvc.GetStats(p),
		Rendered:     t.planSvc.Render(p),
		ShouldCommit: shouldCommit,
		CommitReason: reason,
	}, nil
}

var _ agent.Tool = (*GetPlanProgressTool)(nil)
