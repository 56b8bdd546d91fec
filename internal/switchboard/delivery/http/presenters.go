package http

import (
	"time"

	"agent-switchboard/internal/competency"
	"agent-switchboard/internal/model"
	"agent-switchboard/internal/plan"
	"agent-switchboard/internal/switchboard"
)

// --- Request DTOs ---

type routeReq struct {
	Message      string `json:"message"       binding:"required,min=1,max=4000"`
	CurrentAgent string `json:"current_agent" binding:"required"`
}

func (r routeReq) toInput(kind model.AgentKind) switchboard.RouteInput {
	return switchboard.RouteInput{
		Message:      r.Message,
		CurrentAgent: kind,
	}
}

type checkReq struct {
	Task  string `json:"task"  binding:"required,min=1,max=4000"`
	Agent string `json:"agent" binding:"required"`
}

type escalateReq struct {
	Task       string   `json:"task"       binding:"required,min=1,max=4000"`
	Confidence *float64 `json:"confidence" binding:"required,gte=0,lte=1"`
}

type createPlanReq struct {
	Description string `json:"description" binding:"required,min=1,max=4000"`
}

type updatePlanTaskReq struct {
	Status string `json:"status" binding:"required,oneof=pending in_progress completed blocked skipped"`
}

// --- Response DTOs ---

type routeResp struct {
	Kind           string  `json:"kind"`
	Action         string  `json:"action,omitempty"`
	SuggestedAgent string  `json:"suggested_agent,omitempty"`
	Confidence     float64 `json:"confidence"`
	Reason         string  `json:"reason"`
	Priority       string  `json:"priority"`
}

func newRouteResp(d switchboard.Decision) routeResp {
	return routeResp{
		Kind:           string(d.Kind),
		Action:         string(d.Action),
		SuggestedAgent: d.SuggestedAgent.String(),
		Confidence:     d.Confidence,
		Reason:         d.Reason,
		Priority:       string(d.Priority),
	}
}

type checkResp struct {
	CanHandle      bool    `json:"can_handle"`
	Confidence     float64 `json:"confidence"`
	Reason         string  `json:"reason"`
	SuggestedAgent string  `json:"suggested_agent,omitempty"`
	Priority       string  `json:"priority"`
}

func newCheckResp(r competency.Result) checkResp {
	return checkResp{
		CanHandle:      r.CanHandle,
		Confidence:     r.Confidence,
		Reason:         r.Reason,
		SuggestedAgent: r.SuggestedAgent.String(),
		Priority:       string(r.Priority),
	}
}

type escalateResp struct {
	Escalate bool   `json:"escalate"`
	Reason   string `json:"reason,omitempty"`
}

type microtaskResp struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	EstimatedTime string   `json:"estimated_time"`
	Status        string   `json:"status"`
	DependsOn     []string `json:"depends_on,omitempty"`
	Tag           string   `json:"tag,omitempty"`
}

func newMicrotaskResp(t plan.Microtask) microtaskResp {
	return microtaskResp{
		ID:            t.ID,
		Title:         t.Title,
		EstimatedTime: t.EstimatedTime.String(),
		Status:        string(t.Status),
		DependsOn:     t.DependsOn,
		Tag:           t.Tag,
	}
}

type planResp struct {
	PlanID    string          `json:"plan_id"`
	Kind      string          `json:"kind"`
	Tasks     []microtaskResp `json:"tasks"`
	Rendered  string          `json:"rendered"`
	CreatedAt time.Time       `json:"created_at"`
}

func (h *handler) newPlanResp(p *plan.Plan) planResp {
	tasks := make([]microtaskResp, len(p.Tasks))
	for i, t := range p.Tasks {
		tasks[i] = newMicrotaskResp(t)
	}
	return planResp{
		PlanID:    p.ID,
		Kind:      string(p.Kind),
		Tasks:     tasks,
		Rendered:  h.planSvc.Render(p),
		CreatedAt: p.CreatedAt,
	}
}

type planProgressResp struct {
	PlanID       string     `json:"plan_id"`
	Stats        plan.Stats `json:"stats"`
	Rendered     string     `json:"rendered"`
	ShouldCommit bool       `json:"should_commit"`
	CommitReason string     `json:"commit_reason,omitempty"`
	NextTask     string     `json:"next_task,omitempty"`
}

func (h *handler) newPlanProgressResp(p *plan.Plan) planProgressResp {
	shouldCommit, reason := h.planSvc.ShouldCommit(p)
	resp := planProgressResp{
		PlanID:       p.ID,
		Stats:        h.planSvc.GetStats(p),
		Rendered:     h.planSvc.Render(p),
		ShouldCommit: shouldCommit,
		CommitReason: reason,
	}
	if next, ok := h.planSvc.Next(p); ok {
		resp.NextTask = next.ID
	}
	return resp
}
