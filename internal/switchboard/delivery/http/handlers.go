package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"agent-switchboard/internal/plan"
	"agent-switchboard/pkg/response"
)

// Route godoc
// @Summary     Route a message
// @Description Runs the full routing pipeline: command detection, competency check, escalation rules.
// @Tags        Switchboard
// @Accept      json
// @Produce     json
// @Param       body body routeReq true "Message to route"
// @Success     200 {object} routeResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/switchboard/route [POST]
func (h *handler) Route(c *gin.Context) {
	ctx := c.Request.Context()

	req, kind, err := h.processRouteReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	decision := h.router.Route(ctx, req.toInput(kind))
	response.OK(c, newRouteResp(decision))
}

// CheckCompetency godoc
// @Summary     Check agent competency
// @Description Evaluates whether the given agent can handle the task.
// @Tags        Switchboard
// @Accept      json
// @Produce     json
// @Param       body body checkReq true "Task and agent to check"
// @Success     200 {object} checkResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/switchboard/competency/check [POST]
func (h *handler) CheckCompetency(c *gin.Context) {
	req, kind, err := h.processCheckReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	result := h.router.Check(req.Task, kind)
	response.OK(c, newCheckResp(result))
}

// Escalate godoc
// @Summary     Evaluate escalation rules
// @Description Applies the escalation rules to a task and confidence value.
// @Tags        Switchboard
// @Accept      json
// @Produce     json
// @Param       body body escalateReq true "Task and confidence"
// @Success     200 {object} escalateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/switchboard/escalate [POST]
func (h *handler) Escalate(c *gin.Context) {
	req, err := h.processEscalateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	escalate, reason := h.router.ShouldEscalate(req.Task, *req.Confidence)
	response.OK(c, escalateResp{Escalate: escalate, Reason: reason})
}

// CreatePlan godoc
// @Summary     Create a microtask plan
// @Description Builds a plan from the template matching the task description.
// @Tags        Plan
// @Accept      json
// @Produce     json
// @Param       body body createPlanReq true "Task description"
// @Success     200 {object} planResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/switchboard/plan [POST]
func (h *handler) CreatePlan(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreatePlanReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	p := h.planSvc.Build(req.Description)
	h.planStore.Put(p)

	h.l.Infof(ctx, "plan created: id=%s kind=%s tasks=%d", p.ID, p.Kind, len(p.Tasks))
	response.OK(c, h.newPlanResp(p))
}

// PlanProgress godoc
// @Summary     Get plan progress
// @Description Returns progress stats, the rendered checklist, and the commit verdict.
// @Tags        Plan
// @Produce     json
// @Param       id path string true "Plan ID"
// @Success     200 {object} planProgressResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/switchboard/plan/{id} [GET]
func (h *handler) PlanProgress(c *gin.Context) {
	p, ok := h.planStore.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, response.Resp{
			ErrorCode: http.StatusNotFound,
			Message:   "plan not found",
		})
		return
	}

	response.OK(c, h.newPlanProgressResp(p))
}

// UpdatePlanTask godoc
// @Summary     Update a microtask status
// @Description Sets the status of one microtask within a plan.
// @Tags        Plan
// @Accept      json
// @Produce     json
// @Param       id      path string            true "Plan ID"
// @Param       task_id path string            true "Microtask ID"
// @Param       body    body updatePlanTaskReq true "New status"
// @Success     200 {object} planProgressResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/switchboard/plan/{id}/tasks/{task_id} [PATCH]
func (h *handler) UpdatePlanTask(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdatePlanTaskReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	p, ok := h.planStore.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, response.Resp{
			ErrorCode: http.StatusNotFound,
			Message:   "plan not found",
		})
		return
	}

	taskID := c.Param("task_id")
	if err := h.planSvc.UpdateStatus(p, taskID, plan.Status(req.Status)); err != nil {
		if errors.Is(err, plan.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, response.Resp{
				ErrorCode: http.StatusNotFound,
				Message:   fmt.Sprintf("microtask %s not found", taskID),
			})
			return
		}
		h.l.Errorf(ctx, "planSvc.UpdateStatus: %v", err)
		response.Error(c, err, nil)
		return
	}

	response.OK(c, h.newPlanProgressResp(p))
}
