package http

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"agent-switchboard/internal/model"
)

// processRouteReq binds the route request body and resolves the agent kind.
func (h *handler) processRouteReq(c *gin.Context) (routeReq, model.AgentKind, error) {
	var req routeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, "", err
	}
	kind, ok := model.ParseAgentKind(req.CurrentAgent)
	if !ok {
		return req, "", fmt.Errorf("unknown agent %q", req.CurrentAgent)
	}
	return req, kind, nil
}

// processCheckReq binds the competency check request body.
func (h *handler) processCheckReq(c *gin.Context) (checkReq, model.AgentKind, error) {
	var req checkReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, "", err
	}
	kind, ok := model.ParseAgentKind(req.Agent)
	if !ok {
		return req, "", fmt.Errorf("unknown agent %q", req.Agent)
	}
	return req, kind, nil
}

// processEscalateReq binds the escalation request body.
func (h *handler) processEscalateReq(c *gin.Context) (escalateReq, error) {
	var req escalateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processCreatePlanReq binds the plan creation request body.
func (h *handler) processCreatePlanReq(c *gin.Context) (createPlanReq, error) {
	var req createPlanReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processUpdatePlanTaskReq binds the microtask update request body.
func (h *handler) processUpdatePlanTaskReq(c *gin.Context) (updatePlanTaskReq, error) {
	var req updatePlanTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
