package chat

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"agent-switchboard/internal/agent/orchestrator"
	"agent-switchboard/internal/model"
	"agent-switchboard/pkg/response"
)

// HandleChat processes one user message through routing and the agent loop.
// @Summary     Chat with the assistant
// @Description Routes the message; when the current agent keeps it, runs the tool-calling agent loop.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body ChatRequest true "User message"
// @Success     200 {object} ChatResponse
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat [POST]
func (h *handler) HandleChat(c *gin.Context) {
	ctx := c.Request.Context()

	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	kind, ok := model.ParseAgentKind(req.Agent)
	if !ok {
		response.Error(c, fmt.Errorf("unknown agent %q", req.Agent), nil)
		return
	}

	result, err := h.orchestrator.ProcessQuery(ctx, orchestrator.QueryInput{
		UserID:       req.UserID,
		CurrentAgent: kind,
		Message:      req.Message,
	})
	if err != nil {
		h.l.Errorf(ctx, "internal.chat.HandleChat: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, ChatResponse{
		Answer:         result.Answer,
		Decision:       string(result.Decision.Kind),
		Action:         string(result.Decision.Action),
		SuggestedAgent: result.Decision.SuggestedAgent.String(),
		Confidence:     result.Decision.Confidence,
		Reason:         result.Decision.Reason,
		PlanID:         result.PlanID,
		Provider:       result.Provider,
	})
}

// HandleAdapt rewrites content for each requested perception modality.
// @Summary     Adapt content per modality
// @Description Rewrites content for visual, auditory, and kinesthetic perception channels.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body AdaptRequest true "Content to adapt"
// @Success     200 {object} AdaptResponse
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat/adapt [POST]
func (h *handler) HandleAdapt(c *gin.Context) {
	ctx := c.Request.Context()

	var req AdaptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	adaptations, err := h.orchestrator.AdaptBatch(ctx, req.Content, req.Modalities)
	if err != nil {
		h.l.Errorf(ctx, "internal.chat.HandleAdapt: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, AdaptResponse{Adaptations: adaptations})
}

// HandleReset clears the conversation session for a user.
// @Summary     Reset chat session
// @Description Clears conversation history for a user.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body ResetRequest true "User to reset"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/chat/reset [POST]
func (h *handler) HandleReset(c *gin.Context) {
	ctx := c.Request.Context()

	var req ResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	h.orchestrator.ClearSession(req.UserID)
	h.l.Infof(ctx, "internal.chat.HandleReset: cleared session for user_id=%s", req.UserID)

	response.OK(c, gin.H{"reset": true})
}
