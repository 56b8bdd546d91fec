package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"agent-switchboard/pkg/response"
)

type commitReq struct {
	Message string `json:"message" binding:"required,min=1,max=500"`

	// When set, the commit only runs if the plan's progress satisfies the
	// commit heuristic.
	PlanID string `json:"plan_id"`
}

type commitResp struct {
	Committed bool   `json:"committed"`
	Detail    string `json:"detail,omitempty"`
	Reason    string `json:"reason,omitempty"`
}

type statusResp struct {
	Branch  string              `json:"branch"`
	Changes []fileChangeResp    `json:"changes"`
}

type fileChangeResp struct {
	Code string `json:"code"`
	Path string `json:"path"`
}

// Status godoc
// @Summary     Working tree status
// @Description Returns the current branch and uncommitted changes.
// @Tags        Git
// @Produce     json
// @Success     200 {object} statusResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/git/status [GET]
func (h *handler) Status(c *gin.Context) {
	ctx := c.Request.Context()

	branch, err := h.git.CurrentBranch(ctx)
	if err != nil {
		h.l.Errorf(ctx, "git.CurrentBranch: %v", err)
		response.InternalError(c, err)
		return
	}

	changes, err := h.git.Status(ctx)
	if err != nil {
		h.l.Errorf(ctx, "git.Status: %v", err)
		response.InternalError(c, err)
		return
	}

	out := statusResp{Branch: branch, Changes: make([]fileChangeResp, len(changes))}
	for i, ch := range changes {
		out.Changes[i] = fileChangeResp{Code: ch.Code, Path: ch.Path}
	}
	response.OK(c, out)
}

// Commit godoc
// @Summary     Commit and push
// @Description Stages, commits, and pushes current changes. With plan_id set, runs only when plan progress satisfies the commit heuristic.
// @Tags        Git
// @Accept      json
// @Produce     json
// @Param       body body commitReq true "Commit message and optional plan gate"
// @Success     200 {object} commitResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Plan Not Found"
// @Router      /api/v1/git/commit [POST]
func (h *handler) Commit(c *gin.Context) {
	ctx := c.Request.Context()

	var req commitReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	if req.PlanID != "" {
		p, ok := h.planStore.Get(req.PlanID)
		if !ok {
			c.JSON(http.StatusNotFound, response.Resp{
				ErrorCode: http.StatusNotFound,
				Message:   fmt.Sprintf("plan %s not found", req.PlanID),
			})
			return
		}
		if shouldCommit, _ := h.planSvc.ShouldCommit(p); !shouldCommit {
			response.OK(c, commitResp{
				Committed: false,
				Reason:    "plan progress below commit threshold",
			})
			return
		}
	}

	committed, detail := h.git.CommitAndPush(ctx, req.Message)
	response.OK(c, commitResp{Committed: committed, Detail: detail})
}

// Stats godoc
// @Summary     Git automation counters
// @Description Returns commit/push counters and recorded failures.
// @Tags        Git
// @Produce     json
// @Success     200 {object} map[string]interface{}
// @Router      /api/v1/git/stats [GET]
func (h *handler) Stats(c *gin.Context) {
	response.OK(c, gin.H{
		"stats":    h.git.Stats(),
		"failures": h.git.Failures(),
	})
}
