package http

import (
	"context"

	"github.com/gin-gonic/gin"

	"agent-switchboard/internal/gitops"
	"agent-switchboard/internal/plan"
	"agent-switchboard/pkg/log"
)

// GitManager is the slice of gitops.Manager the handlers need.
type GitManager interface {
	Status(ctx context.Context) ([]gitops.FileChange, error)
	CurrentBranch(ctx context.Context) (string, error)
	CommitAndPush(ctx context.Context, message string) (bool, string)
	Stats() gitops.Stats
	Failures() []string
}

// Handler is the public interface for the gitops HTTP delivery layer.
type Handler interface {
	Status(c *gin.Context)
	Commit(c *gin.Context)
	Stats(c *gin.Context)
}

type handler struct {
	l         log.Logger
	git       GitManager
	planSvc   plan.Service
	planStore *plan.Store
}

// New creates a new HTTP handler for the gitops domain.
func New(l log.Logger, git GitManager, planSvc plan.Service, planStore *plan.Store) Handler {
	return &handler{
		l:         l,
		git:       git,
		planSvc:   planSvc,
		planStore: planStore,
	}
}
