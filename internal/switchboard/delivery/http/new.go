package http

import (
	"agent-switchboard/internal/plan"
	"agent-switchboard/internal/switchboard"
	"agent-switchboard/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler is the public interface for the switchboard HTTP delivery layer.
type Handler interface {
	Route(c *gin.Context)
	CheckCompetency(c *gin.Context)
	Escalate(c *gin.Context)
	CreatePlan(c *gin.Context)
	PlanProgress(c *gin.Context)
	UpdatePlanTask(c *gin.Context)
}

type handler struct {
	l         log.Logger
	router    switchboard.Router
	planSvc   plan.Service
	planStore *plan.Store
}

// New creates a new HTTP handler for the switchboard domain.
func New(l log.Logger, router switchboard.Router, planSvc plan.Service, planStore *plan.Store) Handler {
	return &handler{
		l:         l,
		router:    router,
		planSvc:   planSvc,
		planStore: planStore,
	}
}
