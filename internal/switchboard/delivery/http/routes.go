package http

import (
	"agent-switchboard/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/route", mw.RateLimit(), h.Route)
	rg.POST("/competency/check", mw.RateLimit(), h.CheckCompetency)
	rg.POST("/escalate", mw.RateLimit(), h.Escalate)

	plans := rg.Group("/plan")
	{
		plans.POST("", mw.RateLimit(), h.CreatePlan)
		plans.GET("/:id", mw.RateLimit(), h.PlanProgress)
		plans.PATCH("/:id/tasks/:task_id", mw.RateLimit(), h.UpdatePlanTask)
	}
}
