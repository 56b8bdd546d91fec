package http

import (
	"agent-switchboard/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.GET("/status", mw.RateLimit(), h.Status)
	rg.GET("/stats", mw.RateLimit(), h.Stats)
	rg.POST("/commit", mw.RateLimit(), h.Commit)
}
