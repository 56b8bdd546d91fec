package chat

import (
	"agent-switchboard/internal/agent/orchestrator"
	pkgLog "agent-switchboard/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler is the public interface for the chat delivery layer.
type Handler interface {
	HandleChat(c *gin.Context)
	HandleAdapt(c *gin.Context)
	HandleReset(c *gin.Context)
}

type handler struct {
	l            pkgLog.Logger
	orchestrator *orchestrator.Orchestrator
}

// New creates a new chat handler.
func New(l pkgLog.Logger, o *orchestrator.Orchestrator) Handler {
	return &handler{
		l:            l,
		orchestrator: o,
	}
}
