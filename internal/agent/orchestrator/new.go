package orchestrator

import (
	"context"
	"sync"
	"time"

	"agent-switchboard/internal/agent"
	"agent-switchboard/internal/plan"
	"agent-switchboard/internal/switchboard"
	"agent-switchboard/pkg/archon"
	"agent-switchboard/pkg/llmprovider"
	pkgLog "agent-switchboard/pkg/log"
)

// LLMClient is the slice of llmprovider.Manager the orchestrator needs.
type LLMClient interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

type Orchestrator struct {
	llm       LLMClient
	registry  *agent.ToolRegistry
	router    switchboard.Router
	planSvc   plan.Service
	planStore *plan.Store
	knowledge archon.IArchon
	l         pkgLog.Logger

	sessionCache map[string]*SessionMemory
	cacheMutex   sync.RWMutex
	cacheTTL     time.Duration
}

func New(
	llm LLMClient,
	registry *agent.ToolRegistry,
	router switchboard.Router,
	planSvc plan.Service,
	planStore *plan.Store,
	knowledge archon.IArchon,
	l pkgLog.Logger,
) *Orchestrator {
	o := &Orchestrator{
		llm:          llm,
		registry:     registry,
		router:       router,
		planSvc:      planSvc,
		planStore:    planStore,
		knowledge:    knowledge,
		l:            l,
		sessionCache: make(map[string]*SessionMemory),
		cacheTTL:     10 * time.Minute,
	}

	go o.cleanupExpiredSessions()

	return o
}
