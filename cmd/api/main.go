package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"agent-switchboard/config"
	_ "agent-switchboard/docs" // Swagger docs
	"agent-switchboard/internal/agent"
	"agent-switchboard/internal/agent/orchestrator"
	"agent-switchboard/internal/agent/tools"
	"agent-switchboard/internal/chat"
	"agent-switchboard/internal/competency"
	"agent-switchboard/internal/gitops"
	gitHTTP "agent-switchboard/internal/gitops/delivery/http"
	"agent-switchboard/internal/httpserver"
	"agent-switchboard/internal/middleware"
	"agent-switchboard/internal/plan"
	"agent-switchboard/internal/routing"
	"agent-switchboard/internal/switchboard"
	switchboardHTTP "agent-switchboard/internal/switchboard/delivery/http"
	"agent-switchboard/pkg/archon"
	"agent-switchboard/pkg/llmprovider"
	"agent-switchboard/pkg/log"
)

// @title       Agent Switchboard API
// @description Keyword-driven command routing, competency checking, and plan tracking for a multi-agent assistant.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Agent Switchboard...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Core routing domain
	router := switchboard.New(routing.NewDetector(), competency.NewChecker(), logger)
	planSvc := plan.New()
	planStore := plan.NewStore()

	// 4. Archon knowledge backend
	archonClient := archon.NewClient(archon.Config{
		BaseURL: cfg.Archon.URL,
		APIKey:  cfg.Archon.APIKey,
	})

	// 5. LLM providers with fallback chain
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM providers: ", err)
		return
	}
	retryDelay, err := time.ParseDuration(cfg.LLM.RetryDelay)
	if err != nil {
		logger.Warnf(ctx, "Invalid llm.retry_delay %q, using 1s: %v", cfg.LLM.RetryDelay, err)
		retryDelay = time.Second
	}
	maxTotal, err := time.ParseDuration(cfg.LLM.MaxTotalTimeout)
	if err != nil {
		logger.Warnf(ctx, "Invalid llm.max_total_timeout %q, using 60s: %v", cfg.LLM.MaxTotalTimeout, err)
		maxTotal = 60 * time.Second
	}
	llmManager := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      retryDelay,
		MaxTotalTimeout: maxTotal,
	}, logger)
	logger.Infof(ctx, "LLM providers initialized: %d", len(providers))

	// 6. Agent tools + orchestrator
	registry := agent.NewToolRegistry()
	registry.Register(tools.NewCheckCompetencyTool(router, logger))
	registry.Register(tools.NewSearchKnowledgeTool(archonClient, logger))
	registry.Register(tools.NewGetPlanProgressTool(planStore, planSvc, logger))
	registry.Register(tools.NewUpdateTaskTool(archonClient, logger))

	orch := orchestrator.New(llmManager, registry, router, planSvc, planStore, archonClient, logger)

	// 7. Delivery handlers
	chatHandler := chat.New(logger, orch)
	switchboardHandler := switchboardHTTP.New(logger, router, planSvc, planStore)

	var gitHandler gitHTTP.Handler
	if cfg.Git.Enabled {
		gitTimeout, gtErr := time.ParseDuration(cfg.Git.Timeout)
		if gtErr != nil {
			logger.Warnf(ctx, "Invalid git.timeout %q, using default: %v", cfg.Git.Timeout, gtErr)
			gitTimeout = gitops.DefaultTimeout
		}
		gitManager := gitops.New(logger, gitops.Config{
			Workdir:   cfg.Git.Workdir,
			StatsPath: cfg.Git.StatsPath,
			Timeout:   gitTimeout,
		})
		gitHandler = gitHTTP.New(logger, gitManager, planSvc, planStore)
		logger.Infof(ctx, "Git automation enabled in %s", cfg.Git.Workdir)
	}

	// 8. HTTP Server
	mw := middleware.New(logger, cfg.RateLimit.PerMinute)
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:               cfg.HTTPServer.Port,
		Mode:               cfg.HTTPServer.Mode,
		Environment:        cfg.Environment.Name,
		Middleware:         mw,
		ChatHandler:        chatHandler,
		SwitchboardHandler: switchboardHandler,
		GitHandler:         gitHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
