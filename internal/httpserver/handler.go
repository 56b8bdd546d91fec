package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	gitHTTP "agent-switchboard/internal/gitops/delivery/http"
	switchboardHTTP "agent-switchboard/internal/switchboard/delivery/http"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	return srv.registerDomainRoutes()
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(srv.middleware.RequestID())
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

func (srv *HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1")

	switchboardHTTP.RegisterRoutes(api.Group("/switchboard"), srv.switchboardHandler, srv.middleware)
	srv.l.Infof(ctx, "Switchboard routes registered under /api/v1/switchboard")

	if srv.chatHandler != nil {
		api.POST("/chat", srv.middleware.RateLimit(), srv.chatHandler.HandleChat)
		api.POST("/chat/adapt", srv.middleware.RateLimit(), srv.chatHandler.HandleAdapt)
		api.POST("/chat/reset", srv.middleware.RateLimit(), srv.chatHandler.HandleReset)
		srv.l.Infof(ctx, "Chat routes registered under /api/v1/chat")
	} else {
		srv.l.Infof(ctx, "Chat handler not configured, skipping chat routes")
	}

	if srv.gitHandler != nil {
		gitHTTP.RegisterRoutes(api.Group("/git"), srv.gitHandler, srv.middleware)
		srv.l.Infof(ctx, "Git routes registered under /api/v1/git")
	} else {
		srv.l.Infof(ctx, "Git automation disabled, skipping git routes")
	}

	return nil
}
