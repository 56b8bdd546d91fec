package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"agent-switchboard/internal/chat"
	gitHTTP "agent-switchboard/internal/gitops/delivery/http"
	"agent-switchboard/internal/middleware"
	switchboardHTTP "agent-switchboard/internal/switchboard/delivery/http"
	"agent-switchboard/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	middleware middleware.Middleware

	chatHandler        chat.Handler
	switchboardHandler switchboardHTTP.Handler

	// Optional: only registered when git automation is enabled.
	gitHandler gitHTTP.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Port        int
	Mode        string
	Environment string

	Middleware middleware.Middleware

	ChatHandler        chat.Handler
	SwitchboardHandler switchboardHTTP.Handler
	GitHandler         gitHTTP.Handler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                  logger,
		gin:                gin.New(),
		port:               cfg.Port,
		mode:               cfg.Mode,
		environment:        cfg.Environment,
		middleware:         cfg.Middleware,
		chatHandler:        cfg.ChatHandler,
		switchboardHandler: cfg.SwitchboardHandler,
		gitHandler:         cfg.GitHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.switchboardHandler == nil {
		return errors.New("switchboard handler is required")
	}
	return nil
}
