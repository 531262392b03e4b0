package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	chatHTTP "ai-todo-backend/internal/chat/delivery/http"
	"ai-todo-backend/internal/middleware"
	taskHTTP "ai-todo-backend/internal/task/delivery/http"
	"ai-todo-backend/pkg/log"
	"ai-todo-backend/pkg/metrics"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	appName     string
	version     string
	mw          middleware.Middleware
	metrics     *metrics.Metrics

	// Domains
	taskHandler taskHTTP.Handler
	chatHandler chatHTTP.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	AppName     string
	Version     string

	// AllowedOrigins is the CORS allow-list. Empty means any origin.
	AllowedOrigins []string
	Metrics        *metrics.Metrics

	// Domains
	TaskHandler taskHTTP.Handler
	ChatHandler chatHTTP.Handler
}

// New creates a new HTTPServer instance with all routes registered.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		appName:     cfg.AppName,
		version:     cfg.Version,
		mw:          middleware.New(logger, cfg.Metrics, cfg.AllowedOrigins),
		metrics:     cfg.Metrics,
		taskHandler: cfg.TaskHandler,
		chatHandler: cfg.ChatHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	return nil
}
