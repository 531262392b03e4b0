package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	chatHTTP "ai-todo-backend/internal/chat/delivery/http"
	"ai-todo-backend/internal/model"
	taskHTTP "ai-todo-backend/internal/task/delivery/http"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(srv.mw.RequestID())
	srv.gin.Use(srv.mw.Logger())
	srv.gin.Use(srv.mw.Metrics())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "CORS mode: production")
	} else {
		srv.l.Infof(ctx, "CORS mode: %s", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/", srv.root)
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	if srv.metrics != nil {
		srv.gin.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	if srv.taskHandler != nil {
		taskHTTP.RegisterRoutes(srv.gin.Group("/api"), srv.taskHandler, srv.mw)
		srv.l.Infof(ctx, "Task routes registered at /api/:user_id/tasks")
	} else {
		srv.l.Infof(ctx, "Task handler not configured, skipping task routes")
	}

	if srv.chatHandler != nil {
		chatHTTP.RegisterRoutes(srv.gin, srv.chatHandler)
		srv.l.Infof(ctx, "Chat route registered at POST /chat")
	} else {
		srv.l.Infof(ctx, "Chat handler not configured, skipping chat route")
	}

	return nil
}
