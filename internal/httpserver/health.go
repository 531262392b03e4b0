package httpserver

import (
	"github.com/gin-gonic/gin"

	"ai-todo-backend/pkg/response"
)

// Health response defaults, used when the config leaves them empty.
const (
	DefaultAppName = "AI Todo API"
	DefaultVersion = "1.0"
	ServiceName    = "ai-todo-backend"
)

func (srv HTTPServer) name() string {
	if srv.appName == "" {
		return DefaultAppName
	}
	return srv.appName
}

func (srv HTTPServer) ver() string {
	if srv.version == "" {
		return DefaultVersion
	}
	return srv.version
}

// root handles the service banner
// @Summary Service banner
// @Description Returns the API name and version
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API banner"
// @Router / [get]
func (srv HTTPServer) root(c *gin.Context) {
	response.OK(c, gin.H{
		"message": srv.name(),
		"version": srv.ver(),
	})
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"message": srv.name(),
		"version": srv.ver(),
		"service": ServiceName,
	})
}

// readyCheck handles readiness check; the service is ready once it is serving.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "ready",
		"version": srv.ver(),
		"service": ServiceName,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"version": srv.ver(),
		"service": ServiceName,
	})
}
