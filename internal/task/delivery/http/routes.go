package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ai-todo-backend/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// rg is expected to be the /api group; routes land under /api/:user_id/tasks.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	tasks := rg.Group("/:user_id/tasks")
	{
		tasks.POST("", h.Create)
		tasks.GET("", h.List)
		tasks.OPTIONS("", mw.Preflight(http.MethodGet, http.MethodPost))
		tasks.PATCH("/:task_id/complete", h.ToggleComplete)
		tasks.OPTIONS("/:task_id/complete", mw.Preflight(http.MethodPatch))
		tasks.DELETE("/:task_id", h.Delete)
		tasks.OPTIONS("/:task_id", mw.Preflight(http.MethodDelete))
	}
}
