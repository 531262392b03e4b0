package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps the chat endpoints onto rg.
func RegisterRoutes(rg gin.IRoutes, h Handler) {
	rg.POST("/chat", h.Chat)
	rg.OPTIONS("/chat", h.Options)
}
