package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ai-todo-backend/pkg/response"
)

// Chat godoc
// @Summary     Chat with the assistant
// @Description Returns a conversational reply and, when the message asks for it, one task action for the client to apply.
// @Description Always 200 for a well-formed body, even when the language model is unavailable.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Message and the client's current tasks"
// @Success     200 {object} chatResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		h.l.Warnf(ctx, "chat.processChatReq: %v", err)
		response.Error(c, err)
		return
	}

	output := h.uc.Chat(ctx, req.toInput(c.ClientIP()))
	response.OK(c, h.newChatResp(output))
}

// Options godoc
// @Summary     Chat preflight
// @Tags        Chat
// @Success     200
// @Router      /chat [OPTIONS]
func (h *handler) Options(c *gin.Context) {
	c.Header("Access-Control-Allow-Origin", "*")
	c.Header("Access-Control-Allow-Methods", "POST, OPTIONS")
	c.Header("Access-Control-Allow-Headers", "*")
	c.Status(http.StatusOK)
}
