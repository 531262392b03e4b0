package http

import (
	"github.com/gin-gonic/gin"

	"ai-todo-backend/internal/task"
	"ai-todo-backend/pkg/response"
)

// Create godoc
// @Summary     Create a task
// @Description Appends a task to the user's list. Missing optional fields take defaults (Medium, Personal, No Repeat).
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       user_id path string    true "User ID"
// @Param       body    body createReq true "Task data"
// @Success     200 {object} model.Task
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/{user_id}/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, req.UserID, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, output)
}

// List godoc
// @Summary     List tasks
// @Description Returns the user's tasks in creation order, optionally filtered by status.
// @Tags        Tasks
// @Produce     json
// @Param       user_id path  string true  "User ID"
// @Param       status  query string false "all, pending or completed (default: all)"
// @Success     200 {array}  model.Task
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/{user_id}/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, req.UserID, task.Status(req.Status))
	if err != nil {
		h.l.Warnf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// ToggleComplete godoc
// @Summary     Toggle task completion
// @Description Flips the completed flag of a task. Calling it twice restores the original state.
// @Tags        Tasks
// @Produce     json
// @Param       user_id path string true "User ID"
// @Param       task_id path int    true "Task ID"
// @Success     200 {object} model.Task
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/{user_id}/tasks/{task_id}/complete [PATCH]
func (h *handler) ToggleComplete(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processTaskIDReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ToggleComplete(ctx, req.UserID, req.TaskID)
	if err != nil {
		h.l.Warnf(ctx, "uc.ToggleComplete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, output)
}

// Delete godoc
// @Summary     Delete a task
// @Description Removes a task. Deleting a missing id still succeeds.
// @Tags        Tasks
// @Produce     json
// @Param       user_id path string true "User ID"
// @Param       task_id path int    true "Task ID"
// @Success     200 {object} response.MessageResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/{user_id}/tasks/{task_id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processTaskIDReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.Delete(ctx, req.UserID, req.TaskID); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Message(c, msgTaskDeleted)
}
