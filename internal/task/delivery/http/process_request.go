package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	pkgErrors "ai-todo-backend/pkg/errors"
)

var (
	errMissingUserID = pkgErrors.NewHTTPError(400, "user_id is required")
	errInvalidTaskID = pkgErrors.NewHTTPError(400, "task_id must be a positive integer")
)

// processCreateReq binds and validates the create task body + URI param.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	req.UserID = c.Param("user_id")
	if req.UserID == "" {
		return req, errMissingUserID
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processListReq binds the status query parameter.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	req.UserID = c.Param("user_id")
	if req.UserID == "" {
		return req, errMissingUserID
	}
	return req, nil
}

// processTaskIDReq parses user_id and task_id URI params.
func (h *handler) processTaskIDReq(c *gin.Context) (taskIDReq, error) {
	var req taskIDReq
	req.UserID = c.Param("user_id")
	if req.UserID == "" {
		return req, errMissingUserID
	}

	id, err := strconv.ParseInt(c.Param("task_id"), 10, 64)
	if err != nil || id <= 0 {
		return req, errInvalidTaskID
	}
	req.TaskID = id
	return req, nil
}
