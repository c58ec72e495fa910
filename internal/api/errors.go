package api

import (
	"net/http"
	"strconv"

	"taskboard/internal/errors"
	"taskboard/internal/logging"

	"github.com/gin-gonic/gin"
)

const errorKindHeader = "X-Error-Kind"

// Fixed error messages returned by each route
const (
	msgFetchTasks      = "Failed to fetch tasks"
	msgCreateTask      = "Failed to create task"
	msgUpdateTask      = "Failed to update task"
	msgDeleteTask      = "Failed to delete task"
	msgToggleTask      = "Failed to toggle task"
	msgTaskNotFound    = "Task not found"
	msgFetchCategories = "Failed to fetch categories"
	msgCreateCategory  = "Failed to create category"
	msgDeleteCategory  = "Failed to delete category"
	msgFetchTags       = "Failed to fetch tags"
	msgCreateTag       = "Failed to create tag"
	msgDeleteTag       = "Failed to delete tag"
	msgFetchStats      = "Failed to fetch stats"
)

// respondError logs err and writes a 500 with the route's fixed message
func respondError(c *gin.Context, log *logging.Logger, message string, err error) {
	respondErrorStatus(c, log, http.StatusInternalServerError, message, err)
}

func respondErrorStatus(c *gin.Context, log *logging.Logger, status int, message string, err error) {
	if errors.ShouldLogError(err) {
		log.Errorf("%s: %v id=%s", message, err, c.GetString(requestIDKey))
	} else {
		log.Warnf("%s: %v id=%s", message, err, c.GetString(requestIDKey))
	}
	c.Header(errorKindHeader, errors.KindOf(err).String())
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}

// pathID parses the :id route parameter
func pathID(c *gin.Context) (int64, error) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errors.NewValidationError("invalid id: "+raw, err)
	}
	return id, nil
}

// bindJSON decodes the request body into dst
func bindJSON(c *gin.Context, dst interface{}) error {
	if err := c.ShouldBindJSON(dst); err != nil {
		return errors.NewValidationError("invalid request body", err)
	}
	return nil
}
