package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
	apierrors "github.com/roy-bentley/todo/internal/errors"
)

const taskIDKey = "task_id"

// RequireTaskID parses the :id URL parameter and stores it in the context
func RequireTaskID() gin.HandlerFunc {
	return func(c *gin.Context) {
		taskID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil || taskID == 0 {
			apierrors.BadRequest(c, "Invalid task ID")
			return
		}

		c.Set(taskIDKey, taskID)
		c.Next()
	}
}

// GetTaskID returns the task ID stored by RequireTaskID
func GetTaskID(c *gin.Context) (uint64, bool) {
	value, exists := c.Get(taskIDKey)
	if !exists {
		return 0, false
	}
	taskID, ok := value.(uint64)
	return taskID, ok
}
