package api

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// requestIdMiddleware tags every request with an id so store failures
// in the logs can be tied back to a submission.
func requestIdMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-Id")

		if id == "" {
			id = uuid.New().String()
		}

		c.Set("requestId", id)
		c.Writer.Header().Set("X-Request-Id", id)

		c.Next()
	}
}
