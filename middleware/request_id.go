package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// RequestIDMiddleware tags every request with an ID for log correlation,
// keeping a caller-supplied one when present.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		c.Set("requestID", id)
		c.Writer.Header().Set(requestIDHeader, id)
		c.Next()
	}
}
