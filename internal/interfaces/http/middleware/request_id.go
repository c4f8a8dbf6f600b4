package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"borrowbank.backend/pkg/logger"
)

// RequestIDKey is the gin context key for the request id.
const RequestIDKey = "request_id"

// RequestID tags every request with a unique id, honoring one supplied
// by an upstream proxy. The id also goes into the request's Go context
// under the key the logger reads.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}

		c.Set(RequestIDKey, id)
		c.Header("X-Request-ID", id)

		ctx := context.WithValue(c.Request.Context(), logger.RequestIDKey, id) //nolint:staticcheck // string key shared with pkg/logger
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
