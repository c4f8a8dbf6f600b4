package middleware

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"borrowbank.backend/pkg/redis"
)

const (
	// IdempotencyHeader is the client-supplied dedupe key.
	IdempotencyHeader = "Idempotency-Key"
	// lockDuration is how long the in-progress lock is held.
	lockDuration = 30 * time.Second
	// retentionDuration is how long a replayed response is kept.
	retentionDuration = 24 * time.Hour
)

// Indirections for tests.
var (
	redisGet   = redis.Get
	redisSet   = redis.Set
	redisSetNX = redis.SetNX
	redisDel   = redis.Del
)

type cachedResponse struct {
	Status int    `json:"status"`
	Body   string `json:"body"`
}

type captureWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *captureWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// Idempotency replays the stored response when a request with a known
// Idempotency-Key comes back, and rejects a key whose first request is
// still in flight. Requests without the header pass straight through.
func Idempotency() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(IdempotencyHeader)
		if key == "" {
			c.Next()
			return
		}

		userID, _ := GetUserID(c)
		storageKey := fmt.Sprintf("idempotency:%s:%s", userID, key)
		ctx := c.Request.Context()

		if val, err := redisGet(ctx, storageKey); err == nil {
			if val == "processing" {
				c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "request already in progress"})
				return
			}
			var cached cachedResponse
			if json.Unmarshal([]byte(val), &cached) == nil {
				c.Header("Content-Type", "application/json")
				c.Header("X-Idempotency-Hit", "true")
				c.String(cached.Status, cached.Body)
				c.Abort()
				return
			}
			// Unreadable entry: fall through and reprocess.
		}

		ok, err := redisSetNX(ctx, storageKey, "processing", lockDuration)
		if err != nil || !ok {
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "request already in progress"})
			return
		}

		w := &captureWriter{body: &bytes.Buffer{}, ResponseWriter: c.Writer}
		c.Writer = w
		c.Next()

		status := c.Writer.Status()
		if status >= 200 && status < 300 {
			entry, _ := json.Marshal(cachedResponse{Status: status, Body: w.body.String()})
			_ = redisSet(ctx, storageKey, string(entry), retentionDuration)
		} else {
			// Failed requests stay retryable.
			_ = redisDel(ctx, storageKey)
		}
	}
}
