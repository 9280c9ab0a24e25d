package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	pkgredis "github.com/jawa-agence/core/internal/pkg/redis"
	"github.com/jawa-agence/core/internal/pkg/response"
)

const (
	idempotenceHeader = "x-idempotence"
	idempotenceTTL    = 60 * time.Second
)

// Idempotence returns a middleware that rejects a repeated non-GET request
// carrying the same x-idempotence key within the TTL. Clients that do not
// send the header are unaffected; Redis trouble fails open.
func Idempotence(rc *pkgredis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodGet {
			c.Next()
			return
		}

		key := c.GetHeader(idempotenceHeader)
		if key == "" {
			c.Next()
			return
		}

		redisKey := fmt.Sprintf("jawa:idempotence:%s", key)
		ctx := c.Request.Context()

		// the stored marker is "0" (in flight) or "1" (completed),
		// so an empty value means the key is unseen
		val, err := rc.Get(ctx, redisKey)
		if err != nil {
			c.Next()
			return
		}
		if val != "" {
			response.Conflict(c, "duplicate request, retry later")
			return
		}

		if err := rc.Set(ctx, redisKey, "0", idempotenceTTL); err != nil {
			c.Next()
			return
		}

		c.Next()

		status := c.Writer.Status()
		if status >= 200 && status < 300 {
			rc.Set(ctx, redisKey, "1", idempotenceTTL)
		} else {
			rc.Del(ctx, redisKey)
		}
	}
}
