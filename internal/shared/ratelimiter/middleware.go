package ratelimiter

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Middleware はクライアントIPをキーにリクエストを制限し、上限超過時は429を返します。
func Middleware(l Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()
		if !l.Allow(key) {
			slog.Warn("rate limit exceeded", "remote_addr", key, "path", c.FullPath())
			c.AbortWithStatus(http.StatusTooManyRequests)
			return
		}
		c.Next()
	}
}
