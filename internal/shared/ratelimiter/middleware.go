package ratelimiter

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Middleware はクライアントIPがscopeごとの上限を超えた場合に429を返します。
// リミッターのエラー時はリクエストを通します。
func Middleware(l Limiter, scope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, err := l.Allow(c.Request.Context(), scope+":"+c.ClientIP())
		if err != nil {
			slog.Warn("rate limiter unavailable", "error", err, "scope", scope)
			c.Next()
			return
		}
		if !allowed {
			slog.Warn("rate limit exceeded", "scope", scope, "remote_addr", c.ClientIP())
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":   "rate_limited",
				"message": "too many requests, please try again later",
			})
			return
		}
		c.Next()
	}
}
