package di

import (
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"shop_backend/internal/shared/ratelimiter"
)

// NewLimiter は認証エンドポイント用のレートリミッターを生成します。
// Redisが利用可能な場合は全インスタンスで共有するRedis実装を返し、
// そうでなければプロセス内のリミッターにフォールバックします。
func NewLimiter(rdb *redis.Client, limit int, window time.Duration) ratelimiter.Limiter {
	if rdb != nil {
		return ratelimiter.NewRedisLimiter(rdb, limit, window, "ratelimit")
	}
	slog.Warn("Redis unavailable, rate limiting is per instance")
	return ratelimiter.NewRateLimiter(limit, window)
}
