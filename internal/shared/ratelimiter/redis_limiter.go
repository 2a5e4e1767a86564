package ratelimiter

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisLimiter は全サーバーインスタンスで共有される固定ウィンドウ方式のレートリミッターです。
type RedisLimiter struct {
	client   *redis.Client
	limit    int
	interval time.Duration
	prefix   string
}

// NewRedisLimiter はRedisLimiterを生成します。prefixが空の場合は"ratelimit"を使用します。
func NewRedisLimiter(client *redis.Client, limit int, interval time.Duration, prefix string) *RedisLimiter {
	if prefix == "" {
		prefix = "ratelimit"
	}
	return &RedisLimiter{
		client:   client,
		limit:    limit,
		interval: interval,
		prefix:   prefix,
	}
}

func (r *RedisLimiter) key(key string) string {
	return fmt.Sprintf("%s:%s", r.prefix, key)
}

// Allow はkeyのカウンターを加算し、ウィンドウ内の上限を超えていないかを返します。
// INCRとEXPIRE NXを同じトランザクションで送るため、TTLの設定に一度失敗しても次の呼び出しで再設定されます。
func (r *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	k := r.key(key)

	var incr *redis.IntCmd
	if _, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, k)
		pipe.ExpireNX(ctx, k, r.interval)
		return nil
	}); err != nil {
		return false, err
	}
	return incr.Val() <= int64(r.limit), nil
}
