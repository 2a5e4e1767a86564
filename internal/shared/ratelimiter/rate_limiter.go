// Package ratelimiter は重要なエンドポイントへのクライアントごとのアクセス頻度を制限します。
package ratelimiter

import (
	"context"
	"sync"
	"time"
)

// Limiter は、キーごとに一定時間内の操作回数を制限するインターフェースです。
type Limiter interface {
	// Allow はkeyのアクセスを1回記録し、上限以内かを返します。
	Allow(ctx context.Context, key string) (bool, error)
}

// window は現在の区間における1キー分のカウンターです。
type window struct {
	count     int
	lastReset time.Time
}

// RateLimiter は、プロセス内のメモリでキーごとの固定ウィンドウを管理します。
// Redisが使えない場合のフォールバックです。
type RateLimiter struct {
	limit    int           // interval あたりの上限
	interval time.Duration // どの単位でリセットするか
	now      func() time.Time

	mu      sync.Mutex
	windows map[string]*window
}

// NewRateLimiterは新しいRateLimiterのインスタンスを生成します。
func NewRateLimiter(limit int, interval time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:    limit,
		interval: interval,
		now:      time.Now,
		windows:  make(map[string]*window),
	}
}

// Allow はkeyのカウントを1つ増やし、上限内であればtrueを返します。
func (rl *RateLimiter) Allow(_ context.Context, key string) (bool, error) {
	now := rl.now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	w, ok := rl.windows[key]
	// interval を過ぎたらカウントリセット
	if !ok || now.Sub(w.lastReset) >= rl.interval {
		w = &window{lastReset: now}
		rl.windows[key] = w
		rl.sweep(now)
	}

	w.count++
	return w.count <= rl.limit, nil
}

// sweep は期限切れのwindowを削除します。呼び出し側がmuを保持していること。
func (rl *RateLimiter) sweep(now time.Time) {
	for k, w := range rl.windows {
		if now.Sub(w.lastReset) >= rl.interval {
			delete(rl.windows, k)
		}
	}
}
