// Package ratelimiter はキーごとの固定ウィンドウ方式のレート制限を提供します。
package ratelimiter

import (
	"sync"
	"time"
)

// Limiter は、操作の頻度を制限するインターフェースです。
type Limiter interface {
	Allow(key string) bool
}

type window struct {
	count     int
	lastReset time.Time
}

// RateLimiter は、キー（クライアントIPなど）ごとに interval あたり limit 回まで操作を許可します。
// 複数のgoroutineから同時に使用できます。
type RateLimiter struct {
	mu       sync.Mutex
	limit    int           // interval あたりの上限
	interval time.Duration // どの単位でリセットするか
	windows  map[string]*window
	now      func() time.Time
	// lastSweep 以降 interval が経過したら期限切れのウィンドウを掃除する
	lastSweep time.Time
}

var _ Limiter = (*RateLimiter)(nil)

// NewRateLimiter は新しいRateLimiterのインスタンスを生成します。
// limit が0以下の場合は常に許可します。
func NewRateLimiter(limit int, interval time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:     limit,
		interval:  interval,
		windows:   make(map[string]*window),
		now:       time.Now,
		lastSweep: time.Now(),
	}
}

// Allow は key の現在のウィンドウに余裕があればカウントして true を返します。
func (rl *RateLimiter) Allow(key string) bool {
	if rl.limit <= 0 {
		return true
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	rl.sweep(now)

	w, ok := rl.windows[key]
	// interval を過ぎたらカウントリセット
	if !ok || now.Sub(w.lastReset) >= rl.interval {
		w = &window{lastReset: now}
		rl.windows[key] = w
	}

	if w.count >= rl.limit {
		return false
	}
	w.count++
	return true
}

// sweep はロック保持中に呼び出します。
func (rl *RateLimiter) sweep(now time.Time) {
	if now.Sub(rl.lastSweep) < rl.interval {
		return
	}
	for k, w := range rl.windows {
		if now.Sub(w.lastReset) >= rl.interval {
			delete(rl.windows, k)
		}
	}
	rl.lastSweep = now
}
