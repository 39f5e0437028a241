package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"
)

// RateLimiter 基于内存的单实例按 IP 限流器。
// - 主要保护公开写接口（评论、订阅），防止匿名刷写。
// - 固定窗口计数，窗口过期后整体重置，多实例部署时各实例独立计数。
type RateLimiter struct {
	visitors map[string]*visitor
	mu       sync.Mutex
	limit    int
	window   time.Duration
}

type visitor struct {
	lastSeen time.Time
	count    int
}

// NewRateLimiter 创建限流器并启动后台清理协程，回收窗口外的 IP 记录。
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    limit,
		window:   window,
	}
	go func() {
		for {
			time.Sleep(window)
			rl.cleanup()
		}
	}()
	return rl
}

func (rl *RateLimiter) cleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	now := time.Now()
	for ip, v := range rl.visitors {
		if now.Sub(v.lastSeen) > rl.window {
			delete(rl.visitors, ip)
		}
	}
}

// allow 记录一次访问并判断是否超出窗口内的配额。
func (rl *RateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	v, exists := rl.visitors[ip]
	if !exists || time.Since(v.lastSeen) > rl.window {
		rl.visitors[ip] = &visitor{lastSeen: time.Now(), count: 1}
		return true
	}
	v.count++
	v.lastSeen = time.Now()
	return v.count <= rl.limit
}

// Limit 返回 gin 中间件，超限请求直接以 429 拒绝。
func (rl *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.allow(c.ClientIP()) {
			response.RespondError(c, http.StatusTooManyRequests, response.ErrCodeClientInvalidInput, "请求过于频繁，请稍后重试")
			c.Abort()
			return
		}
		c.Next()
	}
}
