package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	mem "qtravel/pkg/memcache"
	"qtravel/pkg/utils"
)

// RateLimiter keeps one token bucket per client IP. Idle clients fall out
// of the visitor store once its TTL passes.
type RateLimiter struct {
	visitors *mem.TTLStore[*rate.Limiter]
	limit    rate.Limit
	burst    int
}

func NewRateLimiter(visitors *mem.TTLStore[*rate.Limiter], perSecond float64, burst int) *RateLimiter {
	if burst < 1 {
		burst = 1
	}
	return &RateLimiter{
		visitors: visitors,
		limit:    rate.Limit(perSecond),
		burst:    burst,
	}
}

func (rl *RateLimiter) limiter(ip string) *rate.Limiter {
	return rl.visitors.GetOrCreate(ip, func() *rate.Limiter {
		return rate.NewLimiter(rl.limit, rl.burst)
	})
}

func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.limiter(c.ClientIP()).Allow() {
			utils.RespondError(c, http.StatusTooManyRequests, "Too many requests")
			c.Abort()
			return
		}
		c.Next()
	}
}
