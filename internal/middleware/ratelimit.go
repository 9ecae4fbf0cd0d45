package middleware

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/time/rate"

	"clinic-assistant/pkg/response"
)

const (
	DefaultRequestsPerSecond = 5
	DefaultBurst             = 10

	// limiterPoolSize caps how many client buckets are tracked at once.
	// An evicted client simply starts over with a fresh bucket.
	limiterPoolSize = 4096
)

// limiterPool keeps one token bucket per client IP, bounded by an LRU so
// a churn of distinct addresses cannot grow it without limit.
type limiterPool struct {
	mu       sync.Mutex
	limiters *lru.Cache[string, *rate.Limiter]
	rps      rate.Limit
	burst    int
}

func newLimiterPool(rps float64, burst int) *limiterPool {
	if rps <= 0 {
		rps = DefaultRequestsPerSecond
	}
	if burst <= 0 {
		burst = DefaultBurst
	}
	limiters, _ := lru.New[string, *rate.Limiter](limiterPoolSize)
	return &limiterPool{
		limiters: limiters,
		rps:      rate.Limit(rps),
		burst:    burst,
	}
}

func (p *limiterPool) get(key string) *rate.Limiter {
	p.mu.Lock()
	defer p.mu.Unlock()

	lim, ok := p.limiters.Get(key)
	if !ok {
		lim = rate.NewLimiter(p.rps, p.burst)
		p.limiters.Add(key, lim)
	}
	return lim
}

// RateLimit rejects clients that exceed the per-IP request rate.
func (mw Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !mw.limiters.get(c.ClientIP()).Allow() {
			mw.l.Warnf(c.Request.Context(), "middleware.RateLimit: throttled %s", c.ClientIP())
			c.AbortWithStatusJSON(http.StatusTooManyRequests, response.Resp{
				ErrorCode: http.StatusTooManyRequests,
				Message:   "too many requests",
			})
			return
		}
		c.Next()
	}
}
