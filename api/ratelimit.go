package api

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// requesterLimiter keeps one token bucket per authenticated requester
type requesterLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rate     rate.Limit
	burst    int
}

// newRequesterLimiter returns nil when rps is not positive, which turns
// rate limiting off
func newRequesterLimiter(rps float64, burst int) *requesterLimiter {
	if rps <= 0 {
		return nil
	}
	if burst <= 0 {
		burst = 1
	}

	return &requesterLimiter{
		limiters: make(map[string]*rate.Limiter),
		rate:     rate.Limit(rps),
		burst:    burst,
	}
}

func (l *requesterLimiter) get(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	limiter, exists := l.limiters[key]
	if !exists {
		limiter = rate.NewLimiter(l.rate, l.burst)
		l.limiters[key] = limiter
	}
	return limiter
}

func (s *Server) rateLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if s.limiter == nil {
			c.Next()
			return
		}

		key := c.GetString("requester")
		if key == "" {
			key = c.ClientIP()
		}

		if !s.limiter.get(key).Allow() {
			abortWithEncoding(c, http.StatusTooManyRequests, errorTooManyRequests)
			return
		}
		c.Next()
	}
}
