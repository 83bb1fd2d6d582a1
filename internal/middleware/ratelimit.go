package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"agency-content-ops/pkg/response"
)

const (
	rateLimiterCacheSize = 1000
	rateLimiterTTL       = 10 * time.Minute
)

// clientRateLimiter keeps one token bucket per client key in an expirable
// LRU so idle clients age out.
type clientRateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newClientRateLimiter(requestsPerMin int) *clientRateLimiter {
	if requestsPerMin <= 0 {
		requestsPerMin = 60
	}
	return &clientRateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](rateLimiterCacheSize, nil, rateLimiterTTL),
		rate:     rate.Limit(float64(requestsPerMin) / 60.0), // per second
		burst:    requestsPerMin,
	}
}

func (rl *clientRateLimiter) allow(key string) bool {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	return limiter.Allow()
}

// RateLimit throttles per workspace, falling back to client IP before auth
// has resolved a scope.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := ScopeFromContext(c).WorkspaceID
		if key == "" {
			key = c.ClientIP()
		}

		if !m.limiter.allow(key) {
			m.l.Warnf(c.Request.Context(), "rate limit exceeded for %s", key)
			response.TooManyRequests(c)
			c.Abort()
			return
		}

		c.Next()
	}
}
