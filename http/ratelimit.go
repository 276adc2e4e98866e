package http

import (
	"sync"

	"golang.org/x/time/rate"
)

// ClientLimiter provides per-client rate limiting using token buckets.
// Each client key gets its own limiter so one noisy client cannot starve
// the others.
type ClientLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      float64
	burst    int
}

// NewClientLimiter creates a ClientLimiter allowing rps requests per second
// per client with the given burst. A burst below 1 is treated as 1.
func NewClientLimiter(rps float64, burst int) *ClientLimiter {
	if burst < 1 {
		burst = 1
	}
	return &ClientLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
		burst:    burst,
	}
}

// Allow reports whether a request from client may proceed now.
func (c *ClientLimiter) Allow(client string) bool {
	c.mu.Lock()
	limiter, ok := c.limiters[client]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(c.rps), c.burst)
		c.limiters[client] = limiter
	}
	c.mu.Unlock()

	return limiter.Allow()
}
