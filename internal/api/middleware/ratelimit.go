package middleware

import (
	"log/slog"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/vcas-web/vcas-backend/internal/api/response"
	"golang.org/x/time/rate"
)

const (
	cleanupInterval = 10 * time.Minute
	maxIdle         = 10 * time.Minute
)

// ipLimiter pairs a client's limiter with its last access time so idle
// entries can be evicted.
type ipLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// IPRateLimiter manages rate limiters per client IP. Form endpoints are
// public and unauthenticated, so per-IP throttling is the only brake on
// submission floods.
type IPRateLimiter struct {
	limiters map[string]*ipLimiter
	mu       sync.Mutex
	rate     rate.Limit
	burst    int
}

// NewIPRateLimiter creates a new IP-based rate limiter
func NewIPRateLimiter(r rate.Limit, b int) *IPRateLimiter {
	return &IPRateLimiter{
		limiters: make(map[string]*ipLimiter),
		rate:     r,
		burst:    b,
	}
}

// GetLimiter returns the rate limiter for the given IP
func (i *IPRateLimiter) GetLimiter(ip string) *rate.Limiter {
	i.mu.Lock()
	defer i.mu.Unlock()

	entry, exists := i.limiters[ip]
	if !exists {
		entry = &ipLimiter{limiter: rate.NewLimiter(i.rate, i.burst)}
		i.limiters[ip] = entry
	}
	entry.lastSeen = time.Now()
	return entry.limiter
}

// CleanupOldEntries removes entries idle for longer than idle. The client IP
// comes from forwarded headers, so without eviction a caller could grow the
// map without bound by minting spoofed addresses.
func (i *IPRateLimiter) CleanupOldEntries(idle time.Duration) {
	i.mu.Lock()
	defer i.mu.Unlock()

	cutoff := time.Now().Add(-idle)
	for ip, entry := range i.limiters {
		if entry.lastSeen.Before(cutoff) {
			delete(i.limiters, ip)
		}
	}
}

// RateLimiter returns rate limiting middleware with the given requests
// per second and burst size. Rejections use the standard JSON envelope.
func RateLimiter(requestsPerSecond float64, burst int, logger *slog.Logger) echo.MiddlewareFunc {
	if requestsPerSecond <= 0 {
		requestsPerSecond = 10
	}
	if burst <= 0 {
		burst = 20
	}
	limiter := NewIPRateLimiter(rate.Limit(requestsPerSecond), burst)

	// Periodically drop idle entries to keep the map bounded
	go func() {
		ticker := time.NewTicker(cleanupInterval)
		defer ticker.Stop()
		for range ticker.C {
			limiter.CleanupOldEntries(maxIdle)
		}
	}()

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()
			if !limiter.GetLimiter(ip).Allow() {
				if logger != nil {
					logger.Warn("rate limit exceeded",
						slog.String("ip", ip),
						slog.String("path", c.Request().URL.Path),
					)
				}
				c.Response().Header().Set("Retry-After", "60")
				return response.TooManyRequests(c, "Too many requests, please try again later")
			}
			return next(c)
		}
	}
}
