package transport

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

// simple per-caller rate limiter in-memory, keyed by the JWT-derived
// caller_id RequireJWT sets in the request context (mirroring the
// teacher's internal/middleware/user_rate_limit.go, which keys off a
// JWT-derived user_id rather than the remote IP).
type limiterEntry struct {
	limiter *rate.Limiter
	last    time.Time
}

type RateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*limiterEntry
	r        rate.Limit
	burst    int
}

func NewRateLimiter(requestsPerSecond float64, burst int) *RateLimiter {
	return &RateLimiter{
		limiters: make(map[string]*limiterEntry),
		r:        rate.Limit(requestsPerSecond),
		burst:    burst,
	}
}

// Middleware limits requests per caller_id (set by RequireJWT). Once the
// map holds more than 10000 limiters, each request sweeps out those idle
// for over an hour; below that size no limiter is evicted. A request that reaches this middleware without
// a caller_id (RequireJWT not mounted ahead of it) falls back to the
// remote IP rather than sharing a single unkeyed bucket.
func (rl *RateLimiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key, _ := c.Get("caller_id").(string)
			if key == "" {
				key = c.RealIP()
			}

			rl.mu.Lock()
			le, ok := rl.limiters[key]
			if !ok {
				le = &limiterEntry{limiter: rate.NewLimiter(rl.r, rl.burst)}
				rl.limiters[key] = le
			}
			le.last = time.Now()

			if len(rl.limiters) > 10000 {
				for id, entry := range rl.limiters {
					if time.Since(entry.last) > time.Hour {
						delete(rl.limiters, id)
					}
				}
			}
			allowed := le.limiter.Allow()
			rl.mu.Unlock()

			if !allowed {
				return echo.NewHTTPError(http.StatusTooManyRequests, ErrorResponse{
					Status: "error",
					Error:  "rate limit exceeded",
				})
			}
			return next(c)
		}
	}
}
