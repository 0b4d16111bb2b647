package middleware

import (
	"encoding/json"
	"net"
	"net/http"
	"sync"

	"golang.org/x/time/rate"

	"github.com/davidbz/lawra/internal/config"
	"github.com/davidbz/lawra/internal/observability"
)

// maxTrackedClients caps the limiter table; it is reset when exceeded.
const maxTrackedClients = 10000

// clientLimiters hands out one token bucket per client address.
type clientLimiters struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

func (c *clientLimiters) get(client string) *rate.Limiter {
	c.mu.Lock()
	defer c.mu.Unlock()

	limiter, exists := c.limiters[client]
	if !exists {
		if len(c.limiters) >= maxTrackedClients {
			c.limiters = make(map[string]*rate.Limiter)
		}
		limiter = rate.NewLimiter(c.limit, c.burst)
		c.limiters[client] = limiter
	}

	return limiter
}

// RateLimit creates a middleware that limits requests per client address
// using golang.org/x/time/rate. A nil config or zero RPS disables it.
func RateLimit(cfg *config.RateLimitConfig) Middleware {
	if cfg == nil || cfg.RPS <= 0 {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	burst := cfg.Burst
	if burst < 1 {
		burst = 1
	}

	limiters := &clientLimiters{
		mu:       sync.Mutex{},
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Limit(cfg.RPS),
		burst:    burst,
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			client := clientAddress(r)

			if !limiters.get(client).Allow() {
				observability.FromContext(r.Context()).Warn("rate limit exceeded",
					observability.String("client", client),
					observability.String("path", r.URL.Path))

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": "too many requests"})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func clientAddress(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
