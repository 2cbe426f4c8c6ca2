package middleware

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"
)

// RateLimiter is a fixed-window in-memory rate limiter keyed by client IP.
// Good enough for a single instance; a multi-instance deployment would
// need a shared store behind the same interface.
type RateLimiter struct {
	visitors map[string]*visitor
	requests int
	window   time.Duration
	mu       sync.Mutex
}

type visitor struct {
	windowEnd time.Time
	count     int
}

// NewRateLimiter creates a rate limiter allowing `requests` per `window`
// per client, and starts its background cleanup loop.
func NewRateLimiter(requests int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		requests: requests,
		window:   window,
	}

	go rl.cleanup()

	return rl
}

// Middleware enforces the rate limit, responding 429 when exceeded
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.allow(clientIP(r)) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			if err := json.NewEncoder(w).Encode(map[string]string{
				"error":   "RateLimitExceeded",
				"message": "Rate limit exceeded. Please try again later.",
			}); err != nil {
				log.Printf("Failed to encode rate limit response: %v", err)
			}
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (rl *RateLimiter) allow(clientID string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now().UTC()

	v, ok := rl.visitors[clientID]
	if !ok || now.After(v.windowEnd) {
		rl.visitors[clientID] = &visitor{
			count:     1,
			windowEnd: now.Add(rl.window),
		}
		return true
	}

	if v.count >= rl.requests {
		return false
	}

	v.count++
	return true
}

// cleanup drops expired visitor entries once per window
func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(rl.window)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		now := time.Now().UTC()
		for id, v := range rl.visitors {
			if now.After(v.windowEnd) {
				delete(rl.visitors, id)
			}
		}
		rl.mu.Unlock()
	}
}

// clientIP extracts the client address, preferring proxy headers
func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		return forwarded
	}
	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return realIP
	}
	return r.RemoteAddr
}
