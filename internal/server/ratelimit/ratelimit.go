// Package ratelimit provides per-client rate limiting using a token bucket.
package ratelimit

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"
)

// Default limiter settings
const (
	DefaultCapacity   = 30
	DefaultRefillRate = 10.0 // tokens per second
)

// tokenBucket allows a burst of capacity requests, refilling at a steady
// rate
type tokenBucket struct {
	capacity   int
	refillRate float64
	tokens     float64
	lastRefill time.Time
	mu         sync.Mutex
}

func newTokenBucket(capacity int, refillRate float64) *tokenBucket {
	return &tokenBucket{
		capacity:   capacity,
		refillRate: refillRate,
		tokens:     float64(capacity),
		lastRefill: time.Now(),
	}
}

// allow consumes a token if one is available
func (tb *tokenBucket) allow() bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(tb.lastRefill)
	tb.tokens += elapsed.Seconds() * tb.refillRate
	if tb.tokens > float64(tb.capacity) {
		tb.tokens = float64(tb.capacity)
	}
	tb.lastRefill = now

	if tb.tokens >= 1.0 {
		tb.tokens -= 1.0
		return true
	}
	return false
}

// Limiter tracks a token bucket per client IP
type Limiter struct {
	capacity   int
	refillRate float64
	buckets    map[string]*tokenBucket
	mu         sync.Mutex
}

// NewLimiter creates a Limiter with the given burst capacity and refill rate
func NewLimiter(capacity int, refillRate float64) *Limiter {
	return &Limiter{
		capacity:   capacity,
		refillRate: refillRate,
		buckets:    make(map[string]*tokenBucket),
	}
}

// Allow reports whether the client may proceed
func (l *Limiter) Allow(clientIP string) bool {
	l.mu.Lock()
	bucket, ok := l.buckets[clientIP]
	if !ok {
		bucket = newTokenBucket(l.capacity, l.refillRate)
		l.buckets[clientIP] = bucket
	}
	l.mu.Unlock()

	return bucket.allow()
}

// Middleware wraps a handler with per-IP rate limiting
func (l *Limiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !l.Allow(clientIP(r)) {
			w.Header().Set("Retry-After", strconv.Itoa(1))
			http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientIP extracts the client address, ignoring the port
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
