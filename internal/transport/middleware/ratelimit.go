package middleware

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"
)

const bucketIdleTTL = 10 * time.Minute

// RateLimiter implements per-client token bucket rate limiting. Buckets are
// keyed by scope and client IP, so one limiter can guard several routes
// with different limits.
type RateLimiter struct {
	buckets sync.Map // map[bucketKey]*bucket
	now     func() time.Time
	stop    chan struct{}
	once    sync.Once
}

type bucketKey struct {
	scope string
	ip    string
}

type bucket struct {
	mu         sync.Mutex
	tokens     float64
	burst      float64
	refillRate float64 // tokens per second
	lastRefill time.Time
}

// NewRateLimiter creates a rate limiter that drops idle buckets every
// cleanupInterval. Call Stop on shutdown.
func NewRateLimiter(cleanupInterval time.Duration) *RateLimiter {
	rl := &RateLimiter{now: time.Now, stop: make(chan struct{})}
	go rl.cleanup(cleanupInterval)
	return rl
}

// Stop terminates the background cleanup goroutine. It is safe to call
// more than once.
func (rl *RateLimiter) Stop() {
	rl.once.Do(func() { close(rl.stop) })
}

// Limit allows perMinute requests per client IP on average with bursts of
// up to burst requests. Rejected requests get 429 and a Retry-After header.
func (rl *RateLimiter) Limit(scope string, perMinute, burst int) Middleware {
	if burst < 1 {
		burst = 1
	}
	refill := float64(perMinute) / 60.0
	retryAfter := strconv.Itoa(int(math.Ceil(60.0 / float64(max(perMinute, 1)))))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			b := rl.bucket(bucketKey{scope: scope, ip: clientIP(r)}, float64(burst), refill)
			if !b.allow(rl.now()) {
				w.Header().Set("Retry-After", retryAfter)
				writeError(w, http.StatusTooManyRequests, "Too many requests")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (rl *RateLimiter) bucket(key bucketKey, burst, refill float64) *bucket {
	if v, ok := rl.buckets.Load(key); ok {
		return v.(*bucket)
	}
	v, _ := rl.buckets.LoadOrStore(key, &bucket{
		tokens:     burst,
		burst:      burst,
		refillRate: refill,
		lastRefill: rl.now(),
	})
	return v.(*bucket)
}

func (b *bucket) allow(now time.Time) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if elapsed := now.Sub(b.lastRefill).Seconds(); elapsed > 0 {
		b.tokens = math.Min(b.burst, b.tokens+elapsed*b.refillRate)
		b.lastRefill = now
	}
	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

func (rl *RateLimiter) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.sweep(rl.now())
		}
	}
}

func (rl *RateLimiter) sweep(now time.Time) {
	rl.buckets.Range(func(key, value any) bool {
		b := value.(*bucket)
		b.mu.Lock()
		idle := now.Sub(b.lastRefill)
		b.mu.Unlock()
		if idle > bucketIdleTTL {
			rl.buckets.Delete(key)
		}
		return true
	})
}

// clientIP returns the peer address without its port. Forwarding headers
// are not trusted.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
