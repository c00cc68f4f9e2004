package middleware

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/heartmarshall/resource-registry/pkg/ctxutil"
)

// idleAfter is how long a client limiter may sit unused before cleanup
// drops it.
const idleAfter = 10 * time.Minute

// RateLimiter implements per-client token bucket rate limiting. A client is
// the authenticated user when known, else the remote IP.
type RateLimiter struct {
	clients sync.Map // map[string]*client
	stop    chan struct{}
	once    sync.Once
	now     func() time.Time
}

type client struct {
	limiter *rate.Limiter
	mu      sync.Mutex
	seen    time.Time
}

// NewRateLimiter creates a rate limiter with background cleanup.
// Call Stop() on shutdown.
func NewRateLimiter(cleanupInterval time.Duration) *RateLimiter {
	rl := &RateLimiter{stop: make(chan struct{}), now: time.Now}
	go rl.cleanup(cleanupInterval)
	return rl
}

// Stop terminates the background cleanup goroutine.
func (rl *RateLimiter) Stop() {
	rl.once.Do(func() { close(rl.stop) })
}

// Limit returns middleware that admits perMinute requests per client with
// bursts of up to burst requests.
func (rl *RateLimiter) Limit(perMinute, burst int) Middleware {
	every := rate.Limit(float64(perMinute) / 60.0)
	if burst < 1 {
		burst = 1
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c := rl.client(clientKey(r), every, burst)

			c.mu.Lock()
			c.seen = rl.now()
			c.mu.Unlock()

			res := c.limiter.Reserve()
			if delay := res.Delay(); delay > 0 {
				res.Cancel()
				retryAfter := max(int(delay.Seconds()+0.999), 1)
				w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
				w.Header().Set("X-RateLimit-Limit", strconv.Itoa(perMinute))
				writeError(w, http.StatusTooManyRequests, "TOO_MANY_REQUESTS", "rate limit exceeded")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (rl *RateLimiter) client(key string, every rate.Limit, burst int) *client {
	if c, ok := rl.clients.Load(key); ok {
		return c.(*client)
	}
	c, _ := rl.clients.LoadOrStore(key, &client{
		limiter: rate.NewLimiter(every, burst),
		seen:    rl.now(),
	})
	return c.(*client)
}

// clientKey identifies the caller: the user ID when known, otherwise the
// remote IP. X-Forwarded-For is ignored since any client can set it.
func clientKey(r *http.Request) string {
	if userID, ok := ctxutil.UserIDFromCtx(r.Context()); ok {
		return "user:" + userID.String()
	}
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return "ip:" + r.RemoteAddr
	}
	return "ip:" + ip
}

func (rl *RateLimiter) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.evictIdle()
		}
	}
}

func (rl *RateLimiter) evictIdle() {
	now := rl.now()
	rl.clients.Range(func(key, value any) bool {
		c := value.(*client)
		c.mu.Lock()
		idle := now.Sub(c.seen)
		c.mu.Unlock()
		if idle > idleAfter {
			rl.clients.Delete(key)
		}
		return true
	})
}
