package gin

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// DefaultLimiterIdleTimeout is how long a client may stay silent before its
// limiter is dropped.
const DefaultLimiterIdleTimeout = 10 * time.Minute

// ClientLimiter provides per-client rate limiting using token buckets.
// Each client key, usually the remote IP, gets its own limiter so one
// busy caller cannot starve the others. Limiters of clients idle for longer
// than the idle timeout are evicted.
type ClientLimiter struct {
	mu        sync.Mutex
	clients   map[string]*clientEntry
	rps       float64
	burst     int
	idle      time.Duration
	lastSweep time.Time
	now       func() time.Time
}

type clientEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// LimiterOption configures a ClientLimiter.
type LimiterOption func(*ClientLimiter)

// WithIdleTimeout sets how long an unused client limiter is kept.
// Defaults to DefaultLimiterIdleTimeout. Non-positive values are ignored.
func WithIdleTimeout(d time.Duration) LimiterOption {
	return func(l *ClientLimiter) {
		if d > 0 {
			l.idle = d
		}
	}
}

// NewClientLimiter creates a ClientLimiter allowing rps requests per second
// per client with the given burst. Burst values below 1 are raised to 1.
func NewClientLimiter(rps float64, burst int, opts ...LimiterOption) *ClientLimiter {
	l := &ClientLimiter{
		clients: make(map[string]*clientEntry),
		rps:     rps,
		burst:   max(1, burst),
		idle:    DefaultLimiterIdleTimeout,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	l.lastSweep = l.now()
	return l
}

// Allow reports whether client may make a request now and consumes a token
// if so.
func (l *ClientLimiter) Allow(client string) bool {
	l.mu.Lock()
	now := l.now()
	if now.Sub(l.lastSweep) >= l.idle {
		l.sweep(now)
	}
	entry, ok := l.clients[client]
	if !ok {
		entry = &clientEntry{limiter: rate.NewLimiter(rate.Limit(l.rps), l.burst)}
		l.clients[client] = entry
	}
	entry.lastSeen = now
	l.mu.Unlock()

	return entry.limiter.AllowN(now, 1)
}

// Len returns the number of clients currently tracked.
func (l *ClientLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.clients)
}

// sweep drops clients not seen within the idle timeout. Callers hold mu.
func (l *ClientLimiter) sweep(now time.Time) {
	for client, entry := range l.clients {
		if now.Sub(entry.lastSeen) >= l.idle {
			delete(l.clients, client)
		}
	}
	l.lastSweep = now
}
