package middleware

import (
	"context"
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"golang.org/x/time/rate"
)

// Decision is the outcome of charging one request to a client key.
type Decision struct {
	Allowed    bool
	Limit      int
	Remaining  int
	RetryAfter time.Duration
}

// CounterStore charges requests against per-key budgets.
type CounterStore interface {
	Take(key string) Decision
}

// RateLimit charges each request to its client IP and answers 429 once the
// budget is spent. Every response carries X-RateLimit-Limit and
// X-RateLimit-Remaining.
func RateLimit(store CounterStore) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			d := store.Take(clientIP(r))

			h := w.Header()
			h.Set("X-RateLimit-Limit", strconv.Itoa(d.Limit))
			h.Set("X-RateLimit-Remaining", strconv.Itoa(d.Remaining))

			if !d.Allowed {
				secs := int(math.Ceil(d.RetryAfter.Seconds()))
				h.Set("Retry-After", strconv.Itoa(max(secs, 1)))
				writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientIP returns the first X-Forwarded-For hop, else the remote host.
func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// ---------------------------------------------------------------------------
// In-memory store
// ---------------------------------------------------------------------------

// MemoryCounterStore keeps one token bucket per key in process memory.
// Buckets refill at perMinute/60 tokens per second up to burst.
type MemoryCounterStore struct {
	clock     clockwork.Clock
	perMinute int
	burst     int
	idleTTL   time.Duration

	mu      sync.Mutex
	buckets map[string]*bucket
}

type bucket struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

// NewMemoryCounterStore creates a store. Buckets unused for idleTTL are
// dropped by Sweep.
func NewMemoryCounterStore(clock clockwork.Clock, perMinute, burst int, idleTTL time.Duration) *MemoryCounterStore {
	return &MemoryCounterStore{
		clock:     clock,
		perMinute: perMinute,
		burst:     burst,
		idleTTL:   idleTTL,
		buckets:   make(map[string]*bucket),
	}
}

// Take charges one request to key.
func (s *MemoryCounterStore) Take(key string) Decision {
	now := s.clock.Now()

	s.mu.Lock()
	b, ok := s.buckets[key]
	if !ok {
		b = &bucket{lim: rate.NewLimiter(rate.Limit(float64(s.perMinute)/60), s.burst)}
		s.buckets[key] = b
	}
	b.lastSeen = now
	s.mu.Unlock()

	d := Decision{Limit: s.perMinute}
	if b.lim.AllowN(now, 1) {
		d.Allowed = true
		d.Remaining = max(int(b.lim.TokensAt(now)), 0)
		return d
	}

	missing := 1 - b.lim.TokensAt(now)
	d.RetryAfter = time.Duration(missing / float64(b.lim.Limit()) * float64(time.Second))
	return d
}

// Sweep drops buckets idle for longer than the TTL and returns how many it
// removed.
func (s *MemoryCounterStore) Sweep() int {
	cutoff := s.clock.Now().Add(-s.idleTTL)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for key, b := range s.buckets {
		if b.lastSeen.Before(cutoff) {
			delete(s.buckets, key)
			removed++
		}
	}
	return removed
}

// Len returns the number of tracked keys.
func (s *MemoryCounterStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.buckets)
}

// RunSweeper calls Sweep every interval until ctx is done.
func (s *MemoryCounterStore) RunSweeper(ctx context.Context, interval time.Duration) {
	ticker := s.clock.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			s.Sweep()
		}
	}
}
