package api

import (
	"net/http"
	"sync"
	"time"

	"github.com/ajaiswal/portfolio-backend/errs"
	"github.com/rs/zerolog/log"
)

const (
	contactRateMax    = 5
	contactRateWindow = 15 * time.Minute
	contactRateAdvice = "Please wait 15 minutes before submitting another message."
)

// contactRateLimiter tracks accepted submissions per client address over a
// sliding window. Requests over the quota are rejected before any validation
// or persistence happens.
type contactRateLimiter struct {
	mu     sync.Mutex
	max    int
	window time.Duration
	hits   map[string][]time.Time
	now    func() time.Time
}

func newContactRateLimiter(max int, window time.Duration) *contactRateLimiter {
	return &contactRateLimiter{
		max:    max,
		window: window,
		hits:   make(map[string][]time.Time),
		now:    time.Now,
	}
}

// allow records one submission attempt for addr and reports whether it fits
// inside the window. Expired entries are pruned on access, so the table only
// holds addresses active within the last window.
func (l *contactRateLimiter) allow(addr string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := l.now().Add(-l.window)
	recent := l.hits[addr][:0]
	for _, t := range l.hits[addr] {
		if t.After(cutoff) {
			recent = append(recent, t)
		}
	}

	if len(recent) >= l.max {
		l.hits[addr] = recent
		return false
	}

	l.hits[addr] = append(recent, l.now())
	return true
}

// limit is the route middleware form of the limiter.
func (l *contactRateLimiter) limit(next http.Handler) http.Handler {
	responder := NewResponder(log.With().Str("handlerName", "contactRateLimiter").Logger())

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		addr := clientIP(r)
		if !l.allow(addr) {
			responder.logger.Warn().Str("addr", addr).Msg("contact submission rate limited")
			responder.WriteError(w, errs.NewRateLimited(contactRateAdvice))
			return
		}
		next.ServeHTTP(w, r)
	})
}
