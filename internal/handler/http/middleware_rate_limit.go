// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/MKhiriev/peninsula/internal/service"
)

const (
	// visitorTTL is how long an idle client keeps its bucket.
	visitorTTL = 5 * time.Minute
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// rateLimiter is a token bucket per client IP. Idle buckets are swept
// lazily on access, so no background goroutine is needed.
type rateLimiter struct {
	mu        sync.Mutex
	visitors  map[string]*visitor
	lastSweep time.Time

	limit rate.Limit
	burst int

	now func() time.Time
}

// newRateLimiter returns a limiter allowing perSecond requests with the
// given burst. A non-positive rate disables limiting.
func newRateLimiter(perSecond float64, burst int) *rateLimiter {
	limit := rate.Limit(perSecond)
	if perSecond <= 0 {
		limit = rate.Inf
	}
	if burst < 1 {
		burst = 1
	}

	return &rateLimiter{
		visitors: make(map[string]*visitor),
		limit:    limit,
		burst:    burst,
		now:      time.Now,
	}
}

func (l *rateLimiter) allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) > visitorTTL {
		for k, v := range l.visitors {
			if now.Sub(v.lastSeen) > visitorTTL {
				delete(l.visitors, k)
			}
		}
		l.lastSweep = now
	}

	v, ok := l.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.visitors[key] = v
	}
	v.lastSeen = now

	return v.limiter.AllowN(now, 1)
}

func (l *rateLimiter) handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !l.allow(clientIP(r)) {
			w.Header().Set("Retry-After", "1")
			writeError(w, r, service.ErrTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientIP keys the limiter on the connection's remote address. Forwarding
// headers are ignored: they are caller controlled and would let a client
// pick a fresh bucket per request.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
