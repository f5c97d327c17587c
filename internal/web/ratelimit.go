package web

import (
	"errors"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"
)

var errRateLimited = errors.New("rate limit exceeded")

// rateLimiter counts requests per client IP in fixed windows. Counters live
// in a go-cache so idle clients expire on their own.
type rateLimiter struct {
	counts *cache.Cache
	rate   int
	window time.Duration
}

func newRateLimiter(rate int, window time.Duration) *rateLimiter {
	return &rateLimiter{
		counts: cache.New(window, 2*window),
		rate:   rate,
		window: window,
	}
}

// allow consumes one request for ip and reports whether it is within the limit.
func (rl *rateLimiter) allow(ip string) bool {
	if err := rl.counts.Add(ip, 1, rl.window); err == nil {
		return true
	}
	n, err := rl.counts.IncrementInt(ip, 1)
	if err != nil {
		// The window expired between Add and IncrementInt.
		rl.counts.Set(ip, 1, rl.window)
		return true
	}
	return n <= rl.rate
}

func (rl *rateLimiter) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.allow(clientIP(r)) {
			w.Header().Set("Retry-After", strconv.Itoa(int(rl.window.Seconds())))
			respondError(w, r, errRateLimited, http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientIP strips the port from RemoteAddr, which TrustedRealIP has already
// rewritten for proxied requests.
func clientIP(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
