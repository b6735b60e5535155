package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/httprate"
)

// WithRateLimit returns a middleware allowing each client IP at most requests
// per window. Rejected requests get 429 with a Retry-After header and a
// RATE_LIMITED error body. A non-positive requests value disables the limit.
func WithRateLimit(requests int, window time.Duration) func(http.Handler) http.Handler {
	if requests <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	return httprate.Limit(
		requests,
		window,
		httprate.WithKeyFuncs(func(r *http.Request) (string, error) {
			return GetClientIP(r), nil
		}),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("Retry-After", strconv.Itoa(int(window.Seconds())))
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"code":"RATE_LIMITED","message":"too many requests"}`))
		}),
	)
}
