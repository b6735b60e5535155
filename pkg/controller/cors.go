package controller

import (
	"net/http"
	"slices"
)

const (
	corsAllowedHeaders = "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, " +
		"Cache-Control, X-Request-Id, Chapa-Signature, X-Chapa-Signature"
	corsAllowedMethods = "POST, OPTIONS, GET, PUT, PATCH, DELETE"
)

// WithCORS returns a middleware that sets CORS headers for the allowed origins
// and short-circuits OPTIONS preflight requests with 204 No Content. A "*"
// entry allows any origin. Requests from other origins get no CORS headers.
func WithCORS(allowedOrigins []string) func(http.Handler) http.Handler {
	allowAny := slices.Contains(allowedOrigins, "*")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			switch {
			case allowAny:
				w.Header().Set("Access-Control-Allow-Origin", "*")
			case origin != "" && slices.Contains(allowedOrigins, origin):
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Credentials", "true")
				w.Header().Add("Vary", "Origin")
			default:
				if r.Method == http.MethodOptions {
					w.WriteHeader(http.StatusNoContent)

					return
				}
				next.ServeHTTP(w, r)

				return
			}
			w.Header().Set("Access-Control-Allow-Headers", corsAllowedHeaders)
			w.Header().Set("Access-Control-Allow-Methods", corsAllowedMethods)

			// handle preflight requests quickly
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
