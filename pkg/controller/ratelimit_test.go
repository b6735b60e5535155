package controller_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
	"travel/pkg/controller"

	"github.com/stretchr/testify/require"
)

func TestWithRateLimit(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	h := controller.WithRateLimit(2, time.Minute)(next)

	do := func(ip string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Real-IP", ip)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		return rec
	}

	require.Equal(t, http.StatusOK, do("1.1.1.1").Code)
	require.Equal(t, http.StatusOK, do("1.1.1.1").Code)

	limited := do("1.1.1.1")
	require.Equal(t, http.StatusTooManyRequests, limited.Code)
	require.Equal(t, "60", limited.Header().Get("Retry-After"))
	require.JSONEq(t, `{"code":"RATE_LIMITED","message":"too many requests"}`, limited.Body.String())

	// other clients have their own budget
	require.Equal(t, http.StatusOK, do("2.2.2.2").Code)
}

func TestWithRateLimit_Disabled(t *testing.T) {
	calls := 0
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { calls++ })
	h := controller.WithRateLimit(0, time.Minute)(next)

	for range 5 {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	}
	require.Equal(t, 5, calls)
}
