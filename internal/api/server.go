// Package api configures and exposes the HTTP server, routes,
// metrics, docs and related middleware for the travel booking service.
package api

import (
	"context"
	_ "embed"
	"fmt"
	"net/http"
	"sync"
	"time"
	"travel/internal/api/handler/v1handler"
	"travel/internal/config"
	"travel/pkg/controller"
	"travel/pkg/logger"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggest/swgui/v5emb"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.uber.org/zap"
)

// v1Spec contains the embedded OpenAPI specification for version 1 of the API.
//
//go:embed specs/v1.yaml
var v1Spec []byte

const (
	healthTimeout = 2 * time.Second
	serviceName   = "travel"
)

// Options holds configuration for the HTTP server and its dependencies.
// It is typically created from a config.Config via NewOptions.
// All durations are used to configure server timeouts, and zero values
// should be considered as using the defaults provided by net/http where applicable.
type Options struct {
	// SecHandlerOptions configures bearer authentication of v1 endpoints.
	SecHandlerOptions *v1handler.SecHandlerOptions

	// Addr is the TCP address the server listens on, e.g. ":8080".
	Addr string
	// ReadTimeout is the maximum duration for reading the entire request, including the body.
	ReadTimeout time.Duration
	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	ReadHeaderTimeout time.Duration
	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration
	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled.
	IdleTimeout time.Duration
	// RequestTimeout is the global timeout applied via http.TimeoutHandler for handling requests.
	RequestTimeout time.Duration
	// MaxHeaderBytes controls the maximum number of bytes the server
	// will read parsing the request header's keys and values, including the request line.
	MaxHeaderBytes int
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string
	// CORSAllowedOrigins lists the origins browsers may call the API from.
	CORSAllowedOrigins []string
	// RateLimitRequests per RateLimitWindow are allowed for each client IP.
	RateLimitRequests int
	RateLimitWindow   time.Duration
}

// NewOptions constructs an Options value from the provided application configuration.
// It maps HTTP server-related settings from config.Config to the Options used by the API server.
func NewOptions(cfg *config.Config) Options {
	return Options{
		SecHandlerOptions: v1handler.NewSecHandlerOptions(cfg),

		Addr:               cfg.HTTP.Addr,
		ReadTimeout:        cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout:  cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:       cfg.HTTP.WriteTimeout,
		IdleTimeout:        cfg.HTTP.IdleTimeout,
		RequestTimeout:     cfg.HTTP.RequestTimeout,
		MaxHeaderBytes:     cfg.HTTP.MaxHeaderBytes,
		MetricsPath:        cfg.HTTP.MetricsPath,
		CORSAllowedOrigins: cfg.HTTP.CORSAllowedOrigins,
		RateLimitRequests:  cfg.HTTP.RateLimitRequests,
		RateLimitWindow:    cfg.HTTP.RateLimitWindow,
	}
}

type Deps struct {
	v1handler.Deps

	// Health reports whether the backing stores are reachable. It is optional.
	Health func(ctx context.Context) error
	// RiverUI is mounted under RiverUIPrefix when set.
	RiverUI http.Handler
}

// NewServer wires up and returns a configured *http.Server using the provided Options.
// It sets up:
// - Prometheus metrics endpoint (MetricsPath)
// - OpenTelemetry HTTP metrics exported to Prometheus
// - Embedded OpenAPI v1 spec and Swagger UI
// - v1 API routes validated against the spec
// - pprof endpoints for profiling and the optional River dashboard
// It also wraps the router with logging, CORS and rate limiting middlewares and
// applies a request timeout.
func NewServer(deps Deps, opts Options) (*http.Server, error) {
	handler, err := NewHandler(deps, opts)
	if err != nil {
		return nil, err
	}

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           handler,
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}, nil
}

// NewHandler builds the root handler of the server.
func NewHandler(deps Deps, opts Options) (http.Handler, error) {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	// prometheus metrics server
	r.Handle(opts.MetricsPath, promhttp.Handler())

	// otel
	mp, err := otelMeterProvider()
	if err != nil {
		return nil, err
	}

	r.Get("/healthz", healthHandler(deps.Health))

	// v1 specs file
	r.Get("/specs/v1.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(v1Spec)
	})
	// v1 api swagger playground
	r.Handle("/v1/docs/*", v5emb.New(
		"Travel Booking Service",
		"/specs/v1.yaml",
		"/v1/docs/",
	))

	// v1 api
	v1 := v1handler.New(deps.Deps)
	secHandler, err := v1handler.NewSecHandler(opts.SecHandlerOptions)
	if err != nil {
		return nil, fmt.Errorf("could not create sec handler: %w", err)
	}
	doc, err := LoadSpec()
	if err != nil {
		return nil, err
	}
	validate, err := withRequestValidation(doc, v1.WriteError)
	if err != nil {
		return nil, err
	}
	r.Route("/v1", func(r chi.Router) {
		v1.Webhooks(r)
		r.Group(func(r chi.Router) {
			r.Use(secHandler.Middleware(v1), validate)
			v1.Routes(r)
		})
	})

	// pprof
	r.Mount(controller.PprofPrefix, controller.PprofMux())

	if deps.RiverUI != nil {
		r.Mount(RiverUIPrefix, deps.RiverUI)
	}

	handler := otelhttp.NewHandler(r, serviceName,
		otelhttp.WithMeterProvider(mp),
		otelhttp.WithFilter(func(r *http.Request) bool {
			return r.URL.Path != opts.MetricsPath && r.URL.Path != "/healthz"
		}),
	)

	handler = controller.WithRateLimit(opts.RateLimitRequests, opts.RateLimitWindow)(handler)

	// cors
	handler = controller.WithCORS(opts.CORSAllowedOrigins)(handler)

	// logger
	handler = controller.WithLogger(handler)

	if opts.RequestTimeout > 0 {
		handler = http.TimeoutHandler(handler, opts.RequestTimeout,
			`{"code":"TIMEOUT","message":"request timed out"}`)
	}

	return handler, nil
}

//nolint: gochecknoglobals
var (
	meterProviderOnce sync.Once
	meterProvider     *sdkmetric.MeterProvider
	meterProviderErr  error
)

// otelMeterProvider returns the meter provider exported through the default
// prometheus registerer. The exporter is registered once per process.
func otelMeterProvider() (*sdkmetric.MeterProvider, error) {
	meterProviderOnce.Do(func() {
		exp, err := otelprom.New(otelprom.WithRegisterer(prometheus.DefaultRegisterer))
		if err != nil {
			meterProviderErr = fmt.Errorf("could not create otel exporter: %w", err)

			return
		}
		meterProvider = sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp))
	})

	return meterProvider, meterProviderErr
}

func healthHandler(check func(ctx context.Context) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		if check != nil {
			ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
			defer cancel()

			if err := check(ctx); err != nil {
				logger.Warn(ctx, "health check failed", zap.Error(err))
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte(`{"status":"unavailable"}`))

				return
			}
		}

		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}
}
