package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It contains settings for the environment, HTTP server, database and Redis
// connections, payment gateway, SMTP relay, background workers and graceful
// shutdown behavior.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel overrides the environment's default log level when set (debug, info, warn, error)
	LogLevel string `env:"LOG_LEVEL" yaml:"logLevel"`
	// FrontendURL is the public URL of the web front-end, used for payment redirects
	FrontendURL string `env:"FRONTEND_URL" env-default:"http://localhost:3000" yaml:"frontendURL"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"10s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// CORSAllowedOrigins lists the origins allowed to call the API; "*" allows any
		CORSAllowedOrigins []string `env:"HTTP_CORS_ALLOWED_ORIGINS" env-default:"*" yaml:"corsAllowedOrigins"`
		// RateLimitRequests is the number of requests a client IP may make per RateLimitWindow; zero disables it
		RateLimitRequests int `env:"HTTP_RATE_LIMIT_REQUESTS" env-default:"100" yaml:"rateLimitRequests"`
		// RateLimitWindow is the window of the per-IP rate limit
		RateLimitWindow time.Duration `env:"HTTP_RATE_LIMIT_WINDOW" env-default:"1m" yaml:"rateLimitWindow"`
		// RiverUI mounts the job queue dashboard under /riverui/
		RiverUI bool `env:"HTTP_RIVER_UI" env-default:"false" yaml:"riverUI"`
	} `yaml:"http"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"travel" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// Redis contains the connection used for webhook de-duplication
	Redis struct {
		// Addr is the host:port of the Redis server
		Addr string `env:"REDIS_ADDR" env-default:"localhost:6379" yaml:"addr"`
		// Password for Redis authentication
		Password string `env:"REDIS_PASSWORD" yaml:"password"`
		// DB is the Redis database number
		DB int `env:"REDIS_DB" env-default:"0" yaml:"db"`
		// WebhookDedupTTL is how long a processed webhook delivery is remembered
		WebhookDedupTTL time.Duration `env:"REDIS_WEBHOOK_DEDUP_TTL" env-default:"24h" yaml:"webhookDedupTTL"`
	} `yaml:"redis"`

	// JWT holds the RSA key pair used for bearer tokens
	JWT struct {
		// PublicKey is the PEM encoded RSA public key used to verify tokens
		PublicKey string `env:"JWT_PUBLIC_KEY" yaml:"publicKey"`
		// PrivateKey is the PEM encoded RSA private key used by the jwt command to sign tokens
		PrivateKey string `env:"JWT_PRIVATE_KEY" yaml:"privateKey"`
	} `yaml:"jwt"`

	// Chapa configures the payment gateway
	Chapa struct {
		// SecretKey is the Chapa secret API key
		SecretKey string `env:"CHAPA_SECRET_KEY" yaml:"secretKey"`
		// BaseURL is the root of the Chapa API
		BaseURL string `env:"CHAPA_BASE_URL" env-default:"https://api.chapa.co/v1" yaml:"baseURL"`
		// WebhookURL is sent with every checkout when set
		WebhookURL string `env:"CHAPA_WEBHOOK_URL" yaml:"webhookURL"`
		// WebhookSecret enables HMAC-SHA256 verification of incoming webhooks when set
		WebhookSecret string `env:"CHAPA_WEBHOOK_SECRET" yaml:"webhookSecret"`
		// Timeout bounds a single gateway request
		Timeout time.Duration `env:"CHAPA_TIMEOUT" env-default:"30s" yaml:"timeout"`
	} `yaml:"chapa"`

	// Payments holds payment defaults
	Payments struct {
		// Currency is the ISO code of new payments
		Currency string `env:"PAYMENTS_CURRENCY" env-default:"ETB" yaml:"currency"`
	} `yaml:"payments"`

	// SMTP configures outgoing e-mail; an empty host logs messages instead of sending them
	SMTP struct {
		Host     string `env:"SMTP_HOST" yaml:"host"`
		Port     int    `env:"SMTP_PORT" env-default:"587" yaml:"port"`
		Username string `env:"SMTP_USERNAME" yaml:"username"`
		Password string `env:"SMTP_PASSWORD" yaml:"password"`
		// From is the sender address
		From string `env:"SMTP_FROM" env-default:"noreply@alxtravel.local" yaml:"from"`
		// TLSPolicy is one of mandatory, opportunistic or none
		TLSPolicy string `env:"SMTP_TLS_POLICY" env-default:"opportunistic" yaml:"tlsPolicy"`
		// SendsPerSecond throttles outgoing e-mails
		SendsPerSecond float64 `env:"SMTP_SENDS_PER_SECOND" env-default:"5" yaml:"sendsPerSecond"`
		// Timeout bounds connecting and sending
		Timeout time.Duration `env:"SMTP_TIMEOUT" env-default:"15s" yaml:"timeout"`
	} `yaml:"smtp"`

	// Worker configures background jobs
	Worker struct {
		// MaxWorkers is the number of jobs processed concurrently
		MaxWorkers int `env:"WORKER_MAX_WORKERS" env-default:"10" yaml:"maxWorkers"`
		// EmailMaxAttempts is the number of delivery attempts of an e-mail job
		EmailMaxAttempts int `env:"WORKER_EMAIL_MAX_ATTEMPTS" env-default:"4" yaml:"emailMaxAttempts"`
		// EmailRetryDelay is the wait between e-mail delivery attempts
		EmailRetryDelay time.Duration `env:"WORKER_EMAIL_RETRY_DELAY" env-default:"60s" yaml:"emailRetryDelay"`
		// CleanupInterval is how often expired bookings are cancelled
		CleanupInterval time.Duration `env:"WORKER_CLEANUP_INTERVAL" env-default:"1h" yaml:"cleanupInterval"`
		// ReminderInterval is how often check-in reminders are enqueued
		ReminderInterval time.Duration `env:"WORKER_REMINDER_INTERVAL" env-default:"1h" yaml:"reminderInterval"`
		// PendingBookingExpiry is how long a booking may wait for payment
		PendingBookingExpiry time.Duration `env:"WORKER_PENDING_BOOKING_EXPIRY" env-default:"24h" yaml:"pendingBookingExpiry"` //nolint: lll
	} `yaml:"worker"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
