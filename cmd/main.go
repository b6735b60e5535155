// Package main provides the CLI entrypoint for the travel booking service.
// It wires subcommands (serve, worker, migrate, jwt, user), loads configuration, and initializes logging.
package main

import (
	"context"
	"flag"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"travel/internal/bookings"
	"travel/internal/config"
	"travel/internal/listings"
	"travel/internal/notification"
	"travel/internal/payments"
	"travel/internal/reviews"
	"travel/pkg/idempotency/redisstore"
	"travel/pkg/logger"
	"travel/pkg/mailer"
	"travel/pkg/mailer/smtp"
	"travel/pkg/paymentgateway/chapa"
	"travel/pkg/storage/postgres"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// getPostgres creates a PostgreSQL client using configuration values and returns it
// along with a cleanup function to close the connection pool.
func getPostgres(ctx context.Context, cfg *config.Config) (*postgres.PgSQL, func()) {
	pgsql, err := postgres.New(ctx, postgres.Options{
		Username:           cfg.Database.Username,
		Password:           cfg.Database.Password,
		Host:               cfg.Database.Host,
		Port:               cfg.Database.Port,
		Database:           cfg.Database.DatabaseName,
		ConnMaxLifetime:    cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime:    cfg.Database.ConnMaxIdleTime,
		MaxOpenConnections: cfg.Database.MaxOpenConnections,
		MaxIdleConnections: cfg.Database.MaxIdleConnections,
		SslMode:            cfg.Database.SslMode,
	})
	if err != nil {
		logger.Fatal(ctx, "could not create postgres storage", zap.Error(err))
	}

	return pgsql, func() {
		logger.Info(ctx, "closing postgres client...")
		if err = pgsql.Close(); err != nil {
			logger.Warn(ctx, "could not close postgres connection", zap.Error(err))
		}
	}
}

// getRedis connects the webhook de-duplication store.
func getRedis(ctx context.Context, cfg *config.Config) (*redisstore.Store, func()) {
	store, err := redisstore.New(ctx, redisstore.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		logger.Fatal(ctx, "could not connect to redis", zap.Error(err))
	}

	return store, func() {
		logger.Info(ctx, "closing redis client...")
		if err = store.Close(); err != nil {
			logger.Warn(ctx, "could not close redis connection", zap.Error(err))
		}
	}
}

// getMailer returns an SMTP mailer, or a logging one when no host is configured.
func getMailer(ctx context.Context, cfg *config.Config) mailer.Mailer {
	if cfg.SMTP.Host == "" {
		logger.Warn(ctx, "no smtp host configured, e-mails will only be logged")

		return mailer.Log{}
	}

	m, err := smtp.New(smtp.Options{
		Host:           cfg.SMTP.Host,
		Port:           cfg.SMTP.Port,
		Username:       cfg.SMTP.Username,
		Password:       cfg.SMTP.Password,
		From:           cfg.SMTP.From,
		TLSPolicy:      cfg.SMTP.TLSPolicy,
		SendsPerSecond: cfg.SMTP.SendsPerSecond,
		Timeout:        cfg.SMTP.Timeout,
	})
	if err != nil {
		logger.Fatal(ctx, "could not create smtp mailer", zap.Error(err))
	}

	return m
}

// services holds the wired domain services.
type services struct {
	notifier notification.Notifier
	payments payments.Payments
	bookings bookings.Bookings
	reviews  reviews.Reviews
	listings listings.Listings
}

func newServices(ctx context.Context, cfg *config.Config, strg *postgres.PgSQL, dedup *redisstore.Store) services {
	notifier := notification.New(strg, getMailer(ctx, cfg), notification.NewOptions(cfg))
	gateway := chapa.New(&http.Client{}, chapa.Options{
		BaseURL:   cfg.Chapa.BaseURL,
		SecretKey: cfg.Chapa.SecretKey,
		Timeout:   cfg.Chapa.Timeout,
	})
	if cfg.Chapa.SecretKey == "" {
		logger.Warn(ctx, "no chapa secret key configured, payment initiation will fail")
	}

	paymentsService := payments.New(strg, gateway, notifier, dedup, payments.NewOptions(cfg))
	bookingsService := bookings.New(strg, paymentsService, notifier)
	reviewsService := reviews.New(strg)

	return services{
		notifier: notifier,
		payments: paymentsService,
		bookings: bookingsService,
		reviews:  reviewsService,
		listings: listings.New(strg, reviewsService, bookingsService),
	}
}

// main sets up the root Cobra command, loads configuration and logging, and
// registers subcommands before executing the CLI.
func main() {
	rootCmd := &cobra.Command{
		Use: "travel",
	}

	// there is no way to access flags before command execution in cobra.
	// configPath here is parsed using the standard flags package.
	// following line is just added to prevent errors when Cobra is parsing the flags.
	rootCmd.PersistentFlags().StringP("config", "c", "config.yml", "Config File Path")

	fs := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	configPath := fs.String("c", "config.yml", "The config file path")
	_ = fs.Parse(configArgs(os.Args[1:]))

	log.Println("loading config ...")
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("could not load config file", err)
	}

	if err = logger.SetupWithLevel(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatal("could not set up logger", err)
	}

	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			_ = logger.Get(ctx).Sync()

			panic(p)
		}
	}()

	rootCmd.AddCommand(
		migrateCommand(cfg),
		serveCommand(cfg),
		workerCommand(cfg),
		JWTCommand(cfg),
		userCommand(cfg),
	)

	err = rootCmd.Execute()
	logger.Sync(ctx)
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}

// configArgs picks the -c/--config flag out of the command line so the
// standard flag package does not stop at the first subcommand.
func configArgs(args []string) []string {
	for i, arg := range args {
		switch arg {
		case "-c", "--config", "-config":
			if i+1 < len(args) {
				return []string{"-c", args[i+1]}
			}
		}
		for _, prefix := range []string{"-c=", "--config=", "-config="} {
			if value, ok := strings.CutPrefix(arg, prefix); ok && value != "" {
				return []string{"-c", value}
			}
		}
	}

	return nil
}
