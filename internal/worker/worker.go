// Package worker runs the background jobs of the service on River: e-mail
// delivery and the periodic booking maintenance.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"
	"travel/internal/config"
	"travel/internal/notification"
	"travel/pkg/logger"
	"travel/pkg/storage"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"go.uber.org/zap/exp/zapslog"
)

// Options configure the River client and the workers.
type Options struct {
	MaxWorkers           int
	EmailRetryDelay      time.Duration
	CleanupInterval      time.Duration
	ReminderInterval     time.Duration
	PendingBookingExpiry time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxWorkers:           cfg.Worker.MaxWorkers,
		EmailRetryDelay:      cfg.Worker.EmailRetryDelay,
		CleanupInterval:      cfg.Worker.CleanupInterval,
		ReminderInterval:     cfg.Worker.ReminderInterval,
		PendingBookingExpiry: cfg.Worker.PendingBookingExpiry,
	}
}

// NewClient creates a River client with every worker and periodic job
// registered. The client is not started.
func NewClient(ctx context.Context,
	dbPool *pgxpool.Pool,
	storage storage.Storage,
	notifier notification.Notifier,
	options Options,
) (*river.Client[pgx.Tx], error) {
	workers := river.NewWorkers()
	river.AddWorker(workers, NewEmailWorker(notifier, options.EmailRetryDelay))
	river.AddWorker(workers, NewCleanupExpiredBookingsWorker(storage, options.PendingBookingExpiry))
	river.AddWorker(workers, NewSendRemindersWorker(storage, notifier))

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: options.MaxWorkers},
		},
		Workers: workers,
		PeriodicJobs: []*river.PeriodicJob{
			river.NewPeriodicJob(
				river.PeriodicInterval(options.CleanupInterval),
				func() (river.JobArgs, *river.InsertOpts) { return CleanupExpiredBookingsArgs{}, nil },
				&river.PeriodicJobOpts{RunOnStart: true},
			),
			river.NewPeriodicJob(
				river.PeriodicInterval(options.ReminderInterval),
				func() (river.JobArgs, *river.InsertOpts) { return SendRemindersArgs{}, nil },
				&river.PeriodicJobOpts{RunOnStart: true},
			),
		},
		Logger: slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	return riverClient, nil
}

// Start creates and starts the River client.
func Start(ctx context.Context,
	dbPool *pgxpool.Pool,
	storage storage.Storage,
	notifier notification.Notifier,
	options Options,
) (*river.Client[pgx.Tx], error) {
	riverClient, err := NewClient(ctx, dbPool, storage, notifier, options)
	if err != nil {
		return nil, err
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
