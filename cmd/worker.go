package main

import (
	"context"
	"os/signal"
	"syscall"
	"travel/internal/config"
	"travel/internal/notification"
	"travel/internal/worker"
	"travel/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// workerCommand runs the background workers without the API server.
func workerCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "worker",
		Short: "Starts background workers only",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			notifier := notification.New(strg, getMailer(ctx, cfg), notification.NewOptions(cfg))

			riverClient, err := worker.Start(ctx, strg.Pool, strg, notifier, worker.NewOptions(cfg))
			if err != nil {
				logger.Fatal(ctx, "could not start workers", zap.Error(err))
			}
			logger.Info(ctx, "workers started")

			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			logger.Info(ctx, "stopping workers...")
			if err := riverClient.Stop(shutdownCtx); err != nil {
				logger.Error(ctx, "could not stop workers", zap.Error(err))
			}
		},
	}

	return cmd
}
