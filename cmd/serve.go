package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"travel/internal/api"
	"travel/internal/api/handler/v1handler"
	"travel/internal/config"
	"travel/internal/worker"
	"travel/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			dedup, closeRedis := getRedis(ctx, cfg)
			defer closeRedis()

			svc := newServices(ctx, cfg, strg, dedup)

			riverClient, err := worker.Start(ctx, strg.Pool, strg, svc.notifier, worker.NewOptions(cfg))
			if err != nil {
				logger.Fatal(ctx, "could not start workers", zap.Error(err))
			}

			deps := api.Deps{
				Deps: v1handler.Deps{
					Listings: svc.listings,
					Bookings: svc.bookings,
					Payments: svc.payments,
					Reviews:  svc.reviews,
				},
				Health: func(ctx context.Context) error {
					if err := strg.Pool.Ping(ctx); err != nil {
						return fmt.Errorf("postgres: %w", err)
					}
					if err := dedup.Ping(ctx); err != nil {
						return fmt.Errorf("redis: %w", err)
					}

					return nil
				},
			}
			if cfg.HTTP.RiverUI {
				deps.RiverUI, err = api.NewRiverUI(ctx, riverClient)
				if err != nil {
					logger.Fatal(ctx, "could not create river ui", zap.Error(err))
				}
			}

			server, err := api.NewServer(deps, api.NewOptions(cfg))
			if err != nil {
				logger.Fatal(ctx, "could not create webserver", zap.Error(err))
			}

			g, gCtx := errgroup.WithContext(ctx)
			g.Go(func() error {
				logger.Info(ctx, "starting webserver...", zap.String("addr", cfg.HTTP.Addr))
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return fmt.Errorf("could not start webserver: %w", err)
				}

				return nil
			})
			g.Go(func() error {
				// wait for interrupt or a failed webserver
				<-gCtx.Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
				defer cancel()

				logger.Info(ctx, "stopping webserver...")
				if err := server.Shutdown(shutdownCtx); err != nil {
					logger.Error(ctx, "could not stop webserver", zap.Error(err))
				}

				logger.Info(ctx, "stopping workers...")
				if err := riverClient.Stop(shutdownCtx); err != nil {
					logger.Error(ctx, "could not stop workers", zap.Error(err))
				}

				return nil
			})

			if err := g.Wait(); err != nil {
				logger.Error(ctx, "server stopped with error", zap.Error(err))
			}
		},
	}

	return cmd
}
