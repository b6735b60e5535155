package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"travel/pkg/logger"

	"github.com/jackc/pgx/v5"
	"github.com/riverqueue/river"
	"go.uber.org/zap/exp/zapslog"
	"riverqueue.com/riverui"
)

// RiverUIPrefix is the path the job queue dashboard is served under.
const RiverUIPrefix = "/riverui"

// NewRiverUI starts the River dashboard for client. The handler expects to be
// mounted under RiverUIPrefix.
func NewRiverUI(ctx context.Context, client *river.Client[pgx.Tx]) (http.Handler, error) {
	handler, err := riverui.NewHandler(&riverui.HandlerOpts{
		Endpoints: riverui.NewEndpoints(client, nil),
		Logger:    slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
		Prefix:    RiverUIPrefix,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river ui: %w", err)
	}

	if err := handler.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river ui: %w", err)
	}

	return handler, nil
}
