package worker

import (
	"context"
	"errors"
	"fmt"
	"time"
	"travel/internal/notification"
	"travel/pkg/logger"
	"travel/pkg/serrors"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// EmailWorker delivers the e-mails enqueued by notification.Notifier. Jobs
// about entities that no longer exist are cancelled; delivery failures are
// retried after a fixed delay until the job runs out of attempts.
type EmailWorker struct {
	river.WorkerDefaults[notification.EmailJobArgs]

	notifier   notification.Notifier
	retryDelay time.Duration
}

// NewEmailWorker constructs an EmailWorker.
func NewEmailWorker(notifier notification.Notifier, retryDelay time.Duration) *EmailWorker {
	return &EmailWorker{
		notifier:   notifier,
		retryDelay: retryDelay,
	}
}

func (w *EmailWorker) Work(ctx context.Context, job *river.Job[notification.EmailJobArgs]) error {
	ctx = logger.WithFields(ctx,
		zap.Int64("jobID", job.ID),
		zap.String("template", string(job.Args.Template)),
		zap.Stringer("id", job.Args.ID))

	if err := w.notifier.Send(ctx, job.Args.Template, job.Args.ID); err != nil {
		if errors.Is(err, serrors.ErrNotFound) {
			logger.Warn(ctx, "e-mail subject no longer exists, dropping job", zap.Error(err))

			return river.JobCancel(err) //nolint: wrapcheck
		}

		logger.Error(ctx, "could not send e-mail",
			zap.Int("attempt", job.Attempt),
			zap.Error(err))

		return fmt.Errorf("could not send e-mail: %w", err)
	}

	logger.Info(ctx, "e-mail sent")

	return nil
}

// NextRetry schedules the next attempt after the configured delay.
func (w *EmailWorker) NextRetry(*river.Job[notification.EmailJobArgs]) time.Time {
	return time.Now().Add(w.retryDelay)
}
