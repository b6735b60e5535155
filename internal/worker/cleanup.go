package worker

import (
	"context"
	"fmt"
	"time"
	"travel/pkg/logger"
	"travel/pkg/storage"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// CleanupExpiredBookingsArgs triggers the cancellation of bookings that were
// never paid.
type CleanupExpiredBookingsArgs struct{}

func (CleanupExpiredBookingsArgs) Kind() string { return "CleanupExpiredBookingsJob" }

// CleanupExpiredBookingsWorker cancels payment_pending bookings older than
// expiry together with their unsettled payments.
type CleanupExpiredBookingsWorker struct {
	river.WorkerDefaults[CleanupExpiredBookingsArgs]

	storage storage.Storage
	expiry  time.Duration
	now     func() time.Time
}

// NewCleanupExpiredBookingsWorker constructs a CleanupExpiredBookingsWorker.
func NewCleanupExpiredBookingsWorker(storage storage.Storage, expiry time.Duration) *CleanupExpiredBookingsWorker {
	return &CleanupExpiredBookingsWorker{
		storage: storage,
		expiry:  expiry,
		now:     time.Now,
	}
}

func (w *CleanupExpiredBookingsWorker) Work(ctx context.Context, job *river.Job[CleanupExpiredBookingsArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID))
	cutoff := w.now().Add(-w.expiry)

	var expired, payments int64
	if err := w.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		IDs, err := tx.ExpirePendingBookings(ctx, cutoff)
		if err != nil {
			return fmt.Errorf("could not expire pending bookings: %w", err)
		}
		expired = int64(len(IDs))
		if len(IDs) == 0 {
			return nil
		}

		payments, err = tx.CancelPendingPayments(ctx, IDs...)
		if err != nil {
			return fmt.Errorf("could not cancel pending payments: %w", err)
		}

		return nil
	}); err != nil {
		logger.Error(ctx, "could not clean up expired bookings", zap.Error(err))

		return err
	}

	logger.Info(ctx, "expired bookings cleaned up",
		zap.Time("cutoff", cutoff),
		zap.Int64("bookings", expired),
		zap.Int64("payments", payments))

	return nil
}
