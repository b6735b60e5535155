package worker

import (
	"context"
	"fmt"
	"time"
	"travel/internal/notification"
	"travel/pkg/domain"
	"travel/pkg/logger"
	"travel/pkg/storage"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// SendRemindersArgs triggers the check-in reminders of the next day.
type SendRemindersArgs struct{}

func (SendRemindersArgs) Kind() string { return "SendRemindersJob" }

// SendRemindersWorker enqueues a reminder e-mail for every confirmed booking
// checking in tomorrow (UTC). Reminder jobs are unique per booking, so running
// it more than once a day is harmless.
type SendRemindersWorker struct {
	river.WorkerDefaults[SendRemindersArgs]

	storage  storage.Storage
	notifier notification.Notifier
	now      func() time.Time
}

// NewSendRemindersWorker constructs a SendRemindersWorker.
func NewSendRemindersWorker(storage storage.Storage, notifier notification.Notifier) *SendRemindersWorker {
	return &SendRemindersWorker{
		storage:  storage,
		notifier: notifier,
		now:      time.Now,
	}
}

func (w *SendRemindersWorker) Work(ctx context.Context, job *river.Job[SendRemindersArgs]) error {
	tomorrow := domain.Date(w.now().UTC()).AddDate(0, 0, 1)
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID), zap.Time("checkIn", tomorrow))

	bookings, err := w.storage.BookingsCheckingInOn(ctx, tomorrow, domain.BookingStatusConfirmed)
	if err != nil {
		return fmt.Errorf("could not get bookings checking in: %w", err)
	}
	if len(bookings) == 0 {
		logger.Debug(ctx, "no check-ins tomorrow")

		return nil
	}

	if err := w.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		for _, b := range bookings {
			if err := w.notifier.Enqueue(ctx, tx, notification.TemplateBookingReminder, uuid.UUID(b.ID)); err != nil {
				return fmt.Errorf("could not enqueue reminder of booking %s: %w", b.ID, err)
			}
		}

		return nil
	}); err != nil {
		logger.Error(ctx, "could not enqueue reminders", zap.Error(err))

		return err
	}

	logger.Info(ctx, "check-in reminders enqueued", zap.Int("count", len(bookings)))

	return nil
}
