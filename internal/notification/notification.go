// Package notification renders the transactional e-mails of the service and
// schedules their delivery as background jobs.
package notification

import (
	"context"
	"fmt"
	"time"
	"travel/internal/config"
	"travel/pkg/domain"
	"travel/pkg/logger"
	"travel/pkg/mailer"
	"travel/pkg/metrics"
	"travel/pkg/serrors"
	"travel/pkg/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ReminderUniquePeriod is the window within which a reminder for the same
// booking is enqueued at most once.
const ReminderUniquePeriod = 24 * time.Hour

// Options configure how e-mail jobs are enqueued.
type Options struct {
	// MaxAttempts is the maximum number of delivery attempts of an e-mail job.
	MaxAttempts int
	// ReminderUniquePeriod deduplicates reminder jobs of the same booking.
	ReminderUniquePeriod time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxAttempts:          cfg.Worker.EmailMaxAttempts,
		ReminderUniquePeriod: ReminderUniquePeriod,
	}
}

type notifier struct {
	options Options
	storage storage.AllStorage
	mailer  mailer.Mailer
	now     func() time.Time
}

// New creates a Notifier that reads entities from storage and delivers
// through m.
func New(storage storage.AllStorage, m mailer.Mailer, options Options) Notifier {
	return &notifier{
		options: options,
		storage: storage,
		mailer:  m,
		now:     time.Now,
	}
}

func (n notifier) Enqueue(ctx context.Context, jobs storage.JobStorage, template Template, ID uuid.UUID) error {
	if !template.Valid() {
		return fmt.Errorf("unknown template %q", template)
	}

	args := EmailJobArgs{
		Template:    template,
		ID:          ID,
		maxAttempts: n.options.MaxAttempts,
	}
	if template == TemplateBookingReminder {
		args.uniquePeriod = n.options.ReminderUniquePeriod
	}

	added, err := jobs.AddJob(ctx, args, nil)
	if err != nil {
		return fmt.Errorf("could not add e-mail job: %w", err)
	}
	if !added {
		logger.Debug(ctx, "e-mail job already enqueued",
			zap.String("template", string(template)),
			zap.Stringer("id", ID))
	}

	return nil
}

func (n notifier) Send(ctx context.Context, template Template, ID uuid.UUID) error {
	g, err := n.load(ctx, template, ID)
	if err != nil {
		return err
	}

	msg, htmlErr, err := compose(template, *g, n.now())
	if err != nil {
		return err
	}
	if htmlErr != nil {
		logger.Warn(ctx, "sending e-mail without html body", zap.Error(htmlErr))
	}

	recipient := g.Guest.Email
	if template == TemplateHostNotification {
		recipient = g.Host.Email
	}
	if recipient == "" {
		logger.Warn(ctx, "skipping e-mail, recipient has no address",
			zap.String("template", string(template)),
			zap.Stringer("id", ID))

		return nil
	}

	if err := n.mailer.Send(ctx, mailer.Message{
		To:      []string{recipient},
		Subject: msg.Subject,
		Text:    msg.Text,
		HTML:    msg.HTML,
	}); err != nil {
		metrics.EmailsSent.WithLabelValues(string(template), "failed").Inc()

		return fmt.Errorf("could not send e-mail: %w", err)
	}
	metrics.EmailsSent.WithLabelValues(string(template), "sent").Inc()

	logger.Info(ctx, "e-mail sent",
		zap.String("template", string(template)),
		zap.String("to", recipient))

	return nil
}

// load resolves the entity graph of an e-mail. ID is a payment for payment
// confirmations and a booking otherwise.
func (n notifier) load(ctx context.Context, template Template, ID uuid.UUID) (*graph, error) {
	var g graph

	bookingID := domain.BookingID(ID)
	if template == TemplatePaymentConfirmation {
		payment, err := n.storage.PaymentByID(ctx, domain.PaymentID(ID))
		if err != nil {
			return nil, fmt.Errorf("could not get payment: %w", err)
		}
		if payment == nil {
			return nil, serrors.With(serrors.ErrNotFound, "payment %s not found", ID)
		}
		g.Payment = payment
		bookingID = payment.BookingID
	}

	booking, err := n.storage.BookingByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("could not get booking: %w", err)
	}
	if booking == nil {
		return nil, serrors.With(serrors.ErrNotFound, "booking %s not found", bookingID)
	}
	g.Booking = *booking

	listing, err := n.storage.ListingByID(ctx, booking.ListingID)
	if err != nil {
		return nil, fmt.Errorf("could not get listing: %w", err)
	}
	if listing == nil {
		return nil, serrors.With(serrors.ErrNotFound, "listing %s not found", booking.ListingID)
	}
	g.Listing = *listing

	users, err := n.storage.UsersByIDs(ctx, booking.UserID, listing.HostID)
	if err != nil {
		return nil, fmt.Errorf("could not get users: %w", err)
	}
	var guestFound, hostFound bool
	for _, u := range users {
		if u.ID == booking.UserID {
			g.Guest, guestFound = u, true
		}
		if u.ID == listing.HostID {
			g.Host, hostFound = u, true
		}
	}
	if !guestFound || !hostFound {
		return nil, serrors.With(serrors.ErrNotFound, "booking %s references a missing user", bookingID)
	}

	return &g, nil
}
