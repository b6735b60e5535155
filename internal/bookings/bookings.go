package bookings

import (
	"context"
	"fmt"
	"strings"
	"time"
	"travel/internal/notification"
	"travel/internal/payments"
	"travel/internal/resolve"
	"travel/pkg/domain"
	"travel/pkg/logger"
	"travel/pkg/metrics"
	"travel/pkg/serrors"
	"travel/pkg/storage"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CreatedMessage is returned to the guest after a successful booking.
const CreatedMessage = "Booking created successfully. Please complete payment to confirm your booking. " +
	"Confirmation emails have been sent."

// Input carries the writable fields of a booking. Nil fields are left
// untouched by Update. UserID and CustomerPhone are only read by Create.
type Input struct {
	ListingID       *domain.ListingID
	UserID          *domain.UserID
	CheckIn         *time.Time
	CheckOut        *time.Time
	Guests          *int
	SpecialRequests *string
	// CustomerPhone is passed to the payment gateway.
	CustomerPhone string
}

// Created is the outcome of a booking creation.
type Created struct {
	Booking    *domain.Booking
	PaymentID  domain.PaymentID
	PaymentURL string
	Message    string
}

type bookings struct {
	storage  storage.Storage
	payments payments.Payments
	notifier notification.Notifier
}

// New creates a Bookings service.
func New(storage storage.Storage, payments payments.Payments, notifier notification.Notifier) Bookings {
	return &bookings{
		storage:  storage,
		payments: payments,
		notifier: notifier,
	}
}

func (b bookings) Create(ctx context.Context, actor domain.UserID, input Input) (*Created, error) {
	if input.ListingID == nil {
		return nil, serrors.With(serrors.ErrBadRequest, "Listing ID is required")
	}
	if input.CheckIn == nil || input.CheckOut == nil {
		return nil, serrors.With(serrors.ErrBadRequest, "Check-in and check-out dates are required")
	}

	booking := domain.Booking{
		ListingID: *input.ListingID,
		UserID:    actor,
		Guests:    1,
		Status:    domain.BookingStatusPaymentPending,
	}
	applyInput(&booking, input)
	if input.UserID != nil {
		booking.UserID = *input.UserID
	}
	if err := validateDates(booking); err != nil {
		return nil, err
	}
	if booking.UserID == 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "User is required")
	}

	user, err := b.storage.UserByID(ctx, booking.UserID)
	if err != nil {
		return nil, fmt.Errorf("could not get user: %w", err)
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrBadRequest, "Invalid user ID")
	}

	var stored *domain.Booking
	if err := b.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		if err := reserve(ctx, tx, &booking, nil); err != nil {
			return err
		}

		stored, err = tx.StoreBooking(ctx, booking)
		if err != nil {
			return fmt.Errorf("could not store booking: %w", err)
		}

		_, err = b.payments.CreateForBooking(ctx, tx, *stored, *user, input.CustomerPhone)

		return err
	}); err != nil {
		return nil, err
	}

	ctx = logger.WithFields(ctx, zap.Stringer("bookingID", stored.ID))
	logger.Info(ctx, "booking created")

	payment, err := b.payments.Initiate(ctx, stored.ID, "")
	if err != nil {
		logger.Error(ctx, "payment initiation failed", zap.Error(err))
		metrics.BookingsCreated.WithLabelValues("payment_failed").Inc()
		if _, updErr := b.storage.UpdateBookingStatus(ctx, stored.ID, domain.BookingStatusPaymentFailed); updErr != nil {
			logger.Error(ctx, "could not mark booking payment as failed", zap.Error(updErr))
		}

		return nil, &PaymentInitiationError{BookingID: stored.ID, Err: err}
	}
	metrics.BookingsCreated.WithLabelValues("created").Inc()

	b.enqueue(ctx, stored.ID, notification.TemplateBookingConfirmation, notification.TemplateHostNotification)

	if err := resolve.Booking(ctx, b.storage, stored); err != nil {
		return nil, err
	}
	stored.Payment = payment

	return &Created{
		Booking:    stored,
		PaymentID:  payment.ID,
		PaymentURL: payment.CheckoutURL,
		Message:    CreatedMessage,
	}, nil
}

func (b bookings) Update(ctx context.Context, ID domain.BookingID, input Input) (*domain.Booking, error) {
	var updated *domain.Booking
	if err := b.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		booking, err := tx.BookingByID(ctx, ID)
		if err != nil {
			return fmt.Errorf("could not get booking: %w", err)
		}
		if booking == nil {
			return serrors.With(serrors.ErrNotFound, "Booking not found")
		}

		previousTotal := booking.TotalPrice
		if input.ListingID != nil {
			booking.ListingID = *input.ListingID
		}
		applyInput(booking, input)
		if err := validateDates(*booking); err != nil {
			return err
		}
		if err := reserve(ctx, tx, booking, &booking.ID); err != nil {
			return err
		}

		updated, err = tx.UpdateBooking(ctx, *booking)
		if err != nil {
			return fmt.Errorf("could not update booking: %w", err)
		}
		if updated == nil {
			return serrors.With(serrors.ErrNotFound, "Booking not found")
		}
		if updated.TotalPrice.Equal(previousTotal) {
			return nil
		}

		return repricePayment(ctx, tx, *updated)
	}); err != nil {
		return nil, err
	}

	return b.resolved(ctx, updated)
}

// repricePayment carries a new booking total over to its unsettled payment.
// An open checkout session charges the old amount, so it is dropped and the
// payment gets a fresh reference for the next initiation.
func repricePayment(ctx context.Context, tx storage.AllStorage, booking domain.Booking) error {
	payment, err := tx.PaymentByBookingID(ctx, booking.ID)
	if err != nil {
		return fmt.Errorf("could not get payment: %w", err)
	}
	if payment == nil || payment.Amount.Equal(booking.TotalPrice) {
		return nil
	}

	switch payment.Status {
	case domain.PaymentStatusCompleted, domain.PaymentStatusRefunded:
		return serrors.With(serrors.ErrConflict, "Booking is already paid, its total price cannot change")
	case domain.PaymentStatusProcessing:
		payment.Status = domain.PaymentStatusPending
		payment.CheckoutURL = ""
		payment.Reference = domain.NewPaymentReference(booking.ID, time.Now())
	}
	payment.Amount = booking.TotalPrice

	if _, err := tx.UpdatePayment(ctx, *payment); err != nil {
		return fmt.Errorf("could not update payment amount: %w", err)
	}
	logger.Info(ctx, "payment repriced",
		zap.Stringer("bookingID", booking.ID),
		zap.Stringer("amount", payment.Amount))

	return nil
}

// UpdateStatus sets the booking status, e-mailing the guest when the booking
// becomes confirmed or cancelled.
func (b bookings) UpdateStatus(ctx context.Context,
	ID domain.BookingID,
	status domain.BookingStatus,
) (*domain.Booking, error) {
	if !status.Valid() {
		names := make([]string, 0, len(domain.BookingStatuses))
		for _, s := range domain.BookingStatuses {
			names = append(names, string(s))
		}

		return nil, serrors.With(serrors.ErrBadRequest, "Invalid status. Must be one of: %s", strings.Join(names, ", "))
	}

	booking, err := b.storage.BookingByID(ctx, ID)
	if err != nil {
		return nil, fmt.Errorf("could not get booking: %w", err)
	}
	if booking == nil {
		return nil, serrors.With(serrors.ErrNotFound, "Booking not found")
	}
	previous := booking.Status

	updated, err := b.storage.UpdateBookingStatus(ctx, ID, status)
	if err != nil {
		return nil, fmt.Errorf("could not update booking status: %w", err)
	}
	if updated == nil {
		return nil, serrors.With(serrors.ErrNotFound, "Booking not found")
	}

	if previous != status {
		switch status {
		case domain.BookingStatusConfirmed:
			b.enqueue(ctx, ID, notification.TemplateBookingConfirmation)
		case domain.BookingStatusCancelled:
			b.enqueue(ctx, ID, notification.TemplateBookingCancellation)
		}
	}

	return b.resolved(ctx, updated)
}

func (b bookings) Cancel(ctx context.Context, ID domain.BookingID) (*domain.Booking, error) {
	var cancelled *domain.Booking
	if err := b.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		booking, err := tx.BookingByID(ctx, ID)
		if err != nil {
			return fmt.Errorf("could not get booking: %w", err)
		}

		switch {
		case booking == nil:
			return serrors.With(serrors.ErrNotFound, "Booking not found")
		case booking.Status == domain.BookingStatusCompleted:
			return serrors.With(serrors.ErrBadRequest, "Cannot cancel a completed booking")
		case booking.Status == domain.BookingStatusCancelled:
			return serrors.With(serrors.ErrBadRequest, "Booking is already cancelled")
		}

		cancelled, err = tx.UpdateBookingStatus(ctx, ID, domain.BookingStatusCancelled)
		if err != nil {
			return fmt.Errorf("could not cancel booking: %w", err)
		}
		if _, err := tx.CancelPendingPayments(ctx, ID); err != nil {
			return fmt.Errorf("could not cancel payment: %w", err)
		}

		return nil
	}); err != nil {
		return nil, err
	}

	logger.Info(ctx, "booking cancelled", zap.Stringer("bookingID", ID))
	b.enqueue(ctx, ID, notification.TemplateBookingCancellation)

	return b.resolved(ctx, cancelled)
}

func (b bookings) PaymentStatus(ctx context.Context, ID domain.BookingID) (*payments.StatusView, error) {
	booking, err := b.storage.BookingByID(ctx, ID)
	if err != nil {
		return nil, fmt.Errorf("could not get booking: %w", err)
	}
	if booking == nil {
		return nil, serrors.With(serrors.ErrNotFound, "Booking not found")
	}

	payment, err := b.storage.PaymentByBookingID(ctx, ID)
	if err != nil {
		return nil, fmt.Errorf("could not get payment: %w", err)
	}
	if payment == nil {
		return nil, serrors.With(serrors.ErrNotFound, "No payment found for this booking")
	}

	return b.payments.Status(ctx, payment.ID)
}

func (b bookings) Delete(ctx context.Context, ID domain.BookingID) error {
	deleted, err := b.storage.DeleteBooking(ctx, ID)
	if err != nil {
		return fmt.Errorf("could not delete booking: %w", err)
	}
	if !deleted {
		return serrors.With(serrors.ErrNotFound, "Booking not found")
	}

	return nil
}

func (b bookings) Get(ctx context.Context, ID domain.BookingID) (*domain.Booking, error) {
	booking, err := b.storage.BookingByID(ctx, ID)
	if err != nil {
		return nil, fmt.Errorf("could not get booking: %w", err)
	}
	if booking == nil {
		return nil, serrors.With(serrors.ErrNotFound, "Booking not found")
	}

	return b.resolved(ctx, booking)
}

// List returns a page of bookings, newest first, and the cursor of the next page.
func (b bookings) List(ctx context.Context,
	filter storage.BookingFilter,
	cursor string,
	limit uint,
) ([]domain.Booking, string, error) {
	after, err := storage.ParseCursor(cursor)
	if err != nil {
		return nil, "", serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
	}

	page, err := b.storage.Bookings(ctx, filter, after, limit)
	if err != nil {
		return nil, "", fmt.Errorf("could not get bookings: %w", err)
	}
	if err := resolve.Bookings(ctx, b.storage, page.Items); err != nil {
		return nil, "", err
	}

	return page.Items, page.Cursor(), nil
}

func (b bookings) resolved(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if err := resolve.Booking(ctx, b.storage, booking); err != nil {
		return nil, err
	}

	return booking, nil
}

// enqueue schedules e-mails about the booking. Failures are logged only.
func (b bookings) enqueue(ctx context.Context, ID domain.BookingID, templates ...notification.Template) {
	for _, tpl := range templates {
		if err := b.notifier.Enqueue(ctx, b.storage, tpl, uuid.UUID(ID)); err != nil {
			logger.Warn(ctx, "could not enqueue e-mail",
				zap.String("template", string(tpl)),
				zap.Stringer("bookingID", ID),
				zap.Error(err))
		}
	}
}

// reserve validates the booking against its listing, locked for the rest of
// tx, and computes the total price.
func reserve(ctx context.Context, tx storage.AllStorage, booking *domain.Booking, exclude *domain.BookingID) error {
	listing, err := tx.LockListing(ctx, booking.ListingID)
	if err != nil {
		return fmt.Errorf("could not lock listing: %w", err)
	}

	switch {
	case listing == nil:
		return serrors.With(serrors.ErrBadRequest, "Invalid listing ID")
	case !listing.Available:
		return serrors.With(serrors.ErrBadRequest, "This listing is not available for booking")
	case booking.Guests < 1:
		return serrors.With(serrors.ErrBadRequest, "Number of guests must be at least 1")
	case booking.Guests > listing.MaxGuests:
		return serrors.With(serrors.ErrBadRequest,
			"Number of guests (%d) exceeds maximum allowed (%d)", booking.Guests, listing.MaxGuests)
	}

	overlapping, err := tx.CountOverlappingBookings(ctx,
		booking.ListingID,
		booking.CheckIn,
		booking.CheckOut,
		domain.OccupyingBookingStatuses,
		exclude)
	if err != nil {
		return fmt.Errorf("could not count overlapping bookings: %w", err)
	}
	if overlapping > 0 {
		return serrors.With(serrors.ErrBadRequest, "These dates are not available")
	}

	booking.TotalPrice = listing.PricePerNight.Mul(decimal.NewFromInt(int64(booking.Nights())))

	return nil
}

func applyInput(booking *domain.Booking, input Input) {
	if input.CheckIn != nil {
		booking.CheckIn = domain.Date(*input.CheckIn)
	}
	if input.CheckOut != nil {
		booking.CheckOut = domain.Date(*input.CheckOut)
	}
	if input.Guests != nil {
		booking.Guests = *input.Guests
	}
	if input.SpecialRequests != nil {
		booking.SpecialRequests = strings.TrimSpace(*input.SpecialRequests)
	}
}

func validateDates(booking domain.Booking) error {
	if !booking.CheckOut.After(booking.CheckIn) {
		return serrors.With(serrors.ErrBadRequest, "Check-out date must be after check-in date")
	}

	return nil
}
