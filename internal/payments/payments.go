package payments

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"travel/internal/config"
	"travel/internal/notification"
	"travel/pkg/domain"
	"travel/pkg/idempotency"
	"travel/pkg/logger"
	"travel/pkg/metrics"
	"travel/pkg/paymentgateway"
	"travel/pkg/serrors"
	"travel/pkg/storage"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Options configure payment creation and the gateway checkout.
type Options struct {
	// Currency is the ISO code of new payments.
	Currency string
	// FrontendURL is the root of the callback and return URLs.
	FrontendURL string
	// WebhookURL is sent to the gateway with every checkout when set.
	WebhookURL string
	// WebhookSecret enables signature verification of webhooks when set.
	WebhookSecret string
	// WebhookDedupTTL is how long a processed webhook delivery is remembered.
	WebhookDedupTTL time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Currency:        cfg.Payments.Currency,
		FrontendURL:     strings.TrimRight(cfg.FrontendURL, "/"),
		WebhookURL:      cfg.Chapa.WebhookURL,
		WebhookSecret:   cfg.Chapa.WebhookSecret,
		WebhookDedupTTL: cfg.Redis.WebhookDedupTTL,
	}
}

// StatusView is the externally visible state of a payment.
type StatusView struct {
	PaymentID   domain.PaymentID
	BookingID   domain.BookingID
	Status      domain.PaymentStatus
	Amount      decimal.Decimal
	Currency    string
	CheckoutURL string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewStatusView builds the StatusView of p.
func NewStatusView(p domain.Payment) *StatusView {
	return &StatusView{
		PaymentID:   p.ID,
		BookingID:   p.BookingID,
		Status:      p.Status,
		Amount:      p.Amount,
		Currency:    p.Currency,
		CheckoutURL: p.CheckoutURL,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

type payments struct {
	options  Options
	storage  storage.Storage
	gateway  paymentgateway.Client
	notifier notification.Notifier
	// dedup may be nil, webhooks are then processed on every delivery.
	dedup idempotency.Store
	now   func() time.Time
}

// New creates a Payments service. dedup is optional.
func New(storage storage.Storage,
	gateway paymentgateway.Client,
	notifier notification.Notifier,
	dedup idempotency.Store,
	options Options,
) Payments {
	return &payments{
		options:  options,
		storage:  storage,
		gateway:  gateway,
		notifier: notifier,
		dedup:    dedup,
		now:      time.Now,
	}
}

func (p payments) CreateForBooking(ctx context.Context,
	tx storage.AllStorage,
	booking domain.Booking,
	user domain.User,
	phone string,
) (*domain.Payment, error) {
	phone, err := customerPhone(phone)
	if err != nil {
		return nil, err
	}

	payment, err := tx.StorePayment(ctx, domain.Payment{
		BookingID:     booking.ID,
		Amount:        booking.TotalPrice,
		Currency:      p.options.Currency,
		Status:        domain.PaymentStatusPending,
		Reference:     domain.NewPaymentReference(booking.ID, p.now()),
		CustomerEmail: user.Email,
		CustomerPhone: phone,
		CustomerName:  customerName(user),
	})
	if err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			return nil, serrors.Wrap(serrors.ErrConflict, err, "payment already exists for this booking")
		}

		return nil, fmt.Errorf("could not store payment: %w", err)
	}

	return payment, nil
}

func (p payments) Initiate(ctx context.Context, bookingID domain.BookingID, phone string) (*domain.Payment, error) {
	ctx = logger.WithFields(ctx, zap.Stringer("bookingID", bookingID))

	phone, err := customerPhone(phone)
	if err != nil {
		return nil, err
	}

	booking, err := p.storage.BookingByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("could not get booking: %w", err)
	}
	if booking == nil {
		return nil, serrors.With(serrors.ErrNotFound, "Booking not found")
	}

	listing, err := p.storage.ListingByID(ctx, booking.ListingID)
	if err != nil {
		return nil, fmt.Errorf("could not get listing: %w", err)
	}
	if listing == nil {
		return nil, serrors.With(serrors.ErrNotFound, "listing of booking not found")
	}

	payment, err := p.storage.PaymentByBookingID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("could not get payment: %w", err)
	}

	switch {
	case payment == nil:
		user, err := p.storage.UserByID(ctx, booking.UserID)
		if err != nil {
			return nil, fmt.Errorf("could not get user: %w", err)
		}
		if user == nil {
			return nil, serrors.With(serrors.ErrNotFound, "user of booking not found")
		}
		if payment, err = p.CreateForBooking(ctx, p.storage, *booking, *user, phone); err != nil {
			return nil, err
		}
	case payment.Status == domain.PaymentStatusCompleted:
		return nil, serrors.With(serrors.ErrBadRequest, "Payment already completed for this booking")
	case payment.Status == domain.PaymentStatusFailed || payment.Status == domain.PaymentStatusCancelled:
		payment.Reference = domain.NewPaymentReference(booking.ID, p.now())
		payment.Status = domain.PaymentStatusPending
		payment.FailureReason = ""
		payment.CheckoutURL = ""
	}
	if phone != "" {
		payment.CustomerPhone = phone
	}

	return p.checkout(ctx, *payment, *booking, *listing)
}

// checkout opens the gateway checkout session and stores the outcome on the payment.
func (p payments) checkout(ctx context.Context,
	payment domain.Payment,
	booking domain.Booking,
	listing domain.Listing,
) (*domain.Payment, error) {
	firstName, lastName := "Guest", ""
	if payment.CustomerName != "" {
		firstName, lastName, _ = strings.Cut(payment.CustomerName, " ")
	}

	req := paymentgateway.InitializeRequest{
		Amount:      payment.Amount,
		Currency:    payment.Currency,
		Email:       payment.CustomerEmail,
		FirstName:   firstName,
		LastName:    lastName,
		PhoneNumber: payment.CustomerPhone,
		TxRef:       payment.Reference,
		CallbackURL: fmt.Sprintf("%s/payment/callback/%s/", p.options.FrontendURL, payment.ID),
		ReturnURL:   fmt.Sprintf("%s/booking/%s/", p.options.FrontendURL, booking.ID),
		Description: fmt.Sprintf("Payment for booking %s - %s", booking.ID, listing.Name),
		WebhookURL:  p.options.WebhookURL,
		Meta: map[string]string{
			"booking_id":   booking.ID.String(),
			"payment_id":   payment.ID.String(),
			"listing_name": listing.Name,
			"customer_id":  fmt.Sprint(int64(booking.UserID)),
		},
	}

	res, gwErr := p.gateway.Initialize(ctx, req)
	switch {
	case gwErr != nil:
		payment.Status = domain.PaymentStatusFailed
		payment.FailureReason = gwErr.Error()
	case !res.Successful():
		payment.Status = domain.PaymentStatusFailed
		payment.FailureReason = res.Message
		if payment.FailureReason == "" {
			payment.FailureReason = "Unknown error"
		}
	default:
		payment.Status = domain.PaymentStatusProcessing
		payment.CheckoutURL = res.CheckoutURL
	}

	updated, err := p.storage.UpdatePayment(ctx, payment)
	if err != nil {
		return nil, fmt.Errorf("could not update payment: %w", err)
	}
	if updated == nil {
		return nil, serrors.With(serrors.ErrNotFound, "payment not found")
	}
	metrics.PaymentTransitions.WithLabelValues(string(updated.Status)).Inc()

	if updated.Status == domain.PaymentStatusFailed {
		logger.Error(ctx, "payment initiation failed", zap.String("reason", updated.FailureReason))
		if gwErr != nil {
			return nil, serrors.Wrap(serrors.ErrPaymentRequired, gwErr, "Payment initiation failed")
		}

		return nil, serrors.With(serrors.ErrPaymentRequired, "Payment initiation failed: %s", updated.FailureReason)
	}

	logger.Info(ctx, "payment initiated", zap.Stringer("paymentID", updated.ID))

	return updated, nil
}

func (p payments) Verify(ctx context.Context, txRef string) (*StatusView, error) {
	txRef = strings.TrimSpace(txRef)
	if txRef == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "tx_ref is required")
	}

	payment, err := p.storage.PaymentByReference(ctx, txRef)
	if err != nil {
		return nil, fmt.Errorf("could not get payment: %w", err)
	}
	if payment == nil {
		return nil, serrors.With(serrors.ErrNotFound, "Payment not found")
	}

	updated, err := p.refresh(ctx, *payment)
	if err != nil {
		return nil, err
	}

	return NewStatusView(*updated), nil
}

func (p payments) Status(ctx context.Context, ID domain.PaymentID) (*StatusView, error) {
	payment, err := p.storage.PaymentByID(ctx, ID)
	if err != nil {
		return nil, fmt.Errorf("could not get payment: %w", err)
	}
	if payment == nil {
		return nil, serrors.With(serrors.ErrNotFound, "Payment not found")
	}

	if payment.IsPending() && payment.Reference != "" {
		updated, err := p.refresh(ctx, *payment)
		if err != nil {
			logger.Warn(ctx, "could not refresh payment status",
				zap.Stringer("paymentID", ID),
				zap.Error(err))
		} else {
			payment = updated
		}
	}

	return NewStatusView(*payment), nil
}

func (p payments) Get(ctx context.Context, ID domain.PaymentID) (*domain.Payment, error) {
	payment, err := p.storage.PaymentByID(ctx, ID)
	if err != nil {
		return nil, fmt.Errorf("could not get payment: %w", err)
	}
	if payment == nil {
		return nil, serrors.With(serrors.ErrNotFound, "Payment not found")
	}

	return payment, nil
}

func (p payments) List(ctx context.Context,
	filter storage.PaymentFilter,
	cursor string,
	limit uint,
) ([]domain.Payment, string, error) {
	after, err := storage.ParseCursor(cursor)
	if err != nil {
		return nil, "", serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
	}

	page, err := p.storage.Payments(ctx, filter, after, limit)
	if err != nil {
		return nil, "", fmt.Errorf("could not get payments: %w", err)
	}

	return page.Items, page.Cursor(), nil
}

// refresh verifies the payment with the gateway and applies the result. The
// payment confirmation e-mail is enqueued in the same transaction when the
// payment becomes completed.
func (p payments) refresh(ctx context.Context, payment domain.Payment) (*domain.Payment, error) {
	ctx = logger.WithFields(ctx, zap.Stringer("paymentID", payment.ID), zap.String("txRef", payment.Reference))

	verification, err := p.gateway.Verify(ctx, payment.Reference)
	if err != nil {
		return nil, fmt.Errorf("could not verify payment: %w", err)
	}

	var updated *domain.Payment
	if err := p.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		previous := payment.Status
		applyVerification(&payment, *verification, p.now())

		updated, err = tx.UpdatePayment(ctx, payment)
		if err != nil {
			return fmt.Errorf("could not update payment: %w", err)
		}
		if updated == nil {
			return serrors.With(serrors.ErrNotFound, "Payment not found")
		}

		var bookingStatus domain.BookingStatus
		switch updated.Status {
		case domain.PaymentStatusCompleted:
			bookingStatus = domain.BookingStatusConfirmed
		case domain.PaymentStatusFailed:
			bookingStatus = domain.BookingStatusPaymentFailed
		}
		if bookingStatus != "" {
			if _, err := tx.UpdateBookingStatus(ctx, updated.BookingID, bookingStatus); err != nil {
				return fmt.Errorf("could not update booking status: %w", err)
			}
		}

		if previous != updated.Status {
			metrics.PaymentTransitions.WithLabelValues(string(updated.Status)).Inc()
			logger.Info(ctx, "payment status changed",
				zap.String("from", string(previous)),
				zap.String("to", string(updated.Status)))

			if updated.Status == domain.PaymentStatusCompleted {
				if err := p.notifier.Enqueue(ctx,
					tx,
					notification.TemplatePaymentConfirmation,
					uuid.UUID(updated.ID)); err != nil {
					return fmt.Errorf("could not enqueue payment confirmation: %w", err)
				}
			}
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not apply verification: %w", err)
	}

	return updated, nil
}

// applyVerification maps the gateway view of a transaction onto the payment.
func applyVerification(payment *domain.Payment, v paymentgateway.Verification, now time.Time) {
	payment.Status = mapStatus(v.TransactionStatus)
	payment.TransactionID = v.TransactionID
	payment.Method = mapMethod(v.Method)
	payment.WebhookData = v.Raw

	switch payment.Status {
	case domain.PaymentStatusCompleted:
		payment.PaymentDate = v.CreatedAt
		if payment.PaymentDate.IsZero() {
			payment.PaymentDate = now
		}
	case domain.PaymentStatusFailed:
		payment.FailureReason = v.FailureReason
		if payment.FailureReason == "" {
			payment.FailureReason = "Payment failed"
		}
	}
}

func mapStatus(gatewayStatus string) domain.PaymentStatus {
	switch strings.ToLower(gatewayStatus) {
	case "success":
		return domain.PaymentStatusCompleted
	case "pending":
		return domain.PaymentStatusProcessing
	case "cancelled":
		return domain.PaymentStatusCancelled
	default:
		return domain.PaymentStatusFailed
	}
}

func mapMethod(gatewayMethod string) domain.PaymentMethod {
	switch strings.ToLower(gatewayMethod) {
	case "visa", "mastercard", "amex":
		return domain.PaymentMethodCard
	case "bank":
		return domain.PaymentMethodBank
	default:
		return domain.PaymentMethodMobile
	}
}

// customerPhone trims the phone number and rejects ones the payment cannot store.
func customerPhone(phone string) (string, error) {
	phone = strings.TrimSpace(phone)
	if utf8.RuneCountInString(phone) > domain.MaxCustomerPhoneLength {
		return "", serrors.With(serrors.ErrBadRequest,
			"customer_phone must be at most %d characters", domain.MaxCustomerPhoneLength)
	}

	return phone, nil
}

// customerName is the display name of the user cut to the stored length.
func customerName(user domain.User) string {
	name := user.DisplayName()
	if utf8.RuneCountInString(name) <= domain.MaxCustomerNameLength {
		return name
	}

	return strings.TrimSpace(string([]rune(name)[:domain.MaxCustomerNameLength]))
}
