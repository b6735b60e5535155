package payments

import (
	"context"
	"travel/pkg/domain"
	"travel/pkg/storage"
)

//go:generate mockgen -package mockpayments -source=interface.go -destination=mock/mockpayments.go *
type Payments interface {
	// CreateForBooking stores a pending payment for the booking through tx.
	CreateForBooking(ctx context.Context,
		tx storage.AllStorage,
		booking domain.Booking,
		user domain.User,
		phone string) (*domain.Payment, error)
	// Initiate opens a gateway checkout for the payment of the booking,
	// creating the payment when the booking has none.
	Initiate(ctx context.Context, bookingID domain.BookingID, phone string) (*domain.Payment, error)
	// Verify refreshes the payment with the given reference from the gateway.
	Verify(ctx context.Context, txRef string) (*StatusView, error)
	// HandleWebhook processes a gateway notification. It returns a nil payment
	// for deliveries that were already processed.
	HandleWebhook(ctx context.Context, body []byte, signature string) (*domain.Payment, error)
	// Status returns the payment state, refreshing unsettled payments first.
	Status(ctx context.Context, ID domain.PaymentID) (*StatusView, error)
	Get(ctx context.Context, ID domain.PaymentID) (*domain.Payment, error)
	List(ctx context.Context, filter storage.PaymentFilter, cursor string, limit uint) ([]domain.Payment, string, error)
}
