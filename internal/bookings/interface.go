package bookings

import (
	"context"
	"travel/internal/payments"
	"travel/pkg/domain"
	"travel/pkg/storage"
)

//go:generate mockgen -package mockbookings -source=interface.go -destination=mock/mockbookings.go *
type Bookings interface {
	// Create stores the booking with a pending payment and opens the gateway
	// checkout. A *PaymentInitiationError is returned when the booking was
	// stored but the checkout could not be opened.
	Create(ctx context.Context, actor domain.UserID, input Input) (*Created, error)
	// Update changes the stay of a booking and recomputes its total.
	Update(ctx context.Context, ID domain.BookingID, input Input) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, ID domain.BookingID, status domain.BookingStatus) (*domain.Booking, error)
	// Cancel cancels the booking together with its unsettled payment.
	Cancel(ctx context.Context, ID domain.BookingID) (*domain.Booking, error)
	PaymentStatus(ctx context.Context, ID domain.BookingID) (*payments.StatusView, error)
	Delete(ctx context.Context, ID domain.BookingID) error
	Get(ctx context.Context, ID domain.BookingID) (*domain.Booking, error)
	List(ctx context.Context, filter storage.BookingFilter, cursor string, limit uint) ([]domain.Booking, string, error)
}
