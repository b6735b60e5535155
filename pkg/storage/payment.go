package storage

import (
	"context"
	"travel/pkg/domain"
)

// PaymentFilter narrows down payment queries. Zero values disable a criterion.
type PaymentFilter struct {
	Status    domain.PaymentStatus
	BookingID domain.BookingID
}

// PaymentStorage defines persistence operations for payments.
type PaymentStorage interface {
	// StorePayment inserts a payment. ErrDuplicate is returned when the booking
	// already has a payment or the reference is taken.
	StorePayment(ctx context.Context, payment domain.Payment) (*domain.Payment, error)
	// UpdatePayment overwrites the mutable fields of the payment with the given
	// ID and returns the updated row, or nil when it does not exist.
	UpdatePayment(ctx context.Context, payment domain.Payment) (*domain.Payment, error)
	// PaymentByID returns nil when the payment does not exist.
	PaymentByID(ctx context.Context, ID domain.PaymentID) (*domain.Payment, error)
	// PaymentByReference returns nil when no payment carries the reference.
	PaymentByReference(ctx context.Context, reference string) (*domain.Payment, error)
	// PaymentByBookingID returns nil when the booking has no payment.
	PaymentByBookingID(ctx context.Context, bookingID domain.BookingID) (*domain.Payment, error)
	// PaymentsByBookingIDs returns the payments that exist for the given bookings.
	PaymentsByBookingIDs(ctx context.Context, bookingIDs ...domain.BookingID) ([]domain.Payment, error)
	// Payments returns a page of payments created before the optional cursor.
	Payments(ctx context.Context, filter PaymentFilter, cursor Cursor, limit uint) (Page[domain.Payment], error)
	// CancelPendingPayments cancels the pending or processing payments of the
	// given bookings and returns how many were cancelled.
	CancelPendingPayments(ctx context.Context, bookingIDs ...domain.BookingID) (int64, error)
}
