package bookings

import (
	"travel/pkg/domain"
	"travel/pkg/serrors"
)

// PaymentInitiationError reports a booking that was stored but whose payment
// could not be initiated. It matches serrors.ErrPaymentRequired.
type PaymentInitiationError struct {
	BookingID domain.BookingID
	Err       error
}

func (e *PaymentInitiationError) Error() string {
	return "Booking created but payment initiation failed: " + e.Err.Error()
}

func (e *PaymentInitiationError) Unwrap() error { return e.Err }

func (e *PaymentInitiationError) Is(target error) bool { return target == serrors.ErrPaymentRequired }
