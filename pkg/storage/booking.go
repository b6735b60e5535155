package storage

import (
	"context"
	"time"
	"travel/pkg/domain"
)

// BookingFilter narrows down booking queries. Zero values disable a criterion.
type BookingFilter struct {
	Status    domain.BookingStatus
	UserID    domain.UserID
	ListingID domain.ListingID
}

// BookingStorage defines persistence operations for bookings.
type BookingStorage interface {
	StoreBooking(ctx context.Context, booking domain.Booking) (*domain.Booking, error)
	// UpdateBooking overwrites the mutable fields of the booking with the given
	// ID and returns the updated row, or nil when it does not exist.
	UpdateBooking(ctx context.Context, booking domain.Booking) (*domain.Booking, error)
	// UpdateBookingStatus sets the status of a booking and returns the updated
	// row, or nil when it does not exist.
	UpdateBookingStatus(ctx context.Context, ID domain.BookingID, status domain.BookingStatus) (*domain.Booking, error)
	// DeleteBooking reports whether a booking was deleted.
	DeleteBooking(ctx context.Context, ID domain.BookingID) (bool, error)
	// BookingByID returns nil when the booking does not exist.
	BookingByID(ctx context.Context, ID domain.BookingID) (*domain.Booking, error)
	// Bookings returns a page of bookings created before the optional cursor.
	Bookings(ctx context.Context, filter BookingFilter, cursor Cursor, limit uint) (Page[domain.Booking], error)
	// CountOverlappingBookings counts bookings of the listing in one of the given
	// statuses whose stay intersects [checkIn, checkOut). The booking identified
	// by exclude, if any, is ignored.
	CountOverlappingBookings(ctx context.Context,
		listingID domain.ListingID,
		checkIn, checkOut time.Time,
		statuses []domain.BookingStatus,
		exclude *domain.BookingID) (int64, error)
	// ExpirePendingBookings cancels bookings still awaiting payment that were
	// created before cutoff and returns their IDs.
	ExpirePendingBookings(ctx context.Context, cutoff time.Time) ([]domain.BookingID, error)
	// BookingsCheckingInOn returns bookings with the given status whose check-in date is day.
	BookingsCheckingInOn(ctx context.Context, day time.Time, status domain.BookingStatus) ([]domain.Booking, error)
}
