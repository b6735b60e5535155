package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BookingID uniquely identifies a booking.
type BookingID uuid.UUID

func (id BookingID) String() string { return uuid.UUID(id).String() }

// BookingStatus represents the lifecycle state of a booking.
type BookingStatus string

const (
	BookingStatusPending        BookingStatus = "pending"
	BookingStatusConfirmed      BookingStatus = "confirmed"
	BookingStatusCancelled      BookingStatus = "cancelled"
	BookingStatusCompleted      BookingStatus = "completed"
	BookingStatusPaymentPending BookingStatus = "payment_pending"
	BookingStatusPaymentFailed  BookingStatus = "payment_failed"
)

// BookingStatuses lists every booking status in display order.
var BookingStatuses = []BookingStatus{ //nolint: gochecknoglobals
	BookingStatusPending,
	BookingStatusConfirmed,
	BookingStatusCancelled,
	BookingStatusCompleted,
	BookingStatusPaymentPending,
	BookingStatusPaymentFailed,
}

// OccupyingBookingStatuses are the statuses of bookings that hold their dates.
var OccupyingBookingStatuses = []BookingStatus{ //nolint: gochecknoglobals
	BookingStatusConfirmed,
	BookingStatusPending,
	BookingStatusPaymentPending,
}

// Valid reports whether s is a known booking status.
func (s BookingStatus) Valid() bool {
	for _, st := range BookingStatuses {
		if st == s {
			return true
		}
	}

	return false
}

// DateLayout is the wire layout of check-in and check-out dates.
const DateLayout = time.DateOnly

// Booking is a reservation of a listing for a range of nights.
type Booking struct {
	ID        BookingID
	ListingID ListingID
	UserID    UserID

	// Listing, User and Payment are populated by read operations that resolve them.
	Listing *Listing
	User    *User
	Payment *Payment

	// CheckIn and CheckOut are calendar dates at UTC midnight.
	CheckIn         time.Time
	CheckOut        time.Time
	Guests          int
	TotalPrice      decimal.Decimal
	Status          BookingStatus
	SpecialRequests string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Nights returns the number of nights between check-in and check-out.
func (b Booking) Nights() int {
	return NightsBetween(b.CheckIn, b.CheckOut)
}

// NightsBetween returns the number of calendar days between two dates.
func NightsBetween(checkIn, checkOut time.Time) int {
	return int(Date(checkOut).Sub(Date(checkIn)).Hours() / 24) //nolint: mnd
}

// Date truncates t to its calendar date at UTC midnight.
func Date(t time.Time) time.Time {
	y, m, d := t.Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
