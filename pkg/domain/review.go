package domain

import (
	"time"

	"github.com/google/uuid"
)

// ReviewID uniquely identifies a review.
type ReviewID uuid.UUID

func (id ReviewID) String() string { return uuid.UUID(id).String() }

const (
	MinRating = 1
	MaxRating = 5
)

// Review is a rating left by a user for a listing, optionally tied to a stay.
type Review struct {
	ID        ReviewID
	ListingID ListingID
	UserID    UserID
	BookingID *BookingID

	// Listing and User are populated by read operations that resolve them.
	Listing *Listing
	User    *User

	Rating  int
	Comment string

	CreatedAt time.Time
	UpdatedAt time.Time
}
