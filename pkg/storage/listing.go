package storage

import (
	"context"
	"travel/pkg/domain"

	"github.com/shopspring/decimal"
)

// ListingFilter narrows down listing queries. Zero values disable a criterion.
type ListingFilter struct {
	// Location matches listings whose location contains the value, case-insensitively.
	Location     string
	PropertyType domain.PropertyType
	Available    *bool
	MinPrice     *decimal.Decimal
	MaxPrice     *decimal.Decimal
	// MinGuests matches listings accommodating at least this many guests.
	MinGuests int
	// Search matches name, description or amenities, case-insensitively.
	Search string
	HostID domain.UserID
}

// ListingStorage defines persistence operations for listings. Read operations
// return listings with their review aggregates filled in.
type ListingStorage interface {
	StoreListing(ctx context.Context, listing domain.Listing) (*domain.Listing, error)
	// UpdateListing overwrites the mutable fields of the listing with the given
	// ID and returns the updated row, or nil when it does not exist.
	UpdateListing(ctx context.Context, listing domain.Listing) (*domain.Listing, error)
	// DeleteListing reports whether a listing was deleted.
	DeleteListing(ctx context.Context, ID domain.ListingID) (bool, error)
	// ListingByID returns nil when the listing does not exist.
	ListingByID(ctx context.Context, ID domain.ListingID) (*domain.Listing, error)
	// LockListing fetches a listing and locks its row until the surrounding
	// transaction ends. Review aggregates are not filled in.
	LockListing(ctx context.Context, ID domain.ListingID) (*domain.Listing, error)
	// ListingsByIDs returns the listings that exist among the given IDs.
	ListingsByIDs(ctx context.Context, IDs ...domain.ListingID) ([]domain.Listing, error)
	// Listings returns a page of listings created before the optional cursor.
	Listings(ctx context.Context, filter ListingFilter, cursor Cursor, limit uint) (Page[domain.Listing], error)
}
