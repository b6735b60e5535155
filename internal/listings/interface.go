package listings

import (
	"context"
	"travel/pkg/domain"
	"travel/pkg/storage"
)

//go:generate mockgen -package mocklistings -source=interface.go -destination=mock/mocklistings.go *
type Listings interface {
	// Create stores a listing hosted by input.HostID, or by the actor when unset.
	Create(ctx context.Context, actor domain.UserID, input Input) (*domain.Listing, error)
	Update(ctx context.Context, ID domain.ListingID, input Input) (*domain.Listing, error)
	Delete(ctx context.Context, ID domain.ListingID) error
	Get(ctx context.Context, ID domain.ListingID) (*domain.Listing, error)
	List(ctx context.Context, filter storage.ListingFilter, cursor string, limit uint) ([]domain.Listing, string, error)
	// Search is List narrowed down to listings whose name, description or
	// amenities contain query.
	Search(ctx context.Context,
		filter storage.ListingFilter,
		query string,
		cursor string,
		limit uint) ([]domain.Listing, string, error)
	// Reviews lists the reviews of an existing listing.
	Reviews(ctx context.Context, ID domain.ListingID, cursor string, limit uint) ([]domain.Review, string, error)
	// Bookings lists the bookings of an existing listing.
	Bookings(ctx context.Context, ID domain.ListingID, cursor string, limit uint) ([]domain.Booking, string, error)
}
