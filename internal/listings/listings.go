package listings

import (
	"context"
	"fmt"
	"strings"
	"travel/internal/bookings"
	"travel/internal/resolve"
	"travel/internal/reviews"
	"travel/pkg/domain"
	"travel/pkg/serrors"
	"travel/pkg/storage"

	"github.com/shopspring/decimal"
)

// Input carries the writable fields of a listing. Nil fields are left
// untouched by Update and take their defaults on Create. HostID is only read
// by Create.
type Input struct {
	HostID        *domain.UserID
	Name          *string
	Description   *string
	Location      *string
	PricePerNight *decimal.Decimal
	PropertyType  *domain.PropertyType
	MaxGuests     *int
	Bedrooms      *int
	Bathrooms     *int
	Amenities     *string
	Available     *bool
}

type listings struct {
	storage  storage.Storage
	reviews  reviews.Reviews
	bookings bookings.Bookings
}

// New creates a Listings service. The reviews and bookings services serve the
// sub-collections of a listing.
func New(storage storage.Storage, reviews reviews.Reviews, bookings bookings.Bookings) Listings {
	return &listings{
		storage:  storage,
		reviews:  reviews,
		bookings: bookings,
	}
}

func (l listings) Create(ctx context.Context, actor domain.UserID, input Input) (*domain.Listing, error) {
	listing := domain.Listing{
		HostID:       actor,
		PropertyType: domain.PropertyTypeApartment,
		MaxGuests:    1,
		Bedrooms:     1,
		Bathrooms:    1,
		Available:    true,
	}
	if input.HostID != nil {
		listing.HostID = *input.HostID
	}
	if err := applyInput(&listing, input); err != nil {
		return nil, err
	}
	if listing.HostID == 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "Host is required")
	}

	host, err := l.storage.UserByID(ctx, listing.HostID)
	if err != nil {
		return nil, fmt.Errorf("could not get host: %w", err)
	}
	if host == nil {
		return nil, serrors.With(serrors.ErrBadRequest, "Invalid host ID")
	}

	stored, err := l.storage.StoreListing(ctx, listing)
	if err != nil {
		return nil, fmt.Errorf("could not store listing: %w", err)
	}
	stored.Host = host

	return stored, nil
}

func (l listings) Update(ctx context.Context, ID domain.ListingID, input Input) (*domain.Listing, error) {
	listing, err := l.storage.ListingByID(ctx, ID)
	if err != nil {
		return nil, fmt.Errorf("could not get listing: %w", err)
	}
	if listing == nil {
		return nil, serrors.With(serrors.ErrNotFound, "listing not found")
	}

	if err := applyInput(listing, input); err != nil {
		return nil, err
	}

	updated, err := l.storage.UpdateListing(ctx, *listing)
	if err != nil {
		return nil, fmt.Errorf("could not update listing: %w", err)
	}
	if updated == nil {
		return nil, serrors.With(serrors.ErrNotFound, "listing not found")
	}

	return l.resolved(ctx, updated)
}

func (l listings) Delete(ctx context.Context, ID domain.ListingID) error {
	deleted, err := l.storage.DeleteListing(ctx, ID)
	if err != nil {
		return fmt.Errorf("could not delete listing: %w", err)
	}
	if !deleted {
		return serrors.With(serrors.ErrNotFound, "listing not found")
	}

	return nil
}

func (l listings) Get(ctx context.Context, ID domain.ListingID) (*domain.Listing, error) {
	listing, err := l.storage.ListingByID(ctx, ID)
	if err != nil {
		return nil, fmt.Errorf("could not get listing: %w", err)
	}
	if listing == nil {
		return nil, serrors.With(serrors.ErrNotFound, "listing not found")
	}

	return l.resolved(ctx, listing)
}

func (l listings) List(ctx context.Context,
	filter storage.ListingFilter,
	cursor string,
	limit uint,
) ([]domain.Listing, string, error) {
	after, err := storage.ParseCursor(cursor)
	if err != nil {
		return nil, "", serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
	}

	page, err := l.storage.Listings(ctx, filter, after, limit)
	if err != nil {
		return nil, "", fmt.Errorf("could not get listings: %w", err)
	}
	if err := resolve.Listings(ctx, l.storage, page.Items); err != nil {
		return nil, "", err
	}

	return page.Items, page.Cursor(), nil
}

func (l listings) Search(ctx context.Context,
	filter storage.ListingFilter,
	query string,
	cursor string,
	limit uint,
) ([]domain.Listing, string, error) {
	filter.Search = strings.TrimSpace(query)

	return l.List(ctx, filter, cursor, limit)
}

func (l listings) Reviews(ctx context.Context,
	ID domain.ListingID,
	cursor string,
	limit uint,
) ([]domain.Review, string, error) {
	if err := l.mustExist(ctx, ID); err != nil {
		return nil, "", err
	}

	return l.reviews.List(ctx, storage.ReviewFilter{ListingID: ID}, cursor, limit)
}

func (l listings) Bookings(ctx context.Context,
	ID domain.ListingID,
	cursor string,
	limit uint,
) ([]domain.Booking, string, error) {
	if err := l.mustExist(ctx, ID); err != nil {
		return nil, "", err
	}

	return l.bookings.List(ctx, storage.BookingFilter{ListingID: ID}, cursor, limit)
}

func (l listings) mustExist(ctx context.Context, ID domain.ListingID) error {
	listing, err := l.storage.ListingByID(ctx, ID)
	if err != nil {
		return fmt.Errorf("could not get listing: %w", err)
	}
	if listing == nil {
		return serrors.With(serrors.ErrNotFound, "listing not found")
	}

	return nil
}

func (l listings) resolved(ctx context.Context, listing *domain.Listing) (*domain.Listing, error) {
	out := []domain.Listing{*listing}
	if err := resolve.Listings(ctx, l.storage, out); err != nil {
		return nil, err
	}

	return &out[0], nil
}

func applyInput(listing *domain.Listing, input Input) error {
	if input.Name != nil {
		listing.Name = strings.TrimSpace(*input.Name)
	}
	if input.Description != nil {
		listing.Description = strings.TrimSpace(*input.Description)
	}
	if input.Location != nil {
		listing.Location = strings.TrimSpace(*input.Location)
	}
	if input.PricePerNight != nil {
		listing.PricePerNight = input.PricePerNight.Round(2) //nolint: mnd
	}
	if input.PropertyType != nil {
		listing.PropertyType = *input.PropertyType
	}
	if input.MaxGuests != nil {
		listing.MaxGuests = *input.MaxGuests
	}
	if input.Bedrooms != nil {
		listing.Bedrooms = *input.Bedrooms
	}
	if input.Bathrooms != nil {
		listing.Bathrooms = *input.Bathrooms
	}
	if input.Amenities != nil {
		listing.Amenities = strings.TrimSpace(*input.Amenities)
	}
	if input.Available != nil {
		listing.Available = *input.Available
	}

	return validate(*listing)
}

func validate(listing domain.Listing) error {
	switch {
	case listing.Name == "":
		return serrors.With(serrors.ErrBadRequest, "Name is required")
	case len([]rune(listing.Name)) > domain.MaxNameLength:
		return serrors.With(serrors.ErrBadRequest, "Name cannot exceed %d characters", domain.MaxNameLength)
	case listing.Description == "":
		return serrors.With(serrors.ErrBadRequest, "Description is required")
	case listing.Location == "":
		return serrors.With(serrors.ErrBadRequest, "Location is required")
	case len([]rune(listing.Location)) > domain.MaxNameLength:
		return serrors.With(serrors.ErrBadRequest, "Location cannot exceed %d characters", domain.MaxNameLength)
	case !listing.PricePerNight.IsPositive():
		return serrors.With(serrors.ErrBadRequest, "Price per night must be positive")
	case !listing.PropertyType.Valid():
		return serrors.With(serrors.ErrBadRequest, "%q is not a valid property type", listing.PropertyType)
	case listing.MaxGuests < 1:
		return serrors.With(serrors.ErrBadRequest, "Max guests must be at least 1")
	case listing.MaxGuests > domain.MaxGuestsLimit:
		return serrors.With(serrors.ErrBadRequest, "Max guests cannot exceed %d", domain.MaxGuestsLimit)
	case listing.Bedrooms < 0 || listing.Bathrooms < 0:
		return serrors.With(serrors.ErrBadRequest, "Bedrooms and bathrooms cannot be negative")
	}

	return nil
}
