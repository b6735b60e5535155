package reviews

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"travel/internal/resolve"
	"travel/pkg/domain"
	"travel/pkg/serrors"
	"travel/pkg/storage"
)

// Input carries the writable fields of a review. Nil fields are left
// untouched by Update; ListingID, UserID and BookingID are only read by Create.
type Input struct {
	ListingID *domain.ListingID
	UserID    *domain.UserID
	BookingID *domain.BookingID
	Rating    *int
	Comment   *string
}

type reviews struct {
	storage storage.Storage
}

// New creates a Reviews service backed by the provided storage.
func New(storage storage.Storage) Reviews {
	return &reviews{storage: storage}
}

// Create validates and stores a review. The author is input.UserID when set,
// the actor otherwise.
func (r reviews) Create(ctx context.Context, actor domain.UserID, input Input) (*domain.Review, error) {
	if input.ListingID == nil {
		return nil, serrors.With(serrors.ErrBadRequest, "Listing ID is required")
	}
	review := domain.Review{ListingID: *input.ListingID}
	if err := applyInput(&review, input); err != nil {
		return nil, err
	}

	review.UserID = actor
	if input.UserID != nil {
		review.UserID = *input.UserID
	}
	if review.UserID == 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "User is required")
	}

	listing, err := r.storage.ListingByID(ctx, review.ListingID)
	if err != nil {
		return nil, fmt.Errorf("could not get listing: %w", err)
	}
	if listing == nil {
		return nil, serrors.With(serrors.ErrBadRequest, "Invalid listing ID")
	}

	user, err := r.storage.UserByID(ctx, review.UserID)
	if err != nil {
		return nil, fmt.Errorf("could not get user: %w", err)
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrBadRequest, "Invalid user ID")
	}

	if input.BookingID != nil {
		booking, err := r.storage.BookingByID(ctx, *input.BookingID)
		if err != nil {
			return nil, fmt.Errorf("could not get booking: %w", err)
		}
		switch {
		case booking == nil:
			return nil, serrors.With(serrors.ErrBadRequest, "Invalid booking ID")
		case booking.Status != domain.BookingStatusCompleted:
			return nil, serrors.With(serrors.ErrBadRequest, "Can only review completed bookings")
		case booking.ListingID != review.ListingID:
			return nil, serrors.With(serrors.ErrBadRequest, "Booking must be for the same listing being reviewed")
		}
		review.BookingID = &booking.ID
	}

	stored, err := r.storage.StoreReview(ctx, review)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			return nil, serrors.Wrap(serrors.ErrConflict, err, "You have already reviewed this listing")
		}

		return nil, fmt.Errorf("could not store review: %w", err)
	}

	return r.resolved(ctx, stored)
}

// Update changes the rating and comment of a review.
func (r reviews) Update(ctx context.Context, ID domain.ReviewID, input Input) (*domain.Review, error) {
	review, err := r.storage.ReviewByID(ctx, ID)
	if err != nil {
		return nil, fmt.Errorf("could not get review: %w", err)
	}
	if review == nil {
		return nil, serrors.With(serrors.ErrNotFound, "review not found")
	}

	if err := applyInput(review, input); err != nil {
		return nil, err
	}

	updated, err := r.storage.UpdateReview(ctx, *review)
	if err != nil {
		return nil, fmt.Errorf("could not update review: %w", err)
	}
	if updated == nil {
		return nil, serrors.With(serrors.ErrNotFound, "review not found")
	}

	return r.resolved(ctx, updated)
}

func (r reviews) Delete(ctx context.Context, ID domain.ReviewID) error {
	deleted, err := r.storage.DeleteReview(ctx, ID)
	if err != nil {
		return fmt.Errorf("could not delete review: %w", err)
	}
	if !deleted {
		return serrors.With(serrors.ErrNotFound, "review not found")
	}

	return nil
}

func (r reviews) Get(ctx context.Context, ID domain.ReviewID) (*domain.Review, error) {
	review, err := r.storage.ReviewByID(ctx, ID)
	if err != nil {
		return nil, fmt.Errorf("could not get review: %w", err)
	}
	if review == nil {
		return nil, serrors.With(serrors.ErrNotFound, "review not found")
	}

	return r.resolved(ctx, review)
}

// List returns a page of reviews, newest first, and the cursor of the next page.
func (r reviews) List(ctx context.Context,
	filter storage.ReviewFilter,
	cursor string,
	limit uint,
) ([]domain.Review, string, error) {
	after, err := storage.ParseCursor(cursor)
	if err != nil {
		return nil, "", serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
	}

	page, err := r.storage.Reviews(ctx, filter, after, limit)
	if err != nil {
		return nil, "", fmt.Errorf("could not get reviews: %w", err)
	}
	if err := resolve.Reviews(ctx, r.storage, page.Items); err != nil {
		return nil, "", err
	}

	return page.Items, page.Cursor(), nil
}

func (r reviews) resolved(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	out := []domain.Review{*review}
	if err := resolve.Reviews(ctx, r.storage, out); err != nil {
		return nil, err
	}

	return &out[0], nil
}

func applyInput(review *domain.Review, input Input) error {
	if input.Rating != nil {
		review.Rating = *input.Rating
	}
	if input.Comment != nil {
		review.Comment = strings.TrimSpace(*input.Comment)
	}

	if review.Rating < domain.MinRating || review.Rating > domain.MaxRating {
		return serrors.With(serrors.ErrBadRequest, "Rating must be between 1 and 5")
	}
	if review.Comment == "" {
		return serrors.With(serrors.ErrBadRequest, "Comment is required")
	}

	return nil
}
