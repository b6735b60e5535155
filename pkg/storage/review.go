package storage

import (
	"context"
	"travel/pkg/domain"
)

// ReviewFilter narrows down review queries. Zero values disable a criterion.
type ReviewFilter struct {
	ListingID domain.ListingID
	UserID    domain.UserID
	MinRating int
}

// ReviewStorage defines persistence operations for reviews.
type ReviewStorage interface {
	// StoreReview inserts a review. ErrDuplicate is returned when the user
	// already reviewed the listing or the booking already has a review.
	StoreReview(ctx context.Context, review domain.Review) (*domain.Review, error)
	// UpdateReview overwrites the rating and comment of the review and returns
	// the updated row, or nil when it does not exist.
	UpdateReview(ctx context.Context, review domain.Review) (*domain.Review, error)
	// DeleteReview reports whether a review was deleted.
	DeleteReview(ctx context.Context, ID domain.ReviewID) (bool, error)
	// ReviewByID returns nil when the review does not exist.
	ReviewByID(ctx context.Context, ID domain.ReviewID) (*domain.Review, error)
	// Reviews returns a page of reviews created before the optional cursor.
	Reviews(ctx context.Context, filter ReviewFilter, cursor Cursor, limit uint) (Page[domain.Review], error)
}
