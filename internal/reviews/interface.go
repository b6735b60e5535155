package reviews

import (
	"context"
	"travel/pkg/domain"
	"travel/pkg/storage"
)

//go:generate mockgen -package mockreviews -source=interface.go -destination=mock/mockreviews.go *
type Reviews interface {
	Create(ctx context.Context, actor domain.UserID, input Input) (*domain.Review, error)
	Update(ctx context.Context, ID domain.ReviewID, input Input) (*domain.Review, error)
	Delete(ctx context.Context, ID domain.ReviewID) error
	Get(ctx context.Context, ID domain.ReviewID) (*domain.Review, error)
	List(ctx context.Context, filter storage.ReviewFilter, cursor string, limit uint) ([]domain.Review, string, error)
}
