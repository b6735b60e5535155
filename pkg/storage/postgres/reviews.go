package postgres

import (
	"context"
	"fmt"
	"travel/pkg/domain"
	"travel/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const reviewsTable = "reviews"

// StoreReview inserts a new review and returns the stored row.
func (p *PgSQL) StoreReview(ctx context.Context, review domain.Review) (*domain.Review, error) {
	row := PgReview{}
	row.FromDomain(review)

	var inserted []PgReview
	err := p.Builder.Insert(reviewsTable).
		Rows(row).
		Returning(&PgReview{}).
		Executor().
		ScanStructsContext(ctx, &inserted)
	if err != nil {
		return nil, fmt.Errorf("could not insert review: %w", mapError(err))
	}
	if len(inserted) == 0 {
		return nil, fmt.Errorf("insert review returned no rows")
	}

	return inserted[0].ToDomain(), nil
}

// UpdateReview overwrites the rating and comment of a review.
func (p *PgSQL) UpdateReview(ctx context.Context, review domain.Review) (*domain.Review, error) {
	var row PgReview
	found, err := p.Builder.Update(reviewsTable).
		Set(goqu.Record{
			"rating":     review.Rating,
			"comment":    review.Comment,
			"updated_at": goqu.L("NOW()"),
		}).
		Where(goqu.I("id").Eq(uuid.UUID(review.ID))).
		Returning(&PgReview{}).
		Executor().
		ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update review: %w", err)
	}
	if !found {
		return nil, nil //nolint: nilnil
	}

	return row.ToDomain(), nil
}

// DeleteReview removes a review.
func (p *PgSQL) DeleteReview(ctx context.Context, ID domain.ReviewID) (bool, error) {
	res, err := p.Builder.Delete(reviewsTable).
		Where(goqu.I("id").Eq(uuid.UUID(ID))).
		Executor().
		ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not delete review: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not get affected rows: %w", err)
	}

	return n > 0, nil
}

// ReviewByID fetches a review by its ID. It returns nil when not found.
func (p *PgSQL) ReviewByID(ctx context.Context, ID domain.ReviewID) (*domain.Review, error) {
	var row PgReview
	found, err := p.Builder.From(reviewsTable).
		Where(goqu.I("id").Eq(uuid.UUID(ID))).
		ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch review: %w", err)
	}
	if !found {
		return nil, nil //nolint: nilnil
	}

	return row.ToDomain(), nil
}

// Reviews returns a page of reviews matching the filter, newest first.
func (p *PgSQL) Reviews(ctx context.Context,
	filter storage.ReviewFilter,
	cursor storage.Cursor,
	limit uint,
) (storage.Page[domain.Review], error) {
	limit = pageSize(limit)

	q := p.Builder.From(reviewsTable)
	if filter.ListingID != (domain.ListingID{}) {
		q = q.Where(goqu.I("listing_id").Eq(uuid.UUID(filter.ListingID)))
	}
	if filter.UserID != 0 {
		q = q.Where(goqu.I("user_id").Eq(int64(filter.UserID)))
	}
	if filter.MinRating > 0 {
		q = q.Where(goqu.I("rating").Gte(filter.MinRating))
	}
	q = afterCursor(q, goqu.I("created_at"), goqu.I("id"), cursor)

	var rows []PgReview
	if err := q.Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(limit + 1).
		ScanStructsContext(ctx, &rows); err != nil {
		return storage.Page[domain.Review]{}, fmt.Errorf("could not fetch reviews: %w", err)
	}

	return paginate(toDomain(rows, (*PgReview).ToDomain), limit, func(r domain.Review) storage.Cursor {
		return storage.Cursor{CreatedAt: r.CreatedAt, ID: uuid.UUID(r.ID)}
	}), nil
}
