package postgres

import (
	"context"
	"fmt"
	"travel/pkg/domain"
	"travel/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"
)

const listingsTable = "listings"

// listingsQuery selects listings together with their review aggregates.
func (p *PgSQL) listingsQuery() *goqu.SelectDataset {
	return p.Builder.From(listingsTable).Select(
		goqu.T(listingsTable).All(),
		goqu.L(`COALESCE((SELECT AVG(r.rating)::float8 FROM reviews r WHERE r.listing_id = "listings"."id"), 0)`).
			As("average_rating"),
		goqu.L(`(SELECT COUNT(*) FROM reviews r WHERE r.listing_id = "listings"."id")`).
			As("total_reviews"),
	)
}

// StoreListing inserts a new listing and returns the stored row.
func (p *PgSQL) StoreListing(ctx context.Context, listing domain.Listing) (*domain.Listing, error) {
	row := PgListing{}
	row.FromDomain(listing)

	var inserted []PgListing
	err := p.Builder.Insert(listingsTable).
		Rows(row).
		Returning(&PgListing{}).
		Executor().
		ScanStructsContext(ctx, &inserted)
	if err != nil {
		return nil, fmt.Errorf("could not insert listing: %w", mapError(err))
	}
	if len(inserted) == 0 {
		return nil, fmt.Errorf("insert listing returned no rows")
	}

	return inserted[0].ToDomain(), nil
}

// UpdateListing overwrites the mutable columns of a listing.
func (p *PgSQL) UpdateListing(ctx context.Context, listing domain.Listing) (*domain.Listing, error) {
	row := PgListing{}
	row.FromDomain(listing)

	res, err := p.Builder.Update(listingsTable).
		Set(goqu.Record{
			"name":            row.Name,
			"description":     row.Description,
			"location":        row.Location,
			"price_per_night": row.PricePerNight,
			"property_type":   row.PropertyType,
			"max_guests":      row.MaxGuests,
			"bedrooms":        row.Bedrooms,
			"bathrooms":       row.Bathrooms,
			"amenities":       row.Amenities,
			"available":       row.Available,
			"updated_at":      goqu.L("NOW()"),
		}).
		Where(goqu.I("id").Eq(row.ID)).
		Executor().
		ExecContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not update listing: %w", mapError(err))
	}
	if n, err := res.RowsAffected(); err != nil {
		return nil, fmt.Errorf("could not get affected rows: %w", err)
	} else if n == 0 {
		return nil, nil //nolint: nilnil
	}

	return p.ListingByID(ctx, listing.ID)
}

// DeleteListing removes a listing together with its bookings and reviews.
func (p *PgSQL) DeleteListing(ctx context.Context, ID domain.ListingID) (bool, error) {
	res, err := p.Builder.Delete(listingsTable).
		Where(goqu.I("id").Eq(uuid.UUID(ID))).
		Executor().
		ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not delete listing: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not get affected rows: %w", err)
	}

	return n > 0, nil
}

// ListingByID fetches a listing with its review aggregates. It returns nil
// when not found.
func (p *PgSQL) ListingByID(ctx context.Context, ID domain.ListingID) (*domain.Listing, error) {
	var row PgListingWithStats
	found, err := p.listingsQuery().
		Where(goqu.I("listings.id").Eq(uuid.UUID(ID))).
		ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch listing: %w", err)
	}
	if !found {
		return nil, nil //nolint: nilnil
	}

	return row.ToDomain(), nil
}

// LockListing fetches a listing with FOR UPDATE. It only makes sense inside a
// transaction.
func (p *PgSQL) LockListing(ctx context.Context, ID domain.ListingID) (*domain.Listing, error) {
	var row PgListing
	found, err := p.Builder.From(listingsTable).
		Where(goqu.I("id").Eq(uuid.UUID(ID))).
		ForUpdate(exp.Wait).
		ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not lock listing: %w", err)
	}
	if !found {
		return nil, nil //nolint: nilnil
	}

	return row.ToDomain(), nil
}

// ListingsByIDs fetches the listings among the given IDs.
func (p *PgSQL) ListingsByIDs(ctx context.Context, IDs ...domain.ListingID) ([]domain.Listing, error) {
	if len(IDs) == 0 {
		return []domain.Listing{}, nil
	}
	vals := make([]interface{}, 0, len(IDs))
	for _, id := range IDs {
		vals = append(vals, uuid.UUID(id))
	}

	var rows []PgListingWithStats
	if err := p.listingsQuery().
		Where(goqu.I("listings.id").In(vals...)).
		ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch listings: %w", err)
	}

	return toDomain(rows, (*PgListingWithStats).ToDomain), nil
}

// Listings returns a page of listings matching the filter, newest first.
func (p *PgSQL) Listings(ctx context.Context,
	filter storage.ListingFilter,
	cursor storage.Cursor,
	limit uint,
) (storage.Page[domain.Listing], error) {
	limit = pageSize(limit)

	q := p.listingsQuery()
	if filter.Location != "" {
		q = q.Where(goqu.I("listings.location").ILike(likePattern(filter.Location)))
	}
	if filter.PropertyType != "" {
		q = q.Where(goqu.I("listings.property_type").Eq(string(filter.PropertyType)))
	}
	if filter.Available != nil {
		q = q.Where(goqu.I("listings.available").Eq(*filter.Available))
	}
	if filter.MinPrice != nil {
		q = q.Where(goqu.I("listings.price_per_night").Gte(*filter.MinPrice))
	}
	if filter.MaxPrice != nil {
		q = q.Where(goqu.I("listings.price_per_night").Lte(*filter.MaxPrice))
	}
	if filter.MinGuests > 0 {
		q = q.Where(goqu.I("listings.max_guests").Gte(filter.MinGuests))
	}
	if filter.HostID != 0 {
		q = q.Where(goqu.I("listings.host_id").Eq(int64(filter.HostID)))
	}
	if filter.Search != "" {
		pattern := likePattern(filter.Search)
		q = q.Where(goqu.Or(
			goqu.I("listings.name").ILike(pattern),
			goqu.I("listings.description").ILike(pattern),
			goqu.I("listings.amenities").ILike(pattern),
		))
	}
	q = afterCursor(q, goqu.I("listings.created_at"), goqu.I("listings.id"), cursor)

	var rows []PgListingWithStats
	if err := q.Order(goqu.I("listings.created_at").Desc(), goqu.I("listings.id").Desc()).
		Limit(limit + 1).
		ScanStructsContext(ctx, &rows); err != nil {
		return storage.Page[domain.Listing]{}, fmt.Errorf("could not fetch listings: %w", err)
	}

	return paginate(toDomain(rows, (*PgListingWithStats).ToDomain), limit, func(l domain.Listing) storage.Cursor {
		return storage.Cursor{CreatedAt: l.CreatedAt, ID: uuid.UUID(l.ID)}
	}), nil
}
