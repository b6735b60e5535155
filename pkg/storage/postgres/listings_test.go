package postgres_test

import (
	"context"
	"testing"
	"time"
	"travel/pkg/domain"
	"travel/pkg/storage"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestPgSQL_Listings_CRUD(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	host := createUser(t, pg, "host")
	l := createListing(t, pg, host.ID)
	require.NotEqual(t, domain.ListingID{}, l.ID)
	require.True(t, l.PricePerNight.Equal(decimal.RequireFromString("100")))

	got, err := pg.ListingByID(ctx, l.ID)
	require.NoError(t, err)
	require.Equal(t, l.Name, got.Name)
	require.Zero(t, got.AverageRating)
	require.Zero(t, got.TotalReviews)

	l.Name = "Renamed"
	l.Available = false
	updated, err := pg.UpdateListing(ctx, *l)
	require.NoError(t, err)
	require.Equal(t, "Renamed", updated.Name)
	require.False(t, updated.Available)
	require.False(t, updated.UpdatedAt.Before(l.UpdatedAt))

	missing := *l
	missing.ID = domain.ListingID(uuid.New())
	res, err := pg.UpdateListing(ctx, missing)
	require.NoError(t, err)
	require.Nil(t, res)

	locked, err := pg.LockListing(ctx, l.ID)
	require.NoError(t, err)
	require.Equal(t, l.ID, locked.ID)

	deleted, err := pg.DeleteListing(ctx, l.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	deleted, err = pg.DeleteListing(ctx, l.ID)
	require.NoError(t, err)
	require.False(t, deleted)

	got, err = pg.ListingByID(ctx, l.ID)
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestPgSQL_Listings_FilterAndPaginate(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	host := createUser(t, pg, "host")
	other := createUser(t, pg, "other")
	cheap := createListing(t, pg, host.ID, func(l *domain.Listing) {
		l.Name = "Cheap hostel"
		l.Location = "Bahir Dar"
		l.PropertyType = domain.PropertyTypeHostel
		l.PricePerNight = decimal.RequireFromString("20")
		l.MaxGuests = 1
		l.Amenities = "breakfast"
	})
	time.Sleep(5 * time.Millisecond)
	villa := createListing(t, pg, other.ID, func(l *domain.Listing) {
		l.Name = "Lake villa"
		l.Location = "Hawassa"
		l.PropertyType = domain.PropertyTypeVilla
		l.PricePerNight = decimal.RequireFromString("350")
		l.MaxGuests = 8
		l.Amenities = "pool, wifi"
	})
	time.Sleep(5 * time.Millisecond)
	hidden := createListing(t, pg, host.ID, func(l *domain.Listing) {
		l.Name = "100% quiet flat"
		l.Available = false
	})

	ids := func(page storage.Page[domain.Listing]) []domain.ListingID {
		out := make([]domain.ListingID, 0, len(page.Items))
		for _, l := range page.Items {
			out = append(out, l.ID)
		}

		return out
	}
	yes := true
	minPrice := decimal.RequireFromString("50")
	maxPrice := decimal.RequireFromString("100")

	tests := []struct {
		name   string
		filter storage.ListingFilter
		want   []domain.ListingID
	}{
		{"no filter newest first", storage.ListingFilter{}, []domain.ListingID{hidden.ID, villa.ID, cheap.ID}},
		{"location icontains", storage.ListingFilter{Location: "bahir"}, []domain.ListingID{cheap.ID}},
		{"property type", storage.ListingFilter{PropertyType: domain.PropertyTypeVilla}, []domain.ListingID{villa.ID}},
		{"available", storage.ListingFilter{Available: &yes}, []domain.ListingID{villa.ID, cheap.ID}},
		{"price range", storage.ListingFilter{MinPrice: &minPrice, MaxPrice: &maxPrice}, []domain.ListingID{hidden.ID}},
		{"min guests", storage.ListingFilter{MinGuests: 5}, []domain.ListingID{villa.ID}},
		{"host", storage.ListingFilter{HostID: other.ID}, []domain.ListingID{villa.ID}},
		{"search amenities", storage.ListingFilter{Search: "POOL"}, []domain.ListingID{villa.ID}},
		{"search escapes wildcards", storage.ListingFilter{Search: "100%"}, []domain.ListingID{hidden.ID}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := pg.Listings(ctx, tt.filter, storage.Cursor{}, 10)
			require.NoError(t, err)
			require.Equal(t, tt.want, ids(page))
			require.Nil(t, page.NextCursor)
		})
	}

	t.Run("cursor pagination", func(t *testing.T) {
		page, err := pg.Listings(ctx, storage.ListingFilter{}, storage.Cursor{}, 2)
		require.NoError(t, err)
		require.Equal(t, []domain.ListingID{hidden.ID, villa.ID}, ids(page))
		require.NotNil(t, page.NextCursor)

		page, err = pg.Listings(ctx, storage.ListingFilter{}, *page.NextCursor, 2)
		require.NoError(t, err)
		require.Equal(t, []domain.ListingID{cheap.ID}, ids(page))
		require.Nil(t, page.NextCursor)
	})

	t.Run("by ids", func(t *testing.T) {
		got, err := pg.ListingsByIDs(ctx, cheap.ID, villa.ID, domain.ListingID(uuid.New()))
		require.NoError(t, err)
		require.Len(t, got, 2)
	})
}

func TestPgSQL_Listings_ReviewAggregates(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	host := createUser(t, pg, "host")
	l := createListing(t, pg, host.ID)
	for i, rating := range []int{5, 4, 2} {
		u := createUser(t, pg, "guest"+string(rune('a'+i)))
		_, err := pg.StoreReview(ctx, domain.Review{ListingID: l.ID, UserID: u.ID, Rating: rating, Comment: "ok"})
		require.NoError(t, err)
	}

	got, err := pg.ListingByID(ctx, l.ID)
	require.NoError(t, err)
	require.Equal(t, 3, got.TotalReviews)
	require.InDelta(t, 11.0/3.0, got.AverageRating, 0.0001)
}

func TestPgSQL_Listings_PaginateSameCreatedAt(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	host := createUser(t, pg, "host")
	// CURRENT_TIMESTAMP is fixed for a transaction, so all three share created_at
	require.NoError(t, pg.WithTx(ctx, func(tx storage.AllStorage) error {
		for range 3 {
			if _, err := tx.StoreListing(ctx, domain.Listing{
				HostID:        host.ID,
				Name:          "Twin room",
				Location:      "Gondar",
				PricePerNight: decimal.RequireFromString("40.00"),
				PropertyType:  domain.PropertyTypeHotel,
				MaxGuests:     2,
				Available:     true,
			}); err != nil {
				return err
			}
		}

		return nil
	}))

	seen := map[domain.ListingID]bool{}
	cursor := storage.Cursor{}
	for pages := 0; ; pages++ {
		require.Less(t, pages, 3)

		page, err := pg.Listings(ctx, storage.ListingFilter{}, cursor, 2)
		require.NoError(t, err)
		for _, l := range page.Items {
			require.False(t, seen[l.ID])
			seen[l.ID] = true
		}
		if page.NextCursor == nil {
			break
		}
		cursor = *page.NextCursor
	}
	require.Len(t, seen, 3)
}

func TestPgSQL_Listings_ZeroLimit(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	host := createUser(t, pg, "host")
	createListing(t, pg, host.ID)

	page, err := pg.Listings(context.Background(), storage.ListingFilter{}, storage.Cursor{}, 0)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	require.Nil(t, page.NextCursor)
}
