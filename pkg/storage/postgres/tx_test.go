package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"travel/pkg/domain"
	"travel/pkg/storage"
	"travel/pkg/storage/postgres"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// requireUser asserts whether a user with the given username is visible outside any transaction.
func requireUser(t *testing.T, pg *postgres.PgSQL, username string, exists bool) {
	t.Helper()

	u, err := pg.UserByUsername(context.Background(), username)
	require.NoError(t, err)
	if exists {
		require.NotNil(t, u)
		require.Equal(t, username, u.Username)
	} else {
		require.Nil(t, u)
	}
}

func TestPgSQL_Begin(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)
	inner, ok := txStorage.(*postgres.PgSQL)
	require.True(t, ok)
	_, isTx := inner.DB.(*sql.Tx)
	require.True(t, isTx)

	_, err = inner.Begin(ctx)
	require.ErrorIs(t, err, storage.ErrAlreadyInTx)

	require.NoError(t, inner.Rollback())
}

func TestPgSQL_Commit(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	require.ErrorIs(t, pg.Commit(), storage.ErrNotInTx)

	txStorage, err := pg.Begin(context.Background())
	require.NoError(t, err)
	host := createUser(t, txStorage.(*postgres.PgSQL), "committed-host")
	createListing(t, txStorage.(*postgres.PgSQL), host.ID)

	// uncommitted rows stay invisible to the pool
	requireUser(t, pg, "committed-host", false)

	require.NoError(t, txStorage.Commit())
	requireUser(t, pg, "committed-host", true)

	page, err := pg.Listings(context.Background(), storage.ListingFilter{}, storage.Cursor{}, 10)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	require.Equal(t, host.ID, page.Items[0].HostID)
}

func TestPgSQL_Rollback(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	require.ErrorIs(t, pg.Rollback(), storage.ErrNotInTx)

	txStorage, err := pg.Begin(context.Background())
	require.NoError(t, err)
	createUser(t, txStorage.(*postgres.PgSQL), "discarded-guest")

	require.NoError(t, txStorage.Rollback())
	requireUser(t, pg, "discarded-guest", false)
}

func TestPgSQL_WithTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	host := createUser(t, pg, "host")
	listing := createListing(t, pg, host.ID)
	checkIn := day("2026-08-01")

	err := pg.WithTx(ctx, func(tx storage.AllStorage) error {
		guest, err := tx.StoreUser(ctx, domain.User{Username: "guest", Email: "guest@example.com"})
		if err != nil {
			return err //nolint: wrapcheck
		}
		_, err = tx.StoreBooking(ctx, domain.Booking{
			ListingID:  listing.ID,
			UserID:     guest.ID,
			CheckIn:    checkIn,
			CheckOut:   checkIn.AddDate(0, 0, 2),
			Guests:     1,
			TotalPrice: listing.PricePerNight.Mul(decimal.NewFromInt(2)),
			Status:     domain.BookingStatusPending,
		})

		return err //nolint: wrapcheck
	})
	require.NoError(t, err)
	requireUser(t, pg, "guest", true)

	err = pg.WithTx(ctx, func(tx storage.AllStorage) error {
		if _, err := tx.StoreUser(ctx, domain.User{Username: "ghost", Email: "ghost@example.com"}); err != nil {
			return err //nolint: wrapcheck
		}

		return errors.New("boom")
	})
	require.EqualError(t, err, "boom")
	requireUser(t, pg, "ghost", false)
}
