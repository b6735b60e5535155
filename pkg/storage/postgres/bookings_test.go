package postgres_test

import (
	"context"
	"testing"
	"time"
	"travel/pkg/domain"
	"travel/pkg/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPgSQL_Bookings_CRUD(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	host := createUser(t, pg, "host")
	guest := createUser(t, pg, "guest")
	l := createListing(t, pg, host.ID)

	b := createBooking(t, pg, l.ID, guest.ID, day("2030-03-10"), 3, domain.BookingStatusPaymentPending)
	require.Equal(t, day("2030-03-10"), b.CheckIn)
	require.Equal(t, day("2030-03-13"), b.CheckOut)
	require.Equal(t, 3, b.Nights())

	got, err := pg.BookingByID(ctx, b.ID)
	require.NoError(t, err)
	require.Equal(t, b.ID, got.ID)
	require.True(t, got.TotalPrice.Equal(b.TotalPrice))

	b.Guests = 3
	b.SpecialRequests = "late arrival"
	updated, err := pg.UpdateBooking(ctx, *b)
	require.NoError(t, err)
	require.Equal(t, 3, updated.Guests)
	require.Equal(t, "late arrival", updated.SpecialRequests)

	confirmed, err := pg.UpdateBookingStatus(ctx, b.ID, domain.BookingStatusConfirmed)
	require.NoError(t, err)
	require.Equal(t, domain.BookingStatusConfirmed, confirmed.Status)

	none, err := pg.UpdateBookingStatus(ctx, domain.BookingID(uuid.New()), domain.BookingStatusConfirmed)
	require.NoError(t, err)
	require.Nil(t, none)

	deleted, err := pg.DeleteBooking(ctx, b.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	got, err = pg.BookingByID(ctx, b.ID)
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestPgSQL_Bookings_Overlap(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	host := createUser(t, pg, "host")
	guest := createUser(t, pg, "guest")
	l := createListing(t, pg, host.ID)
	existing := createBooking(t, pg, l.ID, guest.ID, day("2030-05-10"), 5, domain.BookingStatusConfirmed)
	createBooking(t, pg, l.ID, guest.ID, day("2030-06-01"), 2, domain.BookingStatusCancelled)

	tests := []struct {
		name     string
		in, out  string
		exclude  *domain.BookingID
		expected int64
	}{
		{"inside", "2030-05-11", "2030-05-12", nil, 1},
		{"overlapping start", "2030-05-08", "2030-05-11", nil, 1},
		{"back to back before", "2030-05-05", "2030-05-10", nil, 0},
		{"back to back after", "2030-05-15", "2030-05-17", nil, 0},
		{"cancelled ignored", "2030-06-01", "2030-06-03", nil, 0},
		{"self excluded", "2030-05-11", "2030-05-12", &existing.ID, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := pg.CountOverlappingBookings(ctx,
				l.ID,
				day(tt.in),
				day(tt.out),
				domain.OccupyingBookingStatuses,
				tt.exclude)
			require.NoError(t, err)
			require.Equal(t, tt.expected, n)
		})
	}
}

func TestPgSQL_Bookings_ListExpireAndReminders(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	host := createUser(t, pg, "host")
	alice := createUser(t, pg, "alice")
	bob := createUser(t, pg, "bob")
	l := createListing(t, pg, host.ID)

	pending := createBooking(t, pg, l.ID, alice.ID, day("2030-01-01"), 2, domain.BookingStatusPaymentPending)
	time.Sleep(5 * time.Millisecond)
	confirmed := createBooking(t, pg, l.ID, bob.ID, day("2030-02-01"), 2, domain.BookingStatusConfirmed)
	time.Sleep(5 * time.Millisecond)
	createBooking(t, pg, l.ID, bob.ID, day("2030-02-01"), 1, domain.BookingStatusCancelled)
	payment := createPayment(t, pg, pending)

	t.Run("filter by user", func(t *testing.T) {
		page, err := pg.Bookings(ctx, storage.BookingFilter{UserID: alice.ID}, storage.Cursor{}, 10)
		require.NoError(t, err)
		require.Len(t, page.Items, 1)
		require.Equal(t, pending.ID, page.Items[0].ID)
	})

	t.Run("filter by status and paginate", func(t *testing.T) {
		page, err := pg.Bookings(ctx, storage.BookingFilter{ListingID: l.ID}, storage.Cursor{}, 2)
		require.NoError(t, err)
		require.Len(t, page.Items, 2)
		require.NotNil(t, page.NextCursor)

		page, err = pg.Bookings(ctx, storage.BookingFilter{Status: domain.BookingStatusConfirmed}, storage.Cursor{}, 2)
		require.NoError(t, err)
		require.Len(t, page.Items, 1)
		require.Equal(t, confirmed.ID, page.Items[0].ID)
	})

	t.Run("checking in on", func(t *testing.T) {
		got, err := pg.BookingsCheckingInOn(ctx, day("2030-02-01"), domain.BookingStatusConfirmed)
		require.NoError(t, err)
		require.Len(t, got, 1)
		require.Equal(t, confirmed.ID, got[0].ID)
	})

	t.Run("expire pending", func(t *testing.T) {
		ids, err := pg.ExpirePendingBookings(ctx, time.Now().Add(-time.Hour))
		require.NoError(t, err)
		require.Empty(t, ids)

		ids, err = pg.ExpirePendingBookings(ctx, time.Now().Add(time.Hour))
		require.NoError(t, err)
		require.Equal(t, []domain.BookingID{pending.ID}, ids)

		n, err := pg.CancelPendingPayments(ctx, ids...)
		require.NoError(t, err)
		require.Equal(t, int64(1), n)

		p, err := pg.PaymentByID(ctx, payment.ID)
		require.NoError(t, err)
		require.Equal(t, domain.PaymentStatusCancelled, p.Status)

		b, err := pg.BookingByID(ctx, pending.ID)
		require.NoError(t, err)
		require.Equal(t, domain.BookingStatusCancelled, b.Status)
	})
}
