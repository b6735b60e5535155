package postgres_test

import (
	"context"
	"testing"
	"time"
	"travel/pkg/domain"
	"travel/pkg/storage/postgres"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func createUser(t *testing.T, pg *postgres.PgSQL, username string) *domain.User {
	t.Helper()

	u, err := pg.StoreUser(context.Background(), domain.User{
		Username:  username,
		FirstName: "Test",
		LastName:  username,
		Email:     username + "@example.com",
	})
	require.NoError(t, err)

	return u
}

func createListing(t *testing.T, pg *postgres.PgSQL, hostID domain.UserID, mutate ...func(*domain.Listing)) *domain.Listing {
	t.Helper()

	l := domain.Listing{
		HostID:        hostID,
		Name:          "Sea view apartment",
		Description:   "Bright apartment close to the beach",
		Location:      "Addis Ababa",
		PricePerNight: decimal.RequireFromString("100.00"),
		PropertyType:  domain.PropertyTypeApartment,
		MaxGuests:     4,
		Bedrooms:      2,
		Bathrooms:     1,
		Amenities:     "wifi, parking",
		Available:     true,
	}
	for _, m := range mutate {
		m(&l)
	}

	out, err := pg.StoreListing(context.Background(), l)
	require.NoError(t, err)

	return out
}

func createBooking(t *testing.T,
	pg *postgres.PgSQL,
	listingID domain.ListingID,
	userID domain.UserID,
	checkIn time.Time,
	nights int,
	status domain.BookingStatus,
) *domain.Booking {
	t.Helper()

	b, err := pg.StoreBooking(context.Background(), domain.Booking{
		ListingID:  listingID,
		UserID:     userID,
		CheckIn:    checkIn,
		CheckOut:   checkIn.AddDate(0, 0, nights),
		Guests:     2,
		TotalPrice: decimal.NewFromInt(int64(100 * nights)),
		Status:     status,
	})
	require.NoError(t, err)

	return b
}

func createPayment(t *testing.T, pg *postgres.PgSQL, b *domain.Booking) *domain.Payment {
	t.Helper()

	p, err := pg.StorePayment(context.Background(), domain.Payment{
		BookingID:     b.ID,
		Amount:        b.TotalPrice,
		Currency:      "ETB",
		Status:        domain.PaymentStatusPending,
		Reference:     domain.NewPaymentReference(b.ID, time.Now()) + "-" + uuid.NewString()[:4],
		CustomerEmail: "guest@example.com",
		CustomerName:  "Guest",
	})
	require.NoError(t, err)

	return p
}

func day(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}

	return t
}
