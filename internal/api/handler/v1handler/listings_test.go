package v1handler_test

import (
	"context"
	"net/http"
	"testing"
	"time"
	"travel/internal/api/handler/v1handler"
	"travel/internal/listings"
	"travel/pkg/domain"
	"travel/pkg/serrors"
	"travel/pkg/storage"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func sampleListing() *domain.Listing {
	now := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

	return &domain.Listing{
		ID:            domain.ListingID(uuid.New()),
		HostID:        3,
		Host:          &domain.User{ID: 3, Username: "host", FirstName: "Abebe", LastName: "Kebede"},
		Name:          "Lakeside cabin",
		Description:   "Quiet cabin by the lake",
		Location:      "Bishoftu",
		PricePerNight: decimal.RequireFromString("150"),
		PropertyType:  domain.PropertyTypeHouse,
		MaxGuests:     4,
		Bedrooms:      2,
		Bathrooms:     1,
		Amenities:     "wifi, parking",
		Available:     true,
		AverageRating: 4.5,
		TotalReviews:  2,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func TestCreateListing(t *testing.T) {
	f := newFixture(t)
	l := sampleListing()

	f.listings.EXPECT().Create(gomock.Any(), domain.UserID(0), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ domain.UserID, in listings.Input) (*domain.Listing, error) {
			require.NotNil(t, in.HostID)
			require.Equal(t, domain.UserID(3), *in.HostID)
			require.Equal(t, "Lakeside cabin", *in.Name)
			require.True(t, decimal.RequireFromString("150.5").Equal(*in.PricePerNight))
			require.Equal(t, domain.PropertyTypeHouse, *in.PropertyType)
			require.Nil(t, in.Bedrooms)

			return l, nil
		})

	rec := f.do(t, http.MethodPost, "/v1/listings/",
		`{"host_id":3,"name":"Lakeside cabin","price_per_night":"150.5","property_type":"house"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	got := decode[v1handler.Listing](t, rec)
	require.Equal(t, uuid.UUID(l.ID), got.ListingID)
	require.Equal(t, "150.00", got.PricePerNight)
	require.Equal(t, []string{"wifi", "parking"}, got.AmenitiesList)
	require.Equal(t, "host", got.Host.Username)
	require.Equal(t, 4.5, got.AverageRating)
}

func TestCreateListing_ValidationError(t *testing.T) {
	f := newFixture(t)

	f.listings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, serrors.With(serrors.ErrBadRequest, "Max guests cannot exceed 20"))

	rec := f.do(t, http.MethodPost, "/v1/listings/", `{"max_guests":25}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, v1handler.Error{Code: "BAD_REQUEST", Message: "Max guests cannot exceed 20"},
		decode[v1handler.Error](t, rec))
}

func TestGetListing(t *testing.T) {
	f := newFixture(t)
	l := sampleListing()

	f.listings.EXPECT().Get(gomock.Any(), l.ID).Return(l, nil)

	rec := f.do(t, http.MethodGet, "/v1/listings/"+l.ID.String()+"/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "Lakeside cabin", decode[v1handler.Listing](t, rec).Name)
}

func TestGetListing_NotFound(t *testing.T) {
	f := newFixture(t)
	id := domain.ListingID(uuid.New())

	f.listings.EXPECT().Get(gomock.Any(), id).Return(nil, serrors.With(serrors.ErrNotFound, "Listing not found"))

	rec := f.do(t, http.MethodGet, "/v1/listings/"+id.String()+"/", "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = f.do(t, http.MethodGet, "/v1/listings/not-a-uuid/", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateListing_Patch(t *testing.T) {
	f := newFixture(t)
	l := sampleListing()
	l.Available = false

	f.listings.EXPECT().Update(gomock.Any(), l.ID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ domain.ListingID, in listings.Input) (*domain.Listing, error) {
			require.NotNil(t, in.Available)
			require.False(t, *in.Available)
			require.Nil(t, in.Name)

			return l, nil
		})

	rec := f.do(t, http.MethodPatch, "/v1/listings/"+l.ID.String()+"/", `{"available":false}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.False(t, decode[v1handler.Listing](t, rec).Available)
}

func TestDeleteListing(t *testing.T) {
	f := newFixture(t)
	id := domain.ListingID(uuid.New())

	f.listings.EXPECT().Delete(gomock.Any(), id).Return(nil)

	rec := f.do(t, http.MethodDelete, "/v1/listings/"+id.String()+"/", "")
	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestSearchListings(t *testing.T) {
	f := newFixture(t)
	l := sampleListing()
	available := true

	f.listings.EXPECT().Search(gomock.Any(),
		storage.ListingFilter{Location: "Bishoftu", Available: &available, MinGuests: 2},
		"lake", "", uint(v1handler.DefaultLimit)).
		Return([]domain.Listing{*l}, "next-page", nil)

	rec := f.do(t, http.MethodGet, "/v1/listings/search/?search=lake&location=Bishoftu&available=yes&guests=2", "")
	require.Equal(t, http.StatusOK, rec.Code)

	page := decode[v1handler.Page[v1handler.Listing]](t, rec)
	require.Len(t, page.Items, 1)
	require.NotNil(t, page.NextCursor)
	require.Equal(t, "next-page", *page.NextCursor)
}

func TestListingSubCollections(t *testing.T) {
	f := newFixture(t)
	id := domain.ListingID(uuid.New())
	bookingID := domain.BookingID(uuid.New())

	f.listings.EXPECT().Reviews(gomock.Any(), id, "", uint(5)).
		Return([]domain.Review{{ID: domain.ReviewID(uuid.New()), ListingID: id, Rating: 5, BookingID: &bookingID}}, "", nil)
	f.listings.EXPECT().Bookings(gomock.Any(), id, "", uint(v1handler.DefaultLimit)).
		Return(nil, "", serrors.With(serrors.ErrNotFound, "Listing not found"))

	rec := f.do(t, http.MethodGet, "/v1/listings/"+id.String()+"/reviews/?limit=5", "")
	require.Equal(t, http.StatusOK, rec.Code)
	reviews := decode[v1handler.Page[v1handler.Review]](t, rec)
	require.Len(t, reviews.Items, 1)
	require.Equal(t, uuid.UUID(bookingID), *reviews.Items[0].BookingID)
	require.Nil(t, reviews.NextCursor)

	rec = f.do(t, http.MethodGet, "/v1/listings/"+id.String()+"/bookings/", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}
