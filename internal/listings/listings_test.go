package listings_test

import (
	"context"
	"net/url"
	"strings"
	"testing"
	"time"
	mockbookings "travel/internal/bookings/mock"
	"travel/internal/listings"
	mockreviews "travel/internal/reviews/mock"
	"travel/pkg/domain"
	"travel/pkg/serrors"
	"travel/pkg/storage"
	mockstorage "travel/pkg/storage/mock"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func ptr[T any](v T) *T { return &v }

type fixture struct {
	st       *mockstorage.MockStorage
	reviews  *mockreviews.MockReviews
	bookings *mockbookings.MockBookings
	svc      listings.Listings
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := &fixture{
		st:       mockstorage.NewMockStorage(ctrl),
		reviews:  mockreviews.NewMockReviews(ctrl),
		bookings: mockbookings.NewMockBookings(ctrl),
	}
	f.svc = listings.New(f.st, f.reviews, f.bookings)

	return f
}

func validInput() listings.Input {
	return listings.Input{
		Name:          ptr("Cozy loft"),
		Description:   ptr("Top floor loft near Bole"),
		Location:      ptr("Addis Ababa"),
		PricePerNight: ptr(decimal.RequireFromString("75.499")),
	}
}

func TestListings_Create_Defaults(t *testing.T) {
	f := newFixture(t)
	host := domain.User{ID: 4, Username: "host"}

	f.st.EXPECT().UserByID(gomock.Any(), host.ID).Return(&host, nil)
	f.st.EXPECT().StoreListing(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, l domain.Listing) (*domain.Listing, error) {
			require.Equal(t, host.ID, l.HostID)
			require.Equal(t, domain.PropertyTypeApartment, l.PropertyType)
			require.Equal(t, 1, l.MaxGuests)
			require.Equal(t, 1, l.Bedrooms)
			require.Equal(t, 1, l.Bathrooms)
			require.True(t, l.Available)
			require.Equal(t, "75.5", l.PricePerNight.String())
			l.ID = domain.ListingID(uuid.New())

			return &l, nil
		})

	got, err := f.svc.Create(context.Background(), host.ID, validInput())
	require.NoError(t, err)
	require.Equal(t, "host", got.Host.Username)
}

func TestListings_Create_ExplicitHost(t *testing.T) {
	f := newFixture(t)
	in := validInput()
	in.HostID = ptr(domain.UserID(9))

	f.st.EXPECT().UserByID(gomock.Any(), domain.UserID(9)).Return(nil, nil)

	_, err := f.svc.Create(context.Background(), 1, in)
	require.ErrorIs(t, err, serrors.ErrBadRequest)
	require.EqualError(t, err, "Invalid host ID")
}

func TestListings_Create_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(in *listings.Input)
		actor   domain.UserID
		wantMsg string
	}{
		{name: "no host", wantMsg: "Host is required"},
		{name: "missing name", actor: 1, mutate: func(in *listings.Input) { in.Name = nil }, wantMsg: "Name is required"},
		{
			name:    "long name",
			actor:   1,
			mutate:  func(in *listings.Input) { in.Name = ptr(strings.Repeat("a", 201)) },
			wantMsg: "Name cannot exceed 200 characters",
		},
		{
			name:    "blank description",
			actor:   1,
			mutate:  func(in *listings.Input) { in.Description = ptr("  ") },
			wantMsg: "Description is required",
		},
		{
			name:    "zero price",
			actor:   1,
			mutate:  func(in *listings.Input) { in.PricePerNight = ptr(decimal.Zero) },
			wantMsg: "Price per night must be positive",
		},
		{
			name:    "unknown property type",
			actor:   1,
			mutate:  func(in *listings.Input) { in.PropertyType = ptr(domain.PropertyType("castle")) },
			wantMsg: `"castle" is not a valid property type`,
		},
		{
			name:    "no guests",
			actor:   1,
			mutate:  func(in *listings.Input) { in.MaxGuests = ptr(0) },
			wantMsg: "Max guests must be at least 1",
		},
		{
			name:    "too many guests",
			actor:   1,
			mutate:  func(in *listings.Input) { in.MaxGuests = ptr(21) },
			wantMsg: "Max guests cannot exceed 20",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			in := validInput()
			if tt.mutate != nil {
				tt.mutate(&in)
			}

			_, err := f.svc.Create(context.Background(), tt.actor, in)
			require.ErrorIs(t, err, serrors.ErrBadRequest)
			require.EqualError(t, err, tt.wantMsg)
		})
	}
}

func TestListings_Update_Partial(t *testing.T) {
	f := newFixture(t)
	id := domain.ListingID(uuid.New())
	existing := domain.Listing{
		ID:            id,
		HostID:        3,
		Name:          "Old name",
		Description:   "desc",
		Location:      "Gondar",
		PricePerNight: decimal.NewFromInt(40),
		PropertyType:  domain.PropertyTypeHouse,
		MaxGuests:     3,
		Available:     true,
	}

	f.st.EXPECT().ListingByID(gomock.Any(), id).Return(&existing, nil)
	f.st.EXPECT().UpdateListing(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, l domain.Listing) (*domain.Listing, error) {
			require.Equal(t, "Old name", l.Name)
			require.False(t, l.Available)
			require.Equal(t, domain.PropertyTypeHouse, l.PropertyType)

			return &l, nil
		})
	f.st.EXPECT().UsersByIDs(gomock.Any(), domain.UserID(3)).Return([]domain.User{{ID: 3}}, nil)

	got, err := f.svc.Update(context.Background(), id, listings.Input{Available: ptr(false)})
	require.NoError(t, err)
	require.Equal(t, domain.UserID(3), got.Host.ID)
}

func TestListings_NotFound(t *testing.T) {
	f := newFixture(t)
	id := domain.ListingID(uuid.New())

	f.st.EXPECT().ListingByID(gomock.Any(), id).Return(nil, nil).Times(4)
	f.st.EXPECT().DeleteListing(gomock.Any(), id).Return(false, nil)

	_, err := f.svc.Get(context.Background(), id)
	require.ErrorIs(t, err, serrors.ErrNotFound)
	_, err = f.svc.Update(context.Background(), id, validInput())
	require.ErrorIs(t, err, serrors.ErrNotFound)
	_, _, err = f.svc.Reviews(context.Background(), id, "", 20)
	require.ErrorIs(t, err, serrors.ErrNotFound)
	_, _, err = f.svc.Bookings(context.Background(), id, "", 20)
	require.ErrorIs(t, err, serrors.ErrNotFound)
	require.ErrorIs(t, f.svc.Delete(context.Background(), id), serrors.ErrNotFound)
}

func TestListings_SubCollections(t *testing.T) {
	f := newFixture(t)
	id := domain.ListingID(uuid.New())

	f.st.EXPECT().ListingByID(gomock.Any(), id).Return(&domain.Listing{ID: id}, nil).Times(2)
	f.reviews.EXPECT().List(gomock.Any(), storage.ReviewFilter{ListingID: id}, "c1", uint(10)).
		Return([]domain.Review{{Rating: 5}}, "c2", nil)
	f.bookings.EXPECT().List(gomock.Any(), storage.BookingFilter{ListingID: id}, "", uint(10)).
		Return([]domain.Booking{{}}, "", nil)

	revs, next, err := f.svc.Reviews(context.Background(), id, "c1", 10)
	require.NoError(t, err)
	require.Len(t, revs, 1)
	require.Equal(t, "c2", next)

	bks, _, err := f.svc.Bookings(context.Background(), id, "", 10)
	require.NoError(t, err)
	require.Len(t, bks, 1)
}

func TestListings_Search(t *testing.T) {
	f := newFixture(t)
	next := storage.Cursor{
		CreatedAt: time.Date(2026, 4, 1, 8, 30, 0, 0, time.UTC),
		ID:        uuid.MustParse("1f2e3d4c-5b6a-4978-8695-a4b3c2d1e0f9"),
	}

	f.st.EXPECT().Listings(gomock.Any(),
		storage.ListingFilter{Location: "addis", Search: "pool"},
		storage.Cursor{},
		uint(20)).
		Return(storage.Page[domain.Listing]{Items: []domain.Listing{{HostID: 1}}, NextCursor: &next}, nil)
	f.st.EXPECT().UsersByIDs(gomock.Any(), domain.UserID(1)).Return([]domain.User{{ID: 1}}, nil)

	items, cursor, err := f.svc.Search(context.Background(), storage.ListingFilter{Location: "addis"}, " pool ", "", 20)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.NotNil(t, items[0].Host)
	require.Equal(t, "2026-04-01T08:30:00Z_1f2e3d4c-5b6a-4978-8695-a4b3c2d1e0f9", cursor)
}

func TestParseFilter(t *testing.T) {
	q := url.Values{
		"location":      {" Addis "},
		"property_type": {"villa"},
		"available":     {"YES"},
		"min_price":     {"50.5"},
		"max_price":     {"abc"},
		"guests":        {"3"},
	}

	f := listings.ParseFilter(q)
	require.Equal(t, "Addis", f.Location)
	require.Equal(t, domain.PropertyTypeVilla, f.PropertyType)
	require.NotNil(t, f.Available)
	require.True(t, *f.Available)
	require.Equal(t, "50.5", f.MinPrice.String())
	require.Nil(t, f.MaxPrice)
	require.Equal(t, 3, f.MinGuests)

	f = listings.ParseFilter(url.Values{"available": {"no"}, "guests": {"many"}})
	require.NotNil(t, f.Available)
	require.False(t, *f.Available)
	require.Zero(t, f.MinGuests)

	f = listings.ParseFilter(url.Values{})
	require.Nil(t, f.Available)
	require.Nil(t, f.MinPrice)
}
