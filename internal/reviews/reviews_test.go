package reviews_test

import (
	"context"
	"fmt"
	"testing"
	"time"
	"travel/internal/reviews"
	"travel/pkg/domain"
	"travel/pkg/serrors"
	"travel/pkg/storage"
	mockstorage "travel/pkg/storage/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func ptr[T any](v T) *T { return &v }

func newTestReviews(t *testing.T) (*mockstorage.MockStorage, reviews.Reviews) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)

	return st, reviews.New(st)
}

// expectResolve accepts the lookups made to fill in review relations.
func expectResolve(st *mockstorage.MockStorage) {
	st.EXPECT().ListingsByIDs(gomock.Any(), gomock.Any()).Return([]domain.Listing{}, nil).AnyTimes()
	st.EXPECT().UsersByIDs(gomock.Any(), gomock.Any()).Return([]domain.User{}, nil).AnyTimes()
}

func TestReviews_Create(t *testing.T) {
	st, svc := newTestReviews(t)
	listingID := domain.ListingID(uuid.New())
	actor := domain.UserID(3)

	st.EXPECT().ListingByID(gomock.Any(), listingID).Return(&domain.Listing{ID: listingID}, nil)
	st.EXPECT().UserByID(gomock.Any(), actor).Return(&domain.User{ID: actor}, nil)
	st.EXPECT().StoreReview(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, r domain.Review) (*domain.Review, error) {
			require.Equal(t, actor, r.UserID)
			require.Equal(t, 4, r.Rating)
			require.Equal(t, "Lovely stay", r.Comment)
			require.Nil(t, r.BookingID)
			r.ID = domain.ReviewID(uuid.New())

			return &r, nil
		})
	expectResolve(st)

	got, err := svc.Create(context.Background(), actor, reviews.Input{
		ListingID: &listingID,
		Rating:    ptr(4),
		Comment:   ptr("  Lovely stay "),
	})
	require.NoError(t, err)
	require.NotEqual(t, domain.ReviewID{}, got.ID)
}

func TestReviews_Create_Validation(t *testing.T) {
	listingID := domain.ListingID(uuid.New())

	tests := []struct {
		name    string
		actor   domain.UserID
		input   reviews.Input
		wantMsg string
	}{
		{
			name:    "missing listing",
			actor:   1,
			input:   reviews.Input{Rating: ptr(3), Comment: ptr("ok")},
			wantMsg: "Listing ID is required",
		},
		{
			name:    "rating too high",
			actor:   1,
			input:   reviews.Input{ListingID: &listingID, Rating: ptr(6), Comment: ptr("ok")},
			wantMsg: "Rating must be between 1 and 5",
		},
		{
			name:    "rating missing",
			actor:   1,
			input:   reviews.Input{ListingID: &listingID, Comment: ptr("ok")},
			wantMsg: "Rating must be between 1 and 5",
		},
		{
			name:    "blank comment",
			actor:   1,
			input:   reviews.Input{ListingID: &listingID, Rating: ptr(5), Comment: ptr("   ")},
			wantMsg: "Comment is required",
		},
		{
			name:    "anonymous without user",
			input:   reviews.Input{ListingID: &listingID, Rating: ptr(5), Comment: ptr("ok")},
			wantMsg: "User is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, svc := newTestReviews(t)

			_, err := svc.Create(context.Background(), tt.actor, tt.input)
			require.ErrorIs(t, err, serrors.ErrBadRequest)
			require.EqualError(t, err, tt.wantMsg)
		})
	}
}

func TestReviews_Create_BookingRules(t *testing.T) {
	listingID := domain.ListingID(uuid.New())
	bookingID := domain.BookingID(uuid.New())

	tests := []struct {
		name    string
		booking *domain.Booking
		wantMsg string
	}{
		{name: "unknown booking", wantMsg: "Invalid booking ID"},
		{
			name:    "not completed",
			booking: &domain.Booking{ID: bookingID, ListingID: listingID, Status: domain.BookingStatusConfirmed},
			wantMsg: "Can only review completed bookings",
		},
		{
			name: "other listing",
			booking: &domain.Booking{
				ID:        bookingID,
				ListingID: domain.ListingID(uuid.New()),
				Status:    domain.BookingStatusCompleted,
			},
			wantMsg: "Booking must be for the same listing being reviewed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, svc := newTestReviews(t)
			st.EXPECT().ListingByID(gomock.Any(), listingID).Return(&domain.Listing{ID: listingID}, nil)
			st.EXPECT().UserByID(gomock.Any(), domain.UserID(9)).Return(&domain.User{ID: 9}, nil)
			st.EXPECT().BookingByID(gomock.Any(), bookingID).Return(tt.booking, nil)

			_, err := svc.Create(context.Background(), 1, reviews.Input{
				ListingID: &listingID,
				UserID:    ptr(domain.UserID(9)),
				BookingID: &bookingID,
				Rating:    ptr(5),
				Comment:   ptr("great"),
			})
			require.ErrorIs(t, err, serrors.ErrBadRequest)
			require.EqualError(t, err, tt.wantMsg)
		})
	}
}

func TestReviews_Create_Duplicate(t *testing.T) {
	st, svc := newTestReviews(t)
	listingID := domain.ListingID(uuid.New())

	st.EXPECT().ListingByID(gomock.Any(), listingID).Return(&domain.Listing{ID: listingID}, nil)
	st.EXPECT().UserByID(gomock.Any(), domain.UserID(1)).Return(&domain.User{ID: 1}, nil)
	st.EXPECT().StoreReview(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("%w: reviews_listing_user_key", storage.ErrDuplicate))

	_, err := svc.Create(context.Background(), 1, reviews.Input{
		ListingID: &listingID,
		Rating:    ptr(5),
		Comment:   ptr("again"),
	})
	require.ErrorIs(t, err, serrors.ErrConflict)
}

func TestReviews_Create_InvalidListing(t *testing.T) {
	st, svc := newTestReviews(t)
	listingID := domain.ListingID(uuid.New())
	st.EXPECT().ListingByID(gomock.Any(), listingID).Return(nil, nil)

	_, err := svc.Create(context.Background(), 1, reviews.Input{
		ListingID: &listingID,
		Rating:    ptr(5),
		Comment:   ptr("nice"),
	})
	require.ErrorIs(t, err, serrors.ErrBadRequest)
	require.EqualError(t, err, "Invalid listing ID")
}

func TestReviews_Update(t *testing.T) {
	st, svc := newTestReviews(t)
	id := domain.ReviewID(uuid.New())
	existing := domain.Review{ID: id, Rating: 2, Comment: "meh"}

	st.EXPECT().ReviewByID(gomock.Any(), id).Return(&existing, nil)
	st.EXPECT().UpdateReview(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, r domain.Review) (*domain.Review, error) {
			require.Equal(t, 5, r.Rating)
			require.Equal(t, "meh", r.Comment)

			return &r, nil
		})
	expectResolve(st)

	got, err := svc.Update(context.Background(), id, reviews.Input{Rating: ptr(5)})
	require.NoError(t, err)
	require.Equal(t, 5, got.Rating)
}

func TestReviews_NotFound(t *testing.T) {
	st, svc := newTestReviews(t)
	id := domain.ReviewID(uuid.New())

	st.EXPECT().ReviewByID(gomock.Any(), id).Return(nil, nil).Times(2)
	st.EXPECT().DeleteReview(gomock.Any(), id).Return(false, nil)

	_, err := svc.Get(context.Background(), id)
	require.ErrorIs(t, err, serrors.ErrNotFound)
	_, err = svc.Update(context.Background(), id, reviews.Input{Rating: ptr(1)})
	require.ErrorIs(t, err, serrors.ErrNotFound)
	require.ErrorIs(t, svc.Delete(context.Background(), id), serrors.ErrNotFound)
}

func TestReviews_List(t *testing.T) {
	st, svc := newTestReviews(t)
	next := storage.Cursor{
		CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		ID:        uuid.MustParse("9a8b7c6d-5e4f-4a3b-8c2d-1e0f9a8b7c6d"),
	}
	filter := storage.ReviewFilter{MinRating: 4}

	st.EXPECT().Reviews(gomock.Any(), filter, storage.Cursor{}, uint(10)).Return(storage.Page[domain.Review]{
		Items:      []domain.Review{{Rating: 5}},
		NextCursor: &next,
	}, nil)
	expectResolve(st)

	items, cursor, err := svc.List(context.Background(), filter, "", 10)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, "2026-01-01T00:00:00Z_9a8b7c6d-5e4f-4a3b-8c2d-1e0f9a8b7c6d", cursor)

	_, _, err = svc.List(context.Background(), filter, "garbage", 10)
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}
