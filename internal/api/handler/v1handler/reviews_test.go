package v1handler_test

import (
	"context"
	"net/http"
	"testing"
	"travel/internal/api/handler/v1handler"
	"travel/internal/reviews"
	"travel/pkg/domain"
	"travel/pkg/serrors"
	"travel/pkg/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCreateReview(t *testing.T) {
	f := newFixture(t)
	listingID := domain.ListingID(uuid.New())
	review := &domain.Review{
		ID:        domain.ReviewID(uuid.New()),
		ListingID: listingID,
		UserID:    8,
		User:      &domain.User{ID: 8, Username: "guest"},
		Rating:    5,
		Comment:   "Lovely stay",
	}

	f.reviews.EXPECT().Create(gomock.Any(), domain.UserID(0), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ domain.UserID, in reviews.Input) (*domain.Review, error) {
			require.Equal(t, listingID, *in.ListingID)
			require.Equal(t, domain.UserID(8), *in.UserID)
			require.Nil(t, in.BookingID)
			require.Equal(t, 5, *in.Rating)

			return review, nil
		})

	rec := f.do(t, http.MethodPost, "/v1/reviews/",
		`{"listing_id":"`+listingID.String()+`","user_id":8,"rating":5,"comment":"Lovely stay"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	got := decode[v1handler.Review](t, rec)
	require.Equal(t, uuid.UUID(review.ID), got.ReviewID)
	require.Equal(t, "guest", got.User.Username)
	require.Nil(t, got.BookingID)
}

func TestCreateReview_Duplicate(t *testing.T) {
	f := newFixture(t)

	f.reviews.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, serrors.With(serrors.ErrConflict, "You have already reviewed this listing"))

	rec := f.do(t, http.MethodPost, "/v1/reviews/", `{"rating":4}`)
	require.Equal(t, http.StatusConflict, rec.Code)
	require.Equal(t, "CONFLICT", decode[v1handler.Error](t, rec).Code)
}

func TestListReviews(t *testing.T) {
	f := newFixture(t)
	listingID := uuid.New()

	f.reviews.EXPECT().List(gomock.Any(), storage.ReviewFilter{
		ListingID: domain.ListingID(listingID),
		UserID:    4,
		MinRating: 3,
	}, "c1", uint(10)).Return(nil, "", nil)

	rec := f.do(t, http.MethodGet,
		"/v1/reviews/?listing_id="+listingID.String()+"&user_id=4&min_rating=3&cursor=c1&limit=10", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(t, http.MethodGet, "/v1/reviews/?min_rating=high", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReviewByID(t *testing.T) {
	f := newFixture(t)
	id := domain.ReviewID(uuid.New())
	review := &domain.Review{ID: id, Rating: 2}

	f.reviews.EXPECT().Get(gomock.Any(), id).Return(review, nil)
	f.reviews.EXPECT().Update(gomock.Any(), id, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ domain.ReviewID, in reviews.Input) (*domain.Review, error) {
			require.Equal(t, 3, *in.Rating)
			require.Nil(t, in.Comment)
			updated := *review
			updated.Rating = 3

			return &updated, nil
		})
	f.reviews.EXPECT().Delete(gomock.Any(), id).Return(nil)

	rec := f.do(t, http.MethodGet, "/v1/reviews/"+id.String()+"/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 2, decode[v1handler.Review](t, rec).Rating)

	rec = f.do(t, http.MethodPatch, "/v1/reviews/"+id.String()+"/", `{"rating":3}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 3, decode[v1handler.Review](t, rec).Rating)

	rec = f.do(t, http.MethodDelete, "/v1/reviews/"+id.String()+"/", "")
	require.Equal(t, http.StatusNoContent, rec.Code)
}
