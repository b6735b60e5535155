package v1handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"travel/internal/api/handler/v1handler"
	"travel/internal/bookings"
	mockbookings "travel/internal/bookings/mock"
	mocklistings "travel/internal/listings/mock"
	mockpayments "travel/internal/payments/mock"
	mockreviews "travel/internal/reviews/mock"
	"travel/pkg/domain"
	"travel/pkg/logger"
	"travel/pkg/serrors"
	"travel/pkg/storage"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	// Initialize logger to avoid nil pointer deref during tests
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

type fixture struct {
	listings *mocklistings.MockListings
	bookings *mockbookings.MockBookings
	payments *mockpayments.MockPayments
	reviews  *mockreviews.MockReviews
	router   http.Handler
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := &fixture{
		listings: mocklistings.NewMockListings(ctrl),
		bookings: mockbookings.NewMockBookings(ctrl),
		payments: mockpayments.NewMockPayments(ctrl),
		reviews:  mockreviews.NewMockReviews(ctrl),
	}

	h := v1handler.New(v1handler.Deps{
		Listings: f.listings,
		Bookings: f.bookings,
		Payments: f.payments,
		Reviews:  f.reviews,
	})
	sec, err := v1handler.NewSecHandler(nil)
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Route("/v1", func(r chi.Router) {
		h.Webhooks(r)
		r.Group(func(r chi.Router) {
			r.Use(sec.Middleware(h))
			h.Routes(r)
		})
	})
	f.router = r

	return f
}

// do sends the request through the router; headers are given as name/value pairs.
func (f *fixture) do(t *testing.T, method, path, body string, headers ...string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())

	return out
}

func TestNewError_InternalOnPlainError(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})
	ctx := context.Background()

	res := h.NewError(ctx, errors.New("boom"))
	require.NotNil(t, res)
	require.Equal(t, 500, res.StatusCode)
	require.Equal(t, serrors.ErrInternal.Error(), res.Response.Code)
	require.Equal(t, "internal error", res.Response.Message)
}

func TestNewError_KindSentinelDirect_NotFound(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})
	ctx := context.Background()

	res := h.NewError(ctx, serrors.ErrNotFound)
	require.Equal(t, 404, res.StatusCode)
	require.Equal(t, serrors.ErrNotFound.Error(), res.Response.Code)
	require.Equal(t, "resource not found", res.Response.Message)
}

func TestNewError_SemanticWithMessage_BadRequest(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})
	ctx := context.Background()

	err := serrors.With(serrors.ErrBadRequest, "Check-out date must be after check-in date")
	res := h.NewError(ctx, err)
	require.Equal(t, 400, res.StatusCode)
	require.Equal(t, serrors.ErrBadRequest.Error(), res.Response.Code)
	require.Equal(t, "Check-out date must be after check-in date", res.Response.Message)
}

func TestNewError_SemanticWrap_Unauthorized(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})
	ctx := context.Background()

	cause := errors.New("bad token")
	err := serrors.Wrap(serrors.ErrUnauthorized, cause, "unauthorized")
	res := h.NewError(ctx, err)
	require.Equal(t, 401, res.StatusCode)
	require.Equal(t, serrors.ErrUnauthorized.Error(), res.Response.Code)
	// Should include provided message, not the cause
	require.Equal(t, "unauthorized", res.Response.Message)
}

func TestNewError_WrappedWithContext(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})
	ctx := context.Background()

	err := errors.Join(errors.New("while booking"), serrors.With(serrors.ErrConflict, "You have already reviewed this listing"))
	res := h.NewError(ctx, err)
	require.Equal(t, 409, res.StatusCode)
	require.Equal(t, "You have already reviewed this listing", res.Response.Message)
}

func TestNewError_InternalKind_GeneratesInternal(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})
	ctx := context.Background()

	res := h.NewError(ctx, serrors.KindOnly(serrors.ErrInternal))
	require.Equal(t, 500, res.StatusCode)
	require.Equal(t, serrors.ErrInternal.Error(), res.Response.Code)
	require.Equal(t, "internal error", res.Response.Message)
}

func TestNewError_StatusPerKind(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})
	cases := map[serrors.Kind]int{
		serrors.ErrForbidden:       http.StatusForbidden,
		serrors.ErrTimeout:         http.StatusGatewayTimeout,
		serrors.ErrUnavailable:     http.StatusServiceUnavailable,
		serrors.ErrRateLimited:     http.StatusTooManyRequests,
		serrors.ErrPaymentRequired: http.StatusPaymentRequired,
	}
	for kind, status := range cases {
		t.Run(kind.Error(), func(t *testing.T) {
			res := h.NewError(context.Background(), serrors.KindOnly(kind))
			require.Equal(t, status, res.StatusCode)
			require.Equal(t, kind.Error(), res.Response.Code)
		})
	}
}

func TestWriteError_PaymentInitiation(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})
	bookingID := domain.BookingID(uuid.New())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/bookings/", nil)
	h.WriteError(rec, req, &bookings.PaymentInitiationError{
		BookingID: bookingID,
		Err:       serrors.With(serrors.ErrPaymentRequired, "Payment initiation failed: Invalid currency"),
	})

	require.Equal(t, http.StatusPaymentRequired, rec.Code)
	body := decode[map[string]string](t, rec)
	require.Equal(t, "Booking created but payment initiation failed", body["error"])
	require.Equal(t, "Payment initiation failed: Invalid currency", body["details"])
	require.Equal(t, bookingID.String(), body["booking_id"])
}

func TestPagination(t *testing.T) {
	f := newFixture(t)

	t.Run("defaults", func(t *testing.T) {
		f.listings.EXPECT().List(gomock.Any(), storage.ListingFilter{}, "", uint(v1handler.DefaultLimit)).
			Return(nil, "", nil)

		rec := f.do(t, http.MethodGet, "/v1/listings/", "")
		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `{"items":[],"next_cursor":null}`, rec.Body.String())
	})

	t.Run("capped", func(t *testing.T) {
		f.listings.EXPECT().List(gomock.Any(), storage.ListingFilter{}, "abc", uint(v1handler.MaxLimit)).
			Return(nil, "", nil)

		rec := f.do(t, http.MethodGet, "/v1/listings/?limit=500&cursor=abc", "")
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("invalid", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/v1/listings/?limit=zero", "")
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Equal(t, "BAD_REQUEST", decode[v1handler.Error](t, rec).Code)
	})
}

func TestInvalidBody(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/v1/listings/", `{"name":`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, decode[v1handler.Error](t, rec).Message, "invalid request body")
}
