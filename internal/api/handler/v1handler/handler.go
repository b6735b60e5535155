package v1handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"travel/internal/bookings"
	"travel/internal/listings"
	"travel/internal/payments"
	"travel/internal/reviews"
	"travel/pkg/logger"
	"travel/pkg/serrors"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100

	maxBodyBytes = 1 << 20
)

// Deps are the services backing the v1 API.
type Deps struct {
	Listings listings.Listings
	Bookings bookings.Bookings
	Payments payments.Payments
	Reviews  reviews.Reviews
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Routes registers every authenticated v1 endpoint on r. The Chapa webhook is
// registered separately with Webhooks.
func (h Handler) Routes(r chi.Router) {
	r.Route("/listings", func(r chi.Router) {
		r.Get("/", h.ListListings)
		r.Post("/", h.CreateListing)
		r.Get("/search/", h.SearchListings)
		r.Route("/{listing_id}", func(r chi.Router) {
			r.Get("/", h.GetListing)
			r.Put("/", h.UpdateListing)
			r.Patch("/", h.UpdateListing)
			r.Delete("/", h.DeleteListing)
			r.Get("/reviews/", h.ListListingReviews)
			r.Get("/bookings/", h.ListListingBookings)
		})
	})

	r.Route("/bookings", func(r chi.Router) {
		r.Get("/", h.ListBookings)
		r.Post("/", h.CreateBooking)
		r.Route("/{booking_id}", func(r chi.Router) {
			r.Get("/", h.GetBooking)
			r.Put("/", h.UpdateBooking)
			r.Patch("/", h.UpdateBooking)
			r.Delete("/", h.DeleteBooking)
			r.Patch("/update_status/", h.UpdateBookingStatus)
			r.Post("/cancel/", h.CancelBooking)
			r.Get("/payment_status/", h.GetBookingPaymentStatus)
		})
	})

	r.Route("/payments", func(r chi.Router) {
		r.Get("/", h.ListPayments)
		r.Post("/initiate/", h.InitiatePayment)
		r.Post("/verify/", h.VerifyPayment)
		r.Get("/{payment_id}/", h.GetPayment)
	})

	r.Route("/reviews", func(r chi.Router) {
		r.Get("/", h.ListReviews)
		r.Post("/", h.CreateReview)
		r.Route("/{review_id}", func(r chi.Router) {
			r.Get("/", h.GetReview)
			r.Put("/", h.UpdateReview)
			r.Patch("/", h.UpdateReview)
			r.Delete("/", h.DeleteReview)
		})
	})
}

// Webhooks registers the unauthenticated gateway callbacks on r.
func (h Handler) Webhooks(r chi.Router) {
	r.Post("/webhooks/chapa/", h.ChapaWebhook)
}

// Error is the body of every failed request.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	StatusCode int
	Response   Error
}

var kindStatus = map[serrors.Kind]int{ //nolint: gochecknoglobals
	serrors.ErrNotFound:        http.StatusNotFound,
	serrors.ErrUnauthorized:    http.StatusUnauthorized,
	serrors.ErrForbidden:       http.StatusForbidden,
	serrors.ErrBadRequest:      http.StatusBadRequest,
	serrors.ErrConflict:        http.StatusConflict,
	serrors.ErrTimeout:         http.StatusGatewayTimeout,
	serrors.ErrUnavailable:     http.StatusServiceUnavailable,
	serrors.ErrRateLimited:     http.StatusTooManyRequests,
	serrors.ErrPaymentRequired: http.StatusPaymentRequired,
}

var kindMessage = map[serrors.Kind]string{ //nolint: gochecknoglobals
	serrors.ErrNotFound:        "resource not found",
	serrors.ErrUnauthorized:    "unauthorized",
	serrors.ErrForbidden:       "forbidden",
	serrors.ErrBadRequest:      "bad request",
	serrors.ErrConflict:        "conflict",
	serrors.ErrTimeout:         "request timed out",
	serrors.ErrUnavailable:     "service unavailable",
	serrors.ErrRateLimited:     "too many requests",
	serrors.ErrPaymentRequired: "payment required",
}

// NewError maps err to a response. Errors without a semantic kind, or of the
// internal kind, are logged and rendered as a generic internal error.
func (h Handler) NewError(ctx context.Context, err error) *ErrorResponse {
	kind := serrors.KindOf(err)
	status, ok := kindStatus[kind]
	if !ok {
		logger.Error(ctx, "request failed", zap.Error(err))

		return &ErrorResponse{
			StatusCode: http.StatusInternalServerError,
			Response:   Error{Code: serrors.ErrInternal.Error(), Message: "internal error"},
		}
	}

	logger.Debug(ctx, "request rejected", zap.Error(err))

	return &ErrorResponse{
		StatusCode: status,
		Response:   Error{Code: kind.Error(), Message: messageOf(err, kindMessage[kind])},
	}
}

// messageOf returns the message attached to the outermost semantic error in
// the chain of err.
func messageOf(err error, fallback string) string {
	var se *serrors.Error
	if errors.As(err, &se) && se.Message() != "" {
		return se.Message()
	}

	return fallback
}

type paymentInitiationFailed struct {
	Error     string `json:"error"`
	Details   string `json:"details"`
	BookingID string `json:"booking_id"`
}

// WriteError renders err as the JSON error body of the request.
func (h Handler) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	ctx := r.Context()

	var pie *bookings.PaymentInitiationError
	if errors.As(err, &pie) {
		logger.Warn(ctx, "booking created without checkout",
			zap.Stringer("bookingID", pie.BookingID),
			zap.Error(pie.Err))
		writeJSON(ctx, w, http.StatusPaymentRequired, paymentInitiationFailed{
			Error:     "Booking created but payment initiation failed",
			Details:   messageOf(pie.Err, "payment initiation failed"),
			BookingID: pie.BookingID.String(),
		})

		return
	}

	res := h.NewError(ctx, err)
	writeJSON(ctx, w, res.StatusCode, res.Response)
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Warn(ctx, "could not write response", zap.Error(err))
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(dst); err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body: %s", err)
	}

	return nil
}

// pagination reads the cursor and limit query parameters.
func pagination(r *http.Request) (string, uint, error) {
	q := r.URL.Query()
	limit := DefaultLimit
	if raw := q.Get("limit"); raw != "" {
		l, err := strconv.Atoi(raw)
		if err != nil || l < 1 {
			return "", 0, serrors.With(serrors.ErrBadRequest, "limit must be a positive integer")
		}
		limit = min(l, MaxLimit)
	}

	return q.Get("cursor"), uint(limit), nil //nolint: gosec
}
