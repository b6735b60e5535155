package v1handler

import (
	"net/http"
	"travel/pkg/domain"
	"travel/pkg/serrors"
	"travel/pkg/storage"

	"github.com/google/uuid"
)

func (h Handler) ListBookings(w http.ResponseWriter, r *http.Request) {
	cursor, limit, err := pagination(r)
	if err != nil {
		h.WriteError(w, r, err)

		return
	}

	q := r.URL.Query()
	filter := storage.BookingFilter{Status: domain.BookingStatus(q.Get("status"))}
	if filter.Status != "" && !filter.Status.Valid() {
		h.WriteError(w, r, serrors.With(serrors.ErrBadRequest, "%q is not a valid booking status", filter.Status))

		return
	}
	if filter.UserID, err = queryUserID(q, "user_id"); err != nil {
		h.WriteError(w, r, err)

		return
	}
	listingID, err := queryUUID(q, "listing_id")
	if err != nil {
		h.WriteError(w, r, err)

		return
	}
	filter.ListingID = domain.ListingID(listingID)

	items, next, err := h.deps.Bookings.List(r.Context(), filter, cursor, limit)
	if err != nil {
		h.WriteError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, newPage(items, next, BookingToV1))
}

// CreateBooking stores the booking and opens its checkout. When the checkout
// fails the booking is kept and 402 is returned.
func (h Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req BookingRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.WriteError(w, r, err)

		return
	}

	created, err := h.deps.Bookings.Create(ctx, GetUserIDFromContext(ctx), req.Input())
	if err != nil {
		h.WriteError(w, r, err)

		return
	}

	writeJSON(ctx, w, http.StatusCreated, BookingCreated{
		Booking:    BookingToV1(created.Booking),
		PaymentID:  uuid.UUID(created.PaymentID),
		PaymentURL: created.PaymentURL,
		Message:    created.Message,
	})
}

func (h Handler) GetBooking(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "booking_id", "Booking")
	if err != nil {
		h.WriteError(w, r, err)

		return
	}

	b, err := h.deps.Bookings.Get(r.Context(), domain.BookingID(id))
	if err != nil {
		h.WriteError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, BookingToV1(b))
}

// UpdateBooking serves both PUT and PATCH; absent fields are kept.
func (h Handler) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "booking_id", "Booking")
	if err != nil {
		h.WriteError(w, r, err)

		return
	}

	var req BookingRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.WriteError(w, r, err)

		return
	}

	b, err := h.deps.Bookings.Update(r.Context(), domain.BookingID(id), req.Input())
	if err != nil {
		h.WriteError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, BookingToV1(b))
}

func (h Handler) UpdateBookingStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "booking_id", "Booking")
	if err != nil {
		h.WriteError(w, r, err)

		return
	}

	var req UpdateStatusRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.WriteError(w, r, err)

		return
	}

	b, err := h.deps.Bookings.UpdateStatus(r.Context(), domain.BookingID(id), domain.BookingStatus(req.Status))
	if err != nil {
		h.WriteError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, BookingToV1(b))
}

func (h Handler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "booking_id", "Booking")
	if err != nil {
		h.WriteError(w, r, err)

		return
	}

	b, err := h.deps.Bookings.Cancel(r.Context(), domain.BookingID(id))
	if err != nil {
		h.WriteError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, BookingToV1(b))
}

func (h Handler) GetBookingPaymentStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "booking_id", "Booking")
	if err != nil {
		h.WriteError(w, r, err)

		return
	}

	status, err := h.deps.Bookings.PaymentStatus(r.Context(), domain.BookingID(id))
	if err != nil {
		h.WriteError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, PaymentStatusToV1(status))
}

func (h Handler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "booking_id", "Booking")
	if err != nil {
		h.WriteError(w, r, err)

		return
	}

	if err := h.deps.Bookings.Delete(r.Context(), domain.BookingID(id)); err != nil {
		h.WriteError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
