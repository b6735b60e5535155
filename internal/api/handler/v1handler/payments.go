package v1handler

import (
	"net/http"
	"travel/pkg/domain"
	"travel/pkg/serrors"
	"travel/pkg/storage"

	"github.com/google/uuid"
)

const paymentInitiatedMessage = "Payment initiated successfully"

func (h Handler) ListPayments(w http.ResponseWriter, r *http.Request) {
	cursor, limit, err := pagination(r)
	if err != nil {
		h.WriteError(w, r, err)

		return
	}

	q := r.URL.Query()
	bookingID, err := queryUUID(q, "booking_id")
	if err != nil {
		h.WriteError(w, r, err)

		return
	}
	filter := storage.PaymentFilter{
		Status:    domain.PaymentStatus(q.Get("status")),
		BookingID: domain.BookingID(bookingID),
	}

	items, next, err := h.deps.Payments.List(r.Context(), filter, cursor, limit)
	if err != nil {
		h.WriteError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, newPage(items, next, PaymentToV1))
}

func (h Handler) GetPayment(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "payment_id", "Payment")
	if err != nil {
		h.WriteError(w, r, err)

		return
	}

	p, err := h.deps.Payments.Get(r.Context(), domain.PaymentID(id))
	if err != nil {
		h.WriteError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, PaymentToV1(p))
}

func (h Handler) InitiatePayment(w http.ResponseWriter, r *http.Request) {
	var req InitiatePaymentRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.WriteError(w, r, err)

		return
	}
	if req.BookingID == uuid.Nil {
		h.WriteError(w, r, serrors.With(serrors.ErrBadRequest, "booking_id is required"))

		return
	}

	p, err := h.deps.Payments.Initiate(r.Context(), domain.BookingID(req.BookingID), req.CustomerPhone)
	if err != nil {
		h.WriteError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, PaymentInitiated{
		Message:     paymentInitiatedMessage,
		PaymentID:   uuid.UUID(p.ID),
		CheckoutURL: p.CheckoutURL,
		TxRef:       p.Reference,
	})
}

func (h Handler) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	var req VerifyPaymentRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.WriteError(w, r, err)

		return
	}

	status, err := h.deps.Payments.Verify(r.Context(), req.TxRef)
	if err != nil {
		h.WriteError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, PaymentStatusToV1(status))
}
