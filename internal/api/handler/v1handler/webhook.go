package v1handler

import (
	"errors"
	"io"
	"net/http"
	"travel/pkg/logger"
	"travel/pkg/serrors"

	"go.uber.org/zap"
)

type webhookStatus struct {
	Status string `json:"status"`
}

var (
	webhookSuccess = webhookStatus{Status: "success"} //nolint: gochecknoglobals
	webhookError   = webhookStatus{Status: "error"}   //nolint: gochecknoglobals
)

// ChapaWebhook processes a Chapa payment notification. Rejected deliveries get
// 400 so Chapa stops retrying them; processing failures get 500.
func (h Handler) ChapaWebhook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		logger.Warn(ctx, "could not read webhook body", zap.Error(err))
		writeJSON(ctx, w, http.StatusBadRequest, webhookError)

		return
	}

	// x-chapa-signature signs the payload, Chapa-Signature only the secret
	signature := r.Header.Get("X-Chapa-Signature")
	if signature == "" {
		signature = r.Header.Get("Chapa-Signature")
	}

	payment, err := h.deps.Payments.HandleWebhook(ctx, body, signature)
	switch {
	case err == nil:
		if payment == nil {
			logger.Debug(ctx, "duplicate webhook delivery ignored")
		}
		writeJSON(ctx, w, http.StatusOK, webhookSuccess)
	case errors.Is(err, serrors.ErrBadRequest),
		errors.Is(err, serrors.ErrNotFound),
		errors.Is(err, serrors.ErrUnauthorized):
		logger.Warn(ctx, "webhook rejected", zap.Error(err))
		writeJSON(ctx, w, http.StatusBadRequest, webhookError)
	default:
		logger.Error(ctx, "could not process webhook", zap.Error(err))
		writeJSON(ctx, w, http.StatusInternalServerError, webhookError)
	}
}
