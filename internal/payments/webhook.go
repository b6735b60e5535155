package payments

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"travel/pkg/domain"
	"travel/pkg/logger"
	"travel/pkg/serrors"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

const webhookKeyPrefix = "chapa-webhook:"

// HandleWebhook verifies the signature of a gateway notification, then
// refreshes the referenced payment from the gateway. The notification body is
// only trusted for its tx_ref.
func (p payments) HandleWebhook(ctx context.Context, body []byte, signature string) (*domain.Payment, error) {
	if p.options.WebhookSecret != "" && !validSignature(p.options.WebhookSecret, body, signature) {
		return nil, serrors.With(serrors.ErrUnauthorized, "invalid webhook signature")
	}

	txRef, err := webhookReference(body)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid webhook payload")
	}
	if txRef == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "No tx_ref in webhook data")
	}
	ctx = logger.WithFields(ctx, zap.String("txRef", txRef))

	if p.dedup != nil {
		digest := sha256.Sum256(body)
		key := webhookKeyPrefix + hex.EncodeToString(digest[:])

		claimed, err := p.dedup.Claim(ctx, key, p.options.WebhookDedupTTL)
		if err != nil {
			return nil, fmt.Errorf("could not claim webhook delivery: %w", err)
		}
		if !claimed {
			logger.Info(ctx, "webhook delivery already processed")

			return nil, nil //nolint: nilnil
		}

		payment, err := p.processWebhook(ctx, txRef)
		if err != nil {
			if relErr := p.dedup.Release(ctx, key); relErr != nil {
				logger.Error(ctx, "could not release webhook delivery", zap.Error(relErr))
			}

			return nil, err
		}

		return payment, nil
	}

	return p.processWebhook(ctx, txRef)
}

func (p payments) processWebhook(ctx context.Context, txRef string) (*domain.Payment, error) {
	payment, err := p.storage.PaymentByReference(ctx, txRef)
	if err != nil {
		return nil, fmt.Errorf("could not get payment: %w", err)
	}
	if payment == nil {
		return nil, serrors.With(serrors.ErrNotFound, "Payment not found for tx_ref %s", txRef)
	}

	updated, err := p.refresh(ctx, *payment)
	if err != nil {
		return nil, err
	}
	logger.Info(ctx, "webhook processed", zap.String("status", string(updated.Status)))

	return updated, nil
}

// validSignature checks a hex encoded HMAC-SHA256 keyed with secret. The
// signature is either of the body or, for deliveries that only carry
// Chapa-Signature, of the secret itself.
func validSignature(secret string, body []byte, signature string) bool {
	got, err := hex.DecodeString(strings.TrimSpace(signature))
	if err != nil || len(got) == 0 {
		return false
	}

	return hmac.Equal(hmacSHA256(secret, body), got) || hmac.Equal(hmacSHA256(secret, []byte(secret)), got)
}

func hmacSHA256(secret string, data []byte) []byte {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(data)

	return mac.Sum(nil)
}

// webhookReference extracts the top level tx_ref of a webhook payload.
func webhookReference(body []byte) (string, error) {
	var txRef string
	err := jx.DecodeBytes(body).Obj(func(d *jx.Decoder, key string) error {
		if key != "tx_ref" || d.Next() != jx.String {
			return d.Skip()
		}

		s, err := d.Str()
		if err != nil {
			return err
		}
		txRef = strings.TrimSpace(s)

		return nil
	})
	if err != nil {
		return "", errors.Wrap(err, "decode webhook")
	}

	return txRef, nil
}
