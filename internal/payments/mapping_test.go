package payments

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"
	"time"
	"travel/pkg/domain"
	"travel/pkg/paymentgateway"

	"github.com/stretchr/testify/require"
)

func TestMapStatus(t *testing.T) {
	tests := map[string]domain.PaymentStatus{
		"success":   domain.PaymentStatusCompleted,
		"SUCCESS":   domain.PaymentStatusCompleted,
		"pending":   domain.PaymentStatusProcessing,
		"cancelled": domain.PaymentStatusCancelled,
		"failed":    domain.PaymentStatusFailed,
		"":          domain.PaymentStatusFailed,
	}

	for in, want := range tests {
		require.Equal(t, want, mapStatus(in), in)
	}
}

func TestMapMethod(t *testing.T) {
	tests := map[string]domain.PaymentMethod{
		"Visa":       domain.PaymentMethodCard,
		"mastercard": domain.PaymentMethodCard,
		"amex":       domain.PaymentMethodCard,
		"bank":       domain.PaymentMethodBank,
		"telebirr":   domain.PaymentMethodMobile,
		"":           domain.PaymentMethodMobile,
	}

	for in, want := range tests {
		require.Equal(t, want, mapMethod(in), in)
	}
}

func TestApplyVerification(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	var p domain.Payment
	applyVerification(&p, paymentgateway.Verification{
		TransactionStatus: "failed",
		FailureReason:     "insufficient funds",
		Raw:               []byte(`{"status":"failed"}`),
	}, now)
	require.Equal(t, domain.PaymentStatusFailed, p.Status)
	require.Equal(t, "insufficient funds", p.FailureReason)
	require.JSONEq(t, `{"status":"failed"}`, string(p.WebhookData))
	require.True(t, p.PaymentDate.IsZero())

	applyVerification(&p, paymentgateway.Verification{TransactionStatus: "success", TransactionID: "chapa-1"}, now)
	require.Equal(t, domain.PaymentStatusCompleted, p.Status)
	require.Equal(t, now, p.PaymentDate)
	require.Equal(t, "chapa-1", p.TransactionID)
}

func TestValidSignature(t *testing.T) {
	body := []byte(`{"tx_ref":"ALX-1"}`)
	sig := signForTest("secret", body)

	require.True(t, validSignature("secret", body, sig))
	require.True(t, validSignature("secret", body, " "+sig+"\n"))
	require.False(t, validSignature("other", body, sig))
	require.False(t, validSignature("secret", body, "not-hex"))
	require.False(t, validSignature("secret", body, ""))

	// signature of the secret itself
	require.True(t, validSignature("secret", body, signForTest("secret", []byte("secret"))))
	require.False(t, validSignature("secret", body, signForTest("other", []byte("other"))))
}

func TestWebhookReference(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    string
		wantErr bool
	}{
		{name: "top level", body: `{"event":"charge.success","tx_ref":" ALX-1 ","amount":"10.00"}`, want: "ALX-1"},
		{name: "nested objects are skipped", body: `{"data":{"tx_ref":"inner"},"tx_ref":"ALX-2"}`, want: "ALX-2"},
		{name: "absent", body: `{"event":"charge.success"}`},
		{name: "not a string", body: `{"tx_ref":42}`},
		{name: "not json", body: `tx_ref=ALX-3`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := webhookReference([]byte(tt.body))
			if tt.wantErr {
				require.Error(t, err)

				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func signForTest(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)

	return hex.EncodeToString(mac.Sum(nil))
}
