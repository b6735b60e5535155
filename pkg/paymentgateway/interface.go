// Package paymentgateway defines the contract with the hosted checkout
// provider that collects booking payments.
package paymentgateway

import (
	"context"
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// StatusSuccess is the status the gateway reports for accepted requests and
// settled transactions.
const StatusSuccess = "success"

// InitializeRequest describes a checkout session to open with the gateway.
type InitializeRequest struct {
	Amount      decimal.Decimal
	Currency    string
	Email       string
	FirstName   string
	LastName    string
	PhoneNumber string
	// TxRef is our unique reference for the transaction.
	TxRef       string
	CallbackURL string
	ReturnURL   string
	Description string
	// WebhookURL is sent only when set.
	WebhookURL string
	Meta       map[string]string
}

// InitializeResponse is the gateway answer to an InitializeRequest.
type InitializeResponse struct {
	Status      string
	Message     string
	CheckoutURL string
}

// Successful reports whether the checkout session was opened.
func (r InitializeResponse) Successful() bool { return r.Status == StatusSuccess }

// Verification is the gateway view of a transaction.
type Verification struct {
	// Status is the status of the verify request itself.
	Status  string
	Message string

	// TransactionStatus is the status of the transaction (success, failed,
	// pending, cancelled...).
	TransactionStatus string
	TransactionID     string
	Method            string
	FailureReason     string
	// CreatedAt is zero when the gateway did not report it.
	CreatedAt time.Time

	// Raw is the complete response payload.
	Raw json.RawMessage
}

// Client is the abstraction over the payment gateway.
//
//go:generate mockgen -package mockpaymentgateway -source=interface.go -destination=mock/mockpaymentgateway.go *
type Client interface {
	// Initialize opens a checkout session.
	Initialize(ctx context.Context, req InitializeRequest) (*InitializeResponse, error)
	// Verify fetches the current state of the transaction with the given reference.
	Verify(ctx context.Context, txRef string) (*Verification, error)
}
