package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentID uniquely identifies a payment.
type PaymentID uuid.UUID

func (id PaymentID) String() string { return uuid.UUID(id).String() }

// PaymentStatus represents the lifecycle state of a payment.
type PaymentStatus string

const (
	PaymentStatusPending    PaymentStatus = "pending"
	PaymentStatusProcessing PaymentStatus = "processing"
	PaymentStatusCompleted  PaymentStatus = "completed"
	PaymentStatusFailed     PaymentStatus = "failed"
	PaymentStatusCancelled  PaymentStatus = "cancelled"
	PaymentStatusRefunded   PaymentStatus = "refunded"
)

const (
	// MaxCustomerPhoneLength is the longest phone number a payment can carry.
	MaxCustomerPhoneLength = 20
	// MaxCustomerNameLength is the longest customer name, in characters, a payment can carry.
	MaxCustomerNameLength = 100
)

// PaymentMethod is the channel a payment was made through.
type PaymentMethod string

const (
	PaymentMethodMobile PaymentMethod = "mobile"
	PaymentMethodCard   PaymentMethod = "card"
	PaymentMethodBank   PaymentMethod = "bank"
)

// Display returns the human readable name of the method.
func (m PaymentMethod) Display() string {
	switch m {
	case PaymentMethodMobile:
		return "Mobile Money"
	case PaymentMethodCard:
		return "Credit/Debit Card"
	case PaymentMethodBank:
		return "Bank Transfer"
	default:
		return string(m)
	}
}

// Payment tracks the settlement of a booking through the payment gateway.
type Payment struct {
	ID        PaymentID
	BookingID BookingID

	Amount   decimal.Decimal
	Currency string
	Status   PaymentStatus
	Method   PaymentMethod

	TransactionID string
	CheckoutURL   string
	// Reference is the merchant transaction reference (tx_ref) sent to the gateway.
	Reference string

	CustomerEmail string
	CustomerPhone string
	CustomerName  string

	PaymentDate   time.Time
	FailureReason string
	// WebhookData holds the raw payload of the last gateway verification.
	WebhookData json.RawMessage

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsSuccessful reports whether the payment has been completed.
func (p Payment) IsSuccessful() bool { return p.Status == PaymentStatusCompleted }

// IsPending reports whether the payment still awaits a final gateway outcome.
func (p Payment) IsPending() bool {
	return p.Status == PaymentStatusPending || p.Status == PaymentStatusProcessing
}

// CanBeRefunded reports whether a refund may be issued for the payment.
func (p Payment) CanBeRefunded() bool { return p.Status == PaymentStatusCompleted }

// NewPaymentReference builds a unique gateway reference for a booking payment.
func NewPaymentReference(bookingID BookingID, now time.Time) string {
	return fmt.Sprintf("ALX-%s-%d", bookingID.String()[:8], now.Unix())
}
