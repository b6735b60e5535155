package v1handler

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
	"travel/internal/bookings"
	"travel/internal/listings"
	"travel/internal/payments"
	"travel/internal/reviews"
	"travel/pkg/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const moneyPlaces = 2

// Date is a calendar date encoded as YYYY-MM-DD.
type Date struct {
	time.Time
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(domain.DateLayout)) //nolint: wrapcheck
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	t, err := time.Parse(domain.DateLayout, strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("date %q must be formatted as YYYY-MM-DD", s)
	}
	d.Time = t

	return nil
}

// Page is a cursor-paginated collection.
type Page[T any] struct {
	Items      []T     `json:"items"`
	NextCursor *string `json:"next_cursor"`
}

func newPage[In, Out any](in []In, nextCursor string, conv func(*In) Out) Page[Out] {
	items := make([]Out, 0, len(in))
	for i := range in {
		items = append(items, conv(&in[i]))
	}

	var cursor *string
	if nextCursor != "" {
		cursor = &nextCursor
	}

	return Page[Out]{Items: items, NextCursor: cursor}
}

func money(d decimal.Decimal) string { return d.StringFixed(moneyPlaces) }

type User struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

func UserToV1(in *domain.User) *User {
	if in == nil {
		return nil
	}

	return &User{
		ID:        int64(in.ID),
		Username:  in.Username,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
	}
}

type Listing struct {
	ListingID     uuid.UUID `json:"listing_id"`
	Host          *User     `json:"host,omitempty"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Location      string    `json:"location"`
	PricePerNight string    `json:"price_per_night"`
	PropertyType  string    `json:"property_type"`
	MaxGuests     int       `json:"max_guests"`
	Bedrooms      int       `json:"bedrooms"`
	Bathrooms     int       `json:"bathrooms"`
	Amenities     string    `json:"amenities"`
	AmenitiesList []string  `json:"amenities_list"`
	Available     bool      `json:"available"`
	AverageRating float64   `json:"average_rating"`
	TotalReviews  int       `json:"total_reviews"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func ListingToV1(in *domain.Listing) *Listing {
	if in == nil {
		return nil
	}

	return &Listing{
		ListingID:     uuid.UUID(in.ID),
		Host:          UserToV1(in.Host),
		Name:          in.Name,
		Description:   in.Description,
		Location:      in.Location,
		PricePerNight: money(in.PricePerNight),
		PropertyType:  string(in.PropertyType),
		MaxGuests:     in.MaxGuests,
		Bedrooms:      in.Bedrooms,
		Bathrooms:     in.Bathrooms,
		Amenities:     in.Amenities,
		AmenitiesList: in.AmenitiesList(),
		Available:     in.Available,
		AverageRating: in.AverageRating,
		TotalReviews:  in.TotalReviews,
		CreatedAt:     in.CreatedAt,
		UpdatedAt:     in.UpdatedAt,
	}
}

type Payment struct {
	PaymentID            uuid.UUID  `json:"payment_id"`
	BookingID            uuid.UUID  `json:"booking_id"`
	Amount               string     `json:"amount"`
	Currency             string     `json:"currency"`
	Status               string     `json:"status"`
	PaymentMethod        string     `json:"payment_method,omitempty"`
	PaymentMethodDisplay string     `json:"payment_method_display,omitempty"`
	ChapaTransactionID   string     `json:"chapa_transaction_id"`
	ChapaCheckoutURL     string     `json:"chapa_checkout_url"`
	ChapaReference       string     `json:"chapa_reference"`
	CustomerEmail        string     `json:"customer_email"`
	CustomerPhone        string     `json:"customer_phone"`
	CustomerName         string     `json:"customer_name"`
	PaymentDate          *time.Time `json:"payment_date"`
	FailureReason        string     `json:"failure_reason"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

func PaymentToV1(in *domain.Payment) *Payment {
	if in == nil {
		return nil
	}

	var paidAt *time.Time
	if !in.PaymentDate.IsZero() {
		paidAt = &in.PaymentDate
	}

	var display string
	if in.Method != "" {
		display = in.Method.Display()
	}

	return &Payment{
		PaymentID:            uuid.UUID(in.ID),
		BookingID:            uuid.UUID(in.BookingID),
		Amount:               money(in.Amount),
		Currency:             in.Currency,
		Status:               string(in.Status),
		PaymentMethod:        string(in.Method),
		PaymentMethodDisplay: display,
		ChapaTransactionID:   in.TransactionID,
		ChapaCheckoutURL:     in.CheckoutURL,
		ChapaReference:       in.Reference,
		CustomerEmail:        in.CustomerEmail,
		CustomerPhone:        in.CustomerPhone,
		CustomerName:         in.CustomerName,
		PaymentDate:          paidAt,
		FailureReason:        in.FailureReason,
		CreatedAt:            in.CreatedAt,
		UpdatedAt:            in.UpdatedAt,
	}
}

type PaymentStatus struct {
	PaymentID   uuid.UUID `json:"payment_id"`
	BookingID   uuid.UUID `json:"booking_id"`
	Status      string    `json:"status"`
	Amount      string    `json:"amount"`
	Currency    string    `json:"currency"`
	CheckoutURL *string   `json:"checkout_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func PaymentStatusToV1(in *payments.StatusView) *PaymentStatus {
	var checkoutURL *string
	if in.CheckoutURL != "" {
		checkoutURL = &in.CheckoutURL
	}

	return &PaymentStatus{
		PaymentID:   uuid.UUID(in.PaymentID),
		BookingID:   uuid.UUID(in.BookingID),
		Status:      string(in.Status),
		Amount:      money(in.Amount),
		Currency:    in.Currency,
		CheckoutURL: checkoutURL,
		CreatedAt:   in.CreatedAt,
		UpdatedAt:   in.UpdatedAt,
	}
}

type PaymentInitiated struct {
	Message     string    `json:"message"`
	PaymentID   uuid.UUID `json:"payment_id"`
	CheckoutURL string    `json:"checkout_url"`
	TxRef       string    `json:"tx_ref"`
}

type Booking struct {
	BookingID       uuid.UUID `json:"booking_id"`
	Listing         *Listing  `json:"listing,omitempty"`
	User            *User     `json:"user,omitempty"`
	CheckInDate     Date      `json:"check_in_date"`
	CheckOutDate    Date      `json:"check_out_date"`
	NumberOfGuests  int       `json:"number_of_guests"`
	TotalPrice      string    `json:"total_price"`
	Status          string    `json:"status"`
	SpecialRequests string    `json:"special_requests"`
	DurationNights  int       `json:"duration_nights"`
	Payment         *Payment  `json:"payment,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func BookingToV1(in *domain.Booking) *Booking {
	if in == nil {
		return nil
	}

	return &Booking{
		BookingID:       uuid.UUID(in.ID),
		Listing:         ListingToV1(in.Listing),
		User:            UserToV1(in.User),
		CheckInDate:     Date{in.CheckIn},
		CheckOutDate:    Date{in.CheckOut},
		NumberOfGuests:  in.Guests,
		TotalPrice:      money(in.TotalPrice),
		Status:          string(in.Status),
		SpecialRequests: in.SpecialRequests,
		DurationNights:  in.Nights(),
		Payment:         PaymentToV1(in.Payment),
		CreatedAt:       in.CreatedAt,
		UpdatedAt:       in.UpdatedAt,
	}
}

type BookingCreated struct {
	Booking    *Booking  `json:"booking"`
	PaymentID  uuid.UUID `json:"payment_id"`
	PaymentURL string    `json:"payment_url"`
	Message    string    `json:"message"`
}

type Review struct {
	ReviewID  uuid.UUID  `json:"review_id"`
	Listing   *Listing   `json:"listing,omitempty"`
	User      *User      `json:"user,omitempty"`
	BookingID *uuid.UUID `json:"booking_id"`
	Rating    int        `json:"rating"`
	Comment   string     `json:"comment"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func ReviewToV1(in *domain.Review) *Review {
	if in == nil {
		return nil
	}

	var bookingID *uuid.UUID
	if in.BookingID != nil {
		id := uuid.UUID(*in.BookingID)
		bookingID = &id
	}

	return &Review{
		ReviewID:  uuid.UUID(in.ID),
		Listing:   ListingToV1(in.Listing),
		User:      UserToV1(in.User),
		BookingID: bookingID,
		Rating:    in.Rating,
		Comment:   in.Comment,
		CreatedAt: in.CreatedAt,
		UpdatedAt: in.UpdatedAt,
	}
}

// ListingRequest is the body of listing writes. Absent fields are left
// unchanged on updates.
type ListingRequest struct {
	HostID        *int64           `json:"host_id"`
	Name          *string          `json:"name"`
	Description   *string          `json:"description"`
	Location      *string          `json:"location"`
	PricePerNight *decimal.Decimal `json:"price_per_night"`
	PropertyType  *string          `json:"property_type"`
	MaxGuests     *int             `json:"max_guests"`
	Bedrooms      *int             `json:"bedrooms"`
	Bathrooms     *int             `json:"bathrooms"`
	Amenities     *string          `json:"amenities"`
	Available     *bool            `json:"available"`
}

func (req ListingRequest) Input() listings.Input {
	in := listings.Input{
		Name:          req.Name,
		Description:   req.Description,
		Location:      req.Location,
		PricePerNight: req.PricePerNight,
		MaxGuests:     req.MaxGuests,
		Bedrooms:      req.Bedrooms,
		Bathrooms:     req.Bathrooms,
		Amenities:     req.Amenities,
		Available:     req.Available,
	}
	if req.HostID != nil {
		id := domain.UserID(*req.HostID)
		in.HostID = &id
	}
	if req.PropertyType != nil {
		pt := domain.PropertyType(*req.PropertyType)
		in.PropertyType = &pt
	}

	return in
}

// BookingRequest is the body of booking writes.
type BookingRequest struct {
	ListingID       *uuid.UUID `json:"listing_id"`
	UserID          *int64     `json:"user_id"`
	CheckInDate     *Date      `json:"check_in_date"`
	CheckOutDate    *Date      `json:"check_out_date"`
	NumberOfGuests  *int       `json:"number_of_guests"`
	SpecialRequests *string    `json:"special_requests"`
	CustomerPhone   string     `json:"customer_phone"`
}

func (req BookingRequest) Input() bookings.Input {
	in := bookings.Input{
		Guests:          req.NumberOfGuests,
		SpecialRequests: req.SpecialRequests,
		CustomerPhone:   strings.TrimSpace(req.CustomerPhone),
	}
	if req.ListingID != nil {
		id := domain.ListingID(*req.ListingID)
		in.ListingID = &id
	}
	if req.UserID != nil {
		id := domain.UserID(*req.UserID)
		in.UserID = &id
	}
	if req.CheckInDate != nil {
		in.CheckIn = &req.CheckInDate.Time
	}
	if req.CheckOutDate != nil {
		in.CheckOut = &req.CheckOutDate.Time
	}

	return in
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// ReviewRequest is the body of review writes.
type ReviewRequest struct {
	ListingID *uuid.UUID `json:"listing_id"`
	UserID    *int64     `json:"user_id"`
	BookingID *uuid.UUID `json:"booking_id"`
	Rating    *int       `json:"rating"`
	Comment   *string    `json:"comment"`
}

func (req ReviewRequest) Input() reviews.Input {
	in := reviews.Input{
		Rating:  req.Rating,
		Comment: req.Comment,
	}
	if req.ListingID != nil {
		id := domain.ListingID(*req.ListingID)
		in.ListingID = &id
	}
	if req.UserID != nil {
		id := domain.UserID(*req.UserID)
		in.UserID = &id
	}
	if req.BookingID != nil {
		id := domain.BookingID(*req.BookingID)
		in.BookingID = &id
	}

	return in
}

type InitiatePaymentRequest struct {
	BookingID     uuid.UUID `json:"booking_id"`
	CustomerPhone string    `json:"customer_phone"`
}

type VerifyPaymentRequest struct {
	TxRef string `json:"tx_ref"`
}
