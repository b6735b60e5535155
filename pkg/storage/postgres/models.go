package postgres

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
	"travel/pkg/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// pgDate maps a DATE column to a calendar date at UTC midnight.
type pgDate time.Time

func (d *pgDate) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*d = pgDate(domain.Date(v))
	case string:
		t, err := time.Parse(time.DateOnly, v)
		if err != nil {
			return fmt.Errorf("could not parse date: %w", err)
		}
		*d = pgDate(t)
	default:
		return fmt.Errorf("unsupported date value %T", src)
	}

	return nil
}

func (d pgDate) Value() (driver.Value, error) {
	return time.Time(d).Format(time.DateOnly), nil
}

// jsonb is a nullable JSON document column.
type jsonb json.RawMessage

func (j *jsonb) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*j = nil
	case []byte:
		*j = append(jsonb{}, v...)
	case string:
		*j = jsonb(v)
	default:
		return fmt.Errorf("unsupported jsonb value %T", src)
	}

	return nil
}

func (j jsonb) Value() (driver.Value, error) {
	if len(j) == 0 {
		return nil, nil //nolint: nilnil
	}

	return string(j), nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullTime(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: !t.IsZero()}
}

type PgUser struct {
	ID        int64     `db:"id"         goqu:"skipinsert"`
	Username  string    `db:"username"`
	FirstName string    `db:"first_name"`
	LastName  string    `db:"last_name"`
	Email     string    `db:"email"`
	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgUser) ToDomain() *domain.User {
	return &domain.User{
		ID:        domain.UserID(p.ID),
		Username:  p.Username,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Email:     p.Email,
		CreatedAt: p.CreatedAt,
	}
}

func (p *PgUser) FromDomain(u domain.User) {
	*p = PgUser{
		ID:        int64(u.ID),
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

type PgListing struct {
	ID     uuid.UUID `db:"id"      goqu:"skipinsert"`
	HostID int64     `db:"host_id"`

	Name          string          `db:"name"`
	Description   string          `db:"description"`
	Location      string          `db:"location"`
	PricePerNight decimal.Decimal `db:"price_per_night"`
	PropertyType  string          `db:"property_type"`
	MaxGuests     int             `db:"max_guests"`
	Bedrooms      int             `db:"bedrooms"`
	Bathrooms     int             `db:"bathrooms"`
	Amenities     string          `db:"amenities"`
	Available     bool            `db:"available"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
	UpdatedAt time.Time `db:"updated_at" goqu:"skipinsert"`
}

// PgListingWithStats is a listing row joined with its review aggregates.
type PgListingWithStats struct {
	PgListing

	AverageRating float64 `db:"average_rating"`
	TotalReviews  int64   `db:"total_reviews"`
}

func (p *PgListing) ToDomain() *domain.Listing {
	return &domain.Listing{
		ID:            domain.ListingID(p.ID),
		HostID:        domain.UserID(p.HostID),
		Name:          p.Name,
		Description:   p.Description,
		Location:      p.Location,
		PricePerNight: p.PricePerNight,
		PropertyType:  domain.PropertyType(p.PropertyType),
		MaxGuests:     p.MaxGuests,
		Bedrooms:      p.Bedrooms,
		Bathrooms:     p.Bathrooms,
		Amenities:     p.Amenities,
		Available:     p.Available,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func (p *PgListingWithStats) ToDomain() *domain.Listing {
	l := p.PgListing.ToDomain()
	l.AverageRating = p.AverageRating
	l.TotalReviews = int(p.TotalReviews)

	return l
}

func (p *PgListing) FromDomain(l domain.Listing) {
	*p = PgListing{
		ID:            uuid.UUID(l.ID),
		HostID:        int64(l.HostID),
		Name:          l.Name,
		Description:   l.Description,
		Location:      l.Location,
		PricePerNight: l.PricePerNight,
		PropertyType:  string(l.PropertyType),
		MaxGuests:     l.MaxGuests,
		Bedrooms:      l.Bedrooms,
		Bathrooms:     l.Bathrooms,
		Amenities:     l.Amenities,
		Available:     l.Available,
		CreatedAt:     l.CreatedAt,
		UpdatedAt:     l.UpdatedAt,
	}
}

type PgBooking struct {
	ID        uuid.UUID `db:"id"         goqu:"skipinsert"`
	ListingID uuid.UUID `db:"listing_id"`
	UserID    int64     `db:"user_id"`

	CheckIn         pgDate          `db:"check_in_date"`
	CheckOut        pgDate          `db:"check_out_date"`
	Guests          int             `db:"number_of_guests"`
	TotalPrice      decimal.Decimal `db:"total_price"`
	Status          string          `db:"status"`
	SpecialRequests string          `db:"special_requests"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
	UpdatedAt time.Time `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgBooking) ToDomain() *domain.Booking {
	return &domain.Booking{
		ID:              domain.BookingID(p.ID),
		ListingID:       domain.ListingID(p.ListingID),
		UserID:          domain.UserID(p.UserID),
		CheckIn:         time.Time(p.CheckIn),
		CheckOut:        time.Time(p.CheckOut),
		Guests:          p.Guests,
		TotalPrice:      p.TotalPrice,
		Status:          domain.BookingStatus(p.Status),
		SpecialRequests: p.SpecialRequests,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func (p *PgBooking) FromDomain(b domain.Booking) {
	*p = PgBooking{
		ID:              uuid.UUID(b.ID),
		ListingID:       uuid.UUID(b.ListingID),
		UserID:          int64(b.UserID),
		CheckIn:         pgDate(domain.Date(b.CheckIn)),
		CheckOut:        pgDate(domain.Date(b.CheckOut)),
		Guests:          b.Guests,
		TotalPrice:      b.TotalPrice,
		Status:          string(b.Status),
		SpecialRequests: b.SpecialRequests,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

type PgPayment struct {
	ID        uuid.UUID `db:"id"         goqu:"skipinsert"`
	BookingID uuid.UUID `db:"booking_id"`

	Amount   decimal.Decimal `db:"amount"`
	Currency string          `db:"currency"`
	Status   string          `db:"status"`
	Method   sql.NullString  `db:"payment_method"`

	TransactionID sql.NullString `db:"chapa_transaction_id"`
	CheckoutURL   sql.NullString `db:"chapa_checkout_url"`
	Reference     string         `db:"chapa_reference"`

	CustomerEmail string         `db:"customer_email"`
	CustomerPhone sql.NullString `db:"customer_phone"`
	CustomerName  string         `db:"customer_name"`

	PaymentDate   sql.NullTime   `db:"payment_date"`
	FailureReason sql.NullString `db:"failure_reason"`
	WebhookData   jsonb          `db:"webhook_data"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
	UpdatedAt time.Time `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgPayment) ToDomain() *domain.Payment {
	return &domain.Payment{
		ID:            domain.PaymentID(p.ID),
		BookingID:     domain.BookingID(p.BookingID),
		Amount:        p.Amount,
		Currency:      p.Currency,
		Status:        domain.PaymentStatus(p.Status),
		Method:        domain.PaymentMethod(p.Method.String),
		TransactionID: p.TransactionID.String,
		CheckoutURL:   p.CheckoutURL.String,
		Reference:     p.Reference,
		CustomerEmail: p.CustomerEmail,
		CustomerPhone: p.CustomerPhone.String,
		CustomerName:  p.CustomerName,
		PaymentDate:   p.PaymentDate.Time,
		FailureReason: p.FailureReason.String,
		WebhookData:   json.RawMessage(p.WebhookData),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func (p *PgPayment) FromDomain(pm domain.Payment) {
	*p = PgPayment{
		ID:            uuid.UUID(pm.ID),
		BookingID:     uuid.UUID(pm.BookingID),
		Amount:        pm.Amount,
		Currency:      pm.Currency,
		Status:        string(pm.Status),
		Method:        nullString(string(pm.Method)),
		TransactionID: nullString(pm.TransactionID),
		CheckoutURL:   nullString(pm.CheckoutURL),
		Reference:     pm.Reference,
		CustomerEmail: pm.CustomerEmail,
		CustomerPhone: nullString(pm.CustomerPhone),
		CustomerName:  pm.CustomerName,
		PaymentDate:   nullTime(pm.PaymentDate),
		FailureReason: nullString(pm.FailureReason),
		WebhookData:   jsonb(pm.WebhookData),
		CreatedAt:     pm.CreatedAt,
		UpdatedAt:     pm.UpdatedAt,
	}
}

type PgReview struct {
	ID        uuid.UUID     `db:"id"         goqu:"skipinsert"`
	ListingID uuid.UUID     `db:"listing_id"`
	UserID    int64         `db:"user_id"`
	BookingID uuid.NullUUID `db:"booking_id"`

	Rating  int    `db:"rating"`
	Comment string `db:"comment"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
	UpdatedAt time.Time `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgReview) ToDomain() *domain.Review {
	r := &domain.Review{
		ID:        domain.ReviewID(p.ID),
		ListingID: domain.ListingID(p.ListingID),
		UserID:    domain.UserID(p.UserID),
		Rating:    p.Rating,
		Comment:   p.Comment,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
	if p.BookingID.Valid {
		bookingID := domain.BookingID(p.BookingID.UUID)
		r.BookingID = &bookingID
	}

	return r
}

func (p *PgReview) FromDomain(r domain.Review) {
	*p = PgReview{
		ID:        uuid.UUID(r.ID),
		ListingID: uuid.UUID(r.ListingID),
		UserID:    int64(r.UserID),
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
	if r.BookingID != nil {
		p.BookingID = uuid.NullUUID{UUID: uuid.UUID(*r.BookingID), Valid: true}
	}
}

// toDomain converts a slice of rows using the given per-row conversion.
func toDomain[P any, D any](rows []P, conv func(*P) *D) []D {
	out := make([]D, 0, len(rows))
	for i := range rows {
		out = append(out, *conv(&rows[i]))
	}

	return out
}
