package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ListingID uniquely identifies a listing.
type ListingID uuid.UUID

func (id ListingID) String() string { return uuid.UUID(id).String() }

// PropertyType is the kind of property a listing offers.
type PropertyType string

const (
	PropertyTypeHotel      PropertyType = "hotel"
	PropertyTypeApartment  PropertyType = "apartment"
	PropertyTypeHouse      PropertyType = "house"
	PropertyTypeVilla      PropertyType = "villa"
	PropertyTypeResort     PropertyType = "resort"
	PropertyTypeHostel     PropertyType = "hostel"
	PropertyTypeGuesthouse PropertyType = "guesthouse"
)

// PropertyTypes lists every supported property type.
var PropertyTypes = []PropertyType{ //nolint: gochecknoglobals
	PropertyTypeHotel,
	PropertyTypeApartment,
	PropertyTypeHouse,
	PropertyTypeVilla,
	PropertyTypeResort,
	PropertyTypeHostel,
	PropertyTypeGuesthouse,
}

// Valid reports whether t is one of the supported property types.
func (t PropertyType) Valid() bool {
	for _, pt := range PropertyTypes {
		if pt == t {
			return true
		}
	}

	return false
}

const (
	// MaxGuestsLimit is the upper bound for Listing.MaxGuests.
	MaxGuestsLimit = 20
	// MaxNameLength bounds listing names and locations.
	MaxNameLength = 200
)

// Listing is a property offered for booking by a host.
type Listing struct {
	ID     ListingID
	HostID UserID
	// Host is populated by read operations that resolve the host account.
	Host *User

	Name          string
	Description   string
	Location      string
	PricePerNight decimal.Decimal
	PropertyType  PropertyType
	MaxGuests     int
	Bedrooms      int
	Bathrooms     int
	// Amenities is a comma separated list, see AmenitiesList.
	Amenities string
	Available bool

	// AverageRating is the mean rating of the listing reviews, zero when there are none.
	AverageRating float64
	TotalReviews  int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// AmenitiesList splits Amenities into trimmed entries.
func (l Listing) AmenitiesList() []string {
	if l.Amenities == "" {
		return []string{}
	}

	parts := strings.Split(l.Amenities, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}

	return out
}
