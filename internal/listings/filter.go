package listings

import (
	"net/url"
	"strconv"
	"strings"
	"travel/pkg/domain"
	"travel/pkg/storage"

	"github.com/shopspring/decimal"
)

// ParseFilter builds a listing filter from query parameters. Parameters that
// do not parse are ignored.
func ParseFilter(q url.Values) storage.ListingFilter {
	filter := storage.ListingFilter{
		Location:     strings.TrimSpace(q.Get("location")),
		PropertyType: domain.PropertyType(q.Get("property_type")),
	}

	if q.Has("available") {
		available := parseBool(q.Get("available"))
		filter.Available = &available
	}
	if v, err := decimal.NewFromString(q.Get("min_price")); err == nil {
		filter.MinPrice = &v
	}
	if v, err := decimal.NewFromString(q.Get("max_price")); err == nil {
		filter.MaxPrice = &v
	}
	if v, err := strconv.Atoi(q.Get("guests")); err == nil {
		filter.MinGuests = v
	}

	return filter
}

func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes":
		return true
	default:
		return false
	}
}
