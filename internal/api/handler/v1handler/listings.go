package v1handler

import (
	"net/http"
	"travel/internal/listings"
	"travel/pkg/domain"

	"github.com/google/uuid"
)

func (h Handler) ListListings(w http.ResponseWriter, r *http.Request) {
	cursor, limit, err := pagination(r)
	if err != nil {
		h.WriteError(w, r, err)

		return
	}

	items, next, err := h.deps.Listings.List(r.Context(), listings.ParseFilter(r.URL.Query()), cursor, limit)
	if err != nil {
		h.WriteError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, newPage(items, next, ListingToV1))
}

func (h Handler) SearchListings(w http.ResponseWriter, r *http.Request) {
	cursor, limit, err := pagination(r)
	if err != nil {
		h.WriteError(w, r, err)

		return
	}

	q := r.URL.Query()
	items, next, err := h.deps.Listings.Search(r.Context(), listings.ParseFilter(q), q.Get("search"), cursor, limit)
	if err != nil {
		h.WriteError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, newPage(items, next, ListingToV1))
}

func (h Handler) CreateListing(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ListingRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.WriteError(w, r, err)

		return
	}

	l, err := h.deps.Listings.Create(ctx, GetUserIDFromContext(ctx), req.Input())
	if err != nil {
		h.WriteError(w, r, err)

		return
	}

	writeJSON(ctx, w, http.StatusCreated, ListingToV1(l))
}

func (h Handler) GetListing(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "listing_id", "Listing")
	if err != nil {
		h.WriteError(w, r, err)

		return
	}

	l, err := h.deps.Listings.Get(r.Context(), domain.ListingID(id))
	if err != nil {
		h.WriteError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, ListingToV1(l))
}

// UpdateListing serves both PUT and PATCH; absent fields are kept.
func (h Handler) UpdateListing(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "listing_id", "Listing")
	if err != nil {
		h.WriteError(w, r, err)

		return
	}

	var req ListingRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.WriteError(w, r, err)

		return
	}

	l, err := h.deps.Listings.Update(r.Context(), domain.ListingID(id), req.Input())
	if err != nil {
		h.WriteError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, ListingToV1(l))
}

func (h Handler) DeleteListing(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "listing_id", "Listing")
	if err != nil {
		h.WriteError(w, r, err)

		return
	}

	if err := h.deps.Listings.Delete(r.Context(), domain.ListingID(id)); err != nil {
		h.WriteError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h Handler) ListListingReviews(w http.ResponseWriter, r *http.Request) {
	id, cursor, limit, err := listingPage(r)
	if err != nil {
		h.WriteError(w, r, err)

		return
	}

	items, next, err := h.deps.Listings.Reviews(r.Context(), domain.ListingID(id), cursor, limit)
	if err != nil {
		h.WriteError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, newPage(items, next, ReviewToV1))
}

func (h Handler) ListListingBookings(w http.ResponseWriter, r *http.Request) {
	id, cursor, limit, err := listingPage(r)
	if err != nil {
		h.WriteError(w, r, err)

		return
	}

	items, next, err := h.deps.Listings.Bookings(r.Context(), domain.ListingID(id), cursor, limit)
	if err != nil {
		h.WriteError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, newPage(items, next, BookingToV1))
}

func listingPage(r *http.Request) (uuid.UUID, string, uint, error) {
	id, err := pathUUID(r, "listing_id", "Listing")
	if err != nil {
		return uuid.Nil, "", 0, err
	}
	cursor, limit, err := pagination(r)
	if err != nil {
		return uuid.Nil, "", 0, err
	}

	return id, cursor, limit, nil
}
