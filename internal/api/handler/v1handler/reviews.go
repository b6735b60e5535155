package v1handler

import (
	"net/http"
	"travel/pkg/domain"
	"travel/pkg/storage"
)

func (h Handler) ListReviews(w http.ResponseWriter, r *http.Request) {
	cursor, limit, err := pagination(r)
	if err != nil {
		h.WriteError(w, r, err)

		return
	}

	q := r.URL.Query()
	var filter storage.ReviewFilter
	listingID, err := queryUUID(q, "listing_id")
	if err != nil {
		h.WriteError(w, r, err)

		return
	}
	filter.ListingID = domain.ListingID(listingID)
	if filter.UserID, err = queryUserID(q, "user_id"); err != nil {
		h.WriteError(w, r, err)

		return
	}
	if filter.MinRating, err = queryInt(q, "min_rating"); err != nil {
		h.WriteError(w, r, err)

		return
	}

	items, next, err := h.deps.Reviews.List(r.Context(), filter, cursor, limit)
	if err != nil {
		h.WriteError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, newPage(items, next, ReviewToV1))
}

func (h Handler) CreateReview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ReviewRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.WriteError(w, r, err)

		return
	}

	rv, err := h.deps.Reviews.Create(ctx, GetUserIDFromContext(ctx), req.Input())
	if err != nil {
		h.WriteError(w, r, err)

		return
	}

	writeJSON(ctx, w, http.StatusCreated, ReviewToV1(rv))
}

func (h Handler) GetReview(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "review_id", "Review")
	if err != nil {
		h.WriteError(w, r, err)

		return
	}

	rv, err := h.deps.Reviews.Get(r.Context(), domain.ReviewID(id))
	if err != nil {
		h.WriteError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, ReviewToV1(rv))
}

// UpdateReview serves both PUT and PATCH; only rating and comment change.
func (h Handler) UpdateReview(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "review_id", "Review")
	if err != nil {
		h.WriteError(w, r, err)

		return
	}

	var req ReviewRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.WriteError(w, r, err)

		return
	}

	rv, err := h.deps.Reviews.Update(r.Context(), domain.ReviewID(id), req.Input())
	if err != nil {
		h.WriteError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, ReviewToV1(rv))
}

func (h Handler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "review_id", "Review")
	if err != nil {
		h.WriteError(w, r, err)

		return
	}

	if err := h.deps.Reviews.Delete(r.Context(), domain.ReviewID(id)); err != nil {
		h.WriteError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
