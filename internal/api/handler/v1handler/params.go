package v1handler

import (
	"net/http"
	"net/url"
	"strconv"
	"travel/pkg/domain"
	"travel/pkg/serrors"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// pathUUID reads a UUID path parameter. Malformed IDs cannot name an existing
// resource and are reported as not found.
func pathUUID(r *http.Request, name, resource string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, serrors.With(serrors.ErrNotFound, "%s not found", resource)
	}

	return id, nil
}

func queryUUID(q url.Values, name string) (uuid.UUID, error) {
	raw := q.Get(name)
	if raw == "" {
		return uuid.Nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, serrors.With(serrors.ErrBadRequest, "%s must be a UUID", name)
	}

	return id, nil
}

func queryUserID(q url.Values, name string) (domain.UserID, error) {
	raw := q.Get(name)
	if raw == "" {
		return 0, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, serrors.With(serrors.ErrBadRequest, "%s must be a positive integer", name)
	}

	return domain.UserID(id), nil
}

func queryInt(q url.Values, name string) (int, error) {
	raw := q.Get(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, serrors.With(serrors.ErrBadRequest, "%s must be an integer", name)
	}

	return v, nil
}
