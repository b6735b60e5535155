package notification

import (
	"context"
	"travel/pkg/storage"

	"github.com/google/uuid"
)

// Notifier renders and delivers the transactional e-mails of the service.
//
//go:generate mockgen -package mocknotification -source=interface.go -destination=mock/mocknotification.go *
type Notifier interface {
	// Enqueue adds a delivery job for the template through jobs, which may be
	// a transactional storage handle.
	Enqueue(ctx context.Context, jobs storage.JobStorage, template Template, ID uuid.UUID) error
	// Send renders the template for the entity with the given ID and delivers it.
	// A serrors.ErrNotFound error is returned when the entity no longer exists.
	Send(ctx context.Context, template Template, ID uuid.UUID) error
}
