package storage

import (
	"context"
	"travel/pkg/domain"
)

// UserStorage defines persistence operations for user accounts.
type UserStorage interface {
	// StoreUser inserts a user and returns the stored row. ErrDuplicate is
	// returned when the username is taken.
	StoreUser(ctx context.Context, user domain.User) (*domain.User, error)
	// UserByID returns nil when the user does not exist.
	UserByID(ctx context.Context, ID domain.UserID) (*domain.User, error)
	// UserByUsername returns nil when the user does not exist.
	UserByUsername(ctx context.Context, username string) (*domain.User, error)
	// UsersByIDs returns the users that exist among the given IDs, in no particular order.
	UsersByIDs(ctx context.Context, IDs ...domain.UserID) ([]domain.User, error)
}
