// Package idempotency records which deliveries of at-least-once messages (such
// as gateway webhooks) were already taken for processing.
package idempotency

import (
	"context"
	"time"
)

// Store claims keys for a limited time.
//
//go:generate mockgen -package mockidempotency -source=interface.go -destination=mock/mockidempotency.go *
type Store interface {
	// Claim reports true when the key was not claimed yet and is now held for ttl.
	Claim(ctx context.Context, key string, ttl time.Duration) (bool, error)
	// Release drops a claim so that a later delivery is processed again.
	Release(ctx context.Context, key string) error
}
