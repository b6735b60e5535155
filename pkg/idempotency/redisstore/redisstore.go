// Package redisstore implements idempotency.Store on Redis.
package redisstore

import (
	"context"
	"fmt"
	"time"
	"travel/pkg/idempotency"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "idempotency:"

// Options holds the Redis connection settings.
type Options struct {
	Addr     string
	Password string
	DB       int
}

// Store keeps claims as Redis keys set with NX and an expiry.
type Store struct {
	client redis.UniversalClient
}

var _ idempotency.Store = (*Store)(nil)

// New connects to Redis and verifies the connection.
func New(ctx context.Context, options Options) (*Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         options.Addr,
		Password:     options.Password,
		DB:           options.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()

		return nil, fmt.Errorf("could not connect to redis: %w", err)
	}

	return NewWithClient(client), nil
}

// NewWithClient wraps an existing client.
func NewWithClient(client redis.UniversalClient) *Store {
	return &Store{client: client}
}

func (s *Store) Claim(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	ok, err := s.client.SetNX(ctx, keyPrefix+key, time.Now().Unix(), ttl).Result()
	if err != nil {
		return false, fmt.Errorf("could not claim key: %w", err)
	}

	return ok, nil
}

func (s *Store) Release(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, keyPrefix+key).Err(); err != nil {
		return fmt.Errorf("could not release key: %w", err)
	}

	return nil
}

// Close closes the underlying client.
func (s *Store) Close() error {
	return s.client.Close() //nolint: wrapcheck
}

// Ping checks that the server is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err() //nolint: wrapcheck
}
