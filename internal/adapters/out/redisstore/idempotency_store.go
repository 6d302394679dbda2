// Package redisstore keeps order placement idempotency keys in Redis.
package redisstore

import (
	"context"
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix = "marketplace:idempotency:order:"

	// pending marks a key claimed by a placement that has not finished yet.
	pending = "pending"
)

// IdempotencyStore maps Idempotency-Key values to the orders they created.
// Keys expire after ttl, claimed or completed.
type IdempotencyStore struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewIdempotencyStore(client redis.Cmdable, ttl time.Duration) *IdempotencyStore {
	return &IdempotencyStore{client: client, ttl: ttl}
}

// Claim takes the key with SET NX. A caller that loses reads the current value to
// tell a finished placement from one in progress.
func (s *IdempotencyStore) Claim(ctx context.Context, key string) (kernel.UUID, bool, error) {
	claimed, err := s.client.SetNX(ctx, keyPrefix+key, pending, s.ttl).Result()
	if err != nil {
		return kernel.UUID{}, false, err
	}
	if claimed {
		return kernel.UUID{}, true, nil
	}

	value, err := s.client.Get(ctx, keyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		// Released or expired between SETNX and GET; the client retries.
		return kernel.UUID{}, false, ports.ErrIdempotencyKeyInProgress
	}
	if err != nil {
		return kernel.UUID{}, false, err
	}
	if value == pending {
		return kernel.UUID{}, false, ports.ErrIdempotencyKeyInProgress
	}

	orderID, err := kernel.UUIDFromString(value)
	if err != nil {
		return kernel.UUID{}, false, err
	}
	return orderID, false, nil
}

func (s *IdempotencyStore) Complete(ctx context.Context, key string, orderID kernel.UUID) error {
	return s.client.Set(ctx, keyPrefix+key, orderID.String(), s.ttl).Err()
}

func (s *IdempotencyStore) Release(ctx context.Context, key string) error {
	return s.client.Del(ctx, keyPrefix+key).Err()
}
