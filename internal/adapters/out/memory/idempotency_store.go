package memory

import (
	"context"
	"sync"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/ports"
)

type idempotencyEntry struct {
	orderID   kernel.UUID
	completed bool
	expiresAt time.Time
}

// IdempotencyStore is the in-process ports.IdempotencyStore. Entries expire after ttl.
type IdempotencyStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]idempotencyEntry
}

func NewIdempotencyStore(ttl time.Duration) *IdempotencyStore {
	return &IdempotencyStore{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]idempotencyEntry),
	}
}

func (s *IdempotencyStore) Claim(_ context.Context, key string) (kernel.UUID, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	entry, ok := s.entries[key]
	if ok && now.Before(entry.expiresAt) {
		if !entry.completed {
			return kernel.UUID{}, false, ports.ErrIdempotencyKeyInProgress
		}
		return entry.orderID, false, nil
	}

	s.entries[key] = idempotencyEntry{expiresAt: now.Add(s.ttl)}
	return kernel.UUID{}, true, nil
}

func (s *IdempotencyStore) Complete(_ context.Context, key string, orderID kernel.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = idempotencyEntry{orderID: orderID, completed: true, expiresAt: s.now().Add(s.ttl)}
	return nil
}

func (s *IdempotencyStore) Release(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
	return nil
}
