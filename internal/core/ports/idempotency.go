package ports

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
)

// ErrIdempotencyKeyInProgress is returned by Claim while another placement holds the key.
var ErrIdempotencyKeyInProgress = errors.New("idempotency key is held by a placement in progress")

// IdempotencyStore binds client-chosen placement keys to the orders they created.
//
// A key moves from unknown to claimed to completed. Claim is atomic: of any number of
// concurrent callers exactly one gets claimed == true. A claimed key that is released
// becomes unknown again.
type IdempotencyStore interface {
	// Claim reserves key for a new placement. When key already produced an order it
	// returns that order id with claimed == false. While another placement holds key
	// it fails with ErrIdempotencyKeyInProgress.
	Claim(ctx context.Context, key string) (orderID kernel.UUID, claimed bool, err error)

	// Complete binds a claimed key to the order it created.
	Complete(ctx context.Context, key string, orderID kernel.UUID) error

	// Release drops a claim whose placement failed.
	Release(ctx context.Context, key string) error
}
