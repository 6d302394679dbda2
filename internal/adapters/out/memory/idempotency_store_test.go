package memory_test

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"marketplace/internal/adapters/out/memory"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdempotencyStore_ClaimLifecycle(t *testing.T) {
	ctx := t.Context()
	store := memory.NewIdempotencyStore(time.Hour)

	_, claimed, err := store.Claim(ctx, "k")
	require.NoError(t, err)
	require.True(t, claimed)

	_, claimed, err = store.Claim(ctx, "k")
	require.ErrorIs(t, err, ports.ErrIdempotencyKeyInProgress)
	assert.False(t, claimed)

	orderID := kernel.NewUUID()
	require.NoError(t, store.Complete(ctx, "k", orderID))

	stored, claimed, err := store.Claim(ctx, "k")
	require.NoError(t, err)
	assert.False(t, claimed)
	assert.True(t, stored.IsEqual(orderID))
}

func TestIdempotencyStore_Release(t *testing.T) {
	ctx := t.Context()
	store := memory.NewIdempotencyStore(time.Hour)

	_, _, err := store.Claim(ctx, "k")
	require.NoError(t, err)
	require.NoError(t, store.Release(ctx, "k"))

	_, claimed, err := store.Claim(ctx, "k")
	require.NoError(t, err)
	assert.True(t, claimed)
}

func TestIdempotencyStore_Expiry(t *testing.T) {
	ctx := t.Context()
	store := memory.NewIdempotencyStore(0)

	_, _, err := store.Claim(ctx, "k")
	require.NoError(t, err)

	_, claimed, err := store.Claim(ctx, "k")
	require.NoError(t, err)
	assert.True(t, claimed, "an expired claim is free again")
}

func TestIdempotencyStore_ConcurrentClaims(t *testing.T) {
	ctx := t.Context()
	store := memory.NewIdempotencyStore(time.Hour)

	var (
		wg   sync.WaitGroup
		wins atomic.Int32
	)
	for range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, claimed, err := store.Claim(ctx, "k"); err == nil && claimed {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins.Load())
}
