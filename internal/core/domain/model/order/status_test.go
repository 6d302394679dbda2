package order_test

import (
	"fmt"
	"testing"

	"marketplace/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	t.Run("should parse canonical names", func(t *testing.T) {
		for _, status := range order.Statuses() {
			parsed, err := order.ParseStatus(status.String())
			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})

	t.Run("should ignore case and surrounding spaces", func(t *testing.T) {
		parsed, err := order.ParseStatus("  shipped ")
		require.NoError(t, err)
		assert.Equal(t, order.Shipped, parsed)

		parsed, err = order.ParseStatus("Processing")
		require.NoError(t, err)
		assert.Equal(t, order.Processing, parsed)
	})

	t.Run("should reject unknown values", func(t *testing.T) {
		for _, value := range []string{"", "FOO", "UNKNOWN", "PENDINGX", "0"} {
			_, err := order.ParseStatus(value)

			require.ErrorIs(t, err, order.ErrInvalidStatusValue, value)
			var invalid *order.InvalidStatusValueError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, value, invalid.Value)
		}
	})
}

func TestStatus_Validate(t *testing.T) {
	for _, status := range order.Statuses() {
		assert.NoError(t, status.Validate(), status.String())
	}
	assert.ErrorIs(t, order.Unknown.Validate(), order.ErrInvalidStatusValue)
	assert.ErrorIs(t, order.Status(42).Validate(), order.ErrInvalidStatusValue)
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "PENDING", order.Pending.String())
	assert.Equal(t, "CANCELLED", order.Cancelled.String())
	assert.Equal(t, "UNKNOWN", order.Unknown.String())
	assert.Equal(t, "UNKNOWN", order.Status(99).String())
}

func TestStatus_TransitionTo(t *testing.T) {
	allowed := map[order.Status][]order.Status{
		order.Pending:    {order.Processing, order.Cancelled},
		order.Processing: {order.Shipped, order.Cancelled},
		order.Shipped:    {order.Delivered},
		order.Delivered:  {},
		order.Cancelled:  {},
	}

	for from, targets := range allowed {
		for _, to := range order.Statuses() {
			t.Run(fmt.Sprintf("%s to %s", from, to), func(t *testing.T) {
				got, err := from.TransitionTo(to)

				if contains(targets, to) {
					require.NoError(t, err)
					assert.Equal(t, to, got)
					assert.True(t, from.CanTransitionTo(to))
					return
				}

				require.ErrorIs(t, err, order.ErrIllegalTransition)
				var illegal *order.IllegalTransitionError
				require.ErrorAs(t, err, &illegal)
				assert.Equal(t, from, illegal.From)
				assert.Equal(t, to, illegal.To)
				assert.Equal(t, from, got)
			})
		}
	}
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, order.Delivered.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())
	assert.False(t, order.Pending.IsTerminal())
	assert.False(t, order.Processing.IsTerminal())
	assert.False(t, order.Shipped.IsTerminal())
}

func contains(statuses []order.Status, s order.Status) bool {
	for _, candidate := range statuses {
		if candidate == s {
			return true
		}
	}
	return false
}
