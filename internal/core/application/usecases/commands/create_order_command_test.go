package commands_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustIdentity(t *testing.T, value string) kernel.Identity {
	t.Helper()
	identity, err := kernel.NewIdentity(value)
	require.NoError(t, err)
	return identity
}

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	requester := mustIdentity(t, "buyer@example.com")
	userID, productID, addressID := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()
	lines := []services.LineRequest{{ProductID: productID, Quantity: 2}}

	cmd, err := commands.NewCreateOrderCommand(requester, userID, &addressID, lines)

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, requester, cmd.Requester())
	assert.Equal(t, userID, cmd.UserID())
	assert.Equal(t, &addressID, cmd.ShippingAddressID())

	req := cmd.Request()
	assert.Equal(t, userID, req.UserID)
	assert.Equal(t, lines, req.Lines)

	lines[0].Quantity = 99
	assert.Equal(t, 2, cmd.Request().Lines[0].Quantity)
}

func TestNewCreateOrderCommand_InvalidInput(t *testing.T) {
	requester := mustIdentity(t, "buyer@example.com")
	line := services.LineRequest{ProductID: kernel.NewUUID(), Quantity: 1}

	t.Run("missing requester", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(kernel.Identity{}, kernel.NewUUID(), nil, []services.LineRequest{line})
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("invalid user id", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(requester, kernel.UUID{}, nil, []services.LineRequest{line})
		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("no lines", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(requester, kernel.NewUUID(), nil, nil)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("non-positive quantity", func(t *testing.T) {
		bad := services.LineRequest{ProductID: kernel.NewUUID(), Quantity: 0}
		_, err := commands.NewCreateOrderCommand(requester, kernel.NewUUID(), nil, []services.LineRequest{bad})
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		require.ErrorIs(t, commands.CreateOrderCommand{}.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	})
}
