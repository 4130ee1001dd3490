package commands_test

import (
	"testing"

	"routeboard/internal/core/application/usecases/commands"
	"routeboard/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDay(t *testing.T) kernel.Day {
	t.Helper()
	day, err := kernel.ParseDay("2024-03-15")
	require.NoError(t, err)
	return day
}

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	day := mustDay(t)
	cmd, err := commands.NewCreateOrderCommand(id, "Ana Ruiz", "Av. Central 120", 35.5, true, day)
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, id, cmd.OrderID())
	assert.Equal(t, "Ana Ruiz", cmd.ClientName())
	assert.Equal(t, "Av. Central 120", cmd.Address())
	assert.InDelta(t, 35.5, cmd.Total(), 0.0001)
	assert.True(t, cmd.HasCredit())
	assert.Equal(t, day, cmd.DeliveryDay())
}

func TestNewCreateOrderCommand_InvalidInput(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.UUID{}, " ", "", -1, false, kernel.Day{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	assert.ErrorIs(t, err, commands.ErrClientNameIsRequired)
	assert.ErrorIs(t, err, commands.ErrAddressIsRequired)
	assert.ErrorIs(t, err, commands.ErrTotalIsInvalid)
	assert.ErrorIs(t, err, kernel.ErrDayIsNotConstructed)
}

func TestCreateOrderCommand_NotConstructed(t *testing.T) {
	var cmd commands.CreateOrderCommand
	assert.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
}
