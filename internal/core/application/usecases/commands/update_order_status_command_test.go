package commands_test

import (
	"testing"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateOrderStatusCommand_Success(t *testing.T) {
	orderID := kernel.NewUUID()
	partnerID := kernel.NewUUID()

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, partnerID, order.Arriving, nil)
	require.NoError(t, err)

	assert.True(t, cmd.OrderID().IsEqual(orderID))
	assert.True(t, cmd.PartnerID().IsEqual(partnerID))
	assert.Equal(t, order.Arriving, cmd.Status())
	require.NoError(t, cmd.Validate())
}

func TestNewUpdateOrderStatusCommand_InvalidStatus(t *testing.T) {
	_, err := commands.NewUpdateOrderStatusCommand(
		kernel.NewUUID(), kernel.NewUUID(), order.Status(42), nil)
	require.Error(t, err)
}

func TestNewUpdateOrderStatusCommand_UnknownStatus(t *testing.T) {
	_, err := commands.NewUpdateOrderStatusCommand(
		kernel.NewUUID(), kernel.NewUUID(), order.Unknown, nil)
	require.Error(t, err)
}

func TestNewUpdateOrderStatusCommand_EmptyPartnerID(t *testing.T) {
	_, err := commands.NewUpdateOrderStatusCommand(
		kernel.NewUUID(), kernel.UUID{}, order.Arriving, nil)
	require.Error(t, err)
}

func TestNewUpdateOrderStatusCommand_WithCourierLocation(t *testing.T) {
	point, err := kernel.NewGeoPoint(51.5074, -0.1278)
	require.NoError(t, err)
	courierLocation, err := order.NewLocationSnapshot(&point, "Baker Street")
	require.NoError(t, err)

	cmd, err := commands.NewUpdateOrderStatusCommand(
		kernel.NewUUID(), kernel.NewUUID(), order.Delivered, &courierLocation)
	require.NoError(t, err)

	require.NotNil(t, cmd.CourierLocation())
	assert.Equal(t, "Baker Street", cmd.CourierLocation().Address())
}

func TestUpdateOrderStatusCommand_Validate_ZeroValue(t *testing.T) {
	cmd := commands.UpdateOrderStatusCommand{}
	require.ErrorIs(t, cmd.Validate(), commands.ErrUpdateOrderStatusCommandIsNotConstructed)
}
