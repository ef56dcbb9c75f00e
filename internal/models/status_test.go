package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextStatusDeliveryFlow(t *testing.T) {
	steps := []struct {
		current OrderStatus
		next    OrderStatus
	}{
		{StatusPending, StatusConfirmed},
		{StatusConfirmed, StatusPreparing},
		{StatusPreparing, StatusOutForDelivery},
		{StatusOutForDelivery, StatusDelivered},
		{StatusDelivered, StatusCompleted},
	}

	for _, step := range steps {
		next, ok := NextStatus(step.current, OrderTypeDelivery)
		require.True(t, ok, "expected successor for %s", step.current)
		assert.Equal(t, step.next, next)
	}

	_, ok := NextStatus(StatusCompleted, OrderTypeDelivery)
	assert.False(t, ok, "completed is terminal")
}

func TestNextStatusPickupFlow(t *testing.T) {
	steps := []struct {
		current OrderStatus
		next    OrderStatus
	}{
		{StatusPending, StatusConfirmed},
		{StatusConfirmed, StatusPreparing},
		{StatusPreparing, StatusCompleted},
	}

	for _, step := range steps {
		next, ok := NextStatus(step.current, OrderTypePickup)
		require.True(t, ok, "expected successor for %s", step.current)
		assert.Equal(t, step.next, next)
	}

	_, ok := NextStatus(StatusCompleted, OrderTypePickup)
	assert.False(t, ok)
}

func TestNextStatusDivergesByOrderType(t *testing.T) {
	next, ok := NextStatus(StatusPreparing, OrderTypePickup)
	require.True(t, ok)
	assert.Equal(t, StatusCompleted, next)

	next, ok = NextStatus(StatusPreparing, OrderTypeDelivery)
	require.True(t, ok)
	assert.Equal(t, StatusOutForDelivery, next)
}

func TestNextStatusCancelledHasNoSuccessor(t *testing.T) {
	for _, orderType := range []OrderType{OrderTypeDelivery, OrderTypePickup} {
		_, ok := NextStatus(StatusCancelled, orderType)
		assert.False(t, ok, "cancelled must not progress for %s", orderType)
	}
}

func TestNextStatusUnknownStatus(t *testing.T) {
	_, ok := NextStatus(OrderStatus("teleported"), OrderTypeDelivery)
	assert.False(t, ok)
}

func TestNextStatusOutForDeliveryNotInPickupFlow(t *testing.T) {
	// A pickup order should never carry out_for_delivery, but if a row does,
	// the engine must simply decline to advance it.
	_, ok := NextStatus(StatusOutForDelivery, OrderTypePickup)
	assert.False(t, ok)
}

func TestStatusInfoKnownStatuses(t *testing.T) {
	tests := []struct {
		status OrderStatus
		label  string
	}{
		{StatusPending, "Pendente"},
		{StatusConfirmed, "Confirmado"},
		{StatusPreparing, "Preparando"},
		{StatusOutForDelivery, "Em Entrega"},
		{StatusDelivered, "Entregue"},
		{StatusCompleted, "Concluído"},
		{StatusCancelled, "Cancelado"},
	}

	for _, tt := range tests {
		info := StatusInfo(tt.status)
		assert.Equal(t, tt.label, info.Label)
		assert.NotEmpty(t, info.Color)
	}
}

func TestStatusInfoUnknownFallsBack(t *testing.T) {
	info := StatusInfo(OrderStatus("archived"))
	assert.Equal(t, "Desconhecido", info.Label)
	assert.Equal(t, "bg-gray-100 text-gray-800 border-gray-200", info.Color)
}

func TestParseOrderStatus(t *testing.T) {
	status, err := ParseOrderStatus("out_for_delivery")
	require.NoError(t, err)
	assert.Equal(t, StatusOutForDelivery, status)

	_, err = ParseOrderStatus("ready")
	assert.Error(t, err)
}

func TestParseOrderType(t *testing.T) {
	orderType, err := ParseOrderType("pickup")
	require.NoError(t, err)
	assert.Equal(t, OrderTypePickup, orderType)

	_, err = ParseOrderType("dine_in")
	assert.Error(t, err)
}
