package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderItemResolveNamePriority(t *testing.T) {
	item := OrderItem{
		ItemName:    "X Burger",
		Name:        "x-burger-legacy",
		ProductName: "x burger pn",
	}
	assert.Equal(t, "X Burger", item.ResolveName())

	item = OrderItem{Name: "Batata Frita", Item: "batata"}
	assert.Equal(t, "Batata Frita", item.ResolveName())

	item = OrderItem{Item: "Suco de Laranja"}
	assert.Equal(t, "Suco de Laranja", item.ResolveName())

	item = OrderItem{ProductName: "Pudim"}
	assert.Equal(t, "Pudim", item.ResolveName())

	assert.Empty(t, OrderItem{Quantity: 2, Price: 5}.ResolveName())
}

func TestOrderItemSubtotal(t *testing.T) {
	item := OrderItem{Quantity: 3, Price: 12.5}
	assert.InDelta(t, 37.5, item.Subtotal(), 1e-9)
}

func TestDecodeStructuredItems(t *testing.T) {
	payload := OrderItemsJSON(`[{"item_name":"X Burger","quantity":2,"price":10}]`)

	items, err := payload.Decode()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "X Burger", items[0].ItemName)
	assert.Equal(t, 2, items[0].Quantity)
	assert.InDelta(t, 10, items[0].Price, 1e-9)
}

func TestDecodeStringEncodedItems(t *testing.T) {
	// Legacy rows hold the array serialized into a JSON string.
	payload := OrderItemsJSON(`"[{\"name\":\"Coca Lata\",\"quantity\":1,\"price\":6}]"`)

	items, err := payload.Decode()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Coca Lata", items[0].Name)
}

func TestDecodeMalformedItems(t *testing.T) {
	_, err := OrderItemsJSON(`{"oops`).Decode()
	assert.Error(t, err)

	_, err = OrderItemsJSON(`"not an array"`).Decode()
	assert.Error(t, err)

	_, err = OrderItemsJSON(nil).Decode()
	assert.Error(t, err)
}

func TestOrderItemsNeverPanics(t *testing.T) {
	order := &Order{OrderItems: OrderItemsJSON(`{"broken"`)}
	assert.Nil(t, order.Items())

	order = &Order{}
	assert.Nil(t, order.Items())
}

func TestCustomerNameFallback(t *testing.T) {
	order := &Order{}
	assert.Equal(t, "Cliente Anônimo", order.CustomerName())

	order.Customer = &Customer{Name: "Wagner"}
	assert.Equal(t, "Wagner", order.CustomerName())
}

func TestNewOrderItemsRoundTrip(t *testing.T) {
	payload, err := NewOrderItems([]OrderItem{{ItemName: "Smash Duplo", Quantity: 1, Price: 28}})
	require.NoError(t, err)

	items, err := payload.Decode()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Smash Duplo", items[0].ItemName)
}
