package models

import "fmt"

type OrderStatus string

const (
	StatusPending        OrderStatus = "pending"
	StatusConfirmed      OrderStatus = "confirmed"
	StatusPreparing      OrderStatus = "preparing"
	StatusOutForDelivery OrderStatus = "out_for_delivery"
	StatusDelivered      OrderStatus = "delivered"
	StatusCompleted      OrderStatus = "completed"
	StatusCancelled      OrderStatus = "cancelled"
)

type OrderType string

const (
	OrderTypeDelivery OrderType = "delivery"
	OrderTypePickup   OrderType = "pickup"
)

// Forward progressions per fulfillment type. Cancellation is an external
// action and never appears in either flow.
var (
	deliveryFlow = []OrderStatus{
		StatusPending,
		StatusConfirmed,
		StatusPreparing,
		StatusOutForDelivery,
		StatusDelivered,
		StatusCompleted,
	}
	pickupFlow = []OrderStatus{
		StatusPending,
		StatusConfirmed,
		StatusPreparing,
		StatusCompleted,
	}
)

// Statuses still moving through the kitchen or on the road.
var ActiveStatuses = []OrderStatus{
	StatusPending,
	StatusConfirmed,
	StatusPreparing,
	StatusOutForDelivery,
}

// Statuses that count as fulfilled for revenue and sales reporting.
var SettledStatuses = []OrderStatus{
	StatusDelivered,
	StatusCompleted,
}

func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(s) {
	case StatusPending, StatusConfirmed, StatusPreparing, StatusOutForDelivery,
		StatusDelivered, StatusCompleted, StatusCancelled:
		return OrderStatus(s), nil
	default:
		return "", fmt.Errorf("unknown order status: %q", s)
	}
}

func ParseOrderType(s string) (OrderType, error) {
	switch OrderType(s) {
	case OrderTypeDelivery, OrderTypePickup:
		return OrderType(s), nil
	default:
		return "", fmt.Errorf("unknown order type: %q", s)
	}
}

// NextStatus returns the successor of the current status in the progression
// for the given fulfillment type. The second return is false when there is no
// further step: the last status of a flow, a cancelled order, or a status the
// flow does not contain at all.
func NextStatus(current OrderStatus, orderType OrderType) (OrderStatus, bool) {
	flow := pickupFlow
	if orderType == OrderTypeDelivery {
		flow = deliveryFlow
	}

	for i, status := range flow {
		if status == current {
			if i == len(flow)-1 {
				return "", false
			}
			return flow[i+1], true
		}
	}
	return "", false
}

// StatusDisplay is the presentation mapping for one order status.
type StatusDisplay struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

var statusDisplays = map[OrderStatus]StatusDisplay{
	StatusPending:        {Label: "Pendente", Color: "bg-yellow-100 text-yellow-800 border-yellow-200"},
	StatusConfirmed:      {Label: "Confirmado", Color: "bg-blue-100 text-blue-800 border-blue-200"},
	StatusPreparing:      {Label: "Preparando", Color: "bg-indigo-100 text-indigo-800 border-indigo-200"},
	StatusOutForDelivery: {Label: "Em Entrega", Color: "bg-cyan-100 text-cyan-800 border-cyan-200"},
	StatusDelivered:      {Label: "Entregue", Color: "bg-green-100 text-green-800 border-green-200"},
	StatusCompleted:      {Label: "Concluído", Color: "bg-gray-100 text-gray-800 border-gray-200"},
	StatusCancelled:      {Label: "Cancelado", Color: "bg-red-100 text-red-800 border-red-200"},
}

var unknownStatusDisplay = StatusDisplay{
	Label: "Desconhecido",
	Color: "bg-gray-100 text-gray-800 border-gray-200",
}

// StatusInfo never fails: a status the table does not know, for example a
// value written by an older schema, maps to the generic gray entry.
func StatusInfo(status OrderStatus) StatusDisplay {
	if display, ok := statusDisplays[status]; ok {
		return display
	}
	return unknownStatusDisplay
}
