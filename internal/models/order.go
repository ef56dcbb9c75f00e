package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Order struct {
	ID          uuid.UUID      `json:"order_id" gorm:"type:uuid;primaryKey"`
	CustomerID  *uuid.UUID     `json:"customer_id" gorm:"type:uuid;index"`
	Customer    *Customer      `json:"customer,omitempty"`
	AddressID   *uuid.UUID     `json:"address_id" gorm:"type:uuid"`
	Address     *Address       `json:"address,omitempty"`
	Status      OrderStatus    `json:"status" gorm:"type:varchar(32);default:'pending';index"`
	OrderType   OrderType      `json:"order_type" gorm:"type:varchar(16);not null"`
	TotalAmount float64        `json:"total_amount" gorm:"not null"`
	OrderItems  OrderItemsJSON `json:"order_items" gorm:"type:jsonb"`
	CreatedAt   time.Time      `json:"created_at" gorm:"index"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// CustomerName mirrors the display fallback used when an order has no
// customer row attached.
func (o *Order) CustomerName() string {
	if o.Customer != nil && o.Customer.Name != "" {
		return o.Customer.Name
	}
	return "Cliente Anônimo"
}

// OrderItem is one line of an order's JSONB payload. Upstream writers have
// stored the product name under four different keys over time, so all four
// are kept and resolved through ResolveName.
type OrderItem struct {
	MenuItemID  string  `json:"menuItemId,omitempty"`
	ItemName    string  `json:"item_name,omitempty"`
	Name        string  `json:"name,omitempty"`
	Item        string  `json:"item,omitempty"`
	ProductName string  `json:"product_name,omitempty"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	Notes       string  `json:"notes,omitempty"`
	Details     string  `json:"details,omitempty"`
}

// ResolveName tries the known name keys in priority order. Empty string means
// no key held a name and the item cannot be attributed to a product.
func (i OrderItem) ResolveName() string {
	for _, name := range []string{i.ItemName, i.Name, i.Item, i.ProductName} {
		if name != "" {
			return name
		}
	}
	return ""
}

func (i OrderItem) Subtotal() float64 {
	return float64(i.Quantity) * i.Price
}

// OrderItemsJSON carries the raw jsonb payload of an order's items. It is
// kept raw on the model because some historic rows hold a doubly-encoded
// value (a JSON string that itself contains the array); Decode handles both.
type OrderItemsJSON []byte

func (j OrderItemsJSON) Value() (driver.Value, error) {
	if len(j) == 0 {
		return nil, nil
	}
	return []byte(j), nil
}

func (j *OrderItemsJSON) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*j = nil
		return nil
	case []byte:
		*j = append((*j)[0:0], v...)
		return nil
	case string:
		*j = OrderItemsJSON(v)
		return nil
	default:
		return fmt.Errorf("unsupported order_items column type %T", value)
	}
}

func (j OrderItemsJSON) MarshalJSON() ([]byte, error) {
	if len(j) == 0 {
		return []byte("null"), nil
	}
	return j, nil
}

func (j *OrderItemsJSON) UnmarshalJSON(data []byte) error {
	*j = append((*j)[0:0], data...)
	return nil
}

var errEmptyItems = errors.New("order has no items payload")

// Decode parses the items payload. It first tries a plain array, then the
// legacy shape where the array was serialized into a JSON string.
func (j OrderItemsJSON) Decode() ([]OrderItem, error) {
	if len(j) == 0 {
		return nil, errEmptyItems
	}

	var items []OrderItem
	if err := json.Unmarshal(j, &items); err == nil {
		return items, nil
	}

	var encoded string
	if err := json.Unmarshal(j, &encoded); err != nil {
		return nil, fmt.Errorf("order_items is neither an array nor a string: %w", err)
	}
	if err := json.Unmarshal([]byte(encoded), &items); err != nil {
		return nil, fmt.Errorf("failed to decode string-encoded order_items: %w", err)
	}
	return items, nil
}

// Items decodes the payload, mapping any failure to an empty list so one bad
// row cannot break a listing.
func (o *Order) Items() []OrderItem {
	items, err := o.OrderItems.Decode()
	if err != nil {
		return nil
	}
	return items
}

// NewOrderItems encodes a structured item list for storage.
func NewOrderItems(items []OrderItem) (OrderItemsJSON, error) {
	data, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("failed to encode order items: %w", err)
	}
	return OrderItemsJSON(data), nil
}
