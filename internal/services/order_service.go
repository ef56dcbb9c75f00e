package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/wagner840/restaurant-backoffice/internal/models"
	"github.com/wagner840/restaurant-backoffice/internal/repository"
)

var (
	// ErrNoNextStatus means the order sits in a terminal or cancelled state
	// and the lifecycle offers no further step. Handlers map it to 409.
	ErrNoNextStatus = errors.New("order has no next status")

	// ErrOrderClosed means a cancel was attempted on an already settled order.
	ErrOrderClosed = errors.New("order is already closed")
)

type OrderService interface {
	CreateOrder(order *models.Order) error
	GetOrderByID(id uuid.UUID) (*models.Order, error)
	GetAllOrders() ([]models.Order, error)
	GetOrdersByCustomer(customerID uuid.UUID) ([]models.Order, error)
	AdvanceStatus(id uuid.UUID) (*models.Order, error)
	SetStatus(id uuid.UUID, status models.OrderStatus) (*models.Order, error)
	CancelOrder(id uuid.UUID) (*models.Order, error)
}

type orderService struct {
	orderRepo repository.OrderRepository
}

func NewOrderService(orderRepo repository.OrderRepository) OrderService {
	return &orderService{orderRepo: orderRepo}
}

func (s *orderService) CreateOrder(order *models.Order) error {
	if _, err := models.ParseOrderType(string(order.OrderType)); err != nil {
		return err
	}
	if order.Status == "" {
		order.Status = models.StatusPending
	} else if _, err := models.ParseOrderStatus(string(order.Status)); err != nil {
		return err
	}

	// The stored total is kept in sync with the items at creation time; the
	// aggregation pipeline recomputes from items and never trusts this field.
	if order.TotalAmount == 0 {
		for _, item := range order.Items() {
			if item.Subtotal() > 0 {
				order.TotalAmount += item.Subtotal()
			}
		}
	}

	return s.orderRepo.Create(order)
}

func (s *orderService) GetOrderByID(id uuid.UUID) (*models.Order, error) {
	return s.orderRepo.GetByID(id)
}

func (s *orderService) GetAllOrders() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

func (s *orderService) GetOrdersByCustomer(customerID uuid.UUID) ([]models.Order, error) {
	return s.orderRepo.GetByCustomerID(customerID)
}

// AdvanceStatus moves an order one step along the progression for its
// fulfillment type.
func (s *orderService) AdvanceStatus(id uuid.UUID) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to load order: %w", err)
	}

	next, ok := models.NextStatus(order.Status, order.OrderType)
	if !ok {
		return nil, ErrNoNextStatus
	}

	return s.orderRepo.UpdateStatus(id, next)
}

func (s *orderService) SetStatus(id uuid.UUID, status models.OrderStatus) (*models.Order, error) {
	if _, err := models.ParseOrderStatus(string(status)); err != nil {
		return nil, err
	}
	return s.orderRepo.UpdateStatus(id, status)
}

// CancelOrder is the out-of-band exit: allowed from any state that is not
// already settled or cancelled.
func (s *orderService) CancelOrder(id uuid.UUID) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to load order: %w", err)
	}

	switch order.Status {
	case models.StatusCancelled, models.StatusCompleted:
		return nil, ErrOrderClosed
	}

	return s.orderRepo.UpdateStatus(id, models.StatusCancelled)
}
