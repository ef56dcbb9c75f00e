package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/wagner840/restaurant-backoffice/internal/models"
	"github.com/wagner840/restaurant-backoffice/internal/services"
)

type OrderHandler struct {
	orderService services.OrderService
}

func NewOrderHandler(orderService services.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// orderView decorates an order with its presentation state and the action
// the lifecycle engine allows next, so clients never reimplement the flow.
type orderView struct {
	models.Order
	StatusDisplay models.StatusDisplay `json:"status_display"`
	NextStatus    *models.OrderStatus  `json:"next_status"`
}

func newOrderView(order models.Order) orderView {
	view := orderView{
		Order:         order,
		StatusDisplay: models.StatusInfo(order.Status),
	}
	if next, ok := models.NextStatus(order.Status, order.OrderType); ok {
		view.NextStatus = &next
	}
	return view
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders, err := h.orderService.GetAllOrders()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list orders"})
		return
	}

	if filter := c.Query("status"); filter != "" {
		status, err := models.ParseOrderStatus(filter)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		filtered := orders[:0]
		for _, order := range orders {
			if order.Status == status {
				filtered = append(filtered, order)
			}
		}
		orders = filtered
	}

	views := make([]orderView, 0, len(orders))
	for _, order := range orders {
		views = append(views, newOrderView(order))
	}
	c.JSON(http.StatusOK, gin.H{"orders": views})
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	order, err := h.orderService.GetOrderByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load order"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"order": newOrderView(*order)})
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req struct {
		CustomerID  *uuid.UUID         `json:"customer_id"`
		AddressID   *uuid.UUID         `json:"address_id"`
		OrderType   string             `json:"order_type" binding:"required"`
		TotalAmount float64            `json:"total_amount"`
		Items       []models.OrderItem `json:"items" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	items, err := models.NewOrderItems(req.Items)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order := &models.Order{
		CustomerID:  req.CustomerID,
		AddressID:   req.AddressID,
		OrderType:   models.OrderType(req.OrderType),
		TotalAmount: req.TotalAmount,
		OrderItems:  items,
	}

	if err := h.orderService.CreateOrder(order); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"order": newOrderView(*order)})
}

// AdvanceStatus moves the order one step forward in its flow.
func (h *OrderHandler) AdvanceStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	order, err := h.orderService.AdvanceStatus(id)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNoNextStatus):
			c.JSON(http.StatusConflict, gin.H{"error": "order cannot advance further"})
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to advance order"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"order": newOrderView(*order)})
}

func (h *OrderHandler) CancelOrder(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	order, err := h.orderService.CancelOrder(id)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrOrderClosed):
			c.JSON(http.StatusConflict, gin.H{"error": "order is already closed"})
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to cancel order"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"order": newOrderView(*order)})
}

func (h *OrderHandler) SetStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	order, err := h.orderService.SetStatus(id, models.OrderStatus(req.Status))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"order": newOrderView(*order)})
}
