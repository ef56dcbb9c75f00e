package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/wagner840/restaurant-backoffice/internal/models"
	"github.com/wagner840/restaurant-backoffice/internal/services"
)

type CustomerHandler struct {
	customerService services.CustomerService
	orderService    services.OrderService
}

func NewCustomerHandler(customerService services.CustomerService, orderService services.OrderService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService, orderService: orderService}
}

func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	customers, err := h.customerService.GetAllCustomers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list customers"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"customers": customers})
}

func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var req struct {
		Name       string `json:"name" binding:"required"`
		WhatsApp   string `json:"whatsapp"`
		Email      string `json:"email"`
		Birthday   string `json:"birthday"`
		UniqueCode string `json:"unique_code"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	customer := &models.Customer{
		Name:       req.Name,
		WhatsApp:   req.WhatsApp,
		Email:      req.Email,
		UniqueCode: req.UniqueCode,
	}
	if req.Birthday != "" {
		birthday, err := time.Parse("2006-01-02", req.Birthday)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "birthday must be YYYY-MM-DD"})
			return
		}
		customer.Birthday = &birthday
	}

	if err := h.customerService.CreateCustomer(customer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create customer"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"customer": customer})
}

func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid customer id"})
		return
	}

	customer, err := h.customerService.GetCustomerByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "customer not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load customer"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"customer": customer})
}

// GetDetails returns the computed spend profile for the detail drawer.
func (h *CustomerHandler) GetDetails(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid customer id"})
		return
	}

	details, err := h.customerService.GetDetails(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load customer details"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"details": details})
}

func (h *CustomerHandler) GetOrders(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid customer id"})
		return
	}

	orders, err := h.orderService.GetOrdersByCustomer(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load customer orders"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}
