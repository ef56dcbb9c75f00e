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

type BirthdayHandler struct {
	birthdayService services.BirthdayService
}

func NewBirthdayHandler(birthdayService services.BirthdayService) *BirthdayHandler {
	return &BirthdayHandler{birthdayService: birthdayService}
}

type birthdayCustomerView struct {
	models.Customer
	StatusLabel string `json:"birthday_status_label"`
}

func (h *BirthdayHandler) ListUpcoming(c *gin.Context) {
	customers, err := h.birthdayService.GetUpcomingBirthdays()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list upcoming birthdays"})
		return
	}

	views := make([]birthdayCustomerView, 0, len(customers))
	for _, customer := range customers {
		views = append(views, birthdayCustomerView{
			Customer:    customer,
			StatusLabel: customer.BirthdayStatus.Label(),
		})
	}
	c.JSON(http.StatusOK, gin.H{"customers": views})
}

func (h *BirthdayHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid customer id"})
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	customer, err := h.birthdayService.UpdateStatus(id, models.BirthdayStatus(req.Status))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "customer not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"customer": birthdayCustomerView{
		Customer:    *customer,
		StatusLabel: customer.BirthdayStatus.Label(),
	}})
}

// Notify sends the 30-day or 15-day campaign message.
func (h *BirthdayHandler) Notify(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid customer id"})
		return
	}

	var req struct {
		Notice string `json:"notice" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	customer, err := h.birthdayService.SendBirthdayNotice(id, services.BirthdayNotice(req.Notice))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNoticeAlreadySent):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrCustomerNoPhone), errors.Is(err, services.ErrUnknownNotice):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "customer not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to send birthday notice"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"customer": birthdayCustomerView{
		Customer:    *customer,
		StatusLabel: customer.BirthdayStatus.Label(),
	}})
}
