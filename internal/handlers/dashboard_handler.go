package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/wagner840/restaurant-backoffice/internal/services"
)

type DashboardHandler struct {
	dashboardService services.DashboardService
}

func NewDashboardHandler(dashboardService services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.dashboardService.GetStats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute dashboard stats"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": stats})
}

func (h *DashboardHandler) GetSalesByCategory(c *gin.Context) {
	result, err := h.dashboardService.GetSalesByCategory()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute sales by category"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"sales": result})
}

func (h *DashboardHandler) GetRevenueGrowth(c *gin.Context) {
	growth, err := h.dashboardService.GetRevenueGrowth()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute revenue growth"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"growth_percent": growth})
}

func (h *DashboardHandler) GetActiveCustomers(c *gin.Context) {
	days := 30
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "days must be a positive integer"})
			return
		}
		days = parsed
	}

	count, err := h.dashboardService.GetActiveCustomers(days)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to count active customers"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"active_customers": count, "days": days})
}
