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

type MenuHandler struct {
	menuService services.MenuService
}

func NewMenuHandler(menuService services.MenuService) *MenuHandler {
	return &MenuHandler{menuService: menuService}
}

type menuItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Category    string  `json:"category" binding:"required"`
	Available   *bool   `json:"available"`
	Image       *string `json:"image"`
}

func (h *MenuHandler) ListItems(c *gin.Context) {
	items, err := h.menuService.GetAllItems()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list menu items"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *MenuHandler) ListCategories(c *gin.Context) {
	categories, err := h.menuService.GetCategories()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list categories"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

func (h *MenuHandler) GetItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid menu item id"})
		return
	}

	item, err := h.menuService.GetItemByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "menu item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load menu item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"item": item})
}

func (h *MenuHandler) CreateItem(c *gin.Context) {
	var req menuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	item := &models.MenuItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Available:   true,
		Image:       req.Image,
	}
	if req.Available != nil {
		item.Available = *req.Available
	}

	if err := h.menuService.CreateItem(item); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create menu item"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"item": item})
}

func (h *MenuHandler) UpdateItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid menu item id"})
		return
	}

	item, err := h.menuService.GetItemByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "menu item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load menu item"})
		return
	}

	var req menuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	item.Name = req.Name
	item.Description = req.Description
	item.Price = req.Price
	item.Category = req.Category
	item.Image = req.Image
	if req.Available != nil {
		item.Available = *req.Available
	}

	if err := h.menuService.UpdateItem(item); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update menu item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"item": item})
}

func (h *MenuHandler) DeleteItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid menu item id"})
		return
	}

	if err := h.menuService.DeleteItem(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete menu item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
