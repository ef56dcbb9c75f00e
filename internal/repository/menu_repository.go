package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/wagner840/restaurant-backoffice/internal/models"
)

type MenuRepository interface {
	Create(item *models.MenuItem) error
	GetByID(id uuid.UUID) (*models.MenuItem, error)
	GetAll() ([]models.MenuItem, error)
	GetCategories() ([]string, error)
	Update(item *models.MenuItem) error
	Delete(id uuid.UUID) error
}

type menuRepository struct {
	db *gorm.DB
}

func NewMenuRepository(db *gorm.DB) MenuRepository {
	return &menuRepository{db: db}
}

func (r *menuRepository) Create(item *models.MenuItem) error {
	return r.db.Create(item).Error
}

func (r *menuRepository) GetByID(id uuid.UUID) (*models.MenuItem, error) {
	var item models.MenuItem
	err := r.db.First(&item, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *menuRepository) GetAll() ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := r.db.Order("category ASC, name ASC").Find(&items).Error
	return items, err
}

func (r *menuRepository) GetCategories() ([]string, error) {
	var categories []string
	err := r.db.Model(&models.MenuItem{}).
		Distinct("category").Order("category ASC").Pluck("category", &categories).Error
	return categories, err
}

func (r *menuRepository) Update(item *models.MenuItem) error {
	return r.db.Save(item).Error
}

func (r *menuRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.MenuItem{}, "id = ?", id).Error
}
