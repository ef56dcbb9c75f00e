package services

import (
	"github.com/google/uuid"

	"github.com/wagner840/restaurant-backoffice/internal/models"
	"github.com/wagner840/restaurant-backoffice/internal/repository"
	"github.com/wagner840/restaurant-backoffice/internal/sales"
)

type MenuService interface {
	CreateItem(item *models.MenuItem) error
	GetItemByID(id uuid.UUID) (*models.MenuItem, error)
	GetAllItems() ([]models.MenuItem, error)
	GetCategories() ([]string, error)
	UpdateItem(item *models.MenuItem) error
	DeleteItem(id uuid.UUID) error
	CatalogEntries() ([]sales.CatalogEntry, error)
}

type menuService struct {
	menuRepo repository.MenuRepository
}

func NewMenuService(menuRepo repository.MenuRepository) MenuService {
	return &menuService{menuRepo: menuRepo}
}

func (s *menuService) CreateItem(item *models.MenuItem) error {
	return s.menuRepo.Create(item)
}

func (s *menuService) GetItemByID(id uuid.UUID) (*models.MenuItem, error) {
	return s.menuRepo.GetByID(id)
}

func (s *menuService) GetAllItems() ([]models.MenuItem, error) {
	return s.menuRepo.GetAll()
}

func (s *menuService) GetCategories() ([]string, error) {
	return s.menuRepo.GetCategories()
}

func (s *menuService) UpdateItem(item *models.MenuItem) error {
	return s.menuRepo.Update(item)
}

func (s *menuService) DeleteItem(id uuid.UUID) error {
	return s.menuRepo.Delete(id)
}

// CatalogEntries exposes the menu as the name → category lookup table the
// sales aggregation consumes.
func (s *menuService) CatalogEntries() ([]sales.CatalogEntry, error) {
	items, err := s.menuRepo.GetAll()
	if err != nil {
		return nil, err
	}
	entries := make([]sales.CatalogEntry, 0, len(items))
	for _, item := range items {
		entries = append(entries, sales.CatalogEntry{Name: item.Name, Category: item.Category})
	}
	return entries, nil
}
