package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/wagner840/restaurant-backoffice/internal/models"
)

type OrderRepository interface {
	Create(order *models.Order) error
	GetByID(id uuid.UUID) (*models.Order, error)
	GetAll() ([]models.Order, error)
	GetByCustomerID(customerID uuid.UUID) ([]models.Order, error)
	GetByStatuses(statuses []models.OrderStatus) ([]models.Order, error)
	GetCreatedSince(since time.Time) ([]models.Order, error)
	GetCreatedBetween(from, to time.Time) ([]models.Order, error)
	UpdateStatus(id uuid.UUID, status models.OrderStatus) (*models.Order, error)
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(order *models.Order) error {
	return r.db.Create(order).Error
}

func (r *orderRepository) GetByID(id uuid.UUID) (*models.Order, error) {
	var order models.Order
	err := r.db.Preload("Customer").Preload("Address").First(&order, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetAll() ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Preload("Customer").Preload("Address").
		Order("created_at DESC").Find(&orders).Error
	return orders, err
}

func (r *orderRepository) GetByCustomerID(customerID uuid.UUID) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Where("customer_id = ?", customerID).
		Order("created_at DESC").Find(&orders).Error
	return orders, err
}

func (r *orderRepository) GetByStatuses(statuses []models.OrderStatus) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Where("status IN ?", statuses).Find(&orders).Error
	return orders, err
}

func (r *orderRepository) GetCreatedSince(since time.Time) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Where("created_at >= ?", since).Find(&orders).Error
	return orders, err
}

func (r *orderRepository) GetCreatedBetween(from, to time.Time) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Where("created_at >= ? AND created_at < ?", from, to).Find(&orders).Error
	return orders, err
}

func (r *orderRepository) UpdateStatus(id uuid.UUID, status models.OrderStatus) (*models.Order, error) {
	err := r.db.Model(&models.Order{}).Where("id = ?", id).
		Update("status", status).Error
	if err != nil {
		return nil, err
	}
	return r.GetByID(id)
}
