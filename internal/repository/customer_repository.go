package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/wagner840/restaurant-backoffice/internal/models"
)

type CustomerRepository interface {
	Create(customer *models.Customer) error
	GetByID(id uuid.UUID) (*models.Customer, error)
	GetByWhatsApp(whatsapp string) (*models.Customer, error)
	GetAll() ([]models.Customer, error)
	GetWithBirthday() ([]models.Customer, error)
	Update(customer *models.Customer) error
	UpdateBirthdayStatus(id uuid.UUID, status models.BirthdayStatus) (*models.Customer, error)
	Delete(id uuid.UUID) error
}

type customerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) Create(customer *models.Customer) error {
	return r.db.Create(customer).Error
}

func (r *customerRepository) GetByID(id uuid.UUID) (*models.Customer, error) {
	var customer models.Customer
	err := r.db.First(&customer, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepository) GetByWhatsApp(whatsapp string) (*models.Customer, error) {
	var customer models.Customer
	err := r.db.First(&customer, "whatsapp = ?", whatsapp).Error
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepository) GetAll() ([]models.Customer, error) {
	var customers []models.Customer
	err := r.db.Order("created_at DESC").Find(&customers).Error
	return customers, err
}

func (r *customerRepository) GetWithBirthday() ([]models.Customer, error) {
	var customers []models.Customer
	err := r.db.Where("birthday IS NOT NULL").Order("birthday ASC").Find(&customers).Error
	return customers, err
}

func (r *customerRepository) Update(customer *models.Customer) error {
	return r.db.Save(customer).Error
}

func (r *customerRepository) UpdateBirthdayStatus(id uuid.UUID, status models.BirthdayStatus) (*models.Customer, error) {
	err := r.db.Model(&models.Customer{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"birthday_status":   status,
			"last_contacted_at": time.Now(),
		}).Error
	if err != nil {
		return nil, err
	}
	return r.GetByID(id)
}

func (r *customerRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Customer{}, "id = ?", id).Error
}
