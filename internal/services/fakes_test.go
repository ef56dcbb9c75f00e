package services

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/wagner840/restaurant-backoffice/internal/models"
)

// In-memory repository fakes. Only the behavior the services under test
// exercise is implemented; everything else returns zero values.

type fakeOrderRepo struct {
	orders map[uuid.UUID]*models.Order
}

func newFakeOrderRepo(orders ...*models.Order) *fakeOrderRepo {
	repo := &fakeOrderRepo{orders: make(map[uuid.UUID]*models.Order)}
	for _, order := range orders {
		if order.ID == uuid.Nil {
			order.ID = uuid.New()
		}
		repo.orders[order.ID] = order
	}
	return repo
}

func (r *fakeOrderRepo) Create(order *models.Order) error {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	r.orders[order.ID] = order
	return nil
}

func (r *fakeOrderRepo) GetByID(id uuid.UUID) (*models.Order, error) {
	order, ok := r.orders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return order, nil
}

func (r *fakeOrderRepo) GetAll() ([]models.Order, error) {
	return r.all(), nil
}

func (r *fakeOrderRepo) GetByCustomerID(customerID uuid.UUID) ([]models.Order, error) {
	var result []models.Order
	for _, order := range r.all() {
		if order.CustomerID != nil && *order.CustomerID == customerID {
			result = append(result, order)
		}
	}
	return result, nil
}

func (r *fakeOrderRepo) GetByStatuses(statuses []models.OrderStatus) ([]models.Order, error) {
	wanted := make(map[models.OrderStatus]bool)
	for _, status := range statuses {
		wanted[status] = true
	}
	var result []models.Order
	for _, order := range r.all() {
		if wanted[order.Status] {
			result = append(result, order)
		}
	}
	return result, nil
}

func (r *fakeOrderRepo) GetCreatedSince(since time.Time) ([]models.Order, error) {
	var result []models.Order
	for _, order := range r.all() {
		if !order.CreatedAt.Before(since) {
			result = append(result, order)
		}
	}
	return result, nil
}

func (r *fakeOrderRepo) GetCreatedBetween(from, to time.Time) ([]models.Order, error) {
	var result []models.Order
	for _, order := range r.all() {
		if !order.CreatedAt.Before(from) && order.CreatedAt.Before(to) {
			result = append(result, order)
		}
	}
	return result, nil
}

func (r *fakeOrderRepo) UpdateStatus(id uuid.UUID, status models.OrderStatus) (*models.Order, error) {
	order, ok := r.orders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	order.Status = status
	return order, nil
}

func (r *fakeOrderRepo) all() []models.Order {
	result := make([]models.Order, 0, len(r.orders))
	for _, order := range r.orders {
		result = append(result, *order)
	}
	return result
}

type fakeCustomerRepo struct {
	customers map[uuid.UUID]*models.Customer
}

func newFakeCustomerRepo(customers ...*models.Customer) *fakeCustomerRepo {
	repo := &fakeCustomerRepo{customers: make(map[uuid.UUID]*models.Customer)}
	for _, customer := range customers {
		if customer.ID == uuid.Nil {
			customer.ID = uuid.New()
		}
		repo.customers[customer.ID] = customer
	}
	return repo
}

func (r *fakeCustomerRepo) Create(customer *models.Customer) error {
	if customer.ID == uuid.Nil {
		customer.ID = uuid.New()
	}
	r.customers[customer.ID] = customer
	return nil
}

func (r *fakeCustomerRepo) GetByID(id uuid.UUID) (*models.Customer, error) {
	customer, ok := r.customers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return customer, nil
}

func (r *fakeCustomerRepo) GetByWhatsApp(whatsapp string) (*models.Customer, error) {
	for _, customer := range r.customers {
		if customer.WhatsApp == whatsapp {
			return customer, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeCustomerRepo) GetAll() ([]models.Customer, error) {
	result := make([]models.Customer, 0, len(r.customers))
	for _, customer := range r.customers {
		result = append(result, *customer)
	}
	return result, nil
}

func (r *fakeCustomerRepo) GetWithBirthday() ([]models.Customer, error) {
	var result []models.Customer
	for _, customer := range r.customers {
		if customer.Birthday != nil {
			result = append(result, *customer)
		}
	}
	return result, nil
}

func (r *fakeCustomerRepo) Update(customer *models.Customer) error {
	r.customers[customer.ID] = customer
	return nil
}

func (r *fakeCustomerRepo) UpdateBirthdayStatus(id uuid.UUID, status models.BirthdayStatus) (*models.Customer, error) {
	customer, ok := r.customers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	now := time.Now()
	customer.BirthdayStatus = status
	customer.LastContactedAt = &now
	return customer, nil
}

func (r *fakeCustomerRepo) Delete(id uuid.UUID) error {
	delete(r.customers, id)
	return nil
}

type fakeMenuRepo struct {
	items []models.MenuItem
}

func (r *fakeMenuRepo) Create(item *models.MenuItem) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	r.items = append(r.items, *item)
	return nil
}

func (r *fakeMenuRepo) GetByID(id uuid.UUID) (*models.MenuItem, error) {
	for i := range r.items {
		if r.items[i].ID == id {
			return &r.items[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeMenuRepo) GetAll() ([]models.MenuItem, error) {
	return r.items, nil
}

func (r *fakeMenuRepo) GetCategories() ([]string, error) {
	seen := make(map[string]bool)
	var categories []string
	for _, item := range r.items {
		if !seen[item.Category] {
			seen[item.Category] = true
			categories = append(categories, item.Category)
		}
	}
	return categories, nil
}

func (r *fakeMenuRepo) Update(item *models.MenuItem) error {
	for i := range r.items {
		if r.items[i].ID == item.ID {
			r.items[i] = *item
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeMenuRepo) Delete(id uuid.UUID) error {
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

type fakeSender struct {
	sent []struct {
		Phone   string
		Message string
	}
	err error
}

func (s *fakeSender) SendTextMessage(phone, message string) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, struct {
		Phone   string
		Message string
	}{phone, message})
	return nil
}
