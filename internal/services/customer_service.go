package services

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/wagner840/restaurant-backoffice/internal/models"
	"github.com/wagner840/restaurant-backoffice/internal/repository"
)

type CustomerService interface {
	CreateCustomer(customer *models.Customer) error
	GetCustomerByID(id uuid.UUID) (*models.Customer, error)
	GetCustomerByWhatsApp(whatsapp string) (*models.Customer, error)
	GetAllCustomers() ([]models.Customer, error)
	UpdateCustomer(customer *models.Customer) error
	GetDetails(id uuid.UUID) (*models.CustomerDetails, error)
}

type customerService struct {
	customerRepo repository.CustomerRepository
	orderRepo    repository.OrderRepository
}

func NewCustomerService(customerRepo repository.CustomerRepository, orderRepo repository.OrderRepository) CustomerService {
	return &customerService{customerRepo: customerRepo, orderRepo: orderRepo}
}

func (s *customerService) CreateCustomer(customer *models.Customer) error {
	if customer.BirthdayStatus == "" {
		customer.BirthdayStatus = models.BirthdayEligible
	}
	return s.customerRepo.Create(customer)
}

func (s *customerService) GetCustomerByID(id uuid.UUID) (*models.Customer, error) {
	return s.customerRepo.GetByID(id)
}

func (s *customerService) GetCustomerByWhatsApp(whatsapp string) (*models.Customer, error) {
	return s.customerRepo.GetByWhatsApp(whatsapp)
}

func (s *customerService) GetAllCustomers() ([]models.Customer, error) {
	return s.customerRepo.GetAll()
}

func (s *customerService) UpdateCustomer(customer *models.Customer) error {
	return s.customerRepo.Update(customer)
}

// GetDetails builds the profile card: order count, lifetime spend and the
// customer's three most frequent ordering weekdays.
func (s *customerService) GetDetails(id uuid.UUID) (*models.CustomerDetails, error) {
	orders, err := s.orderRepo.GetByCustomerID(id)
	if err != nil {
		return nil, err
	}

	details := &models.CustomerDetails{
		TotalOrders:  len(orders),
		FavoriteDays: FavoriteDays(orders, 3),
	}
	for _, order := range orders {
		details.TotalSpent += order.TotalAmount
	}
	return details, nil
}

var weekdayNames = [7]string{
	"domingo",
	"segunda-feira",
	"terça-feira",
	"quarta-feira",
	"quinta-feira",
	"sexta-feira",
	"sábado",
}

// WeekdayName returns the Portuguese weekday label used across the UI.
func WeekdayName(day time.Weekday) string {
	return weekdayNames[int(day)%7]
}

// FavoriteDays tallies orders per weekday and returns the top n day names.
// Ties break toward the earlier weekday so the result is deterministic.
func FavoriteDays(orders []models.Order, n int) []string {
	counts := make(map[time.Weekday]int)
	for _, order := range orders {
		counts[order.CreatedAt.Weekday()]++
	}
	if len(counts) == 0 {
		return nil
	}

	days := make([]time.Weekday, 0, len(counts))
	for day := range counts {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool {
		if counts[days[i]] != counts[days[j]] {
			return counts[days[i]] > counts[days[j]]
		}
		return days[i] < days[j]
	})

	if len(days) > n {
		days = days[:n]
	}
	names := make([]string, len(days))
	for i, day := range days {
		names[i] = WeekdayName(day)
	}
	return names
}
