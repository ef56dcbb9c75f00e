package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wagner840/restaurant-backoffice/internal/models"
)

// day returns a timestamp falling on the given weekday of a fixed week.
func day(weekday time.Weekday) time.Time {
	// 2026-08-02 is a Sunday.
	sunday := time.Date(2026, time.August, 2, 12, 0, 0, 0, time.UTC)
	return sunday.AddDate(0, 0, int(weekday))
}

func TestFavoriteDays(t *testing.T) {
	orders := []models.Order{
		{CreatedAt: day(time.Saturday)},
		{CreatedAt: day(time.Saturday)},
		{CreatedAt: day(time.Saturday)},
		{CreatedAt: day(time.Friday)},
		{CreatedAt: day(time.Friday)},
		{CreatedAt: day(time.Monday)},
		{CreatedAt: day(time.Tuesday)},
	}

	favorites := FavoriteDays(orders, 3)
	require.Len(t, favorites, 3)
	assert.Equal(t, "sábado", favorites[0])
	assert.Equal(t, "sexta-feira", favorites[1])
	// Monday and Tuesday are tied at one order each; the earlier weekday wins.
	assert.Equal(t, "segunda-feira", favorites[2])
}

func TestFavoriteDaysEmpty(t *testing.T) {
	assert.Nil(t, FavoriteDays(nil, 3))
}

func TestFavoriteDaysFewerThanLimit(t *testing.T) {
	orders := []models.Order{{CreatedAt: day(time.Sunday)}}
	favorites := FavoriteDays(orders, 3)
	require.Len(t, favorites, 1)
	assert.Equal(t, "domingo", favorites[0])
}

func TestGetDetails(t *testing.T) {
	customerID := uuid.New()
	other := uuid.New()
	repo := newFakeOrderRepo(
		&models.Order{CustomerID: &customerID, TotalAmount: 50, CreatedAt: day(time.Saturday)},
		&models.Order{CustomerID: &customerID, TotalAmount: 30, CreatedAt: day(time.Saturday)},
		&models.Order{CustomerID: &other, TotalAmount: 999, CreatedAt: day(time.Monday)},
	)
	service := NewCustomerService(newFakeCustomerRepo(), repo)

	details, err := service.GetDetails(customerID)
	require.NoError(t, err)
	assert.Equal(t, 2, details.TotalOrders)
	assert.InDelta(t, 80, details.TotalSpent, 1e-9)
	assert.Equal(t, []string{"sábado"}, details.FavoriteDays)
}

func TestCreateCustomerDefaultsBirthdayStatus(t *testing.T) {
	repo := newFakeCustomerRepo()
	service := NewCustomerService(repo, newFakeOrderRepo())

	customer := &models.Customer{Name: "Ana"}
	require.NoError(t, service.CreateCustomer(customer))
	assert.Equal(t, models.BirthdayEligible, customer.BirthdayStatus)
}
