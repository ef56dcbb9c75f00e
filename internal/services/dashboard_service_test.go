package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wagner840/restaurant-backoffice/internal/models"
)

func TestComputeStats(t *testing.T) {
	orders := []models.Order{
		{Status: models.StatusPending, TotalAmount: 10},
		{Status: models.StatusPreparing, TotalAmount: 20},
		{Status: models.StatusOutForDelivery, TotalAmount: 30},
		{Status: models.StatusDelivered, TotalAmount: 40},
		{Status: models.StatusCompleted, TotalAmount: 50},
		{Status: models.StatusCancelled, TotalAmount: 60},
	}

	stats := ComputeStats(orders)
	assert.Equal(t, 6, stats.TotalOrders)
	assert.InDelta(t, 210, stats.Revenue, 1e-9)
	assert.Equal(t, 3, stats.ActiveOrders)
	assert.Equal(t, 2, stats.CompletedOrders)
}

func TestComputeStatsEmpty(t *testing.T) {
	stats := ComputeStats(nil)
	assert.Zero(t, stats.TotalOrders)
	assert.Zero(t, stats.Revenue)
}

func TestRevenueGrowth(t *testing.T) {
	assert.InDelta(t, 50, RevenueGrowth(150, 100), 1e-9)
	assert.InDelta(t, -25, RevenueGrowth(75, 100), 1e-9)
	assert.Zero(t, RevenueGrowth(100, 0), "zero previous week reports zero growth")
}

func TestGetStatsOnlyCountsToday(t *testing.T) {
	now := time.Date(2026, time.August, 29, 15, 0, 0, 0, time.UTC)
	repo := newFakeOrderRepo(
		&models.Order{Status: models.StatusCompleted, TotalAmount: 100, CreatedAt: now.Add(-2 * time.Hour)},
		&models.Order{Status: models.StatusCompleted, TotalAmount: 999, CreatedAt: now.AddDate(0, 0, -2)},
	)
	service := &dashboardService{orderRepo: repo, now: func() time.Time { return now }}

	stats, err := service.GetStats()
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalOrders)
	assert.InDelta(t, 100, stats.Revenue, 1e-9)
}

func TestGetSalesByCategoryUsesMenuCatalog(t *testing.T) {
	items, err := models.NewOrderItems([]models.OrderItem{{ItemName: "X Burger", Quantity: 2, Price: 10}})
	require.NoError(t, err)

	repo := newFakeOrderRepo(
		&models.Order{Status: models.StatusCompleted, OrderItems: items},
		&models.Order{Status: models.StatusPending, OrderItems: items},
	)
	menuRepo := &fakeMenuRepo{items: []models.MenuItem{{Name: "X Burger", Category: "Lanches"}}}
	service := &dashboardService{orderRepo: repo, menu: NewMenuService(menuRepo), now: time.Now}

	result, err := service.GetSalesByCategory()
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "Lanches", result[0].Category)
	assert.InDelta(t, 20, result[0].Amount, 1e-9)
}

func TestGetActiveCustomersCountsDistinct(t *testing.T) {
	now := time.Now()
	a, b := uuid.New(), uuid.New()
	repo := newFakeOrderRepo(
		&models.Order{CustomerID: &a, CreatedAt: now.AddDate(0, 0, -1)},
		&models.Order{CustomerID: &a, CreatedAt: now.AddDate(0, 0, -2)},
		&models.Order{CustomerID: &b, CreatedAt: now.AddDate(0, 0, -3)},
		&models.Order{CustomerID: nil, CreatedAt: now.AddDate(0, 0, -1)},
		&models.Order{CustomerID: &b, CreatedAt: now.AddDate(0, 0, -60)},
	)
	service := &dashboardService{orderRepo: repo, now: func() time.Time { return now }}

	count, err := service.GetActiveCustomers(30)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestGetRevenueGrowthWindows(t *testing.T) {
	now := time.Date(2026, time.August, 29, 10, 0, 0, 0, time.UTC)
	repo := newFakeOrderRepo(
		// current week
		&models.Order{TotalAmount: 100, CreatedAt: now.AddDate(0, 0, -1)},
		&models.Order{TotalAmount: 50, CreatedAt: now.AddDate(0, 0, -6)},
		// previous week
		&models.Order{TotalAmount: 100, CreatedAt: now.AddDate(0, 0, -10)},
		// outside both windows
		&models.Order{TotalAmount: 999, CreatedAt: now.AddDate(0, 0, -20)},
	)
	service := &dashboardService{orderRepo: repo, now: func() time.Time { return now }}

	growth, err := service.GetRevenueGrowth()
	require.NoError(t, err)
	assert.InDelta(t, 50, growth, 1e-9)
}
