package services

import (
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/wagner840/restaurant-backoffice/internal/models"
	"github.com/wagner840/restaurant-backoffice/internal/redis"
	"github.com/wagner840/restaurant-backoffice/internal/repository"
	"github.com/wagner840/restaurant-backoffice/internal/sales"
)

// DashboardStats is the headline card row: today's order count and revenue,
// orders still in flight and orders already fulfilled.
type DashboardStats struct {
	TotalOrders     int     `json:"total_orders"`
	Revenue         float64 `json:"revenue"`
	ActiveOrders    int     `json:"active_orders"`
	CompletedOrders int     `json:"completed_orders"`
}

type DashboardService interface {
	GetStats() (*DashboardStats, error)
	GetSalesByCategory() ([]sales.CategorySales, error)
	GetActiveCustomers(days int) (int, error)
	GetRevenueGrowth() (float64, error)
}

type dashboardService struct {
	orderRepo repository.OrderRepository
	menu      MenuService
	cache     *redis.Client
	cacheTTL  time.Duration
	now       func() time.Time
}

func NewDashboardService(orderRepo repository.OrderRepository, menu MenuService, cache *redis.Client, cacheTTL time.Duration) DashboardService {
	return &dashboardService{
		orderRepo: orderRepo,
		menu:      menu,
		cache:     cache,
		cacheTTL:  cacheTTL,
		now:       time.Now,
	}
}

// cached wraps a computation with the read-through cache. Cache failures are
// logged and the computation runs anyway; the dashboard must render even with
// Redis down.
func cached[T any](s *dashboardService, key string, compute func() (T, error)) (T, error) {
	var zero T
	if s.cache != nil {
		var value T
		err := s.cache.GetJSON(key, &value)
		if err == nil {
			return value, nil
		}
		if err != redis.ErrCacheMiss {
			logrus.WithError(err).WithField("key", key).Warn("dashboard cache read failed")
		}
	}

	value, err := compute()
	if err != nil {
		return zero, err
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(key, value, s.cacheTTL); err != nil {
			logrus.WithError(err).WithField("key", key).Warn("dashboard cache write failed")
		}
	}
	return value, nil
}

func (s *dashboardService) GetStats() (*DashboardStats, error) {
	return cached(s, "stats", func() (*DashboardStats, error) {
		today := truncateToDay(s.now())
		orders, err := s.orderRepo.GetCreatedSince(today)
		if err != nil {
			return nil, err
		}
		stats := ComputeStats(orders)
		return &stats, nil
	})
}

// ComputeStats reduces one day of orders into the stat card values.
func ComputeStats(orders []models.Order) DashboardStats {
	active := make(map[models.OrderStatus]bool, len(models.ActiveStatuses))
	for _, status := range models.ActiveStatuses {
		active[status] = true
	}
	settled := make(map[models.OrderStatus]bool, len(models.SettledStatuses))
	for _, status := range models.SettledStatuses {
		settled[status] = true
	}

	stats := DashboardStats{TotalOrders: len(orders)}
	for _, order := range orders {
		stats.Revenue += order.TotalAmount
		if active[order.Status] {
			stats.ActiveOrders++
		}
		if settled[order.Status] {
			stats.CompletedOrders++
		}
	}
	return stats
}

func (s *dashboardService) GetSalesByCategory() ([]sales.CategorySales, error) {
	return cached(s, "sales_by_category", func() ([]sales.CategorySales, error) {
		orders, err := s.orderRepo.GetByStatuses(models.SettledStatuses)
		if err != nil {
			return nil, err
		}
		catalog, err := s.menu.CatalogEntries()
		if err != nil {
			return nil, err
		}
		return sales.Aggregate(orders, catalog), nil
	})
}

func (s *dashboardService) GetActiveCustomers(days int) (int, error) {
	if days <= 0 {
		days = 30
	}
	since := s.now().AddDate(0, 0, -days)
	orders, err := s.orderRepo.GetCreatedSince(since)
	if err != nil {
		return 0, err
	}

	unique := make(map[uuid.UUID]bool)
	for _, order := range orders {
		if order.CustomerID != nil {
			unique[*order.CustomerID] = true
		}
	}
	return len(unique), nil
}

// GetRevenueGrowth compares the last seven full days against the seven days
// before them. A previous week with zero revenue reports zero growth rather
// than a division blowup.
func (s *dashboardService) GetRevenueGrowth() (float64, error) {
	return cached(s, "revenue_growth", func() (float64, error) {
		today := truncateToDay(s.now())
		lastWeek := today.AddDate(0, 0, -7)
		twoWeeksAgo := today.AddDate(0, 0, -14)

		currentOrders, err := s.orderRepo.GetCreatedBetween(lastWeek, today)
		if err != nil {
			return 0, err
		}
		previousOrders, err := s.orderRepo.GetCreatedBetween(twoWeeksAgo, lastWeek)
		if err != nil {
			return 0, err
		}

		return RevenueGrowth(sumRevenue(currentOrders), sumRevenue(previousOrders)), nil
	})
}

func RevenueGrowth(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return (current - previous) / previous * 100
}

func sumRevenue(orders []models.Order) float64 {
	var total float64
	for _, order := range orders {
		total += order.TotalAmount
	}
	return total
}
