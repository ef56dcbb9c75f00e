// Package sales computes the revenue-per-category breakdown shown on the
// dashboard. It is a pure reduction over already-fetched orders and the menu
// catalog; a malformed order or line item drops its own contribution and
// never aborts the aggregation.
package sales

import (
	"sort"
	"strings"

	"github.com/wagner840/restaurant-backoffice/internal/models"
)

// CatalogEntry maps one product name to its menu category.
type CatalogEntry struct {
	Name     string
	Category string
}

// CategorySales is one row of the aggregation output.
type CategorySales struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

// Orders in these statuses count toward sales. Delivered is included along
// with completed because delivered orders have been paid for even when the
// operator never presses the final button.
var countedStatuses = map[models.OrderStatus]bool{
	models.StatusCompleted: true,
	models.StatusDelivered: true,
}

// placeholderCategories is returned when nothing accumulates, so the chart
// renders labeled zero bars instead of needing an empty-state branch.
var placeholderCategories = []string{"Lanches", "Bebidas", "Acompanhamentos", "Sobremesas"}

// Aggregator bundles the catalog index and keyword rules so the rule list
// stays swappable without touching the reduction itself.
type Aggregator struct {
	rules []KeywordRule
}

func NewAggregator(rules []KeywordRule) *Aggregator {
	if rules == nil {
		rules = DefaultKeywordRules
	}
	return &Aggregator{rules: rules}
}

// Aggregate runs the full reduction with the default rule list.
func Aggregate(orders []models.Order, catalog []CatalogEntry) []CategorySales {
	return NewAggregator(nil).Aggregate(orders, catalog)
}

func (a *Aggregator) Aggregate(orders []models.Order, catalog []CatalogEntry) []CategorySales {
	index := buildCatalogIndex(catalog)
	totals := make(map[string]float64)

	for _, order := range orders {
		if !countedStatuses[order.Status] {
			continue
		}

		items, err := order.OrderItems.Decode()
		if err != nil {
			// Undecodable payload drops this order's contribution only.
			continue
		}

		for _, item := range items {
			name := item.ResolveName()
			if name == "" {
				continue
			}

			amount := item.Subtotal()
			if amount <= 0 {
				continue
			}

			category, ok := index[NormalizeName(name)]
			if !ok {
				category, ok = Classify(a.rules, name)
				if !ok {
					category = FallbackCategory
				}
			}

			totals[category] += amount
		}
	}

	if len(totals) == 0 {
		result := make([]CategorySales, 0, len(placeholderCategories))
		for _, category := range placeholderCategories {
			result = append(result, CategorySales{Category: category})
		}
		return result
	}

	result := make([]CategorySales, 0, len(totals))
	for category, amount := range totals {
		result = append(result, CategorySales{Category: category, Amount: amount})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Amount != result[j].Amount {
			return result[i].Amount > result[j].Amount
		}
		return result[i].Category < result[j].Category
	})
	return result
}

func buildCatalogIndex(catalog []CatalogEntry) map[string]string {
	index := make(map[string]string, len(catalog))
	for _, entry := range catalog {
		if entry.Name == "" || entry.Category == "" {
			continue
		}
		index[NormalizeName(entry.Name)] = entry.Category
	}
	return index
}

// NormalizeName prepares a product name for catalog lookup: trim, case-fold
// and drop a trailing parenthetical size suffix ("Coca (lata)" and "coca"
// must hit the same entry).
func NormalizeName(name string) string {
	name = strings.TrimSpace(strings.ToLower(name))
	if i := strings.LastIndex(name, "("); i > 0 && strings.HasSuffix(name, ")") {
		name = strings.TrimSpace(name[:i])
	}
	return name
}
