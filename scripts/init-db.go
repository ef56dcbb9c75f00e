package main

import (
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/wagner840/restaurant-backoffice/internal/config"
	"github.com/wagner840/restaurant-backoffice/internal/database"
	"github.com/wagner840/restaurant-backoffice/internal/migrations"
	"github.com/wagner840/restaurant-backoffice/internal/models"
	"github.com/wagner840/restaurant-backoffice/internal/repository"
)

// Development helper: recreates the schema and loads a small sample data set.
func main() {
	cfg := config.Load()

	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to database")
	}

	logrus.Info("dropping existing tables")
	err = db.Migrator().DropTable(
		&models.User{},
		&models.Customer{},
		&models.Address{},
		&models.MenuItem{},
		&models.Order{},
	)
	if err != nil {
		logrus.WithError(err).Warn("error dropping tables")
	}

	if err := migrations.RunMigrations(db); err != nil {
		logrus.WithError(err).Fatal("migrations failed")
	}

	if err := seedSampleData(db); err != nil {
		logrus.WithError(err).Fatal("failed to seed sample data")
	}

	logrus.Info("database initialized")
}

func seedSampleData(db *gorm.DB) error {
	customerRepo := repository.NewCustomerRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	birthday := time.Date(1990, time.September, 15, 0, 0, 0, 0, time.UTC)
	customer := &models.Customer{
		Name:       "Wagner Exemplo",
		WhatsApp:   "11999990000",
		Email:      "wagner@example.com",
		Birthday:   &birthday,
		UniqueCode: "NIVER-0001",
	}
	if err := customerRepo.Create(customer); err != nil {
		return err
	}

	items, err := models.NewOrderItems([]models.OrderItem{
		{ItemName: "X Burger", Quantity: 2, Price: 25},
		{Name: "Coca", Quantity: 2, Price: 6},
	})
	if err != nil {
		return err
	}

	order := &models.Order{
		CustomerID:  &customer.ID,
		OrderType:   models.OrderTypeDelivery,
		Status:      models.StatusCompleted,
		TotalAmount: 62,
		OrderItems:  items,
	}
	return orderRepo.Create(order)
}
