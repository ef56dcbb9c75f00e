package migrations

import (
	"errors"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/wagner840/restaurant-backoffice/internal/models"
	"github.com/wagner840/restaurant-backoffice/internal/repository"
	"github.com/wagner840/restaurant-backoffice/internal/services"
)

// RunMigrations creates the schema and seeds the default operator account
// plus the base menu categories on a fresh database.
func RunMigrations(db *gorm.DB) error {
	logrus.Info("running database migrations")

	err := db.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.Address{},
		&models.MenuItem{},
		&models.Order{},
	)
	if err != nil {
		return err
	}

	if err := createDefaultData(db); err != nil {
		logrus.WithError(err).Warn("failed to create default data")
	}

	logrus.Info("database migrations completed")
	return nil
}

func createDefaultData(db *gorm.DB) error {
	userRepo := repository.NewUserRepository(db)
	authService := services.NewAuthService(userRepo, "seed-only")

	if _, err := userRepo.GetByEmail("admin@backoffice.local"); err == nil {
		logrus.Info("admin user already exists")
		return nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	_, err := authService.Register("Administrador", "admin@backoffice.local", "trocar-esta-senha", models.RoleAdmin)
	if err != nil {
		return err
	}
	logrus.Info("default admin user created (admin@backoffice.local)")

	// Seed the menu with the house categories so the dashboard chart has
	// labels before the first real item is registered.
	seedItems := []models.MenuItem{
		{Name: "X Burger", Description: "Hambúrguer da casa", Price: 25.0, Category: "Lanches", Available: true},
		{Name: "Batata Frita", Description: "Porção individual", Price: 12.0, Category: "Acompanhamentos", Available: true},
		{Name: "Coca", Description: "Lata 350ml", Price: 6.0, Category: "Bebidas", Available: true},
		{Name: "Pudim", Description: "Fatia", Price: 9.0, Category: "Sobremesas", Available: true},
	}
	menuRepo := repository.NewMenuRepository(db)
	for i := range seedItems {
		if err := menuRepo.Create(&seedItems[i]); err != nil {
			logrus.WithError(err).WithField("item", seedItems[i].Name).Warn("failed to seed menu item")
		}
	}

	return nil
}
