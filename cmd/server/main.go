package main

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/wagner840/restaurant-backoffice/internal/config"
	"github.com/wagner840/restaurant-backoffice/internal/database"
	"github.com/wagner840/restaurant-backoffice/internal/handlers"
	"github.com/wagner840/restaurant-backoffice/internal/middleware"
	"github.com/wagner840/restaurant-backoffice/internal/models"
	"github.com/wagner840/restaurant-backoffice/internal/redis"
	"github.com/wagner840/restaurant-backoffice/internal/repository"
	"github.com/wagner840/restaurant-backoffice/internal/services"
	"github.com/wagner840/restaurant-backoffice/pkg/whatsapp"
)

func main() {
	logrus.SetFormatter(&logrus.JSONFormatter{})

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to database")
	}

	// Initialize Redis
	redisClient, err := redis.Initialize(cfg.RedisURL)
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to Redis")
	}
	defer redisClient.Close()

	// Initialize WhatsApp client
	whatsappClient := whatsapp.NewClient(cfg.WhatsAppAPIURL, cfg.WhatsAppUsername, cfg.WhatsAppPassword, cfg.WhatsAppPath)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	menuRepo := repository.NewMenuRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, cfg.JWTSecret)
	orderService := services.NewOrderService(orderRepo)
	menuService := services.NewMenuService(menuRepo)
	customerService := services.NewCustomerService(customerRepo, orderRepo)
	birthdayService := services.NewBirthdayService(customerRepo, whatsappClient, redisClient)
	dashboardService := services.NewDashboardService(
		orderRepo, menuService, redisClient, time.Duration(cfg.CacheTTL)*time.Second)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	orderHandler := handlers.NewOrderHandler(orderService)
	menuHandler := handlers.NewMenuHandler(menuService)
	customerHandler := handlers.NewCustomerHandler(customerService, orderService)
	birthdayHandler := handlers.NewBirthdayHandler(birthdayService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// Setup routes
	router := gin.Default()

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"alive": true})
	})

	router.POST("/api/auth/register", authHandler.Register)
	router.POST("/api/auth/login", authHandler.Login)

	api := router.Group("/api")
	api.Use(middleware.Auth(authService))
	{
		api.GET("/orders", orderHandler.ListOrders)
		api.POST("/orders", orderHandler.CreateOrder)
		api.GET("/orders/:id", orderHandler.GetOrder)
		api.POST("/orders/:id/advance", orderHandler.AdvanceStatus)
		api.POST("/orders/:id/cancel", orderHandler.CancelOrder)
		api.PUT("/orders/:id/status", orderHandler.SetStatus)

		api.GET("/menu", menuHandler.ListItems)
		api.GET("/menu/categories", menuHandler.ListCategories)
		api.GET("/menu/:id", menuHandler.GetItem)

		api.GET("/customers", customerHandler.ListCustomers)
		api.POST("/customers", customerHandler.CreateCustomer)
		api.GET("/customers/:id", customerHandler.GetCustomer)
		api.GET("/customers/:id/details", customerHandler.GetDetails)
		api.GET("/customers/:id/orders", customerHandler.GetOrders)

		api.GET("/birthdays", birthdayHandler.ListUpcoming)
		api.PUT("/birthdays/:id/status", birthdayHandler.UpdateStatus)
		api.POST("/birthdays/:id/notify", birthdayHandler.Notify)

		api.GET("/dashboard/stats", dashboardHandler.GetStats)
		api.GET("/dashboard/sales-by-category", dashboardHandler.GetSalesByCategory)
		api.GET("/dashboard/revenue-growth", dashboardHandler.GetRevenueGrowth)
		api.GET("/dashboard/active-customers", dashboardHandler.GetActiveCustomers)
	}

	// Menu writes are restricted to managers and admins
	menuAdmin := router.Group("/api")
	menuAdmin.Use(middleware.Auth(authService), middleware.RequireRole(models.RoleAdmin, models.RoleManager))
	{
		menuAdmin.POST("/menu", menuHandler.CreateItem)
		menuAdmin.PUT("/menu/:id", menuHandler.UpdateItem)
		menuAdmin.DELETE("/menu/:id", menuHandler.DeleteItem)
	}

	// Start server
	logrus.WithField("port", cfg.ServerPort).Info("server starting")
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		logrus.WithError(err).Fatal("failed to start server")
	}
}
