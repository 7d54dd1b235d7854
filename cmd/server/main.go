package main

import (
	"time"

	"github.com/mercy-gachoki10/smartprintpro1/internal/config"
	"github.com/mercy-gachoki10/smartprintpro1/internal/database"
	"github.com/mercy-gachoki10/smartprintpro1/internal/handlers"
	"github.com/mercy-gachoki10/smartprintpro1/internal/migrations"
	"github.com/mercy-gachoki10/smartprintpro1/internal/orderno"
	"github.com/mercy-gachoki10/smartprintpro1/internal/redis"
	"github.com/mercy-gachoki10/smartprintpro1/internal/repository"
	"github.com/mercy-gachoki10/smartprintpro1/internal/services"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func main() {
	log.SetFormatter(&log.JSONFormatter{})

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	if err := migrations.RunMigrations(db, cfg.SeedDefaultData); err != nil {
		log.Fatal("Failed to migrate database: ", err)
	}

	// Initialize Redis
	redisClient, err := redis.Initialize(cfg.RedisURL)
	if err != nil {
		log.Fatal("Failed to connect to Redis: ", err)
	}
	defer redisClient.Close()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	quoteRepo := repository.NewQuoteRepository(db)
	historyRepo := repository.NewStatusHistoryRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	priceRepo := repository.NewServicePriceRepository(db)

	// Initialize services
	userService := services.NewUserService(userRepo)
	orderService := services.NewOrderService(
		db, orderRepo, historyRepo, quoteRepo, priceRepo, userRepo,
		orderno.NewGenerator(redisClient),
		cfg.QuoteBaseFee, cfg.DefaultQuoteHours,
	)
	quoteService := services.NewQuoteService(db, orderRepo, quoteRepo, historyRepo, userRepo)
	reviewService := services.NewReviewService(
		db, reviewRepo, orderRepo, redisClient,
		time.Duration(cfg.RatingCacheTTL)*time.Second,
	)

	// Initialize handlers
	orderHandler := handlers.NewOrderHandler(orderService)
	quoteHandler := handlers.NewQuoteHandler(quoteService)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	vendorHandler := handlers.NewVendorHandler(userService, priceRepo)

	// Setup routes
	router := gin.Default()

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Registration and public catalog, no actor headers required
	router.POST("/api/register/customer", vendorHandler.RegisterCustomer)
	router.POST("/api/register/vendor", vendorHandler.RegisterVendor)
	router.GET("/api/prices", vendorHandler.ListServicePrices)

	api := router.Group("/api")
	api.Use(handlers.ActorMiddleware())
	{
		api.POST("/orders", orderHandler.CreateOrder)
		api.GET("/orders", orderHandler.ListMyOrders)
		api.GET("/orders/open", orderHandler.ListOpenOrders)
		api.GET("/orders/assigned", orderHandler.ListAssignedOrders)
		api.GET("/orders/:order_id", orderHandler.GetOrder)
		api.POST("/orders/:order_id/items", orderHandler.AddItem)
		api.POST("/orders/:order_id/status", orderHandler.AdvanceStatus)
		api.POST("/orders/:order_id/confirm-receipt", orderHandler.ConfirmReceipt)
		api.GET("/orders/:order_id/history", orderHandler.StatusHistory)

		api.POST("/orders/:order_id/quotes", quoteHandler.SubmitQuote)
		api.GET("/orders/:order_id/quotes", quoteHandler.ListQuotes)
		api.GET("/orders/:order_id/quotes/latest", quoteHandler.LatestQuotes)
		api.POST("/orders/:order_id/quotes/:quote_id/accept", quoteHandler.AcceptQuote)
		api.POST("/orders/:order_id/quotes/:quote_id/reject", quoteHandler.RejectQuote)
		api.GET("/quotes", quoteHandler.ListMyQuotes)

		api.POST("/orders/:order_id/review", reviewHandler.SubmitReview)
		api.GET("/orders/:order_id/review", reviewHandler.GetOrderReview)

		api.GET("/vendors", vendorHandler.ListVendors)
		api.GET("/vendors/:vendor_id", vendorHandler.GetVendor)
		api.GET("/vendors/:vendor_id/reviews", reviewHandler.ListVendorReviews)
	}

	// Start server
	log.Infof("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server: ", err)
	}
}
