package main

import (
	"fmt"
	"log"

	"github.com/mercy-gachoki10/smartprintpro1/internal/config"
	"github.com/mercy-gachoki10/smartprintpro1/internal/database"
	"github.com/mercy-gachoki10/smartprintpro1/internal/migrations"
	"github.com/mercy-gachoki10/smartprintpro1/internal/models"
	"github.com/mercy-gachoki10/smartprintpro1/internal/repository"
	"github.com/mercy-gachoki10/smartprintpro1/internal/services"
)

// Recreates the schema from scratch and loads demo accounts on top of the
// seeded catalog. Destructive; development use only.
func main() {
	fmt.Println("Initializing database...")

	cfg := config.Load()

	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	fmt.Println("Dropping existing tables...")
	err = db.Migrator().DropTable(
		&models.Review{},
		&models.OrderStatusHistory{},
		&models.QuoteItem{},
		&models.Quote{},
		&models.OrderItem{},
		&models.Order{},
		&models.ServicePrice{},
		&models.Admin{},
		&models.Vendor{},
		&models.Customer{},
	)
	if err != nil {
		log.Printf("Warning: Error dropping tables: %v", err)
	}

	if err := migrations.RunMigrations(db, true); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	userRepo := repository.NewUserRepository(db)
	userService := services.NewUserService(userRepo)

	fmt.Println("Creating demo accounts...")

	customer := &models.Customer{
		FullName:     "Demo Customer",
		Email:        "customer@example.com",
		Phone:        "0700000001",
		Organization: "Acme Ltd",
	}
	if err := userService.RegisterCustomer(customer, "customer123"); err != nil {
		log.Fatal("Failed to create demo customer:", err)
	}

	printShop := &models.Vendor{
		FullName:     "Jane Printer",
		BusinessName: "QuickPrint Shop",
		Email:        "quickprint@example.com",
		Phone:        "0700000002",
		BusinessType: "print_shop",

		ServiceDocumentPrinting: true,
		ServicePhotos:           true,
	}
	if err := userService.RegisterVendor(printShop, "vendor123"); err != nil {
		log.Fatal("Failed to create demo vendor:", err)
	}

	signMaker := &models.Vendor{
		FullName:     "Sam Signs",
		BusinessName: "BigFormat Signage",
		Email:        "bigformat@example.com",
		Phone:        "0700000003",
		BusinessType: "signage",

		ServiceLargeFormat: true,
		ServiceMerchandise: true,
		ServiceUniforms:    true,
	}
	if err := userService.RegisterVendor(signMaker, "vendor123"); err != nil {
		log.Fatal("Failed to create demo vendor:", err)
	}

	fmt.Println("Database initialization completed!")
	fmt.Println("Demo logins: customer@example.com / customer123, quickprint@example.com / vendor123")
}
