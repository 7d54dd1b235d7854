package services

import (
	"path/filepath"
	"testing"

	"github.com/mercy-gachoki10/smartprintpro1/internal/matching"
	"github.com/mercy-gachoki10/smartprintpro1/internal/models"
	"github.com/mercy-gachoki10/smartprintpro1/internal/orderno"
	"github.com/mercy-gachoki10/smartprintpro1/internal/repository"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testEnv wires the full service stack against a throwaway sqlite database.
// The rating cache is nil so review tests exercise the database path.
type testEnv struct {
	db      *gorm.DB
	orders  OrderService
	quotes  QuoteService
	reviews ReviewService
	users   UserService

	customer models.Actor
	vendorA  models.Actor
	vendorB  models.Actor

	// A4 black & white, unit price averages to 5.
	priceID uint
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	err = db.AutoMigrate(
		&models.Customer{},
		&models.Vendor{},
		&models.Admin{},
		&models.ServicePrice{},
		&models.Order{},
		&models.OrderItem{},
		&models.Quote{},
		&models.QuoteItem{},
		&models.OrderStatusHistory{},
		&models.Review{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	quoteRepo := repository.NewQuoteRepository(db)
	historyRepo := repository.NewStatusHistoryRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	priceRepo := repository.NewServicePriceRepository(db)

	env := &testEnv{
		db:    db,
		users: NewUserService(userRepo),
	}
	env.orders = NewOrderService(
		db, orderRepo, historyRepo, quoteRepo, priceRepo, userRepo,
		orderno.NewGenerator(orderno.NewMemorySequencer()),
		75.0, 24,
	)
	env.quotes = NewQuoteService(db, orderRepo, quoteRepo, historyRepo, userRepo)
	env.reviews = NewReviewService(db, reviewRepo, orderRepo, nil, 0)

	customer := &models.Customer{FullName: "Test Customer", Email: "customer@test.local"}
	if err := env.users.RegisterCustomer(customer, "secret123"); err != nil {
		t.Fatalf("register customer: %v", err)
	}
	env.customer = models.Actor{ID: customer.ID, Role: models.RoleCustomer}

	vendorA := &models.Vendor{
		FullName: "Vendor A", BusinessName: "Print Shop A", Email: "a@test.local",
		ServiceDocumentPrinting: true,
	}
	if err := env.users.RegisterVendor(vendorA, "secret123"); err != nil {
		t.Fatalf("register vendor A: %v", err)
	}
	env.vendorA = models.Actor{ID: vendorA.ID, Role: models.RoleVendor}

	vendorB := &models.Vendor{
		FullName: "Vendor B", BusinessName: "Print Shop B", Email: "b@test.local",
		ServiceDocumentPrinting: true,
	}
	if err := env.users.RegisterVendor(vendorB, "secret123"); err != nil {
		t.Fatalf("register vendor B: %v", err)
	}
	env.vendorB = models.Actor{ID: vendorB.ID, Role: models.RoleVendor}

	price := &models.ServicePrice{
		Category:     matching.CategoryDocumentPrinting,
		ServiceName:  "Black & White (A4)",
		UnitPriceMin: 2,
		UnitPriceMax: 8,
		Unit:         "per page",
		Active:       true,
	}
	if err := priceRepo.Create(price); err != nil {
		t.Fatalf("seed price: %v", err)
	}
	env.priceID = price.ID

	return env
}

// createOrder makes a ten-page document printing order: subtotal 50 on the
// averaged unit price, total 125 with the platform base fee.
func (env *testEnv) createOrder(t *testing.T) *models.Order {
	t.Helper()
	order, err := env.orders.CreateOrder(env.customer, CreateOrderInput{
		Items: []OrderItemInput{{ServicePriceID: env.priceID, Quantity: 10}},
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	return order
}

// acceptedOrder returns an order already assigned to vendor A via an accepted
// quote.
func (env *testEnv) acceptedOrder(t *testing.T) *models.Order {
	t.Helper()
	order := env.createOrder(t)
	quote, err := env.quotes.SubmitQuote(env.vendorA, order.ID, SubmitQuoteInput{BaseFee: 75})
	if err != nil {
		t.Fatalf("submit quote: %v", err)
	}
	accepted, err := env.quotes.AcceptQuote(env.customer, order.ID, quote.ID, "")
	if err != nil {
		t.Fatalf("accept quote: %v", err)
	}
	return accepted
}

// completedOrder drives an assigned order through the whole fulfillment
// pipeline to completed.
func (env *testEnv) completedOrder(t *testing.T) *models.Order {
	t.Helper()
	order := env.acceptedOrder(t)
	steps := []models.OrderStatus{
		models.OrderConfirmedReceived,
		models.OrderProcessing,
		models.OrderFinished,
		models.OrderQualityCheck,
		models.OrderReadyDispatch,
		models.OrderDispatched,
	}
	for _, status := range steps {
		if _, err := env.orders.AdvanceStatus(env.vendorA, order.ID, status, ""); err != nil {
			t.Fatalf("advance to %s: %v", status, err)
		}
	}
	completed, err := env.orders.ConfirmReceipt(env.customer, order.ID)
	if err != nil {
		t.Fatalf("confirm receipt: %v", err)
	}
	return completed
}
