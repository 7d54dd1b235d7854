package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/mercy-gachoki10/smartprintpro1/internal/apperrors"
	"github.com/mercy-gachoki10/smartprintpro1/internal/matching"
	"github.com/mercy-gachoki10/smartprintpro1/internal/models"
	"github.com/mercy-gachoki10/smartprintpro1/internal/orderno"
	"github.com/mercy-gachoki10/smartprintpro1/internal/repository"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type OrderItemInput struct {
	ServicePriceID uint
	Quantity       int
	// UnitPrice overrides the catalog default when > 0.
	UnitPrice      float64
	Specifications string
	FileName       string
}

type CreateOrderInput struct {
	Items              []OrderItemInput
	QuoteDurationHours int
	CustomerNotes      string
}

type OrderService interface {
	CreateOrder(customer models.Actor, input CreateOrderInput) (*models.Order, error)
	AddItemToOrder(customer models.Actor, orderID uint, input OrderItemInput) (*models.Order, error)
	GetOrderForActor(actor models.Actor, orderID uint) (*models.Order, error)
	ListOrdersForCustomer(customer models.Actor) ([]models.Order, error)
	ListOpenOrdersForVendor(vendor models.Actor) ([]models.Order, error)
	ListAssignedOrdersForVendor(vendor models.Actor) ([]models.Order, error)
	AdvanceStatus(vendor models.Actor, orderID uint, newStatus models.OrderStatus, notes string) (*models.Order, error)
	ConfirmReceipt(customer models.Actor, orderID uint) (*models.Order, error)
	StatusHistory(actor models.Actor, orderID uint) ([]models.OrderStatusHistory, error)
}

type orderService struct {
	db          *gorm.DB
	orderRepo   repository.OrderRepository
	historyRepo repository.StatusHistoryRepository
	quoteRepo   repository.QuoteRepository
	priceRepo   repository.ServicePriceRepository
	userRepo    repository.UserRepository
	numbers     *orderno.Generator
	baseFee     float64
	defaultQuoteHours int
}

func NewOrderService(
	db *gorm.DB,
	orderRepo repository.OrderRepository,
	historyRepo repository.StatusHistoryRepository,
	quoteRepo repository.QuoteRepository,
	priceRepo repository.ServicePriceRepository,
	userRepo repository.UserRepository,
	numbers *orderno.Generator,
	baseFee float64,
	defaultQuoteHours int,
) OrderService {
	return &orderService{
		db:                db,
		orderRepo:         orderRepo,
		historyRepo:       historyRepo,
		quoteRepo:         quoteRepo,
		priceRepo:         priceRepo,
		userRepo:          userRepo,
		numbers:           numbers,
		baseFee:           baseFee,
		defaultQuoteHours: defaultQuoteHours,
	}
}

func (s *orderService) CreateOrder(customer models.Actor, input CreateOrderInput) (*models.Order, error) {
	if customer.Role != models.RoleCustomer {
		return nil, apperrors.AccessDenied("only customers create orders")
	}
	if len(input.Items) == 0 {
		return nil, apperrors.Validation("order needs at least one item")
	}

	duration := input.QuoteDurationHours
	if duration <= 0 {
		duration = s.defaultQuoteHours
	}

	// Snapshot catalog prices now; the catalog is never consulted again for
	// this order.
	items := make([]models.OrderItem, 0, len(input.Items))
	category := ""
	for _, in := range input.Items {
		if in.Quantity <= 0 {
			return nil, apperrors.Validation("item quantity must be positive")
		}
		price, err := s.priceRepo.GetByID(in.ServicePriceID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.Validation(fmt.Sprintf("unknown service id %d", in.ServicePriceID))
			}
			return nil, err
		}
		if !price.Active {
			return nil, apperrors.Validation(fmt.Sprintf("service %q is not available", price.ServiceName))
		}
		unitPrice := in.UnitPrice
		if unitPrice <= 0 {
			unitPrice = price.AveragePrice()
		}
		if category == "" {
			// The order's single category comes from its first item.
			category = price.Category
		}
		items = append(items, models.OrderItem{
			ServiceCategory: price.Category,
			ServiceType:     price.ServiceName,
			Quantity:        in.Quantity,
			UnitPrice:       unitPrice,
			TotalPrice:      float64(in.Quantity) * unitPrice,
			Specifications:  in.Specifications,
			FileName:        in.FileName,
		})
	}

	now := time.Now().UTC()
	deadline := now.Add(time.Duration(duration) * time.Hour)
	order := &models.Order{
		OrderNumber:        s.numbers.Next(),
		CustomerID:         customer.ID,
		ServiceCategory:    category,
		Status:             models.OrderPending,
		BaseFee:            s.baseFee,
		QuoteDeadline:      &deadline,
		QuoteDurationHours: duration,
		CustomerNotes:      input.CustomerNotes,
		OrderItems:         items,
	}
	order.CalculateTotal()

	if err := s.orderRepo.Create(order); err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"order_id":     order.ID,
		"order_number": order.OrderNumber,
		"customer_id":  customer.ID,
		"category":     category,
		"total":        order.TotalAmount,
	}).Info("Order created")

	return order, nil
}

func (s *orderService) AddItemToOrder(customer models.Actor, orderID uint, input OrderItemInput) (*models.Order, error) {
	if input.Quantity <= 0 {
		return nil, apperrors.Validation("item quantity must be positive")
	}
	price, err := s.priceRepo.GetByID(input.ServicePriceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.Validation(fmt.Sprintf("unknown service id %d", input.ServicePriceID))
		}
		return nil, err
	}

	var updated *models.Order
	err = s.db.Transaction(func(tx *gorm.DB) error {
		orders := s.orderRepo.WithTx(tx)
		quotes := s.quoteRepo.WithTx(tx)

		order, err := orders.GetByIDForUpdate(orderID)
		if err != nil {
			return notFoundErr(err, "order")
		}
		if order.CustomerID != customer.ID || customer.Role != models.RoleCustomer {
			return apperrors.AccessDenied("order belongs to another customer")
		}
		// Items freeze once quoting has started: vendors price against the
		// item snapshot they saw.
		quoteCount, err := quotes.CountByOrder(orderID)
		if err != nil {
			return err
		}
		if quoteCount > 0 || !order.Status.InBiddingPhase() {
			return fmt.Errorf("%w: items are frozen once quoting has started", apperrors.ErrAlreadyResolved)
		}

		unitPrice := input.UnitPrice
		if unitPrice <= 0 {
			unitPrice = price.AveragePrice()
		}
		item := models.OrderItem{
			OrderID:         order.ID,
			ServiceCategory: price.Category,
			ServiceType:     price.ServiceName,
			Quantity:        input.Quantity,
			UnitPrice:       unitPrice,
			TotalPrice:      float64(input.Quantity) * unitPrice,
			Specifications:  input.Specifications,
			FileName:        input.FileName,
		}
		if err := orders.AddItem(&item); err != nil {
			return err
		}
		order.OrderItems = append(order.OrderItems, item)
		order.CalculateTotal()
		if err := orders.Update(order); err != nil {
			return err
		}
		updated = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *orderService) GetOrderForActor(actor models.Actor, orderID uint) (*models.Order, error) {
	order, err := s.orderRepo.GetWithDetails(orderID)
	if err != nil {
		return nil, notFoundErr(err, "order")
	}
	if err := s.authorizeView(actor, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *orderService) authorizeView(actor models.Actor, order *models.Order) error {
	switch actor.Role {
	case models.RoleAdmin:
		return nil
	case models.RoleCustomer:
		if order.CustomerID == actor.ID {
			return nil
		}
		return apperrors.AccessDenied("order belongs to another customer")
	case models.RoleVendor:
		vendor, err := s.userRepo.GetVendorByID(actor.ID)
		if err != nil {
			return notFoundErr(err, "vendor")
		}
		if matching.VendorCanServiceOrder(vendor, order) {
			return nil
		}
		return apperrors.AccessDenied("order is outside the vendor's service categories")
	}
	return apperrors.AccessDenied("unknown actor role")
}

func (s *orderService) ListOrdersForCustomer(customer models.Actor) ([]models.Order, error) {
	if customer.Role != models.RoleCustomer {
		return nil, apperrors.AccessDenied("customer listing requires the customer role")
	}
	return s.orderRepo.ListByCustomer(customer.ID)
}

func (s *orderService) ListOpenOrdersForVendor(vendor models.Actor) ([]models.Order, error) {
	if vendor.Role != models.RoleVendor {
		return nil, apperrors.AccessDenied("vendor listing requires the vendor role")
	}
	v, err := s.userRepo.GetVendorByID(vendor.ID)
	if err != nil {
		return nil, notFoundErr(err, "vendor")
	}
	return s.orderRepo.ListOpenByCategories(matching.CategoriesForVendor(v), time.Now().UTC())
}

func (s *orderService) ListAssignedOrdersForVendor(vendor models.Actor) ([]models.Order, error) {
	if vendor.Role != models.RoleVendor {
		return nil, apperrors.AccessDenied("vendor listing requires the vendor role")
	}
	return s.orderRepo.ListByVendor(vendor.ID)
}

// AdvanceStatus moves an assigned order along the fulfillment pipeline. Only
// the assigned vendor may drive the table; the status write and its history
// row commit together.
func (s *orderService) AdvanceStatus(vendor models.Actor, orderID uint, newStatus models.OrderStatus, notes string) (*models.Order, error) {
	var updated *models.Order
	err := s.db.Transaction(func(tx *gorm.DB) error {
		orders := s.orderRepo.WithTx(tx)
		history := s.historyRepo.WithTx(tx)

		order, err := orders.GetByIDForUpdate(orderID)
		if err != nil {
			return notFoundErr(err, "order")
		}
		if vendor.Role != models.RoleVendor || order.VendorID == nil || *order.VendorID != vendor.ID {
			return apperrors.AccessDenied("only the assigned vendor may update order status")
		}
		if !models.CanTransition(order.Status, newStatus) {
			return apperrors.InvalidTransition(string(order.Status), string(newStatus))
		}

		now := time.Now().UTC()
		oldStatus := order.Status
		order.Status = newStatus
		stampTransition(order, newStatus, now)
		if err := orders.Update(order); err != nil {
			return err
		}
		if err := history.Append(&models.OrderStatusHistory{
			OrderID:       order.ID,
			OldStatus:     oldStatus,
			NewStatus:     newStatus,
			ChangedByID:   vendor.ID,
			ChangedByRole: models.RoleVendor,
			Note:          notes,
			CreatedAt:     now,
		}); err != nil {
			return err
		}
		updated = order
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"order_id":  orderID,
		"vendor_id": vendor.ID,
		"status":    newStatus,
	}).Info("Order status advanced")

	return updated, nil
}

// ConfirmReceipt is the customer-driven producer of the dispatched ->
// completed edge.
func (s *orderService) ConfirmReceipt(customer models.Actor, orderID uint) (*models.Order, error) {
	var updated *models.Order
	err := s.db.Transaction(func(tx *gorm.DB) error {
		orders := s.orderRepo.WithTx(tx)
		history := s.historyRepo.WithTx(tx)

		order, err := orders.GetByIDForUpdate(orderID)
		if err != nil {
			return notFoundErr(err, "order")
		}
		if customer.Role != models.RoleCustomer || order.CustomerID != customer.ID {
			return apperrors.AccessDenied("only the order's customer may confirm receipt")
		}
		if order.Status != models.OrderDispatched {
			return apperrors.InvalidTransition(string(order.Status), string(models.OrderCompleted))
		}

		now := time.Now().UTC()
		oldStatus := order.Status
		order.Status = models.OrderCompleted
		order.CompletedAt = &now
		if err := orders.Update(order); err != nil {
			return err
		}
		if err := history.Append(&models.OrderStatusHistory{
			OrderID:       order.ID,
			OldStatus:     oldStatus,
			NewStatus:     models.OrderCompleted,
			ChangedByID:   customer.ID,
			ChangedByRole: models.RoleCustomer,
			Note:          "Receipt confirmed by customer",
			CreatedAt:     now,
		}); err != nil {
			return err
		}
		updated = order
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"order_id":    orderID,
		"customer_id": customer.ID,
	}).Info("Order receipt confirmed")

	return updated, nil
}

func (s *orderService) StatusHistory(actor models.Actor, orderID uint) ([]models.OrderStatusHistory, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, notFoundErr(err, "order")
	}
	if err := s.authorizeView(actor, order); err != nil {
		return nil, err
	}
	return s.historyRepo.ListByOrder(orderID)
}

// stampTransition sets the denormalized timestamp for milestones; the value
// must equal the matching history row's timestamp.
func stampTransition(order *models.Order, status models.OrderStatus, now time.Time) {
	switch status {
	case models.OrderReadyDispatch:
		order.ReadyAt = &now
	case models.OrderDispatched:
		order.DispatchedAt = &now
	case models.OrderCompleted:
		order.CompletedAt = &now
	}
}

func notFoundErr(err error, what string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %s", apperrors.ErrNotFound, what)
	}
	return err
}
