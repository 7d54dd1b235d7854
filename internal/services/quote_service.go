package services

import (
	"fmt"
	"time"

	"github.com/mercy-gachoki10/smartprintpro1/internal/apperrors"
	"github.com/mercy-gachoki10/smartprintpro1/internal/matching"
	"github.com/mercy-gachoki10/smartprintpro1/internal/models"
	"github.com/mercy-gachoki10/smartprintpro1/internal/repository"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// QuoteItemOverride reprices one order item inside a quote submission.
type QuoteItemOverride struct {
	UnitPrice float64
	Note      string
}

type SubmitQuoteInput struct {
	BaseFee float64
	// ItemOverrides is keyed by order item id; items without an entry keep
	// the order's snapshot price.
	ItemOverrides map[uint]QuoteItemOverride
	Message       string
}

type QuoteService interface {
	SubmitQuote(vendor models.Actor, orderID uint, input SubmitQuoteInput) (*models.Quote, error)
	AcceptQuote(customer models.Actor, orderID, quoteID uint, response string) (*models.Order, error)
	RejectQuote(customer models.Actor, orderID, quoteID uint, response string) (*models.Quote, error)
	QuotesOpen(orderID uint) (bool, error)
	ListQuotesForOrder(actor models.Actor, orderID uint) ([]models.Quote, error)
	LatestQuotesPerVendor(actor models.Actor, orderID uint) ([]models.Quote, error)
	ListQuotesByVendor(vendor models.Actor) ([]models.Quote, error)
}

type quoteService struct {
	db          *gorm.DB
	orderRepo   repository.OrderRepository
	quoteRepo   repository.QuoteRepository
	historyRepo repository.StatusHistoryRepository
	userRepo    repository.UserRepository
}

func NewQuoteService(
	db *gorm.DB,
	orderRepo repository.OrderRepository,
	quoteRepo repository.QuoteRepository,
	historyRepo repository.StatusHistoryRepository,
	userRepo repository.UserRepository,
) QuoteService {
	return &quoteService{
		db:          db,
		orderRepo:   orderRepo,
		quoteRepo:   quoteRepo,
		historyRepo: historyRepo,
		userRepo:    userRepo,
	}
}

// SubmitQuote records a new quote revision for the vendor. Each call creates
// a new row; prior revisions stay queryable. The first quote ever on an
// order moves it from pending to awaiting_quotes.
func (s *quoteService) SubmitQuote(vendor models.Actor, orderID uint, input SubmitQuoteInput) (*models.Quote, error) {
	if vendor.Role != models.RoleVendor {
		return nil, apperrors.AccessDenied("only vendors submit quotes")
	}
	if input.BaseFee < 0 {
		return nil, apperrors.Validation("base fee cannot be negative")
	}
	for itemID, override := range input.ItemOverrides {
		if override.UnitPrice < 0 {
			return nil, apperrors.Validation(fmt.Sprintf("negative unit price for item %d", itemID))
		}
	}

	v, err := s.userRepo.GetVendorByID(vendor.ID)
	if err != nil {
		return nil, notFoundErr(err, "vendor")
	}

	var created *models.Quote
	err = s.db.Transaction(func(tx *gorm.DB) error {
		orders := s.orderRepo.WithTx(tx)
		quotes := s.quoteRepo.WithTx(tx)
		history := s.historyRepo.WithTx(tx)

		order, err := orders.GetByIDForUpdate(orderID)
		if err != nil {
			return notFoundErr(err, "order")
		}
		now := time.Now().UTC()
		if !order.QuotesOpen(now) {
			return apperrors.InvalidTransition(string(order.Status), "quote submission")
		}
		if !matching.VendorCanServiceOrder(v, order) {
			return apperrors.AccessDenied("order is outside the vendor's service categories")
		}

		// Per-vendor revision counter: count within the transaction so two
		// revisions from the same vendor cannot share a number.
		existing, err := quotes.CountByOrderAndVendor(orderID, vendor.ID)
		if err != nil {
			return err
		}
		totalQuotes, err := quotes.CountByOrder(orderID)
		if err != nil {
			return err
		}

		quoteItems := make([]models.QuoteItem, 0, len(order.OrderItems))
		var subtotal float64
		seen := make(map[uint]bool, len(order.OrderItems))
		for _, item := range order.OrderItems {
			seen[item.ID] = true
			unitPrice := item.UnitPrice
			note := ""
			if override, ok := input.ItemOverrides[item.ID]; ok {
				unitPrice = override.UnitPrice
				note = override.Note
			}
			total := float64(item.Quantity) * unitPrice
			subtotal += total
			quoteItems = append(quoteItems, models.QuoteItem{
				OrderItemID: item.ID,
				Quantity:    item.Quantity,
				UnitPrice:   unitPrice,
				TotalPrice:  total,
				Note:        note,
			})
		}
		for itemID := range input.ItemOverrides {
			if !seen[itemID] {
				return apperrors.Validation(fmt.Sprintf("item %d does not belong to order %d", itemID, orderID))
			}
		}

		quote := &models.Quote{
			OrderID:       orderID,
			VendorID:      vendor.ID,
			QuoteNumber:   int(existing) + 1,
			BaseFee:       input.BaseFee,
			Subtotal:      subtotal,
			TotalAmount:   input.BaseFee + subtotal,
			Status:        models.QuotePending,
			VendorMessage: input.Message,
			QuoteItems:    quoteItems,
		}
		if err := quotes.Create(quote); err != nil {
			return err
		}

		// First quote across all vendors opens the competition.
		if totalQuotes == 0 && order.Status == models.OrderPending {
			order.Status = models.OrderAwaitingQuotes
			if err := orders.Update(order); err != nil {
				return err
			}
			if err := history.Append(&models.OrderStatusHistory{
				OrderID:       order.ID,
				OldStatus:     models.OrderPending,
				NewStatus:     models.OrderAwaitingQuotes,
				ChangedByID:   vendor.ID,
				ChangedByRole: models.RoleVendor,
				Note:          "First quote received",
				CreatedAt:     now,
			}); err != nil {
				return err
			}
		}
		created = quote
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"order_id":     orderID,
		"vendor_id":    vendor.ID,
		"quote_id":     created.ID,
		"quote_number": created.QuoteNumber,
		"total":        created.TotalAmount,
	}).Info("Quote submitted")

	return created, nil
}

// AcceptQuote resolves the competition. All five effects commit atomically:
// the winning quote is accepted, the order gets its vendor, quote id and
// pricing, the status moves to in_progress, every other pending quote is
// rejected, and one history row records the assignment. The order row lock
// plus the vendor_id re-check make accept a compare-and-set on "no vendor
// assigned yet"; a concurrent second accept fails with ErrAlreadyResolved.
func (s *quoteService) AcceptQuote(customer models.Actor, orderID, quoteID uint, response string) (*models.Order, error) {
	var updated *models.Order
	err := s.db.Transaction(func(tx *gorm.DB) error {
		orders := s.orderRepo.WithTx(tx)
		quotes := s.quoteRepo.WithTx(tx)
		history := s.historyRepo.WithTx(tx)

		order, err := orders.GetByIDForUpdate(orderID)
		if err != nil {
			return notFoundErr(err, "order")
		}
		if customer.Role != models.RoleCustomer || order.CustomerID != customer.ID {
			return apperrors.AccessDenied("only the order's customer may respond to quotes")
		}

		quote, err := quotes.GetByID(quoteID)
		if err != nil {
			return notFoundErr(err, "quote")
		}
		if quote.OrderID != orderID {
			return fmt.Errorf("%w: quote %d does not belong to order %d", apperrors.ErrNotFound, quoteID, orderID)
		}

		// Re-accepting the winning quote is a no-op success.
		if quote.Status == models.QuoteAccepted && order.SelectedQuoteID != nil && *order.SelectedQuoteID == quote.ID {
			updated = order
			return nil
		}
		if order.VendorID != nil {
			return fmt.Errorf("%w: order already assigned to a vendor", apperrors.ErrAlreadyResolved)
		}
		if quote.Status != models.QuotePending {
			return fmt.Errorf("%w: quote was already %s", apperrors.ErrAlreadyResolved, quote.Status)
		}

		now := time.Now().UTC()

		quote.Status = models.QuoteAccepted
		quote.CustomerResponse = response
		quote.RespondedAt = &now
		if err := quotes.Update(quote); err != nil {
			return err
		}

		oldStatus := order.Status
		order.VendorID = &quote.VendorID
		order.SelectedQuoteID = &quote.ID
		order.BaseFee = quote.BaseFee
		order.Subtotal = quote.Subtotal
		order.TotalAmount = quote.TotalAmount
		order.Status = models.OrderInProgress
		order.AssignedAt = &now
		if err := orders.Update(order); err != nil {
			return err
		}

		if err := quotes.RejectPending(orderID, quote.ID,
			"Customer selected a different vendor", now); err != nil {
			return err
		}

		if err := history.Append(&models.OrderStatusHistory{
			OrderID:       order.ID,
			OldStatus:     oldStatus,
			NewStatus:     models.OrderInProgress,
			ChangedByID:   customer.ID,
			ChangedByRole: models.RoleCustomer,
			Note:          fmt.Sprintf("Quote #%d from vendor %d accepted", quote.QuoteNumber, quote.VendorID),
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
		"quote_id":  quoteID,
		"vendor_id": updated.VendorID,
	}).Info("Quote accepted, order assigned")

	return updated, nil
}

// RejectQuote declines a single quote without touching the order's
// assignment or status. When the last pending quote goes, a history note
// records that the order stays open for new quotes.
func (s *quoteService) RejectQuote(customer models.Actor, orderID, quoteID uint, response string) (*models.Quote, error) {
	var rejected *models.Quote
	err := s.db.Transaction(func(tx *gorm.DB) error {
		orders := s.orderRepo.WithTx(tx)
		quotes := s.quoteRepo.WithTx(tx)
		history := s.historyRepo.WithTx(tx)

		order, err := orders.GetByIDForUpdate(orderID)
		if err != nil {
			return notFoundErr(err, "order")
		}
		if customer.Role != models.RoleCustomer || order.CustomerID != customer.ID {
			return apperrors.AccessDenied("only the order's customer may respond to quotes")
		}

		quote, err := quotes.GetByID(quoteID)
		if err != nil {
			return notFoundErr(err, "quote")
		}
		if quote.OrderID != orderID {
			return fmt.Errorf("%w: quote %d does not belong to order %d", apperrors.ErrNotFound, quoteID, orderID)
		}
		if quote.Status != models.QuotePending {
			return fmt.Errorf("%w: quote was already %s", apperrors.ErrAlreadyResolved, quote.Status)
		}

		now := time.Now().UTC()
		quote.Status = models.QuoteRejected
		quote.CustomerResponse = response
		quote.RespondedAt = &now
		if err := quotes.Update(quote); err != nil {
			return err
		}

		remaining, err := quotes.CountPendingByOrder(orderID)
		if err != nil {
			return err
		}
		if remaining == 0 {
			if err := history.Append(&models.OrderStatusHistory{
				OrderID:       order.ID,
				OldStatus:     order.Status,
				NewStatus:     order.Status,
				ChangedByID:   customer.ID,
				ChangedByRole: models.RoleCustomer,
				Note:          "All quotes rejected; order remains open for new quotes",
				CreatedAt:     now,
			}); err != nil {
				return err
			}
		}
		rejected = quote
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"order_id": orderID,
		"quote_id": quoteID,
	}).Info("Quote rejected")

	return rejected, nil
}

func (s *quoteService) QuotesOpen(orderID uint) (bool, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return false, notFoundErr(err, "order")
	}
	return order.QuotesOpen(time.Now().UTC()), nil
}

func (s *quoteService) ListQuotesForOrder(actor models.Actor, orderID uint) ([]models.Quote, error) {
	if err := s.authorizeQuoteRead(actor, orderID); err != nil {
		return nil, err
	}
	quotes, err := s.quoteRepo.ListByOrder(orderID)
	if err != nil {
		return nil, err
	}
	return s.filterForActor(actor, quotes), nil
}

// LatestQuotesPerVendor returns only the newest revision from each vendor,
// the set a customer chooses among.
func (s *quoteService) LatestQuotesPerVendor(actor models.Actor, orderID uint) ([]models.Quote, error) {
	if err := s.authorizeQuoteRead(actor, orderID); err != nil {
		return nil, err
	}
	quotes, err := s.quoteRepo.LatestPerVendor(orderID)
	if err != nil {
		return nil, err
	}
	return s.filterForActor(actor, quotes), nil
}

func (s *quoteService) ListQuotesByVendor(vendor models.Actor) ([]models.Quote, error) {
	if vendor.Role != models.RoleVendor {
		return nil, apperrors.AccessDenied("vendor listing requires the vendor role")
	}
	return s.quoteRepo.ListByVendor(vendor.ID)
}

func (s *quoteService) authorizeQuoteRead(actor models.Actor, orderID uint) error {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return notFoundErr(err, "order")
	}
	switch actor.Role {
	case models.RoleAdmin:
		return nil
	case models.RoleCustomer:
		if order.CustomerID == actor.ID {
			return nil
		}
		return apperrors.AccessDenied("order belongs to another customer")
	case models.RoleVendor:
		v, err := s.userRepo.GetVendorByID(actor.ID)
		if err != nil {
			return notFoundErr(err, "vendor")
		}
		if matching.VendorCanServiceOrder(v, order) {
			return nil
		}
		return apperrors.AccessDenied("order is outside the vendor's service categories")
	}
	return apperrors.AccessDenied("unknown actor role")
}

// filterForActor hides competing vendors' quotes from a vendor; customers
// and admins see everything.
func (s *quoteService) filterForActor(actor models.Actor, quotes []models.Quote) []models.Quote {
	if actor.Role != models.RoleVendor {
		return quotes
	}
	own := make([]models.Quote, 0, len(quotes))
	for _, q := range quotes {
		if q.VendorID == actor.ID {
			own = append(own, q)
		}
	}
	return own
}
