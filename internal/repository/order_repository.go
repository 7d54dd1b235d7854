package repository

import (
	"time"

	"github.com/mercy-gachoki10/smartprintpro1/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OrderRepository interface {
	// WithTx returns a repository bound to the given transaction.
	WithTx(tx *gorm.DB) OrderRepository

	Create(order *models.Order) error
	GetByID(id uint) (*models.Order, error)
	// GetByIDForUpdate takes a row lock on the order so competing quote
	// resolutions and status transitions on the same order serialize.
	GetByIDForUpdate(id uint) (*models.Order, error)
	GetWithDetails(id uint) (*models.Order, error)
	Update(order *models.Order) error
	Delete(id uint) error
	ListByCustomer(customerID uint) ([]models.Order, error)
	ListByVendor(vendorID uint) ([]models.Order, error)
	ListOpenByCategories(categories []string, now time.Time) ([]models.Order, error)
	AddItem(item *models.OrderItem) error
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) WithTx(tx *gorm.DB) OrderRepository {
	return &orderRepository{db: tx}
}

func (r *orderRepository) Create(order *models.Order) error {
	return r.db.Create(order).Error
}

func (r *orderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	err := r.db.Preload("OrderItems").First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetByIDForUpdate(id uint) (*models.Order, error) {
	tx := r.db
	// sqlite has no FOR UPDATE; its single-writer lock serializes instead.
	if tx.Dialector.Name() != "sqlite" {
		tx = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var order models.Order
	err := tx.First(&order, id).Error
	if err != nil {
		return nil, err
	}
	if err := r.db.Where("order_id = ?", id).Find(&order.OrderItems).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetWithDetails(id uint) (*models.Order, error) {
	var order models.Order
	err := r.db.
		Preload("OrderItems").
		Preload("Quotes", func(db *gorm.DB) *gorm.DB {
			return db.Order("quotes.vendor_id, quotes.quote_number")
		}).
		Preload("Quotes.QuoteItems").
		Preload("StatusHistory", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_status_histories.created_at, order_status_histories.id")
		}).
		First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) Update(order *models.Order) error {
	return r.db.Save(order).Error
}

func (r *orderRepository) Delete(id uint) error {
	return r.db.Select(clause.Associations).Delete(&models.Order{ID: id}).Error
}

func (r *orderRepository) ListByCustomer(customerID uint) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Where("customer_id = ?", customerID).Order("created_at DESC").Find(&orders).Error
	return orders, err
}

func (r *orderRepository) ListByVendor(vendorID uint) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Where("vendor_id = ?", vendorID).Order("created_at DESC").Find(&orders).Error
	return orders, err
}

func (r *orderRepository) ListOpenByCategories(categories []string, now time.Time) ([]models.Order, error) {
	if len(categories) == 0 {
		return nil, nil
	}
	var orders []models.Order
	err := r.db.
		Where("service_category IN ?", categories).
		Where("vendor_id IS NULL").
		Where("status IN ?", []models.OrderStatus{models.OrderPending, models.OrderAwaitingQuotes, models.OrderQuoted}).
		Where("quote_deadline IS NULL OR quote_deadline > ?", now).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

func (r *orderRepository) AddItem(item *models.OrderItem) error {
	return r.db.Create(item).Error
}
