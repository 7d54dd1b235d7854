package repository

import (
	"time"

	"github.com/mercy-gachoki10/smartprintpro1/internal/models"

	"gorm.io/gorm"
)

type QuoteRepository interface {
	WithTx(tx *gorm.DB) QuoteRepository

	Create(quote *models.Quote) error
	GetByID(id uint) (*models.Quote, error)
	Update(quote *models.Quote) error
	CountByOrder(orderID uint) (int64, error)
	CountByOrderAndVendor(orderID, vendorID uint) (int64, error)
	CountPendingByOrder(orderID uint) (int64, error)
	ListByOrder(orderID uint) ([]models.Quote, error)
	ListByVendor(vendorID uint) ([]models.Quote, error)
	// LatestPerVendor returns only the highest quote_number revision per
	// vendor; display and selection always prefer the newest revision.
	LatestPerVendor(orderID uint) ([]models.Quote, error)
	// RejectPending marks every pending quote on the order except the given
	// one as rejected with the supplied response.
	RejectPending(orderID, exceptQuoteID uint, response string, respondedAt time.Time) error
}

type quoteRepository struct {
	db *gorm.DB
}

func NewQuoteRepository(db *gorm.DB) QuoteRepository {
	return &quoteRepository{db: db}
}

func (r *quoteRepository) WithTx(tx *gorm.DB) QuoteRepository {
	return &quoteRepository{db: tx}
}

func (r *quoteRepository) Create(quote *models.Quote) error {
	return r.db.Create(quote).Error
}

func (r *quoteRepository) GetByID(id uint) (*models.Quote, error) {
	var quote models.Quote
	err := r.db.Preload("QuoteItems").First(&quote, id).Error
	if err != nil {
		return nil, err
	}
	return &quote, nil
}

func (r *quoteRepository) Update(quote *models.Quote) error {
	return r.db.Save(quote).Error
}

func (r *quoteRepository) CountByOrder(orderID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Quote{}).Where("order_id = ?", orderID).Count(&count).Error
	return count, err
}

func (r *quoteRepository) CountByOrderAndVendor(orderID, vendorID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Quote{}).
		Where("order_id = ? AND vendor_id = ?", orderID, vendorID).
		Count(&count).Error
	return count, err
}

func (r *quoteRepository) CountPendingByOrder(orderID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Quote{}).
		Where("order_id = ? AND status = ?", orderID, models.QuotePending).
		Count(&count).Error
	return count, err
}

func (r *quoteRepository) ListByOrder(orderID uint) ([]models.Quote, error) {
	var quotes []models.Quote
	err := r.db.Preload("QuoteItems").
		Where("order_id = ?", orderID).
		Order("vendor_id, quote_number").
		Find(&quotes).Error
	return quotes, err
}

func (r *quoteRepository) ListByVendor(vendorID uint) ([]models.Quote, error) {
	var quotes []models.Quote
	err := r.db.Where("vendor_id = ?", vendorID).
		Order("created_at DESC").
		Find(&quotes).Error
	return quotes, err
}

func (r *quoteRepository) LatestPerVendor(orderID uint) ([]models.Quote, error) {
	var quotes []models.Quote
	err := r.db.Preload("QuoteItems").
		Where("order_id = ?", orderID).
		Where(`quote_number = (SELECT MAX(q2.quote_number) FROM quotes q2
			WHERE q2.order_id = quotes.order_id AND q2.vendor_id = quotes.vendor_id
			AND q2.deleted_at IS NULL)`).
		Order("vendor_id").
		Find(&quotes).Error
	return quotes, err
}

func (r *quoteRepository) RejectPending(orderID, exceptQuoteID uint, response string, respondedAt time.Time) error {
	return r.db.Model(&models.Quote{}).
		Where("order_id = ? AND id <> ? AND status = ?", orderID, exceptQuoteID, models.QuotePending).
		Updates(map[string]interface{}{
			"status":            models.QuoteRejected,
			"customer_response": response,
			"responded_at":      respondedAt,
		}).Error
}
