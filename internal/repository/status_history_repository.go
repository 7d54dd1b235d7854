package repository

import (
	"github.com/mercy-gachoki10/smartprintpro1/internal/models"

	"gorm.io/gorm"
)

// StatusHistoryRepository only ever appends and reads; history rows are
// immutable once written.
type StatusHistoryRepository interface {
	WithTx(tx *gorm.DB) StatusHistoryRepository

	Append(entry *models.OrderStatusHistory) error
	ListByOrder(orderID uint) ([]models.OrderStatusHistory, error)
}

type statusHistoryRepository struct {
	db *gorm.DB
}

func NewStatusHistoryRepository(db *gorm.DB) StatusHistoryRepository {
	return &statusHistoryRepository{db: db}
}

func (r *statusHistoryRepository) WithTx(tx *gorm.DB) StatusHistoryRepository {
	return &statusHistoryRepository{db: tx}
}

func (r *statusHistoryRepository) Append(entry *models.OrderStatusHistory) error {
	return r.db.Create(entry).Error
}

func (r *statusHistoryRepository) ListByOrder(orderID uint) ([]models.OrderStatusHistory, error) {
	var entries []models.OrderStatusHistory
	err := r.db.Where("order_id = ?", orderID).
		Order("created_at, id").
		Find(&entries).Error
	return entries, err
}
