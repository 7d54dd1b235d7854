package repository

import (
	"github.com/mercy-gachoki10/smartprintpro1/internal/models"

	"gorm.io/gorm"
)

// ServicePriceRepository is the read-only view of the pricing catalog this
// core consumes; catalog CRUD is an external concern.
type ServicePriceRepository interface {
	Create(price *models.ServicePrice) error
	GetByID(id uint) (*models.ServicePrice, error)
	ListActive() ([]models.ServicePrice, error)
	ListByCategory(category string) ([]models.ServicePrice, error)
	Count() (int64, error)
}

type servicePriceRepository struct {
	db *gorm.DB
}

func NewServicePriceRepository(db *gorm.DB) ServicePriceRepository {
	return &servicePriceRepository{db: db}
}

func (r *servicePriceRepository) Create(price *models.ServicePrice) error {
	return r.db.Create(price).Error
}

func (r *servicePriceRepository) GetByID(id uint) (*models.ServicePrice, error) {
	var price models.ServicePrice
	err := r.db.First(&price, id).Error
	if err != nil {
		return nil, err
	}
	return &price, nil
}

func (r *servicePriceRepository) ListActive() ([]models.ServicePrice, error) {
	var prices []models.ServicePrice
	err := r.db.Where("active = ?", true).Order("category, service_name").Find(&prices).Error
	return prices, err
}

func (r *servicePriceRepository) ListByCategory(category string) ([]models.ServicePrice, error) {
	var prices []models.ServicePrice
	err := r.db.Where("category = ? AND active = ?", category, true).
		Order("service_name").Find(&prices).Error
	return prices, err
}

func (r *servicePriceRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.ServicePrice{}).Count(&count).Error
	return count, err
}
