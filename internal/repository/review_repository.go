package repository

import (
	"github.com/mercy-gachoki10/smartprintpro1/internal/models"

	"gorm.io/gorm"
)

type ReviewRepository interface {
	WithTx(tx *gorm.DB) ReviewRepository

	Create(review *models.Review) error
	GetByOrderID(orderID uint) (*models.Review, error)
	ListByVendor(vendorID uint) ([]models.Review, error)
	AverageForVendor(vendorID uint) (float64, int64, error)
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) WithTx(tx *gorm.DB) ReviewRepository {
	return &reviewRepository{db: tx}
}

func (r *reviewRepository) Create(review *models.Review) error {
	return r.db.Create(review).Error
}

func (r *reviewRepository) GetByOrderID(orderID uint) (*models.Review, error) {
	var review models.Review
	err := r.db.Where("order_id = ?", orderID).First(&review).Error
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) ListByVendor(vendorID uint) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.Where("vendor_id = ?", vendorID).Order("created_at DESC").Find(&reviews).Error
	return reviews, err
}

func (r *reviewRepository) AverageForVendor(vendorID uint) (float64, int64, error) {
	var count int64
	if err := r.db.Model(&models.Review{}).Where("vendor_id = ?", vendorID).Count(&count).Error; err != nil {
		return 0, 0, err
	}
	if count == 0 {
		return 0, 0, nil
	}
	var avg float64
	err := r.db.Model(&models.Review{}).
		Where("vendor_id = ?", vendorID).
		Select("AVG(rating)").
		Scan(&avg).Error
	return avg, count, err
}
