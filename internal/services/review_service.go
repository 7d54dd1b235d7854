package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/mercy-gachoki10/smartprintpro1/internal/apperrors"
	"github.com/mercy-gachoki10/smartprintpro1/internal/models"
	"github.com/mercy-gachoki10/smartprintpro1/internal/redis"
	"github.com/mercy-gachoki10/smartprintpro1/internal/repository"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type ReviewService interface {
	SubmitReview(customer models.Actor, orderID uint, rating int, comment string) (*models.Review, error)
	GetReviewForOrder(orderID uint) (*models.Review, error)
	ListVendorReviews(vendorID uint) ([]models.Review, error)
	VendorAverageRating(vendorID uint) (float64, error)
}

type reviewService struct {
	db         *gorm.DB
	reviewRepo repository.ReviewRepository
	orderRepo  repository.OrderRepository
	cache      *redis.Client
	cacheTTL   time.Duration
}

// NewReviewService builds the review subsystem. cache may be nil; rating
// lookups then always hit the database.
func NewReviewService(
	db *gorm.DB,
	reviewRepo repository.ReviewRepository,
	orderRepo repository.OrderRepository,
	cache *redis.Client,
	cacheTTL time.Duration,
) ReviewService {
	return &reviewService{
		db:         db,
		reviewRepo: reviewRepo,
		orderRepo:  orderRepo,
		cache:      cache,
		cacheTTL:   cacheTTL,
	}
}

// SubmitReview accepts exactly one rating per completed order, from that
// order's customer only. The vendor reference is captured from the order at
// write time.
func (s *reviewService) SubmitReview(customer models.Actor, orderID uint, rating int, comment string) (*models.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, apperrors.Validation("rating must be between 1 and 5")
	}

	var created *models.Review
	err := s.db.Transaction(func(tx *gorm.DB) error {
		orders := s.orderRepo.WithTx(tx)
		reviews := s.reviewRepo.WithTx(tx)

		order, err := orders.GetByIDForUpdate(orderID)
		if err != nil {
			return notFoundErr(err, "order")
		}
		if customer.Role != models.RoleCustomer || order.CustomerID != customer.ID {
			return apperrors.AccessDenied("only the order's customer may leave a review")
		}
		if order.Status != models.OrderCompleted {
			return apperrors.InvalidTransition(string(order.Status), "review submission")
		}
		if order.VendorID == nil {
			return apperrors.Validation("completed order has no assigned vendor")
		}

		if _, err := reviews.GetByOrderID(orderID); err == nil {
			return fmt.Errorf("%w: order already reviewed", apperrors.ErrAlreadyResolved)
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		review := &models.Review{
			OrderID:    orderID,
			CustomerID: customer.ID,
			VendorID:   *order.VendorID,
			Rating:     rating,
			Comment:    comment,
		}
		if err := reviews.Create(review); err != nil {
			return err
		}
		created = review
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.DeleteVendorRating(created.VendorID); err != nil {
			log.WithError(err).Warn("Failed to invalidate vendor rating cache")
		}
	}

	log.WithFields(log.Fields{
		"order_id":  orderID,
		"vendor_id": created.VendorID,
		"rating":    rating,
	}).Info("Review submitted")

	return created, nil
}

func (s *reviewService) GetReviewForOrder(orderID uint) (*models.Review, error) {
	review, err := s.reviewRepo.GetByOrderID(orderID)
	if err != nil {
		return nil, notFoundErr(err, "review")
	}
	return review, nil
}

func (s *reviewService) ListVendorReviews(vendorID uint) ([]models.Review, error) {
	return s.reviewRepo.ListByVendor(vendorID)
}

func (s *reviewService) VendorAverageRating(vendorID uint) (float64, error) {
	if s.cache != nil {
		if rating, err := s.cache.GetVendorRating(vendorID); err == nil {
			return rating, nil
		}
	}

	avg, count, err := s.reviewRepo.AverageForVendor(vendorID)
	if err != nil {
		return 0, err
	}
	if s.cache != nil && count > 0 {
		if err := s.cache.SetVendorRating(vendorID, avg, s.cacheTTL); err != nil {
			log.WithError(err).Warn("Failed to cache vendor rating")
		}
	}
	return avg, nil
}
