package services

import (
	"errors"
	"testing"

	"github.com/mercy-gachoki10/smartprintpro1/internal/apperrors"
	"github.com/mercy-gachoki10/smartprintpro1/internal/models"
)

func TestSubmitReview(t *testing.T) {
	env := newTestEnv(t)
	order := env.completedOrder(t)

	review, err := env.reviews.SubmitReview(env.customer, order.ID, 4, "solid work")
	if err != nil {
		t.Fatalf("SubmitReview: %v", err)
	}
	if review.Rating != 4 {
		t.Errorf("rating = %d, want 4", review.Rating)
	}
	// Vendor reference is captured from the order, not the request.
	if review.VendorID != env.vendorA.ID {
		t.Errorf("vendor = %d, want %d", review.VendorID, env.vendorA.ID)
	}

	got, err := env.reviews.GetReviewForOrder(order.ID)
	if err != nil {
		t.Fatalf("GetReviewForOrder: %v", err)
	}
	if got.ID != review.ID {
		t.Errorf("fetched review %d, want %d", got.ID, review.ID)
	}
}

func TestSubmitReviewRatingBounds(t *testing.T) {
	env := newTestEnv(t)
	order := env.completedOrder(t)

	for _, rating := range []int{0, 6, -1} {
		if _, err := env.reviews.SubmitReview(env.customer, order.ID, rating, ""); !errors.Is(err, apperrors.ErrValidation) {
			t.Errorf("rating %d: got %v, want validation error", rating, err)
		}
	}

	// Nothing was written by the failed attempts.
	if _, err := env.reviews.GetReviewForOrder(order.ID); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected no review after rejected ratings, got %v", err)
	}
}

func TestSubmitReviewRequiresCompletedOrder(t *testing.T) {
	env := newTestEnv(t)
	order := env.acceptedOrder(t)

	if _, err := env.reviews.SubmitReview(env.customer, order.ID, 5, ""); !errors.Is(err, apperrors.ErrInvalidTransition) {
		t.Fatalf("review on in_progress order: got %v, want invalid transition", err)
	}
}

func TestSubmitReviewOncePerOrder(t *testing.T) {
	env := newTestEnv(t)
	order := env.completedOrder(t)

	if _, err := env.reviews.SubmitReview(env.customer, order.ID, 5, ""); err != nil {
		t.Fatalf("first review: %v", err)
	}
	if _, err := env.reviews.SubmitReview(env.customer, order.ID, 1, "changed my mind"); !errors.Is(err, apperrors.ErrAlreadyResolved) {
		t.Fatalf("second review: got %v, want already resolved", err)
	}
}

func TestSubmitReviewCustomerOnly(t *testing.T) {
	env := newTestEnv(t)
	order := env.completedOrder(t)

	if _, err := env.reviews.SubmitReview(env.vendorA, order.ID, 5, ""); !errors.Is(err, apperrors.ErrAccessDenied) {
		t.Errorf("vendor reviewing: got %v, want access denied", err)
	}

	other := &models.Customer{FullName: "Other", Email: "other@test.local"}
	if err := env.users.RegisterCustomer(other, "secret123"); err != nil {
		t.Fatalf("register: %v", err)
	}
	stranger := models.Actor{ID: other.ID, Role: models.RoleCustomer}
	if _, err := env.reviews.SubmitReview(stranger, order.ID, 5, ""); !errors.Is(err, apperrors.ErrAccessDenied) {
		t.Errorf("foreign customer reviewing: got %v, want access denied", err)
	}
}

func TestVendorAverageRating(t *testing.T) {
	env := newTestEnv(t)

	// No reviews yet.
	avg, err := env.reviews.VendorAverageRating(env.vendorA.ID)
	if err != nil {
		t.Fatalf("VendorAverageRating: %v", err)
	}
	if avg != 0 {
		t.Errorf("average with no reviews = %v, want 0", avg)
	}

	first := env.completedOrder(t)
	second := env.completedOrder(t)
	if _, err := env.reviews.SubmitReview(env.customer, first.ID, 5, ""); err != nil {
		t.Fatalf("review: %v", err)
	}
	if _, err := env.reviews.SubmitReview(env.customer, second.ID, 2, ""); err != nil {
		t.Fatalf("review: %v", err)
	}

	avg, err = env.reviews.VendorAverageRating(env.vendorA.ID)
	if err != nil {
		t.Fatalf("VendorAverageRating: %v", err)
	}
	if avg != 3.5 {
		t.Errorf("average = %v, want 3.5", avg)
	}

	reviews, err := env.reviews.ListVendorReviews(env.vendorA.ID)
	if err != nil {
		t.Fatalf("ListVendorReviews: %v", err)
	}
	if len(reviews) != 2 {
		t.Errorf("reviews = %d, want 2", len(reviews))
	}
}
