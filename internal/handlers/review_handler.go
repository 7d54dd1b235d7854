package handlers

import (
	"net/http"

	"github.com/mercy-gachoki10/smartprintpro1/internal/services"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	reviewService services.ReviewService
}

func NewReviewHandler(reviewService services.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

func (h *ReviewHandler) SubmitReview(c *gin.Context) {
	orderID, ok := pathID(c, "order_id")
	if !ok {
		return
	}
	var req struct {
		Rating  int    `json:"rating" binding:"required"`
		Comment string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	review, err := h.reviewService.SubmitReview(actorFrom(c), orderID, req.Rating, req.Comment)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, review)
}

func (h *ReviewHandler) GetOrderReview(c *gin.Context) {
	orderID, ok := pathID(c, "order_id")
	if !ok {
		return
	}
	review, err := h.reviewService.GetReviewForOrder(orderID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, review)
}

func (h *ReviewHandler) ListVendorReviews(c *gin.Context) {
	vendorID, ok := pathID(c, "vendor_id")
	if !ok {
		return
	}
	reviews, err := h.reviewService.ListVendorReviews(vendorID)
	if err != nil {
		respondError(c, err)
		return
	}

	rating, err := h.reviewService.VendorAverageRating(vendorID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"reviews":        reviews,
		"average_rating": rating,
	})
}
