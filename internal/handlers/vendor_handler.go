package handlers

import (
	"net/http"

	"github.com/mercy-gachoki10/smartprintpro1/internal/matching"
	"github.com/mercy-gachoki10/smartprintpro1/internal/models"
	"github.com/mercy-gachoki10/smartprintpro1/internal/repository"
	"github.com/mercy-gachoki10/smartprintpro1/internal/services"

	"github.com/gin-gonic/gin"
)

type VendorHandler struct {
	userService services.UserService
	priceRepo   repository.ServicePriceRepository
}

func NewVendorHandler(userService services.UserService, priceRepo repository.ServicePriceRepository) *VendorHandler {
	return &VendorHandler{userService: userService, priceRepo: priceRepo}
}

func (h *VendorHandler) RegisterCustomer(c *gin.Context) {
	var req struct {
		FullName     string `json:"full_name" binding:"required"`
		Email        string `json:"email" binding:"required,email"`
		Phone        string `json:"phone"`
		Organization string `json:"organization"`
		Password     string `json:"password" binding:"required,min=8"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	customer := &models.Customer{
		FullName:     req.FullName,
		Email:        req.Email,
		Phone:        req.Phone,
		Organization: req.Organization,
	}
	if err := h.userService.RegisterCustomer(customer, req.Password); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, customer)
}

func (h *VendorHandler) RegisterVendor(c *gin.Context) {
	var req struct {
		FullName        string `json:"full_name" binding:"required"`
		BusinessName    string `json:"business_name" binding:"required"`
		Email           string `json:"email" binding:"required,email"`
		Phone           string `json:"phone"`
		BusinessAddress string `json:"business_address"`
		BusinessType    string `json:"business_type"`
		Password        string `json:"password" binding:"required,min=8"`

		ServiceDocumentPrinting bool `json:"service_document_printing"`
		ServicePhotos           bool `json:"service_photos"`
		ServiceUniforms         bool `json:"service_uniforms"`
		ServiceMerchandise      bool `json:"service_merchandise"`
		ServiceLargeFormat      bool `json:"service_large_format"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	vendor := &models.Vendor{
		FullName:        req.FullName,
		BusinessName:    req.BusinessName,
		Email:           req.Email,
		Phone:           req.Phone,
		BusinessAddress: req.BusinessAddress,
		BusinessType:    req.BusinessType,

		ServiceDocumentPrinting: req.ServiceDocumentPrinting,
		ServicePhotos:           req.ServicePhotos,
		ServiceUniforms:         req.ServiceUniforms,
		ServiceMerchandise:      req.ServiceMerchandise,
		ServiceLargeFormat:      req.ServiceLargeFormat,
	}
	if err := h.userService.RegisterVendor(vendor, req.Password); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, vendor)
}

func (h *VendorHandler) ListVendors(c *gin.Context) {
	vendors, err := h.userService.GetAllVendors()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"vendors": vendors})
}

// GetVendor returns a vendor profile along with the catalog categories the
// vendor's capability flags unlock.
func (h *VendorHandler) GetVendor(c *gin.Context) {
	vendorID, ok := pathID(c, "vendor_id")
	if !ok {
		return
	}
	vendor, err := h.userService.GetVendor(vendorID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"vendor":     vendor,
		"categories": matching.CategoriesForVendor(vendor),
	})
}

func (h *VendorHandler) ListServicePrices(c *gin.Context) {
	category := c.Query("category")

	var (
		prices []models.ServicePrice
		err    error
	)
	if category != "" {
		prices, err = h.priceRepo.ListByCategory(category)
	} else {
		prices, err = h.priceRepo.ListActive()
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"prices": prices})
}
