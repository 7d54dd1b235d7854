package handlers

import (
	"net/http"

	"github.com/mercy-gachoki10/smartprintpro1/internal/models"
	"github.com/mercy-gachoki10/smartprintpro1/internal/services"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orderService services.OrderService
}

func NewOrderHandler(orderService services.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

type orderItemRequest struct {
	ServicePriceID uint    `json:"service_price_id" binding:"required"`
	Quantity       int     `json:"quantity" binding:"required"`
	UnitPrice      float64 `json:"unit_price"`
	Specifications string  `json:"specifications"`
	FileName       string  `json:"file_name"`
}

func (r orderItemRequest) toInput() services.OrderItemInput {
	return services.OrderItemInput{
		ServicePriceID: r.ServicePriceID,
		Quantity:       r.Quantity,
		UnitPrice:      r.UnitPrice,
		Specifications: r.Specifications,
		FileName:       r.FileName,
	}
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req struct {
		Items              []orderItemRequest `json:"items" binding:"required"`
		QuoteDurationHours int                `json:"quote_duration_hours"`
		CustomerNotes      string             `json:"customer_notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	input := services.CreateOrderInput{
		QuoteDurationHours: req.QuoteDurationHours,
		CustomerNotes:      req.CustomerNotes,
	}
	for _, item := range req.Items {
		input.Items = append(input.Items, item.toInput())
	}

	order, err := h.orderService.CreateOrder(actorFrom(c), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	orderID, ok := pathID(c, "order_id")
	if !ok {
		return
	}
	order, err := h.orderService.GetOrderForActor(actorFrom(c), orderID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) ListMyOrders(c *gin.Context) {
	orders, err := h.orderService.ListOrdersForCustomer(actorFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// ListOpenOrders returns open orders a vendor can quote on, filtered by the
// vendor's enabled service capabilities.
func (h *OrderHandler) ListOpenOrders(c *gin.Context) {
	orders, err := h.orderService.ListOpenOrdersForVendor(actorFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

func (h *OrderHandler) ListAssignedOrders(c *gin.Context) {
	orders, err := h.orderService.ListAssignedOrdersForVendor(actorFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

func (h *OrderHandler) AddItem(c *gin.Context) {
	orderID, ok := pathID(c, "order_id")
	if !ok {
		return
	}
	var req orderItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	order, err := h.orderService.AddItemToOrder(actorFrom(c), orderID, req.toInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) AdvanceStatus(c *gin.Context) {
	orderID, ok := pathID(c, "order_id")
	if !ok {
		return
	}
	var req struct {
		Status string `json:"status" binding:"required"`
		Notes  string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	order, err := h.orderService.AdvanceStatus(actorFrom(c), orderID, models.OrderStatus(req.Status), req.Notes)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) ConfirmReceipt(c *gin.Context) {
	orderID, ok := pathID(c, "order_id")
	if !ok {
		return
	}
	order, err := h.orderService.ConfirmReceipt(actorFrom(c), orderID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) StatusHistory(c *gin.Context) {
	orderID, ok := pathID(c, "order_id")
	if !ok {
		return
	}
	history, err := h.orderService.StatusHistory(actorFrom(c), orderID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"history": history})
}
