package handlers

import (
	"net/http"

	"github.com/mercy-gachoki10/smartprintpro1/internal/services"

	"github.com/gin-gonic/gin"
)

type QuoteHandler struct {
	quoteService services.QuoteService
}

func NewQuoteHandler(quoteService services.QuoteService) *QuoteHandler {
	return &QuoteHandler{quoteService: quoteService}
}

func (h *QuoteHandler) SubmitQuote(c *gin.Context) {
	orderID, ok := pathID(c, "order_id")
	if !ok {
		return
	}
	var req struct {
		BaseFee       float64 `json:"base_fee"`
		Message       string  `json:"message"`
		ItemOverrides []struct {
			OrderItemID uint    `json:"order_item_id" binding:"required"`
			UnitPrice   float64 `json:"unit_price"`
			Note        string  `json:"note"`
		} `json:"item_overrides"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	input := services.SubmitQuoteInput{
		BaseFee: req.BaseFee,
		Message: req.Message,
	}
	if len(req.ItemOverrides) > 0 {
		input.ItemOverrides = make(map[uint]services.QuoteItemOverride, len(req.ItemOverrides))
		for _, o := range req.ItemOverrides {
			input.ItemOverrides[o.OrderItemID] = services.QuoteItemOverride{
				UnitPrice: o.UnitPrice,
				Note:      o.Note,
			}
		}
	}

	quote, err := h.quoteService.SubmitQuote(actorFrom(c), orderID, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, quote)
}

func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	orderID, ok := pathID(c, "order_id")
	if !ok {
		return
	}
	quotes, err := h.quoteService.ListQuotesForOrder(actorFrom(c), orderID)
	if err != nil {
		respondError(c, err)
		return
	}

	open, err := h.quoteService.QuotesOpen(orderID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"quotes": quotes, "quotes_open": open})
}

// LatestQuotes returns only each vendor's newest quote, the set a customer
// compares when choosing a winner.
func (h *QuoteHandler) LatestQuotes(c *gin.Context) {
	orderID, ok := pathID(c, "order_id")
	if !ok {
		return
	}
	quotes, err := h.quoteService.LatestQuotesPerVendor(actorFrom(c), orderID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"quotes": quotes})
}

func (h *QuoteHandler) ListMyQuotes(c *gin.Context) {
	quotes, err := h.quoteService.ListQuotesByVendor(actorFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"quotes": quotes})
}

func (h *QuoteHandler) AcceptQuote(c *gin.Context) {
	orderID, ok := pathID(c, "order_id")
	if !ok {
		return
	}
	quoteID, ok := pathID(c, "quote_id")
	if !ok {
		return
	}
	var req struct {
		Response string `json:"response"`
	}
	// Body is optional; an empty response message is fine.
	_ = c.ShouldBindJSON(&req)

	order, err := h.quoteService.AcceptQuote(actorFrom(c), orderID, quoteID, req.Response)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *QuoteHandler) RejectQuote(c *gin.Context) {
	orderID, ok := pathID(c, "order_id")
	if !ok {
		return
	}
	quoteID, ok := pathID(c, "quote_id")
	if !ok {
		return
	}
	var req struct {
		Response string `json:"response"`
	}
	_ = c.ShouldBindJSON(&req)

	quote, err := h.quoteService.RejectQuote(actorFrom(c), orderID, quoteID, req.Response)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, quote)
}
