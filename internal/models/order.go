package models

import (
	"time"

	"gorm.io/gorm"
)

type OrderStatus string

const (
	// Bidding phase.
	OrderPending        OrderStatus = "pending"
	OrderAwaitingQuotes OrderStatus = "awaiting_quotes"
	// OrderQuoted is a deprecated alias of awaiting_quotes. It is still part
	// of the bidding-phase set so existing rows stay valid, but no new write
	// produces it: the first quote from any vendor moves the order straight
	// to awaiting_quotes and it stays there until a quote is accepted.
	OrderQuoted OrderStatus = "quoted"

	// Fulfillment pipeline, entered via quote acceptance only.
	OrderInProgress        OrderStatus = "in_progress"
	OrderConfirmedReceived OrderStatus = "confirmed_received"
	OrderProcessing        OrderStatus = "processing"
	OrderFinished          OrderStatus = "finished"
	OrderQualityCheck      OrderStatus = "quality_check"
	OrderReadyDispatch     OrderStatus = "ready_dispatch"
	OrderDispatched        OrderStatus = "dispatched"
	OrderAwaitingPayment   OrderStatus = "awaiting_payment"
	OrderCompleted         OrderStatus = "completed"
)

// fulfillmentTransitions is the vendor-driven transition table. The
// bidding-phase edges and the accept edge ({pending,awaiting_quotes,quoted}
// -> in_progress) are driven by the quote engine, never through this table.
var fulfillmentTransitions = map[OrderStatus][]OrderStatus{
	OrderInProgress:        {OrderConfirmedReceived},
	OrderConfirmedReceived: {OrderProcessing},
	OrderProcessing:        {OrderFinished},
	OrderFinished:          {OrderQualityCheck},
	OrderQualityCheck:      {OrderReadyDispatch},
	OrderReadyDispatch:     {OrderDispatched},
	OrderDispatched:        {OrderAwaitingPayment, OrderCompleted},
	OrderAwaitingPayment:   {OrderCompleted},
}

// CanTransition reports whether the vendor-driven fulfillment table allows
// moving from one status to another.
func CanTransition(from, to OrderStatus) bool {
	for _, next := range fulfillmentTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// InBiddingPhase reports whether quotes may still be attached to an order in
// this status (deadline and assignment checks are separate, see QuotesOpen).
func (s OrderStatus) InBiddingPhase() bool {
	switch s {
	case OrderPending, OrderAwaitingQuotes, OrderQuoted:
		return true
	}
	return false
}

type Order struct {
	ID              uint        `json:"id" gorm:"primaryKey"`
	OrderNumber     string      `json:"order_number" gorm:"unique;not null"`
	CustomerID      uint        `json:"customer_id" gorm:"not null;index"`
	VendorID        *uint       `json:"vendor_id" gorm:"index"`
	SelectedQuoteID *uint       `json:"selected_quote_id"`
	ServiceCategory string      `json:"service_category" gorm:"not null;index"`
	Status          OrderStatus `json:"status" gorm:"default:'pending';index"`

	BaseFee     float64 `json:"base_fee" gorm:"not null"`
	Subtotal    float64 `json:"subtotal"`
	TotalAmount float64 `json:"total_amount" gorm:"not null"`

	QuoteDeadline      *time.Time `json:"quote_deadline"`
	QuoteDurationHours int        `json:"quote_duration_hours"`
	CustomerNotes      string     `json:"customer_notes" gorm:"type:text"`

	// Payment tracking, recorded but not acted on by this service.
	PaymentStatus    string `json:"payment_status"`
	PaymentReference string `json:"payment_reference"`

	AssignedAt   *time.Time `json:"assigned_at"`
	ReadyAt      *time.Time `json:"ready_at"`
	DispatchedAt *time.Time `json:"dispatched_at"`
	CompletedAt  *time.Time `json:"completed_at"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at" gorm:"index"`

	OrderItems    []OrderItem          `json:"order_items,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	Quotes        []Quote              `json:"quotes,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	StatusHistory []OrderStatusHistory `json:"status_history,omitempty" gorm:"constraint:OnDelete:CASCADE"`
}

// CalculateTotal recomputes the pricing invariant total = base_fee + subtotal
// from the loaded items. Must be called after every item mutation.
func (o *Order) CalculateTotal() {
	var subtotal float64
	for _, item := range o.OrderItems {
		subtotal += item.TotalPrice
	}
	o.Subtotal = subtotal
	o.TotalAmount = o.BaseFee + subtotal
}

// QuotesOpen reports whether new quotes may be submitted against the order.
// Closed once a vendor is assigned, the deadline has passed, or the status
// has left the bidding phase. Expiry is evaluated lazily; nothing fires at
// the deadline itself.
func (o *Order) QuotesOpen(now time.Time) bool {
	if o.VendorID != nil {
		return false
	}
	if !o.Status.InBiddingPhase() {
		return false
	}
	if o.QuoteDeadline != nil && now.After(*o.QuoteDeadline) {
		return false
	}
	return true
}
