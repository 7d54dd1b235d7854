package models

import (
	"time"

	"gorm.io/gorm"
)

type QuoteStatus string

const (
	QuotePending  QuoteStatus = "pending"
	QuoteAccepted QuoteStatus = "accepted"
	QuoteRejected QuoteStatus = "rejected"
)

// Quote is one vendor's offer on an order. QuoteNumber is a per-vendor
// revision counter starting at 1; resubmitting never replaces earlier rows,
// so the full revision history stays queryable. At most one quote per order
// ever reaches accepted status.
type Quote struct {
	ID          uint        `json:"id" gorm:"primaryKey"`
	OrderID     uint        `json:"order_id" gorm:"not null;index"`
	VendorID    uint        `json:"vendor_id" gorm:"not null;index"`
	QuoteNumber int         `json:"quote_number" gorm:"not null"`
	BaseFee     float64     `json:"base_fee" gorm:"not null"`
	Subtotal    float64     `json:"subtotal" gorm:"not null"`
	TotalAmount float64     `json:"total_amount" gorm:"not null"`
	Status      QuoteStatus `json:"status" gorm:"default:'pending';index"`

	VendorMessage    string     `json:"vendor_message" gorm:"type:text"`
	CustomerResponse string     `json:"customer_response" gorm:"type:text"`
	RespondedAt      *time.Time `json:"responded_at"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at" gorm:"index"`

	QuoteItems []QuoteItem `json:"quote_items,omitempty" gorm:"constraint:OnDelete:CASCADE"`
}

// QuoteItem reprices a single order item within a quote. Exists so a vendor
// can adjust individual lines rather than only the aggregate.
type QuoteItem struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	QuoteID     uint    `json:"quote_id" gorm:"not null;index"`
	OrderItemID uint    `json:"order_item_id" gorm:"not null"`
	Quantity    int     `json:"quantity" gorm:"not null"`
	UnitPrice   float64 `json:"unit_price" gorm:"not null"`
	TotalPrice  float64 `json:"total_price" gorm:"not null"`
	Note        string  `json:"note" gorm:"type:text"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
