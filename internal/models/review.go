package models

import (
	"time"
)

// Review is the one-shot rating a customer leaves on a completed order.
// VendorID is captured at write time from the order's assignment so later
// changes to the order can never alter a historical review.
type Review struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	OrderID    uint      `json:"order_id" gorm:"unique;not null"`
	CustomerID uint      `json:"customer_id" gorm:"not null;index"`
	VendorID   uint      `json:"vendor_id" gorm:"not null;index"`
	Rating     int       `json:"rating" gorm:"not null"`
	Comment    string    `json:"comment" gorm:"type:text"`
	CreatedAt  time.Time `json:"created_at"`
}
