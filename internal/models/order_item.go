package models

import (
	"time"

	"gorm.io/gorm"
)

// OrderItem is a priced line of an order. Prices are snapshotted from the
// service catalog at creation; the catalog is never re-queried afterwards.
// Items are frozen once the order has received its first quote.
type OrderItem struct {
	ID              uint    `json:"id" gorm:"primaryKey"`
	OrderID         uint    `json:"order_id" gorm:"not null;index"`
	ServiceCategory string  `json:"service_category" gorm:"not null"`
	ServiceType     string  `json:"service_type" gorm:"not null"`
	Quantity        int     `json:"quantity" gorm:"not null"`
	UnitPrice       float64 `json:"unit_price" gorm:"not null"`
	TotalPrice      float64 `json:"total_price" gorm:"not null"`
	Specifications  string  `json:"specifications" gorm:"type:text"`

	// File metadata is owned by the upload collaborator; only the reference
	// is carried here.
	FileName string `json:"file_name"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}
