package models

import (
	"time"
)

// ServicePrice is a priced catalog entry. Consumed read-only by order
// creation for price defaults; pricing CRUD lives outside this service.
type ServicePrice struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Category     string    `json:"category" gorm:"not null;index"`
	ServiceName  string    `json:"service_name" gorm:"not null"`
	Description  string    `json:"description"`
	UnitPriceMin float64   `json:"unit_price_min" gorm:"not null"`
	UnitPriceMax float64   `json:"unit_price_max" gorm:"not null"`
	Unit         string    `json:"unit"`
	Active       bool      `json:"active" gorm:"default:true"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// AveragePrice is the default unit price offered to customers before any
// vendor has repriced the line.
func (p *ServicePrice) AveragePrice() float64 {
	return (p.UnitPriceMin + p.UnitPriceMax) / 2
}
