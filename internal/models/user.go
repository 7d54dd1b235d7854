package models

import (
	"time"
)

// ActorRole identifies which user table an actor belongs to. Every core
// operation receives the acting user as an explicit Actor value; nothing in
// the service layer reads ambient request state.
type ActorRole string

const (
	RoleCustomer ActorRole = "customer"
	RoleVendor   ActorRole = "vendor"
	RoleAdmin    ActorRole = "admin"
)

func (r ActorRole) Valid() bool {
	switch r {
	case RoleCustomer, RoleVendor, RoleAdmin:
		return true
	}
	return false
}

// Actor is the resolved identity of the user performing an operation.
type Actor struct {
	ID   uint
	Role ActorRole
}

type Customer struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	FullName     string    `json:"full_name" gorm:"not null"`
	Email        string    `json:"email" gorm:"unique;not null"`
	Phone        string    `json:"phone"`
	Organization string    `json:"organization"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Active       bool      `json:"active" gorm:"default:true"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Vendor carries the five capability flags that drive order matching.
// A flag can map to more than one catalog category, see internal/matching.
type Vendor struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	FullName        string    `json:"full_name" gorm:"not null"`
	BusinessName    string    `json:"business_name" gorm:"not null"`
	Email           string    `json:"email" gorm:"unique;not null"`
	Phone           string    `json:"phone"`
	BusinessAddress string    `json:"business_address"`
	BusinessType    string    `json:"business_type"`
	PasswordHash    string    `json:"-" gorm:"not null"`
	Active          bool      `json:"active" gorm:"default:true"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	ServiceDocumentPrinting bool `json:"service_document_printing" gorm:"default:false"`
	ServicePhotos           bool `json:"service_photos" gorm:"default:false"`
	ServiceUniforms         bool `json:"service_uniforms" gorm:"default:false"`
	ServiceMerchandise      bool `json:"service_merchandise" gorm:"default:false"`
	ServiceLargeFormat      bool `json:"service_large_format" gorm:"default:false"`
}

type Admin struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	FullName     string    `json:"full_name" gorm:"not null"`
	Email        string    `json:"email" gorm:"unique;not null"`
	Phone        string    `json:"phone"`
	Organization string    `json:"organization"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Active       bool      `json:"active" gorm:"default:true"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
