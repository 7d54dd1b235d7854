package models

import (
	"time"
)

// OrderStatusHistory is the append-only audit trail of status changes.
// Rows are never updated or deleted; no soft-delete column on purpose.
type OrderStatusHistory struct {
	ID            uint        `json:"id" gorm:"primaryKey"`
	OrderID       uint        `json:"order_id" gorm:"not null;index"`
	OldStatus     OrderStatus `json:"old_status" gorm:"not null"`
	NewStatus     OrderStatus `json:"new_status" gorm:"not null"`
	ChangedByID   uint        `json:"changed_by_id" gorm:"not null"`
	ChangedByRole ActorRole   `json:"changed_by_role" gorm:"not null"`
	Note          string      `json:"note" gorm:"type:text"`
	CreatedAt     time.Time   `json:"created_at"`
}
