package models

import "gorm.io/gorm"

// Order types
const (
	OrderTypeCertificate = "certificate"
	OrderTypeAct         = "act"
	OrderTypeComplex     = "complex"
)

// Order statuses
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusSent       = "sent"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// Order is a certificate or notarial act request placed through the catalog.
// Data holds the user-supplied form fields for the selected subclass.
type Order struct {
	gorm.Model
	UserID      uint    `gorm:"index;not null" json:"user_id"`
	Type        string  `gorm:"not null" json:"type"`
	ClassID     string  `json:"class_id,omitempty"`
	SubclassID  string  `json:"subclass_id,omitempty"`
	Data        JSON    `gorm:"type:jsonb" json:"data"`
	Status      string  `gorm:"not null;default:'pending'" json:"status"`
	Amount      float64 `gorm:"not null" json:"amount"`
	RegistryFee float64 `json:"registry_fee"`
	PlatformFee float64 `json:"platform_fee"`
}
