package models

import "time"

// Transaction types
const (
	TransactionTypeAnalysis     = "analysis"
	TransactionTypeService      = "service"
	TransactionTypeConsultation = "consultation"
	TransactionTypeCertificate  = "certificate"
	TransactionTypeAct          = "act"
)

// Transaction statuses
const (
	TransactionStatusPending    = "pending"
	TransactionStatusProcessing = "processing"
	TransactionStatusCompleted  = "completed"
	TransactionStatusFailed     = "failed"
	TransactionStatusRefunded   = "refunded"
)

// Transaction records a payment initiated on the platform. The platform fee
// is a fixed percentage of the amount, charged on top of the service price.
type Transaction struct {
	ID             uint       `gorm:"primarykey" json:"id"`
	UserID         uint       `gorm:"index;not null" json:"user_id"`
	ProfessionalID *uint      `json:"professional_id,omitempty"`
	Type           string     `gorm:"not null" json:"type"`
	Amount         float64    `gorm:"not null" json:"amount"`
	PlatformFee    float64    `gorm:"not null" json:"platform_fee"`
	Status         string     `gorm:"not null;default:'pending'" json:"status"`
	PaymentID      string     `json:"payment_id,omitempty"`
	PaymentMethod  string     `json:"payment_method,omitempty"`
	Reference      string     `gorm:"uniqueIndex" json:"reference"` // external reference ID
	Metadata       JSON       `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
}
