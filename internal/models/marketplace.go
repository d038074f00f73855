package models

import "gorm.io/gorm"

// Service request statuses
const (
	ServiceRequestStatusPending    = "pending"
	ServiceRequestStatusAccepted   = "accepted"
	ServiceRequestStatusInProgress = "in_progress"
	ServiceRequestStatusCompleted  = "completed"
	ServiceRequestStatusCancelled  = "cancelled"
)

// Budget statuses
const (
	BudgetStatusPending   = "pending"
	BudgetStatusApproved  = "approved"
	BudgetStatusRejected  = "rejected"
	BudgetStatusCompleted = "completed"
)

// ProfessionalService is a service a professional offers on the marketplace.
type ProfessionalService struct {
	gorm.Model
	ProfessionalID uint    `gorm:"index;not null" json:"professional_id"`
	ServiceName    string  `gorm:"not null" json:"service_name"`
	Description    string  `json:"description,omitempty"`
	Price          float64 `gorm:"not null" json:"price"`
	DurationDays   int     `json:"duration_days,omitempty"`
	IsActive       bool    `gorm:"default:true" json:"is_active"`
}

// ServiceRequest is a user's request to hire a professional service.
type ServiceRequest struct {
	gorm.Model
	UserID         uint    `gorm:"index;not null" json:"user_id"`
	ProfessionalID *uint   `json:"professional_id,omitempty"`
	ServiceID      *uint   `json:"service_id,omitempty"`
	Status         string  `gorm:"not null;default:'pending'" json:"status"`
	Description    string  `json:"description,omitempty"`
	Budget         float64 `json:"budget,omitempty"`
}

// Budget is a quote request generated from the assistant's budget detection.
type Budget struct {
	gorm.Model
	UserID           uint    `gorm:"index;not null" json:"user_id"`
	ServiceType      string  `gorm:"not null" json:"service_type"`
	Description      string  `json:"description,omitempty"`
	EstimatedPrice   float64 `json:"estimated_price,omitempty"`
	ProfessionalType string  `json:"professional_type,omitempty"`
	Status           string  `gorm:"not null;default:'pending'" json:"status"`
}
