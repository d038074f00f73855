package models

import "gorm.io/gorm"

// Audit actions written by the services after each mutation.
const (
	AuditActionDocumentUpload   = "document_upload"
	AuditActionDocumentAnalysis = "document_analysis"
	AuditActionPaymentInitiated = "payment_initiated"
	AuditActionPaymentUpdated   = "payment_updated"
	AuditActionProfileCreated   = "profile_created"
	AuditActionProfileUpdated   = "profile_updated"
	AuditActionOrderCreated     = "order_created"
	AuditActionOrderUpdated     = "order_updated"
	AuditActionKYCSubmitted     = "kyc_submitted"
	AuditActionKYCReviewed      = "kyc_reviewed"
	AuditActionServiceRequested = "service_requested"
	AuditActionRequestUpdated   = "service_request_updated"
	AuditActionBudgetRequested  = "budget_requested"
)

// AuditLog is a best-effort row recorded after every mutation.
type AuditLog struct {
	gorm.Model
	UserID     uint   `gorm:"index" json:"user_id,omitempty"`
	Action     string `gorm:"not null" json:"action"`
	EntityType string `gorm:"not null" json:"entity_type"`
	EntityID   string `json:"entity_id,omitempty"`
	Metadata   JSON   `gorm:"type:jsonb" json:"metadata,omitempty"`
	IPAddress  string `json:"ip_address,omitempty"`
	UserAgent  string `json:"user_agent,omitempty"`
}
