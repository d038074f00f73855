package models

import "gorm.io/gorm"

// Document statuses
const (
	DocumentStatusPending   = "pending"
	DocumentStatusAnalyzing = "analyzing"
	DocumentStatusAnalyzed  = "analyzed"
	DocumentStatusError     = "error"
)

// Document is an uploaded file awaiting or holding an AI analysis.
type Document struct {
	gorm.Model
	UserID         uint   `gorm:"index;not null" json:"user_id"`
	PropertyID     *uint  `json:"property_id,omitempty"`
	Name           string `gorm:"not null" json:"name"`
	Type           string `gorm:"not null" json:"type"`
	FileURL        string `gorm:"not null" json:"file_url"`
	FileSize       int64  `json:"file_size"`
	MimeType       string `json:"mime_type"`
	Status         string `gorm:"not null;default:'pending'" json:"status"`
	AnalysisResult JSON   `gorm:"type:jsonb" json:"analysis_result,omitempty"`
}

// AnalysisReport is derived from a completed document analysis.
type AnalysisReport struct {
	gorm.Model
	UserID                uint       `gorm:"index;not null" json:"user_id"`
	DocumentID            uint       `gorm:"index;not null" json:"document_id"`
	AnalysisType          string     `json:"analysis_type"`
	Result                JSON       `gorm:"type:jsonb" json:"result"`
	Recommendations       StringList `gorm:"type:jsonb" json:"recommendations"`
	RequiredProfessionals StringList `gorm:"type:jsonb" json:"required_professionals"`
	MissingDocuments      StringList `gorm:"type:jsonb" json:"missing_documents"`
	EstimatedCost         float64    `json:"estimated_cost"`
}
