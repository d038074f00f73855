package models

import "gorm.io/gorm"

// Profile types match the four personas the platform serves.
const (
	ProfileTypeComum      = "comum"
	ProfileTypeAdvogado   = "advogado"
	ProfileTypeCorretor   = "corretor"
	ProfileTypeEngenheiro = "engenheiro"
)

// KYC statuses
const (
	KYCStatusPending   = "pending"
	KYCStatusSubmitted = "submitted"
	KYCStatusApproved  = "approved"
	KYCStatusRejected  = "rejected"
)

// ProfileTypes lists every valid profile type.
var ProfileTypes = []string{
	ProfileTypeComum,
	ProfileTypeAdvogado,
	ProfileTypeCorretor,
	ProfileTypeEngenheiro,
}

// ValidProfileType reports whether t is one of the four known profile types.
func ValidProfileType(t string) bool {
	for _, p := range ProfileTypes {
		if p == t {
			return true
		}
	}
	return false
}

// UserProfile is the public-facing profile record for a user, including
// professional credentials and KYC state.
type UserProfile struct {
	gorm.Model
	UserID         uint   `gorm:"uniqueIndex;not null" json:"user_id"`
	ProfileType    string `gorm:"not null;default:'comum'" json:"profile_type"`
	FullName       string `gorm:"not null" json:"full_name"`
	Phone          string `json:"phone,omitempty"`
	Document       string `json:"document,omitempty"`        // CPF or CNPJ
	ProfessionalID string `json:"professional_id,omitempty"` // OAB, CRECI, CREA, CAU
	Bio            string `json:"bio,omitempty"`
	AvatarURL      string `json:"avatar_url,omitempty"`
	IsVerified     bool   `gorm:"default:false" json:"is_verified"`
	KYCStatus      string `gorm:"default:'pending'" json:"kyc_status"`
	KYCDocumentURL string `json:"kyc_document_url,omitempty"`
	KYCSelfieURL   string `json:"kyc_selfie_url,omitempty"`
}
