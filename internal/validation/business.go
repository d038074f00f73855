package validation

import (
	"regulariza/internal/models"
)

// Registration validates a signup request
func (v *Validator) Registration(email, password, name string) {
	v.Required("email", email)
	v.Email("email", email)
	v.Required("name", name)
	v.MaxLength("name", name, MaxNameLength)
	v.Password("password", password)
}

// Profile validates a profile create/update request
func (v *Validator) Profile(profile *models.UserProfile) {
	v.Required("user_id", profile.UserID)
	v.Required("full_name", profile.FullName)
	v.MaxLength("full_name", profile.FullName, MaxNameLength)
	v.Check(models.ValidProfileType(profile.ProfileType), "profile_type",
		"must be comum, advogado, corretor or engenheiro")
	if profile.Phone != "" {
		v.Phone("phone", profile.Phone)
	}
	if profile.ProfileType != models.ProfileTypeComum {
		v.Required("professional_id", profile.ProfessionalID)
	}
	v.MaxLength("bio", profile.Bio, MaxDescriptionLength)
}

// Payment validates a payment creation request
func (v *Validator) Payment(userID uint, paymentType string, amount float64) {
	v.Required("user_id", userID)
	v.Required("type", paymentType)
	v.Range("amount", amount, MinPaymentAmount, MaxPaymentAmount)
}

// Document validates a document upload request
func (v *Validator) Document(name, docType string, size int64) {
	v.Required("name", name)
	v.Required("type", docType)
	v.Check(size > 0 && size <= MaxUploadSizeBytes, "file", "must be between 1 byte and 10MB")
}
