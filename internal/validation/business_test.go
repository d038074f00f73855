package validation

import (
	"testing"

	"regulariza/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestRegistration(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		userName string
		valid    bool
	}{
		{"valid", "ana@example.com", "Segura123!", "Ana Souza", true},
		{"bad email", "not-an-email", "Segura123!", "Ana", false},
		{"weak password", "ana@example.com", "abc", "Ana", false},
		{"missing name", "ana@example.com", "Segura123!", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New()
			v.Registration(tt.email, tt.password, tt.userName)
			assert.Equal(t, tt.valid, v.Valid(), "errors: %v", v.Errors)
		})
	}
}

func TestProfile_ProfessionalNeedsCredential(t *testing.T) {
	v := New()
	v.Profile(&models.UserProfile{
		UserID:      1,
		FullName:    "Dra. Carla Lima",
		ProfileType: models.ProfileTypeAdvogado,
	})
	assert.False(t, v.Valid())
	assert.Contains(t, v.Errors, "professional_id")

	v = New()
	v.Profile(&models.UserProfile{
		UserID:         1,
		FullName:       "Dra. Carla Lima",
		ProfileType:    models.ProfileTypeAdvogado,
		ProfessionalID: "OAB/SP 123456",
	})
	assert.True(t, v.Valid(), "errors: %v", v.Errors)
}

func TestProfile_UnknownType(t *testing.T) {
	v := New()
	v.Profile(&models.UserProfile{UserID: 1, FullName: "X", ProfileType: "arquiteto"})
	assert.Contains(t, v.Errors, "profile_type")
}

func TestPayment(t *testing.T) {
	v := New()
	v.Payment(1, "service", 100)
	assert.True(t, v.Valid())

	v = New()
	v.Payment(0, "", -1)
	assert.False(t, v.Valid())
}

func TestDocument(t *testing.T) {
	v := New()
	v.Document("matricula.pdf", "matricula", 1024)
	assert.True(t, v.Valid())

	v = New()
	v.Document("", "matricula", MaxUploadSizeBytes+1)
	assert.Contains(t, v.Errors, "name")
	assert.Contains(t, v.Errors, "file")
}
