// Package profile manages user profiles and professional credentials.
package profile

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"regulariza/internal/models"
	"regulariza/internal/repositories"
	"regulariza/internal/services/audit"
	"regulariza/internal/validation"
)

// ValidationError carries per-field validation failures.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %v", e.Fields)
}

// UpsertRequest creates or updates the caller's profile.
type UpsertRequest struct {
	UserID         uint   `json:"userId"`
	ProfileType    string `json:"profileType"`
	FullName       string `json:"fullName"`
	Phone          string `json:"phone,omitempty"`
	Document       string `json:"document,omitempty"`
	ProfessionalID string `json:"professionalId,omitempty"`
	Bio            string `json:"bio,omitempty"`
	AvatarURL      string `json:"avatarUrl,omitempty"`
}

// Service manages profiles.
type Service interface {
	Upsert(ctx context.Context, req UpsertRequest) (*models.UserProfile, error)
	Get(ctx context.Context, userID uint) (*models.UserProfile, error)
	List(ctx context.Context, filter repositories.ProfileFilter) ([]models.UserProfile, error)
	ListPaginated(ctx context.Context, limit, offset int) ([]models.UserProfile, int64, error)
}

type service struct {
	profiles repositories.ProfileRepository
	recorder audit.Recorder
}

func NewService(profiles repositories.ProfileRepository, recorder audit.Recorder) Service {
	return &service{profiles: profiles, recorder: recorder}
}

// Upsert creates the profile on first call and updates it afterwards.
// Verification state is owned by the KYC flow and never touched here.
func (s *service) Upsert(ctx context.Context, req UpsertRequest) (*models.UserProfile, error) {
	if req.ProfileType == "" {
		req.ProfileType = models.ProfileTypeComum
	}

	candidate := &models.UserProfile{
		UserID:         req.UserID,
		ProfileType:    req.ProfileType,
		FullName:       req.FullName,
		Phone:          req.Phone,
		Document:       req.Document,
		ProfessionalID: req.ProfessionalID,
		Bio:            req.Bio,
		AvatarURL:      req.AvatarURL,
	}

	v := validation.New()
	v.Profile(candidate)
	if !v.Valid() {
		return nil, &ValidationError{Fields: v.Errors}
	}

	existing, err := s.profiles.GetByUserID(ctx, req.UserID)
	switch {
	case err == nil:
		existing.ProfileType = req.ProfileType
		existing.FullName = req.FullName
		existing.Phone = req.Phone
		existing.Document = req.Document
		existing.ProfessionalID = req.ProfessionalID
		existing.Bio = req.Bio
		existing.AvatarURL = req.AvatarURL
		if err := s.profiles.Update(ctx, existing); err != nil {
			return nil, fmt.Errorf("update profile: %w", err)
		}
		s.record(ctx, req.UserID, models.AuditActionProfileUpdated, existing.ID)
		return existing, nil

	case errors.Is(err, repositories.ErrProfileNotFound):
		if err := s.profiles.Create(ctx, candidate); err != nil {
			return nil, fmt.Errorf("create profile: %w", err)
		}
		s.record(ctx, req.UserID, models.AuditActionProfileCreated, candidate.ID)
		return candidate, nil

	default:
		return nil, err
	}
}

func (s *service) record(ctx context.Context, userID uint, action string, profileID uint) {
	s.recorder.Record(ctx, audit.Entry{
		UserID:     userID,
		Action:     action,
		EntityType: "profile",
		EntityID:   strconv.FormatUint(uint64(profileID), 10),
	})
}

func (s *service) Get(ctx context.Context, userID uint) (*models.UserProfile, error) {
	return s.profiles.GetByUserID(ctx, userID)
}

func (s *service) List(ctx context.Context, filter repositories.ProfileFilter) ([]models.UserProfile, error) {
	return s.profiles.List(ctx, filter)
}

func (s *service) ListPaginated(ctx context.Context, limit, offset int) ([]models.UserProfile, int64, error) {
	return s.profiles.ListPaginated(ctx, limit, offset)
}
