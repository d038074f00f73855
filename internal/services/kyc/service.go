// Package kyc runs identity verification for professional profiles.
package kyc

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"regulariza/internal/models"
	"regulariza/internal/repositories"
	"regulariza/internal/services/audit"
	"regulariza/internal/services/storage"
)

var (
	ErrMissingFiles    = errors.New("document and selfie files are required")
	ErrAlreadyApproved = errors.New("kyc already approved")
	ErrInvalidDecision = errors.New("decision must be approved or rejected")
	ErrNotUnderReview  = errors.New("kyc has not been submitted")
)

// SubmitRequest carries the identity document and selfie uploads.
type SubmitRequest struct {
	UserID       uint
	DocumentName string
	Document     io.Reader
	SelfieName   string
	Selfie       io.Reader
}

// Service handles KYC submission and admin review.
type Service interface {
	Submit(ctx context.Context, req SubmitRequest) (*models.UserProfile, error)
	Review(ctx context.Context, reviewerID, userID uint, decision string) (*models.UserProfile, error)
}

type service struct {
	profiles repositories.ProfileRepository
	store    storage.Store
	recorder audit.Recorder
}

func NewService(profiles repositories.ProfileRepository, store storage.Store, recorder audit.Recorder) Service {
	return &service{profiles: profiles, store: store, recorder: recorder}
}

func (s *service) Submit(ctx context.Context, req SubmitRequest) (*models.UserProfile, error) {
	if req.Document == nil || req.Selfie == nil {
		return nil, ErrMissingFiles
	}

	profile, err := s.profiles.GetByUserID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	if profile.KYCStatus == models.KYCStatusApproved {
		return nil, ErrAlreadyApproved
	}

	docURL, err := s.store.Save(req.DocumentName, req.Document)
	if err != nil {
		return nil, fmt.Errorf("store kyc document: %w", err)
	}
	selfieURL, err := s.store.Save(req.SelfieName, req.Selfie)
	if err != nil {
		return nil, fmt.Errorf("store kyc selfie: %w", err)
	}

	profile.KYCDocumentURL = docURL
	profile.KYCSelfieURL = selfieURL
	profile.KYCStatus = models.KYCStatusSubmitted
	if err := s.profiles.Update(ctx, profile); err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}

	s.recorder.Record(ctx, audit.Entry{
		UserID:     req.UserID,
		Action:     models.AuditActionKYCSubmitted,
		EntityType: "profile",
		EntityID:   strconv.FormatUint(uint64(profile.ID), 10),
	})

	return profile, nil
}

func (s *service) Review(ctx context.Context, reviewerID, userID uint, decision string) (*models.UserProfile, error) {
	if decision != models.KYCStatusApproved && decision != models.KYCStatusRejected {
		return nil, ErrInvalidDecision
	}

	profile, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile.KYCStatus != models.KYCStatusSubmitted {
		return nil, ErrNotUnderReview
	}

	profile.KYCStatus = decision
	profile.IsVerified = decision == models.KYCStatusApproved
	if err := s.profiles.Update(ctx, profile); err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}

	s.recorder.Record(ctx, audit.Entry{
		UserID:     reviewerID,
		Action:     models.AuditActionKYCReviewed,
		EntityType: "profile",
		EntityID:   strconv.FormatUint(uint64(profile.ID), 10),
		Metadata:   models.JSON{"decision": decision, "subject_user_id": userID},
	})

	return profile, nil
}
