// Package marketplace connects users with professionals offering
// regularization services.
package marketplace

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"regulariza/internal/models"
	"regulariza/internal/repositories"
	"regulariza/internal/services/audit"
)

var (
	ErrInvalidService       = errors.New("professionalId, serviceName and price are required")
	ErrInvalidRequest       = errors.New("userId and description are required")
	ErrInvalidBudget        = errors.New("userId and serviceType are required")
	ErrInvalidRequestStatus = errors.New("status must be pending, accepted, in_progress, completed or cancelled")
)

var requestStatuses = map[string]bool{
	models.ServiceRequestStatusPending:    true,
	models.ServiceRequestStatusAccepted:   true,
	models.ServiceRequestStatusInProgress: true,
	models.ServiceRequestStatusCompleted:  true,
	models.ServiceRequestStatusCancelled:  true,
}

// CreateServiceRequest registers a professional's offering.
type CreateServiceRequest struct {
	ProfessionalID uint    `json:"professionalId"`
	ServiceName    string  `json:"serviceName"`
	Description    string  `json:"description,omitempty"`
	Price          float64 `json:"price"`
	DurationDays   int     `json:"durationDays,omitempty"`
}

// HireRequest asks a professional for a service.
type HireRequest struct {
	UserID         uint    `json:"userId"`
	ProfessionalID *uint   `json:"professionalId,omitempty"`
	ServiceID      *uint   `json:"serviceId,omitempty"`
	Description    string  `json:"description"`
	Budget         float64 `json:"budget,omitempty"`
}

// BudgetRequest records a quote request, usually from the assistant's
// budget detection.
type BudgetRequest struct {
	UserID           uint   `json:"userId"`
	ServiceType      string `json:"serviceType"`
	Description      string `json:"description,omitempty"`
	ProfessionalType string `json:"professionalType,omitempty"`
}

// Service is the marketplace API surface.
type Service interface {
	CreateService(ctx context.Context, req CreateServiceRequest) (*models.ProfessionalService, error)
	ListServices(ctx context.Context) ([]models.ProfessionalService, error)
	ListServicesByProfessional(ctx context.Context, professionalID uint) ([]models.ProfessionalService, error)
	DeactivateService(ctx context.Context, serviceID, professionalID uint) error

	Hire(ctx context.Context, req HireRequest) (*models.ServiceRequest, error)
	ListRequests(ctx context.Context, userID uint) ([]models.ServiceRequest, error)
	UpdateRequestStatus(ctx context.Context, requestID, professionalID uint, status string) error

	RequestBudget(ctx context.Context, req BudgetRequest) (*models.Budget, error)
	ListBudgets(ctx context.Context, userID uint) ([]models.Budget, error)
}

type service struct {
	repo     repositories.MarketplaceRepository
	recorder audit.Recorder
}

func NewService(repo repositories.MarketplaceRepository, recorder audit.Recorder) Service {
	return &service{repo: repo, recorder: recorder}
}

func (s *service) CreateService(ctx context.Context, req CreateServiceRequest) (*models.ProfessionalService, error) {
	if req.ProfessionalID == 0 || req.ServiceName == "" || req.Price <= 0 {
		return nil, ErrInvalidService
	}

	svc := &models.ProfessionalService{
		ProfessionalID: req.ProfessionalID,
		ServiceName:    req.ServiceName,
		Description:    req.Description,
		Price:          req.Price,
		DurationDays:   req.DurationDays,
		IsActive:       true,
	}
	if err := s.repo.CreateService(ctx, svc); err != nil {
		return nil, fmt.Errorf("create service: %w", err)
	}
	return svc, nil
}

func (s *service) ListServices(ctx context.Context) ([]models.ProfessionalService, error) {
	return s.repo.ListActiveServices(ctx)
}

func (s *service) ListServicesByProfessional(ctx context.Context, professionalID uint) ([]models.ProfessionalService, error) {
	return s.repo.ListServicesByProfessional(ctx, professionalID)
}

func (s *service) DeactivateService(ctx context.Context, serviceID, professionalID uint) error {
	svc, err := s.repo.GetService(ctx, serviceID)
	if err != nil {
		return err
	}
	if svc.ProfessionalID != professionalID {
		return repositories.ErrServiceNotFound
	}
	svc.IsActive = false
	return s.repo.UpdateService(ctx, svc)
}

func (s *service) Hire(ctx context.Context, req HireRequest) (*models.ServiceRequest, error) {
	if req.UserID == 0 || req.Description == "" {
		return nil, ErrInvalidRequest
	}

	request := &models.ServiceRequest{
		UserID:         req.UserID,
		ProfessionalID: req.ProfessionalID,
		ServiceID:      req.ServiceID,
		Status:         models.ServiceRequestStatusPending,
		Description:    req.Description,
		Budget:         req.Budget,
	}
	if err := s.repo.CreateRequest(ctx, request); err != nil {
		return nil, fmt.Errorf("create service request: %w", err)
	}

	s.recorder.Record(ctx, audit.Entry{
		UserID:     req.UserID,
		Action:     models.AuditActionServiceRequested,
		EntityType: "service_request",
		EntityID:   strconv.FormatUint(uint64(request.ID), 10),
		Metadata:   models.JSON{"description": req.Description},
	})

	return request, nil
}

func (s *service) ListRequests(ctx context.Context, userID uint) ([]models.ServiceRequest, error) {
	return s.repo.ListRequestsByUser(ctx, userID)
}

// UpdateRequestStatus moves a request through its lifecycle. Only the
// professional the request is assigned to may change it.
func (s *service) UpdateRequestStatus(ctx context.Context, requestID, professionalID uint, status string) error {
	if !requestStatuses[status] {
		return ErrInvalidRequestStatus
	}

	req, err := s.repo.GetRequest(ctx, requestID)
	if err != nil {
		return err
	}
	if req.ProfessionalID == nil || *req.ProfessionalID != professionalID {
		return repositories.ErrServiceRequestNotFound
	}

	if err := s.repo.UpdateRequestStatus(ctx, requestID, status); err != nil {
		return fmt.Errorf("update request status: %w", err)
	}

	s.recorder.Record(ctx, audit.Entry{
		UserID:     req.UserID,
		Action:     models.AuditActionRequestUpdated,
		EntityType: "service_request",
		EntityID:   strconv.FormatUint(uint64(requestID), 10),
		Metadata:   models.JSON{"status": status},
	})
	return nil
}

func (s *service) RequestBudget(ctx context.Context, req BudgetRequest) (*models.Budget, error) {
	if req.UserID == 0 || req.ServiceType == "" {
		return nil, ErrInvalidBudget
	}

	budget := &models.Budget{
		UserID:           req.UserID,
		ServiceType:      req.ServiceType,
		Description:      req.Description,
		ProfessionalType: req.ProfessionalType,
		Status:           models.BudgetStatusPending,
	}
	if err := s.repo.CreateBudget(ctx, budget); err != nil {
		return nil, fmt.Errorf("create budget: %w", err)
	}

	s.recorder.Record(ctx, audit.Entry{
		UserID:     req.UserID,
		Action:     models.AuditActionBudgetRequested,
		EntityType: "budget",
		EntityID:   strconv.FormatUint(uint64(budget.ID), 10),
		Metadata:   models.JSON{"service_type": req.ServiceType},
	})

	return budget, nil
}

func (s *service) ListBudgets(ctx context.Context, userID uint) ([]models.Budget, error) {
	return s.repo.ListBudgetsByUser(ctx, userID)
}
