package marketplace

import (
	"context"
	"testing"

	"regulariza/internal/models"
	"regulariza/internal/repositories"
	"regulariza/internal/services/audit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockMarketplaceRepo struct {
	mock.Mock
}

func (m *MockMarketplaceRepo) CreateService(ctx context.Context, svc *models.ProfessionalService) error {
	args := m.Called(ctx, svc)
	svc.ID = 1
	return args.Error(0)
}

func (m *MockMarketplaceRepo) GetService(ctx context.Context, id uint) (*models.ProfessionalService, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ProfessionalService), args.Error(1)
}

func (m *MockMarketplaceRepo) ListActiveServices(ctx context.Context) ([]models.ProfessionalService, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ProfessionalService), args.Error(1)
}

func (m *MockMarketplaceRepo) ListServicesByProfessional(ctx context.Context, professionalID uint) ([]models.ProfessionalService, error) {
	args := m.Called(ctx, professionalID)
	return nil, args.Error(1)
}

func (m *MockMarketplaceRepo) UpdateService(ctx context.Context, svc *models.ProfessionalService) error {
	args := m.Called(ctx, svc)
	return args.Error(0)
}

func (m *MockMarketplaceRepo) CreateRequest(ctx context.Context, req *models.ServiceRequest) error {
	args := m.Called(ctx, req)
	req.ID = 1
	return args.Error(0)
}

func (m *MockMarketplaceRepo) GetRequest(ctx context.Context, id uint) (*models.ServiceRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ServiceRequest), args.Error(1)
}

func (m *MockMarketplaceRepo) ListRequestsByUser(ctx context.Context, userID uint) ([]models.ServiceRequest, error) {
	args := m.Called(ctx, userID)
	return nil, args.Error(1)
}

func (m *MockMarketplaceRepo) UpdateRequestStatus(ctx context.Context, id uint, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockMarketplaceRepo) CreateBudget(ctx context.Context, budget *models.Budget) error {
	args := m.Called(ctx, budget)
	budget.ID = 1
	return args.Error(0)
}

func (m *MockMarketplaceRepo) ListBudgetsByUser(ctx context.Context, userID uint) ([]models.Budget, error) {
	args := m.Called(ctx, userID)
	return nil, args.Error(1)
}

func TestCreateService(t *testing.T) {
	repo := new(MockMarketplaceRepo)
	repo.On("CreateService", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(repo, audit.NopRecorder{})
	created, err := svc.CreateService(context.Background(), CreateServiceRequest{
		ProfessionalID: 2,
		ServiceName:    "Levantamento topográfico",
		Price:          1200,
		DurationDays:   10,
	})

	require.NoError(t, err)
	assert.True(t, created.IsActive)
	assert.Equal(t, "Levantamento topográfico", created.ServiceName)
	repo.AssertExpectations(t)
}

func TestCreateService_Validation(t *testing.T) {
	svc := NewService(new(MockMarketplaceRepo), audit.NopRecorder{})

	_, err := svc.CreateService(context.Background(), CreateServiceRequest{ServiceName: "x", Price: 10})
	assert.ErrorIs(t, err, ErrInvalidService)

	_, err = svc.CreateService(context.Background(), CreateServiceRequest{ProfessionalID: 2, Price: 10})
	assert.ErrorIs(t, err, ErrInvalidService)

	_, err = svc.CreateService(context.Background(), CreateServiceRequest{ProfessionalID: 2, ServiceName: "x"})
	assert.ErrorIs(t, err, ErrInvalidService)
}

func TestDeactivateService_RequiresOwnership(t *testing.T) {
	repo := new(MockMarketplaceRepo)
	owned := &models.ProfessionalService{ProfessionalID: 2, IsActive: true}
	owned.ID = 5
	repo.On("GetService", mock.Anything, uint(5)).Return(owned, nil)

	svc := NewService(repo, audit.NopRecorder{})
	err := svc.DeactivateService(context.Background(), 5, 99)

	assert.ErrorIs(t, err, repositories.ErrServiceNotFound)
	repo.AssertNotCalled(t, "UpdateService", mock.Anything, mock.Anything)
}

func TestDeactivateService(t *testing.T) {
	repo := new(MockMarketplaceRepo)
	owned := &models.ProfessionalService{ProfessionalID: 2, IsActive: true}
	owned.ID = 5
	repo.On("GetService", mock.Anything, uint(5)).Return(owned, nil)
	repo.On("UpdateService", mock.Anything, mock.MatchedBy(func(s *models.ProfessionalService) bool {
		return !s.IsActive
	})).Return(nil)

	svc := NewService(repo, audit.NopRecorder{})
	err := svc.DeactivateService(context.Background(), 5, 2)

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestHire(t *testing.T) {
	repo := new(MockMarketplaceRepo)
	repo.On("CreateRequest", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(repo, audit.NopRecorder{})
	req, err := svc.Hire(context.Background(), HireRequest{
		UserID:      3,
		Description: "Preciso regularizar um lote",
		Budget:      2000,
	})

	require.NoError(t, err)
	assert.Equal(t, models.ServiceRequestStatusPending, req.Status)
	repo.AssertExpectations(t)
}

func TestHire_Validation(t *testing.T) {
	svc := NewService(new(MockMarketplaceRepo), audit.NopRecorder{})

	_, err := svc.Hire(context.Background(), HireRequest{Description: "x"})
	assert.ErrorIs(t, err, ErrInvalidRequest)

	_, err = svc.Hire(context.Background(), HireRequest{UserID: 3})
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func assignedRequest(professionalID uint) *models.ServiceRequest {
	req := &models.ServiceRequest{
		UserID:         3,
		ProfessionalID: &professionalID,
		Status:         models.ServiceRequestStatusPending,
		Description:    "Preciso regularizar um lote",
	}
	req.ID = 7
	return req
}

func TestUpdateRequestStatus(t *testing.T) {
	repo := new(MockMarketplaceRepo)
	repo.On("GetRequest", mock.Anything, uint(7)).Return(assignedRequest(2), nil)
	repo.On("UpdateRequestStatus", mock.Anything, uint(7), models.ServiceRequestStatusAccepted).Return(nil)

	svc := NewService(repo, audit.NopRecorder{})
	err := svc.UpdateRequestStatus(context.Background(), 7, 2, models.ServiceRequestStatusAccepted)

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestUpdateRequestStatus_RequiresAssignedProfessional(t *testing.T) {
	repo := new(MockMarketplaceRepo)
	repo.On("GetRequest", mock.Anything, uint(7)).Return(assignedRequest(2), nil)

	svc := NewService(repo, audit.NopRecorder{})
	err := svc.UpdateRequestStatus(context.Background(), 7, 99, models.ServiceRequestStatusAccepted)

	assert.ErrorIs(t, err, repositories.ErrServiceRequestNotFound)
	repo.AssertNotCalled(t, "UpdateRequestStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateRequestStatus_UnassignedRequest(t *testing.T) {
	repo := new(MockMarketplaceRepo)
	unassigned := assignedRequest(2)
	unassigned.ProfessionalID = nil
	repo.On("GetRequest", mock.Anything, uint(7)).Return(unassigned, nil)

	svc := NewService(repo, audit.NopRecorder{})
	err := svc.UpdateRequestStatus(context.Background(), 7, 2, models.ServiceRequestStatusAccepted)

	assert.ErrorIs(t, err, repositories.ErrServiceRequestNotFound)
}

func TestUpdateRequestStatus_InvalidStatus(t *testing.T) {
	repo := new(MockMarketplaceRepo)

	svc := NewService(repo, audit.NopRecorder{})
	err := svc.UpdateRequestStatus(context.Background(), 7, 2, "shipped")

	assert.ErrorIs(t, err, ErrInvalidRequestStatus)
	repo.AssertNotCalled(t, "GetRequest", mock.Anything, mock.Anything)
}

func TestUpdateRequestStatus_NotFound(t *testing.T) {
	repo := new(MockMarketplaceRepo)
	repo.On("GetRequest", mock.Anything, uint(99)).Return(nil, repositories.ErrServiceRequestNotFound)

	svc := NewService(repo, audit.NopRecorder{})
	err := svc.UpdateRequestStatus(context.Background(), 99, 2, models.ServiceRequestStatusCompleted)

	assert.ErrorIs(t, err, repositories.ErrServiceRequestNotFound)
}

func TestRequestBudget(t *testing.T) {
	repo := new(MockMarketplaceRepo)
	repo.On("CreateBudget", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(repo, audit.NopRecorder{})
	budget, err := svc.RequestBudget(context.Background(), BudgetRequest{
		UserID:      3,
		ServiceType: "Levantamento topográfico",
		Description: "quero contratar um topógrafo",
	})

	require.NoError(t, err)
	assert.Equal(t, models.BudgetStatusPending, budget.Status)
	assert.Equal(t, "Levantamento topográfico", budget.ServiceType)
	repo.AssertExpectations(t)
}

func TestRequestBudget_Validation(t *testing.T) {
	svc := NewService(new(MockMarketplaceRepo), audit.NopRecorder{})
	_, err := svc.RequestBudget(context.Background(), BudgetRequest{UserID: 3})
	assert.ErrorIs(t, err, ErrInvalidBudget)
}
