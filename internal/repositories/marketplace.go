package repositories

import (
	"context"
	"errors"

	"regulariza/internal/models"

	"gorm.io/gorm"
)

var ErrServiceNotFound = errors.New("service not found")
var ErrServiceRequestNotFound = errors.New("service request not found")

// MarketplaceRepository handles professional services, service requests
// and assistant-generated budgets.
type MarketplaceRepository interface {
	CreateService(ctx context.Context, svc *models.ProfessionalService) error
	GetService(ctx context.Context, id uint) (*models.ProfessionalService, error)
	ListActiveServices(ctx context.Context) ([]models.ProfessionalService, error)
	ListServicesByProfessional(ctx context.Context, professionalID uint) ([]models.ProfessionalService, error)
	UpdateService(ctx context.Context, svc *models.ProfessionalService) error

	CreateRequest(ctx context.Context, req *models.ServiceRequest) error
	GetRequest(ctx context.Context, id uint) (*models.ServiceRequest, error)
	ListRequestsByUser(ctx context.Context, userID uint) ([]models.ServiceRequest, error)
	UpdateRequestStatus(ctx context.Context, id uint, status string) error

	CreateBudget(ctx context.Context, budget *models.Budget) error
	ListBudgetsByUser(ctx context.Context, userID uint) ([]models.Budget, error)
}

type marketplaceRepository struct {
	db *gorm.DB
}

func NewMarketplaceRepository(db *gorm.DB) MarketplaceRepository {
	return &marketplaceRepository{db: db}
}

func (r *marketplaceRepository) CreateService(ctx context.Context, svc *models.ProfessionalService) error {
	return r.db.WithContext(ctx).Create(svc).Error
}

func (r *marketplaceRepository) GetService(ctx context.Context, id uint) (*models.ProfessionalService, error) {
	var svc models.ProfessionalService
	if err := r.db.WithContext(ctx).First(&svc, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	return &svc, nil
}

func (r *marketplaceRepository) ListActiveServices(ctx context.Context) ([]models.ProfessionalService, error) {
	var services []models.ProfessionalService
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&services).Error
	return services, err
}

func (r *marketplaceRepository) ListServicesByProfessional(ctx context.Context, professionalID uint) ([]models.ProfessionalService, error) {
	var services []models.ProfessionalService
	err := r.db.WithContext(ctx).
		Where("professional_id = ?", professionalID).
		Order("created_at DESC").
		Find(&services).Error
	return services, err
}

func (r *marketplaceRepository) UpdateService(ctx context.Context, svc *models.ProfessionalService) error {
	return r.db.WithContext(ctx).Save(svc).Error
}

func (r *marketplaceRepository) CreateRequest(ctx context.Context, req *models.ServiceRequest) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *marketplaceRepository) GetRequest(ctx context.Context, id uint) (*models.ServiceRequest, error) {
	var req models.ServiceRequest
	if err := r.db.WithContext(ctx).First(&req, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceRequestNotFound
		}
		return nil, err
	}
	return &req, nil
}

func (r *marketplaceRepository) ListRequestsByUser(ctx context.Context, userID uint) ([]models.ServiceRequest, error) {
	var reqs []models.ServiceRequest
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&reqs).Error
	return reqs, err
}

func (r *marketplaceRepository) UpdateRequestStatus(ctx context.Context, id uint, status string) error {
	return r.db.WithContext(ctx).Model(&models.ServiceRequest{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *marketplaceRepository) CreateBudget(ctx context.Context, budget *models.Budget) error {
	return r.db.WithContext(ctx).Create(budget).Error
}

func (r *marketplaceRepository) ListBudgetsByUser(ctx context.Context, userID uint) ([]models.Budget, error) {
	var budgets []models.Budget
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&budgets).Error
	return budgets, err
}
