package repositories

import (
	"context"
	"errors"

	"regulariza/internal/models"
	"regulariza/internal/repositories/cache"

	"gorm.io/gorm"
)

var ErrProfileNotFound = errors.New("profile not found")

// ProfileFilter narrows profile listings.
type ProfileFilter struct {
	UserID      uint
	ProfileType string
}

// ProfileRepository handles user profile persistence.
type ProfileRepository interface {
	Create(ctx context.Context, profile *models.UserProfile) error
	Update(ctx context.Context, profile *models.UserProfile) error
	GetByUserID(ctx context.Context, userID uint) (*models.UserProfile, error)
	List(ctx context.Context, filter ProfileFilter) ([]models.UserProfile, error)
	ListPaginated(ctx context.Context, limit, offset int) ([]models.UserProfile, int64, error)
}

type profileRepository struct {
	db    *gorm.DB
	cache *cache.CacheService
}

func NewProfileRepository(db *gorm.DB, cacheService *cache.CacheService) ProfileRepository {
	return &profileRepository{db: db, cache: cacheService}
}

func (r *profileRepository) Create(ctx context.Context, profile *models.UserProfile) error {
	if err := r.db.WithContext(ctx).Create(profile).Error; err != nil {
		return err
	}
	if r.cache != nil {
		_ = r.cache.CacheProfile(ctx, profile)
	}
	return nil
}

func (r *profileRepository) Update(ctx context.Context, profile *models.UserProfile) error {
	if err := r.db.WithContext(ctx).Save(profile).Error; err != nil {
		return err
	}
	if r.cache != nil {
		_ = r.cache.InvalidateProfile(ctx, profile.UserID)
	}
	return nil
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID uint) (*models.UserProfile, error) {
	if r.cache != nil {
		if profile, err := r.cache.GetProfile(ctx, userID); err == nil {
			return profile, nil
		}
	}

	var profile models.UserProfile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	if r.cache != nil {
		_ = r.cache.CacheProfile(ctx, &profile)
	}
	return &profile, nil
}

func (r *profileRepository) List(ctx context.Context, filter ProfileFilter) ([]models.UserProfile, error) {
	query := r.db.WithContext(ctx).Model(&models.UserProfile{})
	if filter.UserID != 0 {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if filter.ProfileType != "" {
		query = query.Where("profile_type = ?", filter.ProfileType)
	}

	var profiles []models.UserProfile
	if err := query.Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *profileRepository) ListPaginated(ctx context.Context, limit, offset int) ([]models.UserProfile, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.UserProfile{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var profiles []models.UserProfile
	err := r.db.WithContext(ctx).
		Limit(limit).Offset(offset).
		Order("created_at DESC").
		Find(&profiles).Error
	if err != nil {
		return nil, 0, err
	}
	return profiles, total, nil
}
