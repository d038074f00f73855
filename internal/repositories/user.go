package repositories

import (
	"context"
	"errors"

	"regulariza/internal/models"
	"regulariza/internal/repositories/cache"

	"gorm.io/gorm"
)

var ErrUserNotFound = errors.New("user not found")

// UserRepository handles account persistence with a read-through cache.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	IncrementTokenVersion(ctx context.Context, userID uint) error
	GetTokenVersion(ctx context.Context, userID uint) (int, error)
}

type userRepository struct {
	db    *gorm.DB
	cache *cache.CacheService
}

func NewUserRepository(db *gorm.DB, cacheService *cache.CacheService) UserRepository {
	return &userRepository{db: db, cache: cacheService}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	if r.cache != nil {
		if user, err := r.cache.GetUser(ctx, r.cache.GenerateKey("user", "id", id)); err == nil {
			return user, nil
		}
	}

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if r.cache != nil {
		_ = r.cache.CacheUser(ctx, &user)
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if r.cache != nil {
		if user, err := r.cache.GetUser(ctx, r.cache.GenerateKey("user", "email", email)); err == nil {
			return user, nil
		}
	}

	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if r.cache != nil {
		_ = r.cache.CacheUser(ctx, &user)
	}
	return &user, nil
}

func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		return err
	}
	if r.cache != nil {
		_ = r.cache.InvalidateUser(ctx, user.ID)
	}
	return nil
}

func (r *userRepository) IncrementTokenVersion(ctx context.Context, userID uint) error {
	err := r.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", userID).
		UpdateColumn("token_version", gorm.Expr("token_version + 1")).Error
	if err != nil {
		return err
	}
	if r.cache != nil {
		_ = r.cache.InvalidateUser(ctx, userID)
	}
	return nil
}

func (r *userRepository) GetTokenVersion(ctx context.Context, userID uint) (int, error) {
	user, err := r.GetByID(ctx, userID)
	if err != nil {
		return 0, err
	}
	return user.TokenVersion, nil
}
