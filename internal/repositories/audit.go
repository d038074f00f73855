package repositories

import (
	"context"

	"regulariza/internal/models"

	"gorm.io/gorm"
)

// AuditRepository persists audit log rows.
type AuditRepository interface {
	Create(ctx context.Context, entry *models.AuditLog) error
	ListPaginated(ctx context.Context, userID uint, limit, offset int) ([]models.AuditLog, int64, error)
}

type auditRepository struct {
	db *gorm.DB
}

func NewAuditRepository(db *gorm.DB) AuditRepository {
	return &auditRepository{db: db}
}

func (r *auditRepository) Create(ctx context.Context, entry *models.AuditLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// ListPaginated returns audit rows newest first, optionally filtered by user.
func (r *auditRepository) ListPaginated(ctx context.Context, userID uint, limit, offset int) ([]models.AuditLog, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.AuditLog{})
	if userID != 0 {
		query = query.Where("user_id = ?", userID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var logs []models.AuditLog
	err := query.
		Limit(limit).Offset(offset).
		Order("created_at DESC").
		Find(&logs).Error
	if err != nil {
		return nil, 0, err
	}
	return logs, total, nil
}
