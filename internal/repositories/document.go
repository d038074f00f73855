package repositories

import (
	"context"
	"errors"

	"regulariza/internal/models"

	"gorm.io/gorm"
)

var ErrDocumentNotFound = errors.New("document not found")

// DocumentRepository handles uploaded documents and their analysis reports.
type DocumentRepository interface {
	Create(ctx context.Context, doc *models.Document) error
	GetForUser(ctx context.Context, docID, userID uint) (*models.Document, error)
	ListByUser(ctx context.Context, userID uint) ([]models.Document, error)
	UpdateStatus(ctx context.Context, docID uint, status string) error
	SetAnalysis(ctx context.Context, docID uint, result models.JSON) error
	CreateReport(ctx context.Context, report *models.AnalysisReport) error
	ListReportsByUser(ctx context.Context, userID uint) ([]models.AnalysisReport, error)
}

type documentRepository struct {
	db *gorm.DB
}

func NewDocumentRepository(db *gorm.DB) DocumentRepository {
	return &documentRepository{db: db}
}

func (r *documentRepository) Create(ctx context.Context, doc *models.Document) error {
	return r.db.WithContext(ctx).Create(doc).Error
}

func (r *documentRepository) GetForUser(ctx context.Context, docID, userID uint) (*models.Document, error) {
	var doc models.Document
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", docID, userID).
		First(&doc).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDocumentNotFound
		}
		return nil, err
	}
	return &doc, nil
}

func (r *documentRepository) ListByUser(ctx context.Context, userID uint) ([]models.Document, error) {
	var docs []models.Document
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&docs).Error
	return docs, err
}

func (r *documentRepository) UpdateStatus(ctx context.Context, docID uint, status string) error {
	return r.db.WithContext(ctx).Model(&models.Document{}).
		Where("id = ?", docID).
		Update("status", status).Error
}

func (r *documentRepository) SetAnalysis(ctx context.Context, docID uint, result models.JSON) error {
	return r.db.WithContext(ctx).Model(&models.Document{}).
		Where("id = ?", docID).
		Updates(map[string]interface{}{
			"status":          models.DocumentStatusAnalyzed,
			"analysis_result": result,
		}).Error
}

func (r *documentRepository) CreateReport(ctx context.Context, report *models.AnalysisReport) error {
	return r.db.WithContext(ctx).Create(report).Error
}

func (r *documentRepository) ListReportsByUser(ctx context.Context, userID uint) ([]models.AnalysisReport, error) {
	var reports []models.AnalysisReport
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&reports).Error
	return reports, err
}
