// Package document handles uploads of property paperwork.
package document

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"regulariza/internal/models"
	"regulariza/internal/repositories"
	"regulariza/internal/services/audit"
	"regulariza/internal/services/storage"
	"regulariza/internal/validation"
)

// ValidationError carries per-field validation failures.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %v", e.Fields)
}

// UploadRequest carries an uploaded file and its metadata.
type UploadRequest struct {
	UserID     uint
	PropertyID *uint
	Name       string
	Type       string
	MimeType   string
	Size       int64
	Content    io.Reader
}

// Service handles document uploads and listings.
type Service interface {
	Upload(ctx context.Context, req UploadRequest) (*models.Document, error)
	Get(ctx context.Context, docID, userID uint) (*models.Document, error)
	List(ctx context.Context, userID uint) ([]models.Document, error)
	ListReports(ctx context.Context, userID uint) ([]models.AnalysisReport, error)
}

type service struct {
	docs     repositories.DocumentRepository
	store    storage.Store
	recorder audit.Recorder
}

func NewService(docs repositories.DocumentRepository, store storage.Store, recorder audit.Recorder) Service {
	return &service{docs: docs, store: store, recorder: recorder}
}

func (s *service) Upload(ctx context.Context, req UploadRequest) (*models.Document, error) {
	v := validation.New()
	v.Required("user_id", req.UserID)
	v.Document(req.Name, req.Type, req.Size)
	if !v.Valid() {
		return nil, &ValidationError{Fields: v.Errors}
	}

	url, err := s.store.Save(req.Name, req.Content)
	if err != nil {
		return nil, fmt.Errorf("store file: %w", err)
	}

	doc := &models.Document{
		UserID:     req.UserID,
		PropertyID: req.PropertyID,
		Name:       req.Name,
		Type:       req.Type,
		FileURL:    url,
		FileSize:   req.Size,
		MimeType:   req.MimeType,
		Status:     models.DocumentStatusPending,
	}
	if err := s.docs.Create(ctx, doc); err != nil {
		// The orphaned file would never be referenced.
		_ = s.store.Remove(url)
		return nil, fmt.Errorf("create document: %w", err)
	}

	s.recorder.Record(ctx, audit.Entry{
		UserID:     req.UserID,
		Action:     models.AuditActionDocumentUpload,
		EntityType: "document",
		EntityID:   strconv.FormatUint(uint64(doc.ID), 10),
		Metadata:   models.JSON{"name": req.Name, "type": req.Type},
	})

	return doc, nil
}

func (s *service) Get(ctx context.Context, docID, userID uint) (*models.Document, error) {
	return s.docs.GetForUser(ctx, docID, userID)
}

func (s *service) List(ctx context.Context, userID uint) ([]models.Document, error) {
	return s.docs.ListByUser(ctx, userID)
}

func (s *service) ListReports(ctx context.Context, userID uint) ([]models.AnalysisReport, error) {
	return s.docs.ListReportsByUser(ctx, userID)
}
