package analysis

import (
	"context"
	"errors"
	"testing"

	"regulariza/internal/models"
	"regulariza/internal/repositories"
	"regulariza/internal/services/audit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDocumentRepo struct {
	mock.Mock
}

func (m *MockDocumentRepo) Create(ctx context.Context, doc *models.Document) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *MockDocumentRepo) GetForUser(ctx context.Context, docID, userID uint) (*models.Document, error) {
	args := m.Called(ctx, docID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Document), args.Error(1)
}

func (m *MockDocumentRepo) ListByUser(ctx context.Context, userID uint) ([]models.Document, error) {
	args := m.Called(ctx, userID)
	return nil, args.Error(1)
}

func (m *MockDocumentRepo) UpdateStatus(ctx context.Context, docID uint, status string) error {
	args := m.Called(ctx, docID, status)
	return args.Error(0)
}

func (m *MockDocumentRepo) SetAnalysis(ctx context.Context, docID uint, result models.JSON) error {
	args := m.Called(ctx, docID, result)
	return args.Error(0)
}

func (m *MockDocumentRepo) CreateReport(ctx context.Context, report *models.AnalysisReport) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}

func (m *MockDocumentRepo) ListReportsByUser(ctx context.Context, userID uint) ([]models.AnalysisReport, error) {
	args := m.Called(ctx, userID)
	return nil, args.Error(1)
}

type stubClient struct {
	out string
	err error
}

func (s *stubClient) Complete(_ context.Context, _, _ string) (string, error) {
	return s.out, s.err
}

func testDocument() *models.Document {
	doc := &models.Document{
		UserID:  7,
		Name:    "matricula.pdf",
		Type:    "matricula",
		FileURL: "http://localhost/files/matricula.pdf",
		Status:  models.DocumentStatusPending,
	}
	doc.ID = 42
	return doc
}

func TestAnalyze_Success(t *testing.T) {
	repo := new(MockDocumentRepo)
	client := &stubClient{out: `{
		"document_type": "matricula",
		"recommendations": ["consultar advogado"],
		"required_professionals": ["advogado"],
		"missing_documents": ["certidão de ônus"],
		"estimated_cost": 3500.0
	}`}

	doc := testDocument()
	repo.On("GetForUser", mock.Anything, uint(42), uint(7)).Return(doc, nil)
	repo.On("UpdateStatus", mock.Anything, uint(42), models.DocumentStatusAnalyzing).Return(nil)
	repo.On("SetAnalysis", mock.Anything, uint(42), mock.Anything).Return(nil)
	repo.On("CreateReport", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(repo, client, audit.NopRecorder{})
	result, err := svc.Analyze(context.Background(), 42, 7)

	require.NoError(t, err)
	require.NotNil(t, result.Report)
	assert.Equal(t, models.StringList{"consultar advogado"}, result.Report.Recommendations)
	assert.Equal(t, models.StringList{"advogado"}, result.Report.RequiredProfessionals)
	assert.Equal(t, models.StringList{"certidão de ônus"}, result.Report.MissingDocuments)
	assert.InDelta(t, 3500.0, result.Report.EstimatedCost, 0.001)
	repo.AssertExpectations(t)
}

func TestAnalyze_NoClientConfigured(t *testing.T) {
	repo := new(MockDocumentRepo)

	svc := NewService(repo, nil, audit.NopRecorder{})
	_, err := svc.Analyze(context.Background(), 42, 7)

	assert.ErrorIs(t, err, ErrUnavailable)
	repo.AssertNotCalled(t, "GetForUser", mock.Anything, mock.Anything, mock.Anything)
}

func TestAnalyze_DocumentNotFound(t *testing.T) {
	repo := new(MockDocumentRepo)
	repo.On("GetForUser", mock.Anything, uint(42), uint(7)).
		Return(nil, repositories.ErrDocumentNotFound)

	svc := NewService(repo, &stubClient{}, audit.NopRecorder{})
	_, err := svc.Analyze(context.Background(), 42, 7)

	assert.ErrorIs(t, err, repositories.ErrDocumentNotFound)
	repo.AssertExpectations(t)
}

func TestAnalyze_ModelFailureMarksDocumentErrored(t *testing.T) {
	repo := new(MockDocumentRepo)
	client := &stubClient{err: errors.New("upstream unavailable")}

	doc := testDocument()
	repo.On("GetForUser", mock.Anything, uint(42), uint(7)).Return(doc, nil)
	repo.On("UpdateStatus", mock.Anything, uint(42), models.DocumentStatusAnalyzing).Return(nil)
	repo.On("UpdateStatus", mock.Anything, uint(42), models.DocumentStatusError).Return(nil)

	svc := NewService(repo, client, audit.NopRecorder{})
	_, err := svc.Analyze(context.Background(), 42, 7)

	assert.Error(t, err)
	repo.AssertExpectations(t)
	repo.AssertCalled(t, "UpdateStatus", mock.Anything, uint(42), models.DocumentStatusError)
}

func TestAnalyze_UnparseableModelOutputMarksErrored(t *testing.T) {
	repo := new(MockDocumentRepo)
	client := &stubClient{out: "this is not json"}

	doc := testDocument()
	repo.On("GetForUser", mock.Anything, uint(42), uint(7)).Return(doc, nil)
	repo.On("UpdateStatus", mock.Anything, uint(42), models.DocumentStatusAnalyzing).Return(nil)
	repo.On("UpdateStatus", mock.Anything, uint(42), models.DocumentStatusError).Return(nil)

	svc := NewService(repo, client, audit.NopRecorder{})
	_, err := svc.Analyze(context.Background(), 42, 7)

	assert.Error(t, err)
	repo.AssertExpectations(t)
}

func TestAnalyze_StoreFailureMarksErrored(t *testing.T) {
	repo := new(MockDocumentRepo)
	client := &stubClient{out: `{"document_type": "matricula"}`}

	doc := testDocument()
	repo.On("GetForUser", mock.Anything, uint(42), uint(7)).Return(doc, nil)
	repo.On("UpdateStatus", mock.Anything, uint(42), models.DocumentStatusAnalyzing).Return(nil)
	repo.On("SetAnalysis", mock.Anything, uint(42), mock.Anything).Return(errors.New("db down"))
	repo.On("UpdateStatus", mock.Anything, uint(42), models.DocumentStatusError).Return(nil)

	svc := NewService(repo, client, audit.NopRecorder{})
	_, err := svc.Analyze(context.Background(), 42, 7)

	assert.Error(t, err)
	repo.AssertExpectations(t)
}
