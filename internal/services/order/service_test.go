package order

import (
	"context"
	"testing"

	"regulariza/internal/models"
	"regulariza/internal/services/audit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepo struct {
	mock.Mock
}

func (m *MockOrderRepo) Create(ctx context.Context, order *models.Order) error {
	args := m.Called(ctx, order)
	order.ID = 1
	return args.Error(0)
}

func (m *MockOrderRepo) GetForUser(ctx context.Context, orderID, userID uint) (*models.Order, error) {
	args := m.Called(ctx, orderID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderRepo) ListByUser(ctx context.Context, userID uint) ([]models.Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderRepo) UpdateStatus(ctx context.Context, orderID uint, status string) error {
	args := m.Called(ctx, orderID, status)
	return args.Error(0)
}

func TestCreate_FlatCertificate(t *testing.T) {
	repo := new(MockOrderRepo)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(repo, audit.NopRecorder{})
	result, err := svc.Create(context.Background(), CreateRequest{
		UserID:     4,
		SubclassID: "A1",
		Data:       map[string]string{"matricula": "12345"},
	})

	require.NoError(t, err)
	assert.Equal(t, "certificate", result.Order.Type)
	assert.Equal(t, "A", result.Order.ClassID)
	assert.InDelta(t, 25.00, result.Quote.RegistryFee, 0.001)
	assert.InDelta(t, 9.90, result.Quote.PlatformFee, 0.001)
	assert.InDelta(t, 34.90, result.Order.Amount, 0.001)
	assert.Equal(t, models.OrderStatusPending, result.Order.Status)
	repo.AssertExpectations(t)
}

func TestCreate_RateBasedAct(t *testing.T) {
	repo := new(MockOrderRepo)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(repo, audit.NopRecorder{})
	result, err := svc.Create(context.Background(), CreateRequest{
		UserID:     4,
		SubclassID: "C1",
		Data: map[string]string{
			"valor":  "150000",
			"partes": "João e Maria",
			"imovel": "matrícula 98765",
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "act", result.Order.Type)
	assert.InDelta(t, 1125.00, result.Quote.RegistryFee, 0.001)
	assert.InDelta(t, 19.90, result.Quote.PlatformFee, 0.001)
	assert.InDelta(t, 1144.90, result.Order.Amount, 0.001)
}

func TestCreate_MissingFieldsBlockOrder(t *testing.T) {
	repo := new(MockOrderRepo)

	svc := NewService(repo, audit.NopRecorder{})
	_, err := svc.Create(context.Background(), CreateRequest{
		UserID:     4,
		SubclassID: "C1",
		Data:       map[string]string{"partes": "João e Maria"},
	})

	var missing *ErrMissingFields
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{"valor", "imovel"}, missing.Fields)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreate_WhitespaceFieldCountsAsMissing(t *testing.T) {
	svc := NewService(new(MockOrderRepo), audit.NopRecorder{})
	_, err := svc.Create(context.Background(), CreateRequest{
		UserID:     4,
		SubclassID: "A1",
		Data:       map[string]string{"matricula": "   "},
	})

	var missing *ErrMissingFields
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{"matricula"}, missing.Fields)
}

func TestCreate_UnknownSubclass(t *testing.T) {
	svc := NewService(new(MockOrderRepo), audit.NopRecorder{})
	_, err := svc.Create(context.Background(), CreateRequest{
		UserID:     4,
		SubclassID: "Z9",
		Data:       map[string]string{},
	})
	assert.ErrorIs(t, err, ErrUnknownSubclass)
}

func TestCreate_Validation(t *testing.T) {
	svc := NewService(new(MockOrderRepo), audit.NopRecorder{})

	_, err := svc.Create(context.Background(), CreateRequest{SubclassID: "A1"})
	assert.ErrorIs(t, err, ErrInvalidOrder)

	_, err = svc.Create(context.Background(), CreateRequest{UserID: 4})
	assert.ErrorIs(t, err, ErrInvalidOrder)
}

func TestList(t *testing.T) {
	repo := new(MockOrderRepo)
	repo.On("ListByUser", mock.Anything, uint(4)).Return([]models.Order{{UserID: 4}}, nil)

	svc := NewService(repo, audit.NopRecorder{})
	orders, err := svc.List(context.Background(), 4)

	require.NoError(t, err)
	assert.Len(t, orders, 1)
}

func TestUpdateStatus(t *testing.T) {
	repo := new(MockOrderRepo)
	repo.On("UpdateStatus", mock.Anything, uint(7), models.OrderStatusSent).Return(nil)

	svc := NewService(repo, audit.NopRecorder{})
	err := svc.UpdateStatus(context.Background(), 7, models.OrderStatusSent)

	require.NoError(t, err)
	repo.AssertExpectations(t)
}
