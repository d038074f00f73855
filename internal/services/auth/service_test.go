package auth

import (
	"context"
	"testing"

	"regulariza/internal/models"
	"regulariza/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	user.ID = 1
	return args.Error(0)
}

func (m *MockUserRepo) GetByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepo) Update(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepo) IncrementTokenVersion(ctx context.Context, userID uint) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockUserRepo) GetTokenVersion(ctx context.Context, userID uint) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func hashed(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestRegister(t *testing.T) {
	repo := new(MockUserRepo)
	repo.On("GetByEmail", mock.Anything, "ana@example.com").Return(nil, repositories.ErrUserNotFound)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(repo)
	user, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "ana@example.com",
		Password: "Segura123!",
		Name:     "Ana Souza",
	})

	require.NoError(t, err)
	assert.Equal(t, "user", user.Role)
	assert.Equal(t, models.ProfileTypeComum, user.ProfileType)
	assert.NotEqual(t, "Segura123!", user.Password)
	repo.AssertExpectations(t)
}

func TestRegister_ProfessionalProfileGetsProfessionalRole(t *testing.T) {
	repo := new(MockUserRepo)
	repo.On("GetByEmail", mock.Anything, mock.Anything).Return(nil, repositories.ErrUserNotFound)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(repo)
	user, err := svc.Register(context.Background(), RegisterRequest{
		Email:       "carla@example.com",
		Password:    "Segura123!",
		Name:        "Carla Lima",
		ProfileType: models.ProfileTypeAdvogado,
	})

	require.NoError(t, err)
	assert.Equal(t, "professional", user.Role)
	assert.Equal(t, models.ProfileTypeAdvogado, user.ProfileType)
}

func TestRegister_EmailTaken(t *testing.T) {
	repo := new(MockUserRepo)
	existing := &models.User{Email: "ana@example.com"}
	repo.On("GetByEmail", mock.Anything, "ana@example.com").Return(existing, nil)

	svc := NewService(repo)
	_, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "ana@example.com",
		Password: "Segura123!",
		Name:     "Ana",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegister_ValidationFailure(t *testing.T) {
	svc := NewService(new(MockUserRepo))
	_, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "bad",
		Password: "weak",
		Name:     "",
	})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "email")
	assert.Contains(t, verr.Fields, "password")
	assert.Contains(t, verr.Fields, "name")
}

func TestLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	repo := new(MockUserRepo)
	user := &models.User{
		Email:        "ana@example.com",
		Password:     hashed(t, "Segura123!"),
		Role:         "user",
		ProfileType:  models.ProfileTypeComum,
		TokenVersion: 1,
	}
	user.ID = 3
	repo.On("GetByEmail", mock.Anything, "ana@example.com").Return(user, nil)

	svc := NewService(repo)
	got, access, refresh, err := svc.Login(context.Background(), "ana@example.com", "Segura123!")

	require.NoError(t, err)
	assert.Equal(t, uint(3), got.ID)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := new(MockUserRepo)
	user := &models.User{Email: "ana@example.com", Password: hashed(t, "Segura123!")}
	repo.On("GetByEmail", mock.Anything, "ana@example.com").Return(user, nil)

	svc := NewService(repo)
	_, _, _, err := svc.Login(context.Background(), "ana@example.com", "errada")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownUser(t *testing.T) {
	repo := new(MockUserRepo)
	repo.On("GetByEmail", mock.Anything, mock.Anything).Return(nil, repositories.ErrUserNotFound)

	svc := NewService(repo)
	_, _, _, err := svc.Login(context.Background(), "nao@existe.com", "x")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefreshTokens_VersionMismatch(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	repo := new(MockUserRepo)
	user := &models.User{
		Email:        "ana@example.com",
		Password:     hashed(t, "Segura123!"),
		Role:         "user",
		TokenVersion: 1,
	}
	user.ID = 3
	repo.On("GetByEmail", mock.Anything, "ana@example.com").Return(user, nil)

	svc := NewService(repo)
	_, _, refresh, err := svc.Login(context.Background(), "ana@example.com", "Segura123!")
	require.NoError(t, err)

	stale := *user
	stale.TokenVersion = 2
	repo.On("GetByID", mock.Anything, uint(3)).Return(&stale, nil)

	_, _, err = svc.RefreshTokens(context.Background(), refresh)
	assert.EqualError(t, err, "token version mismatch")
}

func TestLogout(t *testing.T) {
	repo := new(MockUserRepo)
	repo.On("IncrementTokenVersion", mock.Anything, uint(3)).Return(nil)

	svc := NewService(repo)
	require.NoError(t, svc.Logout(context.Background(), 3))
	repo.AssertExpectations(t)
}
