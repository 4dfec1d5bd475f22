package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/VictorSilvaVS/enem/internal/domain/entity"
	apperrors "github.com/VictorSilvaVS/enem/internal/pkg/errors"
	"github.com/VictorSilvaVS/enem/pkg/auth"
)

func newAuthServiceForTest(t *testing.T) (*AuthService, *MockUserRepository) {
	t.Helper()
	userRepo := new(MockUserRepository)
	jwtService, err := auth.NewJWTService("test-secret", 1)
	require.NoError(t, err)
	return NewAuthService(userRepo, jwtService), userRepo
}

func hashedPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestAuthService_Register(t *testing.T) {
	// Arrange
	svc, userRepo := newAuthServiceForTest(t)

	userRepo.On("GetByUsername", "ana").Return(nil, apperrors.ErrNotFound)
	userRepo.On("GetByEmail", "ana@enem.com").Return(nil, apperrors.ErrNotFound)
	userRepo.On("Create", mock.AnythingOfType("*entity.User")).Return(nil)

	// Act
	user, err := svc.Register("ana", "ana@enem.com", "senha123", "Ana", "Silva")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "ana", user.Username)
	assert.True(t, user.IsActive)
	assert.False(t, user.IsAdmin)
	userRepo.AssertExpectations(t)
}

func TestAuthService_Register_UsernameTaken(t *testing.T) {
	// Arrange
	svc, userRepo := newAuthServiceForTest(t)

	userRepo.On("GetByUsername", "ana").Return(&entity.User{ID: 1, Username: "ana"}, nil)

	// Act
	user, err := svc.Register("ana", "outra@enem.com", "senha123", "Ana", "Silva")

	// Assert
	assert.Nil(t, user)
	assert.ErrorIs(t, err, ErrUsernameTaken)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	userRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	// Arrange
	svc, userRepo := newAuthServiceForTest(t)

	userRepo.On("GetByUsername", "ana").Return(nil, apperrors.ErrNotFound)
	userRepo.On("GetByEmail", "ana@enem.com").Return(&entity.User{ID: 2}, nil)

	// Act
	user, err := svc.Register("ana", "ana@enem.com", "senha123", "Ana", "Silva")

	// Assert
	assert.Nil(t, user)
	assert.ErrorIs(t, err, ErrEmailTaken)
	userRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestAuthService_Login(t *testing.T) {
	// Arrange
	svc, userRepo := newAuthServiceForTest(t)
	now := time.Now()

	stored := &entity.User{
		ID:       1,
		Username: "ana",
		Password: hashedPassword(t, "senha123"),
		IsActive: true,
	}
	userRepo.On("GetByUsername", "ana").Return(stored, nil)
	userRepo.On("UpdateLastLogin", uint(1), now).Return(nil)

	// Act
	token, user, err := svc.Login("ana", "senha123", now)

	// Assert
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, stored, user)
	userRepo.AssertExpectations(t)
}

func TestAuthService_Login_ByEmailFallback(t *testing.T) {
	// Arrange: логином служит email, поиск по имени дает not found
	svc, userRepo := newAuthServiceForTest(t)
	now := time.Now()

	stored := &entity.User{
		ID:       1,
		Username: "ana",
		Email:    "ana@enem.com",
		Password: hashedPassword(t, "senha123"),
		IsActive: true,
	}
	userRepo.On("GetByUsername", "ana@enem.com").Return(nil, apperrors.ErrNotFound)
	userRepo.On("GetByEmail", "ana@enem.com").Return(stored, nil)
	userRepo.On("UpdateLastLogin", uint(1), now).Return(nil)

	// Act
	token, _, err := svc.Login("ana@enem.com", "senha123", now)

	// Assert
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	// Arrange
	svc, userRepo := newAuthServiceForTest(t)

	stored := &entity.User{
		ID:       1,
		Username: "ana",
		Password: hashedPassword(t, "senha123"),
		IsActive: true,
	}
	userRepo.On("GetByUsername", "ana").Return(stored, nil)

	// Act
	token, user, err := svc.Login("ana", "errada", time.Now())

	// Assert
	assert.Empty(t, token)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	// Arrange
	svc, userRepo := newAuthServiceForTest(t)

	userRepo.On("GetByUsername", "ghost").Return(nil, apperrors.ErrNotFound)
	userRepo.On("GetByEmail", "ghost").Return(nil, apperrors.ErrNotFound)

	// Act
	_, _, err := svc.Login("ghost", "senha123", time.Now())

	// Assert: неизвестный логин неотличим от неверного пароля
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_InactiveUser(t *testing.T) {
	// Arrange
	svc, userRepo := newAuthServiceForTest(t)

	stored := &entity.User{
		ID:       1,
		Username: "ana",
		Password: hashedPassword(t, "senha123"),
		IsActive: false,
	}
	userRepo.On("GetByUsername", "ana").Return(stored, nil)

	// Act
	_, _, err := svc.Login("ana", "senha123", time.Now())

	// Assert
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}
