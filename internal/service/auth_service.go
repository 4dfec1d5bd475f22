package service

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/VictorSilvaVS/enem/internal/domain/entity"
	"github.com/VictorSilvaVS/enem/internal/domain/repository"
	apperrors "github.com/VictorSilvaVS/enem/internal/pkg/errors"
	"github.com/VictorSilvaVS/enem/pkg/auth"
)

// AuthService отвечает за регистрацию и вход пользователей
type AuthService struct {
	userRepo   repository.UserRepository
	jwtService *auth.JWTService
}

// NewAuthService создает новый сервис аутентификации
func NewAuthService(userRepo repository.UserRepository, jwtService *auth.JWTService) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Register создает нового пользователя. Имя и email должны быть уникальны;
// пароль хешируется GORM-хуком сущности перед сохранением.
func (s *AuthService) Register(username, email, password, firstName, lastName string) (*entity.User, error) {
	if _, err := s.userRepo.GetByUsername(username); !errors.Is(err, apperrors.ErrNotFound) {
		if err != nil {
			return nil, err
		}
		return nil, ErrUsernameTaken
	}
	if _, err := s.userRepo.GetByEmail(email); !errors.Is(err, apperrors.ErrNotFound) {
		if err != nil {
			return nil, err
		}
		return nil, ErrEmailTaken
	}

	user := &entity.User{
		Username:  username,
		Email:     email,
		Password:  password,
		FirstName: firstName,
		LastName:  lastName,
		IsActive:  true,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// Login проверяет учетные данные и выдает access-токен.
// В качестве логина принимается имя пользователя или email.
func (s *AuthService) Login(login, password string, now time.Time) (string, *entity.User, error) {
	user, err := s.userRepo.GetByUsername(login)
	if errors.Is(err, apperrors.ErrNotFound) {
		user, err = s.userRepo.GetByEmail(login)
	}
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !user.CheckPassword(password) {
		return "", nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return "", nil, apperrors.ErrForbidden
	}

	if err := s.userRepo.UpdateLastLogin(user.ID, now); err != nil {
		// Не фатально для входа, но фиксируем в логе
		log.Printf("[AuthService] Не удалось обновить last_login user=%d: %v", user.ID, err)
	}

	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return "", nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return token, user, nil
}
