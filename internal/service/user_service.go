package service

import (
	"github.com/VictorSilvaVS/enem/internal/domain/entity"
	"github.com/VictorSilvaVS/enem/internal/domain/repository"
)

// UserService предоставляет методы для работы с профилем пользователя
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService создает новый сервис пользователей
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// GetProfile возвращает профиль пользователя
func (s *UserService) GetProfile(userID uint) (*entity.User, error) {
	return s.userRepo.GetByID(userID)
}

// DeleteAccount удаляет аккаунт и каскадно все принадлежащие ему записи:
// сессии, прогресс, попытки квизов и выбранные ответы.
func (s *UserService) DeleteAccount(userID uint) error {
	return s.userRepo.Delete(userID)
}
