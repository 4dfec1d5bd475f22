package repository

import (
	"time"

	"github.com/VictorSilvaVS/enem/internal/domain/entity"
)

// UserRepository определяет методы для работы с пользователями
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id uint) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	UpdateLastLogin(userID uint, loginTime time.Time) error
	// Delete удаляет аккаунт вместе со всеми принадлежащими ему записями
	// (сессии, прогресс, попытки квизов) в одной транзакции.
	Delete(id uint) error
	Count() (int64, error)
}
