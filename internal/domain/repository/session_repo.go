package repository

import (
	"gorm.io/gorm"

	"github.com/VictorSilvaVS/enem/internal/domain/entity"
)

// SessionRepository определяет методы для работы с учебными сессиями
type SessionRepository interface {
	Create(session *entity.StudySession) error
	GetByID(id uint) (*entity.StudySession, error)
	// GetByIDForUpdate читает сессию под блокировкой строки внутри tx.
	// Используется при закрытии сессии, чтобы сериализовать конкурентные закрытия.
	GetByIDForUpdate(tx *gorm.DB, id uint) (*entity.StudySession, error)
	Save(tx *gorm.DB, session *entity.StudySession) error
	ListRecentByUser(userID uint, limit int) ([]entity.StudySession, error)
	// SumDurationByUser суммирует duration_minutes по закрытым сессиям
	// пользователя; открытые сессии (NULL) не учитываются.
	SumDurationByUser(userID uint) (int64, error)
}
