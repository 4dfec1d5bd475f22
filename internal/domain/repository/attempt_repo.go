package repository

import (
	"gorm.io/gorm"

	"github.com/VictorSilvaVS/enem/internal/domain/entity"
)

// AttemptRepository определяет методы для работы с попытками квизов
type AttemptRepository interface {
	Create(attempt *entity.QuizAttempt) error
	GetByID(id uint) (*entity.QuizAttempt, error)
	// GetByIDForUpdate читает попытку под блокировкой строки внутри tx,
	// чтобы две конкурентные отправки не оценили одну попытку дважды.
	GetByIDForUpdate(tx *gorm.DB, id uint) (*entity.QuizAttempt, error)
	Save(tx *gorm.DB, attempt *entity.QuizAttempt) error
	// SaveUserAnswers сохраняет выбранные ответы попытки в той же транзакции
	SaveUserAnswers(tx *gorm.DB, answers []entity.UserAnswer) error
	CountByUser(userID uint) (int64, error)
	// AverageScoreByUser возвращает средний score по завершенным попыткам;
	// 0 при отсутствии завершенных попыток, без ошибки.
	AverageScoreByUser(userID uint) (float64, error)
}
