package repository

import (
	"gorm.io/gorm"

	"github.com/VictorSilvaVS/enem/internal/domain/entity"
)

// ProgressRepository определяет методы для работы с записями прогресса
type ProgressRepository interface {
	Create(tx *gorm.DB, record *entity.ProgressRecord) error
	Save(tx *gorm.DB, record *entity.ProgressRecord) error
	// GetByUserTopicForUpdate читает запись прогресса под блокировкой строки
	// внутри tx, чтобы два конкурентных завершения материала не дали
	// двойного инкремента. Возвращает ErrNotFound для ленивого создания.
	GetByUserTopicForUpdate(tx *gorm.DB, userID, topicID uint) (*entity.ProgressRecord, error)
	GetByUserTopic(userID, topicID uint) (*entity.ProgressRecord, error)
	ListByUser(userID uint) ([]entity.ProgressRecord, error)
	ListByUserAndSubject(userID, subjectID uint) ([]entity.ProgressRecord, error)
	SumMaterialsCompleted(userID uint) (int64, error)
}
