package repository

import (
	"github.com/VictorSilvaVS/enem/internal/domain/entity"
)

// QuestionRepository определяет методы для работы с вопросами и ответами каталога
type QuestionRepository interface {
	Create(question *entity.Question) error
	// CreateBatch создает пакет вопросов вместе с вложенными ответами
	CreateBatch(questions []entity.Question) error
	GetByID(id uint) (*entity.Question, error)
	// GetActiveByTopic возвращает до limit активных вопросов темы
	// в стабильном порядке каталога, с предзагруженными ответами.
	GetActiveByTopic(topicID uint, limit int) ([]entity.Question, error)
	// GetAnswersByIDs возвращает варианты ответов по списку идентификаторов
	GetAnswersByIDs(ids []uint) ([]entity.Answer, error)
	Count() (int64, error)
}
