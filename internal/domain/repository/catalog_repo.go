package repository

import (
	"github.com/VictorSilvaVS/enem/internal/domain/entity"
)

// SubjectRepository определяет методы для работы с дисциплинами каталога
type SubjectRepository interface {
	Create(subject *entity.Subject) error
	GetByID(id uint) (*entity.Subject, error)
	GetActive() ([]entity.Subject, error)
	CountActive() (int64, error)
	Count() (int64, error)
}

// TopicRepository определяет методы для работы с темами каталога
type TopicRepository interface {
	Create(topic *entity.Topic) error
	GetByID(id uint) (*entity.Topic, error)
	GetActiveBySubject(subjectID uint) ([]entity.Topic, error)
	// SearchActive ищет активные темы по названию или описанию (без учета регистра)
	SearchActive(query string, limit int) ([]entity.Topic, error)
	CountActive() (int64, error)
}

// MaterialRepository определяет методы для работы с учебными материалами
type MaterialRepository interface {
	Create(material *entity.StudyMaterial) error
	GetByID(id uint) (*entity.StudyMaterial, error)
	GetActiveByTopic(topicID uint) ([]entity.StudyMaterial, error)
	// CountActiveByTopic возвращает живое число активных материалов темы;
	// прогресс пересчитывается по нему при каждом обновлении.
	CountActiveByTopic(topicID uint) (int64, error)
	// SearchActive ищет активные материалы по заголовку или содержимому (без учета регистра)
	SearchActive(query string, limit int) ([]entity.StudyMaterial, error)
	CountActive() (int64, error)
	Count() (int64, error)
}
