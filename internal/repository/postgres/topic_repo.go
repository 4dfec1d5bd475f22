package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/VictorSilvaVS/enem/internal/domain/entity"
	apperrors "github.com/VictorSilvaVS/enem/internal/pkg/errors"
)

// TopicRepo реализует repository.TopicRepository
type TopicRepo struct {
	db *gorm.DB
}

// NewTopicRepo создает новый репозиторий тем
func NewTopicRepo(db *gorm.DB) *TopicRepo {
	return &TopicRepo{db: db}
}

// Create создает новую тему
func (r *TopicRepo) Create(topic *entity.Topic) error {
	return r.db.Create(topic).Error
}

// GetByID возвращает тему по ID
func (r *TopicRepo) GetByID(id uint) (*entity.Topic, error) {
	var topic entity.Topic
	err := r.db.First(&topic, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &topic, nil
}

// GetActiveBySubject возвращает активные темы дисциплины в порядке каталога
func (r *TopicRepo) GetActiveBySubject(subjectID uint) ([]entity.Topic, error) {
	var topics []entity.Topic
	err := r.db.Where("subject_id = ? AND is_active = ?", subjectID, true).
		Order("id").Find(&topics).Error
	if err != nil {
		return nil, err
	}
	return topics, nil
}

// SearchActive ищет активные темы по названию или описанию
func (r *TopicRepo) SearchActive(query string, limit int) ([]entity.Topic, error) {
	var topics []entity.Topic
	pattern := "%" + query + "%"
	err := r.db.Where("is_active = ? AND (name ILIKE ? OR description ILIKE ?)", true, pattern, pattern).
		Order("id").Limit(limit).Find(&topics).Error
	if err != nil {
		return nil, err
	}
	return topics, nil
}

// CountActive возвращает число активных тем
func (r *TopicRepo) CountActive() (int64, error) {
	var count int64
	err := r.db.Model(&entity.Topic{}).Where("is_active = ?", true).Count(&count).Error
	return count, err
}
