package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/VictorSilvaVS/enem/internal/domain/entity"
	apperrors "github.com/VictorSilvaVS/enem/internal/pkg/errors"
)

// MaterialRepo реализует repository.MaterialRepository
type MaterialRepo struct {
	db *gorm.DB
}

// NewMaterialRepo создает новый репозиторий учебных материалов
func NewMaterialRepo(db *gorm.DB) *MaterialRepo {
	return &MaterialRepo{db: db}
}

// Create создает новый материал
func (r *MaterialRepo) Create(material *entity.StudyMaterial) error {
	return r.db.Create(material).Error
}

// GetByID возвращает материал по ID
func (r *MaterialRepo) GetByID(id uint) (*entity.StudyMaterial, error) {
	var material entity.StudyMaterial
	err := r.db.First(&material, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &material, nil
}

// GetActiveByTopic возвращает активные материалы темы в порядке каталога
func (r *MaterialRepo) GetActiveByTopic(topicID uint) ([]entity.StudyMaterial, error) {
	var materials []entity.StudyMaterial
	err := r.db.Where("topic_id = ? AND is_active = ?", topicID, true).
		Order("id").Find(&materials).Error
	if err != nil {
		return nil, err
	}
	return materials, nil
}

// CountActiveByTopic возвращает живое число активных материалов темы
func (r *MaterialRepo) CountActiveByTopic(topicID uint) (int64, error) {
	var count int64
	err := r.db.Model(&entity.StudyMaterial{}).
		Where("topic_id = ? AND is_active = ?", topicID, true).Count(&count).Error
	return count, err
}

// SearchActive ищет активные материалы по заголовку или содержимому
func (r *MaterialRepo) SearchActive(query string, limit int) ([]entity.StudyMaterial, error) {
	var materials []entity.StudyMaterial
	pattern := "%" + query + "%"
	err := r.db.Where("is_active = ? AND (title ILIKE ? OR content ILIKE ?)", true, pattern, pattern).
		Order("id").Limit(limit).Find(&materials).Error
	if err != nil {
		return nil, err
	}
	return materials, nil
}

// CountActive возвращает число активных материалов
func (r *MaterialRepo) CountActive() (int64, error) {
	var count int64
	err := r.db.Model(&entity.StudyMaterial{}).Where("is_active = ?", true).Count(&count).Error
	return count, err
}

// Count возвращает общее число материалов
func (r *MaterialRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&entity.StudyMaterial{}).Count(&count).Error
	return count, err
}
