package postgres

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/VictorSilvaVS/enem/internal/domain/entity"
	apperrors "github.com/VictorSilvaVS/enem/internal/pkg/errors"
)

// ProgressRepo реализует repository.ProgressRepository
type ProgressRepo struct {
	db *gorm.DB
}

// NewProgressRepo создает новый репозиторий прогресса
func NewProgressRepo(db *gorm.DB) *ProgressRepo {
	return &ProgressRepo{db: db}
}

// Create создает новую запись прогресса в рамках транзакции.
// Уникальный индекс (user_id, subject_id, topic_id) защищает от дублей.
func (r *ProgressRepo) Create(tx *gorm.DB, record *entity.ProgressRecord) error {
	return tx.Create(record).Error
}

// Save сохраняет запись прогресса в рамках транзакции
func (r *ProgressRepo) Save(tx *gorm.DB, record *entity.ProgressRecord) error {
	return tx.Save(record).Error
}

// GetByUserTopicForUpdate читает запись прогресса под блокировкой строки
func (r *ProgressRepo) GetByUserTopicForUpdate(tx *gorm.DB, userID, topicID uint) (*entity.ProgressRecord, error) {
	var record entity.ProgressRecord
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ? AND topic_id = ?", userID, topicID).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

// GetByUserTopic возвращает запись прогресса пользователя по теме
func (r *ProgressRepo) GetByUserTopic(userID, topicID uint) (*entity.ProgressRecord, error) {
	var record entity.ProgressRecord
	err := r.db.Where("user_id = ? AND topic_id = ?", userID, topicID).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

// ListByUser возвращает все записи прогресса пользователя
func (r *ProgressRepo) ListByUser(userID uint) ([]entity.ProgressRecord, error) {
	var records []entity.ProgressRecord
	err := r.db.Where("user_id = ?", userID).Order("id").Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// ListByUserAndSubject возвращает записи прогресса пользователя по дисциплине
func (r *ProgressRepo) ListByUserAndSubject(userID, subjectID uint) ([]entity.ProgressRecord, error) {
	var records []entity.ProgressRecord
	err := r.db.Where("user_id = ? AND subject_id = ?", userID, subjectID).
		Order("id").Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// SumMaterialsCompleted суммирует число завершенных материалов пользователя
func (r *ProgressRepo) SumMaterialsCompleted(userID uint) (int64, error) {
	var total int64
	err := r.db.Model(&entity.ProgressRecord{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(materials_completed), 0)").
		Scan(&total).Error
	return total, err
}
