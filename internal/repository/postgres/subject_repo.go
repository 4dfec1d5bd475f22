package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/VictorSilvaVS/enem/internal/domain/entity"
	apperrors "github.com/VictorSilvaVS/enem/internal/pkg/errors"
)

// SubjectRepo реализует repository.SubjectRepository
type SubjectRepo struct {
	db *gorm.DB
}

// NewSubjectRepo создает новый репозиторий дисциплин
func NewSubjectRepo(db *gorm.DB) *SubjectRepo {
	return &SubjectRepo{db: db}
}

// Create создает новую дисциплину
func (r *SubjectRepo) Create(subject *entity.Subject) error {
	return r.db.Create(subject).Error
}

// GetByID возвращает дисциплину по ID
func (r *SubjectRepo) GetByID(id uint) (*entity.Subject, error) {
	var subject entity.Subject
	err := r.db.First(&subject, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &subject, nil
}

// GetActive возвращает активные дисциплины в порядке каталога
func (r *SubjectRepo) GetActive() ([]entity.Subject, error) {
	var subjects []entity.Subject
	err := r.db.Where("is_active = ?", true).Order("id").Find(&subjects).Error
	if err != nil {
		return nil, err
	}
	return subjects, nil
}

// CountActive возвращает число активных дисциплин
func (r *SubjectRepo) CountActive() (int64, error) {
	var count int64
	err := r.db.Model(&entity.Subject{}).Where("is_active = ?", true).Count(&count).Error
	return count, err
}

// Count возвращает общее число дисциплин
func (r *SubjectRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&entity.Subject{}).Count(&count).Error
	return count, err
}
