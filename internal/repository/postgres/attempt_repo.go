package postgres

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/VictorSilvaVS/enem/internal/domain/entity"
	apperrors "github.com/VictorSilvaVS/enem/internal/pkg/errors"
)

// AttemptRepo реализует repository.AttemptRepository
type AttemptRepo struct {
	db *gorm.DB
}

// NewAttemptRepo создает новый репозиторий попыток квизов
func NewAttemptRepo(db *gorm.DB) *AttemptRepo {
	return &AttemptRepo{db: db}
}

// Create создает новую попытку квиза
func (r *AttemptRepo) Create(attempt *entity.QuizAttempt) error {
	return r.db.Create(attempt).Error
}

// GetByID возвращает попытку по ID
func (r *AttemptRepo) GetByID(id uint) (*entity.QuizAttempt, error) {
	var attempt entity.QuizAttempt
	err := r.db.First(&attempt, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &attempt, nil
}

// GetByIDForUpdate читает попытку под блокировкой SELECT ... FOR UPDATE
func (r *AttemptRepo) GetByIDForUpdate(tx *gorm.DB, id uint) (*entity.QuizAttempt, error) {
	var attempt entity.QuizAttempt
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&attempt, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &attempt, nil
}

// Save сохраняет попытку в рамках переданной транзакции
func (r *AttemptRepo) Save(tx *gorm.DB, attempt *entity.QuizAttempt) error {
	return tx.Save(attempt).Error
}

// SaveUserAnswers сохраняет выбранные ответы попытки в рамках транзакции
func (r *AttemptRepo) SaveUserAnswers(tx *gorm.DB, answers []entity.UserAnswer) error {
	if len(answers) == 0 {
		return nil
	}
	return tx.Create(&answers).Error
}

// CountByUser возвращает число попыток пользователя (завершенных и нет)
func (r *AttemptRepo) CountByUser(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&entity.QuizAttempt{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

// AverageScoreByUser возвращает средний счет по завершенным попыткам.
// COALESCE дает 0 на пустом множестве вместо NULL.
func (r *AttemptRepo) AverageScoreByUser(userID uint) (float64, error) {
	var avg float64
	err := r.db.Model(&entity.QuizAttempt{}).
		Where("user_id = ? AND completed = ?", userID, true).
		Select("COALESCE(AVG(score), 0)").
		Scan(&avg).Error
	return avg, err
}
