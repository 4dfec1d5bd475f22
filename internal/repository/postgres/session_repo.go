package postgres

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/VictorSilvaVS/enem/internal/domain/entity"
	apperrors "github.com/VictorSilvaVS/enem/internal/pkg/errors"
)

// SessionRepo реализует repository.SessionRepository
type SessionRepo struct {
	db *gorm.DB
}

// NewSessionRepo создает новый репозиторий учебных сессий
func NewSessionRepo(db *gorm.DB) *SessionRepo {
	return &SessionRepo{db: db}
}

// Create создает новую учебную сессию
func (r *SessionRepo) Create(session *entity.StudySession) error {
	return r.db.Create(session).Error
}

// GetByID возвращает сессию по ID
func (r *SessionRepo) GetByID(id uint) (*entity.StudySession, error) {
	var session entity.StudySession
	err := r.db.First(&session, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &session, nil
}

// GetByIDForUpdate читает сессию под блокировкой SELECT ... FOR UPDATE
func (r *SessionRepo) GetByIDForUpdate(tx *gorm.DB, id uint) (*entity.StudySession, error) {
	var session entity.StudySession
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&session, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &session, nil
}

// Save сохраняет сессию в рамках переданной транзакции
func (r *SessionRepo) Save(tx *gorm.DB, session *entity.StudySession) error {
	return tx.Save(session).Error
}

// ListRecentByUser возвращает последние сессии пользователя
func (r *SessionRepo) ListRecentByUser(userID uint, limit int) ([]entity.StudySession, error) {
	var sessions []entity.StudySession
	err := r.db.Where("user_id = ?", userID).
		Order("start_time DESC").Limit(limit).Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

// SumDurationByUser суммирует длительность закрытых сессий пользователя.
// COALESCE защищает от NULL при отсутствии закрытых сессий.
func (r *SessionRepo) SumDurationByUser(userID uint) (int64, error) {
	var total int64
	err := r.db.Model(&entity.StudySession{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(duration_minutes), 0)").
		Scan(&total).Error
	return total, err
}
