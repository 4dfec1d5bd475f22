package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/VictorSilvaVS/enem/internal/domain/entity"
	apperrors "github.com/VictorSilvaVS/enem/internal/pkg/errors"
)

// QuestionRepo реализует repository.QuestionRepository
type QuestionRepo struct {
	db *gorm.DB
}

// NewQuestionRepo создает новый репозиторий вопросов
func NewQuestionRepo(db *gorm.DB) *QuestionRepo {
	return &QuestionRepo{db: db}
}

// Create создает новый вопрос вместе с вложенными ответами
func (r *QuestionRepo) Create(question *entity.Question) error {
	return r.db.Create(question).Error
}

// CreateBatch создает пакет вопросов вместе с ответами в одной транзакции
func (r *QuestionRepo) CreateBatch(questions []entity.Question) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&questions).Error
	})
}

// GetByID возвращает вопрос по ID с предзагруженными ответами
func (r *QuestionRepo) GetByID(id uint) (*entity.Question, error) {
	var question entity.Question
	err := r.db.Preload("Answers").First(&question, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &question, nil
}

// GetActiveByTopic возвращает до limit активных вопросов темы
// в стабильном порядке каталога (по id), с ответами
func (r *QuestionRepo) GetActiveByTopic(topicID uint, limit int) ([]entity.Question, error) {
	var questions []entity.Question
	err := r.db.Preload("Answers", func(db *gorm.DB) *gorm.DB {
		return db.Order("answers.id")
	}).Where("topic_id = ? AND is_active = ?", topicID, true).
		Order("id").Limit(limit).Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

// GetAnswersByIDs возвращает варианты ответов по списку идентификаторов
func (r *QuestionRepo) GetAnswersByIDs(ids []uint) ([]entity.Answer, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var answers []entity.Answer
	err := r.db.Where("id IN ?", ids).Find(&answers).Error
	if err != nil {
		return nil, err
	}
	return answers, nil
}

// Count возвращает общее число вопросов
func (r *QuestionRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&entity.Question{}).Count(&count).Error
	return count, err
}
