package entity

import (
	"time"
)

// Question представляет вопрос квиза по теме
type Question struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	QuestionText    string    `gorm:"type:text;not null" json:"question_text"`
	QuestionType    string    `gorm:"size:20;not null;default:'multiple_choice'" json:"question_type"`
	DifficultyLevel int       `gorm:"not null;default:1" json:"difficulty_level"`
	TopicID         uint      `gorm:"not null;index" json:"topic_id"`
	SubjectID       uint      `gorm:"not null;index" json:"subject_id"` // Денормализовано из темы
	IsActive        bool      `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`

	// Answers загружаются через Preload; скрывать правильный вариант обязан DTO-слой
	Answers []Answer `gorm:"foreignKey:QuestionID" json:"answers,omitempty"`
}

// TableName определяет имя таблицы для GORM
func (Question) TableName() string {
	return "questions"
}

// CorrectAnswer возвращает правильный ответ на вопрос или nil, если каталог поврежден.
// Инвариант каталога: ровно один ответ с IsCorrect=true на вопрос.
func (q *Question) CorrectAnswer() *Answer {
	for i := range q.Answers {
		if q.Answers[i].IsCorrect {
			return &q.Answers[i]
		}
	}
	return nil
}
