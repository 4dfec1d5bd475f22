package entity

import (
	"time"
)

// QuizAttempt представляет одну попытку прохождения квиза по теме.
// Машина состояний: Started -> Completed, без повторных отправок.
type QuizAttempt struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	UserID         uint       `gorm:"not null;index" json:"user_id"`
	SubjectID      uint       `gorm:"not null;index" json:"subject_id"`
	TopicID        uint       `gorm:"not null;index" json:"topic_id"`
	Score          float64    `gorm:"not null;default:0" json:"score"`
	TotalQuestions int        `gorm:"not null;default:0" json:"total_questions"` // Снимок на момент старта
	CorrectAnswers int        `gorm:"not null;default:0" json:"correct_answers"`
	TimeTaken      *int       `json:"time_taken,omitempty"` // в секундах
	Completed      bool       `gorm:"not null;default:false" json:"completed"`
	StartTime      time.Time  `gorm:"not null" json:"start_time"`
	EndTime        *time.Time `gorm:"type:timestamp" json:"end_time,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

// TableName определяет имя таблицы для GORM
func (QuizAttempt) TableName() string {
	return "quiz_attempts"
}

// Finish переводит попытку в завершенное состояние и вычисляет итоговый счет.
// Score имеет смысл только при Completed=true; TotalQuestions > 0
// гарантируется на этапе старта попытки.
func (a *QuizAttempt) Finish(correctAnswers int, endTime time.Time) {
	seconds := int(endTime.Sub(a.StartTime).Seconds())
	if seconds < 0 {
		seconds = 0
	}
	a.CorrectAnswers = correctAnswers
	a.Score = float64(correctAnswers) / float64(a.TotalQuestions) * 100
	a.Completed = true
	a.EndTime = &endTime
	a.TimeTaken = &seconds
}
