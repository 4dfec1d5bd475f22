package entity

// UserAnswer фиксирует выбранный пользователем ответ в рамках попытки квиза
type UserAnswer struct {
	ID               uint `gorm:"primaryKey" json:"id"`
	QuizAttemptID    uint `gorm:"not null;index" json:"quiz_attempt_id"`
	QuestionID       uint `gorm:"not null;index" json:"question_id"`
	SelectedAnswerID uint `gorm:"not null" json:"selected_answer_id"`
	IsCorrect        bool `gorm:"not null;default:false" json:"is_correct"`
}

// TableName определяет имя таблицы для GORM
func (UserAnswer) TableName() string {
	return "user_answers"
}
