package entity

// Answer представляет вариант ответа на вопрос квиза
type Answer struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	AnswerText  string `gorm:"type:text;not null" json:"answer_text"`
	IsCorrect   bool   `gorm:"not null;default:false" json:"-"` // Скрыто от клиента
	Explanation string `gorm:"type:text" json:"explanation,omitempty"`
	QuestionID  uint   `gorm:"not null;index" json:"question_id"`
}

// TableName определяет имя таблицы для GORM
func (Answer) TableName() string {
	return "answers"
}

// Belongs проверяет, принадлежит ли ответ указанному вопросу.
// Ответ из чужого вопроса не должен засчитываться, даже если он помечен правильным.
func (a *Answer) Belongs(questionID uint) bool {
	return a.QuestionID == questionID
}
