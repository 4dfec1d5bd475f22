package entity

import (
	"time"
)

// StudySession представляет одно обращение пользователя к учебному материалу.
// Инвариант: EndTime и DurationMinutes либо оба nil (сессия открыта),
// либо оба установлены (сессия закрыта); длительность всегда >= 0.
type StudySession struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	UserID          uint       `gorm:"not null;index" json:"user_id"`
	SubjectID       uint       `gorm:"not null;index" json:"subject_id"`
	TopicID         uint       `gorm:"not null;index" json:"topic_id"`
	MaterialID      uint       `gorm:"not null;index" json:"material_id"`
	StartTime       time.Time  `gorm:"not null" json:"start_time"`
	EndTime         *time.Time `gorm:"type:timestamp" json:"end_time,omitempty"`
	DurationMinutes *int       `json:"duration_minutes,omitempty"`
	Completed       bool       `gorm:"not null;default:false" json:"completed"`
	Notes           string     `gorm:"type:text" json:"notes,omitempty"`
}

// TableName определяет имя таблицы для GORM
func (StudySession) TableName() string {
	return "study_sessions"
}

// Close переводит сессию в закрытое состояние и вычисляет длительность
// в целых минутах. Отрицательная длительность (часы переведены назад)
// обрезается до нуля.
func (s *StudySession) Close(endTime time.Time, notes string) {
	minutes := int(endTime.Sub(s.StartTime).Seconds() / 60)
	if minutes < 0 {
		minutes = 0
	}
	s.EndTime = &endTime
	s.DurationMinutes = &minutes
	s.Completed = true
	s.Notes = notes
}
