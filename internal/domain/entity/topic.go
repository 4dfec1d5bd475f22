package entity

import (
	"time"
)

// Topic представляет тему внутри дисциплины
type Topic struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Name            string    `gorm:"size:200;not null" json:"name"`
	Description     string    `gorm:"type:text" json:"description"`
	SubjectID       uint      `gorm:"not null;index" json:"subject_id"`
	DifficultyLevel int       `gorm:"not null;default:1" json:"difficulty_level"` // 1-5
	EstimatedHours  float64   `gorm:"not null;default:1" json:"estimated_hours"`
	IsActive        bool      `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
}

// TableName определяет имя таблицы для GORM
func (Topic) TableName() string {
	return "topics"
}
