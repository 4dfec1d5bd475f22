package entity

import (
	"time"
)

// StudyMaterial представляет единицу учебного контента, которую можно завершить
type StudyMaterial struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Title           string    `gorm:"size:200;not null" json:"title"`
	Content         string    `gorm:"type:text;not null" json:"content"`
	MaterialType    string    `gorm:"size:50;not null" json:"material_type"` // text, video, pdf и т.д.
	FilePath        string    `gorm:"size:255" json:"file_path,omitempty"`
	URL             string    `gorm:"size:500" json:"url,omitempty"`
	SubjectID       uint      `gorm:"not null;index" json:"subject_id"` // Денормализовано из темы
	TopicID         uint      `gorm:"not null;index" json:"topic_id"`
	DifficultyLevel int       `gorm:"not null;default:1" json:"difficulty_level"`
	EstimatedTime   int       `gorm:"not null;default:15" json:"estimated_time"` // в минутах
	IsActive        bool      `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
}

// TableName определяет имя таблицы для GORM
func (StudyMaterial) TableName() string {
	return "study_materials"
}
