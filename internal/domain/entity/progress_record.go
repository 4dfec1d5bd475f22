package entity

import (
	"time"
)

// ProgressRecord хранит прогресс пользователя по теме.
// Уникален для тройки (user_id, subject_id, topic_id).
type ProgressRecord struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	UserID             uint      `gorm:"not null;index;uniqueIndex:idx_user_subject_topic" json:"user_id"`
	SubjectID          uint      `gorm:"not null;index;uniqueIndex:idx_user_subject_topic" json:"subject_id"`
	TopicID            uint      `gorm:"not null;uniqueIndex:idx_user_subject_topic" json:"topic_id"`
	ProgressPercentage float64   `gorm:"not null;default:0" json:"progress_percentage"`
	MaterialsCompleted int       `gorm:"not null;default:0" json:"materials_completed"`
	TotalMaterials     int       `gorm:"not null;default:0" json:"total_materials"`
	LastStudied        time.Time `gorm:"not null" json:"last_studied"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// TableName определяет имя таблицы для GORM
func (ProgressRecord) TableName() string {
	return "progress_records"
}

// Recalculate пересчитывает процент прогресса по актуальному числу материалов.
// Каталог может сжиматься, поэтому materials_completed способен превысить
// total_materials; процент при этом ограничивается сотней. Пустая тема дает 0%.
func (p *ProgressRecord) Recalculate(totalMaterials int) {
	p.TotalMaterials = totalMaterials
	if totalMaterials <= 0 {
		p.ProgressPercentage = 0
		return
	}
	pct := float64(p.MaterialsCompleted) / float64(totalMaterials) * 100
	if pct > 100 {
		pct = 100
	}
	if pct < 0 {
		pct = 0
	}
	p.ProgressPercentage = pct
}
