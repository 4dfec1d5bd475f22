package entity

import (
	"time"
)

// Subject представляет дисциплину из каталога (область знаний ENEM)
type Subject struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Area        string    `gorm:"size:50;not null" json:"area"` // Linguagens, Ciências Humanas и т.д.
	Color       string    `gorm:"size:7;not null;default:'#007bff'" json:"color"`
	Icon        string    `gorm:"size:50;not null;default:'book'" json:"icon"`
	IsActive    bool      `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName определяет имя таблицы для GORM
func (Subject) TableName() string {
	return "subjects"
}
