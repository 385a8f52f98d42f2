package models

import (
	"time"

	"gorm.io/gorm"
)

type Blog struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Title     string         `json:"title" gorm:"not null"`
	Slug      string         `json:"slug" gorm:"not null;index"`
	Content   string         `json:"content"`
	AuthorID  uint           `json:"author_id" gorm:"not null;index"`
	Author    *User          `json:"-" gorm:"belongsTo:User"`
	IsActive  bool           `json:"is_active" gorm:"not null;default:true"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}
