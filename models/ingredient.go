package models

import (
	"time"

	"gorm.io/gorm"
)

// Ingredient belongs to exactly one user, like Tag.
type Ingredient struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"-"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name   string `gorm:"not null" json:"name"`
	UserID uint   `gorm:"not null;index" json:"-"`
}
