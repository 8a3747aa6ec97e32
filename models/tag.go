package models

import (
	"time"

	"gorm.io/gorm"
)

// Tag is a user-defined label attached to recipes ("vegan", "dessert", …).
// Tags belong to exactly one user; two users can hold same-named tags.
type Tag struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"-"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name   string `gorm:"not null" json:"name"`
	UserID uint   `gorm:"not null;index" json:"-"`
}
