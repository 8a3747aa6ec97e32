package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Recipe struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"-"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Title       string          `gorm:"not null" json:"title"`
	TimeMinutes int             `json:"time_minutes"`
	Price       decimal.Decimal `gorm:"type:decimal(5,2)" json:"price"`
	Description string          `json:"description"`
	Link        string          `json:"link"`
	ImageURL    string          `json:"image,omitempty"`
	UserID      uint            `gorm:"not null;index" json:"-"`

	// Tags and Ingredients must be owned by the same user as the recipe;
	// enforced in the service layer, not by the schema.
	Tags        []Tag        `gorm:"many2many:recipe_tags;" json:"tags"`
	Ingredients []Ingredient `gorm:"many2many:recipe_ingredients;" json:"ingredients"`
}
