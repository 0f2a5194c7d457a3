package models

import (
	"time"
)

// Meal represents a community-shared meal
type Meal struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Title        string    `gorm:"size:255;not null" json:"title"`
	Slug         string    `gorm:"size:255;uniqueIndex;not null" json:"slug"`
	Summary      string    `gorm:"type:text" json:"summary"`
	Instructions string    `gorm:"type:text" json:"instructions"`
	Creator      string    `gorm:"size:255;not null" json:"creator"`
	CreatorEmail string    `gorm:"size:255;not null" json:"creator_email"`
	Image        string    `gorm:"size:255;not null" json:"image"`
}
