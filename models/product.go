package models

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID        uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string  `gorm:"not null" json:"name"`
	Category  string  `json:"category"`
	Cost      float64 `gorm:"not null" json:"cost"` // Required
	Rating    int     `json:"rating"`
	ImageLink string  `json:"image"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
