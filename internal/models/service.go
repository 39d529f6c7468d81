package models

import "time"

type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"size:255" json:"description"`
	Price       int    `gorm:"not null" json:"price"`    // centavos
	DurationMin int    `gorm:"not null" json:"duration"` // minutos
	ImageURL    string `gorm:"size:512" json:"imageUrl"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
