package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CustomerName string `gorm:"size:100;not null" json:"customerName"`
	ContactPhone string `gorm:"size:20;not null" json:"contactPhone"`
	PetName      string `gorm:"size:100;not null" json:"petName"`

	// Cópia do nome do serviço no momento do agendamento, sem FK.
	// Edições posteriores no catálogo não alteram o histórico.
	ServiceName string `gorm:"size:100;not null" json:"serviceName"`

	Date   time.Time `gorm:"not null" json:"date"`
	Status string    `gorm:"size:20;default:'pending'" json:"status"`

	ConfirmedAt *time.Time `json:"confirmedAt"`
	CompletedAt *time.Time `json:"completedAt"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
