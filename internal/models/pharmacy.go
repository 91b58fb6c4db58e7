package models

import (
	"gorm.io/gorm"
)

// Статусы заявки в аптеку.
const (
	PharmacyStatusPending   = "pending"
	PharmacyStatusCompleted = "completed"
)

type Prescription struct {
	gorm.Model
	QueueEntryID uint   `gorm:"index;not null"`
	PatientID    uint   `gorm:"index;not null"`
	DoctorID     uint   `gorm:"index;not null"`
	Medicine     string `gorm:"not null"` // Назначенные препараты одной строкой
	Status       string `gorm:"index;not null;default:pending"`
}

type PharmacyRequest struct {
	gorm.Model
	PrescriptionID uint         `gorm:"index;not null"`
	Prescription   Prescription `gorm:"foreignKey:PrescriptionID"`
	PatientID      uint         `gorm:"index;not null"`
	Status         string       `gorm:"index;not null;default:pending"` // pending | completed
}
