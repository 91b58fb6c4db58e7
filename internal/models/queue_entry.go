package models

import (
	"gorm.io/gorm"
)

// Статусы записи в очереди к врачу.
const (
	StatusWaiting          = "waiting"
	StatusLabPending       = "lab_pending"
	StatusCompleted15Min   = "completed_15min"
	StatusDelayedEmergency = "delayed_emergency"
	StatusCompleted        = "completed" // терминальный статус
)

// Уровни срочности, которые пациент указывает при записи.
// Используются только для отображения: сами по себе они не меняют порядок очереди.
const (
	EmergencyLow    = "low"
	EmergencyMedium = "medium"
	EmergencyHigh   = "high"
)

// ActiveStatuses — статусы, при которых запись считается активной (пациент ещё в очереди).
var ActiveStatuses = []string{StatusWaiting, StatusLabPending, StatusCompleted15Min, StatusDelayedEmergency}

type QueueEntry struct {
	gorm.Model
	DoctorID  uint   `gorm:"index;not null"`
	Doctor    Doctor `gorm:"foreignKey:DoctorID"`
	PatientID uint   `gorm:"index;not null"`
	Patient   User   `gorm:"foreignKey:PatientID"`
	Status    string `gorm:"index;not null;default:waiting"`
	// Позиция назначается один раз при записи и задним числом не пересчитывается.
	// Актуальное место пациента выводится из индекса в активной очереди по created_at.
	Position             int    `gorm:"index;not null"`
	EmergencyLevel       string `gorm:"not null;default:low"` // low | medium | high
	IsNewPatient         bool   `gorm:"not null;default:true"`
	PrescriptionImageURL string
	// CreatedAt из gorm.Model служит ещё и "эффективным временем начала":
	// экстренная политика сдвигает его вперёд на фиксированный интервал.
}
