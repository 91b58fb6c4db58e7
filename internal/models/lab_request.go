package models

import (
	"time"

	"gorm.io/gorm"
)

// Статусы лабораторной заявки.
const (
	LabStatusPending    = "pending"
	LabStatusInProgress = "in_progress"
	LabStatusCompleted  = "completed"
)

type LabRequest struct {
	gorm.Model
	QueueEntryID uint       `gorm:"index;not null"`
	QueueEntry   QueueEntry `gorm:"foreignKey:QueueEntryID"`
	PatientID    uint       `gorm:"index;not null"`
	DoctorID     uint       `gorm:"index;not null"`
	LabName      string     `gorm:"not null"`
	TestsOrdered string     `gorm:"not null"` // Список анализов через запятую, например "CBC,Lipid Panel"
	Status       string     `gorm:"index;not null;default:pending"`
	CompletedAt  *time.Time
}
