package models

import (
	"gorm.io/gorm"
)

// AssistantAssignment — направление от ассистента врачу: пациент и палата.
// Срочное направление дополнительно запускает экстренную политику очереди.
type AssistantAssignment struct {
	gorm.Model
	DoctorID    uint   `gorm:"index;not null"`
	PatientName string `gorm:"not null"`
	RoomNo      string `gorm:"not null"`
	Urgent      bool   `gorm:"not null;default:false"`
	Handled     bool   `gorm:"index;not null;default:false"` // Врач отметил направление как просмотренное
}
