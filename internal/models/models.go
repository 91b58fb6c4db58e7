package models

import (
	"gorm.io/gorm"
)

// Роли пользователей системы.
const (
	RolePatient   = "patient"
	RoleDoctor    = "doctor"
	RoleLab       = "lab"
	RoleAssistant = "assistant"
	RolePharmacy  = "pharmacy"
)

type User struct {
	gorm.Model
	Name         string `gorm:"not null"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Role         string `gorm:"index;not null;default:patient"` // patient | doctor | lab | assistant | pharmacy
}

type Doctor struct {
	gorm.Model
	UserID         uint   `gorm:"uniqueIndex;not null"`
	User           User   `gorm:"foreignKey:UserID"`
	Name           string `gorm:"not null"`
	Specialization string
	RoomNo         string
}
