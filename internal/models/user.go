package models

import "time"

type User struct {
	BaseModel
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Name         string
	Role         UserRole   `gorm:"not null;index"`
	Status       UserStatus `gorm:"default:'pending'"`
	IsVerified   bool       `gorm:"default:false"`
	LastLoginAt  *time.Time
}
