package models

import (
	"time"

	"gorm.io/datatypes"
)

// Notification is the outbox row. It is written in the same transaction as the
// state change it announces and delivered later by the dispatcher worker.
type Notification struct {
	BaseModel
	UserID       string `gorm:"not null;index"`
	Type         string `gorm:"not null"` // "campaign_launched", "submission_reviewed", ...
	Title        string `gorm:"not null"`
	Message      string
	Data         datatypes.JSON     `gorm:"type:jsonb"` // {"campaign_id": "...", "submission_id": "..."}
	Status       NotificationStatus `gorm:"not null;default:'pending';index"`
	Priority     int                `gorm:"default:0"`
	ScheduledFor time.Time          `gorm:"index"`
	Attempts     int                `gorm:"default:0"`
	LastError    string
	SentAt       *time.Time
	IsRead       bool `gorm:"default:false"`
	ReadAt       *time.Time
}
