package models

import (
	"time"

	"gorm.io/datatypes"
)

type BrandProfile struct {
	BaseModel
	UserID      string `gorm:"not null;uniqueIndex"`
	CompanyName string `gorm:"not null"`
	Website     string
	Industry    string
	City        string
	IsVerified  bool `gorm:"default:false"`

	User User `gorm:"foreignKey:UserID"`
}

// CreatorProfile carries the discovery attributes brands filter on. Follower
// counts and engagement are cached from the external scraping runs; this
// service never talks to the scrapers itself.
type CreatorProfile struct {
	BaseModel
	UserID          string `gorm:"not null;uniqueIndex"`
	DisplayName     string `gorm:"not null"`
	Bio             string
	City            string
	Platforms       datatypes.JSON `gorm:"type:jsonb"` // ["instagram", "tiktok", ...]
	Categories      datatypes.JSON `gorm:"type:jsonb"`
	FollowerCount   int64          `gorm:"default:0;index"`
	EngagementRate  float64        `gorm:"default:0"`
	MetricsSyncedAt *time.Time

	User User `gorm:"foreignKey:UserID"`
}
