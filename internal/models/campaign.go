package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type Campaign struct {
	BaseModel
	BrandID        string `gorm:"not null;index"`
	Name           string `gorm:"not null"`
	Description    string
	CampaignType   CampaignType    `gorm:"not null;default:'single'"`
	Budget         decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Currency       string          `gorm:"size:3;not null;default:'USD'"`
	Platforms      datatypes.JSON  `gorm:"type:jsonb"`
	StartDate      *time.Time
	EndDate        *time.Time
	Status         CampaignStatus       `gorm:"not null;default:'draft';index"`
	ReviewStatus   CampaignReviewStatus `gorm:"not null;default:'pending_review';index"`
	ReviewPriority int                  `gorm:"default:0"`
	LaunchedAt     *time.Time

	Brand User `gorm:"foreignKey:BrandID"`
}

// Brief describes one deliverable creators submit against. A submission must
// reference a brief of its own campaign.
type Brief struct {
	BaseModel
	CampaignID   string `gorm:"not null;index"`
	Title        string `gorm:"not null"`
	Requirements string
	Platform     string
	ContentType  string // "video", "image", "story", ...

	Campaign Campaign `gorm:"foreignKey:CampaignID"`
}
