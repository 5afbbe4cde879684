package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatorInvitation is the deal ledger row: one per (campaign, creator) pair,
// enforced by a database unique index rather than a pre-query.
type CreatorInvitation struct {
	BaseModel
	CampaignID     string          `gorm:"not null;index;uniqueIndex:idx_campaign_creator"`
	CreatorID      string          `gorm:"not null;index;uniqueIndex:idx_campaign_creator"`
	Status         DealStatus      `gorm:"not null;default:'invited'"`
	AgreedAmount   decimal.Decimal `gorm:"type:numeric(12,2)"`
	Currency       string          `gorm:"size:3;default:'USD'"`
	Message        string
	CounterAmount  *decimal.Decimal `gorm:"type:numeric(12,2)"` // creator counter-offer, if any
	InvitationDate time.Time        `gorm:"autoCreateTime"`
	ResponseDate   *time.Time
	SubmittedCount int `gorm:"default:0"`
	ApprovedCount  int `gorm:"default:0"`

	Campaign Campaign `gorm:"foreignKey:CampaignID"`
	Creator  User     `gorm:"foreignKey:CreatorID"`
}
