package dto

import (
	"time"

	"brandlink_backend/internal/models"

	"github.com/shopspring/decimal"
)

// --- Campaign Requests ---

type CreateCampaignRequest struct {
	BrandID      string              `json:"brand_id" validate:"-"` // Устанавливается сервером
	Name         string              `json:"name" validate:"required,min=3,max=150"`
	Description  string              `json:"description" validate:"omitempty,max=5000"`
	CampaignType models.CampaignType `json:"campaign_type" validate:"omitempty,is-campaign-type"`
	Budget       decimal.Decimal     `json:"budget" validate:"required"`
	Currency     string              `json:"currency" validate:"omitempty,len=3"`
	Platforms    []string            `json:"platforms" validate:"required,min=1,dive,oneof=instagram tiktok youtube twitter twitch"`
	StartDate    *time.Time          `json:"start_date,omitempty"`
	EndDate      *time.Time          `json:"end_date,omitempty" validate:"omitempty,gtfield=StartDate"`
}

type UpdateCampaignRequest struct {
	Name        *string          `json:"name,omitempty" validate:"omitempty,min=3,max=150"`
	Description *string          `json:"description,omitempty" validate:"omitempty,max=5000"`
	Budget      *decimal.Decimal `json:"budget,omitempty"`
	Platforms   []string         `json:"platforms,omitempty" validate:"omitempty,dive,oneof=instagram tiktok youtube twitter twitch"`
	StartDate   *time.Time       `json:"start_date,omitempty"`
	EndDate     *time.Time       `json:"end_date,omitempty"`
}

type CreateBriefRequest struct {
	CampaignID   string `json:"campaign_id" validate:"-"` // Устанавливается из URL
	Title        string `json:"title" validate:"required,min=3,max=150"`
	Requirements string `json:"requirements" validate:"omitempty,max=10000"`
	Platform     string `json:"platform" validate:"omitempty,oneof=instagram tiktok youtube twitter twitch"`
	ContentType  string `json:"content_type" validate:"omitempty,oneof=video image story reel post"`
}

// --- Campaign Responses ---

type CampaignResponse struct {
	ID             string                      `json:"id"`
	BrandID        string                      `json:"brand_id"`
	Name           string                      `json:"name"`
	Description    string                      `json:"description,omitempty"`
	CampaignType   models.CampaignType         `json:"campaign_type"`
	Budget         decimal.Decimal             `json:"budget"`
	Currency       string                      `json:"currency"`
	Platforms      []string                    `json:"platforms"`
	StartDate      *time.Time                  `json:"start_date,omitempty"`
	EndDate        *time.Time                  `json:"end_date,omitempty"`
	Status         models.CampaignStatus       `json:"status"`
	ReviewStatus   models.CampaignReviewStatus `json:"review_status"`
	ReviewPriority int                         `json:"review_priority"`
	LaunchedAt     *time.Time                  `json:"launched_at,omitempty"`
	CreatedAt      time.Time                   `json:"created_at"`
	UpdatedAt      time.Time                   `json:"updated_at"`
}

type BriefResponse struct {
	ID           string    `json:"id"`
	CampaignID   string    `json:"campaign_id"`
	Title        string    `json:"title"`
	Requirements string    `json:"requirements,omitempty"`
	Platform     string    `json:"platform,omitempty"`
	ContentType  string    `json:"content_type,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type LaunchResponse struct {
	Campaign         CampaignResponse `json:"campaign"`
	ApprovedCreators []string         `json:"approved_creators"`
	NotifiedCount    int              `json:"notified_count"` // creators notified, excluding the brand itself
}

type CampaignStatsResponse struct {
	Total     int64 `json:"total"`
	Draft     int64 `json:"draft"`
	Active    int64 `json:"active"`
	Live      int64 `json:"live"`
	Completed int64 `json:"completed"`
	Cancelled int64 `json:"cancelled"`
}
