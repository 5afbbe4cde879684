package dto

import (
	"time"

	"brandlink_backend/internal/models"
)

// --- Submission Requests ---

type CreateSubmissionRequest struct {
	CampaignID  string `json:"campaign_id" validate:"-"` // Устанавливается из URL
	CreatorID   string `json:"creator_id" validate:"-"`  // Устанавливается сервером
	BriefID     string `json:"brief_id" validate:"required,uuid"`
	FileURL     string `json:"file_url" validate:"required,url"`
	FileName    string `json:"file_name" validate:"omitempty,max=255"`
	FileSize    int64  `json:"file_size" validate:"omitempty,min=0"`
	ContentType string `json:"content_type" validate:"omitempty,max=100"`
	Platform    string `json:"platform" validate:"omitempty,oneof=instagram tiktok youtube twitter twitch"`
	Caption     string `json:"caption" validate:"omitempty,max=5000"`
}

type ResubmitRequest struct {
	FileURL string `json:"file_url" validate:"required,url"`
	Caption string `json:"caption" validate:"omitempty,max=5000"`
}

// --- Submission Responses ---

type SubmissionResponse struct {
	ID          string                  `json:"id"`
	CampaignID  string                  `json:"campaign_id"`
	CreatorID   string                  `json:"creator_id"`
	BriefID     string                  `json:"brief_id"`
	FileURL     string                  `json:"file_url"`
	FileName    string                  `json:"file_name,omitempty"`
	FileSize    int64                   `json:"file_size,omitempty"`
	ContentType string                  `json:"content_type,omitempty"`
	Platform    string                  `json:"platform,omitempty"`
	Caption     string                  `json:"caption,omitempty"`
	Status      models.SubmissionStatus `json:"status"`
	Revisions   int                     `json:"revisions"`
	CreatedAt   time.Time               `json:"created_at"`
	UpdatedAt   time.Time               `json:"updated_at"`
}

func ToSubmissionResponse(s *models.Submission) SubmissionResponse {
	return SubmissionResponse{
		ID:          s.ID,
		CampaignID:  s.CampaignID,
		CreatorID:   s.CreatorID,
		BriefID:     s.BriefID,
		FileURL:     s.FileURL,
		FileName:    s.FileName,
		FileSize:    s.FileSize,
		ContentType: s.ContentType,
		Platform:    s.Platform,
		Caption:     s.Caption,
		Status:      s.Status,
		Revisions:   s.Revisions,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

type SubmissionCountsResponse struct {
	Total    int64 `json:"total"`
	Pending  int64 `json:"pending"`
	Approved int64 `json:"approved"`
	Rejected int64 `json:"rejected"`
}
