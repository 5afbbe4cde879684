package dto

import (
	"time"

	"brandlink_backend/internal/models"

	"github.com/shopspring/decimal"
)

// --- Invitation Requests ---

type CreateInvitationRequest struct {
	CampaignID   string          `json:"campaign_id" validate:"-"` // Устанавливается из URL
	CreatorID    string          `json:"creator_id" validate:"required,uuid"`
	AgreedAmount decimal.Decimal `json:"agreed_amount" validate:"required"`
	Currency     string          `json:"currency" validate:"omitempty,len=3"`
	Message      string          `json:"message" validate:"omitempty,max=2000"`
}

type RespondInvitationRequest struct {
	Accept        bool             `json:"accept"`
	CounterAmount *decimal.Decimal `json:"counter_amount,omitempty"` // контр-оффер вместо прямого принятия
}

type UpdateDealStatusRequest struct {
	Status models.DealStatus `json:"status" validate:"required,is-deal-status"`
}

// --- Invitation Responses ---

type InvitationResponse struct {
	ID             string            `json:"id"`
	CampaignID     string            `json:"campaign_id"`
	CreatorID      string            `json:"creator_id"`
	CreatorName    string            `json:"creator_name,omitempty"`
	CampaignName   string            `json:"campaign_name,omitempty"`
	Status         models.DealStatus `json:"status"`
	AgreedAmount   decimal.Decimal   `json:"agreed_amount"`
	Currency       string            `json:"currency"`
	Message        string            `json:"message,omitempty"`
	CounterAmount  *decimal.Decimal  `json:"counter_amount,omitempty"`
	InvitationDate time.Time         `json:"invitation_date"`
	ResponseDate   *time.Time        `json:"response_date,omitempty"`
	SubmittedCount int               `json:"submitted_count"`
	ApprovedCount  int               `json:"approved_count"`
}

func ToInvitationResponse(inv *models.CreatorInvitation) InvitationResponse {
	resp := InvitationResponse{
		ID:             inv.ID,
		CampaignID:     inv.CampaignID,
		CreatorID:      inv.CreatorID,
		Status:         inv.Status,
		AgreedAmount:   inv.AgreedAmount,
		Currency:       inv.Currency,
		Message:        inv.Message,
		CounterAmount:  inv.CounterAmount,
		InvitationDate: inv.InvitationDate,
		ResponseDate:   inv.ResponseDate,
		SubmittedCount: inv.SubmittedCount,
		ApprovedCount:  inv.ApprovedCount,
	}
	if inv.Creator.ID != "" {
		resp.CreatorName = inv.Creator.Name
	}
	if inv.Campaign.ID != "" {
		resp.CampaignName = inv.Campaign.Name
	}
	return resp
}
