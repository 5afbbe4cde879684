package services

import (
	"errors"
	"fmt"

	"brandlink_backend/internal/apperrors"
	"brandlink_backend/internal/logger"
	"brandlink_backend/internal/models"
	"brandlink_backend/internal/repositories"
	"brandlink_backend/internal/services/dto"

	"gorm.io/gorm"
)

type InvitationService interface {
	InviteCreator(db *gorm.DB, brandID string, req *dto.CreateInvitationRequest) (*dto.InvitationResponse, error)
	RespondToInvitation(db *gorm.DB, invitationID, creatorID string, req *dto.RespondInvitationRequest) (*dto.InvitationResponse, error)
	UpdateDealStatus(db *gorm.DB, invitationID, brandID string, req *dto.UpdateDealStatusRequest) (*dto.InvitationResponse, error)
	// RemoveInvitation hard-deletes an unanswered invitation.
	RemoveInvitation(db *gorm.DB, invitationID, brandID string) error
	ListCampaignInvitations(db *gorm.DB, campaignID, brandID string) ([]dto.InvitationResponse, error)
	ListCreatorInvitations(db *gorm.DB, creatorID string) ([]dto.InvitationResponse, error)
}

type invitationServiceImpl struct {
	invitationRepo   repositories.InvitationRepository
	campaignRepo     repositories.CampaignRepository
	userRepo         repositories.UserRepository
	notificationRepo repositories.NotificationRepository
}

func NewInvitationService(
	invitationRepo repositories.InvitationRepository,
	campaignRepo repositories.CampaignRepository,
	userRepo repositories.UserRepository,
	notificationRepo repositories.NotificationRepository,
) InvitationService {
	return &invitationServiceImpl{
		invitationRepo:   invitationRepo,
		campaignRepo:     campaignRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
	}
}

func (s *invitationServiceImpl) InviteCreator(db *gorm.DB, brandID string, req *dto.CreateInvitationRequest) (*dto.InvitationResponse, error) {
	campaign, err := s.campaignRepo.FindCampaignByID(db, req.CampaignID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCampaignNotFound
		}
		return nil, err
	}
	if campaign.BrandID != brandID {
		return nil, apperrors.ErrForbidden
	}
	// Приглашать можно только в активную кампанию.
	if campaign.Status != models.CampaignStatusActive {
		return nil, apperrors.ErrInvalidCampaignStatus
	}

	creator, err := s.userRepo.FindByID(db, req.CreatorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	if creator.Role != models.UserRoleCreator {
		return nil, apperrors.ErrInvalidUserRole
	}

	currency := req.Currency
	if currency == "" {
		currency = campaign.Currency
	}

	invitation := &models.CreatorInvitation{
		CampaignID:   req.CampaignID,
		CreatorID:    req.CreatorID,
		Status:       models.DealStatusInvited,
		AgreedAmount: req.AgreedAmount,
		Currency:     currency,
		Message:      req.Message,
	}

	// Дубликат отлавливается уникальным индексом, а не предварительным
	// запросом - иначе два конкурентных приглашения оба прошли бы проверку.
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := s.invitationRepo.CreateInvitation(tx, invitation); err != nil {
			if errors.Is(err, repositories.ErrInvitationAlreadyExists) {
				return apperrors.ErrInvitationAlreadyExists
			}
			return err
		}

		row := outboxRow(req.CreatorID, NotificationCreatorInvited,
			"New campaign invitation",
			fmt.Sprintf("You were invited to campaign %q.", campaign.Name),
			map[string]interface{}{"campaign_id": campaign.ID, "invitation_id": invitation.ID}, 1)
		return s.notificationRepo.CreateNotification(tx, &row)
	})
	if err != nil {
		return nil, err
	}

	resp := dto.ToInvitationResponse(invitation)
	return &resp, nil
}

func (s *invitationServiceImpl) RespondToInvitation(db *gorm.DB, invitationID, creatorID string, req *dto.RespondInvitationRequest) (*dto.InvitationResponse, error) {
	invitation, err := s.findInvitation(db, invitationID)
	if err != nil {
		return nil, err
	}
	if invitation.CreatorID != creatorID {
		return nil, apperrors.ErrForbidden
	}

	target := models.DealStatusDeclined
	if req.Accept {
		target = models.DealStatusAccepted
	}
	if !models.CanTransitionDealStatus(invitation.Status, target) {
		return nil, apperrors.ErrInvalidDealStatus
	}

	campaign, err := s.campaignRepo.FindCampaignByID(db, invitation.CampaignID)
	if err != nil {
		return nil, err
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		moved, err := s.invitationRepo.TransitionStatus(tx, invitationID, invitation.Status, target)
		if err != nil {
			return err
		}
		if !moved {
			return apperrors.ErrInvalidDealStatus
		}

		if req.CounterAmount != nil {
			if err := s.invitationRepo.SetCounterAmount(tx, invitationID, *req.CounterAmount); err != nil {
				return err
			}
		}

		verb := "declined"
		if req.Accept {
			verb = "accepted"
		}
		row := outboxRow(campaign.BrandID, NotificationInvitationAnswered,
			"Invitation answered",
			fmt.Sprintf("A creator %s your invitation for campaign %q.", verb, campaign.Name),
			map[string]interface{}{"campaign_id": campaign.ID, "invitation_id": invitationID, "accepted": req.Accept}, 0)
		return s.notificationRepo.CreateNotification(tx, &row)
	})
	if err != nil {
		return nil, err
	}

	invitation.Status = target
	if req.CounterAmount != nil {
		invitation.CounterAmount = req.CounterAmount
	}
	resp := dto.ToInvitationResponse(invitation)
	return &resp, nil
}

func (s *invitationServiceImpl) UpdateDealStatus(db *gorm.DB, invitationID, brandID string, req *dto.UpdateDealStatusRequest) (*dto.InvitationResponse, error) {
	invitation, err := s.findInvitation(db, invitationID)
	if err != nil {
		return nil, err
	}

	campaign, err := s.campaignRepo.FindCampaignByID(db, invitation.CampaignID)
	if err != nil {
		return nil, err
	}
	if campaign.BrandID != brandID {
		return nil, apperrors.ErrForbidden
	}

	if !models.CanTransitionDealStatus(invitation.Status, req.Status) {
		return nil, apperrors.ErrInvalidDealStatus
	}

	moved, err := s.invitationRepo.TransitionStatus(db, invitationID, invitation.Status, req.Status)
	if err != nil {
		return nil, err
	}
	if !moved {
		return nil, apperrors.ErrInvalidDealStatus
	}

	invitation.Status = req.Status
	resp := dto.ToInvitationResponse(invitation)
	return &resp, nil
}

func (s *invitationServiceImpl) RemoveInvitation(db *gorm.DB, invitationID, brandID string) error {
	invitation, err := s.findInvitation(db, invitationID)
	if err != nil {
		return err
	}

	campaign, err := s.campaignRepo.FindCampaignByID(db, invitation.CampaignID)
	if err != nil {
		return err
	}
	if campaign.BrandID != brandID {
		return apperrors.ErrForbidden
	}

	// Once the creator is on board the row is a deal ledger, not an invitation.
	if invitation.Status != models.DealStatusInvited && invitation.Status != models.DealStatusDeclined {
		return apperrors.ErrInvalidDealStatus
	}

	if err := s.invitationRepo.DeleteInvitation(db, invitationID); err != nil {
		return err
	}
	logger.Info("invitation removed",
		"invitation_id", invitationID, "campaign_id", invitation.CampaignID, "creator_id", invitation.CreatorID)
	return nil
}

func (s *invitationServiceImpl) ListCampaignInvitations(db *gorm.DB, campaignID, brandID string) ([]dto.InvitationResponse, error) {
	campaign, err := s.campaignRepo.FindCampaignByID(db, campaignID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCampaignNotFound
		}
		return nil, err
	}
	if campaign.BrandID != brandID {
		return nil, apperrors.ErrForbidden
	}

	invitations, err := s.invitationRepo.FindByCampaign(db, campaignID)
	if err != nil {
		return nil, err
	}
	return toInvitationResponses(invitations), nil
}

func (s *invitationServiceImpl) ListCreatorInvitations(db *gorm.DB, creatorID string) ([]dto.InvitationResponse, error) {
	invitations, err := s.invitationRepo.FindByCreator(db, creatorID)
	if err != nil {
		return nil, err
	}
	return toInvitationResponses(invitations), nil
}

func (s *invitationServiceImpl) findInvitation(db *gorm.DB, invitationID string) (*models.CreatorInvitation, error) {
	invitation, err := s.invitationRepo.FindInvitationByID(db, invitationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvitationNotFound
		}
		return nil, err
	}
	return invitation, nil
}

func toInvitationResponses(invitations []models.CreatorInvitation) []dto.InvitationResponse {
	responses := make([]dto.InvitationResponse, 0, len(invitations))
	for i := range invitations {
		responses = append(responses, dto.ToInvitationResponse(&invitations[i]))
	}
	return responses
}
