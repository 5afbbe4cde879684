package services

import (
	"testing"

	"brandlink_backend/internal/apperrors"
	"brandlink_backend/internal/models"
	"brandlink_backend/internal/repositories"
	"brandlink_backend/internal/services/dto"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newInvitationFixture() (*fakeInvitationRepo, *fakeCampaignRepo, *fakeUserRepo, InvitationService) {
	invitationRepo := newFakeInvitationRepo()
	campaignRepo := newFakeCampaignRepo()
	userRepo := newFakeUserRepo()
	service := NewInvitationService(invitationRepo, campaignRepo, userRepo, &fakeNotificationRepo{})
	return invitationRepo, campaignRepo, userRepo, service
}

func TestInviteCreatorRejectsInactiveCampaign(t *testing.T) {
	_, campaignRepo, userRepo, service := newInvitationFixture()
	campaign := campaignRepo.put(&models.Campaign{BrandID: "brand-1", Status: models.CampaignStatusDraft})
	creator := userRepo.put(&models.User{Role: models.UserRoleCreator})

	_, err := service.InviteCreator(nil, "brand-1", &dto.CreateInvitationRequest{
		CampaignID:   campaign.ID,
		CreatorID:    creator.ID,
		AgreedAmount: decimal.NewFromInt(300),
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCampaignStatus)
}

func TestInviteCreatorRejectsNonCreatorTarget(t *testing.T) {
	_, campaignRepo, userRepo, service := newInvitationFixture()
	campaign := campaignRepo.put(&models.Campaign{BrandID: "brand-1", Status: models.CampaignStatusActive})
	otherBrand := userRepo.put(&models.User{Role: models.UserRoleBrand})

	_, err := service.InviteCreator(nil, "brand-1", &dto.CreateInvitationRequest{
		CampaignID:   campaign.ID,
		CreatorID:    otherBrand.ID,
		AgreedAmount: decimal.NewFromInt(300),
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidUserRole)
}

func TestInviteCreatorForbiddenForForeignCampaign(t *testing.T) {
	_, campaignRepo, userRepo, service := newInvitationFixture()
	campaign := campaignRepo.put(&models.Campaign{BrandID: "brand-1", Status: models.CampaignStatusActive})
	creator := userRepo.put(&models.User{Role: models.UserRoleCreator})

	_, err := service.InviteCreator(nil, "brand-2", &dto.CreateInvitationRequest{
		CampaignID:   campaign.ID,
		CreatorID:    creator.ID,
		AgreedAmount: decimal.NewFromInt(300),
	})
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestRespondToInvitationOwnership(t *testing.T) {
	invitationRepo, campaignRepo, _, service := newInvitationFixture()
	campaign := campaignRepo.put(&models.Campaign{BrandID: "brand-1", Status: models.CampaignStatusActive})
	invitation := invitationRepo.put(&models.CreatorInvitation{
		CampaignID: campaign.ID,
		CreatorID:  "creator-1",
		Status:     models.DealStatusInvited,
	})

	_, err := service.RespondToInvitation(nil, invitation.ID, "creator-2", &dto.RespondInvitationRequest{Accept: true})
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestRespondToInvitationAlreadyAnswered(t *testing.T) {
	invitationRepo, campaignRepo, _, service := newInvitationFixture()
	campaign := campaignRepo.put(&models.Campaign{BrandID: "brand-1", Status: models.CampaignStatusActive})
	invitation := invitationRepo.put(&models.CreatorInvitation{
		CampaignID: campaign.ID,
		CreatorID:  "creator-1",
		Status:     models.DealStatusDeclined,
	})

	_, err := service.RespondToInvitation(nil, invitation.ID, "creator-1", &dto.RespondInvitationRequest{Accept: true})
	assert.ErrorIs(t, err, apperrors.ErrInvalidDealStatus)
}

func TestUpdateDealStatusFollowsGraph(t *testing.T) {
	invitationRepo, campaignRepo, _, service := newInvitationFixture()
	campaign := campaignRepo.put(&models.Campaign{BrandID: "brand-1", Status: models.CampaignStatusActive})
	invitation := invitationRepo.put(&models.CreatorInvitation{
		CampaignID: campaign.ID,
		CreatorID:  "creator-1",
		Status:     models.DealStatusAccepted,
	})

	// accepted cannot jump straight to completed
	_, err := service.UpdateDealStatus(nil, invitation.ID, "brand-1", &dto.UpdateDealStatusRequest{Status: models.DealStatusCompleted})
	assert.ErrorIs(t, err, apperrors.ErrInvalidDealStatus)

	resp, err := service.UpdateDealStatus(nil, invitation.ID, "brand-1", &dto.UpdateDealStatusRequest{Status: models.DealStatusContracted})
	require.NoError(t, err)
	assert.Equal(t, models.DealStatusContracted, resp.Status)
	assert.Equal(t, models.DealStatusContracted, invitationRepo.invitations[invitation.ID].Status)
}

func TestUpdateDealStatusForbiddenForForeignBrand(t *testing.T) {
	invitationRepo, campaignRepo, _, service := newInvitationFixture()
	campaign := campaignRepo.put(&models.Campaign{BrandID: "brand-1", Status: models.CampaignStatusActive})
	invitation := invitationRepo.put(&models.CreatorInvitation{
		CampaignID: campaign.ID,
		CreatorID:  "creator-1",
		Status:     models.DealStatusAccepted,
	})

	_, err := service.UpdateDealStatus(nil, invitation.ID, "brand-2", &dto.UpdateDealStatusRequest{Status: models.DealStatusContracted})
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestRemoveInvitationOnlyBeforeAcceptance(t *testing.T) {
	invitationRepo, campaignRepo, _, service := newInvitationFixture()
	campaign := campaignRepo.put(&models.Campaign{BrandID: "brand-1", Status: models.CampaignStatusActive})
	invitation := invitationRepo.put(&models.CreatorInvitation{
		CampaignID: campaign.ID,
		CreatorID:  "creator-1",
		Status:     models.DealStatusAccepted,
	})

	err := service.RemoveInvitation(nil, invitation.ID, "brand-1")
	assert.ErrorIs(t, err, apperrors.ErrInvalidDealStatus)

	invitation.Status = models.DealStatusInvited
	err = service.RemoveInvitation(nil, invitation.ID, "brand-2")
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	require.NoError(t, service.RemoveInvitation(nil, invitation.ID, "brand-1"))
	assert.NotContains(t, invitationRepo.invitations, invitation.ID)
}

func TestListCampaignInvitationsRequiresOwnership(t *testing.T) {
	invitationRepo, campaignRepo, _, service := newInvitationFixture()
	campaign := campaignRepo.put(&models.Campaign{BrandID: "brand-1", Status: models.CampaignStatusActive})
	invitationRepo.put(&models.CreatorInvitation{CampaignID: campaign.ID, CreatorID: "creator-1", Status: models.DealStatusInvited})

	_, err := service.ListCampaignInvitations(nil, campaign.ID, "brand-2")
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	invitations, err := service.ListCampaignInvitations(nil, campaign.ID, "brand-1")
	require.NoError(t, err)
	assert.Len(t, invitations, 1)
}

func TestInviteCreatorDuplicateIsConflict(t *testing.T) {
	db := newTestDB(t)
	brand := seedUser(t, db, models.UserRoleBrand)
	creator := seedUser(t, db, models.UserRoleCreator)
	campaign := &models.Campaign{
		BrandID:      brand.ID,
		Name:         "Summer drop",
		Currency:     "USD",
		Status:       models.CampaignStatusActive,
		ReviewStatus: models.ReviewStatusApproved,
	}
	require.NoError(t, db.Create(campaign).Error)

	service := NewInvitationService(
		repositories.NewInvitationRepository(),
		repositories.NewCampaignRepository(),
		repositories.NewUserRepository(),
		repositories.NewNotificationRepository(),
	)

	req := &dto.CreateInvitationRequest{
		CampaignID:   campaign.ID,
		CreatorID:    creator.ID,
		AgreedAmount: decimal.NewFromInt(300),
	}
	first, err := service.InviteCreator(db, brand.ID, req)
	require.NoError(t, err)
	assert.Equal(t, models.DealStatusInvited, first.Status)

	// Дубликат режется уникальным индексом, строка остается одна.
	_, err = service.InviteCreator(db, brand.ID, req)
	assert.ErrorIs(t, err, apperrors.ErrInvitationAlreadyExists)

	var rows int64
	require.NoError(t, db.Model(&models.CreatorInvitation{}).
		Where("campaign_id = ?", campaign.ID).Count(&rows).Error)
	assert.EqualValues(t, 1, rows)
	assert.EqualValues(t, 1, countNotifications(t, db, creator.ID, NotificationCreatorInvited))
}
