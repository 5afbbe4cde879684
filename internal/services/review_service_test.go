package services

import (
	"testing"

	"brandlink_backend/internal/apperrors"
	"brandlink_backend/internal/models"
	"brandlink_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReviewFixture() (*fakeReviewRepo, *fakeSubmissionRepo, *fakeCampaignRepo, ReviewService) {
	reviewRepo := &fakeReviewRepo{}
	submissionRepo := newFakeSubmissionRepo()
	campaignRepo := newFakeCampaignRepo()
	service := NewReviewService(reviewRepo, submissionRepo, campaignRepo, newFakeInvitationRepo(), &fakeNotificationRepo{})
	return reviewRepo, submissionRepo, campaignRepo, service
}

func TestReviewSubmissionOnlyByCampaignBrand(t *testing.T) {
	_, submissionRepo, campaignRepo, service := newReviewFixture()
	campaign := campaignRepo.put(&models.Campaign{BrandID: "brand-1", Status: models.CampaignStatusActive})
	submission := submissionRepo.put(&models.Submission{
		CampaignID: campaign.ID,
		CreatorID:  "creator-1",
		Status:     models.SubmissionStatusSubmitted,
	})

	_, err := service.ReviewSubmission(nil, submission.ID, "brand-2", models.UserRoleBrand, &dto.ReviewSubmissionRequest{Action: models.ReviewActionApprove})
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestReviewSubmissionTerminalGuard(t *testing.T) {
	_, submissionRepo, campaignRepo, service := newReviewFixture()
	campaign := campaignRepo.put(&models.Campaign{BrandID: "brand-1", Status: models.CampaignStatusActive})
	submission := submissionRepo.put(&models.Submission{
		CampaignID: campaign.ID,
		CreatorID:  "creator-1",
		Status:     models.SubmissionStatusRejected,
	})

	_, err := service.ReviewSubmission(nil, submission.ID, "brand-1", models.UserRoleBrand, &dto.ReviewSubmissionRequest{Action: models.ReviewActionApprove})
	assert.ErrorIs(t, err, apperrors.ErrSubmissionTerminal)

	// admins hit the same terminal guard, not the ownership one
	_, err = service.ReviewSubmission(nil, submission.ID, "admin-1", models.UserRoleAdmin, &dto.ReviewSubmissionRequest{Action: models.ReviewActionApprove})
	assert.ErrorIs(t, err, apperrors.ErrSubmissionTerminal)
}

func TestReviewSubmissionUnknownAction(t *testing.T) {
	_, submissionRepo, campaignRepo, service := newReviewFixture()
	campaign := campaignRepo.put(&models.Campaign{BrandID: "brand-1", Status: models.CampaignStatusActive})
	submission := submissionRepo.put(&models.Submission{
		CampaignID: campaign.ID,
		CreatorID:  "creator-1",
		Status:     models.SubmissionStatusSubmitted,
	})

	_, err := service.ReviewSubmission(nil, submission.ID, "brand-1", models.UserRoleBrand, &dto.ReviewSubmissionRequest{Action: models.ReviewAction("escalate")})
	assert.ErrorIs(t, err, apperrors.ErrInvalidReviewAction)
}

func TestReviewSubmissionMissing(t *testing.T) {
	_, _, _, service := newReviewFixture()

	_, err := service.ReviewSubmission(nil, "missing", "brand-1", models.UserRoleBrand, &dto.ReviewSubmissionRequest{Action: models.ReviewActionApprove})
	assert.ErrorIs(t, err, apperrors.ErrSubmissionNotFound)
}

func TestStartCampaignReviewClaimsQueuedCampaign(t *testing.T) {
	_, _, campaignRepo, service := newReviewFixture()
	campaign := campaignRepo.put(&models.Campaign{
		BrandID:      "brand-1",
		ReviewStatus: models.ReviewStatusPendingReview,
	})

	require.NoError(t, service.StartCampaignReview(nil, campaign.ID))
	assert.Equal(t, models.ReviewStatusUnderReview, campaignRepo.campaigns[campaign.ID].ReviewStatus)

	// claiming twice conflicts
	err := service.StartCampaignReview(nil, campaign.ID)
	assert.ErrorIs(t, err, apperrors.ErrInvalidReviewTransition)
}

func TestStartCampaignReviewRejectsResolvedCampaign(t *testing.T) {
	_, _, campaignRepo, service := newReviewFixture()
	campaign := campaignRepo.put(&models.Campaign{
		BrandID:      "brand-1",
		ReviewStatus: models.ReviewStatusApproved,
	})

	err := service.StartCampaignReview(nil, campaign.ID)
	assert.ErrorIs(t, err, apperrors.ErrInvalidReviewTransition)
}

func TestDecideCampaignRequiresUnderReview(t *testing.T) {
	_, _, campaignRepo, service := newReviewFixture()
	campaign := campaignRepo.put(&models.Campaign{
		BrandID:      "brand-1",
		ReviewStatus: models.ReviewStatusPendingReview,
	})

	_, err := service.DecideCampaign(nil, campaign.ID, "admin-1", &dto.DecideCampaignRequest{Decision: models.ReviewStatusApproved})
	assert.ErrorIs(t, err, apperrors.ErrInvalidReviewTransition)
}

func TestListReviewQueueReturnsUnderReviewOnly(t *testing.T) {
	_, _, campaignRepo, service := newReviewFixture()
	campaignRepo.put(&models.Campaign{BrandID: "brand-1", ReviewStatus: models.ReviewStatusUnderReview})
	campaignRepo.put(&models.Campaign{BrandID: "brand-1", ReviewStatus: models.ReviewStatusPendingReview})
	campaignRepo.put(&models.Campaign{BrandID: "brand-1", ReviewStatus: models.ReviewStatusApproved})

	queue, err := service.ListReviewQueue(nil, 0)
	require.NoError(t, err)
	require.Len(t, queue, 1)
	assert.Equal(t, models.ReviewStatusUnderReview, queue[0].ReviewStatus)
}

func TestDecisionMappings(t *testing.T) {
	assert.Equal(t, models.ReviewDecisionApproved, decisionForSubmissionStatus(models.SubmissionStatusApproved))
	assert.Equal(t, models.ReviewDecisionRejected, decisionForSubmissionStatus(models.SubmissionStatusRejected))
	assert.Equal(t, models.ReviewDecisionNeedsReview, decisionForSubmissionStatus(models.SubmissionStatusRevisionRequested))

	assert.Equal(t, models.ReviewDecisionApproved, decisionForReviewStatus(models.ReviewStatusApproved))
	assert.Equal(t, models.ReviewDecisionRejected, decisionForReviewStatus(models.ReviewStatusRejected))
	assert.Equal(t, models.ReviewDecisionNeedsReview, decisionForReviewStatus(models.ReviewStatusNeedsRevision))

	assert.Equal(t, NotificationCampaignApproved, notificationTypeForDecision(models.ReviewStatusApproved))
	assert.Equal(t, NotificationCampaignRejected, notificationTypeForDecision(models.ReviewStatusRejected))
	assert.Equal(t, NotificationCampaignNeedsChanges, notificationTypeForDecision(models.ReviewStatusNeedsRevision))
}
