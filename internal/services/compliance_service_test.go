package services

import (
	"context"
	"errors"
	"testing"

	"brandlink_backend/internal/apperrors"
	"brandlink_backend/internal/models"
	"brandlink_backend/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type stubClassifier struct {
	verdict *ClassifierVerdict
	err     error
	calls   int
}

func (c *stubClassifier) ClassifyCampaign(ctx context.Context, input ClassifierInput) (*ClassifierVerdict, error) {
	c.calls++
	if c.err != nil {
		return nil, c.err
	}
	return c.verdict, nil
}

func newComplianceFixture(classifier ComplianceClassifier) ComplianceService {
	return NewComplianceService(
		classifier,
		repositories.NewCampaignRepository(),
		repositories.NewPlatformRuleRepository(),
		repositories.NewReviewRepository(),
	)
}

func seedQueuedCampaign(t *testing.T, db *gorm.DB, brandID string) *models.Campaign {
	t.Helper()
	campaign := &models.Campaign{
		BrandID:      brandID,
		Name:         "Energy drink push",
		CampaignType: models.CampaignTypeSingle,
		Currency:     "USD",
		Platforms:    datatypes.JSON(`["instagram"]`),
		Status:       models.CampaignStatusDraft,
		ReviewStatus: models.ReviewStatusPendingReview,
	}
	require.NoError(t, db.Create(campaign).Error)
	return campaign
}

func TestTriageCampaignClassifierFailureQueuesForHumans(t *testing.T) {
	db := newTestDB(t)
	brand := seedUser(t, db, models.UserRoleBrand)
	campaign := seedQueuedCampaign(t, db, brand.ID)

	classifier := &stubClassifier{err: errors.New("provider timeout")}
	service := newComplianceFixture(classifier)

	resp, err := service.TriageCampaign(context.Background(), db, campaign.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ReviewDecisionNeedsReview, resp.Decision)
	assert.Equal(t, 0.5, resp.Score)
	assert.Equal(t, models.ReviewStatusUnderReview, resp.ReviewStatus)
	assert.Equal(t, 2, resp.ReviewPriority)

	var reviews []models.Review
	require.NoError(t, db.Where("subject_id = ?", campaign.ID).Find(&reviews).Error)
	require.Len(t, reviews, 1)
	assert.Equal(t, models.ReviewDecisionNeedsReview, reviews[0].AIDecision)
	assert.Equal(t, models.ReviewDecisionPending, reviews[0].HumanDecision)
	assert.Equal(t, 0.5, reviews[0].AIScore)

	var fresh models.Campaign
	require.NoError(t, db.First(&fresh, "id = ?", campaign.ID).Error)
	assert.Equal(t, models.ReviewStatusUnderReview, fresh.ReviewStatus)
	assert.Equal(t, 2, fresh.ReviewPriority)
}

func TestTriageConfidentVerdictStaysInHumanQueue(t *testing.T) {
	db := newTestDB(t)
	brand := seedUser(t, db, models.UserRoleBrand)
	campaign := seedQueuedCampaign(t, db, brand.ID)

	classifier := &stubClassifier{verdict: &ClassifierVerdict{
		Decision: models.ReviewDecisionRejected,
		Score:    0.95,
		Summary:  "undisclosed paid promotion",
	}}
	service := newComplianceFixture(classifier)

	resp, err := service.TriageCampaign(context.Background(), db, campaign.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ReviewDecisionRejected, resp.Decision)
	assert.Equal(t, models.ReviewStatusUnderReview, resp.ReviewStatus)
	assert.Equal(t, 3, resp.ReviewPriority)

	// The verdict prioritizes the queue; the rejection itself is a human call.
	var fresh models.Campaign
	require.NoError(t, db.First(&fresh, "id = ?", campaign.ID).Error)
	assert.Equal(t, models.ReviewStatusUnderReview, fresh.ReviewStatus)
	assert.Equal(t, 3, fresh.ReviewPriority)

	var review models.Review
	require.NoError(t, db.First(&review, "subject_id = ?", campaign.ID).Error)
	assert.Equal(t, models.ReviewDecisionRejected, review.AIDecision)
	assert.Equal(t, models.ReviewDecisionPending, review.HumanDecision)
	assert.Equal(t, "undisclosed paid promotion", review.Summary)

	assert.Zero(t, countNotifications(t, db, brand.ID, NotificationCampaignRejected))
}

func TestTriageCampaignLostClaim(t *testing.T) {
	db := newTestDB(t)
	brand := seedUser(t, db, models.UserRoleBrand)
	campaign := seedQueuedCampaign(t, db, brand.ID)
	require.NoError(t, db.Model(&models.Campaign{}).
		Where("id = ?", campaign.ID).
		Update("review_status", models.ReviewStatusUnderReview).Error)

	classifier := &stubClassifier{}
	service := newComplianceFixture(classifier)

	_, err := service.TriageCampaign(context.Background(), db, campaign.ID)
	assert.ErrorIs(t, err, apperrors.ErrInvalidReviewTransition)
	assert.Zero(t, classifier.calls)
}
