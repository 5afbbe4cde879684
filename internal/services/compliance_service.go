package services

import (
	"context"
	"encoding/json"
	"errors"

	"brandlink_backend/internal/apperrors"
	"brandlink_backend/internal/logger"
	"brandlink_backend/internal/models"
	"brandlink_backend/internal/repositories"
	"brandlink_backend/internal/services/dto"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ComplianceService interface {
	// TriageCampaign runs the AI pass over one queued campaign. The claim is a
	// CAS from pending_review, so two concurrent triage calls cannot process
	// the same campaign twice. The verdict only prioritizes the human queue;
	// the campaign stays in under_review until a reviewer decides.
	TriageCampaign(ctx context.Context, db *gorm.DB, campaignID string) (*dto.TriageResponse, error)
	// TriagePending drains the review queue, one campaign at a time.
	TriagePending(ctx context.Context, db *gorm.DB, limit int) (int, error)
}

type complianceServiceImpl struct {
	classifier   ComplianceClassifier
	campaignRepo repositories.CampaignRepository
	ruleRepo     repositories.PlatformRuleRepository
	reviewRepo   repositories.ReviewRepository
}

func NewComplianceService(
	classifier ComplianceClassifier,
	campaignRepo repositories.CampaignRepository,
	ruleRepo repositories.PlatformRuleRepository,
	reviewRepo repositories.ReviewRepository,
) ComplianceService {
	return &complianceServiceImpl{
		classifier:   classifier,
		campaignRepo: campaignRepo,
		ruleRepo:     ruleRepo,
		reviewRepo:   reviewRepo,
	}
}

func (s *complianceServiceImpl) TriageCampaign(ctx context.Context, db *gorm.DB, campaignID string) (*dto.TriageResponse, error) {
	campaign, err := s.campaignRepo.FindCampaignByID(db, campaignID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCampaignNotFound
		}
		return nil, err
	}

	claimed, err := s.campaignRepo.TransitionReviewStatus(db, campaignID, models.ReviewStatusPendingReview, models.ReviewStatusUnderReview)
	if err != nil {
		return nil, err
	}
	if !claimed {
		return nil, apperrors.ErrInvalidReviewTransition
	}

	var platforms []string
	if len(campaign.Platforms) > 0 {
		_ = json.Unmarshal(campaign.Platforms, &platforms)
	}

	rules, err := s.ruleRepo.FindActiveByPlatforms(db, platforms)
	if err != nil {
		return nil, err
	}

	verdict, err := s.classifier.ClassifyCampaign(ctx, ClassifierInput{
		Name:        campaign.Name,
		Description: campaign.Description,
		Platforms:   platforms,
		Rules:       rules,
	})
	if err != nil {
		// Провайдер недоступен - кампания остается в очереди людей.
		logger.CtxWarn(ctx, "compliance classifier failed, leaving campaign for human review",
			"campaign_id", campaignID, "error", err)
		verdict = &ClassifierVerdict{Decision: models.ReviewDecisionNeedsReview, Score: 0.5}
	}

	priority := priorityForScore(verdict.Score)
	review := &models.Review{
		SubjectType:   models.ReviewSubjectCampaign,
		SubjectID:     campaignID,
		AIDecision:    verdict.Decision,
		HumanDecision: models.ReviewDecisionPending,
		AIScore:       verdict.Score,
		Summary:       verdict.Summary,
	}
	if len(verdict.Issues) > 0 {
		if payload, err := json.Marshal(verdict.Issues); err == nil {
			review.AIIssues = datatypes.JSON(payload)
		}
	}
	if len(verdict.Recommendations) > 0 {
		if payload, err := json.Marshal(verdict.Recommendations); err == nil {
			review.AIRecommendations = datatypes.JSON(payload)
		}
	}

	// Триаж никогда не решает за человека: кампания остается в under_review,
	// вердикт лишь выставляет приоритет очереди и ложится в аудит.
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Campaign{}).
			Where("id = ?", campaignID).
			Update("review_priority", priority).Error; err != nil {
			return err
		}
		return s.reviewRepo.CreateReview(tx, review)
	})
	if err != nil {
		return nil, err
	}

	return &dto.TriageResponse{
		CampaignID:     campaignID,
		Decision:       verdict.Decision,
		Score:          verdict.Score,
		Issues:         verdict.Issues,
		Summary:        verdict.Summary,
		ReviewStatus:   models.ReviewStatusUnderReview,
		ReviewPriority: priority,
	}, nil
}

func (s *complianceServiceImpl) TriagePending(ctx context.Context, db *gorm.DB, limit int) (int, error) {
	if limit <= 0 {
		limit = 20
	}
	campaigns, err := s.campaignRepo.FindCampaignsByReviewStatus(db, models.ReviewStatusPendingReview, limit)
	if err != nil {
		return 0, err
	}

	processed := 0
	for i := range campaigns {
		if ctx.Err() != nil {
			return processed, ctx.Err()
		}
		if _, err := s.TriageCampaign(ctx, db, campaigns[i].ID); err != nil {
			// Проигранный CAS - кампанию забрал другой инстанс, идем дальше.
			if apperrors.Is(err, apperrors.ErrInvalidReviewTransition) {
				continue
			}
			logger.CtxError(ctx, "campaign triage failed", "campaign_id", campaigns[i].ID, "error", err)
			continue
		}
		processed++
	}
	return processed, nil
}

// priorityForScore buckets the violation confidence into queue priorities so
// reviewers see the riskiest campaigns first.
func priorityForScore(score float64) int {
	switch {
	case score >= 0.8:
		return 3
	case score >= 0.5:
		return 2
	case score >= 0.2:
		return 1
	default:
		return 0
	}
}
