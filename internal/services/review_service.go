package services

import (
	"encoding/json"
	"errors"
	"fmt"

	"brandlink_backend/internal/apperrors"
	"brandlink_backend/internal/models"
	"brandlink_backend/internal/repositories"
	"brandlink_backend/internal/services/dto"

	"gorm.io/gorm"
)

type ReviewService interface {
	// ReviewSubmission applies a reviewer decision to a submission. The audit
	// row, the status write and the creator notification commit together; a CAS
	// miss means another review already resolved the submission. Allowed for
	// the owning brand and for admins.
	ReviewSubmission(db *gorm.DB, submissionID, reviewerID string, reviewerRole models.UserRole, req *dto.ReviewSubmissionRequest) (*dto.ReviewResponse, error)

	// StartCampaignReview claims a queued campaign for a human reviewer.
	StartCampaignReview(db *gorm.DB, campaignID string) error
	DecideCampaign(db *gorm.DB, campaignID, reviewerID string, req *dto.DecideCampaignRequest) (*dto.ReviewResponse, error)
	ListReviewQueue(db *gorm.DB, limit int) ([]dto.CampaignResponse, error)
	ListSubjectReviews(db *gorm.DB, subjectType, subjectID string) ([]dto.ReviewResponse, error)
}

type reviewServiceImpl struct {
	reviewRepo       repositories.ReviewRepository
	submissionRepo   repositories.SubmissionRepository
	campaignRepo     repositories.CampaignRepository
	invitationRepo   repositories.InvitationRepository
	notificationRepo repositories.NotificationRepository
}

func NewReviewService(
	reviewRepo repositories.ReviewRepository,
	submissionRepo repositories.SubmissionRepository,
	campaignRepo repositories.CampaignRepository,
	invitationRepo repositories.InvitationRepository,
	notificationRepo repositories.NotificationRepository,
) ReviewService {
	return &reviewServiceImpl{
		reviewRepo:       reviewRepo,
		submissionRepo:   submissionRepo,
		campaignRepo:     campaignRepo,
		invitationRepo:   invitationRepo,
		notificationRepo: notificationRepo,
	}
}

func (s *reviewServiceImpl) ReviewSubmission(db *gorm.DB, submissionID, reviewerID string, reviewerRole models.UserRole, req *dto.ReviewSubmissionRequest) (*dto.ReviewResponse, error) {
	submission, err := s.submissionRepo.FindSubmissionByID(db, submissionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSubmissionNotFound
		}
		return nil, err
	}

	campaign, err := s.campaignRepo.FindCampaignByID(db, submission.CampaignID)
	if err != nil {
		return nil, err
	}
	if campaign.BrandID != reviewerID && reviewerRole != models.UserRoleAdmin {
		return nil, apperrors.ErrForbidden
	}

	if models.IsTerminalSubmissionStatus(submission.Status) {
		return nil, apperrors.ErrSubmissionTerminal
	}

	target, ok := models.SubmissionStatusForAction(req.Action)
	if !ok {
		return nil, apperrors.ErrInvalidReviewAction
	}
	if !models.CanTransitionSubmissionStatus(submission.Status, target) {
		return nil, apperrors.ErrReviewConflict
	}

	review := &models.Review{
		SubjectType:   models.ReviewSubjectSubmission,
		SubjectID:     submissionID,
		ReviewerID:    &reviewerID,
		Action:        string(req.Action),
		HumanDecision: decisionForSubmissionStatus(target),
		Feedback:      req.Feedback,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		moved, err := s.submissionRepo.TransitionStatus(tx, submissionID, submission.Status, target)
		if err != nil {
			return err
		}
		if !moved {
			// Параллельный ревью успел первым.
			return apperrors.ErrReviewConflict
		}

		if err := s.reviewRepo.CreateReview(tx, review); err != nil {
			return err
		}

		if target == models.SubmissionStatusApproved {
			invitation, err := s.invitationRepo.FindByPair(tx, submission.CampaignID, submission.CreatorID)
			if err == nil {
				if err := s.invitationRepo.IncrementApproved(tx, invitation.ID); err != nil {
					return err
				}
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
		}

		row := outboxRow(submission.CreatorID, NotificationContentReviewed,
			"Your content was reviewed",
			fmt.Sprintf("Your submission for campaign %q is now %s.", campaign.Name, target),
			map[string]interface{}{"campaign_id": campaign.ID, "submission_id": submissionID, "status": target}, 1)
		return s.notificationRepo.CreateNotification(tx, &row)
	})
	if err != nil {
		return nil, err
	}

	return toReviewResponse(review), nil
}

func (s *reviewServiceImpl) StartCampaignReview(db *gorm.DB, campaignID string) error {
	campaign, err := s.campaignRepo.FindCampaignByID(db, campaignID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCampaignNotFound
		}
		return err
	}

	if !models.CanTransitionReviewStatus(campaign.ReviewStatus, models.ReviewStatusUnderReview) {
		return apperrors.ErrInvalidReviewTransition
	}

	moved, err := s.campaignRepo.TransitionReviewStatus(db, campaignID, campaign.ReviewStatus, models.ReviewStatusUnderReview)
	if err != nil {
		return err
	}
	if !moved {
		return apperrors.ErrInvalidReviewTransition
	}
	return nil
}

func (s *reviewServiceImpl) DecideCampaign(db *gorm.DB, campaignID, reviewerID string, req *dto.DecideCampaignRequest) (*dto.ReviewResponse, error) {
	campaign, err := s.campaignRepo.FindCampaignByID(db, campaignID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCampaignNotFound
		}
		return nil, err
	}

	if !models.CanTransitionReviewStatus(campaign.ReviewStatus, req.Decision) {
		return nil, apperrors.ErrInvalidReviewTransition
	}

	review := &models.Review{
		SubjectType:   models.ReviewSubjectCampaign,
		SubjectID:     campaignID,
		ReviewerID:    &reviewerID,
		HumanDecision: decisionForReviewStatus(req.Decision),
		Summary:       req.Summary,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		moved, err := s.campaignRepo.TransitionReviewStatus(tx, campaignID, campaign.ReviewStatus, req.Decision)
		if err != nil {
			return err
		}
		if !moved {
			return apperrors.ErrInvalidReviewTransition
		}

		if err := s.reviewRepo.CreateReview(tx, review); err != nil {
			return err
		}

		row := outboxRow(campaign.BrandID, notificationTypeForDecision(req.Decision),
			"Campaign review finished",
			fmt.Sprintf("Review of campaign %q finished: %s.", campaign.Name, req.Decision),
			map[string]interface{}{"campaign_id": campaignID, "decision": req.Decision}, 1)
		return s.notificationRepo.CreateNotification(tx, &row)
	})
	if err != nil {
		return nil, err
	}

	return toReviewResponse(review), nil
}

func (s *reviewServiceImpl) ListReviewQueue(db *gorm.DB, limit int) ([]dto.CampaignResponse, error) {
	if limit <= 0 {
		limit = 50
	}
	campaigns, err := s.campaignRepo.FindCampaignsByReviewStatus(db, models.ReviewStatusUnderReview, limit)
	if err != nil {
		return nil, err
	}
	responses := make([]dto.CampaignResponse, 0, len(campaigns))
	for i := range campaigns {
		responses = append(responses, *toCampaignResponse(&campaigns[i]))
	}
	return responses, nil
}

func (s *reviewServiceImpl) ListSubjectReviews(db *gorm.DB, subjectType, subjectID string) ([]dto.ReviewResponse, error) {
	reviews, err := s.reviewRepo.FindReviewsBySubject(db, subjectType, subjectID)
	if err != nil {
		return nil, err
	}
	responses := make([]dto.ReviewResponse, 0, len(reviews))
	for i := range reviews {
		responses = append(responses, *toReviewResponse(&reviews[i]))
	}
	return responses, nil
}

func decisionForSubmissionStatus(status models.SubmissionStatus) models.ReviewDecision {
	switch status {
	case models.SubmissionStatusApproved:
		return models.ReviewDecisionApproved
	case models.SubmissionStatusRejected:
		return models.ReviewDecisionRejected
	default:
		return models.ReviewDecisionNeedsReview
	}
}

func decisionForReviewStatus(status models.CampaignReviewStatus) models.ReviewDecision {
	switch status {
	case models.ReviewStatusApproved:
		return models.ReviewDecisionApproved
	case models.ReviewStatusRejected:
		return models.ReviewDecisionRejected
	default:
		return models.ReviewDecisionNeedsReview
	}
}

func notificationTypeForDecision(decision models.CampaignReviewStatus) string {
	switch decision {
	case models.ReviewStatusApproved:
		return NotificationCampaignApproved
	case models.ReviewStatusRejected:
		return NotificationCampaignRejected
	default:
		return NotificationCampaignNeedsChanges
	}
}

func toReviewResponse(review *models.Review) *dto.ReviewResponse {
	resp := &dto.ReviewResponse{
		ID:            review.ID,
		SubjectType:   review.SubjectType,
		SubjectID:     review.SubjectID,
		ReviewerID:    review.ReviewerID,
		Action:        review.Action,
		AIDecision:    review.AIDecision,
		HumanDecision: review.HumanDecision,
		AIScore:       review.AIScore,
		Summary:       review.Summary,
		Feedback:      review.Feedback,
		CreatedAt:     review.CreatedAt,
	}
	if len(review.AIIssues) > 0 {
		_ = json.Unmarshal(review.AIIssues, &resp.AIIssues)
	}
	if len(review.AIRecommendations) > 0 {
		_ = json.Unmarshal(review.AIRecommendations, &resp.AIRecommendations)
	}
	return resp
}
