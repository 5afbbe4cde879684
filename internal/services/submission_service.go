package services

import (
	"errors"
	"fmt"

	"brandlink_backend/internal/apperrors"
	"brandlink_backend/internal/models"
	"brandlink_backend/internal/repositories"
	"brandlink_backend/internal/services/dto"

	"gorm.io/gorm"
)

// dealAllowsSubmission lists deal statuses under which a creator may upload
// content for the campaign.
func dealAllowsSubmission(status models.DealStatus) bool {
	switch status {
	case models.DealStatusAccepted, models.DealStatusContracted,
		models.DealStatusInProgress, models.DealStatusSubmitted:
		return true
	}
	return false
}

type SubmissionService interface {
	CreateSubmission(db *gorm.DB, req *dto.CreateSubmissionRequest) (*dto.SubmissionResponse, error)
	// Resubmit re-opens a submission the brand sent back for changes.
	Resubmit(db *gorm.DB, submissionID, creatorID string, req *dto.ResubmitRequest) (*dto.SubmissionResponse, error)
	ListCampaignSubmissions(db *gorm.DB, campaignID, brandID string) ([]dto.SubmissionResponse, error)
	ListCreatorSubmissions(db *gorm.DB, creatorID, campaignID string) ([]dto.SubmissionResponse, error)
	GetSubmissionCounts(db *gorm.DB, campaignID string) (*dto.SubmissionCountsResponse, error)
}

type submissionServiceImpl struct {
	submissionRepo   repositories.SubmissionRepository
	invitationRepo   repositories.InvitationRepository
	campaignRepo     repositories.CampaignRepository
	notificationRepo repositories.NotificationRepository
}

func NewSubmissionService(
	submissionRepo repositories.SubmissionRepository,
	invitationRepo repositories.InvitationRepository,
	campaignRepo repositories.CampaignRepository,
	notificationRepo repositories.NotificationRepository,
) SubmissionService {
	return &submissionServiceImpl{
		submissionRepo:   submissionRepo,
		invitationRepo:   invitationRepo,
		campaignRepo:     campaignRepo,
		notificationRepo: notificationRepo,
	}
}

func (s *submissionServiceImpl) CreateSubmission(db *gorm.DB, req *dto.CreateSubmissionRequest) (*dto.SubmissionResponse, error) {
	campaign, err := s.campaignRepo.FindCampaignByID(db, req.CampaignID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCampaignNotFound
		}
		return nil, err
	}
	if campaign.Status != models.CampaignStatusActive {
		return nil, apperrors.ErrInvalidCampaignStatus
	}

	invitation, err := s.invitationRepo.FindByPair(db, req.CampaignID, req.CreatorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCreatorNotAssigned
		}
		return nil, err
	}
	if !dealAllowsSubmission(invitation.Status) {
		return nil, apperrors.ErrCreatorNotAssigned
	}

	brief, err := s.campaignRepo.FindBriefByID(db, req.BriefID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBriefNotFound
		}
		return nil, err
	}
	if brief.CampaignID != req.CampaignID {
		return nil, apperrors.ErrInvalidBrief
	}

	submission := &models.Submission{
		CampaignID:  req.CampaignID,
		CreatorID:   req.CreatorID,
		BriefID:     req.BriefID,
		FileURL:     req.FileURL,
		FileName:    req.FileName,
		FileSize:    req.FileSize,
		ContentType: req.ContentType,
		Platform:    req.Platform,
		Caption:     req.Caption,
		Status:      models.SubmissionStatusSubmitted,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := s.submissionRepo.CreateSubmission(tx, submission); err != nil {
			return err
		}
		if err := s.invitationRepo.IncrementSubmitted(tx, invitation.ID); err != nil {
			return err
		}

		// Первая отправка двигает сделку вперед; повторные оставляют как есть.
		if models.CanTransitionDealStatus(invitation.Status, models.DealStatusSubmitted) {
			if _, err := s.invitationRepo.TransitionStatus(tx, invitation.ID, invitation.Status, models.DealStatusSubmitted); err != nil {
				return err
			}
		}

		row := outboxRow(campaign.BrandID, NotificationContentSubmitted,
			"New content submitted",
			fmt.Sprintf("New content was submitted for campaign %q.", campaign.Name),
			map[string]interface{}{"campaign_id": campaign.ID, "submission_id": submission.ID}, 0)
		return s.notificationRepo.CreateNotification(tx, &row)
	})
	if err != nil {
		return nil, err
	}

	resp := dto.ToSubmissionResponse(submission)
	return &resp, nil
}

func (s *submissionServiceImpl) Resubmit(db *gorm.DB, submissionID, creatorID string, req *dto.ResubmitRequest) (*dto.SubmissionResponse, error) {
	submission, err := s.findSubmission(db, submissionID)
	if err != nil {
		return nil, err
	}
	if submission.CreatorID != creatorID {
		return nil, apperrors.ErrForbidden
	}

	if models.IsTerminalSubmissionStatus(submission.Status) {
		return nil, apperrors.ErrSubmissionTerminal
	}
	if !models.CanTransitionSubmissionStatus(submission.Status, models.SubmissionStatusSubmitted) {
		return nil, apperrors.ErrReviewConflict
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		moved, err := s.submissionRepo.TransitionStatus(tx, submissionID, submission.Status, models.SubmissionStatusSubmitted)
		if err != nil {
			return err
		}
		if !moved {
			return apperrors.ErrReviewConflict
		}

		return tx.Model(&models.Submission{}).
			Where("id = ?", submissionID).
			Updates(map[string]interface{}{
				"file_url": req.FileURL,
				"caption":  req.Caption,
			}).Error
	})
	if err != nil {
		return nil, err
	}

	submission.Status = models.SubmissionStatusSubmitted
	submission.FileURL = req.FileURL
	submission.Caption = req.Caption
	submission.Revisions++
	resp := dto.ToSubmissionResponse(submission)
	return &resp, nil
}

func (s *submissionServiceImpl) ListCampaignSubmissions(db *gorm.DB, campaignID, brandID string) ([]dto.SubmissionResponse, error) {
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

	submissions, err := s.submissionRepo.FindByCampaign(db, campaignID)
	if err != nil {
		return nil, err
	}
	return toSubmissionResponses(submissions), nil
}

func (s *submissionServiceImpl) ListCreatorSubmissions(db *gorm.DB, creatorID, campaignID string) ([]dto.SubmissionResponse, error) {
	submissions, err := s.submissionRepo.FindByCreatorAndCampaign(db, creatorID, campaignID)
	if err != nil {
		return nil, err
	}
	return toSubmissionResponses(submissions), nil
}

func (s *submissionServiceImpl) GetSubmissionCounts(db *gorm.DB, campaignID string) (*dto.SubmissionCountsResponse, error) {
	counts, err := s.submissionRepo.CountByCampaign(db, campaignID)
	if err != nil {
		return nil, err
	}
	return &dto.SubmissionCountsResponse{
		Total:    counts.Total,
		Pending:  counts.Pending,
		Approved: counts.Approved,
		Rejected: counts.Rejected,
	}, nil
}

func (s *submissionServiceImpl) findSubmission(db *gorm.DB, submissionID string) (*models.Submission, error) {
	submission, err := s.submissionRepo.FindSubmissionByID(db, submissionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSubmissionNotFound
		}
		return nil, err
	}
	return submission, nil
}

func toSubmissionResponses(submissions []models.Submission) []dto.SubmissionResponse {
	responses := make([]dto.SubmissionResponse, 0, len(submissions))
	for i := range submissions {
		responses = append(responses, dto.ToSubmissionResponse(&submissions[i]))
	}
	return responses
}
