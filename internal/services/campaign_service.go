package services

import (
	"encoding/json"
	"errors"
	"fmt"

	"brandlink_backend/internal/apperrors"
	"brandlink_backend/internal/models"
	"brandlink_backend/internal/repositories"
	"brandlink_backend/internal/services/dto"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type CampaignService interface {
	CreateCampaign(db *gorm.DB, req *dto.CreateCampaignRequest) (*dto.CampaignResponse, error)
	GetCampaign(db *gorm.DB, campaignID, requesterID string, requesterRole models.UserRole) (*dto.CampaignResponse, error)
	ListBrandCampaigns(db *gorm.DB, brandID string) ([]dto.CampaignResponse, error)
	UpdateCampaign(db *gorm.DB, campaignID, brandID string, req *dto.UpdateCampaignRequest) (*dto.CampaignResponse, error)
	DeleteCampaign(db *gorm.DB, campaignID, brandID string) error

	// PublishCampaign moves an approved draft into active.
	PublishCampaign(db *gorm.DB, campaignID, brandID string) (*dto.CampaignResponse, error)
	// ResubmitCampaign returns a needs_revision campaign to the review queue.
	ResubmitCampaign(db *gorm.DB, campaignID, brandID string) (*dto.CampaignResponse, error)
	CancelCampaign(db *gorm.DB, campaignID, brandID string) (*dto.CampaignResponse, error)
	// LaunchCampaign is the go-live orchestrator: it refuses while content is
	// still pending, moves active to live and enqueues notifications for the
	// brand and every creator with approved content, all in one transaction.
	LaunchCampaign(db *gorm.DB, campaignID, brandID string) (*dto.LaunchResponse, error)

	GetCampaignStats(db *gorm.DB, brandID string) (*dto.CampaignStatsResponse, error)

	CreateBrief(db *gorm.DB, brandID string, req *dto.CreateBriefRequest) (*dto.BriefResponse, error)
	ListBriefs(db *gorm.DB, campaignID string) ([]dto.BriefResponse, error)
}

type campaignServiceImpl struct {
	campaignRepo     repositories.CampaignRepository
	submissionRepo   repositories.SubmissionRepository
	notificationRepo repositories.NotificationRepository
}

func NewCampaignService(
	campaignRepo repositories.CampaignRepository,
	submissionRepo repositories.SubmissionRepository,
	notificationRepo repositories.NotificationRepository,
) CampaignService {
	return &campaignServiceImpl{
		campaignRepo:     campaignRepo,
		submissionRepo:   submissionRepo,
		notificationRepo: notificationRepo,
	}
}

func (s *campaignServiceImpl) CreateCampaign(db *gorm.DB, req *dto.CreateCampaignRequest) (*dto.CampaignResponse, error) {
	platformsJSON, err := json.Marshal(req.Platforms)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal platforms: %w", err)
	}

	campaignType := req.CampaignType
	if campaignType == "" {
		campaignType = models.CampaignTypeSingle
	}
	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}

	campaign := &models.Campaign{
		BrandID:      req.BrandID,
		Name:         req.Name,
		Description:  req.Description,
		CampaignType: campaignType,
		Budget:       req.Budget,
		Currency:     currency,
		Platforms:    datatypes.JSON(platformsJSON),
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Status:       models.CampaignStatusDraft,
		ReviewStatus: models.ReviewStatusPendingReview,
	}

	if err := s.campaignRepo.CreateCampaign(db, campaign); err != nil {
		return nil, err
	}
	return toCampaignResponse(campaign), nil
}

func (s *campaignServiceImpl) GetCampaign(db *gorm.DB, campaignID, requesterID string, requesterRole models.UserRole) (*dto.CampaignResponse, error) {
	campaign, err := s.findCampaign(db, campaignID)
	if err != nil {
		return nil, err
	}

	// Бренд видит только свои кампании; креаторы и админы - любые.
	if requesterRole == models.UserRoleBrand && campaign.BrandID != requesterID {
		return nil, apperrors.ErrForbidden
	}
	return toCampaignResponse(campaign), nil
}

func (s *campaignServiceImpl) ListBrandCampaigns(db *gorm.DB, brandID string) ([]dto.CampaignResponse, error) {
	campaigns, err := s.campaignRepo.FindCampaignsByBrand(db, brandID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.CampaignResponse, 0, len(campaigns))
	for i := range campaigns {
		responses = append(responses, *toCampaignResponse(&campaigns[i]))
	}
	return responses, nil
}

func (s *campaignServiceImpl) UpdateCampaign(db *gorm.DB, campaignID, brandID string, req *dto.UpdateCampaignRequest) (*dto.CampaignResponse, error) {
	campaign, err := s.findOwnedCampaign(db, campaignID, brandID)
	if err != nil {
		return nil, err
	}

	// Content edits are only allowed before the campaign goes active.
	if campaign.Status != models.CampaignStatusDraft {
		return nil, apperrors.ErrInvalidCampaignStatus
	}

	if req.Name != nil {
		campaign.Name = *req.Name
	}
	if req.Description != nil {
		campaign.Description = *req.Description
	}
	if req.Budget != nil {
		campaign.Budget = *req.Budget
	}
	if len(req.Platforms) > 0 {
		platformsJSON, err := json.Marshal(req.Platforms)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal platforms: %w", err)
		}
		campaign.Platforms = datatypes.JSON(platformsJSON)
	}
	if req.StartDate != nil {
		campaign.StartDate = req.StartDate
	}
	if req.EndDate != nil {
		campaign.EndDate = req.EndDate
	}

	if err := s.campaignRepo.UpdateCampaign(db, campaign); err != nil {
		return nil, err
	}
	return toCampaignResponse(campaign), nil
}

func (s *campaignServiceImpl) DeleteCampaign(db *gorm.DB, campaignID, brandID string) error {
	campaign, err := s.findOwnedCampaign(db, campaignID, brandID)
	if err != nil {
		return err
	}
	if campaign.Status != models.CampaignStatusDraft {
		return apperrors.ErrInvalidCampaignStatus
	}
	return s.campaignRepo.DeleteCampaign(db, campaignID)
}

func (s *campaignServiceImpl) PublishCampaign(db *gorm.DB, campaignID, brandID string) (*dto.CampaignResponse, error) {
	campaign, err := s.findOwnedCampaign(db, campaignID, brandID)
	if err != nil {
		return nil, err
	}

	if campaign.ReviewStatus != models.ReviewStatusApproved {
		return nil, apperrors.ErrCampaignNotApproved
	}
	if !models.CanTransitionCampaignStatus(campaign.Status, models.CampaignStatusActive) {
		return nil, apperrors.ErrInvalidCampaignStatus
	}

	moved, err := s.campaignRepo.TransitionStatus(db, campaignID, campaign.Status, models.CampaignStatusActive)
	if err != nil {
		return nil, err
	}
	if !moved {
		return nil, apperrors.ErrInvalidCampaignStatus
	}

	campaign.Status = models.CampaignStatusActive
	return toCampaignResponse(campaign), nil
}

func (s *campaignServiceImpl) ResubmitCampaign(db *gorm.DB, campaignID, brandID string) (*dto.CampaignResponse, error) {
	campaign, err := s.findOwnedCampaign(db, campaignID, brandID)
	if err != nil {
		return nil, err
	}

	if !models.CanTransitionReviewStatus(campaign.ReviewStatus, models.ReviewStatusPendingReview) {
		return nil, apperrors.ErrInvalidReviewTransition
	}

	moved, err := s.campaignRepo.TransitionReviewStatus(db, campaignID, campaign.ReviewStatus, models.ReviewStatusPendingReview)
	if err != nil {
		return nil, err
	}
	if !moved {
		return nil, apperrors.ErrInvalidReviewTransition
	}

	campaign.ReviewStatus = models.ReviewStatusPendingReview
	return toCampaignResponse(campaign), nil
}

func (s *campaignServiceImpl) CancelCampaign(db *gorm.DB, campaignID, brandID string) (*dto.CampaignResponse, error) {
	campaign, err := s.findOwnedCampaign(db, campaignID, brandID)
	if err != nil {
		return nil, err
	}

	if !models.CanTransitionCampaignStatus(campaign.Status, models.CampaignStatusCancelled) {
		return nil, apperrors.ErrInvalidCampaignStatus
	}

	moved, err := s.campaignRepo.TransitionStatus(db, campaignID, campaign.Status, models.CampaignStatusCancelled)
	if err != nil {
		return nil, err
	}
	if !moved {
		return nil, apperrors.ErrInvalidCampaignStatus
	}

	campaign.Status = models.CampaignStatusCancelled
	return toCampaignResponse(campaign), nil
}

func (s *campaignServiceImpl) LaunchCampaign(db *gorm.DB, campaignID, brandID string) (*dto.LaunchResponse, error) {
	campaign, err := s.findOwnedCampaign(db, campaignID, brandID)
	if err != nil {
		return nil, err
	}

	if campaign.Status != models.CampaignStatusActive {
		return nil, apperrors.ErrInvalidCampaignStatus
	}

	counts, err := s.submissionRepo.CountByCampaign(db, campaignID)
	if err != nil {
		return nil, err
	}
	if counts.Pending > 0 || counts.Approved == 0 {
		return nil, apperrors.ErrCampaignNotLaunchReady
	}

	creatorIDs, err := s.submissionRepo.FindApprovedCreators(db, campaignID)
	if err != nil {
		return nil, err
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		moved, err := s.campaignRepo.TransitionStatus(tx, campaignID, models.CampaignStatusActive, models.CampaignStatusLive)
		if err != nil {
			return err
		}
		if !moved {
			// Кто-то успел изменить статус между проверкой и записью.
			return apperrors.ErrInvalidCampaignStatus
		}
		if err := s.campaignRepo.MarkLaunched(tx, campaignID); err != nil {
			return err
		}

		data := map[string]interface{}{"campaign_id": campaignID, "campaign_name": campaign.Name}
		rows := make([]models.Notification, 0, len(creatorIDs)+1)
		rows = append(rows, outboxRow(campaign.BrandID, NotificationCampaignLaunched,
			"Campaign is live", fmt.Sprintf("Your campaign %q is now live.", campaign.Name), data, 1))
		for _, creatorID := range creatorIDs {
			rows = append(rows, outboxRow(creatorID, NotificationCampaignLaunched,
				"Campaign is live", fmt.Sprintf("Campaign %q you contributed to is now live.", campaign.Name), data, 1))
		}
		return s.notificationRepo.CreateNotifications(tx, rows)
	})
	if err != nil {
		return nil, err
	}

	campaign.Status = models.CampaignStatusLive
	return &dto.LaunchResponse{
		Campaign:         *toCampaignResponse(campaign),
		ApprovedCreators: creatorIDs,
		// The brand's own row is bookkeeping, not an outreach.
		NotifiedCount: len(creatorIDs),
	}, nil
}

func (s *campaignServiceImpl) GetCampaignStats(db *gorm.DB, brandID string) (*dto.CampaignStatsResponse, error) {
	stats, err := s.campaignRepo.GetCampaignStats(db, brandID)
	if err != nil {
		return nil, err
	}
	return &dto.CampaignStatsResponse{
		Total:     stats.Total,
		Draft:     stats.Draft,
		Active:    stats.Active,
		Live:      stats.Live,
		Completed: stats.Completed,
		Cancelled: stats.Cancelled,
	}, nil
}

func (s *campaignServiceImpl) CreateBrief(db *gorm.DB, brandID string, req *dto.CreateBriefRequest) (*dto.BriefResponse, error) {
	campaign, err := s.findOwnedCampaign(db, req.CampaignID, brandID)
	if err != nil {
		return nil, err
	}
	if campaign.Status != models.CampaignStatusDraft && campaign.Status != models.CampaignStatusActive {
		return nil, apperrors.ErrInvalidCampaignStatus
	}

	brief := &models.Brief{
		CampaignID:   req.CampaignID,
		Title:        req.Title,
		Requirements: req.Requirements,
		Platform:     req.Platform,
		ContentType:  req.ContentType,
	}
	if err := s.campaignRepo.CreateBrief(db, brief); err != nil {
		return nil, err
	}
	return toBriefResponse(brief), nil
}

func (s *campaignServiceImpl) ListBriefs(db *gorm.DB, campaignID string) ([]dto.BriefResponse, error) {
	briefs, err := s.campaignRepo.FindBriefsByCampaign(db, campaignID)
	if err != nil {
		return nil, err
	}
	responses := make([]dto.BriefResponse, 0, len(briefs))
	for i := range briefs {
		responses = append(responses, *toBriefResponse(&briefs[i]))
	}
	return responses, nil
}

func (s *campaignServiceImpl) findCampaign(db *gorm.DB, campaignID string) (*models.Campaign, error) {
	campaign, err := s.campaignRepo.FindCampaignByID(db, campaignID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCampaignNotFound
		}
		return nil, err
	}
	return campaign, nil
}

func (s *campaignServiceImpl) findOwnedCampaign(db *gorm.DB, campaignID, brandID string) (*models.Campaign, error) {
	campaign, err := s.findCampaign(db, campaignID)
	if err != nil {
		return nil, err
	}
	if campaign.BrandID != brandID {
		return nil, apperrors.ErrForbidden
	}
	return campaign, nil
}

func toCampaignResponse(campaign *models.Campaign) *dto.CampaignResponse {
	var platforms []string
	if len(campaign.Platforms) > 0 {
		_ = json.Unmarshal(campaign.Platforms, &platforms)
	}

	return &dto.CampaignResponse{
		ID:             campaign.ID,
		BrandID:        campaign.BrandID,
		Name:           campaign.Name,
		Description:    campaign.Description,
		CampaignType:   campaign.CampaignType,
		Budget:         campaign.Budget,
		Currency:       campaign.Currency,
		Platforms:      platforms,
		StartDate:      campaign.StartDate,
		EndDate:        campaign.EndDate,
		Status:         campaign.Status,
		ReviewStatus:   campaign.ReviewStatus,
		ReviewPriority: campaign.ReviewPriority,
		LaunchedAt:     campaign.LaunchedAt,
		CreatedAt:      campaign.CreatedAt,
		UpdatedAt:      campaign.UpdatedAt,
	}
}

func toBriefResponse(brief *models.Brief) *dto.BriefResponse {
	return &dto.BriefResponse{
		ID:           brief.ID,
		CampaignID:   brief.CampaignID,
		Title:        brief.Title,
		Requirements: brief.Requirements,
		Platform:     brief.Platform,
		ContentType:  brief.ContentType,
		CreatedAt:    brief.CreatedAt,
	}
}
