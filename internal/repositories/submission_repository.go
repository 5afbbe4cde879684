package repositories

import (
	"brandlink_backend/internal/models"

	"gorm.io/gorm"
)

// SubmissionCounts - агрегаты по кампании для проверки готовности к запуску.
type SubmissionCounts struct {
	Total    int64
	Pending  int64
	Approved int64
	Rejected int64
}

type SubmissionRepository interface {
	CreateSubmission(db *gorm.DB, submission *models.Submission) error
	FindSubmissionByID(db *gorm.DB, id string) (*models.Submission, error)
	FindByCampaign(db *gorm.DB, campaignID string) ([]models.Submission, error)
	FindByCreatorAndCampaign(db *gorm.DB, creatorID, campaignID string) ([]models.Submission, error)

	// TransitionStatus - CAS; при возврате в 'submitted' увеличивается счётчик revisions.
	TransitionStatus(db *gorm.DB, id string, from, to models.SubmissionStatus) (bool, error)
	CountByCampaign(db *gorm.DB, campaignID string) (*SubmissionCounts, error)
	FindApprovedCreators(db *gorm.DB, campaignID string) ([]string, error)
}

type SubmissionRepositoryImpl struct{}

func NewSubmissionRepository() SubmissionRepository {
	return &SubmissionRepositoryImpl{}
}

func (r *SubmissionRepositoryImpl) CreateSubmission(db *gorm.DB, submission *models.Submission) error {
	return db.Create(submission).Error
}

func (r *SubmissionRepositoryImpl) FindSubmissionByID(db *gorm.DB, id string) (*models.Submission, error) {
	var submission models.Submission
	if err := db.First(&submission, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &submission, nil
}

func (r *SubmissionRepositoryImpl) FindByCampaign(db *gorm.DB, campaignID string) ([]models.Submission, error) {
	var submissions []models.Submission
	err := db.Preload("Creator").
		Where("campaign_id = ?", campaignID).
		Order("created_at DESC").
		Find(&submissions).Error
	return submissions, err
}

func (r *SubmissionRepositoryImpl) FindByCreatorAndCampaign(db *gorm.DB, creatorID, campaignID string) ([]models.Submission, error) {
	var submissions []models.Submission
	err := db.Where("creator_id = ? AND campaign_id = ?", creatorID, campaignID).
		Order("created_at DESC").
		Find(&submissions).Error
	return submissions, err
}

func (r *SubmissionRepositoryImpl) TransitionStatus(db *gorm.DB, id string, from, to models.SubmissionStatus) (bool, error) {
	updates := map[string]interface{}{"status": to}
	if to == models.SubmissionStatusSubmitted {
		updates["revisions"] = gorm.Expr("revisions + 1")
	}

	result := db.Model(&models.Submission{}).
		Where("id = ? AND status = ?", id, from).
		Updates(updates)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *SubmissionRepositoryImpl) CountByCampaign(db *gorm.DB, campaignID string) (*SubmissionCounts, error) {
	var rows []struct {
		Status models.SubmissionStatus
		Count  int64
	}
	err := db.Model(&models.Submission{}).
		Select("status, count(*) as count").
		Where("campaign_id = ?", campaignID).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := &SubmissionCounts{}
	for _, row := range rows {
		counts.Total += row.Count
		switch row.Status {
		case models.SubmissionStatusSubmitted:
			counts.Pending += row.Count
		case models.SubmissionStatusApproved:
			counts.Approved += row.Count
		case models.SubmissionStatusRejected:
			counts.Rejected += row.Count
		}
	}
	return counts, nil
}

func (r *SubmissionRepositoryImpl) FindApprovedCreators(db *gorm.DB, campaignID string) ([]string, error) {
	var creatorIDs []string
	err := db.Model(&models.Submission{}).
		Distinct("creator_id").
		Where("campaign_id = ? AND status = ?", campaignID, models.SubmissionStatusApproved).
		Pluck("creator_id", &creatorIDs).Error
	return creatorIDs, err
}
