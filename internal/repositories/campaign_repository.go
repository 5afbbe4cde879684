package repositories

import (
	"brandlink_backend/internal/models"

	"gorm.io/gorm"
)

// CampaignStats - агрегаты по кампаниям бренда
type CampaignStats struct {
	Total     int64 `json:"total"`
	Draft     int64 `json:"draft"`
	Active    int64 `json:"active"`
	Live      int64 `json:"live"`
	Completed int64 `json:"completed"`
	Cancelled int64 `json:"cancelled"`
}

type CampaignRepository interface {
	CreateCampaign(db *gorm.DB, campaign *models.Campaign) error
	FindCampaignByID(db *gorm.DB, id string) (*models.Campaign, error)
	FindCampaignsByBrand(db *gorm.DB, brandID string) ([]models.Campaign, error)
	FindCampaignsByReviewStatus(db *gorm.DB, status models.CampaignReviewStatus, limit int) ([]models.Campaign, error)
	UpdateCampaign(db *gorm.DB, campaign *models.Campaign) error
	DeleteCampaign(db *gorm.DB, id string) error

	// TransitionStatus / TransitionReviewStatus - атомарный compare-and-swap:
	// возвращают false если текущий статус уже не from.
	TransitionStatus(db *gorm.DB, id string, from, to models.CampaignStatus) (bool, error)
	TransitionReviewStatus(db *gorm.DB, id string, from, to models.CampaignReviewStatus) (bool, error)
	MarkLaunched(db *gorm.DB, id string) error

	GetCampaignStats(db *gorm.DB, brandID string) (*CampaignStats, error)

	// Briefs
	CreateBrief(db *gorm.DB, brief *models.Brief) error
	FindBriefByID(db *gorm.DB, id string) (*models.Brief, error)
	FindBriefsByCampaign(db *gorm.DB, campaignID string) ([]models.Brief, error)
}

type CampaignRepositoryImpl struct{}

func NewCampaignRepository() CampaignRepository {
	return &CampaignRepositoryImpl{}
}

func (r *CampaignRepositoryImpl) CreateCampaign(db *gorm.DB, campaign *models.Campaign) error {
	return db.Create(campaign).Error
}

func (r *CampaignRepositoryImpl) FindCampaignByID(db *gorm.DB, id string) (*models.Campaign, error) {
	var campaign models.Campaign
	if err := db.First(&campaign, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &campaign, nil
}

func (r *CampaignRepositoryImpl) FindCampaignsByBrand(db *gorm.DB, brandID string) ([]models.Campaign, error) {
	var campaigns []models.Campaign
	err := db.Where("brand_id = ?", brandID).Order("created_at DESC").Find(&campaigns).Error
	return campaigns, err
}

func (r *CampaignRepositoryImpl) FindCampaignsByReviewStatus(db *gorm.DB, status models.CampaignReviewStatus, limit int) ([]models.Campaign, error) {
	var campaigns []models.Campaign
	query := db.Where("review_status = ?", status).
		Order("review_priority DESC, created_at ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&campaigns).Error
	return campaigns, err
}

func (r *CampaignRepositoryImpl) UpdateCampaign(db *gorm.DB, campaign *models.Campaign) error {
	return db.Save(campaign).Error
}

func (r *CampaignRepositoryImpl) DeleteCampaign(db *gorm.DB, id string) error {
	return db.Delete(&models.Campaign{}, "id = ?", id).Error
}

func (r *CampaignRepositoryImpl) TransitionStatus(db *gorm.DB, id string, from, to models.CampaignStatus) (bool, error) {
	result := db.Model(&models.Campaign{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *CampaignRepositoryImpl) TransitionReviewStatus(db *gorm.DB, id string, from, to models.CampaignReviewStatus) (bool, error) {
	result := db.Model(&models.Campaign{}).
		Where("id = ? AND review_status = ?", id, from).
		Update("review_status", to)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *CampaignRepositoryImpl) MarkLaunched(db *gorm.DB, id string) error {
	return db.Exec(`UPDATE campaigns SET launched_at = CURRENT_TIMESTAMP WHERE id = ?`, id).Error
}

func (r *CampaignRepositoryImpl) GetCampaignStats(db *gorm.DB, brandID string) (*CampaignStats, error) {
	var rows []struct {
		Status models.CampaignStatus
		Count  int64
	}
	err := db.Model(&models.Campaign{}).
		Select("status, COUNT(*) as count").
		Where("brand_id = ?", brandID).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	stats := &CampaignStats{}
	for _, row := range rows {
		stats.Total += row.Count
		switch row.Status {
		case models.CampaignStatusDraft:
			stats.Draft = row.Count
		case models.CampaignStatusActive:
			stats.Active = row.Count
		case models.CampaignStatusLive:
			stats.Live = row.Count
		case models.CampaignStatusCompleted:
			stats.Completed = row.Count
		case models.CampaignStatusCancelled:
			stats.Cancelled = row.Count
		}
	}
	return stats, nil
}

func (r *CampaignRepositoryImpl) CreateBrief(db *gorm.DB, brief *models.Brief) error {
	return db.Create(brief).Error
}

func (r *CampaignRepositoryImpl) FindBriefByID(db *gorm.DB, id string) (*models.Brief, error) {
	var brief models.Brief
	if err := db.First(&brief, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &brief, nil
}

func (r *CampaignRepositoryImpl) FindBriefsByCampaign(db *gorm.DB, campaignID string) ([]models.Brief, error) {
	var briefs []models.Brief
	err := db.Where("campaign_id = ?", campaignID).Order("created_at ASC").Find(&briefs).Error
	return briefs, err
}
