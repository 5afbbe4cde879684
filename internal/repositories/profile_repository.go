package repositories

import (
	"encoding/json"
	"strings"

	"brandlink_backend/internal/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CreatorSearchCriteria - критерии поиска криейторов для брендов
type CreatorSearchCriteria struct {
	Query        string `form:"query"`
	Platform     string `form:"platform"`
	Category     string `form:"category"`
	City         string `form:"city"`
	MinFollowers int64  `form:"min_followers"`
	MaxFollowers int64  `form:"max_followers"`
	Page         int    `form:"page"`
	PageSize     int    `form:"page_size"`
	SortBy       string `form:"sort_by"`
	SortOrder    string `form:"sort_order"`
}

type ProfileRepository interface {
	CreateBrandProfile(db *gorm.DB, profile *models.BrandProfile) error
	FindBrandProfileByUser(db *gorm.DB, userID string) (*models.BrandProfile, error)
	CreateCreatorProfile(db *gorm.DB, profile *models.CreatorProfile) error
	FindCreatorProfileByUser(db *gorm.DB, userID string) (*models.CreatorProfile, error)
	UpdateCreatorProfile(db *gorm.DB, profile *models.CreatorProfile) error
	SearchCreators(db *gorm.DB, criteria CreatorSearchCriteria) ([]models.CreatorProfile, int64, error)
}

// jsonArray оборачивает значение в JSON-массив для jsonb containment (@>)
func jsonArray(value string) datatypes.JSON {
	b, _ := json.Marshal([]string{value})
	return datatypes.JSON(b)
}

type ProfileRepositoryImpl struct{}

func NewProfileRepository() ProfileRepository {
	return &ProfileRepositoryImpl{}
}

func (r *ProfileRepositoryImpl) CreateBrandProfile(db *gorm.DB, profile *models.BrandProfile) error {
	return db.Create(profile).Error
}

func (r *ProfileRepositoryImpl) FindBrandProfileByUser(db *gorm.DB, userID string) (*models.BrandProfile, error) {
	var profile models.BrandProfile
	if err := db.First(&profile, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) CreateCreatorProfile(db *gorm.DB, profile *models.CreatorProfile) error {
	return db.Create(profile).Error
}

func (r *ProfileRepositoryImpl) FindCreatorProfileByUser(db *gorm.DB, userID string) (*models.CreatorProfile, error) {
	var profile models.CreatorProfile
	if err := db.First(&profile, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) UpdateCreatorProfile(db *gorm.DB, profile *models.CreatorProfile) error {
	return db.Save(profile).Error
}

func (r *ProfileRepositoryImpl) SearchCreators(db *gorm.DB, criteria CreatorSearchCriteria) ([]models.CreatorProfile, int64, error) {
	query := db.Model(&models.CreatorProfile{})

	if criteria.Query != "" {
		pattern := "%" + strings.ToLower(criteria.Query) + "%"
		query = query.Where("LOWER(display_name) LIKE ? OR LOWER(bio) LIKE ?", pattern, pattern)
	}
	if criteria.Platform != "" {
		query = query.Where("platforms @> ?", jsonArray(criteria.Platform))
	}
	if criteria.Category != "" {
		query = query.Where("categories @> ?", jsonArray(criteria.Category))
	}
	if criteria.City != "" {
		query = query.Where("city = ?", criteria.City)
	}
	if criteria.MinFollowers > 0 {
		query = query.Where("follower_count >= ?", criteria.MinFollowers)
	}
	if criteria.MaxFollowers > 0 {
		query = query.Where("follower_count <= ?", criteria.MaxFollowers)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortBy := "follower_count"
	switch criteria.SortBy {
	case "engagement":
		sortBy = "engagement_rate"
	case "created_at":
		sortBy = "created_at"
	}
	order := "DESC"
	if strings.EqualFold(criteria.SortOrder, "asc") {
		order = "ASC"
	}

	page := criteria.Page
	if page < 1 {
		page = 1
	}
	pageSize := criteria.PageSize
	if pageSize < 1 {
		pageSize = 20
	}

	var profiles []models.CreatorProfile
	err := query.
		Order(sortBy + " " + order).
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&profiles).Error
	if err != nil {
		return nil, 0, err
	}

	return profiles, total, nil
}
