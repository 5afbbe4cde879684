package repositories

import (
	"brandlink_backend/internal/models"

	"gorm.io/gorm"
)

type PlatformRuleRepository interface {
	CreateRule(db *gorm.DB, rule *models.PlatformRule) error
	FindRuleByID(db *gorm.DB, id string) (*models.PlatformRule, error)
	FindActiveByPlatforms(db *gorm.DB, platforms []string) ([]models.PlatformRule, error)
	FindAllRules(db *gorm.DB) ([]models.PlatformRule, error)
	UpdateRule(db *gorm.DB, rule *models.PlatformRule) error
	DeleteRule(db *gorm.DB, id string) error
}

type PlatformRuleRepositoryImpl struct{}

func NewPlatformRuleRepository() PlatformRuleRepository {
	return &PlatformRuleRepositoryImpl{}
}

func (r *PlatformRuleRepositoryImpl) CreateRule(db *gorm.DB, rule *models.PlatformRule) error {
	return db.Create(rule).Error
}

func (r *PlatformRuleRepositoryImpl) FindRuleByID(db *gorm.DB, id string) (*models.PlatformRule, error) {
	var rule models.PlatformRule
	if err := db.First(&rule, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &rule, nil
}

func (r *PlatformRuleRepositoryImpl) FindActiveByPlatforms(db *gorm.DB, platforms []string) ([]models.PlatformRule, error) {
	var rules []models.PlatformRule
	query := db.Where("is_active = ?", true)
	if len(platforms) > 0 {
		query = query.Where("platform IN ?", platforms)
	}
	err := query.Order("platform ASC, severity DESC").Find(&rules).Error
	return rules, err
}

func (r *PlatformRuleRepositoryImpl) FindAllRules(db *gorm.DB) ([]models.PlatformRule, error) {
	var rules []models.PlatformRule
	err := db.Order("platform ASC, created_at DESC").Find(&rules).Error
	return rules, err
}

func (r *PlatformRuleRepositoryImpl) UpdateRule(db *gorm.DB, rule *models.PlatformRule) error {
	return db.Save(rule).Error
}

func (r *PlatformRuleRepositoryImpl) DeleteRule(db *gorm.DB, id string) error {
	return db.Delete(&models.PlatformRule{}, "id = ?", id).Error
}
