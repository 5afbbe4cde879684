package services

import (
	"errors"

	"brandlink_backend/internal/apperrors"
	"brandlink_backend/internal/models"
	"brandlink_backend/internal/repositories"

	"gorm.io/gorm"
)

// PlatformRuleService is the admin CRUD over the compliance rule set the AI
// triage prompts are built from.
type PlatformRuleService interface {
	CreateRule(db *gorm.DB, rule *models.PlatformRule) error
	ListRules(db *gorm.DB) ([]models.PlatformRule, error)
	UpdateRule(db *gorm.DB, id string, description *string, severity *string, isActive *bool) (*models.PlatformRule, error)
	DeleteRule(db *gorm.DB, id string) error
}

type platformRuleServiceImpl struct {
	ruleRepo repositories.PlatformRuleRepository
}

func NewPlatformRuleService(ruleRepo repositories.PlatformRuleRepository) PlatformRuleService {
	return &platformRuleServiceImpl{ruleRepo: ruleRepo}
}

func (s *platformRuleServiceImpl) CreateRule(db *gorm.DB, rule *models.PlatformRule) error {
	return s.ruleRepo.CreateRule(db, rule)
}

func (s *platformRuleServiceImpl) ListRules(db *gorm.DB) ([]models.PlatformRule, error) {
	return s.ruleRepo.FindAllRules(db)
}

func (s *platformRuleServiceImpl) UpdateRule(db *gorm.DB, id string, description *string, severity *string, isActive *bool) (*models.PlatformRule, error) {
	rule, err := s.ruleRepo.FindRuleByID(db, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Platform rule")
		}
		return nil, err
	}

	if description != nil {
		rule.Description = *description
	}
	if severity != nil {
		rule.Severity = *severity
	}
	if isActive != nil {
		rule.IsActive = *isActive
	}

	if err := s.ruleRepo.UpdateRule(db, rule); err != nil {
		return nil, err
	}
	return rule, nil
}

func (s *platformRuleServiceImpl) DeleteRule(db *gorm.DB, id string) error {
	return s.ruleRepo.DeleteRule(db, id)
}
