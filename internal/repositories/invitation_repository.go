package repositories

import (
	"errors"

	"brandlink_backend/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrInvitationAlreadyExists = errors.New("invitation already exists for this campaign and creator")

type InvitationRepository interface {
	// CreateInvitation полагается на уникальный индекс (campaign_id, creator_id):
	// дубликат возвращает ErrInvitationAlreadyExists даже при конкурентных вызовах.
	CreateInvitation(db *gorm.DB, invitation *models.CreatorInvitation) error
	FindInvitationByID(db *gorm.DB, id string) (*models.CreatorInvitation, error)
	FindByPair(db *gorm.DB, campaignID, creatorID string) (*models.CreatorInvitation, error)
	FindByCampaign(db *gorm.DB, campaignID string) ([]models.CreatorInvitation, error)
	FindByCreator(db *gorm.DB, creatorID string) ([]models.CreatorInvitation, error)

	// TransitionStatus - CAS; response_date проставляется при выходе из 'invited'.
	TransitionStatus(db *gorm.DB, id string, from, to models.DealStatus) (bool, error)
	SetCounterAmount(db *gorm.DB, id string, amount decimal.Decimal) error
	IncrementSubmitted(db *gorm.DB, id string) error
	IncrementApproved(db *gorm.DB, id string) error
	DeleteInvitation(db *gorm.DB, id string) error
}

type InvitationRepositoryImpl struct{}

func NewInvitationRepository() InvitationRepository {
	return &InvitationRepositoryImpl{}
}

func (r *InvitationRepositoryImpl) CreateInvitation(db *gorm.DB, invitation *models.CreatorInvitation) error {
	err := db.Create(invitation).Error
	if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrInvitationAlreadyExists
	}
	return err
}

func (r *InvitationRepositoryImpl) FindInvitationByID(db *gorm.DB, id string) (*models.CreatorInvitation, error) {
	var invitation models.CreatorInvitation
	if err := db.First(&invitation, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &invitation, nil
}

func (r *InvitationRepositoryImpl) FindByPair(db *gorm.DB, campaignID, creatorID string) (*models.CreatorInvitation, error) {
	var invitation models.CreatorInvitation
	err := db.First(&invitation, "campaign_id = ? AND creator_id = ?", campaignID, creatorID).Error
	if err != nil {
		return nil, err
	}
	return &invitation, nil
}

func (r *InvitationRepositoryImpl) FindByCampaign(db *gorm.DB, campaignID string) ([]models.CreatorInvitation, error) {
	var invitations []models.CreatorInvitation
	err := db.Preload("Creator").
		Where("campaign_id = ?", campaignID).
		Order("created_at ASC").
		Find(&invitations).Error
	return invitations, err
}

func (r *InvitationRepositoryImpl) FindByCreator(db *gorm.DB, creatorID string) ([]models.CreatorInvitation, error) {
	var invitations []models.CreatorInvitation
	err := db.Preload("Campaign").
		Where("creator_id = ?", creatorID).
		Order("created_at DESC").
		Find(&invitations).Error
	return invitations, err
}

func (r *InvitationRepositoryImpl) TransitionStatus(db *gorm.DB, id string, from, to models.DealStatus) (bool, error) {
	updates := map[string]interface{}{"status": to}
	if from == models.DealStatusInvited {
		updates["response_date"] = gorm.Expr("CURRENT_TIMESTAMP")
	}

	result := db.Model(&models.CreatorInvitation{}).
		Where("id = ? AND status = ?", id, from).
		Updates(updates)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *InvitationRepositoryImpl) SetCounterAmount(db *gorm.DB, id string, amount decimal.Decimal) error {
	return db.Model(&models.CreatorInvitation{}).
		Where("id = ?", id).
		Update("counter_amount", amount).Error
}

func (r *InvitationRepositoryImpl) IncrementSubmitted(db *gorm.DB, id string) error {
	return db.Model(&models.CreatorInvitation{}).
		Where("id = ?", id).
		Update("submitted_count", gorm.Expr("submitted_count + 1")).Error
}

func (r *InvitationRepositoryImpl) IncrementApproved(db *gorm.DB, id string) error {
	return db.Model(&models.CreatorInvitation{}).
		Where("id = ?", id).
		Update("approved_count", gorm.Expr("approved_count + 1")).Error
}

func (r *InvitationRepositoryImpl) DeleteInvitation(db *gorm.DB, id string) error {
	return db.Delete(&models.CreatorInvitation{}, "id = ?", id).Error
}
