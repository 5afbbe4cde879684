package repositories

import (
	"brandlink_backend/internal/models"

	"gorm.io/gorm"
)

type PaymentAccountRepository interface {
	CreateAccount(db *gorm.DB, account *models.PaymentAccount) error
	FindByUserID(db *gorm.DB, userID string) (*models.PaymentAccount, error)
	UpdateAccount(db *gorm.DB, account *models.PaymentAccount) error
	SetPaymentMethod(db *gorm.DB, userID, paymentMethodID string) error
	MarkOnboardingDone(db *gorm.DB, userID string) error
}

type PaymentAccountRepositoryImpl struct{}

func NewPaymentAccountRepository() PaymentAccountRepository {
	return &PaymentAccountRepositoryImpl{}
}

func (r *PaymentAccountRepositoryImpl) CreateAccount(db *gorm.DB, account *models.PaymentAccount) error {
	return db.Create(account).Error
}

func (r *PaymentAccountRepositoryImpl) FindByUserID(db *gorm.DB, userID string) (*models.PaymentAccount, error) {
	var account models.PaymentAccount
	if err := db.First(&account, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *PaymentAccountRepositoryImpl) UpdateAccount(db *gorm.DB, account *models.PaymentAccount) error {
	return db.Save(account).Error
}

func (r *PaymentAccountRepositoryImpl) SetPaymentMethod(db *gorm.DB, userID, paymentMethodID string) error {
	return db.Model(&models.PaymentAccount{}).
		Where("user_id = ?", userID).
		Update("payment_method_id", paymentMethodID).Error
}

func (r *PaymentAccountRepositoryImpl) MarkOnboardingDone(db *gorm.DB, userID string) error {
	return db.Model(&models.PaymentAccount{}).
		Where("user_id = ?", userID).
		Update("onboarding_done", true).Error
}
