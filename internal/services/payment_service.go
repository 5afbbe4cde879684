package services

import (
	"errors"
	"strings"

	"brandlink_backend/internal/apperrors"
	"brandlink_backend/internal/config"
	"brandlink_backend/internal/models"
	"brandlink_backend/internal/repositories"
	"brandlink_backend/internal/services/dto"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PaymentService interface {
	// SetupPaymentMethod ensures the brand has a provider customer and returns
	// a setup intent secret for attaching a card.
	SetupPaymentMethod(db *gorm.DB, userID string) (*dto.SetupIntentResponse, error)
	// CreateCheckout opens a hosted checkout session funding a campaign budget.
	CreateCheckout(db *gorm.DB, userID string, req *dto.CheckoutRequest) (*dto.CheckoutResponse, error)
	// OnboardCreator provisions a payout account and returns the onboarding link.
	OnboardCreator(db *gorm.DB, userID string) (*dto.OnboardingLinkResponse, error)
	GetAccount(db *gorm.DB, userID string) (*dto.PaymentAccountResponse, error)
}

type paymentServiceImpl struct {
	provider     PaymentProvider
	accountRepo  repositories.PaymentAccountRepository
	userRepo     repositories.UserRepository
	campaignRepo repositories.CampaignRepository
	cfg          *config.Config
}

func NewPaymentService(
	provider PaymentProvider,
	accountRepo repositories.PaymentAccountRepository,
	userRepo repositories.UserRepository,
	campaignRepo repositories.CampaignRepository,
	cfg *config.Config,
) PaymentService {
	return &paymentServiceImpl{
		provider:     provider,
		accountRepo:  accountRepo,
		userRepo:     userRepo,
		campaignRepo: campaignRepo,
		cfg:          cfg,
	}
}

func (s *paymentServiceImpl) SetupPaymentMethod(db *gorm.DB, userID string) (*dto.SetupIntentResponse, error) {
	account, err := s.ensureCustomer(db, userID)
	if err != nil {
		return nil, err
	}

	secret, err := s.provider.CreateSetupIntent(account.CustomerID)
	if err != nil {
		return nil, apperrors.NewExternalServiceError(err, "Failed to create setup intent")
	}

	return &dto.SetupIntentResponse{
		ClientSecret: secret,
		CustomerID:   account.CustomerID,
	}, nil
}

func (s *paymentServiceImpl) CreateCheckout(db *gorm.DB, userID string, req *dto.CheckoutRequest) (*dto.CheckoutResponse, error) {
	campaign, err := s.campaignRepo.FindCampaignByID(db, req.CampaignID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCampaignNotFound
		}
		return nil, err
	}
	if campaign.BrandID != userID {
		return nil, apperrors.ErrForbidden
	}

	account, err := s.ensureCustomer(db, userID)
	if err != nil {
		return nil, err
	}

	successURL := req.SuccessURL
	if successURL == "" {
		successURL = s.cfg.Payments.SuccessURL
	}
	cancelURL := req.CancelURL
	if cancelURL == "" {
		cancelURL = s.cfg.Payments.CancelURL
	}

	amountCents := campaign.Budget.Mul(decimal.NewFromInt(100)).IntPart()
	sessionID, checkoutURL, err := s.provider.CreateCheckoutSession(
		account.CustomerID,
		"Campaign budget: "+campaign.Name,
		amountCents,
		strings.ToLower(campaign.Currency),
		successURL,
		cancelURL,
	)
	if err != nil {
		return nil, apperrors.NewExternalServiceError(err, "Failed to create checkout session")
	}

	return &dto.CheckoutResponse{
		SessionID:   sessionID,
		CheckoutURL: checkoutURL,
		Amount:      campaign.Budget,
		Currency:    campaign.Currency,
	}, nil
}

func (s *paymentServiceImpl) OnboardCreator(db *gorm.DB, userID string) (*dto.OnboardingLinkResponse, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	account, err := s.accountRepo.FindByUserID(db, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		account = &models.PaymentAccount{UserID: userID}
		if err := s.accountRepo.CreateAccount(db, account); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	if account.ConnectAccountID == "" {
		accountID, err := s.provider.CreateExpressAccount(user.Email)
		if err != nil {
			return nil, apperrors.NewExternalServiceError(err, "Failed to create payout account")
		}
		account.ConnectAccountID = accountID
		if err := s.accountRepo.UpdateAccount(db, account); err != nil {
			return nil, err
		}
	}

	linkURL, err := s.provider.CreateAccountLink(account.ConnectAccountID, s.cfg.Payments.RefreshURL, s.cfg.Payments.ReturnURL)
	if err != nil {
		return nil, apperrors.NewExternalServiceError(err, "Failed to create onboarding link")
	}

	return &dto.OnboardingLinkResponse{
		AccountID: account.ConnectAccountID,
		URL:       linkURL,
	}, nil
}

func (s *paymentServiceImpl) GetAccount(db *gorm.DB, userID string) (*dto.PaymentAccountResponse, error) {
	account, err := s.accountRepo.FindByUserID(db, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPaymentAccountMissing
		}
		return nil, err
	}

	return &dto.PaymentAccountResponse{
		UserID:           account.UserID,
		CustomerID:       account.CustomerID,
		PaymentMethodID:  account.PaymentMethodID,
		ConnectAccountID: account.ConnectAccountID,
		OnboardingDone:   account.OnboardingDone,
	}, nil
}

func (s *paymentServiceImpl) ensureCustomer(db *gorm.DB, userID string) (*models.PaymentAccount, error) {
	account, err := s.accountRepo.FindByUserID(db, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		account = &models.PaymentAccount{UserID: userID}
		if err := s.accountRepo.CreateAccount(db, account); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	if account.CustomerID == "" {
		user, err := s.userRepo.FindByID(db, userID)
		if err != nil {
			return nil, err
		}
		customerID, err := s.provider.CreateCustomer(user.Email, user.Name)
		if err != nil {
			return nil, apperrors.NewExternalServiceError(err, "Failed to create customer")
		}
		account.CustomerID = customerID
		if err := s.accountRepo.UpdateAccount(db, account); err != nil {
			return nil, err
		}
	}
	return account, nil
}
