package services

import (
	"brandlink_backend/internal/config"
	"brandlink_backend/internal/email"
	"brandlink_backend/internal/queue"
	"brandlink_backend/internal/repositories"
)

// ServiceContainer содержит все сервисы приложения.
type ServiceContainer struct {
	AuthService         AuthService
	ProfileService      ProfileService
	CampaignService     CampaignService
	InvitationService   InvitationService
	SubmissionService   SubmissionService
	ReviewService       ReviewService
	ComplianceService   ComplianceService
	NotificationService NotificationService
	PaymentService      PaymentService
	SearchService       SearchService
	PlatformRuleService PlatformRuleService
}

// NewServiceContainer собирает сервисы поверх репозиториев и внешних
// провайдеров. publisher может быть nil - тогда события в брокер не идут.
func NewServiceContainer(
	cfg *config.Config,
	emailProvider email.Provider,
	publisher queue.Publisher,
	classifier ComplianceClassifier,
	paymentProvider PaymentProvider,
) *ServiceContainer {
	userRepo := repositories.NewUserRepository()
	profileRepo := repositories.NewProfileRepository()
	campaignRepo := repositories.NewCampaignRepository()
	invitationRepo := repositories.NewInvitationRepository()
	submissionRepo := repositories.NewSubmissionRepository()
	reviewRepo := repositories.NewReviewRepository()
	notificationRepo := repositories.NewNotificationRepository()
	ruleRepo := repositories.NewPlatformRuleRepository()
	accountRepo := repositories.NewPaymentAccountRepository()

	return &ServiceContainer{
		AuthService:         NewAuthService(userRepo, profileRepo),
		ProfileService:      NewProfileService(profileRepo),
		CampaignService:     NewCampaignService(campaignRepo, submissionRepo, notificationRepo),
		InvitationService:   NewInvitationService(invitationRepo, campaignRepo, userRepo, notificationRepo),
		SubmissionService:   NewSubmissionService(submissionRepo, invitationRepo, campaignRepo, notificationRepo),
		ReviewService:       NewReviewService(reviewRepo, submissionRepo, campaignRepo, invitationRepo, notificationRepo),
		ComplianceService:   NewComplianceService(classifier, campaignRepo, ruleRepo, reviewRepo),
		NotificationService: NewNotificationService(notificationRepo, userRepo, emailProvider, publisher),
		PaymentService:      NewPaymentService(paymentProvider, accountRepo, userRepo, campaignRepo, cfg),
		SearchService:       NewSearchService(profileRepo),
		PlatformRuleService: NewPlatformRuleService(ruleRepo),
	}
}
