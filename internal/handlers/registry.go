package handlers

import (
	"brandlink_backend/internal/services"
	"brandlink_backend/internal/validator"

	"github.com/gin-gonic/gin"
)

// AppHandlers объединяет все HTTP-обработчики приложения.
type AppHandlers struct {
	Auth         *AuthHandler
	Profile      *ProfileHandler
	Campaign     *CampaignHandler
	Invitation   *InvitationHandler
	Submission   *SubmissionHandler
	Review       *ReviewHandler
	Notification *NotificationHandler
	Payment      *PaymentHandler
	Search       *SearchHandler
	PlatformRule *PlatformRuleHandler
}

func NewAppHandlers(container *services.ServiceContainer, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		Auth:         NewAuthHandler(base, container.AuthService),
		Profile:      NewProfileHandler(base, container.ProfileService),
		Campaign:     NewCampaignHandler(base, container.CampaignService, container.SubmissionService),
		Invitation:   NewInvitationHandler(base, container.InvitationService),
		Submission:   NewSubmissionHandler(base, container.SubmissionService),
		Review:       NewReviewHandler(base, container.ReviewService, container.ComplianceService),
		Notification: NewNotificationHandler(base, container.NotificationService),
		Payment:      NewPaymentHandler(base, container.PaymentService),
		Search:       NewSearchHandler(base, container.SearchService),
		PlatformRule: NewPlatformRuleHandler(base, container.PlatformRuleService),
	}
}

// RegisterAll вешает маршруты всех обработчиков на общий префикс API.
func (h *AppHandlers) RegisterAll(r *gin.RouterGroup) {
	h.Auth.RegisterRoutes(r)
	h.Profile.RegisterRoutes(r)
	h.Campaign.RegisterRoutes(r)
	h.Invitation.RegisterRoutes(r)
	h.Submission.RegisterRoutes(r)
	h.Review.RegisterRoutes(r)
	h.Notification.RegisterRoutes(r)
	h.Payment.RegisterRoutes(r)
	h.Search.RegisterRoutes(r)
	h.PlatformRule.RegisterRoutes(r)
}
