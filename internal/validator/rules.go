package validator

import (
	"log"

	"brandlink_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules регистрирует все кастомные функции валидации.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// Критическая ошибка времени запуска
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-user-role", validateUserRole)
	mustRegister("is-campaign-type", validateCampaignType)
	mustRegister("is-review-action", validateReviewAction)
	mustRegister("is-deal-status", validateDealStatus)
}

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // пустые значения проверяет 'required'
	}
	switch models.UserRole(value) {
	case models.UserRoleBrand, models.UserRoleCreator, models.UserRoleAdmin:
		return true
	}
	return false
}

func validateCampaignType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.CampaignType(value) {
	case models.CampaignTypeSingle, models.CampaignTypeWeekly, models.CampaignTypeMonthly,
		models.CampaignTypeRetainer, models.CampaignTypeEvergreen:
		return true
	}
	return false
}

func validateReviewAction(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.ReviewAction(value) {
	case models.ReviewActionApprove, models.ReviewActionRequestRevision, models.ReviewActionReject:
		return true
	}
	return false
}

func validateDealStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.DealStatus(value) {
	case models.DealStatusInvited, models.DealStatusAccepted, models.DealStatusDeclined,
		models.DealStatusContracted, models.DealStatusInProgress, models.DealStatusSubmitted,
		models.DealStatusCompleted, models.DealStatusCancelled:
		return true
	}
	return false
}
