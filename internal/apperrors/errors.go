package apperrors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
)

// ErrorCode - тип для кодов ошибок
type ErrorCode string

// AppError - основная структура ошибки приложения
type AppError struct {
	Code     ErrorCode   `json:"code"`
	Message  string      `json:"message"`
	Details  interface{} `json:"details,omitempty"`
	Err      error       `json:"-"`
	HTTPCode int         `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		HTTPCode: httpCode,
	}
}

// Wrap - с цепочкой ошибок
func Wrap(err error, code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Err:      err,
		HTTPCode: httpCode,
	}
}

func (e *AppError) WithDetails(details interface{}) *AppError {
	return &AppError{
		Code:     e.Code,
		Message:  e.Message,
		Details:  details,
		Err:      e.Err,
		HTTPCode: e.HTTPCode,
	}
}

func (e *AppError) MarshalJSON() ([]byte, error) {
	type alias struct {
		Code    ErrorCode   `json:"code"`
		Message string      `json:"message"`
		Details interface{} `json:"details,omitempty"`
	}
	return json.Marshal(&alias{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
	})
}

// Is - обертка над стандартной функцией errors.Is
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As - обертка над стандартной функцией errors.As
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// Предопределенные ошибки
var (
	// Аутентификация
	ErrInvalidCredentials = New(CodeInvalidCredentials, "Invalid email or password", http.StatusUnauthorized)
	ErrUnauthorized       = New(CodeUnauthorized, "Authentication required", http.StatusUnauthorized)
	ErrForbidden          = New(CodeForbidden, "Access denied", http.StatusForbidden)
	ErrInvalidToken       = New(CodeInvalidToken, "Invalid or expired token", http.StatusUnauthorized)

	// Пользователи
	ErrUserNotFound            = New(CodeUserNotFound, "User not found", http.StatusNotFound)
	ErrEmailAlreadyExists      = New(CodeEmailAlreadyExists, "Email already exists", http.StatusConflict)
	ErrInvalidUserRole         = New(CodeInvalidUserRole, "Invalid user role", http.StatusBadRequest)
	ErrInsufficientPermissions = New(CodeInsufficientPermissions, "Insufficient permissions", http.StatusForbidden)

	// Валидация
	ErrValidationFailed = New(CodeValidationFailed, "Validation failed", http.StatusBadRequest)

	// Кампании
	ErrCampaignNotFound        = New(CodeCampaignNotFound, "Campaign not found", http.StatusNotFound)
	ErrInvalidCampaignStatus   = New("INVALID_CAMPAIGN_STATUS", "Campaign status is invalid for this operation", http.StatusConflict)
	ErrInvalidReviewTransition = New(CodeInvalidTransition, "Review status transition is not allowed", http.StatusConflict)
	ErrCampaignNotLaunchReady  = New("CAMPAIGN_NOT_LAUNCH_READY", "Campaign has pending submissions or no approved content", http.StatusConflict)
	ErrCampaignNotApproved     = New("CAMPAIGN_NOT_APPROVED", "Campaign has not passed review", http.StatusConflict)

	// Приглашения и сделки
	ErrInvitationNotFound      = New(CodeInvitationNotFound, "Invitation not found", http.StatusNotFound)
	ErrInvitationAlreadyExists = New("INVITATION_ALREADY_EXISTS", "Creator is already invited to this campaign", http.StatusConflict)
	ErrInvalidDealStatus       = New("INVALID_DEAL_STATUS", "Deal status transition is not allowed", http.StatusConflict)

	// Контент
	ErrSubmissionNotFound  = New(CodeSubmissionNotFound, "Submission not found", http.StatusNotFound)
	ErrCreatorNotAssigned  = New("CREATOR_NOT_ASSIGNED", "Creator has no active deal for this campaign", http.StatusForbidden)
	ErrBriefNotFound       = New(CodeBriefNotFound, "Brief not found", http.StatusNotFound)
	ErrInvalidBrief        = New("INVALID_BRIEF", "Brief does not belong to this campaign", http.StatusBadRequest)
	ErrReviewConflict      = New("REVIEW_CONFLICT", "Submission was already resolved by another review", http.StatusConflict)
	ErrSubmissionTerminal  = New("SUBMISSION_TERMINAL", "Submission is already approved or rejected", http.StatusConflict)
	ErrInvalidReviewAction = New("INVALID_REVIEW_ACTION", "Unknown review action", http.StatusBadRequest)

	// Уведомления
	ErrNotificationNotFound = New("NOTIFICATION_NOT_FOUND", "Notification not found", http.StatusNotFound)

	// Платежи
	ErrPaymentProviderError  = New(CodeExternalServiceError, "Payment provider request failed", http.StatusBadGateway)
	ErrPaymentAccountMissing = New("PAYMENT_ACCOUNT_MISSING", "No payment account configured for this user", http.StatusBadRequest)
)

// Функции-помощники для создания ошибок с деталями
func ValidationError(details interface{}) *AppError {
	return ErrValidationFailed.WithDetails(details)
}

func NotFound(resource string) *AppError {
	return New(CodeNotFound, fmt.Sprintf("%s not found", resource), http.StatusNotFound)
}

func InternalError(err error) *AppError {
	return Wrap(err, CodeInternalError, "Internal server error", http.StatusInternalServerError)
}

func NewConflictError(message string) *AppError {
	return New(CodeConflict, message, http.StatusConflict)
}

func NewUnauthorizedError(message string) *AppError {
	return New(CodeUnauthorized, message, http.StatusUnauthorized)
}

func NewForbiddenError(message string) *AppError {
	return New(CodeForbidden, message, http.StatusForbidden)
}

func NewNotFoundError(message string) *AppError {
	return New(CodeNotFound, message, http.StatusNotFound)
}

func NewBadRequestError(message string) *AppError {
	return New(CodeValidationFailed, message, http.StatusBadRequest)
}

func NewExternalServiceError(err error, message string) *AppError {
	return Wrap(err, CodeExternalServiceError, message, http.StatusBadGateway)
}
