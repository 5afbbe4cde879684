package apperrors

// Коды ошибок сгруппированные по доменам
const (
	// Аутентификация и авторизация
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeInvalidToken       ErrorCode = "INVALID_TOKEN"

	// Валидация
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeInvalidUserRole  ErrorCode = "INVALID_USER_ROLE"

	// Ресурсы
	CodeUserNotFound       ErrorCode = "USER_NOT_FOUND"
	CodeNotFound           ErrorCode = "NOT_FOUND"
	CodeCampaignNotFound   ErrorCode = "CAMPAIGN_NOT_FOUND"
	CodeBriefNotFound      ErrorCode = "BRIEF_NOT_FOUND"
	CodeSubmissionNotFound ErrorCode = "SUBMISSION_NOT_FOUND"
	CodeInvitationNotFound ErrorCode = "INVITATION_NOT_FOUND"

	// Бизнес-логика
	CodeEmailAlreadyExists      ErrorCode = "EMAIL_ALREADY_EXISTS"
	CodeInsufficientPermissions ErrorCode = "INSUFFICIENT_PERMISSIONS"
	CodeConflict                ErrorCode = "CONFLICT"
	CodeInvalidTransition       ErrorCode = "INVALID_TRANSITION"

	// Системные ошибки
	CodeInternalError        ErrorCode = "INTERNAL_ERROR"
	CodeDatabaseError        ErrorCode = "DATABASE_ERROR"
	CodeExternalServiceError ErrorCode = "EXTERNAL_SERVICE_ERROR"
)
