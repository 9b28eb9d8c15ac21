package apperrors

// Коды ошибок сгруппированные по доменам
const (
	// Аутентификация и авторизация
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeUnauthenticated    ErrorCode = "UNAUTHENTICATED"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeInvalidResetToken  ErrorCode = "INVALID_RESET_TOKEN"

	// Валидация
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"

	// Ресурсы
	CodeNotFound ErrorCode = "NOT_FOUND"

	// Системные ошибки
	CodeInternalError   ErrorCode = "INTERNAL_ERROR"
	CodeDispatchFailure ErrorCode = "DISPATCH_FAILURE"
)
