package appErrors

// Error codes grouped by domain.
const (
	// Authentication and authorization
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeInvalidToken       ErrorCode = "INVALID_TOKEN"
	CodeAccountLocked      ErrorCode = "ACCOUNT_LOCKED"
	CodeAccountInactive    ErrorCode = "ACCOUNT_INACTIVE"

	// Validation
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeWeakPassword     ErrorCode = "WEAK_PASSWORD"
	CodeInvalidUserRole  ErrorCode = "INVALID_USER_ROLE"

	// Resources
	CodeUserNotFound ErrorCode = "USER_NOT_FOUND"
	CodeJobNotFound  ErrorCode = "JOB_NOT_FOUND"

	// Business rules
	CodeEmailAlreadyExists ErrorCode = "EMAIL_ALREADY_EXISTS"
	CodeInvalidState       ErrorCode = "INVALID_STATE"
	CodeRateLimited        ErrorCode = "RATE_LIMITED"

	// System
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
)
