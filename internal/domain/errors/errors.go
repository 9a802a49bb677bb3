package errors

import (
	"net/http"

	"storefront/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Authentication-related errors
	ErrMissingOrWeakSecret = NewBaseError(
		http.StatusInternalServerError,
		"MISSING_OR_WEAK_SECRET",
		"簽章密鑰未設定或長度不足",
		"",
	)

	ErrTokenExpired = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_EXPIRED",
		"權杖已過期",
		"",
	)

	ErrTokenNotYetValid = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_NOT_YET_VALID",
		"權杖尚未生效",
		"",
	)

	ErrTokenSignatureInvalid = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_SIGNATURE_INVALID",
		"權杖簽章無效",
		"",
	)

	ErrTokenMalformed = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_MALFORMED",
		"權杖格式錯誤",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"使用者名稱或密碼錯誤",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"密碼處理錯誤",
		"",
	)

	// User-related errors
	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"此使用者名稱或電子郵件已被註冊",
		"",
	)

	// Catalog-related errors
	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"找不到該商品",
		"",
	)

	ErrInvalidInput = NewBaseError(
		http.StatusBadRequest,
		"INVALID_INPUT",
		"輸入資料無效",
		"",
	)

	// Cart-related errors
	ErrCartNotFound = NewBaseError(
		http.StatusNotFound,
		"CART_NOT_FOUND",
		"找不到該購物車",
		"",
	)

	ErrProductUnavailable = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_UNAVAILABLE",
		"商品不存在或已下架",
		"",
	)

	ErrInsufficientInventory = NewBaseError(
		http.StatusConflict,
		"INSUFFICIENT_INVENTORY",
		"商品庫存不足",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"輸入資料驗證失敗",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"系統內部錯誤",
		"",
	)

	ErrNotImplemented = NewBaseError(
		http.StatusNotImplemented,
		"NOT_IMPLEMENTED",
		"此功能尚未開放",
		"",
	)
)
