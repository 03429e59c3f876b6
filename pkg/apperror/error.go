package apperror

import "net/http"

// Machine-readable error codes. The frontend keys its messaging off these,
// so quota, auth and generic failures must never collapse into one code.
const (
	CodeValidation      = "VALIDATION"
	CodeQuotaExceeded   = "QUOTA_EXCEEDED"
	CodeUnauthenticated = "UNAUTHENTICATED"
	CodeForbidden       = "FORBIDDEN"
	CodeNotFound        = "NOT_FOUND"
	CodeRemote          = "REMOTE"
	CodeInternal        = "INTERNAL"
)

type AppError struct {
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

// Unwrap exposes the original cause for errors.Is/As and diagnostics.
func (e *AppError) Unwrap() error {
	return e.Err
}

func New(status int, code, message string, err error) *AppError {
	return &AppError{
		Status:  status,
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Validation reports bad or missing input, caught before any downstream call.
func Validation(message string) *AppError {
	return New(http.StatusBadRequest, CodeValidation, message, nil)
}

// QuotaExceeded reports the free-tier monthly session limit being hit.
func QuotaExceeded(message string) *AppError {
	return New(http.StatusPaymentRequired, CodeQuotaExceeded, message, nil)
}

func Unauthenticated(message string) *AppError {
	return New(http.StatusUnauthorized, CodeUnauthenticated, message, nil)
}

func Forbidden(message string) *AppError {
	return New(http.StatusForbidden, CodeForbidden, message, nil)
}

func NotFound(message string) *AppError {
	return New(http.StatusNotFound, CodeNotFound, message, nil)
}

// Remote wraps a transport or collaborator failure, preserving the cause
// for logging. Remote failures are never retried automatically.
func Remote(message string, err error) *AppError {
	return New(http.StatusBadGateway, CodeRemote, message, err)
}

func Internal(err error) *AppError {
	return New(http.StatusInternalServerError, CodeInternal, "Internal Server Error", err)
}
