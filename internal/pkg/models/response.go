package models

// StatusCode is the closed set of outcomes reported to callers
type StatusCode string

const (
	StatusSuccess               StatusCode = "SUCCESS"
	StatusValidationError       StatusCode = "VALIDATION_ERROR"
	StatusDuplicateEmail        StatusCode = "DUPLICATE_EMAIL"
	StatusBelowMinimumDeposit   StatusCode = "BELOW_MINIMUM_DEPOSIT"
	StatusWeakPassword          StatusCode = "WEAK_PASSWORD"
	StatusInvalidPin            StatusCode = "INVALID_PIN"
	StatusInvalidEnum           StatusCode = "INVALID_ENUM"
	StatusInvalidAmount         StatusCode = "INVALID_AMOUNT"
	StatusPrincipalNotFound     StatusCode = "PRINCIPAL_NOT_FOUND"
	StatusAccountNotFound       StatusCode = "ACCOUNT_NOT_FOUND"
	StatusAccountNotVerified    StatusCode = "ACCOUNT_NOT_VERIFIED"
	StatusAccountSuspended      StatusCode = "ACCOUNT_SUSPENDED"
	StatusInvalidCredentials    StatusCode = "INVALID_CREDENTIALS"
	StatusUnauthorized          StatusCode = "UNAUTHORIZED"
	StatusTokenExpired          StatusCode = "TOKEN_EXPIRED"
	StatusInvalidTokenSignature StatusCode = "INVALID_TOKEN_SIGNATURE"
	StatusOTPNotFound           StatusCode = "OTP_NOT_FOUND"
	StatusOTPInvalid            StatusCode = "OTP_INVALID"
	StatusOTPExpired            StatusCode = "OTP_EXPIRED"
	StatusRateLimited           StatusCode = "RATE_LIMITED"
	StatusGenericError          StatusCode = "GENERIC_ERROR"
)

// Response is the uniform result envelope. Values are built with Success
// or Failure and not modified afterwards.
type Response[T any] struct {
	StatusCode    StatusCode `json:"status_code"`
	StatusMessage string     `json:"status_message"`
	Data          *T         `json:"data,omitempty"`
}

// Success builds a SUCCESS envelope carrying data
func Success[T any](message string, data T) *Response[T] {
	return &Response[T]{
		StatusCode:    StatusSuccess,
		StatusMessage: message,
		Data:          &data,
	}
}

// Failure builds a rejection envelope without data
func Failure[T any](code StatusCode, message string) *Response[T] {
	return &Response[T]{
		StatusCode:    code,
		StatusMessage: message,
	}
}

// OK reports whether the envelope carries SUCCESS
func (r *Response[T]) OK() bool {
	return r != nil && r.StatusCode == StatusSuccess
}

// Empty is the payload of operations that return no data
type Empty struct{}
