package models

import (
	"time"
)

// OTPPurpose scopes what a code may be used for
type OTPPurpose string

const (
	OTPPurposeOnboarding      OTPPurpose = "ONBOARDING"
	OTPPurposeSensitiveAction OTPPurpose = "SENSITIVE_ACTION"
)

// OTPStatus is the outcome of classifying a presented code
type OTPStatus string

const (
	OTPValid   OTPStatus = "VALID"
	OTPExpired OTPStatus = "EXPIRED"
	OTPInvalid OTPStatus = "INVALID"
)

// OneTimePassword represents one pending verification challenge.
// Expired doubles as the consumed flag.
type OneTimePassword struct {
	ID          int64      `json:"id" db:"id"`
	CustomerID  int64      `json:"customer_id" db:"customer_id"`
	Code        string     `json:"-" db:"code"`
	Purpose     OTPPurpose `json:"purpose" db:"purpose"`
	GeneratedAt time.Time  `json:"generated_at" db:"generated_at"`
	ExpiresAt   time.Time  `json:"expires_at" db:"expires_at"`
	Expired     bool       `json:"expired" db:"expired"`
}

// Classify reports whether the code is still usable at now.
// A nil record is INVALID; a consumed record or one past ExpiresAt is EXPIRED.
func (o *OneTimePassword) Classify(now time.Time) OTPStatus {
	if o == nil {
		return OTPInvalid
	}
	if o.Expired || now.After(o.ExpiresAt) {
		return OTPExpired
	}
	return OTPValid
}

// SendOTPRequest asks for an onboarding code to be emailed
type SendOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// VerifyOnboardingRequest completes email verification for a new customer
type VerifyOnboardingRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	OTPCode  string `json:"otp_code" validate:"required,numeric"`
}

// VerifyOTPRequest checks a code without consuming it
type VerifyOTPRequest struct {
	OTPCode string `json:"otp_code" validate:"required,numeric"`
}

// OTPResponse describes an issued code; the code itself only travels by email
type OTPResponse struct {
	Email     string    `json:"email"`
	ExpiresIn string    `json:"expires_in"`
	ExpiresAt time.Time `json:"expires_at"`
}
