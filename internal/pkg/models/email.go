package models

import "time"

// EmailKind selects the template the notifier renders
type EmailKind string

const (
	EmailKindOTP     EmailKind = "otp"
	EmailKindWelcome EmailKind = "welcome"
)

// EmailEvent is published to NSQ and delivered by the notifier
type EmailEvent struct {
	ID        string    `json:"id"`
	Kind      EmailKind `json:"kind"`
	Recipient string    `json:"recipient"`
	Subject   string    `json:"subject"`
	FirstName string    `json:"first_name"`
	OTPCode   string    `json:"otp_code,omitempty"`
	ExpiresIn string    `json:"expires_in,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
