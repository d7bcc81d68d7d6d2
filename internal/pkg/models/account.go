package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountType enumerates the account products offered at onboarding
type AccountType string

const (
	AccountTypeSavings     AccountType = "SAVINGS"
	AccountTypeCurrent     AccountType = "CURRENT"
	AccountTypeDomiciliary AccountType = "DOMICILIARY"
)

// ParseAccountType returns the account type named by s
func ParseAccountType(s string) (AccountType, bool) {
	switch t := AccountType(s); t {
	case AccountTypeSavings, AccountTypeCurrent, AccountTypeDomiciliary:
		return t, true
	}
	return "", false
}

// CurrencyType enumerates the supported account currencies
type CurrencyType string

const (
	CurrencyNGN CurrencyType = "NGN"
	CurrencyUSD CurrencyType = "USD"
	CurrencyEUR CurrencyType = "EUR"
	CurrencyGBP CurrencyType = "GBP"
)

// ParseCurrencyType returns the currency named by s
func ParseCurrencyType(s string) (CurrencyType, bool) {
	switch c := CurrencyType(s); c {
	case CurrencyNGN, CurrencyUSD, CurrencyEUR, CurrencyGBP:
		return c, true
	}
	return "", false
}

// Account represents a customer's bank account
type Account struct {
	ID               int64           `json:"id" db:"id"`
	CustomerID       int64           `json:"customer_id" db:"customer_id"`
	AccountNumber    string          `json:"account_number" db:"account_number"`
	AccountType      AccountType     `json:"account_type" db:"account_type"`
	Currency         CurrencyType    `json:"currency" db:"currency"`
	Balance          decimal.Decimal `json:"balance" db:"balance"`
	TransactionLimit decimal.Decimal `json:"transaction_limit" db:"transaction_limit"`
	InterestRate     decimal.Decimal `json:"interest_rate" db:"interest_rate"`
	CreatedAt        time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at" db:"updated_at"`
}

// OnboardRequest carries everything needed to open a customer account
type OnboardRequest struct {
	FirstName      string          `json:"first_name" validate:"required,max=100"`
	LastName       string          `json:"last_name" validate:"required,max=100"`
	Email          string          `json:"email" validate:"required,email"`
	PhoneNumber    string          `json:"phone_number" validate:"required,max=20"`
	Password       string          `json:"password" validate:"required"`
	Pin            string          `json:"pin" validate:"required"`
	AccountType    string          `json:"account_type" validate:"required"`
	CurrencyType   string          `json:"currency_type" validate:"required"`
	InitialDeposit decimal.Decimal `json:"initial_deposit"`
}

// OnboardResponse summarises a newly opened account
type OnboardResponse struct {
	FirstName     string          `json:"first_name"`
	LastName      string          `json:"last_name"`
	Email         string          `json:"email"`
	AccountNumber string          `json:"account_number"`
	AccountType   AccountType     `json:"account_type"`
	Currency      CurrencyType    `json:"currency"`
	Balance       decimal.Decimal `json:"balance"`
	IsEnabled     bool            `json:"is_enabled"`
}

// ViewBalanceResponse is the balance inquiry result
type ViewBalanceResponse struct {
	Email         string          `json:"email"`
	AccountNumber string          `json:"account_number"`
	Balance       decimal.Decimal `json:"balance"`
	LastUpdatedAt string          `json:"last_updated_at"`
}

// CustomerDetails is the profile view of an authenticated customer
type CustomerDetails struct {
	FirstName        string          `json:"first_name"`
	LastName         string          `json:"last_name"`
	Email            string          `json:"email"`
	PhoneNumber      string          `json:"phone_number"`
	AccountNumber    string          `json:"account_number"`
	AccountType      AccountType     `json:"account_type"`
	Currency         CurrencyType    `json:"currency"`
	TransactionLimit decimal.Decimal `json:"transaction_limit"`
	InterestRate     decimal.Decimal `json:"interest_rate"`
}

// UpdateDetailsRequest changes profile fields; empty fields are left untouched
type UpdateDetailsRequest struct {
	OTPCode     string `json:"otp_code" validate:"required,numeric"`
	FirstName   string `json:"first_name" validate:"omitempty,max=100"`
	LastName    string `json:"last_name" validate:"omitempty,max=100"`
	Email       string `json:"email" validate:"omitempty,email"`
	PhoneNumber string `json:"phone_number" validate:"omitempty,max=20"`
}

// ResetPasswordRequest replaces the customer's password
type ResetPasswordRequest struct {
	OTPCode         string `json:"otp_code" validate:"required,numeric"`
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required"`
}

// UpdateTransactionLimitRequest sets a new per-transaction ceiling
type UpdateTransactionLimitRequest struct {
	OTPCode string          `json:"otp_code" validate:"required,numeric"`
	Amount  decimal.Decimal `json:"amount"`
}
