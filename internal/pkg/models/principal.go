package models

import "time"

// PrincipalKind tags which identity table a principal lives in
type PrincipalKind string

const (
	PrincipalCustomer      PrincipalKind = "customer"
	PrincipalAdministrator PrincipalKind = "administrator"
)

// Valid reports whether k is a known principal kind
func (k PrincipalKind) Valid() bool {
	return k == PrincipalCustomer || k == PrincipalAdministrator
}

// Principal is the common view over a Customer or an Administrator.
// Exactly one of the concrete variants backs it, as named by Kind.
type Principal struct {
	Kind         PrincipalKind
	ID           int64
	Email        string
	FirstName    string
	LastName     string
	PhoneNumber  string
	PasswordHash string
	IsEnabled    bool
	IsSuspended  bool
}

// Ref returns the storage reference used by token records
func (p Principal) Ref() PrincipalRef {
	return PrincipalRef{Kind: p.Kind, ID: p.ID}
}

// PrincipalRef identifies the owner of a token record
type PrincipalRef struct {
	Kind PrincipalKind
	ID   int64
}

// Customer represents a banking customer
type Customer struct {
	ID           int64     `json:"id" db:"id"`
	FirstName    string    `json:"first_name" db:"first_name"`
	LastName     string    `json:"last_name" db:"last_name"`
	Email        string    `json:"email" db:"email"`
	PhoneNumber  string    `json:"phone_number" db:"phone_number"`
	PasswordHash string    `json:"-" db:"password_hash"`
	PinHash      string    `json:"-" db:"pin_hash"`
	IsEnabled    bool      `json:"is_enabled" db:"is_enabled"`
	IsSuspended  bool      `json:"is_suspended" db:"is_suspended"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// AsPrincipal converts the customer to its principal view
func (c *Customer) AsPrincipal() Principal {
	return Principal{
		Kind:         PrincipalCustomer,
		ID:           c.ID,
		Email:        c.Email,
		FirstName:    c.FirstName,
		LastName:     c.LastName,
		PhoneNumber:  c.PhoneNumber,
		PasswordHash: c.PasswordHash,
		IsEnabled:    c.IsEnabled,
		IsSuspended:  c.IsSuspended,
	}
}

// Administrator represents a back-office operator
type Administrator struct {
	ID           int64     `json:"id" db:"id"`
	FirstName    string    `json:"first_name" db:"first_name"`
	LastName     string    `json:"last_name" db:"last_name"`
	Email        string    `json:"email" db:"email"`
	PhoneNumber  string    `json:"phone_number" db:"phone_number"`
	PasswordHash string    `json:"-" db:"password_hash"`
	IsEnabled    bool      `json:"is_enabled" db:"is_enabled"`
	IsSuspended  bool      `json:"is_suspended" db:"is_suspended"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// AsPrincipal converts the administrator to its principal view
func (a *Administrator) AsPrincipal() Principal {
	return Principal{
		Kind:         PrincipalAdministrator,
		ID:           a.ID,
		Email:        a.Email,
		FirstName:    a.FirstName,
		LastName:     a.LastName,
		PhoneNumber:  a.PhoneNumber,
		PasswordHash: a.PasswordHash,
		IsEnabled:    a.IsEnabled,
		IsSuspended:  a.IsSuspended,
	}
}
