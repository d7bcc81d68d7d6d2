package models

import "time"

// TokenUse distinguishes access tokens from refresh tokens
type TokenUse string

const (
	TokenUseAccess  TokenUse = "access"
	TokenUseRefresh TokenUse = "refresh"
)

// AuthToken is one issued credential pair. It references exactly one of
// CustomerID or AdministratorID. Rows are only ever flagged, never deleted.
type AuthToken struct {
	ID              string    `db:"id"`
	AccessToken     string    `db:"access_token"`
	RefreshToken    string    `db:"refresh_token"`
	CustomerID      *int64    `db:"customer_id"`
	AdministratorID *int64    `db:"administrator_id"`
	Revoked         bool      `db:"revoked"`
	Expired         bool      `db:"expired"`
	IssuedAt        time.Time `db:"issued_at"`
	ExpiresAt       time.Time `db:"expires_at"`
}

// NewAuthToken builds an unrevoked token record owned by ref
func NewAuthToken(id string, ref PrincipalRef, access, refresh string, issuedAt, expiresAt time.Time) *AuthToken {
	t := &AuthToken{
		ID:           id,
		AccessToken:  access,
		RefreshToken: refresh,
		IssuedAt:     issuedAt,
		ExpiresAt:    expiresAt,
	}
	owner := ref.ID
	switch ref.Kind {
	case PrincipalAdministrator:
		t.AdministratorID = &owner
	default:
		t.CustomerID = &owner
	}
	return t
}

// Owner returns the principal reference of the token
func (t *AuthToken) Owner() PrincipalRef {
	if t.AdministratorID != nil {
		return PrincipalRef{Kind: PrincipalAdministrator, ID: *t.AdministratorID}
	}
	if t.CustomerID != nil {
		return PrincipalRef{Kind: PrincipalCustomer, ID: *t.CustomerID}
	}
	return PrincipalRef{}
}

// Valid reports whether the record is neither revoked nor expired
func (t *AuthToken) Valid() bool {
	return !t.Revoked && !t.Expired
}

// LoginRequest represents a request to login with email and password
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshTokenRequest carries the refresh token to rotate
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// AuthResponse represents the token pair returned after authentication
type AuthResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    string `json:"expires_in"`
}
