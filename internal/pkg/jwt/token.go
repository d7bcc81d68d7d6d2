package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/piresc/easybank/internal/pkg/models"
)

var (
	// ErrInvalidSignature covers tampered, malformed and mismatched tokens
	ErrInvalidSignature = errors.New("invalid token signature")
	// ErrTokenExpired is returned for authentic tokens past their exp claim
	ErrTokenExpired = errors.New("token expired")
)

// Claims represents the registered JWT claims plus the principal fields
type Claims struct {
	PrincipalID   int64                `json:"id"`
	FirstName     string               `json:"first_name"`
	LastName      string               `json:"last_name"`
	Email         string               `json:"email"`
	PhoneNumber   string               `json:"phone_number"`
	PrincipalType models.PrincipalKind `json:"principal_type"`
	TokenUse      models.TokenUse      `json:"token_use"`
	jwt.RegisteredClaims
}

// Codec mints and verifies HS256 tokens with a key fixed at construction.
// There is no key rotation; replacing the key invalidates every issued token.
type Codec struct {
	secret []byte
	issuer string
	now    func() time.Time
}

// NewCodec creates a codec from the JWT configuration
func NewCodec(cfg models.JWTConfig) *Codec {
	return &Codec{
		secret: []byte(cfg.Secret),
		issuer: cfg.Issuer,
		now:    time.Now,
	}
}

// SetClock replaces the time source used for iat, exp and expiry checks
func (c *Codec) SetClock(now func() time.Time) {
	c.now = now
}

// Mint signs a token for p. tokenID becomes the jti claim.
func (c *Codec) Mint(p models.Principal, use models.TokenUse, tokenID string, ttl time.Duration) (string, time.Time, error) {
	issuedAt := c.now()
	expiresAt := issuedAt.Add(ttl)

	claims := Claims{
		PrincipalID:   p.ID,
		FirstName:     p.FirstName,
		LastName:      p.LastName,
		Email:         p.Email,
		PhoneNumber:   p.PhoneNumber,
		PrincipalType: p.Kind,
		TokenUse:      use,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.Email,
			Issuer:    c.issuer,
			ID:        tokenID,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// parse checks the signature and algorithm but not the time based claims
func (c *Codec) parse(tokenString string) (*Claims, error) {
	claims := &Claims{}
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)
	token, err := parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return c.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidSignature
	}
	if claims.Subject == "" || claims.ExpiresAt == nil {
		return nil, ErrInvalidSignature
	}
	return claims, nil
}

func (c *Codec) expired(claims *Claims) bool {
	return !claims.VerifyExpiresAt(c.now(), true)
}

// Verify returns the claims of an authentic, unexpired token
func (c *Codec) Verify(tokenString string) (*Claims, error) {
	claims, err := c.parse(tokenString)
	if err != nil {
		return nil, err
	}
	if c.expired(claims) {
		return claims, ErrTokenExpired
	}
	return claims, nil
}

// IsExpired compares the embedded exp claim to the codec clock.
// Tokens that cannot be parsed are reported as expired.
func (c *Codec) IsExpired(tokenString string) bool {
	claims, err := c.parse(tokenString)
	if err != nil {
		return true
	}
	return c.expired(claims)
}

// ExtractSubject returns the sub claim of an authentic token, expired or not
func (c *Codec) ExtractSubject(tokenString string) (string, error) {
	claims, err := c.parse(tokenString)
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}

// ExtractPrincipalType returns the principal_type claim of an authentic token
func (c *Codec) ExtractPrincipalType(tokenString string) (models.PrincipalKind, error) {
	claims, err := c.parse(tokenString)
	if err != nil {
		return "", err
	}
	if !claims.PrincipalType.Valid() {
		return "", ErrInvalidSignature
	}
	return claims.PrincipalType, nil
}

// VerifyFor verifies the token and checks it was minted for p with the given use
func (c *Codec) VerifyFor(tokenString string, p models.Principal, use models.TokenUse) (*Claims, error) {
	claims, err := c.Verify(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.Subject != p.Email ||
		claims.PrincipalID != p.ID ||
		claims.PrincipalType != p.Kind ||
		claims.TokenUse != use {
		return nil, ErrInvalidSignature
	}
	return claims, nil
}
