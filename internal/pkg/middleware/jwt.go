package middleware

import (
	"context"
	"errors"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	jwtpkg "github.com/piresc/easybank/internal/pkg/jwt"
	"github.com/piresc/easybank/internal/pkg/logger"
	"github.com/piresc/easybank/internal/pkg/models"
	"github.com/piresc/easybank/internal/utils"
)

// Context keys set after a successful authentication
const (
	ContextKeyClaims        = "claims"
	ContextKeyPrincipalID   = "principal_id"
	ContextKeyPrincipalType = "principal_type"
	ContextKeyEmail         = "email"
)

// Authenticator resolves a bearer token to the claims of a live session
type Authenticator interface {
	Authenticate(ctx context.Context, accessToken string) (*jwtpkg.Claims, error)
}

// JWTAuthMiddleware authenticates the Authorization bearer token. Tokens are
// checked against the token store, so revoked sessions are rejected even while
// their signature is still valid.
func JWTAuthMiddleware(auth Authenticator) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey: ContextKeyClaims,
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			return auth.Authenticate(c.Request().Context(), token)
		},
		SuccessHandler: func(c echo.Context) {
			claims, ok := c.Get(ContextKeyClaims).(*jwtpkg.Claims)
			if !ok {
				return
			}
			c.Set(ContextKeyPrincipalID, claims.PrincipalID)
			c.Set(ContextKeyPrincipalType, claims.PrincipalType)
			c.Set(ContextKeyEmail, claims.Email)
			SetPrincipal(c, claims.PrincipalType, claims.PrincipalID)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			switch {
			case errors.Is(err, jwtpkg.ErrTokenExpired):
				return utils.ErrorResponseHandler(c, models.StatusTokenExpired, "Token has expired")
			case errors.Is(err, jwtpkg.ErrInvalidSignature):
				return utils.ErrorResponseHandler(c, models.StatusInvalidTokenSignature, "Invalid token signature")
			}
			logger.WarnCtx(c.Request().Context(), "Authentication rejected",
				logger.String("path", c.Path()),
				logger.Err(err))
			return utils.UnauthorizedResponse(c, "")
		},
	})
}

// RequirePrincipal rejects authenticated callers of any other kind
func RequirePrincipal(kind models.PrincipalKind) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if k, _ := c.Get(ContextKeyPrincipalType).(models.PrincipalKind); k != kind {
				return utils.UnauthorizedResponse(c, "Access denied")
			}
			return next(c)
		}
	}
}

// PrincipalFromContext returns the authenticated principal of the request
func PrincipalFromContext(c echo.Context) (models.PrincipalRef, bool) {
	id, ok := c.Get(ContextKeyPrincipalID).(int64)
	if !ok {
		return models.PrincipalRef{}, false
	}
	kind, ok := c.Get(ContextKeyPrincipalType).(models.PrincipalKind)
	if !ok {
		return models.PrincipalRef{}, false
	}
	return models.PrincipalRef{Kind: kind, ID: id}, true
}
