package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/easybank/internal/pkg/constants"
	"github.com/piresc/easybank/internal/pkg/middleware"
	"github.com/piresc/easybank/internal/pkg/models"
	nrpkg "github.com/piresc/easybank/internal/pkg/newrelic"
	"github.com/piresc/easybank/services/banking/handler/http"
)

// Handler coordinates all protocol handlers for the banking service
type Handler struct {
	authHandler    *http.AuthHandler
	accountHandler *http.AccountHandler
	authenticator  middleware.Authenticator
	counter        middleware.WindowCounter
	cfg            *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(
	authHandler *http.AuthHandler,
	accountHandler *http.AccountHandler,
	authenticator middleware.Authenticator,
	counter middleware.WindowCounter,
	cfg *models.Config,
) *Handler {
	return &Handler{
		authHandler:    authHandler,
		accountHandler: accountHandler,
		authenticator:  authenticator,
		counter:        counter,
		cfg:            cfg,
	}
}

// rateLimit returns the limiter for a route group, or a pass-through when disabled
func (h *Handler) rateLimit(route string) echo.MiddlewareFunc {
	if !h.cfg.RateLimit.Enabled || h.counter == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	return middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
		Counter: h.counter,
		Route:   route,
		Limit:   h.cfg.RateLimit.Limit,
		Period:  h.cfg.RateLimit.Period,
	})
}

// RegisterRoutes registers all banking routes under /api/v1
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")
	jwtAuth := middleware.JWTAuthMiddleware(h.authenticator)
	customerOnly := middleware.RequirePrincipal(models.PrincipalCustomer)

	// Public routes (no authentication required)
	auth := api.Group("/auth")
	auth.POST("/onboard", nrpkg.TraceHandler("Onboard", h.authHandler.Onboard))
	auth.POST("/login", nrpkg.TraceHandler("Login", h.authHandler.Login), h.rateLimit(constants.RateLimitLogin))
	auth.POST("/refresh", nrpkg.TraceHandler("RefreshToken", h.authHandler.RefreshToken))
	auth.POST("/otp/send", nrpkg.TraceHandler("SendOnboardingOTP", h.authHandler.SendOnboardingOTP), h.rateLimit(constants.RateLimitOTP))
	auth.POST("/otp/verify", nrpkg.TraceHandler("VerifyOnboardingOTP", h.authHandler.VerifyOnboardingOTP))
	auth.POST("/logout", nrpkg.TraceHandler("Logout", h.authHandler.Logout), jwtAuth)

	api.POST("/admin/auth/login", nrpkg.TraceHandler("AdminLogin", h.authHandler.AdminLogin), h.rateLimit(constants.RateLimitAdminLogin))

	// Protected customer routes
	otp := api.Group("/otp", jwtAuth, customerOnly)
	otp.POST("", nrpkg.TraceHandler("IssueOTP", h.accountHandler.IssueOTP))
	otp.POST("/verify", nrpkg.TraceHandler("VerifyOTP", h.accountHandler.VerifyOTP))

	account := api.Group("/account", jwtAuth, customerOnly)
	account.GET("/balance", nrpkg.TraceHandler("CheckBalance", h.accountHandler.CheckBalance))
	account.GET("/details", nrpkg.TraceHandler("GetDetails", h.accountHandler.GetDetails))
	account.PUT("/details", nrpkg.TraceHandler("UpdateDetails", h.accountHandler.UpdateDetails))
	account.PUT("/password", nrpkg.TraceHandler("ResetPassword", h.accountHandler.ResetPassword))
	account.PUT("/transaction-limit", nrpkg.TraceHandler("UpdateTransactionLimit", h.accountHandler.UpdateTransactionLimit))
}
