package http

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/easybank/internal/pkg/middleware"
	"github.com/piresc/easybank/internal/pkg/models"
	"github.com/piresc/easybank/internal/utils"
	"github.com/piresc/easybank/services/banking"
)

// AuthHandler handles onboarding and session requests
type AuthHandler struct {
	bankingUC banking.BankingUC
	validate  *utils.RequestValidator
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(bankingUC banking.BankingUC) *AuthHandler {
	return &AuthHandler{
		bankingUC: bankingUC,
		validate:  utils.NewRequestValidator(),
	}
}

// Onboard opens a customer and account
func (h *AuthHandler) Onboard(c echo.Context) error {
	var req models.OnboardRequest
	if ok, err := bindRequest(c, h.validate, &req); !ok {
		return err
	}

	res, err := h.bankingUC.Onboard(c.Request().Context(), &req)
	if err != nil {
		return writeResult(c, "Onboard", res, err)
	}
	return utils.CreatedResponse(c, res)
}

// SendOnboardingOTP emails a verification code to a new customer
func (h *AuthHandler) SendOnboardingOTP(c echo.Context) error {
	var req models.SendOTPRequest
	if ok, err := bindRequest(c, h.validate, &req); !ok {
		return err
	}

	res, err := h.bankingUC.SendOnboardingOTP(c.Request().Context(), &req)
	return writeResult(c, "SendOnboardingOTP", res, err)
}

// VerifyOnboardingOTP enables the customer and signs them in
func (h *AuthHandler) VerifyOnboardingOTP(c echo.Context) error {
	var req models.VerifyOnboardingRequest
	if ok, err := bindRequest(c, h.validate, &req); !ok {
		return err
	}

	res, err := h.bankingUC.VerifyOnboardingOTP(c.Request().Context(), &req)
	return writeResult(c, "VerifyOnboardingOTP", res, err)
}

// Login handles customer login requests
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if ok, err := bindRequest(c, h.validate, &req); !ok {
		return err
	}

	res, err := h.bankingUC.Login(c.Request().Context(), &req)
	return writeResult(c, "Login", res, err)
}

// AdminLogin handles administrator login requests
func (h *AuthHandler) AdminLogin(c echo.Context) error {
	var req models.LoginRequest
	if ok, err := bindRequest(c, h.validate, &req); !ok {
		return err
	}

	res, err := h.bankingUC.AdminLogin(c.Request().Context(), &req)
	return writeResult(c, "AdminLogin", res, err)
}

// RefreshToken rotates the token pair
func (h *AuthHandler) RefreshToken(c echo.Context) error {
	var req models.RefreshTokenRequest
	if ok, err := bindRequest(c, h.validate, &req); !ok {
		return err
	}

	res, err := h.bankingUC.RefreshToken(c.Request().Context(), &req)
	return writeResult(c, "RefreshToken", res, err)
}

// Logout revokes every token of the caller
func (h *AuthHandler) Logout(c echo.Context) error {
	owner, ok := middleware.PrincipalFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	res, err := h.bankingUC.Logout(c.Request().Context(), owner)
	return writeResult(c, "Logout", res, err)
}
