package http

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/easybank/internal/pkg/models"
	"github.com/piresc/easybank/internal/utils"
	"github.com/piresc/easybank/services/banking"
)

// AccountHandler handles OTP gated mutations and account reads
type AccountHandler struct {
	bankingUC banking.BankingUC
	validate  *utils.RequestValidator
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(bankingUC banking.BankingUC) *AccountHandler {
	return &AccountHandler{
		bankingUC: bankingUC,
		validate:  utils.NewRequestValidator(),
	}
}

// IssueOTP emails a code for a sensitive action
func (h *AccountHandler) IssueOTP(c echo.Context) error {
	id, ok := customerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	res, err := h.bankingUC.IssueOTP(c.Request().Context(), id)
	return writeResult(c, "IssueOTP", res, err)
}

// VerifyOTP checks a code without consuming it
func (h *AccountHandler) VerifyOTP(c echo.Context) error {
	id, ok := customerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	var req models.VerifyOTPRequest
	if ok, err := bindRequest(c, h.validate, &req); !ok {
		return err
	}

	res, err := h.bankingUC.VerifyOTP(c.Request().Context(), id, req.OTPCode)
	return writeResult(c, "VerifyOTP", res, err)
}

// UpdateDetails changes profile fields
func (h *AccountHandler) UpdateDetails(c echo.Context) error {
	id, ok := customerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	var req models.UpdateDetailsRequest
	if ok, err := bindRequest(c, h.validate, &req); !ok {
		return err
	}

	res, err := h.bankingUC.UpdateDetails(c.Request().Context(), id, &req)
	return writeResult(c, "UpdateDetails", res, err)
}

// ResetPassword replaces the password
func (h *AccountHandler) ResetPassword(c echo.Context) error {
	id, ok := customerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	var req models.ResetPasswordRequest
	if ok, err := bindRequest(c, h.validate, &req); !ok {
		return err
	}

	res, err := h.bankingUC.ResetPassword(c.Request().Context(), id, &req)
	return writeResult(c, "ResetPassword", res, err)
}

// UpdateTransactionLimit sets a new per-transaction ceiling
func (h *AccountHandler) UpdateTransactionLimit(c echo.Context) error {
	id, ok := customerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	var req models.UpdateTransactionLimitRequest
	if ok, err := bindRequest(c, h.validate, &req); !ok {
		return err
	}

	res, err := h.bankingUC.UpdateTransactionLimit(c.Request().Context(), id, &req)
	return writeResult(c, "UpdateTransactionLimit", res, err)
}

// CheckBalance returns the account balance
func (h *AccountHandler) CheckBalance(c echo.Context) error {
	id, ok := customerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	res, err := h.bankingUC.CheckBalance(c.Request().Context(), id)
	return writeResult(c, "CheckBalance", res, err)
}

// GetDetails returns the customer profile and account summary
func (h *AccountHandler) GetDetails(c echo.Context) error {
	id, ok := customerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	res, err := h.bankingUC.GetDetails(c.Request().Context(), id)
	return writeResult(c, "GetDetails", res, err)
}
