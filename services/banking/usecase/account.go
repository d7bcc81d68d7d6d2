package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/piresc/easybank/internal/pkg/logger"
	"github.com/piresc/easybank/internal/pkg/models"
	"github.com/piresc/easybank/internal/utils"
	"github.com/piresc/easybank/services/banking"
)

const lastUpdatedLayout = "2006-01-02 15:04"

// UpdateDetails changes the non-empty profile fields. A new email revokes
// every token of the customer.
func (u *BankingUC) UpdateDetails(ctx context.Context, customerID int64, req *models.UpdateDetailsRequest) (*models.Response[models.CustomerDetails], error) {
	return gated(ctx, u, customerID, req.OTPCode, func(ctx context.Context, repo banking.BankingRepo) (*models.Response[models.CustomerDetails], error) {
		customer, err := repo.FindCustomerByID(ctx, customerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return models.Failure[models.CustomerDetails](models.StatusPrincipalNotFound, "Account not found"), nil
		}

		emailChanged := false
		if email := utils.NormalizeEmail(req.Email); email != "" && email != customer.Email {
			exists, err := repo.ExistsByEmail(ctx, email)
			if err != nil {
				return nil, err
			}
			if exists {
				return models.Failure[models.CustomerDetails](models.StatusDuplicateEmail, "Email is already registered"), nil
			}
			customer.Email = email
			emailChanged = true
		}
		if v := strings.TrimSpace(req.FirstName); v != "" {
			customer.FirstName = v
		}
		if v := strings.TrimSpace(req.LastName); v != "" {
			customer.LastName = v
		}
		if v := strings.TrimSpace(req.PhoneNumber); v != "" {
			customer.PhoneNumber = v
		}

		if err := repo.UpdateCustomer(ctx, customer); err != nil {
			if errors.Is(err, banking.ErrDuplicateEmail) {
				return models.Failure[models.CustomerDetails](models.StatusDuplicateEmail, "Email is already registered"), nil
			}
			return nil, err
		}
		if emailChanged {
			if _, err := repo.RevokeAllTokens(ctx, customer.AsPrincipal().Ref()); err != nil {
				return nil, err
			}
		}

		account, err := repo.FindAccountByCustomerID(ctx, customerID)
		if err != nil {
			return nil, err
		}
		if account == nil {
			return models.Failure[models.CustomerDetails](models.StatusAccountNotFound, "Account not found"), nil
		}

		logger.InfoCtx(ctx, "Customer details updated",
			logger.CustomerID(customerID),
			logger.Bool("email_changed", emailChanged))
		return models.Success("Details updated successfully", details(customer, account)), nil
	})
}

// ResetPassword replaces the password after checking the current one
func (u *BankingUC) ResetPassword(ctx context.Context, customerID int64, req *models.ResetPasswordRequest) (*models.Response[models.Empty], error) {
	return gated(ctx, u, customerID, req.OTPCode, func(ctx context.Context, repo banking.BankingRepo) (*models.Response[models.Empty], error) {
		customer, err := repo.FindCustomerByID(ctx, customerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return models.Failure[models.Empty](models.StatusPrincipalNotFound, "Account not found"), nil
		}

		ok, err := utils.VerifySecret(customer.PasswordHash, req.CurrentPassword)
		if err != nil {
			return nil, err
		}
		if !ok {
			return models.Failure[models.Empty](models.StatusInvalidCredentials, "Current password is incorrect"), nil
		}
		if !utils.IsStrongPassword(req.NewPassword) {
			return models.Failure[models.Empty](models.StatusWeakPassword,
				"Password must be 8 to 20 characters with an uppercase letter, a digit and a special character"), nil
		}

		customer.PasswordHash, err = utils.HashSecret(req.NewPassword)
		if err != nil {
			return nil, err
		}
		if err := repo.UpdateCustomer(ctx, customer); err != nil {
			return nil, err
		}

		logger.InfoCtx(ctx, "Customer password reset", logger.CustomerID(customerID))
		return models.Success("Password reset successfully", models.Empty{}), nil
	})
}

// UpdateTransactionLimit sets a new positive per-transaction ceiling
func (u *BankingUC) UpdateTransactionLimit(ctx context.Context, customerID int64, req *models.UpdateTransactionLimitRequest) (*models.Response[models.CustomerDetails], error) {
	return gated(ctx, u, customerID, req.OTPCode, func(ctx context.Context, repo banking.BankingRepo) (*models.Response[models.CustomerDetails], error) {
		if !req.Amount.IsPositive() {
			return models.Failure[models.CustomerDetails](models.StatusInvalidAmount, "Transaction limit must be greater than zero"), nil
		}

		customer, err := repo.FindCustomerByID(ctx, customerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return models.Failure[models.CustomerDetails](models.StatusPrincipalNotFound, "Account not found"), nil
		}
		account, err := repo.FindAccountByCustomerID(ctx, customerID)
		if err != nil {
			return nil, err
		}
		if account == nil {
			return models.Failure[models.CustomerDetails](models.StatusAccountNotFound, "Account not found"), nil
		}

		if err := repo.UpdateTransactionLimit(ctx, customerID, req.Amount); err != nil {
			return nil, err
		}
		account.TransactionLimit = req.Amount

		logger.InfoCtx(ctx, "Transaction limit updated",
			logger.CustomerID(customerID),
			logger.String("limit", req.Amount.String()))
		return models.Success("Transaction limit updated successfully", details(customer, account)), nil
	})
}

// CheckBalance returns the balance of the customer's account
func (u *BankingUC) CheckBalance(ctx context.Context, customerID int64) (*models.Response[models.ViewBalanceResponse], error) {
	customer, account, res, err := loadCustomerAccount[models.ViewBalanceResponse](ctx, u, customerID)
	if res != nil || err != nil {
		return res, err
	}
	return models.Success("Balance retrieved successfully", models.ViewBalanceResponse{
		Email:         customer.Email,
		AccountNumber: account.AccountNumber,
		Balance:       account.Balance,
		LastUpdatedAt: account.UpdatedAt.Format(lastUpdatedLayout),
	}), nil
}

// GetDetails returns the profile and account settings of the customer
func (u *BankingUC) GetDetails(ctx context.Context, customerID int64) (*models.Response[models.CustomerDetails], error) {
	customer, account, res, err := loadCustomerAccount[models.CustomerDetails](ctx, u, customerID)
	if res != nil || err != nil {
		return res, err
	}
	return models.Success("Details retrieved successfully", details(customer, account)), nil
}

// loadCustomerAccount fetches both records, returning a failure envelope
// when either is missing
func loadCustomerAccount[T any](ctx context.Context, u *BankingUC, customerID int64) (*models.Customer, *models.Account, *models.Response[T], error) {
	customer, err := u.repo.FindCustomerByID(ctx, customerID)
	if err != nil {
		return nil, nil, nil, err
	}
	if customer == nil {
		return nil, nil, models.Failure[T](models.StatusPrincipalNotFound, "Account not found"), nil
	}
	account, err := u.repo.FindAccountByCustomerID(ctx, customerID)
	if err != nil {
		return nil, nil, nil, err
	}
	if account == nil {
		return nil, nil, models.Failure[T](models.StatusAccountNotFound, "Account not found"), nil
	}
	return customer, account, nil, nil
}

func details(customer *models.Customer, account *models.Account) models.CustomerDetails {
	return models.CustomerDetails{
		FirstName:        customer.FirstName,
		LastName:         customer.LastName,
		Email:            customer.Email,
		PhoneNumber:      customer.PhoneNumber,
		AccountNumber:    account.AccountNumber,
		AccountType:      account.AccountType,
		Currency:         account.Currency,
		TransactionLimit: account.TransactionLimit,
		InterestRate:     account.InterestRate,
	}
}
