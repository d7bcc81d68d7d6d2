package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/piresc/easybank/internal/pkg/logger"
	"github.com/piresc/easybank/internal/pkg/models"
	"github.com/piresc/easybank/internal/utils"
	"github.com/piresc/easybank/services/banking"
	"github.com/shopspring/decimal"
)

const (
	accountNumberLength      = 10
	maxAccountNumberAttempts = 10
)

var (
	minimumDeposit          = decimal.NewFromInt(5000)
	defaultTransactionLimit = decimal.NewFromInt(200000)
	defaultInterestRate     = decimal.NewFromInt(4)
)

// Onboard registers a disabled customer with one account. The customer is
// enabled later by VerifyOnboardingOTP.
func (u *BankingUC) Onboard(ctx context.Context, req *models.OnboardRequest) (*models.Response[models.OnboardResponse], error) {
	email := utils.NormalizeEmail(req.Email)

	exists, err := u.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return models.Failure[models.OnboardResponse](models.StatusDuplicateEmail, "Email is already registered"), nil
	}
	if req.InitialDeposit.LessThan(minimumDeposit) {
		return models.Failure[models.OnboardResponse](models.StatusBelowMinimumDeposit,
			fmt.Sprintf("Initial deposit must be at least %s", minimumDeposit.String())), nil
	}
	if !utils.IsStrongPassword(req.Password) {
		return models.Failure[models.OnboardResponse](models.StatusWeakPassword,
			"Password must be 8 to 20 characters with an uppercase letter, a digit and a special character"), nil
	}
	if !utils.IsValidPin(req.Pin) {
		return models.Failure[models.OnboardResponse](models.StatusInvalidPin, "PIN must be exactly 4 digits"), nil
	}
	accountType, ok := models.ParseAccountType(strings.ToUpper(req.AccountType))
	if !ok {
		return models.Failure[models.OnboardResponse](models.StatusInvalidEnum, "Unsupported account type"), nil
	}
	currency, ok := models.ParseCurrencyType(strings.ToUpper(req.CurrencyType))
	if !ok {
		return models.Failure[models.OnboardResponse](models.StatusInvalidEnum, "Unsupported currency"), nil
	}

	passwordHash, err := utils.HashSecret(req.Password)
	if err != nil {
		return nil, err
	}
	pinHash, err := utils.HashSecret(req.Pin)
	if err != nil {
		return nil, err
	}

	customer := &models.Customer{
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		Email:        email,
		PhoneNumber:  strings.TrimSpace(req.PhoneNumber),
		PasswordHash: passwordHash,
		PinHash:      pinHash,
	}
	account := &models.Account{
		AccountType:      accountType,
		Currency:         currency,
		Balance:          req.InitialDeposit,
		TransactionLimit: defaultTransactionLimit,
		InterestRate:     defaultInterestRate,
	}

	// a concurrent onboarding may take the generated number between the
	// existence check and the insert
	for attempt := 1; ; attempt++ {
		account.AccountNumber, err = u.generateAccountNumber(ctx)
		if err != nil {
			return nil, err
		}
		err = u.repo.Transact(ctx, func(ctx context.Context, repo banking.BankingRepo) error {
			if err := repo.CreateCustomer(ctx, customer); err != nil {
				return err
			}
			account.CustomerID = customer.ID
			return repo.CreateAccount(ctx, account)
		})
		if !errors.Is(err, banking.ErrDuplicateAccountNumber) || attempt == maxAccountNumberAttempts {
			break
		}
	}
	if errors.Is(err, banking.ErrDuplicateEmail) {
		return models.Failure[models.OnboardResponse](models.StatusDuplicateEmail, "Email is already registered"), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to onboard customer: %w", err)
	}

	logger.InfoCtx(ctx, "Customer onboarded",
		logger.CustomerID(customer.ID),
		logger.String("account_type", string(accountType)))

	return models.Success("Account created successfully, verify your email to activate it", models.OnboardResponse{
		FirstName:     customer.FirstName,
		LastName:      customer.LastName,
		Email:         customer.Email,
		AccountNumber: account.AccountNumber,
		AccountType:   account.AccountType,
		Currency:      account.Currency,
		Balance:       account.Balance,
		IsEnabled:     customer.IsEnabled,
	}), nil
}

// generateAccountNumber returns an unused ten digit number made of a random
// prefix followed by the next customer sequence number.
func (u *BankingUC) generateAccountNumber(ctx context.Context) (string, error) {
	count, err := u.repo.CountCustomers(ctx)
	if err != nil {
		return "", err
	}

	suffix := strconv.FormatInt(count+1, 10)
	if len(suffix) >= accountNumberLength {
		suffix = suffix[len(suffix)-accountNumberLength+1:]
	}

	for attempt := 0; attempt < maxAccountNumberAttempts; attempt++ {
		prefix, err := u.digits(accountNumberLength - len(suffix))
		if err != nil {
			return "", err
		}
		number := prefix + suffix

		exists, err := u.repo.ExistsByAccountNumber(ctx, number)
		if err != nil {
			return "", err
		}
		if !exists {
			return number, nil
		}
	}
	return "", errors.New("failed to generate a unique account number")
}
