package repository

import (
	"context"
	"fmt"

	"github.com/piresc/easybank/internal/pkg/models"
	"github.com/piresc/easybank/services/banking"
	"github.com/shopspring/decimal"
)

const accountNumberKey = "accounts_account_number_key"

// ExistsByAccountNumber reports whether accountNumber is already assigned
func (r *BankingRepo) ExistsByAccountNumber(ctx context.Context, accountNumber string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM accounts WHERE account_number = $1)`
	if err := r.q.GetContext(ctx, &exists, query, accountNumber); err != nil {
		return false, fmt.Errorf("failed to check account number: %w", err)
	}
	return exists, nil
}

// CreateAccount inserts an account and fills its generated fields
func (r *BankingRepo) CreateAccount(ctx context.Context, account *models.Account) error {
	query := `
		INSERT INTO accounts (
			customer_id, account_number, account_type, currency, balance, transaction_limit, interest_rate
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`
	err := r.q.QueryRowxContext(ctx, query,
		account.CustomerID,
		account.AccountNumber,
		account.AccountType,
		account.Currency,
		account.Balance,
		account.TransactionLimit,
		account.InterestRate,
	).Scan(&account.ID, &account.CreatedAt, &account.UpdatedAt)
	if err != nil {
		if constraint, ok := violatedConstraint(err); ok && constraint == accountNumberKey {
			return banking.ErrDuplicateAccountNumber
		}
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

// FindAccountByCustomerID retrieves the account owned by a customer
func (r *BankingRepo) FindAccountByCustomerID(ctx context.Context, customerID int64) (*models.Account, error) {
	var account models.Account
	query := `
		SELECT id, customer_id, account_number, account_type, currency, balance,
			transaction_limit, interest_rate, created_at, updated_at
		FROM accounts WHERE customer_id = $1
	`
	found, err := r.get(ctx, &account, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &account, nil
}

// UpdateTransactionLimit sets the per-transaction ceiling of a customer's account
func (r *BankingRepo) UpdateTransactionLimit(ctx context.Context, customerID int64, limit decimal.Decimal) error {
	query := `UPDATE accounts SET transaction_limit = $1, updated_at = NOW() WHERE customer_id = $2`
	if _, err := r.q.ExecContext(ctx, query, limit, customerID); err != nil {
		return fmt.Errorf("failed to update transaction limit: %w", err)
	}
	return nil
}
