package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgconn"
	"github.com/piresc/easybank/internal/pkg/models"
	"github.com/piresc/easybank/services/banking"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestExistsByAccountNumber(t *testing.T) {
	repo, mock, cleanup := setupBankingRepoTest(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM accounts WHERE account_number = $1)")).
		WithArgs("4820000042").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	exists, err := repo.ExistsByAccountNumber(context.Background(), "4820000042")

	assert.NoError(t, err)
	assert.False(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAccount(t *testing.T) {
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	testCases := []struct {
		name       string
		mockSetup  func(mock sqlmock.Sqlmock)
		assertFunc func(t *testing.T, account *models.Account, err error)
	}{
		{
			name: "Success",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("^INSERT INTO accounts").
					WithArgs(int64(3), "4820000042", "SAVINGS", "NGN", sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
					WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(9, now, now))
			},
			assertFunc: func(t *testing.T, account *models.Account, err error) {
				assert.NoError(t, err)
				assert.Equal(t, int64(9), account.ID)
				assert.Equal(t, now, account.UpdatedAt)
			},
		},
		{
			name: "Account number taken",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("^INSERT INTO accounts").
					WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "accounts_account_number_key"})
			},
			assertFunc: func(t *testing.T, account *models.Account, err error) {
				assert.ErrorIs(t, err, banking.ErrDuplicateAccountNumber)
			},
		},
		{
			name: "Database Error",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("^INSERT INTO accounts").
					WillReturnError(errors.New("database error"))
			},
			assertFunc: func(t *testing.T, account *models.Account, err error) {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "failed to create account")
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupBankingRepoTest(t)
			defer cleanup()
			tc.mockSetup(mock)

			account := &models.Account{
				CustomerID:       3,
				AccountNumber:    "4820000042",
				AccountType:      models.AccountTypeSavings,
				Currency:         models.CurrencyNGN,
				Balance:          decimal.NewFromInt(5000),
				TransactionLimit: decimal.NewFromInt(200000),
				InterestRate:     decimal.NewFromInt(4),
			}
			err := repo.CreateAccount(context.Background(), account)

			tc.assertFunc(t, account, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestFindAccountByCustomerID(t *testing.T) {
	columns := []string{
		"id", "customer_id", "account_number", "account_type", "currency", "balance",
		"transaction_limit", "interest_rate", "created_at", "updated_at",
	}
	now := time.Now()

	testCases := []struct {
		name       string
		mockSetup  func(mock sqlmock.Sqlmock)
		assertFunc func(t *testing.T, account *models.Account, err error)
	}{
		{
			name: "Success",
			mockSetup: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(columns).
					AddRow(9, 3, "4820000042", "SAVINGS", "NGN", "5000.00", "200000.00", "4.00", now, now)
				mock.ExpectQuery("^SELECT (.+) FROM accounts WHERE customer_id").
					WithArgs(int64(3)).
					WillReturnRows(rows)
			},
			assertFunc: func(t *testing.T, account *models.Account, err error) {
				assert.NoError(t, err)
				assert.Equal(t, models.AccountTypeSavings, account.AccountType)
				assert.Equal(t, models.CurrencyNGN, account.Currency)
				assert.True(t, decimal.NewFromInt(5000).Equal(account.Balance))
				assert.True(t, decimal.NewFromInt(200000).Equal(account.TransactionLimit))
			},
		},
		{
			name: "Not Found",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("^SELECT (.+) FROM accounts WHERE customer_id").
					WillReturnRows(sqlmock.NewRows(columns))
			},
			assertFunc: func(t *testing.T, account *models.Account, err error) {
				assert.NoError(t, err)
				assert.Nil(t, account)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupBankingRepoTest(t)
			defer cleanup()
			tc.mockSetup(mock)

			account, err := repo.FindAccountByCustomerID(context.Background(), 3)

			tc.assertFunc(t, account, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUpdateTransactionLimit(t *testing.T) {
	repo, mock, cleanup := setupBankingRepoTest(t)
	defer cleanup()

	mock.ExpectExec("^UPDATE accounts SET transaction_limit").
		WithArgs("500000", int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateTransactionLimit(context.Background(), 3, decimal.NewFromInt(500000))

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
