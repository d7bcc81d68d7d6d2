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
	"github.com/stretchr/testify/assert"
)

var customerRowColumns = []string{
	"id", "first_name", "last_name", "email", "phone_number", "password_hash", "pin_hash",
	"is_enabled", "is_suspended", "created_at", "updated_at",
}

func TestExistsByEmail(t *testing.T) {
	query := regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM customers WHERE email = $1)")

	testCases := []struct {
		name       string
		mockSetup  func(mock sqlmock.Sqlmock)
		assertFunc func(t *testing.T, exists bool, err error)
	}{
		{
			name: "Exists",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(query).
					WithArgs("ada@example.com").
					WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
			},
			assertFunc: func(t *testing.T, exists bool, err error) {
				assert.NoError(t, err)
				assert.True(t, exists)
			},
		},
		{
			name: "Database Error",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(query).
					WithArgs("ada@example.com").
					WillReturnError(errors.New("database error"))
			},
			assertFunc: func(t *testing.T, exists bool, err error) {
				assert.Error(t, err)
				assert.False(t, exists)
				assert.Contains(t, err.Error(), "failed to check email")
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupBankingRepoTest(t)
			defer cleanup()
			tc.mockSetup(mock)

			exists, err := repo.ExistsByEmail(context.Background(), "ada@example.com")

			tc.assertFunc(t, exists, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCountCustomers(t *testing.T) {
	repo, mock, cleanup := setupBankingRepoTest(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM customers")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(41))

	count, err := repo.CountCustomers(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(41), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateCustomer(t *testing.T) {
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	testCases := []struct {
		name       string
		mockSetup  func(mock sqlmock.Sqlmock)
		assertFunc func(t *testing.T, customer *models.Customer, err error)
	}{
		{
			name: "Success",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("^INSERT INTO customers").
					WithArgs("Ada", "Lovelace", "ada@example.com", "08012345678", "pw-hash", "pin-hash", false, false).
					WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(1, now, now))
			},
			assertFunc: func(t *testing.T, customer *models.Customer, err error) {
				assert.NoError(t, err)
				assert.Equal(t, int64(1), customer.ID)
				assert.Equal(t, now, customer.CreatedAt)
			},
		},
		{
			name: "Duplicate Email",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("^INSERT INTO customers").
					WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "customers_email_key"})
			},
			assertFunc: func(t *testing.T, customer *models.Customer, err error) {
				assert.ErrorIs(t, err, banking.ErrDuplicateEmail)
			},
		},
		{
			name: "Database Error",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("^INSERT INTO customers").
					WillReturnError(errors.New("database error"))
			},
			assertFunc: func(t *testing.T, customer *models.Customer, err error) {
				assert.Error(t, err)
				assert.NotErrorIs(t, err, banking.ErrDuplicateEmail)
				assert.Contains(t, err.Error(), "failed to create customer")
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupBankingRepoTest(t)
			defer cleanup()
			tc.mockSetup(mock)

			customer := &models.Customer{
				FirstName:    "Ada",
				LastName:     "Lovelace",
				Email:        "ada@example.com",
				PhoneNumber:  "08012345678",
				PasswordHash: "pw-hash",
				PinHash:      "pin-hash",
			}
			err := repo.CreateCustomer(context.Background(), customer)

			tc.assertFunc(t, customer, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestFindCustomerByEmail(t *testing.T) {
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	testCases := []struct {
		name       string
		mockSetup  func(mock sqlmock.Sqlmock)
		assertFunc func(t *testing.T, customer *models.Customer, err error)
	}{
		{
			name: "Success",
			mockSetup: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(customerRowColumns).
					AddRow(3, "Ada", "Lovelace", "ada@example.com", "08012345678", "pw-hash", "pin-hash", true, false, now, now)
				mock.ExpectQuery("^SELECT (.+) FROM customers WHERE email").
					WithArgs("ada@example.com").
					WillReturnRows(rows)
			},
			assertFunc: func(t *testing.T, customer *models.Customer, err error) {
				assert.NoError(t, err)
				assert.NotNil(t, customer)
				assert.Equal(t, int64(3), customer.ID)
				assert.Equal(t, "pw-hash", customer.PasswordHash)
				assert.True(t, customer.IsEnabled)
			},
		},
		{
			name: "Not Found",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("^SELECT (.+) FROM customers WHERE email").
					WithArgs("ada@example.com").
					WillReturnRows(sqlmock.NewRows(customerRowColumns))
			},
			assertFunc: func(t *testing.T, customer *models.Customer, err error) {
				assert.NoError(t, err)
				assert.Nil(t, customer)
			},
		},
		{
			name: "Database Error",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("^SELECT (.+) FROM customers WHERE email").
					WillReturnError(errors.New("database error"))
			},
			assertFunc: func(t *testing.T, customer *models.Customer, err error) {
				assert.Error(t, err)
				assert.Nil(t, customer)
				assert.Contains(t, err.Error(), "failed to get customer by email")
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupBankingRepoTest(t)
			defer cleanup()
			tc.mockSetup(mock)

			customer, err := repo.FindCustomerByEmail(context.Background(), "ada@example.com")

			tc.assertFunc(t, customer, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestFindCustomerByID(t *testing.T) {
	repo, mock, cleanup := setupBankingRepoTest(t)
	defer cleanup()

	now := time.Now()
	rows := sqlmock.NewRows(customerRowColumns).
		AddRow(3, "Ada", "Lovelace", "ada@example.com", "08012345678", "pw-hash", "pin-hash", true, false, now, now)
	mock.ExpectQuery("^SELECT (.+) FROM customers WHERE id").
		WithArgs(int64(3)).
		WillReturnRows(rows)

	customer, err := repo.FindCustomerByID(context.Background(), 3)

	assert.NoError(t, err)
	assert.Equal(t, "ada@example.com", customer.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateCustomer(t *testing.T) {
	testCases := []struct {
		name       string
		mockSetup  func(mock sqlmock.Sqlmock)
		assertFunc func(t *testing.T, err error)
	}{
		{
			name: "Success",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("^UPDATE customers SET first_name").
					WithArgs("Ada", "King", "ada@example.com", "08012345678", "pw-hash", int64(3)).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			assertFunc: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "Email taken concurrently",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("^UPDATE customers SET first_name").
					WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "customers_email_key"})
			},
			assertFunc: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, banking.ErrDuplicateEmail)
			},
		},
		{
			name: "Database Error",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("^UPDATE customers SET first_name").
					WillReturnError(errors.New("database error"))
			},
			assertFunc: func(t *testing.T, err error) {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "failed to update customer")
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupBankingRepoTest(t)
			defer cleanup()
			tc.mockSetup(mock)

			err := repo.UpdateCustomer(context.Background(), &models.Customer{
				ID:           3,
				FirstName:    "Ada",
				LastName:     "King",
				Email:        "ada@example.com",
				PhoneNumber:  "08012345678",
				PasswordHash: "pw-hash",
			})

			tc.assertFunc(t, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEnableCustomer(t *testing.T) {
	repo, mock, cleanup := setupBankingRepoTest(t)
	defer cleanup()

	mock.ExpectExec("^UPDATE customers SET is_enabled = TRUE").
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.EnableCustomer(context.Background(), 3))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindAdministratorByEmail(t *testing.T) {
	repo, mock, cleanup := setupBankingRepoTest(t)
	defer cleanup()

	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"id", "first_name", "last_name", "email", "phone_number", "password_hash",
		"is_enabled", "is_suspended", "created_at", "updated_at",
	}).AddRow(1, "Grace", "Hopper", "ops@easybank.com", "", "pw-hash", true, false, now, now)
	mock.ExpectQuery("^SELECT (.+) FROM administrators WHERE email").
		WithArgs("ops@easybank.com").
		WillReturnRows(rows)

	admin, err := repo.FindAdministratorByEmail(context.Background(), "ops@easybank.com")

	assert.NoError(t, err)
	assert.Equal(t, models.PrincipalAdministrator, admin.AsPrincipal().Kind)
	assert.Equal(t, int64(1), admin.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
