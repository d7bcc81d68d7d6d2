package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/piresc/easybank/internal/pkg/models"
	"github.com/piresc/easybank/internal/utils"
	"github.com/piresc/easybank/services/banking"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validOnboardRequest() *models.OnboardRequest {
	return &models.OnboardRequest{
		FirstName:      "Ada",
		LastName:       "Lovelace",
		Email:          "Ada@Example.com",
		PhoneNumber:    "08012345678",
		Password:       testPassword,
		Pin:            "1234",
		AccountType:    "savings",
		CurrencyType:   "NGN",
		InitialDeposit: decimal.NewFromInt(5000),
	}
}

// fixedDigits returns a digit source that yields prefixes in order
func fixedDigits(prefixes ...string) func(n int) (string, error) {
	i := 0
	return func(n int) (string, error) {
		p := prefixes[i%len(prefixes)]
		i++
		return p[:n], nil
	}
}

func TestOnboard_Success(t *testing.T) {
	// Arrange
	e := newTestEnv(t)
	e.uc.digits = fixedDigits("48200000")

	e.repo.EXPECT().ExistsByEmail(gomock.Any(), "ada@example.com").Return(false, nil)
	e.repo.EXPECT().CountCustomers(gomock.Any()).Return(int64(41), nil)
	e.repo.EXPECT().ExistsByAccountNumber(gomock.Any(), "4820000042").Return(false, nil)
	e.expectTransact()
	e.repo.EXPECT().CreateCustomer(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, c *models.Customer) error {
			assert.False(t, c.IsEnabled)
			assert.Equal(t, "ada@example.com", c.Email)
			ok, err := utils.VerifySecret(c.PasswordHash, testPassword)
			assert.NoError(t, err)
			assert.True(t, ok)
			ok, _ = utils.VerifySecret(c.PinHash, "1234")
			assert.True(t, ok)
			c.ID = 3
			return nil
		})
	e.repo.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, a *models.Account) error {
			assert.Equal(t, int64(3), a.CustomerID)
			assert.True(t, decimal.NewFromInt(200000).Equal(a.TransactionLimit))
			assert.True(t, decimal.NewFromInt(4).Equal(a.InterestRate))
			return nil
		})

	// Act
	res, err := e.uc.Onboard(context.Background(), validOnboardRequest())

	// Assert
	require.NoError(t, err)
	require.True(t, res.OK())
	assert.Equal(t, "4820000042", res.Data.AccountNumber)
	assert.Len(t, res.Data.AccountNumber, 10)
	assert.Equal(t, models.AccountTypeSavings, res.Data.AccountType)
	assert.Equal(t, models.CurrencyNGN, res.Data.Currency)
	assert.True(t, decimal.NewFromInt(5000).Equal(res.Data.Balance))
	assert.False(t, res.Data.IsEnabled)
}

func TestOnboard_Rejections(t *testing.T) {
	testCases := []struct {
		name     string
		mutate   func(req *models.OnboardRequest)
		exists   bool
		expected models.StatusCode
	}{
		{
			name:     "Duplicate email",
			mutate:   func(req *models.OnboardRequest) {},
			exists:   true,
			expected: models.StatusDuplicateEmail,
		},
		{
			name: "Below minimum deposit",
			mutate: func(req *models.OnboardRequest) {
				req.InitialDeposit = decimal.RequireFromString("4999.99")
			},
			expected: models.StatusBelowMinimumDeposit,
		},
		{
			name: "Weak password",
			mutate: func(req *models.OnboardRequest) {
				req.Password = "password"
			},
			expected: models.StatusWeakPassword,
		},
		{
			name: "PIN too long",
			mutate: func(req *models.OnboardRequest) {
				req.Pin = "12345"
			},
			expected: models.StatusInvalidPin,
		},
		{
			name: "PIN with letters",
			mutate: func(req *models.OnboardRequest) {
				req.Pin = "12a4"
			},
			expected: models.StatusInvalidPin,
		},
		{
			name: "Unknown account type",
			mutate: func(req *models.OnboardRequest) {
				req.AccountType = "CHECKING"
			},
			expected: models.StatusInvalidEnum,
		},
		{
			name: "Unknown currency",
			mutate: func(req *models.OnboardRequest) {
				req.CurrencyType = "JPY"
			},
			expected: models.StatusInvalidEnum,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			e := newTestEnv(t)
			req := validOnboardRequest()
			tc.mutate(req)
			e.repo.EXPECT().ExistsByEmail(gomock.Any(), "ada@example.com").Return(tc.exists, nil)

			// Act
			res, err := e.uc.Onboard(context.Background(), req)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tc.expected, res.StatusCode)
			assert.Nil(t, res.Data)
		})
	}
}

func TestOnboard_AccountNumberCollision(t *testing.T) {
	// Arrange
	e := newTestEnv(t)
	e.uc.digits = fixedDigits("11111111", "22222222")

	e.repo.EXPECT().ExistsByEmail(gomock.Any(), "ada@example.com").Return(false, nil)
	e.repo.EXPECT().CountCustomers(gomock.Any()).Return(int64(41), nil)
	gomock.InOrder(
		e.repo.EXPECT().ExistsByAccountNumber(gomock.Any(), "1111111142").Return(true, nil),
		e.repo.EXPECT().ExistsByAccountNumber(gomock.Any(), "2222222242").Return(false, nil),
	)
	e.expectTransact()
	e.repo.EXPECT().CreateCustomer(gomock.Any(), gomock.Any()).Return(nil)
	e.repo.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).Return(nil)

	// Act
	res, err := e.uc.Onboard(context.Background(), validOnboardRequest())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "2222222242", res.Data.AccountNumber)
}

func TestOnboard_AccountNumberTakenConcurrently(t *testing.T) {
	// Arrange
	e := newTestEnv(t)
	e.uc.digits = fixedDigits("11111111", "22222222")

	e.repo.EXPECT().ExistsByEmail(gomock.Any(), "ada@example.com").Return(false, nil)
	e.repo.EXPECT().CountCustomers(gomock.Any()).Return(int64(41), nil).Times(2)
	e.repo.EXPECT().ExistsByAccountNumber(gomock.Any(), gomock.Any()).Return(false, nil).Times(2)
	e.expectTransact().Times(2)
	e.repo.EXPECT().CreateCustomer(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	gomock.InOrder(
		e.repo.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).Return(banking.ErrDuplicateAccountNumber),
		e.repo.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).Return(nil),
	)

	// Act
	res, err := e.uc.Onboard(context.Background(), validOnboardRequest())

	// Assert
	require.NoError(t, err)
	require.True(t, res.OK())
	assert.Equal(t, "2222222242", res.Data.AccountNumber)
}

func TestOnboard_DuplicateEmailRace(t *testing.T) {
	// Arrange
	e := newTestEnv(t)
	e.uc.digits = fixedDigits("48200000")

	e.repo.EXPECT().ExistsByEmail(gomock.Any(), "ada@example.com").Return(false, nil)
	e.repo.EXPECT().CountCustomers(gomock.Any()).Return(int64(41), nil)
	e.repo.EXPECT().ExistsByAccountNumber(gomock.Any(), gomock.Any()).Return(false, nil)
	e.expectTransact()
	e.repo.EXPECT().CreateCustomer(gomock.Any(), gomock.Any()).Return(banking.ErrDuplicateEmail)

	// Act
	res, err := e.uc.Onboard(context.Background(), validOnboardRequest())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, models.StatusDuplicateEmail, res.StatusCode)
}

func TestOnboard_RepositoryError(t *testing.T) {
	e := newTestEnv(t)
	e.repo.EXPECT().ExistsByEmail(gomock.Any(), "ada@example.com").Return(false, errors.New("connection refused"))

	res, err := e.uc.Onboard(context.Background(), validOnboardRequest())

	assert.Error(t, err)
	assert.Nil(t, res)
}

func TestGenerateAccountNumber_LargeSequence(t *testing.T) {
	e := newTestEnv(t)
	e.uc.digits = fixedDigits("9")
	e.repo.EXPECT().CountCustomers(gomock.Any()).Return(int64(12345678910), nil)
	e.repo.EXPECT().ExistsByAccountNumber(gomock.Any(), "9345678911").Return(false, nil)

	number, err := e.uc.generateAccountNumber(context.Background())

	require.NoError(t, err)
	assert.Len(t, number, 10)
}
