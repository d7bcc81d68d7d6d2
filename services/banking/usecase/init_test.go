package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/piresc/easybank/internal/pkg/jwt"
	"github.com/piresc/easybank/internal/pkg/models"
	"github.com/piresc/easybank/internal/utils"
	"github.com/piresc/easybank/services/banking"
	"github.com/piresc/easybank/services/banking/mocks"
	"github.com/shopspring/decimal"
)

const testPassword = "Secr3t!pass"

var testPasswordHash = mustHash(testPassword)

func mustHash(secret string) string {
	hash, err := utils.HashSecret(secret)
	if err != nil {
		panic(err)
	}
	return hash
}

type testEnv struct {
	repo  *mocks.MockBankingRepo
	gw    *mocks.MockBankingGW
	codec *jwt.Codec
	uc    *BankingUC
	now   time.Time
}

func newTestEnv(t *testing.T) *testEnv {
	ctrl := gomock.NewController(t)

	cfg := &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret",
			Issuer:     "easybank-test",
			AccessTTL:  24 * time.Hour,
			RefreshTTL: 24 * time.Hour,
		},
		OTP: models.OTPConfig{
			TTL:    4 * time.Minute,
			Digits: 6,
		},
	}

	env := &testEnv{
		repo:  mocks.NewMockBankingRepo(ctrl),
		gw:    mocks.NewMockBankingGW(ctrl),
		codec: jwt.NewCodec(cfg.JWT),
		now:   time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
	}
	clock := func() time.Time { return env.now }
	env.codec.SetClock(clock)

	env.uc = NewBankingUC(env.repo, env.gw, env.codec, cfg)
	env.uc.now = clock
	return env
}

// expectTransact runs the transaction body against the mock repository
func (e *testEnv) expectTransact() *gomock.Call {
	return e.repo.EXPECT().Transact(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn banking.TxFunc) error {
			return fn(ctx, e.repo)
		})
}

// expectTokenRotation expects the revoke-then-save pair for owner and
// captures the stored record
func (e *testEnv) expectTokenRotation(owner models.PrincipalRef, saved **models.AuthToken) {
	gomock.InOrder(
		e.repo.EXPECT().RevokeAllTokens(gomock.Any(), owner).Return(int64(1), nil),
		e.repo.EXPECT().SaveToken(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, token *models.AuthToken) error {
				*saved = token
				return nil
			}),
	)
}

func (e *testEnv) mint(t *testing.T, p models.Principal, use models.TokenUse) string {
	t.Helper()
	token, _, err := e.codec.Mint(p, use, "tok-1", 24*time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	return token
}

func enabledCustomer() *models.Customer {
	return &models.Customer{
		ID:           3,
		FirstName:    "Ada",
		LastName:     "Lovelace",
		Email:        "ada@example.com",
		PhoneNumber:  "08012345678",
		PasswordHash: testPasswordHash,
		IsEnabled:    true,
	}
}

func savingsAccount() *models.Account {
	return &models.Account{
		ID:               9,
		CustomerID:       3,
		AccountNumber:    "4820000042",
		AccountType:      models.AccountTypeSavings,
		Currency:         models.CurrencyNGN,
		Balance:          decimal.NewFromInt(5000),
		TransactionLimit: decimal.NewFromInt(200000),
		InterestRate:     decimal.NewFromInt(4),
		UpdatedAt:        time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC),
	}
}
