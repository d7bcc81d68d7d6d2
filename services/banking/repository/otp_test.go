package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/piresc/easybank/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var otpRowColumns = []string{"id", "customer_id", "code", "purpose", "generated_at", "expires_at", "expired"}

func TestSaveOTP(t *testing.T) {
	repo, mock, cleanup := setupBankingRepoTest(t)
	defer cleanup()

	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	otp := &models.OneTimePassword{
		CustomerID:  3,
		Code:        "120934",
		Purpose:     models.OTPPurposeSensitiveAction,
		GeneratedAt: now,
		ExpiresAt:   now.Add(4 * time.Minute),
	}
	mock.ExpectQuery("^INSERT INTO one_time_passwords").
		WithArgs(int64(3), "120934", "SENSITIVE_ACTION", now, now.Add(4*time.Minute), false).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))

	err := repo.SaveOTP(context.Background(), otp)

	assert.NoError(t, err)
	assert.Equal(t, int64(11), otp.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindOTP(t *testing.T) {
	now := time.Now()

	testCases := []struct {
		name       string
		forUpdate  bool
		mockSetup  func(mock sqlmock.Sqlmock)
		assertFunc func(t *testing.T, otp *models.OneTimePassword, err error)
	}{
		{
			name: "Newest match",
			mockSetup: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(otpRowColumns).
					AddRow(11, 3, "120934", "ONBOARDING", now, now.Add(4*time.Minute), false)
				mock.ExpectQuery("^SELECT (.+) FROM one_time_passwords WHERE customer_id = \\$1 AND code = \\$2 ORDER BY generated_at DESC LIMIT 1$").
					WithArgs(int64(3), "120934").
					WillReturnRows(rows)
			},
			assertFunc: func(t *testing.T, otp *models.OneTimePassword, err error) {
				require.NoError(t, err)
				assert.Equal(t, int64(11), otp.ID)
				assert.Equal(t, models.OTPPurposeOnboarding, otp.Purpose)
				assert.Equal(t, models.OTPValid, otp.Classify(now))
			},
		},
		{
			name:      "Row lock for gated mutations",
			forUpdate: true,
			mockSetup: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(otpRowColumns).
					AddRow(11, 3, "120934", "SENSITIVE_ACTION", now, now.Add(4*time.Minute), true)
				mock.ExpectQuery("LIMIT 1 FOR UPDATE$").
					WithArgs(int64(3), "120934").
					WillReturnRows(rows)
			},
			assertFunc: func(t *testing.T, otp *models.OneTimePassword, err error) {
				require.NoError(t, err)
				assert.Equal(t, models.OTPExpired, otp.Classify(now))
			},
		},
		{
			name: "Unknown code",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("^SELECT (.+) FROM one_time_passwords").
					WillReturnRows(sqlmock.NewRows(otpRowColumns))
			},
			assertFunc: func(t *testing.T, otp *models.OneTimePassword, err error) {
				assert.NoError(t, err)
				assert.Nil(t, otp)
				assert.Equal(t, models.OTPInvalid, otp.Classify(now))
			},
		},
		{
			name: "Database Error",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("^SELECT (.+) FROM one_time_passwords").
					WillReturnError(errors.New("database error"))
			},
			assertFunc: func(t *testing.T, otp *models.OneTimePassword, err error) {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "failed to get otp")
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupBankingRepoTest(t)
			defer cleanup()
			tc.mockSetup(mock)

			var (
				otp *models.OneTimePassword
				err error
			)
			if tc.forUpdate {
				otp, err = repo.FindOTPForUpdate(context.Background(), 3, "120934")
			} else {
				otp, err = repo.FindOTP(context.Background(), 3, "120934")
			}

			tc.assertFunc(t, otp, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestConsumeOTP(t *testing.T) {
	repo, mock, cleanup := setupBankingRepoTest(t)
	defer cleanup()

	mock.ExpectExec("^UPDATE one_time_passwords SET expired = TRUE WHERE id").
		WithArgs(int64(11)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.ConsumeOTP(context.Background(), 11))
	assert.NoError(t, mock.ExpectationsWereMet())
}
