package repository

import (
	"context"
	"fmt"

	"github.com/piresc/easybank/internal/pkg/models"
)

const otpSelect = `SELECT id, customer_id, code, purpose, generated_at, expires_at, expired
	FROM one_time_passwords
	WHERE customer_id = $1 AND code = $2
	ORDER BY generated_at DESC
	LIMIT 1`

// SaveOTP stores a newly issued code and fills its ID
func (r *BankingRepo) SaveOTP(ctx context.Context, otp *models.OneTimePassword) error {
	query := `
		INSERT INTO one_time_passwords (customer_id, code, purpose, generated_at, expires_at, expired)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := r.q.QueryRowxContext(ctx, query,
		otp.CustomerID,
		otp.Code,
		otp.Purpose,
		otp.GeneratedAt,
		otp.ExpiresAt,
		otp.Expired,
	).Scan(&otp.ID)
	if err != nil {
		return fmt.Errorf("failed to save otp: %w", err)
	}
	return nil
}

// FindOTP returns the newest record of code for the customer
func (r *BankingRepo) FindOTP(ctx context.Context, customerID int64, code string) (*models.OneTimePassword, error) {
	return r.findOTP(ctx, otpSelect, customerID, code)
}

// FindOTPForUpdate is FindOTP holding a row lock until the transaction ends
func (r *BankingRepo) FindOTPForUpdate(ctx context.Context, customerID int64, code string) (*models.OneTimePassword, error) {
	return r.findOTP(ctx, otpSelect+` FOR UPDATE`, customerID, code)
}

func (r *BankingRepo) findOTP(ctx context.Context, query string, customerID int64, code string) (*models.OneTimePassword, error) {
	var otp models.OneTimePassword
	found, err := r.get(ctx, &otp, query, customerID, code)
	if err != nil {
		return nil, fmt.Errorf("failed to get otp: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &otp, nil
}

// ConsumeOTP flags a code as used
func (r *BankingRepo) ConsumeOTP(ctx context.Context, id int64) error {
	if _, err := r.q.ExecContext(ctx, `UPDATE one_time_passwords SET expired = TRUE WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to consume otp: %w", err)
	}
	return nil
}
