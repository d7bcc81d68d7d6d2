package usecase

import (
	"context"
	"errors"

	"github.com/piresc/easybank/internal/pkg/logger"
	"github.com/piresc/easybank/internal/pkg/models"
	"github.com/piresc/easybank/internal/utils"
	"github.com/piresc/easybank/services/banking"
)

const defaultOTPDigits = 6

// errRejected rolls back a gated transaction whose mutation was refused
var errRejected = errors.New("gated mutation rejected")

// SendOnboardingOTP emails a verification code to a registered customer
func (u *BankingUC) SendOnboardingOTP(ctx context.Context, req *models.SendOTPRequest) (*models.Response[models.OTPResponse], error) {
	customer, err := u.repo.FindCustomerByEmail(ctx, utils.NormalizeEmail(req.Email))
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return models.Failure[models.OTPResponse](models.StatusPrincipalNotFound, "Account not found"), nil
	}
	return u.issueOTP(ctx, customer, models.OTPPurposeOnboarding)
}

// IssueOTP emails a code authorising one sensitive action
func (u *BankingUC) IssueOTP(ctx context.Context, customerID int64) (*models.Response[models.OTPResponse], error) {
	customer, err := u.repo.FindCustomerByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return models.Failure[models.OTPResponse](models.StatusPrincipalNotFound, "Account not found"), nil
	}
	return u.issueOTP(ctx, customer, models.OTPPurposeSensitiveAction)
}

func (u *BankingUC) issueOTP(ctx context.Context, customer *models.Customer, purpose models.OTPPurpose) (*models.Response[models.OTPResponse], error) {
	digits := u.cfg.OTP.Digits
	if digits <= 0 {
		digits = defaultOTPDigits
	}
	code, err := u.digits(digits)
	if err != nil {
		return nil, err
	}

	now := u.now()
	otp := &models.OneTimePassword{
		CustomerID:  customer.ID,
		Code:        code,
		Purpose:     purpose,
		GeneratedAt: now,
		ExpiresAt:   now.Add(u.cfg.OTP.TTL),
	}
	if err := u.repo.SaveOTP(ctx, otp); err != nil {
		return nil, err
	}

	expiresIn := minutesLabel(u.cfg.OTP.TTL)
	u.publishEmail(ctx, &models.EmailEvent{
		Kind:      models.EmailKindOTP,
		Recipient: customer.Email,
		Subject:   "Your EasyBanking verification code",
		FirstName: customer.FirstName,
		OTPCode:   code,
		ExpiresIn: expiresIn,
	})

	logger.InfoCtx(ctx, "OTP issued",
		logger.CustomerID(customer.ID),
		logger.String("purpose", string(purpose)))

	return models.Success("OTP sent to your email", models.OTPResponse{
		Email:     customer.Email,
		ExpiresIn: expiresIn,
		ExpiresAt: otp.ExpiresAt,
	}), nil
}

// VerifyOTP reports whether code is currently usable without consuming it
func (u *BankingUC) VerifyOTP(ctx context.Context, customerID int64, code string) (*models.Response[models.Empty], error) {
	otp, err := u.repo.FindOTP(ctx, customerID, code)
	if err != nil {
		return nil, err
	}
	if res := otpFailure[models.Empty](otp.Classify(u.now())); res != nil {
		return res, nil
	}
	return models.Success("OTP is valid", models.Empty{}), nil
}

// VerifyOnboardingOTP checks the customer's credentials and onboarding code,
// enables the customer and signs them in. The code is left unconsumed.
func (u *BankingUC) VerifyOnboardingOTP(ctx context.Context, req *models.VerifyOnboardingRequest) (*models.Response[models.AuthResponse], error) {
	customer, err := u.repo.FindCustomerByEmail(ctx, utils.NormalizeEmail(req.Email))
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return models.Failure[models.AuthResponse](models.StatusPrincipalNotFound, invalidLoginMessage), nil
	}

	ok, err := utils.VerifySecret(customer.PasswordHash, req.Password)
	if err != nil {
		return nil, err
	}
	if !ok {
		return models.Failure[models.AuthResponse](models.StatusInvalidCredentials, invalidLoginMessage), nil
	}
	if customer.IsSuspended {
		return models.Failure[models.AuthResponse](models.StatusAccountSuspended, "Account is suspended, contact support"), nil
	}

	otp, err := u.repo.FindOTP(ctx, customer.ID, req.OTPCode)
	if err != nil {
		return nil, err
	}
	status := otp.Classify(u.now())
	if otp != nil && otp.Purpose != models.OTPPurposeOnboarding {
		status = models.OTPInvalid
	}
	if res := otpFailure[models.AuthResponse](status); res != nil {
		return res, nil
	}

	wasEnabled := customer.IsEnabled
	customer.IsEnabled = true

	pair, err := u.issueTokens(ctx, customer.AsPrincipal(), func(ctx context.Context, repo banking.BankingRepo) error {
		if wasEnabled {
			return nil
		}
		return repo.EnableCustomer(ctx, customer.ID)
	})
	if err != nil {
		return nil, err
	}

	if !wasEnabled {
		u.publishEmail(ctx, &models.EmailEvent{
			Kind:      models.EmailKindWelcome,
			Recipient: customer.Email,
			Subject:   "Welcome to EasyBanking",
			FirstName: customer.FirstName,
		})
		logger.InfoCtx(ctx, "Customer verified", logger.CustomerID(customer.ID))
	}
	return models.Success("Email verified successfully", *pair), nil
}

// gated runs mutate in one transaction behind a SENSITIVE_ACTION code. The
// code is locked for the duration and consumed only when mutate succeeds;
// a failure envelope from mutate rolls back every write it made.
func gated[T any](
	ctx context.Context,
	u *BankingUC,
	customerID int64,
	code string,
	mutate func(ctx context.Context, repo banking.BankingRepo) (*models.Response[T], error),
) (*models.Response[T], error) {
	var res *models.Response[T]

	err := u.repo.Transact(ctx, func(ctx context.Context, repo banking.BankingRepo) error {
		otp, err := repo.FindOTPForUpdate(ctx, customerID, code)
		if err != nil {
			return err
		}
		if otp == nil {
			res = models.Failure[T](models.StatusOTPNotFound, "OTP not found, request a new one")
			return errRejected
		}
		if res = otpFailure[T](otp.Classify(u.now())); res != nil {
			return errRejected
		}
		if otp.Purpose != models.OTPPurposeSensitiveAction {
			res = models.Failure[T](models.StatusOTPInvalid, "OTP cannot be used for this action")
			return errRejected
		}

		res, err = mutate(ctx, repo)
		if err != nil {
			return err
		}
		if !res.OK() {
			return errRejected
		}
		return repo.ConsumeOTP(ctx, otp.ID)
	})
	if errors.Is(err, errRejected) {
		return res, nil
	}
	if err != nil {
		return nil, err
	}
	return res, nil
}

// otpFailure maps a non-valid classification to its envelope
func otpFailure[T any](status models.OTPStatus) *models.Response[T] {
	switch status {
	case models.OTPExpired:
		return models.Failure[T](models.StatusOTPExpired, "OTP has expired, request a new one")
	case models.OTPInvalid:
		return models.Failure[T](models.StatusOTPInvalid, "Invalid OTP")
	}
	return nil
}
