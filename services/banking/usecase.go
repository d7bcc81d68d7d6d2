package banking

import (
	"context"

	"github.com/piresc/easybank/internal/pkg/jwt"
	"github.com/piresc/easybank/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/easybank/services/banking BankingUC

// BankingUC is the authentication and account engine. Domain rejections are
// returned as failure envelopes with a nil error; a non-nil error means an
// infrastructure failure.
type BankingUC interface {
	// onboarding
	Onboard(ctx context.Context, req *models.OnboardRequest) (*models.Response[models.OnboardResponse], error)
	SendOnboardingOTP(ctx context.Context, req *models.SendOTPRequest) (*models.Response[models.OTPResponse], error)
	VerifyOnboardingOTP(ctx context.Context, req *models.VerifyOnboardingRequest) (*models.Response[models.AuthResponse], error)

	// sessions
	Login(ctx context.Context, req *models.LoginRequest) (*models.Response[models.AuthResponse], error)
	AdminLogin(ctx context.Context, req *models.LoginRequest) (*models.Response[models.AuthResponse], error)
	RefreshToken(ctx context.Context, req *models.RefreshTokenRequest) (*models.Response[models.AuthResponse], error)
	Logout(ctx context.Context, owner models.PrincipalRef) (*models.Response[models.Empty], error)
	Authenticate(ctx context.Context, accessToken string) (*jwt.Claims, error)

	// OTP gate
	IssueOTP(ctx context.Context, customerID int64) (*models.Response[models.OTPResponse], error)
	VerifyOTP(ctx context.Context, customerID int64, code string) (*models.Response[models.Empty], error)
	UpdateDetails(ctx context.Context, customerID int64, req *models.UpdateDetailsRequest) (*models.Response[models.CustomerDetails], error)
	ResetPassword(ctx context.Context, customerID int64, req *models.ResetPasswordRequest) (*models.Response[models.Empty], error)
	UpdateTransactionLimit(ctx context.Context, customerID int64, req *models.UpdateTransactionLimitRequest) (*models.Response[models.CustomerDetails], error)

	// account
	CheckBalance(ctx context.Context, customerID int64) (*models.Response[models.ViewBalanceResponse], error)
	GetDetails(ctx context.Context, customerID int64) (*models.Response[models.CustomerDetails], error)
}
