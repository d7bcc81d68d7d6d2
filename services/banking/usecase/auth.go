package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/piresc/easybank/internal/pkg/jwt"
	"github.com/piresc/easybank/internal/pkg/logger"
	"github.com/piresc/easybank/internal/pkg/models"
	"github.com/piresc/easybank/internal/utils"
	"github.com/piresc/easybank/services/banking"
)

const invalidLoginMessage = "Invalid email or password"

// Login authenticates a customer by email and password
func (u *BankingUC) Login(ctx context.Context, req *models.LoginRequest) (*models.Response[models.AuthResponse], error) {
	customer, err := u.repo.FindCustomerByEmail(ctx, utils.NormalizeEmail(req.Email))
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return models.Failure[models.AuthResponse](models.StatusPrincipalNotFound, invalidLoginMessage), nil
	}
	return u.login(ctx, customer.AsPrincipal(), req.Password)
}

// AdminLogin authenticates a back-office administrator
func (u *BankingUC) AdminLogin(ctx context.Context, req *models.LoginRequest) (*models.Response[models.AuthResponse], error) {
	admin, err := u.repo.FindAdministratorByEmail(ctx, utils.NormalizeEmail(req.Email))
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return models.Failure[models.AuthResponse](models.StatusPrincipalNotFound, invalidLoginMessage), nil
	}
	return u.login(ctx, admin.AsPrincipal(), req.Password)
}

func (u *BankingUC) login(ctx context.Context, p models.Principal, password string) (*models.Response[models.AuthResponse], error) {
	if !p.IsEnabled {
		return models.Failure[models.AuthResponse](models.StatusAccountNotVerified,
			"Account is not verified, check your email for the verification code"), nil
	}
	if p.IsSuspended {
		return models.Failure[models.AuthResponse](models.StatusAccountSuspended,
			"Account is suspended, contact support"), nil
	}

	ok, err := utils.VerifySecret(p.PasswordHash, password)
	if err != nil {
		return nil, err
	}
	if !ok {
		return models.Failure[models.AuthResponse](models.StatusInvalidCredentials, invalidLoginMessage), nil
	}

	pair, err := u.issueTokens(ctx, p, nil)
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Principal logged in", logger.Principal(p.Ref()))
	return models.Success("Login successful", *pair), nil
}

// RefreshToken exchanges a valid refresh token for a new pair, revoking
// every earlier token of the same principal.
func (u *BankingUC) RefreshToken(ctx context.Context, req *models.RefreshTokenRequest) (*models.Response[models.AuthResponse], error) {
	token := req.RefreshToken

	subject, err := u.codec.ExtractSubject(token)
	if err != nil {
		return models.Failure[models.AuthResponse](models.StatusInvalidTokenSignature, "Invalid refresh token"), nil
	}
	if u.codec.IsExpired(token) {
		return models.Failure[models.AuthResponse](models.StatusTokenExpired, "Refresh token has expired, please login again"), nil
	}
	kind, err := u.codec.ExtractPrincipalType(token)
	if err != nil {
		return models.Failure[models.AuthResponse](models.StatusInvalidTokenSignature, "Invalid refresh token"), nil
	}

	p, found, err := u.findPrincipal(ctx, kind, subject)
	if err != nil {
		return nil, err
	}
	if !found {
		return models.Failure[models.AuthResponse](models.StatusPrincipalNotFound, "Account not found"), nil
	}

	if _, err := u.codec.VerifyFor(token, p, models.TokenUseRefresh); err != nil {
		return models.Failure[models.AuthResponse](models.StatusInvalidTokenSignature, "Invalid refresh token"), nil
	}

	valid, err := u.repo.FindValidTokens(ctx, p.Ref())
	if err != nil {
		return nil, err
	}
	if !containsRefresh(valid, token) {
		return models.Failure[models.AuthResponse](models.StatusInvalidTokenSignature, "Refresh token has been revoked"), nil
	}
	if p.IsSuspended {
		return models.Failure[models.AuthResponse](models.StatusAccountSuspended, "Account is suspended, contact support"), nil
	}

	pair, err := u.issueTokens(ctx, p, nil)
	if err != nil {
		return nil, err
	}
	return models.Success("Token refreshed successfully", *pair), nil
}

// Logout revokes every token of the principal
func (u *BankingUC) Logout(ctx context.Context, owner models.PrincipalRef) (*models.Response[models.Empty], error) {
	var revoked int64
	err := u.repo.Transact(ctx, func(ctx context.Context, repo banking.BankingRepo) error {
		var err error
		revoked, err = repo.RevokeAllTokens(ctx, owner)
		return err
	})
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Principal logged out",
		logger.Principal(owner),
		logger.Int64("revoked_tokens", revoked))
	return models.Success("Logged out successfully", models.Empty{}), nil
}

// Authenticate checks an access token presented on a protected route. The
// token must verify, be an access token and still have a valid record.
func (u *BankingUC) Authenticate(ctx context.Context, accessToken string) (*jwt.Claims, error) {
	claims, err := u.codec.Verify(accessToken)
	if err != nil {
		return nil, err
	}
	if claims.TokenUse != models.TokenUseAccess {
		return nil, banking.ErrWrongTokenUse
	}

	record, err := u.repo.FindTokenByAccess(ctx, accessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to look up token: %w", err)
	}
	if record == nil || !record.Valid() {
		return nil, banking.ErrTokenRevoked
	}
	return claims, nil
}

// issueTokens mints a pair for p and, in one transaction, runs prepare,
// revokes the principal's earlier tokens and stores the new record.
func (u *BankingUC) issueTokens(ctx context.Context, p models.Principal, prepare banking.TxFunc) (*models.AuthResponse, error) {
	tokenID := uuid.NewString()

	access, accessExpiry, err := u.codec.Mint(p, models.TokenUseAccess, tokenID, u.cfg.JWT.AccessTTL)
	if err != nil {
		return nil, err
	}
	refresh, refreshExpiry, err := u.codec.Mint(p, models.TokenUseRefresh, tokenID, u.cfg.JWT.RefreshTTL)
	if err != nil {
		return nil, err
	}

	expiresAt := refreshExpiry
	if accessExpiry.After(expiresAt) {
		expiresAt = accessExpiry
	}
	record := models.NewAuthToken(tokenID, p.Ref(), access, refresh, u.now(), expiresAt)

	err = u.repo.Transact(ctx, func(ctx context.Context, repo banking.BankingRepo) error {
		if prepare != nil {
			if err := prepare(ctx, repo); err != nil {
				return err
			}
		}
		if _, err := repo.RevokeAllTokens(ctx, p.Ref()); err != nil {
			return err
		}
		return repo.SaveToken(ctx, record)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to store tokens: %w", err)
	}

	return &models.AuthResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    hoursLabel(u.cfg.JWT.AccessTTL),
	}, nil
}

// findPrincipal loads the principal of the given kind by email
func (u *BankingUC) findPrincipal(ctx context.Context, kind models.PrincipalKind, email string) (models.Principal, bool, error) {
	switch kind {
	case models.PrincipalAdministrator:
		admin, err := u.repo.FindAdministratorByEmail(ctx, email)
		if err != nil || admin == nil {
			return models.Principal{}, false, err
		}
		return admin.AsPrincipal(), true, nil
	case models.PrincipalCustomer:
		customer, err := u.repo.FindCustomerByEmail(ctx, email)
		if err != nil || customer == nil {
			return models.Principal{}, false, err
		}
		return customer.AsPrincipal(), true, nil
	}
	return models.Principal{}, false, errors.New("unknown principal type")
}

func containsRefresh(tokens []*models.AuthToken, refresh string) bool {
	for _, t := range tokens {
		if t.RefreshToken == refresh {
			return true
		}
	}
	return false
}
