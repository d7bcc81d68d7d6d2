package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/piresc/easybank/internal/pkg/jwt"
	"github.com/piresc/easybank/internal/pkg/models"
	"github.com/piresc/easybank/services/banking"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	customerRef := models.PrincipalRef{Kind: models.PrincipalCustomer, ID: 3}

	testCases := []struct {
		name       string
		password   string
		mockSetup  func(e *testEnv, saved **models.AuthToken)
		assertFunc func(t *testing.T, e *testEnv, res *models.Response[models.AuthResponse], saved *models.AuthToken, err error)
	}{
		{
			name:     "Success",
			password: testPassword,
			mockSetup: func(e *testEnv, saved **models.AuthToken) {
				e.repo.EXPECT().FindCustomerByEmail(gomock.Any(), "ada@example.com").Return(enabledCustomer(), nil)
				e.expectTransact()
				e.expectTokenRotation(customerRef, saved)
			},
			assertFunc: func(t *testing.T, e *testEnv, res *models.Response[models.AuthResponse], saved *models.AuthToken, err error) {
				require.NoError(t, err)
				require.True(t, res.OK())
				assert.Equal(t, "24hrs", res.Data.ExpiresIn)

				claims, err := e.codec.Verify(res.Data.AccessToken)
				require.NoError(t, err)
				assert.Equal(t, "ada@example.com", claims.Subject)
				assert.Equal(t, models.TokenUseAccess, claims.TokenUse)

				require.NotNil(t, saved)
				assert.Equal(t, claims.ID, saved.ID)
				assert.Equal(t, res.Data.AccessToken, saved.AccessToken)
				assert.Equal(t, res.Data.RefreshToken, saved.RefreshToken)
				assert.Equal(t, customerRef, saved.Owner())
				assert.True(t, saved.Valid())
			},
		},
		{
			name:     "Unknown email",
			password: testPassword,
			mockSetup: func(e *testEnv, saved **models.AuthToken) {
				e.repo.EXPECT().FindCustomerByEmail(gomock.Any(), "ada@example.com").Return(nil, nil)
			},
			assertFunc: func(t *testing.T, e *testEnv, res *models.Response[models.AuthResponse], saved *models.AuthToken, err error) {
				assert.NoError(t, err)
				assert.Equal(t, models.StatusPrincipalNotFound, res.StatusCode)
				assert.Nil(t, res.Data)
			},
		},
		{
			name:     "Account not verified",
			password: testPassword,
			mockSetup: func(e *testEnv, saved **models.AuthToken) {
				customer := enabledCustomer()
				customer.IsEnabled = false
				e.repo.EXPECT().FindCustomerByEmail(gomock.Any(), "ada@example.com").Return(customer, nil)
			},
			assertFunc: func(t *testing.T, e *testEnv, res *models.Response[models.AuthResponse], saved *models.AuthToken, err error) {
				assert.NoError(t, err)
				assert.Equal(t, models.StatusAccountNotVerified, res.StatusCode)
			},
		},
		{
			name:     "Account suspended",
			password: testPassword,
			mockSetup: func(e *testEnv, saved **models.AuthToken) {
				customer := enabledCustomer()
				customer.IsSuspended = true
				e.repo.EXPECT().FindCustomerByEmail(gomock.Any(), "ada@example.com").Return(customer, nil)
			},
			assertFunc: func(t *testing.T, e *testEnv, res *models.Response[models.AuthResponse], saved *models.AuthToken, err error) {
				assert.NoError(t, err)
				assert.Equal(t, models.StatusAccountSuspended, res.StatusCode)
			},
		},
		{
			name:     "Wrong password issues nothing",
			password: "Wr0ng!pass",
			mockSetup: func(e *testEnv, saved **models.AuthToken) {
				e.repo.EXPECT().FindCustomerByEmail(gomock.Any(), "ada@example.com").Return(enabledCustomer(), nil)
			},
			assertFunc: func(t *testing.T, e *testEnv, res *models.Response[models.AuthResponse], saved *models.AuthToken, err error) {
				assert.NoError(t, err)
				assert.Equal(t, models.StatusInvalidCredentials, res.StatusCode)
				assert.Nil(t, saved)
			},
		},
		{
			name:     "Repository error",
			password: testPassword,
			mockSetup: func(e *testEnv, saved **models.AuthToken) {
				e.repo.EXPECT().FindCustomerByEmail(gomock.Any(), "ada@example.com").Return(nil, errors.New("connection refused"))
			},
			assertFunc: func(t *testing.T, e *testEnv, res *models.Response[models.AuthResponse], saved *models.AuthToken, err error) {
				assert.Error(t, err)
				assert.Nil(t, res)
			},
		},
		{
			name:     "Token store failure",
			password: testPassword,
			mockSetup: func(e *testEnv, saved **models.AuthToken) {
				e.repo.EXPECT().FindCustomerByEmail(gomock.Any(), "ada@example.com").Return(enabledCustomer(), nil)
				e.expectTransact()
				e.repo.EXPECT().RevokeAllTokens(gomock.Any(), customerRef).Return(int64(0), errors.New("deadlock detected"))
			},
			assertFunc: func(t *testing.T, e *testEnv, res *models.Response[models.AuthResponse], saved *models.AuthToken, err error) {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "failed to store tokens")
				assert.Nil(t, res)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			e := newTestEnv(t)
			var saved *models.AuthToken
			tc.mockSetup(e, &saved)

			// Act
			res, err := e.uc.Login(context.Background(), &models.LoginRequest{
				Email:    " Ada@Example.com ",
				Password: tc.password,
			})

			// Assert
			tc.assertFunc(t, e, res, saved, err)
		})
	}
}

func TestAdminLogin_Success(t *testing.T) {
	// Arrange
	e := newTestEnv(t)
	admin := &models.Administrator{
		ID:           1,
		FirstName:    "Grace",
		LastName:     "Hopper",
		Email:        "ops@easybank.com",
		PasswordHash: testPasswordHash,
		IsEnabled:    true,
	}
	adminRef := models.PrincipalRef{Kind: models.PrincipalAdministrator, ID: 1}

	var saved *models.AuthToken
	e.repo.EXPECT().FindAdministratorByEmail(gomock.Any(), "ops@easybank.com").Return(admin, nil)
	e.expectTransact()
	e.expectTokenRotation(adminRef, &saved)

	// Act
	res, err := e.uc.AdminLogin(context.Background(), &models.LoginRequest{Email: "ops@easybank.com", Password: testPassword})

	// Assert
	require.NoError(t, err)
	require.True(t, res.OK())
	kind, err := e.codec.ExtractPrincipalType(res.Data.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, models.PrincipalAdministrator, kind)
	assert.Equal(t, adminRef, saved.Owner())
	assert.Nil(t, saved.CustomerID)
}

func TestRefreshToken(t *testing.T) {
	customer := enabledCustomer()
	customerRef := customer.AsPrincipal().Ref()

	testCases := []struct {
		name       string
		token      func(t *testing.T, e *testEnv) string
		mockSetup  func(e *testEnv, token string, saved **models.AuthToken)
		assertFunc func(t *testing.T, e *testEnv, res *models.Response[models.AuthResponse], token string, saved *models.AuthToken)
	}{
		{
			name: "Rotates the pair",
			token: func(t *testing.T, e *testEnv) string {
				return e.mint(t, customer.AsPrincipal(), models.TokenUseRefresh)
			},
			mockSetup: func(e *testEnv, token string, saved **models.AuthToken) {
				e.repo.EXPECT().FindCustomerByEmail(gomock.Any(), "ada@example.com").Return(enabledCustomer(), nil)
				e.repo.EXPECT().FindValidTokens(gomock.Any(), customerRef).
					Return([]*models.AuthToken{{ID: "tok-1", RefreshToken: token}}, nil)
				e.expectTransact()
				e.expectTokenRotation(customerRef, saved)
			},
			assertFunc: func(t *testing.T, e *testEnv, res *models.Response[models.AuthResponse], token string, saved *models.AuthToken) {
				require.True(t, res.OK())
				assert.NotEqual(t, token, res.Data.RefreshToken)
				assert.NotEqual(t, "tok-1", saved.ID)
				assert.Equal(t, res.Data.RefreshToken, saved.RefreshToken)

				claims, err := e.codec.VerifyFor(res.Data.RefreshToken, customer.AsPrincipal(), models.TokenUseRefresh)
				require.NoError(t, err)
				assert.Equal(t, saved.ID, claims.ID)
			},
		},
		{
			name: "Tampered token",
			token: func(t *testing.T, e *testEnv) string {
				return e.mint(t, customer.AsPrincipal(), models.TokenUseRefresh) + "x"
			},
			mockSetup: func(e *testEnv, token string, saved **models.AuthToken) {},
			assertFunc: func(t *testing.T, e *testEnv, res *models.Response[models.AuthResponse], token string, saved *models.AuthToken) {
				assert.Equal(t, models.StatusInvalidTokenSignature, res.StatusCode)
			},
		},
		{
			name: "Expired token writes nothing",
			token: func(t *testing.T, e *testEnv) string {
				token := e.mint(t, customer.AsPrincipal(), models.TokenUseRefresh)
				e.now = e.now.Add(25 * time.Hour)
				return token
			},
			mockSetup: func(e *testEnv, token string, saved **models.AuthToken) {},
			assertFunc: func(t *testing.T, e *testEnv, res *models.Response[models.AuthResponse], token string, saved *models.AuthToken) {
				assert.Equal(t, models.StatusTokenExpired, res.StatusCode)
				assert.Nil(t, saved)
			},
		},
		{
			name: "Principal no longer exists",
			token: func(t *testing.T, e *testEnv) string {
				return e.mint(t, customer.AsPrincipal(), models.TokenUseRefresh)
			},
			mockSetup: func(e *testEnv, token string, saved **models.AuthToken) {
				e.repo.EXPECT().FindCustomerByEmail(gomock.Any(), "ada@example.com").Return(nil, nil)
			},
			assertFunc: func(t *testing.T, e *testEnv, res *models.Response[models.AuthResponse], token string, saved *models.AuthToken) {
				assert.Equal(t, models.StatusPrincipalNotFound, res.StatusCode)
			},
		},
		{
			name: "Access token presented",
			token: func(t *testing.T, e *testEnv) string {
				return e.mint(t, customer.AsPrincipal(), models.TokenUseAccess)
			},
			mockSetup: func(e *testEnv, token string, saved **models.AuthToken) {
				e.repo.EXPECT().FindCustomerByEmail(gomock.Any(), "ada@example.com").Return(enabledCustomer(), nil)
			},
			assertFunc: func(t *testing.T, e *testEnv, res *models.Response[models.AuthResponse], token string, saved *models.AuthToken) {
				assert.Equal(t, models.StatusInvalidTokenSignature, res.StatusCode)
			},
		},
		{
			name: "Superseded refresh token",
			token: func(t *testing.T, e *testEnv) string {
				return e.mint(t, customer.AsPrincipal(), models.TokenUseRefresh)
			},
			mockSetup: func(e *testEnv, token string, saved **models.AuthToken) {
				e.repo.EXPECT().FindCustomerByEmail(gomock.Any(), "ada@example.com").Return(enabledCustomer(), nil)
				e.repo.EXPECT().FindValidTokens(gomock.Any(), customerRef).
					Return([]*models.AuthToken{{ID: "tok-2", RefreshToken: "newer-refresh"}}, nil)
			},
			assertFunc: func(t *testing.T, e *testEnv, res *models.Response[models.AuthResponse], token string, saved *models.AuthToken) {
				assert.Equal(t, models.StatusInvalidTokenSignature, res.StatusCode)
				assert.Nil(t, saved)
			},
		},
		{
			name: "Token minted for another customer",
			token: func(t *testing.T, e *testEnv) string {
				return e.mint(t, customer.AsPrincipal(), models.TokenUseRefresh)
			},
			mockSetup: func(e *testEnv, token string, saved **models.AuthToken) {
				other := enabledCustomer()
				other.ID = 4
				e.repo.EXPECT().FindCustomerByEmail(gomock.Any(), "ada@example.com").Return(other, nil)
			},
			assertFunc: func(t *testing.T, e *testEnv, res *models.Response[models.AuthResponse], token string, saved *models.AuthToken) {
				assert.Equal(t, models.StatusInvalidTokenSignature, res.StatusCode)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			e := newTestEnv(t)
			token := tc.token(t, e)
			var saved *models.AuthToken
			tc.mockSetup(e, token, &saved)

			// Act
			res, err := e.uc.RefreshToken(context.Background(), &models.RefreshTokenRequest{RefreshToken: token})

			// Assert
			require.NoError(t, err)
			tc.assertFunc(t, e, res, token, saved)
		})
	}
}

func TestLogout(t *testing.T) {
	// Arrange
	e := newTestEnv(t)
	owner := models.PrincipalRef{Kind: models.PrincipalCustomer, ID: 3}
	e.expectTransact()
	e.repo.EXPECT().RevokeAllTokens(gomock.Any(), owner).Return(int64(2), nil)

	// Act
	res, err := e.uc.Logout(context.Background(), owner)

	// Assert
	require.NoError(t, err)
	assert.True(t, res.OK())
}

func TestAuthenticate(t *testing.T) {
	customer := enabledCustomer()

	testCases := []struct {
		name       string
		use        models.TokenUse
		mockSetup  func(e *testEnv, token string)
		assertFunc func(t *testing.T, claims *jwt.Claims, err error)
	}{
		{
			name: "Valid access token",
			use:  models.TokenUseAccess,
			mockSetup: func(e *testEnv, token string) {
				e.repo.EXPECT().FindTokenByAccess(gomock.Any(), token).
					Return(&models.AuthToken{ID: "tok-1", AccessToken: token}, nil)
			},
			assertFunc: func(t *testing.T, claims *jwt.Claims, err error) {
				require.NoError(t, err)
				assert.Equal(t, int64(3), claims.PrincipalID)
				assert.Equal(t, models.PrincipalCustomer, claims.PrincipalType)
			},
		},
		{
			name: "Revoked record",
			use:  models.TokenUseAccess,
			mockSetup: func(e *testEnv, token string) {
				e.repo.EXPECT().FindTokenByAccess(gomock.Any(), token).
					Return(&models.AuthToken{ID: "tok-1", AccessToken: token, Revoked: true, Expired: true}, nil)
			},
			assertFunc: func(t *testing.T, claims *jwt.Claims, err error) {
				assert.ErrorIs(t, err, banking.ErrTokenRevoked)
				assert.Nil(t, claims)
			},
		},
		{
			name: "Unknown record",
			use:  models.TokenUseAccess,
			mockSetup: func(e *testEnv, token string) {
				e.repo.EXPECT().FindTokenByAccess(gomock.Any(), token).Return(nil, nil)
			},
			assertFunc: func(t *testing.T, claims *jwt.Claims, err error) {
				assert.ErrorIs(t, err, banking.ErrTokenRevoked)
			},
		},
		{
			name:      "Refresh token on a protected route",
			use:       models.TokenUseRefresh,
			mockSetup: func(e *testEnv, token string) {},
			assertFunc: func(t *testing.T, claims *jwt.Claims, err error) {
				assert.ErrorIs(t, err, banking.ErrWrongTokenUse)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			e := newTestEnv(t)
			token := e.mint(t, customer.AsPrincipal(), tc.use)
			tc.mockSetup(e, token)

			// Act
			claims, err := e.uc.Authenticate(context.Background(), token)

			// Assert
			tc.assertFunc(t, claims, err)
		})
	}
}

func TestAuthenticate_InvalidSignature(t *testing.T) {
	e := newTestEnv(t)

	_, err := e.uc.Authenticate(context.Background(), "not-a-jwt")

	assert.ErrorIs(t, err, jwt.ErrInvalidSignature)
}
