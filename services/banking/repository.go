package banking

import (
	"context"

	"github.com/piresc/easybank/internal/pkg/models"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/easybank/services/banking BankingRepo

// TxFunc runs inside a transaction with a repository bound to it
type TxFunc func(ctx context.Context, repo BankingRepo) error

// BankingRepo defines the persistence operations of the banking service.
// Finders return a nil record and a nil error when nothing matches.
type BankingRepo interface {
	// Transact runs fn in one transaction, committing only when fn returns nil
	Transact(ctx context.Context, fn TxFunc) error

	// principals
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	CountCustomers(ctx context.Context) (int64, error)
	CreateCustomer(ctx context.Context, customer *models.Customer) error
	FindCustomerByEmail(ctx context.Context, email string) (*models.Customer, error)
	FindCustomerByID(ctx context.Context, id int64) (*models.Customer, error)
	UpdateCustomer(ctx context.Context, customer *models.Customer) error
	EnableCustomer(ctx context.Context, id int64) error
	FindAdministratorByEmail(ctx context.Context, email string) (*models.Administrator, error)

	// accounts
	ExistsByAccountNumber(ctx context.Context, accountNumber string) (bool, error)
	CreateAccount(ctx context.Context, account *models.Account) error
	FindAccountByCustomerID(ctx context.Context, customerID int64) (*models.Account, error)
	UpdateTransactionLimit(ctx context.Context, customerID int64, limit decimal.Decimal) error

	// tokens
	SaveToken(ctx context.Context, token *models.AuthToken) error
	FindValidTokens(ctx context.Context, owner models.PrincipalRef) ([]*models.AuthToken, error)
	FindTokenByAccess(ctx context.Context, accessToken string) (*models.AuthToken, error)
	RevokeAllTokens(ctx context.Context, owner models.PrincipalRef) (int64, error)

	// one-time passwords
	SaveOTP(ctx context.Context, otp *models.OneTimePassword) error
	FindOTP(ctx context.Context, customerID int64, code string) (*models.OneTimePassword, error)
	FindOTPForUpdate(ctx context.Context, customerID int64, code string) (*models.OneTimePassword, error)
	ConsumeOTP(ctx context.Context, id int64) error
}
