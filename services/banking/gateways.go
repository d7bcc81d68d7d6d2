package banking

import (
	"context"

	"github.com/piresc/easybank/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/easybank/services/banking BankingGW

// BankingGW defines the outbound gateways of the banking service
type BankingGW interface {
	// NSQ Gateway
	PublishEmail(ctx context.Context, event *models.EmailEvent) error
}
