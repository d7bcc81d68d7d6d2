package notifier

import (
	"context"

	"github.com/piresc/easybank/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/easybank/services/notifier NotifierUC

// NotifierUC delivers email events published by the banking service
type NotifierUC interface {
	DeliverEmail(ctx context.Context, event *models.EmailEvent) error
}
