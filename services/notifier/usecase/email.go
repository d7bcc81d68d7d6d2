package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/piresc/easybank/internal/pkg/circuitbreaker"
	"github.com/piresc/easybank/internal/pkg/logger"
	"github.com/piresc/easybank/internal/pkg/models"
	"github.com/piresc/easybank/internal/pkg/retry"
)

// DeliverEmail renders and sends event. A template failure, a permanent
// SMTP rejection (5xx) or an open SMTP breaker is not retried.
func (u *NotifierUC) DeliverEmail(ctx context.Context, event *models.EmailEvent) error {
	if event.Recipient == "" {
		return fmt.Errorf("email event %s has no recipient", event.ID)
	}

	msg, err := u.renderer.Render(event)
	if err != nil {
		return err
	}

	attempts := 0
	err = u.retrier.Execute(ctx, func(ctx context.Context) error {
		attempts++
		err := u.breaker.Execute(ctx, func(ctx context.Context) error {
			return u.sender.Send(ctx, msg)
		})
		if isPermanentSMTP(err) || errors.Is(err, circuitbreaker.ErrOpen) {
			return retry.Permanent(err)
		}
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to deliver %s email after %d attempts: %w", event.Kind, attempts, err)
	}

	logger.InfoCtx(ctx, "Email delivered",
		logger.String("event_id", event.ID),
		logger.String("kind", string(event.Kind)),
		logger.Int("attempts", attempts))
	return nil
}
