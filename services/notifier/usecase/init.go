package usecase

import (
	"errors"
	"net/textproto"

	"github.com/piresc/easybank/internal/pkg/circuitbreaker"
	"github.com/piresc/easybank/internal/pkg/logger"
	"github.com/piresc/easybank/internal/pkg/mailer"
	"github.com/piresc/easybank/internal/pkg/models"
	"github.com/piresc/easybank/internal/pkg/retry"
	"github.com/piresc/easybank/services/notifier"
)

// Renderer builds a message from an email event
type Renderer interface {
	Render(event *models.EmailEvent) (mailer.Message, error)
}

// NotifierUC renders email events and sends them with a bounded retry policy
type NotifierUC struct {
	renderer Renderer
	sender   mailer.Sender
	retrier  *retry.Retrier
	breaker  *circuitbreaker.CircuitBreaker
}

// NewNotifierUC creates the notifier usecase from the email delivery config
func NewNotifierUC(renderer Renderer, sender mailer.Sender, cfg models.EmailConfig, zapLogger *logger.ZapLogger) notifier.NotifierUC {
	return &NotifierUC{
		renderer: renderer,
		sender:   sender,
		retrier:  retry.New(retry.FixedBackoff(cfg.MaxAttempts, cfg.Backoff), zapLogger),
		breaker: circuitbreaker.New(circuitbreaker.Config{
			Name:             "smtp",
			FailureThreshold: cfg.BreakerFailures,
			Cooldown:         cfg.BreakerCooldown,
			IsFailure:        func(err error) bool { return err != nil && !isPermanentSMTP(err) },
		}, zapLogger),
	}
}

// isPermanentSMTP reports a 5xx reply, which means the server is up but refuses the message
func isPermanentSMTP(err error) bool {
	var smtpErr *textproto.Error
	return errors.As(err, &smtpErr) && smtpErr.Code >= 500
}
