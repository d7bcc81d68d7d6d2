package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/easybank/internal/pkg/jwt"
	"github.com/piresc/easybank/internal/pkg/logger"
	"github.com/piresc/easybank/internal/pkg/models"
	"github.com/piresc/easybank/internal/utils"
	"github.com/piresc/easybank/services/banking"
)

// BankingUC implements banking.BankingUC
type BankingUC struct {
	repo   banking.BankingRepo
	gw     banking.BankingGW
	codec  *jwt.Codec
	cfg    *models.Config
	now    func() time.Time
	digits func(n int) (string, error)
}

// NewBankingUC creates a new banking usecase instance
func NewBankingUC(
	repo banking.BankingRepo,
	gw banking.BankingGW,
	codec *jwt.Codec,
	cfg *models.Config,
) *BankingUC {
	return &BankingUC{
		repo:   repo,
		gw:     gw,
		codec:  codec,
		cfg:    cfg,
		now:    time.Now,
		digits: utils.RandomDigits,
	}
}

// publishEmail queues an email. Delivery is best effort and never fails
// the operation that triggered it.
func (u *BankingUC) publishEmail(ctx context.Context, event *models.EmailEvent) {
	event.ID = uuid.NewString()
	event.CreatedAt = u.now()

	if err := u.gw.PublishEmail(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to queue email",
			logger.String("kind", string(event.Kind)),
			logger.String("recipient", utils.MaskEmail(event.Recipient)),
			logger.Err(err))
	}
}

// hoursLabel renders a token lifetime the way clients display it, e.g. "24hrs"
func hoursLabel(d time.Duration) string {
	if d < time.Hour {
		return fmt.Sprintf("%dmins", int(d.Minutes()))
	}
	return fmt.Sprintf("%dhrs", int(d.Hours()))
}

// minutesLabel renders an OTP lifetime, e.g. "4 Minutes"
func minutesLabel(d time.Duration) string {
	minutes := int(d.Minutes())
	if minutes == 1 {
		return "1 Minute"
	}
	return fmt.Sprintf("%d Minutes", minutes)
}
