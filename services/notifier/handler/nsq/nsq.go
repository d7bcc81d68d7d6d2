package nsq

import (
	"context"
	"fmt"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/easybank/internal/pkg/logger"
	"github.com/piresc/easybank/internal/pkg/models"
	nrpkg "github.com/piresc/easybank/internal/pkg/newrelic"
	nsqpkg "github.com/piresc/easybank/internal/pkg/nsq"
	"github.com/piresc/easybank/services/notifier"
)

// EmailHandler consumes email events from NSQ
type EmailHandler struct {
	notifierUC notifier.NotifierUC
	nrApp      *newrelic.Application
	consumers  []*nsqpkg.Consumer
}

// NewEmailHandler creates a new email NSQ handler
func NewEmailHandler(notifierUC notifier.NotifierUC, nrApp *newrelic.Application) *EmailHandler {
	return &EmailHandler{
		notifierUC: notifierUC,
		nrApp:      nrApp,
	}
}

// InitNSQConsumers subscribes to the email topic, through lookupd when configured
func (h *EmailHandler) InitNSQConsumers(cfg models.NSQConfig) error {
	consumer, err := nsqpkg.NewConsumer(cfg.EmailTopic, cfg.EmailChannel, h.handleEmailEvent)
	if err != nil {
		return fmt.Errorf("failed to create email consumer: %w", err)
	}

	if len(cfg.LookupdAddrs) > 0 {
		err = consumer.ConnectToLookupd(cfg.LookupdAddrs)
	} else {
		err = consumer.ConnectToNSQD(cfg.Address)
	}
	if err != nil {
		return fmt.Errorf("failed to subscribe to email events: %w", err)
	}

	h.consumers = append(h.consumers, consumer)
	return nil
}

// Stop stops every consumer and waits for in-flight deliveries
func (h *EmailHandler) Stop() {
	for _, c := range h.consumers {
		c.Stop()
	}
}

// handleEmailEvent never requeues. Undecodable events and failed deliveries
// are logged and dropped, the retry policy lives in the usecase.
func (h *EmailHandler) handleEmailEvent(body []byte) error {
	ctx, end := nrpkg.StartBackgroundTransaction(context.Background(), h.nrApp, "notifier.email")
	defer end()

	var event models.EmailEvent
	if err := nsqpkg.UnmarshalMessage(body, &event); err != nil {
		logger.ErrorCtx(ctx, "Dropping undecodable email event", logger.Err(err))
		return nil
	}

	if err := h.notifierUC.DeliverEmail(ctx, &event); err != nil {
		logger.ErrorCtx(ctx, "Dropping email event",
			logger.String("event_id", event.ID),
			logger.String("kind", string(event.Kind)),
			logger.Err(err))
	}
	return nil
}
