package gateway

import (
	"context"
	"errors"
	"fmt"

	"github.com/piresc/easybank/internal/pkg/models"
)

// Publisher is satisfied by *nsq.Producer
type Publisher interface {
	PublishAsync(topic string, message interface{}) error
}

// NSQGateway implements the NSQ gateway operations for the banking service
type NSQGateway struct {
	publisher Publisher
	topic     string
}

// NewNSQGateway creates a new NSQ gateway
func NewNSQGateway(publisher Publisher, topic string) *NSQGateway {
	return &NSQGateway{
		publisher: publisher,
		topic:     topic,
	}
}

// PublishEmail queues an email event without waiting for nsqd
func (g *NSQGateway) PublishEmail(ctx context.Context, event *models.EmailEvent) error {
	if event == nil || event.Recipient == "" {
		return errors.New("email event has no recipient")
	}
	if err := g.publisher.PublishAsync(g.topic, event); err != nil {
		return fmt.Errorf("failed to publish %s email: %w", event.Kind, err)
	}
	return nil
}

// PublishEmail forwards to the NSQ gateway implementation
func (g *BankingGW) PublishEmail(ctx context.Context, event *models.EmailEvent) error {
	return g.nsqGateway.PublishEmail(ctx, event)
}
