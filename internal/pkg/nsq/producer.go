package nsq

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nsqio/go-nsq"
	"github.com/piresc/easybank/internal/pkg/logger"
)

// Producer handles publishing messages to NSQ topics
type Producer struct {
	producer *nsq.Producer
	done     chan *nsq.ProducerTransaction
}

// NewProducer creates an NSQ producer and pings nsqd
func NewProducer(address string) (*Producer, error) {
	producer, err := nsq.NewProducer(address, nsq.NewConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to create NSQ producer: %w", err)
	}

	if err := producer.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping NSQ daemon: %w", err)
	}

	p := &Producer{
		producer: producer,
		done:     make(chan *nsq.ProducerTransaction, 64),
	}
	go p.drain()
	return p, nil
}

// Publish sends a JSON message and waits for nsqd to acknowledge it
func (p *Producer) Publish(topic string, message interface{}) error {
	body, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	if err := p.producer.Publish(topic, body); err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}
	return nil
}

// PublishAsync sends a JSON message without waiting. Delivery failures are logged.
func (p *Producer) PublishAsync(topic string, message interface{}) error {
	body, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	if err := p.producer.PublishAsync(topic, body, p.done, topic); err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}
	return nil
}

func (p *Producer) drain() {
	for trans := range p.done {
		if trans.Error == nil {
			continue
		}
		topic := ""
		if len(trans.Args) > 0 {
			topic, _ = trans.Args[0].(string)
		}
		logger.Error("Async publish failed",
			logger.String("topic", topic),
			logger.Err(trans.Error))
	}
}

// Ping checks nsqd connectivity, used by the readiness probe
func (p *Producer) Ping(ctx context.Context) error {
	return p.producer.Ping()
}

// Stop flushes in-flight publishes and stops the producer
func (p *Producer) Stop() {
	p.producer.Stop()
	close(p.done)
}
