// Package rabbit provides the RabbitMQ implementation of the event
// publisher port. Each topic maps to a durable topic exchange; the
// event type doubles as the routing key so consumers can bind to the
// event subsets they care about.
package rabbit

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"freight/internal/core/ports"

	"github.com/cenkalti/backoff/v4"
	amqp "github.com/rabbitmq/amqp091-go"
)

const dialTimeout = 30 * time.Second

// Publisher delivers domain events to RabbitMQ. It is safe for
// concurrent use; channel access is serialized because amqp channels
// are not thread-safe.
type Publisher struct {
	conn *amqp.Connection

	mu       sync.Mutex
	ch       *amqp.Channel
	declared map[string]bool
}

// NewPublisher dials RabbitMQ, retrying with exponential backoff while
// the broker is still starting up, and opens a publishing channel.
func NewPublisher(url string) (*Publisher, error) {
	var conn *amqp.Connection

	operation := func() error {
		var err error
		conn, err = amqp.Dial(url)
		return err
	}

	policy := backoff.NewExponentialBackOff(backoff.WithMaxElapsedTime(dialTimeout))
	if err := backoff.Retry(operation, policy); err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open rabbitmq channel: %w", err)
	}

	return &Publisher{
		conn:     conn,
		ch:       ch,
		declared: make(map[string]bool),
	}, nil
}

// Publish delivers one event on the topic. The topic names a durable
// topic exchange, declared on first use; the event type is the routing
// key.
func (p *Publisher) Publish(ctx context.Context, topic string, event ports.Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event %s: %w", event.Type, err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.ensureExchange(topic); err != nil {
		return err
	}

	err = p.ch.PublishWithContext(
		ctx,
		topic,
		event.Type,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType: "application/json",
			Timestamp:   time.Now().UTC(),
			Body:        body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish event %s to %s: %w", event.Type, topic, err)
	}

	return nil
}

// Close releases the channel and the underlying connection.
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ch != nil {
		_ = p.ch.Close()
		p.ch = nil
	}
	if p.conn != nil {
		err := p.conn.Close()
		p.conn = nil
		return err
	}
	return nil
}

// ensureExchange declares the topic exchange once per publisher
// lifetime. Caller must hold the mutex.
func (p *Publisher) ensureExchange(topic string) error {
	if p.declared[topic] {
		return nil
	}

	err := p.ch.ExchangeDeclare(
		topic,
		"topic",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("declare exchange %s: %w", topic, err)
	}

	p.declared[topic] = true
	return nil
}
