// Package messaging publishes work-order lifecycle events to RabbitMQ.
package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"cmms-backend/internal/core/domain"

	"github.com/gofiber/fiber/v2/log"
	amqp "github.com/rabbitmq/amqp091-go"
)

const defaultDialTimeout = 30 * time.Second

// AMQPPublisher sends each event to a durable topic exchange, routed by event type.
// A connection is opened per publish.
type AMQPPublisher struct {
	url         string
	exchange    string
	dialTimeout time.Duration
	dial        func(ctx context.Context) (*amqp.Connection, error)
}

// NewAMQPPublisher creates a publisher for the given broker URL and exchange.
// dialTimeout bounds the TCP connect and the AMQP handshake.
func NewAMQPPublisher(url, exchange string, dialTimeout time.Duration) *AMQPPublisher {
	p := &AMQPPublisher{url: url, exchange: exchange, dialTimeout: dialTimeout}
	p.dial = p.connect
	return p
}

// connect opens a connection that gives up at the dial timeout or the
// context deadline, whichever comes first
func (p *AMQPPublisher) connect(ctx context.Context) (*amqp.Connection, error) {
	timeout := p.dialTimeout
	if timeout <= 0 {
		timeout = defaultDialTimeout
	}
	if deadline, ok := ctx.Deadline(); ok {
		if left := time.Until(deadline); left < timeout {
			timeout = left
		}
	}
	if timeout <= 0 {
		return nil, context.DeadlineExceeded
	}
	return amqp.DialConfig(p.url, amqp.Config{
		Locale: "en_US",
		Dial:   amqp.DefaultDial(timeout),
	})
}

// Publish implements services.EventPublisher
func (p *AMQPPublisher) Publish(ctx context.Context, event domain.Event) error {
	msg, err := encode(event)
	if err != nil {
		return err
	}

	conn, err := p.dial(ctx)
	if err != nil {
		return fmt.Errorf("rabbitmq dial: %w", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("rabbitmq channel: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.ExchangeDeclare(
		p.exchange, // name
		"topic",    // kind
		true,       // durable
		false,      // autoDelete
		false,      // internal
		false,      // noWait
		nil,        // args
	); err != nil {
		return fmt.Errorf("rabbitmq exchange declare: %w", err)
	}

	if err := ch.PublishWithContext(ctx, p.exchange, event.Type, false, false, msg); err != nil {
		return fmt.Errorf("rabbitmq publish: %w", err)
	}

	log.Infof("📨 Published %s (%s)", event.Type, event.ID)
	return nil
}

// encode builds the persistent JSON message for an event
func encode(event domain.Event) (amqp.Publishing, error) {
	body, err := json.Marshal(event)
	if err != nil {
		return amqp.Publishing{}, fmt.Errorf("marshal event: %w", err)
	}
	return amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    event.ID,
		Type:         event.Type,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}, nil
}
