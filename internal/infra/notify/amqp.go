package notify

import (
	"context"
	"fmt"
	"log/slog"

	"locker-hub/internal/domain/locker"

	amqp "github.com/rabbitmq/amqp091-go"
)

type amqpChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// AMQPPublisher sends events to a durable queue through the default exchange.
type AMQPPublisher struct {
	conn   *amqp.Connection
	ch     amqpChannel
	queue  string
	logger *slog.Logger
}

func DialAMQP(url, queue string, logger *slog.Logger) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("could not connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("could not open channel: %w", err)
	}

	// durable so queued events survive a broker restart
	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("could not declare queue %s: %w", queue, err)
	}

	p := newAMQPPublisher(ch, queue, logger)
	p.conn = conn
	return p, nil
}

func newAMQPPublisher(ch amqpChannel, queue string, logger *slog.Logger) *AMQPPublisher {
	return &AMQPPublisher{ch: ch, queue: queue, logger: logger}
}

func (p *AMQPPublisher) Publish(ctx context.Context, event locker.Event) error {
	body, err := encode(event)
	if err != nil {
		observe(DriverAMQP, err)
		return err
	}

	err = p.ch.PublishWithContext(ctx,
		"",      // default exchange
		p.queue, // routing key = queue name
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    event.OccurredAt,
			Type:         string(event.Type),
			Body:         body,
		},
	)
	observe(DriverAMQP, err)
	if err != nil {
		return fmt.Errorf("publish to %s: %w", p.queue, err)
	}
	return nil
}

func (p *AMQPPublisher) Close() error {
	if err := p.ch.Close(); err != nil {
		p.logger.Warn("failed to close amqp channel", "error", err.Error())
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
