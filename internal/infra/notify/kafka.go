package notify

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"locker-hub/internal/domain/locker"

	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher keys messages by locker id so events for one locker stay ordered.
type KafkaPublisher struct {
	writer messageWriter
	topic  string
	logger *slog.Logger
}

func NewKafkaPublisher(brokers []string, topic string, logger *slog.Logger) *KafkaPublisher {
	w := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		BatchTimeout: 10 * time.Millisecond,
	}
	return newKafkaPublisher(w, topic, logger)
}

func newKafkaPublisher(w messageWriter, topic string, logger *slog.Logger) *KafkaPublisher {
	return &KafkaPublisher{writer: w, topic: topic, logger: logger}
}

func (p *KafkaPublisher) Publish(ctx context.Context, event locker.Event) error {
	body, err := encode(event)
	if err != nil {
		observe(DriverKafka, err)
		return err
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.LockerID.String()),
		Value: body,
		Time:  event.OccurredAt,
		Headers: []kafka.Header{
			{Key: "type", Value: []byte(event.Type)},
		},
	})
	observe(DriverKafka, err)
	if err != nil {
		return fmt.Errorf("publish to %s: %w", p.topic, err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
