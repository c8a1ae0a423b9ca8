// Package notify carries locker status events to the configured transport.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"locker-hub/internal/domain/locker"
	"locker-hub/internal/infra/metrics"
	"locker-hub/internal/pkg/config"
)

const (
	DriverLog   = "log"
	DriverAMQP  = "amqp"
	DriverKafka = "kafka"
)

type Publisher interface {
	Publish(ctx context.Context, event locker.Event) error
	Close() error
}

// New builds the publisher for cfg.Driver. Unknown drivers are a configuration error.
func New(cfg config.NotifyConfig, logger *slog.Logger) (Publisher, error) {
	switch strings.ToLower(cfg.Driver) {
	case "", DriverLog:
		return NewLogPublisher(logger), nil
	case DriverAMQP:
		return DialAMQP(cfg.AMQPURL, cfg.Queue, logger)
	case DriverKafka:
		return NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic, logger), nil
	default:
		return nil, fmt.Errorf("unknown notify driver %q", cfg.Driver)
	}
}

func encode(event locker.Event) ([]byte, error) {
	body, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("marshal locker event: %w", err)
	}
	return body, nil
}

func observe(driver string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	metrics.EventsPublishedTotal.WithLabelValues(driver, result).Inc()
}
