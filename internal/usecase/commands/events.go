package commands

import (
	"context"
	"log/slog"
	"time"

	"locker-hub/internal/domain/locker"
	"locker-hub/internal/pkg/config"
)

const defaultPublishTimeout = 2 * time.Second

// eventEmitter publishes after commit. The request context only contributes
// its values: cancellation must not drop the event, and a stalled broker may
// hold the caller for at most timeout.
type eventEmitter struct {
	publisher EventPublisher
	timeout   time.Duration
	logger    *slog.Logger
}

func newEventEmitter(publisher EventPublisher, cfg config.NotifyConfig, logger *slog.Logger) eventEmitter {
	timeout := cfg.PublishTimeout
	if timeout <= 0 {
		timeout = defaultPublishTimeout
	}
	return eventEmitter{publisher: publisher, timeout: timeout, logger: logger}
}

func (e eventEmitter) emit(ctx context.Context, event locker.Event) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), e.timeout)
	defer cancel()

	if err := e.publisher.Publish(ctx, event); err != nil {
		e.logger.Warn("failed to publish locker event",
			"type", string(event.Type),
			"locker_id", event.LockerID.String(),
			"error", err.Error())
	}
}
