package notify

import (
	"context"
	"log/slog"

	"locker-hub/internal/domain/locker"
)

// LogPublisher writes events to the application log. It is the default when
// no broker is configured.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(ctx context.Context, event locker.Event) error {
	attrs := []any{
		"type", string(event.Type),
		"locker_id", event.LockerID.String(),
		"status", event.Status.String(),
	}
	if event.ReservationID != nil {
		attrs = append(attrs, "reservation_id", event.ReservationID.String())
	}
	p.logger.InfoContext(ctx, "locker event", attrs...)
	observe(DriverLog, nil)
	return nil
}

func (p *LogPublisher) Close() error {
	return nil
}
