package commands

import (
	"context"

	"locker-hub/internal/domain/locker"
	"locker-hub/internal/domain/verification"
)

// EventPublisher delivers locker status events. Delivery is fire-and-forget:
// a publish failure never undoes a committed transition.
type EventPublisher interface {
	Publish(ctx context.Context, event locker.Event) error
}

type SMSSender interface {
	Send(ctx context.Context, phone verification.Phone, message string) error
}

// OTPThrottle limits how often a code may be sent to one phone+purpose.
// Release gives back a slot taken by Allow when no code went out.
type OTPThrottle interface {
	Allow(ctx context.Context, phone verification.Phone, purpose verification.Purpose) (bool, error)
	Release(ctx context.Context, phone verification.Phone, purpose verification.Purpose) error
}

type SecretHasher interface {
	Hash(plain string) (string, error)
	Matches(hashed, plain string) bool
}
