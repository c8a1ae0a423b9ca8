package locker

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus     = errors.New("invalid locker status")
	ErrInvalidSize       = errors.New("invalid locker size")
	ErrInvalidTransition = errors.New("locker status transition not allowed")
	ErrUnavailable       = errors.New("locker is not available")
	ErrNegativeRate      = errors.New("hourly rate cannot be negative")
)

type Locker struct {
	id              uuid.UUID
	locationID      uuid.UUID
	size            Size
	status          Status
	code            string
	hourlyRateCents int64
	createdAt       time.Time
	updatedAt       time.Time
}

// Reconstruct rebuilds a locker loaded from storage.
func Reconstruct(
	id, locationID uuid.UUID,
	size Size,
	status Status,
	code string,
	hourlyRateCents int64,
	createdAt, updatedAt time.Time,
) (*Locker, error) {
	if !size.IsValid() {
		return nil, ErrInvalidSize
	}
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	if hourlyRateCents < 0 {
		return nil, ErrNegativeRate
	}
	return &Locker{
		id:              id,
		locationID:      locationID,
		size:            size,
		status:          status,
		code:            code,
		hourlyRateCents: hourlyRateCents,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}, nil
}

func (l *Locker) IsAvailable() bool {
	return l.status == StatusAvailable
}

// Occupy claims the locker for a new reservation.
func (l *Locker) Occupy() error {
	if l.status != StatusAvailable {
		return ErrUnavailable
	}
	return l.transition(StatusOccupied)
}

func (l *Locker) Free() error {
	return l.transition(StatusAvailable)
}

func (l *Locker) StartMaintenance() error {
	return l.transition(StatusMaintenance)
}

func (l *Locker) EndMaintenance() error {
	if l.status != StatusMaintenance {
		return ErrInvalidTransition
	}
	return l.transition(StatusAvailable)
}

func (l *Locker) transition(next Status) error {
	if !l.status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	l.status = next
	return nil
}

func (l *Locker) ID() uuid.UUID          { return l.id }
func (l *Locker) LocationID() uuid.UUID  { return l.locationID }
func (l *Locker) Size() Size             { return l.size }
func (l *Locker) Status() Status         { return l.status }
func (l *Locker) Code() string           { return l.code }
func (l *Locker) HourlyRateCents() int64 { return l.hourlyRateCents }
func (l *Locker) CreatedAt() time.Time   { return l.createdAt }
func (l *Locker) UpdatedAt() time.Time   { return l.updatedAt }
