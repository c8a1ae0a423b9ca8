package reservation

import (
	"errors"
	"math"
	"time"

	"locker-hub/internal/pkg/clock"

	"github.com/google/uuid"
)

var (
	ErrInvalidDuration   = errors.New("duration must be a positive number of hours")
	ErrInvalidStatus     = errors.New("invalid reservation status")
	ErrInvalidTransition = errors.New("reservation status transition not allowed")
	ErrNotActive         = errors.New("reservation is not active")
	ErrNotOwner          = errors.New("reservation belongs to another user")
	ErrNegativePrice     = errors.New("price cannot be negative")
)

// LockerSpec is the part of a locker a reservation needs at creation time.
type LockerSpec struct {
	ID              uuid.UUID
	HourlyRateCents int64
}

type Services struct {
	Clock           clock.Clock
	PriceCalculator PriceCalculator
}

type Reservation struct {
	id              uuid.UUID
	userID          uuid.UUID
	lockerID        uuid.UUID
	startTime       time.Time
	expectedEndTime time.Time
	extendedEndTime *time.Time
	actualEndTime   *time.Time
	status          Status
	hourlyRate      Money
	totalCost       Money
	extensionCount  int
	accessCode      AccessCode
	version         int
	createdAt       time.Time
	updatedAt       time.Time
}

func NewReservation(
	services *Services,
	lk LockerSpec,
	userID uuid.UUID,
	durationHours float64,
	code AccessCode,
) (*Reservation, error) {
	if err := validateHours(durationHours); err != nil {
		return nil, err
	}
	if lk.HourlyRateCents < 0 {
		return nil, ErrNegativePrice
	}
	if code.IsZero() {
		return nil, ErrInvalidAccessCode
	}

	now := services.Clock.Now()
	rate := NewMoney(lk.HourlyRateCents)

	return &Reservation{
		id:              uuid.New(),
		userID:          userID,
		lockerID:        lk.ID,
		startTime:       now,
		expectedEndTime: now.Add(hoursToDuration(durationHours)),
		status:          StatusActive,
		hourlyRate:      rate,
		totalCost:       services.PriceCalculator.InitialCost(rate, durationHours),
		accessCode:      code,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

func ReconstructReservation(
	id, userID, lockerID uuid.UUID,
	startTime, expectedEndTime time.Time,
	extendedEndTime, actualEndTime *time.Time,
	status Status,
	hourlyRate, totalCost Money,
	extensionCount int,
	accessCode AccessCode,
	version int,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:              id,
		userID:          userID,
		lockerID:        lockerID,
		startTime:       startTime,
		expectedEndTime: expectedEndTime,
		extendedEndTime: extendedEndTime,
		actualEndTime:   actualEndTime,
		status:          status,
		hourlyRate:      hourlyRate,
		totalCost:       totalCost,
		extensionCount:  extensionCount,
		accessCode:      accessCode,
		version:         version,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// Extend pushes the end time out by additionalHours and accrues the
// extension cost. It returns the cost that was added.
func (r *Reservation) Extend(services *Services, userID uuid.UUID, additionalHours float64) (Money, error) {
	if err := r.checkMutable(userID); err != nil {
		return Money{}, err
	}
	if err := validateHours(additionalHours); err != nil {
		return Money{}, err
	}

	newEnd := r.EndTime().Add(hoursToDuration(additionalHours))
	cost := services.PriceCalculator.ExtensionCost(r.hourlyRate, additionalHours)

	r.extendedEndTime = &newEnd
	r.totalCost = r.totalCost.Add(cost)
	r.extensionCount++
	r.updatedAt = services.Clock.Now()

	return cost, nil
}

// Complete closes the reservation and produces its history record.
func (r *Reservation) Complete(now time.Time, userID uuid.UUID) (HistoryRecord, error) {
	if err := r.checkMutable(userID); err != nil {
		return HistoryRecord{}, err
	}
	if err := r.transition(StatusCompleted); err != nil {
		return HistoryRecord{}, err
	}

	end := now
	r.actualEndTime = &end
	r.updatedAt = now

	// a started hour is billed, including the one started at release
	hours := max(minBilledHours, BillableHours(end.Sub(r.startTime).Hours()))

	return ReconstructHistoryRecord(
		r.id,
		r.userID,
		r.lockerID,
		r.startTime,
		end,
		hours,
		r.totalCost,
	), nil
}

func (r *Reservation) Cancel(now time.Time, userID uuid.UUID) error {
	if err := r.checkMutable(userID); err != nil {
		return err
	}
	if err := r.transition(StatusCancelled); err != nil {
		return err
	}

	end := now
	r.actualEndTime = &end
	r.updatedAt = now
	return nil
}

func (r *Reservation) checkMutable(userID uuid.UUID) error {
	if !r.IsOwnedBy(userID) {
		return ErrNotOwner
	}
	if !r.IsActive() {
		return ErrNotActive
	}
	return nil
}

func (r *Reservation) transition(next Status) error {
	if !r.status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	r.status = next
	return nil
}

func (r *Reservation) IsActive() bool {
	return r.status == StatusActive
}

func (r *Reservation) IsOwnedBy(userID uuid.UUID) bool {
	return r.userID == userID
}

// EndTime is the latest of the original and extended end times.
func (r *Reservation) EndTime() time.Time {
	if r.extendedEndTime != nil && r.extendedEndTime.After(r.expectedEndTime) {
		return *r.extendedEndTime
	}
	return r.expectedEndTime
}

func (r *Reservation) HasExpired(now time.Time) bool {
	return now.After(r.EndTime())
}

func (r *Reservation) ID() uuid.UUID               { return r.id }
func (r *Reservation) UserID() uuid.UUID           { return r.userID }
func (r *Reservation) LockerID() uuid.UUID         { return r.lockerID }
func (r *Reservation) StartTime() time.Time        { return r.startTime }
func (r *Reservation) ExpectedEndTime() time.Time  { return r.expectedEndTime }
func (r *Reservation) ExtendedEndTime() *time.Time { return r.extendedEndTime }
func (r *Reservation) ActualEndTime() *time.Time   { return r.actualEndTime }
func (r *Reservation) Status() Status              { return r.status }
func (r *Reservation) HourlyRate() Money           { return r.hourlyRate }
func (r *Reservation) TotalCost() Money            { return r.totalCost }
func (r *Reservation) ExtensionCount() int         { return r.extensionCount }
func (r *Reservation) AccessCode() AccessCode      { return r.accessCode }
func (r *Reservation) Version() int                { return r.version }
func (r *Reservation) CreatedAt() time.Time        { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time        { return r.updatedAt }

func validateHours(hours float64) error {
	if math.IsNaN(hours) || math.IsInf(hours, 0) || hours <= 0 {
		return ErrInvalidDuration
	}
	return nil
}

func hoursToDuration(hours float64) time.Duration {
	return time.Duration(hours * float64(time.Hour))
}
