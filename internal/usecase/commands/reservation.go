package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"math"
	"strconv"
	"time"

	"locker-hub/internal/domain/locker"
	"locker-hub/internal/domain/reservation"
	"locker-hub/internal/infra/metrics"
	"locker-hub/internal/pkg/clock"
	"locker-hub/internal/pkg/config"
	"locker-hub/internal/pkg/errs"
	"locker-hub/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	maxAccessCodeAttempts = 5

	reserveEndpoint           = "POST /api/reservations"
	defaultIdempotencyTTL     = 24 * time.Hour
	idempotencyPurgeRetention = time.Hour
)

type ReserveResult struct {
	ReservationID uuid.UUID
	LockerID      uuid.UUID
	AccessCode    string
	Status        reservation.Status
	StartTime     time.Time
	ExpiresAt     time.Time
	TotalCost     reservation.Money
	// Replayed is set when the result comes from an earlier request with the same key.
	Replayed bool
}

type ExtendResult struct {
	ReservationID  uuid.UUID
	LockerID       uuid.UUID
	NewEndTime     time.Time
	AdditionalCost reservation.Money
	TotalCost      reservation.Money
	ExtensionCount int
}

type ReleaseResult struct {
	ReservationID uuid.UUID
	ActualEndTime time.Time
	TotalHours    int64
	TotalCost     reservation.Money
}

type ReservationCommands interface {
	// Reserve with a non-nil idempotencyKey returns the stored result when the
	// same user repeats the same request with that key.
	Reserve(ctx context.Context, userID, lockerID uuid.UUID, durationHours float64, idempotencyKey uuid.UUID) (*ReserveResult, error)
	Extend(ctx context.Context, reservationID, userID uuid.UUID, additionalHours float64) (*ExtendResult, error)
	Release(ctx context.Context, reservationID, userID uuid.UUID) (*ReleaseResult, error)
	Cancel(ctx context.Context, reservationID, userID uuid.UUID) error
	PurgeExpiredIdempotencyKeys(ctx context.Context) (int64, error)
}

type reservationUseCaseImpl struct {
	uow            shared.UnitOfWork
	services       *reservation.Services
	issuer         reservation.AccessCodeIssuer
	events         eventEmitter
	clock          clock.Clock
	maxHours       float64
	idempotencyTTL time.Duration
	logger         *slog.Logger
}

func NewReservationUseCase(
	uow shared.UnitOfWork,
	pricing reservation.PriceCalculator,
	issuer reservation.AccessCodeIssuer,
	publisher EventPublisher,
	clk clock.Clock,
	cfg config.Config,
	logger *slog.Logger,
) ReservationCommands {
	ttl := cfg.Reservation.IdempotencyTTL
	if ttl <= 0 {
		ttl = defaultIdempotencyTTL
	}
	return &reservationUseCaseImpl{
		uow: uow,
		services: &reservation.Services{
			Clock:           clk,
			PriceCalculator: pricing,
		},
		issuer:         issuer,
		events:         newEventEmitter(publisher, cfg.Notify, logger),
		clock:          clk,
		maxHours:       cfg.Reservation.MaxDurationHours,
		idempotencyTTL: ttl,
		logger:         logger,
	}
}

func (uc *reservationUseCaseImpl) Reserve(
	ctx context.Context,
	userID, lockerID uuid.UUID,
	durationHours float64,
	idempotencyKey uuid.UUID,
) (result *ReserveResult, err error) {
	defer func() { uc.observe("reserve", err) }()

	if err := uc.validateHours(durationHours); err != nil {
		return nil, translateErr(err)
	}
	keyed := idempotencyKey != uuid.Nil
	requestHash := reserveRequestHash(lockerID, durationHours)

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		result = nil
		if keyed {
			replay, derr := uc.claimKey(ctx, tx, idempotencyKey, userID, requestHash)
			if derr != nil || replay != nil {
				result = replay
				return derr
			}
		}

		lk, derr := tx.Lockers().TryMarkOccupied(ctx, lockerID)
		if derr != nil {
			return derr
		}

		code, derr := uc.issueAccessCode(ctx, tx)
		if derr != nil {
			return derr
		}

		lockerSpec := reservation.LockerSpec{ID: lk.ID(), HourlyRateCents: lk.HourlyRateCents()}
		res, derr := reservation.NewReservation(uc.services, lockerSpec, userID, durationHours, code)
		if derr != nil {
			return derr
		}
		if derr = tx.Reservations().Create(ctx, res); derr != nil {
			return derr
		}

		result = &ReserveResult{
			ReservationID: res.ID(),
			LockerID:      res.LockerID(),
			AccessCode:    res.AccessCode().String(),
			Status:        res.Status(),
			StartTime:     res.StartTime(),
			ExpiresAt:     res.EndTime(),
			TotalCost:     res.TotalCost(),
		}
		if keyed {
			return uc.completeKey(ctx, tx, idempotencyKey, userID, result)
		}
		return nil
	})
	if err != nil {
		return nil, translateErr(err)
	}
	if result.Replayed {
		return result, nil
	}

	metrics.ReservationRevenueCents.Add(float64(result.TotalCost.Cents()))
	endsAt := result.ExpiresAt
	uc.publish(ctx, locker.EventReserved, result.LockerID, locker.StatusOccupied, result.ReservationID, &endsAt)
	return result, nil
}

func (uc *reservationUseCaseImpl) Extend(ctx context.Context, reservationID, userID uuid.UUID, additionalHours float64) (result *ExtendResult, err error) {
	defer func() { uc.observe("extend", err) }()

	if err := uc.validateHours(additionalHours); err != nil {
		return nil, translateErr(err)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, derr := tx.Reservations().FindByIDForUpdate(ctx, reservationID)
		if derr != nil {
			return derr
		}

		cost, derr := res.Extend(uc.services, userID, additionalHours)
		if derr != nil {
			return derr
		}
		if derr = tx.Reservations().SaveExtension(ctx, res); derr != nil {
			return derr
		}

		result = &ExtendResult{
			ReservationID:  res.ID(),
			LockerID:       res.LockerID(),
			NewEndTime:     res.EndTime(),
			AdditionalCost: cost,
			TotalCost:      res.TotalCost(),
			ExtensionCount: res.ExtensionCount(),
		}
		return nil
	})
	if err != nil {
		return nil, translateErr(err)
	}

	metrics.ReservationRevenueCents.Add(float64(result.AdditionalCost.Cents()))
	// occupancy is unchanged; the event only carries the new end time
	endsAt := result.NewEndTime
	uc.publish(ctx, locker.EventExtended, result.LockerID, locker.StatusOccupied, result.ReservationID, &endsAt)
	return result, nil
}

func (uc *reservationUseCaseImpl) Release(ctx context.Context, reservationID, userID uuid.UUID) (result *ReleaseResult, err error) {
	defer func() { uc.observe("release", err) }()

	var lockerID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, derr := tx.Reservations().FindByIDForUpdate(ctx, reservationID)
		if derr != nil {
			return derr
		}

		record, derr := res.Complete(uc.clock.Now(), userID)
		if derr != nil {
			return derr
		}
		if derr = tx.Reservations().SaveTermination(ctx, res); derr != nil {
			return derr
		}
		if derr = tx.Lockers().MarkAvailable(ctx, res.LockerID()); derr != nil {
			return derr
		}
		if derr = tx.Reservations().AppendHistory(ctx, record); derr != nil {
			return derr
		}

		lockerID = res.LockerID()
		result = &ReleaseResult{
			ReservationID: res.ID(),
			ActualEndTime: record.End(),
			TotalHours:    record.TotalHours(),
			TotalCost:     record.TotalCost(),
		}
		return nil
	})
	if err != nil {
		return nil, translateErr(err)
	}

	uc.publish(ctx, locker.EventReleased, lockerID, locker.StatusAvailable, result.ReservationID, nil)
	return result, nil
}

func (uc *reservationUseCaseImpl) Cancel(ctx context.Context, reservationID, userID uuid.UUID) (err error) {
	defer func() { uc.observe("cancel", err) }()

	var lockerID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, derr := tx.Reservations().FindByIDForUpdate(ctx, reservationID)
		if derr != nil {
			return derr
		}

		if derr = res.Cancel(uc.clock.Now(), userID); derr != nil {
			return derr
		}
		if derr = tx.Reservations().SaveTermination(ctx, res); derr != nil {
			return derr
		}
		if derr = tx.Lockers().MarkAvailable(ctx, res.LockerID()); derr != nil {
			return derr
		}
		lockerID = res.LockerID()
		return nil
	})
	if err != nil {
		return translateErr(err)
	}

	uc.publish(ctx, locker.EventCancelled, lockerID, locker.StatusAvailable, reservationID, nil)
	return nil
}

func (uc *reservationUseCaseImpl) validateHours(hours float64) error {
	if math.IsNaN(hours) || math.IsInf(hours, 0) || hours <= 0 {
		return reservation.ErrInvalidDuration
	}
	if uc.maxHours > 0 && hours > uc.maxHours {
		return ErrDurationTooLong
	}
	return nil
}

// issueAccessCode draws codes until one is not held by another active reservation.
func (uc *reservationUseCaseImpl) issueAccessCode(ctx context.Context, tx shared.Tx) (reservation.AccessCode, error) {
	for range maxAccessCodeAttempts {
		code, err := uc.issuer.Issue()
		if err != nil {
			return reservation.AccessCode{}, err
		}

		inUse, err := tx.Reservations().AccessCodeInUse(ctx, code)
		if err != nil {
			return reservation.AccessCode{}, err
		}
		if !inUse {
			return code, nil
		}
		uc.logger.Debug("access code collision, drawing again")
	}
	return reservation.AccessCode{}, ErrAccessCodeExhausted
}

func (uc *reservationUseCaseImpl) publish(
	ctx context.Context,
	eventType locker.EventType,
	lockerID uuid.UUID,
	status locker.Status,
	reservationID uuid.UUID,
	endsAt *time.Time,
) {
	uc.events.emit(ctx, locker.Event{
		Type:          eventType,
		LockerID:      lockerID,
		Status:        status,
		ReservationID: &reservationID,
		EndsAt:        endsAt,
		OccurredAt:    uc.clock.Now(),
	})
}

func (uc *reservationUseCaseImpl) observe(operation string, err error) {
	metrics.ReservationOpsTotal.WithLabelValues(operation, outcome(err)).Inc()
}

// PurgeExpiredIdempotencyKeys drops keys that expired more than an hour ago.
func (uc *reservationUseCaseImpl) PurgeExpiredIdempotencyKeys(ctx context.Context) (int64, error) {
	before := uc.clock.Now().Add(-idempotencyPurgeRetention)

	var deleted int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, derr := tx.IdempotencyKeys().DeleteExpiredBefore(ctx, before)
		deleted = n
		return derr
	})
	if err != nil {
		return 0, translateErr(err)
	}
	return deleted, nil
}

// claimKey takes the key for this request, or returns the stored result of
// the request that took it first.
func (uc *reservationUseCaseImpl) claimKey(
	ctx context.Context,
	tx shared.Tx,
	key, userID uuid.UUID,
	requestHash string,
) (*ReserveResult, error) {
	now := uc.clock.Now()
	claimed, err := tx.IdempotencyKeys().Claim(ctx, shared.IdempotencyRecord{
		Key:         key,
		UserID:      userID,
		Endpoint:    reserveEndpoint,
		RequestHash: requestHash,
		ExpiresAt:   now.Add(uc.idempotencyTTL),
		CreatedAt:   now,
	})
	if err != nil || claimed {
		return nil, err
	}

	existing, err := tx.IdempotencyKeys().Find(ctx, key, userID)
	if err != nil {
		return nil, err
	}
	if existing.Endpoint != reserveEndpoint || existing.RequestHash != requestHash {
		return nil, ErrIdempotencyKeyReused
	}
	if existing.Response == nil {
		return nil, ErrIdempotencyInProgress
	}

	var snap reserveSnapshot
	if err := json.Unmarshal(existing.Response, &snap); err != nil {
		return nil, errs.Wrap(err, "failed to decode stored reservation result")
	}
	uc.logger.Debug("replaying reservation for idempotency key", "reservation_id", snap.ReservationID.String())
	return snap.toResult(), nil
}

func (uc *reservationUseCaseImpl) completeKey(ctx context.Context, tx shared.Tx, key, userID uuid.UUID, result *ReserveResult) error {
	body, err := json.Marshal(newReserveSnapshot(result))
	if err != nil {
		return errs.Wrap(err, "failed to encode reservation result")
	}
	return tx.IdempotencyKeys().Complete(ctx, key, userID, result.ReservationID, body)
}

// reserveSnapshot is the stored form of a ReserveResult.
type reserveSnapshot struct {
	ReservationID  uuid.UUID `json:"reservationId"`
	LockerID       uuid.UUID `json:"lockerId"`
	AccessCode     string    `json:"accessCode"`
	Status         string    `json:"status"`
	StartTime      time.Time `json:"startTime"`
	ExpiresAt      time.Time `json:"expiresAt"`
	TotalCostCents int64     `json:"totalCostCents"`
}

func newReserveSnapshot(r *ReserveResult) reserveSnapshot {
	return reserveSnapshot{
		ReservationID:  r.ReservationID,
		LockerID:       r.LockerID,
		AccessCode:     r.AccessCode,
		Status:         r.Status.String(),
		StartTime:      r.StartTime,
		ExpiresAt:      r.ExpiresAt,
		TotalCostCents: r.TotalCost.Cents(),
	}
}

func (s reserveSnapshot) toResult() *ReserveResult {
	return &ReserveResult{
		ReservationID: s.ReservationID,
		LockerID:      s.LockerID,
		AccessCode:    s.AccessCode,
		Status:        reservation.Status(s.Status),
		StartTime:     s.StartTime,
		ExpiresAt:     s.ExpiresAt,
		TotalCost:     reservation.NewMoney(s.TotalCostCents),
		Replayed:      true,
	}
}

func reserveRequestHash(lockerID uuid.UUID, durationHours float64) string {
	sum := sha256.Sum256([]byte(lockerID.String() + "|" + strconv.FormatFloat(durationHours, 'g', -1, 64)))
	return hex.EncodeToString(sum[:])
}
