package shared

import (
	"context"
	"time"

	"locker-hub/internal/domain/locker"
	"locker-hub/internal/domain/reservation"
	"locker-hub/internal/domain/verification"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: one bounded read-committed transaction with retry on lock conflicts
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx hands out repositories bound to the running transaction.
type Tx interface {
	Lockers() LockerRepository
	Reservations() ReservationRepository
	VerificationCodes() VerificationCodeRepository
	IdempotencyKeys() IdempotencyRepository
}

type LockerRepository interface {
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*locker.Locker, error)
	// TryMarkOccupied succeeds only for an AVAILABLE locker; otherwise locker.ErrUnavailable.
	TryMarkOccupied(ctx context.Context, id uuid.UUID) (*locker.Locker, error)
	MarkAvailable(ctx context.Context, id uuid.UUID) error
	ChangeStatus(ctx context.Context, lk *locker.Locker, from locker.Status) error
}

type ReservationRepository interface {
	Create(ctx context.Context, res *reservation.Reservation) error
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	SaveExtension(ctx context.Context, res *reservation.Reservation) error
	SaveTermination(ctx context.Context, res *reservation.Reservation) error
	AppendHistory(ctx context.Context, rec reservation.HistoryRecord) error
	AccessCodeInUse(ctx context.Context, code reservation.AccessCode) (bool, error)
}

type VerificationCodeRepository interface {
	Create(ctx context.Context, code *verification.Code) error
	FindUsableForUpdate(ctx context.Context, phone verification.Phone, purpose verification.Purpose, now time.Time) ([]*verification.Code, error)
	MarkUsed(ctx context.Context, code *verification.Code) error
	DeleteExpiredBefore(ctx context.Context, before time.Time) (int64, error)
}

// IdempotencyRecord remembers the outcome of one keyed request per user.
// Response stays nil until the request's transaction commits.
type IdempotencyRecord struct {
	Key           uuid.UUID
	UserID        uuid.UUID
	Endpoint      string
	RequestHash   string
	ReservationID *uuid.UUID
	Response      []byte
	ExpiresAt     time.Time
	CreatedAt     time.Time
}

type IdempotencyRepository interface {
	// Claim reports false when a live record already holds the key. A claim
	// waits for any transaction that is still writing the same key.
	Claim(ctx context.Context, rec IdempotencyRecord) (bool, error)
	Find(ctx context.Context, key, userID uuid.UUID) (*IdempotencyRecord, error)
	Complete(ctx context.Context, key, userID, reservationID uuid.UUID, response []byte) error
	DeleteExpiredBefore(ctx context.Context, before time.Time) (int64, error)
}
