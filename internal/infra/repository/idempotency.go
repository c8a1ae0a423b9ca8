package repository

import (
	"context"
	"log/slog"
	"time"

	"locker-hub/internal/infra"
	sqlc "locker-hub/internal/infra/sqlc/generated"
	"locker-hub/internal/pkg/pgconv"
	"locker-hub/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type IdempotencyWriteQueries interface {
	ClaimIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimIdempotencyKeyParams) (int64, error)
	GetIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.GetIdempotencyKeyParams) (sqlc.IdempotencyKeys, error)
	CompleteIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.CompleteIdempotencyKeyParams) (int64, error)
	DeleteExpiredIdempotencyKeys(ctx context.Context, db sqlc.DBTX, before pgtype.Timestamptz) (int64, error)
}

type IdempotencyRepository struct {
	queries IdempotencyWriteQueries
	db      sqlc.DBTX
	logger  *slog.Logger
}

func NewIdempotencyRepository(queries IdempotencyWriteQueries, db sqlc.DBTX, logger *slog.Logger) *IdempotencyRepository {
	return &IdempotencyRepository{
		queries: queries,
		db:      db,
		logger:  logger,
	}
}

func (r *IdempotencyRepository) Claim(ctx context.Context, rec shared.IdempotencyRecord) (bool, error) {
	affected, err := r.queries.ClaimIdempotencyKey(ctx, r.db, sqlc.ClaimIdempotencyKeyParams{
		Key:         rec.Key,
		UserID:      rec.UserID,
		Endpoint:    rec.Endpoint,
		RequestHash: rec.RequestHash,
		ExpiresAt:   pgconv.TimeToPgtype(rec.ExpiresAt),
		CreatedAt:   pgconv.TimeToPgtype(rec.CreatedAt),
	})
	if err != nil {
		return false, infra.WrapPgErr(r.logger, "failed to claim idempotency key", err)
	}
	return affected == 1, nil
}

func (r *IdempotencyRepository) Find(ctx context.Context, key, userID uuid.UUID) (*shared.IdempotencyRecord, error) {
	row, err := r.queries.GetIdempotencyKey(ctx, r.db, sqlc.GetIdempotencyKeyParams{Key: key, UserID: userID})
	if err != nil {
		return nil, infra.WrapPgErr(r.logger, "failed to load idempotency key", err)
	}

	return &shared.IdempotencyRecord{
		Key:           row.Key,
		UserID:        row.UserID,
		Endpoint:      row.Endpoint,
		RequestHash:   row.RequestHash,
		ReservationID: pgconv.UUIDPtrFromPgtype(row.ReservationID),
		Response:      row.ResponseBody,
		ExpiresAt:     pgconv.TimeFromPgtype(row.ExpiresAt),
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}

// Complete stores the response once; a second completion means the key was reused.
func (r *IdempotencyRepository) Complete(ctx context.Context, key, userID, reservationID uuid.UUID, response []byte) error {
	affected, err := r.queries.CompleteIdempotencyKey(ctx, r.db, sqlc.CompleteIdempotencyKeyParams{
		Key:           key,
		UserID:        userID,
		ReservationID: pgconv.UUIDToPgtype(reservationID),
		ResponseBody:  response,
	})
	if err != nil {
		return infra.WrapPgErr(r.logger, "failed to complete idempotency key", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindConflict, "idempotency key already completed", nil)
	}
	return nil
}

func (r *IdempotencyRepository) DeleteExpiredBefore(ctx context.Context, before time.Time) (int64, error) {
	n, err := r.queries.DeleteExpiredIdempotencyKeys(ctx, r.db, pgconv.TimeToPgtype(before))
	if err != nil {
		return 0, infra.WrapPgErr(r.logger, "failed to purge idempotency keys", err)
	}
	return n, nil
}
