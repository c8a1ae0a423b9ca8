package repository

import (
	"context"
	"log/slog"

	"locker-hub/internal/domain/locker"
	"locker-hub/internal/infra"
	"locker-hub/internal/infra/repository/converter"
	sqlc "locker-hub/internal/infra/sqlc/generated"
	"locker-hub/internal/pkg/clock"
	"locker-hub/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type LockerWriteQueries interface {
	GetLockerByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Lockers, error)
	UpdateLockerStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateLockerStatusParams) (int64, error)
	SetLockerAvailable(ctx context.Context, db sqlc.DBTX, arg sqlc.SetLockerAvailableParams) (int64, error)
}

type LockerRepository struct {
	queries LockerWriteQueries
	db      sqlc.DBTX
	clock   clock.Clock
	logger  *slog.Logger
}

func NewLockerRepository(queries LockerWriteQueries, db sqlc.DBTX, clk clock.Clock, logger *slog.Logger) *LockerRepository {
	return &LockerRepository{
		queries: queries,
		db:      db,
		clock:   clk,
		logger:  logger,
	}
}

// FindByIDForUpdate holds the row lock until the enclosing transaction ends.
func (r *LockerRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*locker.Locker, error) {
	row, err := r.queries.GetLockerByIDForUpdate(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapPgErr(r.logger, "failed to lock locker", err)
	}

	lk, err := converter.LockerToDomain(row)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "invalid locker row", err)
	}
	return lk, nil
}

func (r *LockerRepository) TryMarkOccupied(ctx context.Context, id uuid.UUID) (*locker.Locker, error) {
	lk, err := r.FindByIDForUpdate(ctx, id)
	if err != nil {
		return nil, err
	}

	// re-check under the row lock; the caller may have selected a stale view
	if err := lk.Occupy(); err != nil {
		return nil, err
	}

	if err := r.ChangeStatus(ctx, lk, locker.StatusAvailable); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, locker.ErrUnavailable
		}
		return nil, err
	}
	return lk, nil
}

func (r *LockerRepository) MarkAvailable(ctx context.Context, id uuid.UUID) error {
	affected, err := r.queries.SetLockerAvailable(ctx, r.db, sqlc.SetLockerAvailableParams{
		ID:        id,
		UpdatedAt: pgconv.TimeToPgtype(r.clock.Now()),
	})
	if err != nil {
		return infra.WrapPgErr(r.logger, "failed to free locker", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "locker not found", nil)
	}
	return nil
}

// ChangeStatus writes lk's status only if the row still has status from.
func (r *LockerRepository) ChangeStatus(ctx context.Context, lk *locker.Locker, from locker.Status) error {
	affected, err := r.queries.UpdateLockerStatus(ctx, r.db, sqlc.UpdateLockerStatusParams{
		ID:             lk.ID(),
		Status:         lk.Status().String(),
		UpdatedAt:      pgconv.TimeToPgtype(r.clock.Now()),
		ExpectedStatus: from.String(),
	})
	if err != nil {
		return infra.WrapPgErr(r.logger, "failed to update locker status", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindConflict, "locker status changed concurrently", nil)
	}
	return nil
}
