package readstore

import (
	"context"
	"log/slog"

	"locker-hub/internal/infra"
	sqlc "locker-hub/internal/infra/sqlc/generated"
	"locker-hub/internal/pkg/pgconv"
	"locker-hub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type LockerViewQueries interface {
	GetLockerByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Lockers, error)
	ListAvailableLockers(ctx context.Context, db sqlc.DBTX, arg sqlc.ListAvailableLockersParams) ([]sqlc.Lockers, error)
}

type LockerReadStore struct {
	queries LockerViewQueries
	db      sqlc.DBTX
	logger  *slog.Logger
}

func NewLockerReadStore(queries LockerViewQueries, db sqlc.DBTX, logger *slog.Logger) *LockerReadStore {
	return &LockerReadStore{
		queries: queries,
		db:      db,
		logger:  logger,
	}
}

func (s *LockerReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.LockerView, error) {
	row, err := s.queries.GetLockerByID(ctx, s.db, id)
	if err != nil {
		return nil, infra.WrapPgErr(s.logger, "failed to find locker", err)
	}
	return toLockerView(row), nil
}

// FindAvailable never builds SQL from the filter; absent fields become NULL parameters.
func (s *LockerReadStore) FindAvailable(ctx context.Context, filter queries.LockerFilter) ([]*queries.LockerView, error) {
	params := sqlc.ListAvailableLockersParams{
		LocationID: pgconv.UUIDPtrToPgtype(filter.LocationID),
		Limit:      filter.Limit,
	}
	if filter.Size != nil {
		params.Size = pgtype.Text{String: filter.Size.String(), Valid: true}
	}

	rows, err := s.queries.ListAvailableLockers(ctx, s.db, params)
	if err != nil {
		return nil, infra.WrapPgErr(s.logger, "failed to list available lockers", err)
	}

	result := make([]*queries.LockerView, len(rows))
	for i, row := range rows {
		result[i] = toLockerView(row)
	}
	return result, nil
}

func toLockerView(row sqlc.Lockers) *queries.LockerView {
	return &queries.LockerView{
		ID:              row.ID,
		LocationID:      row.LocationID,
		Size:            row.Size,
		Status:          row.Status,
		Code:            row.Code,
		HourlyRateCents: row.HourlyRateCents,
		UpdatedAt:       pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
