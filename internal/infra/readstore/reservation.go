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

type ReservationViewQueries interface {
	GetReservationByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Reservations, error)
	ListReservationsByUser(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationsByUserParams) ([]sqlc.Reservations, error)
	ListReservationHistoriesByUser(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationHistoriesByUserParams) ([]sqlc.ReservationHistories, error)
}

type ReservationReadStore struct {
	queries ReservationViewQueries
	db      sqlc.DBTX
	logger  *slog.Logger
}

func NewReservationReadStore(queries ReservationViewQueries, db sqlc.DBTX, logger *slog.Logger) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
		logger:  logger,
	}
}

func (s *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row, err := s.queries.GetReservationByID(ctx, s.db, id)
	if err != nil {
		return nil, infra.WrapPgErr(s.logger, "failed to find reservation", err)
	}
	return toReservationView(row), nil
}

func (s *ReservationReadStore) FindByUser(ctx context.Context, filter queries.ReservationFilter) ([]*queries.ReservationView, error) {
	params := sqlc.ListReservationsByUserParams{
		UserID: filter.UserID,
		Limit:  filter.Limit,
	}
	if filter.Status != nil {
		params.Status = pgtype.Text{String: filter.Status.String(), Valid: true}
	}

	rows, err := s.queries.ListReservationsByUser(ctx, s.db, params)
	if err != nil {
		return nil, infra.WrapPgErr(s.logger, "failed to list reservations", err)
	}

	result := make([]*queries.ReservationView, len(rows))
	for i, row := range rows {
		result[i] = toReservationView(row)
	}
	return result, nil
}

func (s *ReservationReadStore) FindHistoryByUser(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.HistoryView, error) {
	rows, err := s.queries.ListReservationHistoriesByUser(ctx, s.db, sqlc.ListReservationHistoriesByUserParams{
		UserID: userID,
		Limit:  limit,
	})
	if err != nil {
		return nil, infra.WrapPgErr(s.logger, "failed to list reservation history", err)
	}

	result := make([]*queries.HistoryView, len(rows))
	for i, row := range rows {
		result[i] = &queries.HistoryView{
			ReservationID:  row.ReservationID,
			LockerID:       row.LockerID,
			StartTime:      pgconv.TimeFromPgtype(row.StartTime),
			EndTime:        pgconv.TimeFromPgtype(row.EndTime),
			TotalHours:     row.TotalHours,
			TotalCostCents: row.TotalCostCents,
		}
	}
	return result, nil
}

func toReservationView(row sqlc.Reservations) *queries.ReservationView {
	return &queries.ReservationView{
		ID:              row.ID,
		UserID:          row.UserID,
		LockerID:        row.LockerID,
		StartTime:       pgconv.TimeFromPgtype(row.StartTime),
		ExpectedEndTime: pgconv.TimeFromPgtype(row.ExpectedEndTime),
		ExtendedEndTime: pgconv.TimePtrFromPgtype(row.ExtendedEndTime),
		ActualEndTime:   pgconv.TimePtrFromPgtype(row.ActualEndTime),
		Status:          row.Status,
		HourlyRateCents: row.HourlyRateCents,
		TotalCostCents:  row.TotalCostCents,
		ExtensionCount:  int(row.ExtensionCount),
		AccessCode:      row.AccessCode,
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
