package repository

import (
	"context"
	"log/slog"

	"locker-hub/internal/domain/reservation"
	"locker-hub/internal/infra"
	"locker-hub/internal/infra/repository/converter"
	sqlc "locker-hub/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type ReservationWriteQueries interface {
	CreateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationParams) (uuid.UUID, error)
	GetReservationByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Reservations, error)
	UpdateReservationExtension(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateReservationExtensionParams) (int64, error)
	FinishReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.FinishReservationParams) (int64, error)
	CreateReservationHistory(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationHistoryParams) error
	ActiveAccessCodeExists(ctx context.Context, db sqlc.DBTX, accessCode string) (bool, error)
}

type ReservationRepository struct {
	queries ReservationWriteQueries
	db      sqlc.DBTX
	logger  *slog.Logger
}

func NewReservationRepository(queries ReservationWriteQueries, db sqlc.DBTX, logger *slog.Logger) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
		db:      db,
		logger:  logger,
	}
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) error {
	if _, err := r.queries.CreateReservation(ctx, r.db, converter.ReservationToCreateParams(res)); err != nil {
		return infra.WrapPgErr(r.logger, "failed to create reservation", err)
	}
	return nil
}

func (r *ReservationRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	row, err := r.queries.GetReservationByIDForUpdate(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapPgErr(r.logger, "failed to lock reservation", err)
	}

	res, err := converter.ReservationToDomain(row)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "invalid reservation row", err)
	}
	return res, nil
}

// SaveExtension is guarded by status and version; a lost race yields KindConflict.
func (r *ReservationRepository) SaveExtension(ctx context.Context, res *reservation.Reservation) error {
	params, err := converter.ReservationToExtensionParams(res)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "invalid reservation state", err)
	}

	affected, err := r.queries.UpdateReservationExtension(ctx, r.db, params)
	if err != nil {
		return infra.WrapPgErr(r.logger, "failed to extend reservation", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindConflict, "reservation changed concurrently", nil)
	}
	return nil
}

// SaveTermination persists a COMPLETED or CANCELLED reservation.
func (r *ReservationRepository) SaveTermination(ctx context.Context, res *reservation.Reservation) error {
	params, err := converter.ReservationToFinishParams(res)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "invalid reservation state", err)
	}

	affected, err := r.queries.FinishReservation(ctx, r.db, params)
	if err != nil {
		return infra.WrapPgErr(r.logger, "failed to finish reservation", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindConflict, "reservation changed concurrently", nil)
	}
	return nil
}

func (r *ReservationRepository) AppendHistory(ctx context.Context, rec reservation.HistoryRecord) error {
	if err := r.queries.CreateReservationHistory(ctx, r.db, converter.HistoryToCreateParams(rec)); err != nil {
		return infra.WrapPgErr(r.logger, "failed to append reservation history", err)
	}
	return nil
}

func (r *ReservationRepository) AccessCodeInUse(ctx context.Context, code reservation.AccessCode) (bool, error) {
	exists, err := r.queries.ActiveAccessCodeExists(ctx, r.db, code.String())
	if err != nil {
		return false, infra.WrapPgErr(r.logger, "failed to check access code", err)
	}
	return exists, nil
}
