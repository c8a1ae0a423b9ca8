package converter

import (
	"errors"
	"fmt"
	"math"

	"locker-hub/internal/domain/reservation"
	sqlc "locker-hub/internal/infra/sqlc/generated"
	"locker-hub/internal/pkg/pgconv"
)

var ErrCorruptRow = errors.New("stored row violates domain constraints")

func ReservationToCreateParams(res *reservation.Reservation) sqlc.CreateReservationParams {
	return sqlc.CreateReservationParams{
		ID:              res.ID(),
		UserID:          res.UserID(),
		LockerID:        res.LockerID(),
		StartTime:       pgconv.TimeToPgtype(res.StartTime()),
		ExpectedEndTime: pgconv.TimeToPgtype(res.ExpectedEndTime()),
		Status:          res.Status().String(),
		HourlyRateCents: res.HourlyRate().Cents(),
		TotalCostCents:  res.TotalCost().Cents(),
		AccessCode:      res.AccessCode().String(),
		CreatedAt:       pgconv.TimeToPgtype(res.CreatedAt()),
		UpdatedAt:       pgconv.TimeToPgtype(res.UpdatedAt()),
	}
}

func ReservationToExtensionParams(res *reservation.Reservation) (sqlc.UpdateReservationExtensionParams, error) {
	count, err := toInt32(res.ExtensionCount())
	if err != nil {
		return sqlc.UpdateReservationExtensionParams{}, err
	}
	version, err := toInt32(res.Version())
	if err != nil {
		return sqlc.UpdateReservationExtensionParams{}, err
	}

	return sqlc.UpdateReservationExtensionParams{
		ID:              res.ID(),
		ExtendedEndTime: pgconv.TimePtrToPgtype(res.ExtendedEndTime()),
		TotalCostCents:  res.TotalCost().Cents(),
		ExtensionCount:  count,
		UpdatedAt:       pgconv.TimeToPgtype(res.UpdatedAt()),
		Version:         version,
	}, nil
}

func ReservationToFinishParams(res *reservation.Reservation) (sqlc.FinishReservationParams, error) {
	version, err := toInt32(res.Version())
	if err != nil {
		return sqlc.FinishReservationParams{}, err
	}

	return sqlc.FinishReservationParams{
		ID:            res.ID(),
		Status:        res.Status().String(),
		ActualEndTime: pgconv.TimePtrToPgtype(res.ActualEndTime()),
		Version:       version,
	}, nil
}

func HistoryToCreateParams(rec reservation.HistoryRecord) sqlc.CreateReservationHistoryParams {
	return sqlc.CreateReservationHistoryParams{
		ReservationID:  rec.ReservationID(),
		UserID:         rec.UserID(),
		LockerID:       rec.LockerID(),
		StartTime:      pgconv.TimeToPgtype(rec.Start()),
		EndTime:        pgconv.TimeToPgtype(rec.End()),
		TotalHours:     rec.TotalHours(),
		TotalCostCents: rec.TotalCost().Cents(),
	}
}

func ReservationToDomain(row sqlc.Reservations) (*reservation.Reservation, error) {
	status, err := reservation.ParseStatus(row.Status)
	if err != nil {
		return nil, fmt.Errorf("%w: reservation %s: %w", ErrCorruptRow, row.ID, err)
	}
	code, err := reservation.NewAccessCode(row.AccessCode)
	if err != nil {
		return nil, fmt.Errorf("%w: reservation %s: %w", ErrCorruptRow, row.ID, err)
	}
	rate, err := reservation.NewMoneyFromInt(row.HourlyRateCents)
	if err != nil {
		return nil, fmt.Errorf("%w: reservation %s: %w", ErrCorruptRow, row.ID, err)
	}
	total, err := reservation.NewMoneyFromInt(row.TotalCostCents)
	if err != nil {
		return nil, fmt.Errorf("%w: reservation %s: %w", ErrCorruptRow, row.ID, err)
	}

	return reservation.ReconstructReservation(
		row.ID,
		row.UserID,
		row.LockerID,
		pgconv.TimeFromPgtype(row.StartTime),
		pgconv.TimeFromPgtype(row.ExpectedEndTime),
		pgconv.TimePtrFromPgtype(row.ExtendedEndTime),
		pgconv.TimePtrFromPgtype(row.ActualEndTime),
		status,
		rate,
		total,
		int(row.ExtensionCount),
		code,
		int(row.Version),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func toInt32(v int) (int32, error) {
	if v > math.MaxInt32 || v < math.MinInt32 {
		return 0, fmt.Errorf("value out of int32 range: %d", v)
	}
	return int32(v), nil
}
