//go:build unit || e2e

package builder

import (
	"time"

	"locker-hub/internal/domain/reservation"
	reqdto "locker-hub/internal/handler/dto/request"
	sqlc "locker-hub/internal/infra/sqlc/generated"
	"locker-hub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationBuilder struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	LockerID        uuid.UUID
	StartTime       time.Time
	DurationHours   float64
	ExtendedEndTime *time.Time
	ActualEndTime   *time.Time
	Status          reservation.Status
	HourlyRateCents int64
	TotalCostCents  int64
	ExtensionCount  int
	AccessCode      string
	Version         int
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:              uuid.New(),
		UserID:          uuid.New(),
		LockerID:        uuid.New(),
		StartTime:       time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC),
		DurationHours:   3,
		Status:          reservation.StatusActive,
		HourlyRateCents: 1000,
		TotalCostCents:  3000,
		AccessCode:      "482913",
	}
}

func (r *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(r)
	return r
}

func (r *ReservationBuilder) ExpectedEndTime() time.Time {
	return r.StartTime.Add(time.Duration(r.DurationHours * float64(time.Hour)))
}

// Build methods
func (r *ReservationBuilder) BuildDomain() *reservation.Reservation {
	code, err := reservation.NewAccessCode(r.AccessCode)
	if err != nil {
		panic(err)
	}
	return reservation.ReconstructReservation(
		r.ID,
		r.UserID,
		r.LockerID,
		r.StartTime,
		r.ExpectedEndTime(),
		r.ExtendedEndTime,
		r.ActualEndTime,
		r.Status,
		reservation.NewMoney(r.HourlyRateCents),
		reservation.NewMoney(r.TotalCostCents),
		r.ExtensionCount,
		code,
		r.Version,
		r.StartTime,
		r.StartTime,
	)
}

func (r *ReservationBuilder) BuildInfra() sqlc.Reservations {
	row := sqlc.Reservations{
		ID:              r.ID,
		UserID:          r.UserID,
		LockerID:        r.LockerID,
		StartTime:       pgtype.Timestamptz{Time: r.StartTime, Valid: true},
		ExpectedEndTime: pgtype.Timestamptz{Time: r.ExpectedEndTime(), Valid: true},
		Status:          r.Status.String(),
		HourlyRateCents: r.HourlyRateCents,
		TotalCostCents:  r.TotalCostCents,
		ExtensionCount:  int32(r.ExtensionCount),
		AccessCode:      r.AccessCode,
		Version:         int32(r.Version),
		CreatedAt:       pgtype.Timestamptz{Time: r.StartTime, Valid: true},
		UpdatedAt:       pgtype.Timestamptz{Time: r.StartTime, Valid: true},
	}
	if r.ExtendedEndTime != nil {
		row.ExtendedEndTime = pgtype.Timestamptz{Time: *r.ExtendedEndTime, Valid: true}
	}
	if r.ActualEndTime != nil {
		row.ActualEndTime = pgtype.Timestamptz{Time: *r.ActualEndTime, Valid: true}
	}
	return row
}

func (r *ReservationBuilder) BuildView() *queries.ReservationView {
	return &queries.ReservationView{
		ID:              r.ID,
		UserID:          r.UserID,
		LockerID:        r.LockerID,
		StartTime:       r.StartTime,
		ExpectedEndTime: r.ExpectedEndTime(),
		ExtendedEndTime: r.ExtendedEndTime,
		ActualEndTime:   r.ActualEndTime,
		Status:          r.Status.String(),
		HourlyRateCents: r.HourlyRateCents,
		TotalCostCents:  r.TotalCostCents,
		ExtensionCount:  r.ExtensionCount,
		AccessCode:      r.AccessCode,
		CreatedAt:       r.StartTime,
	}
}

func (r *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		LockerID:      r.LockerID,
		DurationHours: r.DurationHours,
	}
}
