//go:build unit || e2e

package builder

import (
	"time"

	"locker-hub/internal/domain/locker"
	sqlc "locker-hub/internal/infra/sqlc/generated"
	"locker-hub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type LockerBuilder struct {
	ID              uuid.UUID
	LocationID      uuid.UUID
	Size            locker.Size
	Status          locker.Status
	Code            string
	HourlyRateCents int64
	UpdatedAt       time.Time
}

func NewLockerBuilder() *LockerBuilder {
	return &LockerBuilder{
		ID:              uuid.New(),
		LocationID:      uuid.New(),
		Size:            locker.SizeMedium,
		Status:          locker.StatusAvailable,
		Code:            "A-101",
		HourlyRateCents: 1000,
		UpdatedAt:       time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (l *LockerBuilder) With(mutate func(*LockerBuilder)) *LockerBuilder {
	mutate(l)
	return l
}

func (l *LockerBuilder) AsOccupied() *LockerBuilder {
	l.Status = locker.StatusOccupied
	return l
}

func (l *LockerBuilder) AsMaintenance() *LockerBuilder {
	l.Status = locker.StatusMaintenance
	return l
}

// Build methods
func (l *LockerBuilder) BuildDomain() *locker.Locker {
	lk, err := locker.Reconstruct(l.ID, l.LocationID, l.Size, l.Status, l.Code, l.HourlyRateCents, l.UpdatedAt, l.UpdatedAt)
	if err != nil {
		panic(err)
	}
	return lk
}

func (l *LockerBuilder) BuildInfra() sqlc.Lockers {
	return sqlc.Lockers{
		ID:              l.ID,
		LocationID:      l.LocationID,
		Size:            l.Size.String(),
		Status:          l.Status.String(),
		Code:            l.Code,
		HourlyRateCents: l.HourlyRateCents,
		CreatedAt:       pgtype.Timestamptz{Time: l.UpdatedAt, Valid: true},
		UpdatedAt:       pgtype.Timestamptz{Time: l.UpdatedAt, Valid: true},
	}
}

func (l *LockerBuilder) BuildView() *queries.LockerView {
	return &queries.LockerView{
		ID:              l.ID,
		LocationID:      l.LocationID,
		Size:            l.Size.String(),
		Status:          l.Status.String(),
		Code:            l.Code,
		HourlyRateCents: l.HourlyRateCents,
		UpdatedAt:       l.UpdatedAt,
	}
}
