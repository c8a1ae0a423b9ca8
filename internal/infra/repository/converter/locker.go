package converter

import (
	"locker-hub/internal/domain/locker"
	sqlc "locker-hub/internal/infra/sqlc/generated"
	"locker-hub/internal/pkg/pgconv"
)

func LockerToDomain(row sqlc.Lockers) (*locker.Locker, error) {
	return locker.Reconstruct(
		row.ID,
		row.LocationID,
		locker.Size(row.Size),
		locker.Status(row.Status),
		row.Code,
		row.HourlyRateCents,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}
