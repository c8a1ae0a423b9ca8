package readstore

import (
	"context"
	"log/slog"

	"locker-hub/internal/infra"
	sqlc "locker-hub/internal/infra/sqlc/generated"
	"locker-hub/internal/usecase/queries"
)

type LocationViewQueries interface {
	FindLocationsNear(ctx context.Context, db sqlc.DBTX, arg sqlc.FindLocationsNearParams) ([]sqlc.FindLocationsNearRow, error)
}

// LocationReadStore answers radius searches with a haversine query over the locations table.
type LocationReadStore struct {
	queries LocationViewQueries
	db      sqlc.DBTX
	logger  *slog.Logger
}

func NewLocationReadStore(queries LocationViewQueries, db sqlc.DBTX, logger *slog.Logger) *LocationReadStore {
	return &LocationReadStore{
		queries: queries,
		db:      db,
		logger:  logger,
	}
}

func (s *LocationReadStore) FindLocationsNear(ctx context.Context, lat, lon, radiusMeters float64, limit int32) ([]*queries.LocationView, error) {
	rows, err := s.queries.FindLocationsNear(ctx, s.db, sqlc.FindLocationsNearParams{
		Latitude:     lat,
		Longitude:    lon,
		RadiusMeters: radiusMeters,
		Limit:        limit,
	})
	if err != nil {
		return nil, infra.WrapPgErr(s.logger, "failed to find nearby locations", err)
	}

	result := make([]*queries.LocationView, len(rows))
	for i, row := range rows {
		result[i] = &queries.LocationView{
			ID:             row.ID,
			Name:           row.Name,
			Address:        row.Address,
			Latitude:       row.Latitude,
			Longitude:      row.Longitude,
			DistanceMeters: row.DistanceMeters,
		}
	}
	return result, nil
}
