package queries

import (
	"context"
	"math"

	"locker-hub/internal/domain/locker"
	"locker-hub/internal/pkg/errs"

	"github.com/google/uuid"
)

const MaxSearchRadiusMeters = 50_000

var ErrInvalidCoordinates = errs.New("invalid coordinates or radius")

type LockerFilter struct {
	LocationID *uuid.UUID
	Size       *locker.Size
	Limit      int32
}

type LockerReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*LockerView, error)
	FindAvailable(ctx context.Context, filter LockerFilter) ([]*LockerView, error)
}

// LocationFinder is the geospatial lookup. Results are ordered by distance.
type LocationFinder interface {
	FindLocationsNear(ctx context.Context, lat, lon, radiusMeters float64, limit int32) ([]*LocationView, error)
}

type LockerQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*LockerView, error)
	FindAvailable(ctx context.Context, locationID *uuid.UUID, size string, limit int) ([]*LockerView, error)
	FindNearbyLocations(ctx context.Context, lat, lon, radiusMeters float64, limit int) ([]*LocationView, error)
}

type lockerQueriesImpl struct {
	store     LockerReadStore
	locations LocationFinder
}

func NewLockerQueries(store LockerReadStore, locations LocationFinder) LockerQueries {
	return &lockerQueriesImpl{store: store, locations: locations}
}

func (q *lockerQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*LockerView, error) {
	return q.store.FindByID(ctx, id)
}

func (q *lockerQueriesImpl) FindAvailable(ctx context.Context, locationID *uuid.UUID, size string, limit int) ([]*LockerView, error) {
	filter := LockerFilter{LocationID: locationID, Limit: clampLimit(limit)}
	if size != "" {
		s, err := locker.ParseSize(size)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrInvalidInput)
		}
		filter.Size = &s
	}
	return q.store.FindAvailable(ctx, filter)
}

func (q *lockerQueriesImpl) FindNearbyLocations(ctx context.Context, lat, lon, radiusMeters float64, limit int) ([]*LocationView, error) {
	if !validCoordinates(lat, lon) || !(radiusMeters > 0) || radiusMeters > MaxSearchRadiusMeters {
		return nil, errs.Mark(ErrInvalidCoordinates, errs.ErrInvalidInput)
	}
	return q.locations.FindLocationsNear(ctx, lat, lon, radiusMeters, clampLimit(limit))
}

func validCoordinates(lat, lon float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lon) {
		return false
	}
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}
