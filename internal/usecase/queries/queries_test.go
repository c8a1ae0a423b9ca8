//go:build unit

package queries_test

import (
	"context"
	"math"
	"testing"

	"locker-hub/internal/domain/locker"
	"locker-hub/internal/domain/reservation"
	"locker-hub/internal/domain/user"
	"locker-hub/internal/pkg/errs"
	"locker-hub/internal/usecase/queries"
	"locker-hub/tests/common/builder"
	queriesmock "locker-hub/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestLockerQueries_FindAvailable(t *testing.T) {
	ctx := context.Background()

	t.Run("filters pass through with clamped limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockLockerReadStore(ctrl)
		q := queries.NewLockerQueries(store, queriesmock.NewMockLocationFinder(ctrl))
		locationID := uuid.New()
		view := builder.NewLockerBuilder().BuildView()

		store.EXPECT().FindAvailable(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, f queries.LockerFilter) ([]*queries.LockerView, error) {
				require.NotNil(t, f.Size)
				assert.Equal(t, locker.SizeSmall, *f.Size)
				assert.Equal(t, locationID, *f.LocationID)
				assert.Equal(t, int32(queries.MaxListLimit), f.Limit)
				return []*queries.LockerView{view}, nil
			})

		got, err := q.FindAvailable(ctx, &locationID, "small", 1000)

		require.NoError(t, err)
		assert.Equal(t, []*queries.LockerView{view}, got)
	})

	t.Run("no filters uses default limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockLockerReadStore(ctrl)
		q := queries.NewLockerQueries(store, queriesmock.NewMockLocationFinder(ctrl))

		store.EXPECT().FindAvailable(gomock.Any(), queries.LockerFilter{Limit: queries.DefaultListLimit}).Return(nil, nil)

		_, err := q.FindAvailable(ctx, nil, "", 0)

		require.NoError(t, err)
	})

	t.Run("unknown size is invalid input", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := queries.NewLockerQueries(queriesmock.NewMockLockerReadStore(ctrl), queriesmock.NewMockLocationFinder(ctrl))

		_, err := q.FindAvailable(ctx, nil, "HUGE", 10)

		assert.True(t, errs.Is(err, errs.ErrInvalidInput))
	})
}

func TestLockerQueries_FindNearbyLocations(t *testing.T) {
	ctx := context.Background()

	t.Run("valid search is delegated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		finder := queriesmock.NewMockLocationFinder(ctrl)
		q := queries.NewLockerQueries(queriesmock.NewMockLockerReadStore(ctrl), finder)
		want := []*queries.LocationView{{ID: uuid.New(), Name: "Shibuya Station", DistanceMeters: 120}}

		finder.EXPECT().FindLocationsNear(gomock.Any(), 35.658, 139.701, 1000.0, int32(5)).Return(want, nil)

		got, err := q.FindNearbyLocations(ctx, 35.658, 139.701, 1000, 5)

		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	invalid := []struct {
		name             string
		lat, lon, radius float64
	}{
		{"latitude out of range", 91, 0, 100},
		{"longitude out of range", 0, -181, 100},
		{"NaN latitude", math.NaN(), 0, 100},
		{"zero radius", 0, 0, 0},
		{"radius too large", 0, 0, queries.MaxSearchRadiusMeters + 1},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			q := queries.NewLockerQueries(queriesmock.NewMockLockerReadStore(ctrl), queriesmock.NewMockLocationFinder(ctrl))

			_, err := q.FindNearbyLocations(ctx, tt.lat, tt.lon, tt.radius, 10)

			assert.True(t, errs.Is(err, errs.ErrInvalidInput))
		})
	}
}

func TestReservationQueries_GetByID(t *testing.T) {
	ctx := context.Background()
	b := builder.NewReservationBuilder()

	tests := []struct {
		name    string
		actorID uuid.UUID
		role    user.Role
		wantErr error
	}{
		{"owner can read", b.UserID, user.RoleCustomer, nil},
		{"admin can read any", uuid.New(), user.RoleAdmin, nil},
		{"other customer is forbidden", uuid.New(), user.RoleCustomer, errs.ErrForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := queriesmock.NewMockReservationReadStore(ctrl)
			q := queries.NewReservationQueries(store)
			store.EXPECT().FindByID(gomock.Any(), b.ID).Return(b.BuildView(), nil)

			got, err := q.GetByID(ctx, b.ID, tt.actorID, tt.role)

			if tt.wantErr != nil {
				assert.True(t, errs.Is(err, tt.wantErr))
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, b.ID, got.ID)
		})
	}

	t.Run("not found passes through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockReservationReadStore(ctrl)
		q := queries.NewReservationQueries(store)
		store.EXPECT().FindByID(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errs.New("reservation missing"), errs.ErrNotFound))

		_, err := q.GetByID(ctx, uuid.New(), uuid.New(), user.RoleAdmin)

		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})
}

func TestReservationQueries_ListByUser(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("status filter is parsed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockReservationReadStore(ctrl)
		q := queries.NewReservationQueries(store)
		active := reservation.StatusActive

		store.EXPECT().FindByUser(gomock.Any(), queries.ReservationFilter{UserID: userID, Status: &active, Limit: 20}).
			Return(nil, nil)

		_, err := q.ListByUser(ctx, userID, "active", 20)

		require.NoError(t, err)
	})

	t.Run("unknown status is invalid input", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := queries.NewReservationQueries(queriesmock.NewMockReservationReadStore(ctrl))

		_, err := q.ListByUser(ctx, userID, "PENDING", 20)

		assert.True(t, errs.Is(err, errs.ErrInvalidInput))
	})

	t.Run("history uses default limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockReservationReadStore(ctrl)
		q := queries.NewReservationQueries(store)
		want := []*queries.HistoryView{{ReservationID: uuid.New(), TotalHours: 3, TotalCostCents: 3000}}

		store.EXPECT().FindHistoryByUser(gomock.Any(), userID, int32(queries.DefaultListLimit)).Return(want, nil)

		got, err := q.History(ctx, userID, -1)

		require.NoError(t, err)
		assert.Equal(t, want, got)
	})
}
