//go:build unit

package repository_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"locker-hub/internal/domain/locker"
	"locker-hub/internal/infra"
	"locker-hub/internal/infra/repository"
	sqlc "locker-hub/internal/infra/sqlc/generated"
	"locker-hub/internal/pkg/clock"
	"locker-hub/internal/pkg/errs"
	"locker-hub/tests/common/builder"
	repositorymock "locker-hub/tests/mock/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))
	testNow    = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
)

// =============================================================================
// Locker Repository Tests
// =============================================================================

func TestLockerRepository_TryMarkOccupied(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name        string
		status      locker.Status
		setupMock   func(*repositorymock.MockLockerWriteQueries, sqlc.Lockers, sqlc.DBTX)
		expectedErr error
		expectKind  infra.RepositoryErrorKind
	}{
		{
			name:   "success: available locker becomes occupied",
			status: locker.StatusAvailable,
			setupMock: func(mock *repositorymock.MockLockerWriteQueries, row sqlc.Lockers, db sqlc.DBTX) {
				mock.EXPECT().GetLockerByIDForUpdate(ctx, db, row.ID).Return(row, nil)
				mock.EXPECT().UpdateLockerStatus(ctx, db, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.UpdateLockerStatusParams) (int64, error) {
						assert.Equal(t, "OCCUPIED", arg.Status)
						assert.Equal(t, "AVAILABLE", arg.ExpectedStatus)
						assert.Equal(t, testNow, arg.UpdatedAt.Time)
						return 1, nil
					})
			},
		},
		{
			name:   "error: occupied locker is unavailable",
			status: locker.StatusOccupied,
			setupMock: func(mock *repositorymock.MockLockerWriteQueries, row sqlc.Lockers, db sqlc.DBTX) {
				mock.EXPECT().GetLockerByIDForUpdate(ctx, db, row.ID).Return(row, nil)
			},
			expectedErr: locker.ErrUnavailable,
		},
		{
			name:   "error: maintenance locker is unavailable",
			status: locker.StatusMaintenance,
			setupMock: func(mock *repositorymock.MockLockerWriteQueries, row sqlc.Lockers, db sqlc.DBTX) {
				mock.EXPECT().GetLockerByIDForUpdate(ctx, db, row.ID).Return(row, nil)
			},
			expectedErr: locker.ErrUnavailable,
		},
		{
			name:   "error: guarded update lost the race",
			status: locker.StatusAvailable,
			setupMock: func(mock *repositorymock.MockLockerWriteQueries, row sqlc.Lockers, db sqlc.DBTX) {
				mock.EXPECT().GetLockerByIDForUpdate(ctx, db, row.ID).Return(row, nil)
				mock.EXPECT().UpdateLockerStatus(ctx, db, gomock.Any()).Return(int64(0), nil)
			},
			expectedErr: locker.ErrUnavailable,
		},
		{
			name:   "error: locker not found",
			status: locker.StatusAvailable,
			setupMock: func(mock *repositorymock.MockLockerWriteQueries, row sqlc.Lockers, db sqlc.DBTX) {
				mock.EXPECT().GetLockerByIDForUpdate(ctx, db, row.ID).Return(sqlc.Lockers{}, pgx.ErrNoRows)
			},
			expectedErr: errs.ErrNotFound,
			expectKind:  infra.KindNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockLockerWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewLockerRepository(mockQueries, mockDB, clock.NewMockClock(testNow), testLogger)

			row := builder.NewLockerBuilder().With(func(b *builder.LockerBuilder) { b.Status = tc.status }).BuildInfra()
			tc.setupMock(mockQueries, row, mockDB)

			lk, err := repo.TryMarkOccupied(ctx, row.ID)

			if tc.expectedErr != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, tc.expectedErr), "got %v", err)
				if tc.expectKind != "" {
					assert.True(t, infra.IsKind(err, tc.expectKind))
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, locker.StatusOccupied, lk.Status())
			assert.Equal(t, row.HourlyRateCents, lk.HourlyRateCents())
		})
	}
}

func TestLockerRepository_MarkAvailable(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		affected   int64
		dbErr      error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: locker freed", affected: 1},
		{name: "error: no such locker", affected: 0, expectKind: infra.KindNotFound},
		{name: "error: database failure", dbErr: errors.New("connection reset"), expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockLockerWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewLockerRepository(mockQueries, mockDB, clock.NewMockClock(testNow), testLogger)
			lockerID := builder.NewLockerBuilder().ID

			mockQueries.EXPECT().SetLockerAvailable(ctx, mockDB, gomock.Any()).Return(tc.affected, tc.dbErr)

			err := repo.MarkAvailable(ctx, lockerID)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestLockerRepository_ChangeStatus(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockLockerWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewLockerRepository(mockQueries, mockDB, clock.NewMockClock(testNow), testLogger)
	lk := builder.NewLockerBuilder().AsMaintenance().BuildDomain()

	mockQueries.EXPECT().UpdateLockerStatus(ctx, mockDB, gomock.Any()).Return(int64(0), nil)

	err := repo.ChangeStatus(ctx, lk, locker.StatusAvailable)

	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindConflict))
	assert.True(t, errs.Is(err, errs.ErrConflict))
}

// mockDBTX satisfies sqlc.DBTX; the query mocks never touch it.
type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
