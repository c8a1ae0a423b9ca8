//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DefaultLocationID is the location seeded by SeedReferenceData.
var DefaultLocationID = uuid.MustParse("5b0c7a8e-2f0d-4c55-9d3e-6f1f0b8a1c01")

func CreateTestLocation(t *testing.T, db DBLike, name string, lat, lon float64) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO locations (id, name, address, latitude, longitude) VALUES ($1, $2, $3, $4, $5)",
		id, name, name+" address", lat, lon)
	require.NoError(t, err)
	return id
}

func CreateTestLocker(t *testing.T, db DBLike, locationID uuid.UUID, code, size, status string, hourlyRateCents int64) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO lockers (id, location_id, size, status, code, hourly_rate_cents) VALUES ($1, $2, $3, $4, $5, $6)",
		id, locationID, size, status, code, hourlyRateCents)
	require.NoError(t, err)
	return id
}

// CreateAvailableLocker adds a MEDIUM locker at 10.00 per hour to the default location.
func CreateAvailableLocker(t *testing.T, db DBLike, code string) uuid.UUID {
	t.Helper()
	return CreateTestLocker(t, db, DefaultLocationID, code, "MEDIUM", "AVAILABLE", 1000)
}

func LockerStatus(t *testing.T, db DBLike, lockerID uuid.UUID) string {
	t.Helper()

	var status string
	err := db.QueryRow(context.Background(), "SELECT status FROM lockers WHERE id = $1", lockerID).Scan(&status)
	require.NoError(t, err)
	return status
}

type ReservationTotals struct {
	Status         string
	TotalCostCents int64
	ExtensionCount int
}

func LoadReservationTotals(t *testing.T, db DBLike, reservationID uuid.UUID) ReservationTotals {
	t.Helper()

	var rt ReservationTotals
	err := db.QueryRow(context.Background(),
		"SELECT status, total_cost_cents, extension_count FROM reservations WHERE id = $1", reservationID).
		Scan(&rt.Status, &rt.TotalCostCents, &rt.ExtensionCount)
	require.NoError(t, err)
	return rt
}

func CountRows(t *testing.T, db DBLike, table string, where string, args ...any) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM "+table+" WHERE "+where, args...).Scan(&n)
	require.NoError(t, err)
	return n
}

// ExpireVerificationCodes moves every code for phone into the past.
func ExpireVerificationCodes(t *testing.T, db DBLike, phone string) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"UPDATE verification_codes SET expires_at = now() - interval '1 minute' WHERE phone = $1", phone)
	require.NoError(t, err)
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO locations (id, name, address, latitude, longitude) VALUES
		    ($1, 'Shibuya Station', '2-24-1 Shibuya, Tokyo', 35.658034, 139.701636)
		ON CONFLICT (id) DO NOTHING;
	`, DefaultLocationID)
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
