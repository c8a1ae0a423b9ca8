package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"time"

	"locker-hub/internal/infra/metrics"
	"locker-hub/internal/infra/repository"
	sqlc "locker-hub/internal/infra/sqlc/generated"
	"locker-hub/internal/pkg/clock"
	"locker-hub/internal/pkg/config"
	"locker-hub/internal/pkg/errs"
	"locker-hub/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
	pgErrCodeLockNotAvailable     = "55P03"
	pgErrCodeQueryCanceled        = "57014"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool    *pgxpool.Pool
	q       *sqlc.Queries
	clock   clock.Clock
	logger  *slog.Logger
	timeout time.Duration
	// lock_timeout stays below the transaction deadline so lock waits fail first
	lockTimeout time.Duration
	maxRetries  int
	backoffBase time.Duration
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries, clk clock.Clock, cfg config.Config, logger *slog.Logger) *PostgresUoW {
	return &PostgresUoW{
		pool:        pool,
		q:           q,
		clock:       clk,
		logger:      logger,
		timeout:     cfg.Tx.Timeout,
		lockTimeout: cfg.Tx.LockTimeout,
		maxRetries:  max(cfg.Tx.MaxRetries, 0),
		backoffBase: 50 * time.Millisecond,
	}
}

// ReadCommitted plus row locks and guarded updates; only the touched rows are locked
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	err := u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
	if err != nil {
		metrics.TransactionFailuresTotal.WithLabelValues(failureLabel(err)).Inc()
	}
	return classify(err)
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	for attempt := 0; attempt <= u.maxRetries; attempt++ {
		err := u.attempt(ctx, options, fn)
		if err == nil {
			return nil
		}

		if !shouldRetry(err, attempt, u.maxRetries) {
			if isRetryableError(err) {
				u.logger.Warn("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, u.backoffBase)

		u.logger.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func (u *PostgresUoW) attempt(parent context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	ctx := parent
	if u.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(parent, u.timeout)
		defer cancel()
	}

	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	if u.lockTimeout > 0 {
		// SET LOCAL does not accept bind parameters
		stmt := fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", u.lockTimeout.Milliseconds())
		if _, err := pgxTx.Exec(ctx, stmt); err != nil {
			u.rollback(pgxTx)
			return err
		}
	}

	tx := &pgTx{
		dbtx: pgxTx,
		uow:  u,
	}

	err = fn(ctx, tx)
	if err == nil {
		if err = pgxTx.Commit(ctx); err == nil {
			return nil
		}
		err = errs.Mark(err, errTransactionCommit)
	}

	u.rollback(pgxTx)
	return err
}

// rollback uses a fresh context so an expired deadline still releases the connection
func (u *PostgresUoW) rollback(pgxTx pgx.Tx) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
		if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			u.logger.Warn("rollback failed", "error", rollbackErr.Error())
		}
	}
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	switch pgCode(err) {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected, pgErrCodeLockNotAvailable:
		return true
	default:
		return false
	}
}

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// classify attaches a failure category to errors the store produced.
// Errors that already carry one pass through unchanged.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if errs.Category(err) != errs.ErrInternal {
		return err
	}

	switch {
	case isTransient(err):
		return errs.Mark(err, errs.ErrTransient)
	case pgCode(err) == pgErrCodeSerializationFailure, pgCode(err) == pgErrCodeDeadlockDetected:
		return errs.Mark(err, errs.ErrConflict)
	default:
		return err
	}
}

func isTransient(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	switch pgCode(err) {
	case pgErrCodeLockNotAvailable, pgErrCodeQueryCanceled:
		return true
	}
	if errs.Is(err, errTransactionBegin) || pgconn.Timeout(err) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}

func failureLabel(err error) string {
	switch {
	case isTransient(err):
		return "transient"
	case isRetryableError(err):
		return "conflict"
	default:
		return "other"
	}
}

type pgTx struct {
	dbtx sqlc.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	lockerRepo       shared.LockerRepository
	reservationRepo  shared.ReservationRepository
	verificationRepo shared.VerificationCodeRepository
	idempotencyRepo  shared.IdempotencyRepository
}

func (t *pgTx) Lockers() shared.LockerRepository {
	if t.lockerRepo == nil {
		t.lockerRepo = repository.NewLockerRepository(t.uow.q, t.dbtx, t.uow.clock, t.uow.logger)
	}
	return t.lockerRepo
}

func (t *pgTx) Reservations() shared.ReservationRepository {
	if t.reservationRepo == nil {
		t.reservationRepo = repository.NewReservationRepository(t.uow.q, t.dbtx, t.uow.logger)
	}
	return t.reservationRepo
}

func (t *pgTx) VerificationCodes() shared.VerificationCodeRepository {
	if t.verificationRepo == nil {
		t.verificationRepo = repository.NewVerificationCodeRepository(t.uow.q, t.dbtx, t.uow.logger)
	}
	return t.verificationRepo
}

func (t *pgTx) IdempotencyKeys() shared.IdempotencyRepository {
	if t.idempotencyRepo == nil {
		t.idempotencyRepo = repository.NewIdempotencyRepository(t.uow.q, t.dbtx, t.uow.logger)
	}
	return t.idempotencyRepo
}
