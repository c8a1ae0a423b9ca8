package infra

import (
	"errors"
	"log/slog"

	"locker-hub/internal/pkg/errs"
	"locker-hub/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgconn"
)

type RepositoryErrorKind string

type RepositoryError struct {
	Kind RepositoryErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

func WrapRepoErr(slogger *slog.Logger, kind RepositoryErrorKind, msg string, err error) error {
	logArgs := []any{
		slog.String("kind", string(kind)),
	}
	if err != nil {
		logArgs = append(logArgs, slog.String("error", err.Error()))
	}

	// not-found and lost races are expected outcomes, not failures
	switch kind {
	case KindNotFound, KindConflict:
		slogger.Debug("Repository error: "+msg, logArgs...)
	default:
		slogger.Error("Repository error: "+msg, logArgs...)
	}

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return markCategory(kind, RepositoryError{Kind: kind, msg: msg, err: err})
}

func markCategory(kind RepositoryErrorKind, err error) error {
	switch kind {
	case KindNotFound:
		return errs.Mark(err, errs.ErrNotFound)
	case KindConflict, KindDuplicateKey:
		return errs.Mark(err, errs.ErrConflict)
	default:
		return err
	}
}

// WrapPgErr picks the kind from the driver error before wrapping.
func WrapPgErr(slogger *slog.Logger, msg string, err error) error {
	return WrapRepoErr(slogger, KindOf(err), msg, err)
}

func KindOf(err error) RepositoryErrorKind {
	if pgconv.IsNoRows(err) {
		return KindNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgErrUniqueViolation:
			return KindDuplicateKey
		case pgErrForeignKeyViolation:
			return KindForeignKeyViolated
		}
	}
	return KindDBFailure
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

const (
	pgErrUniqueViolation     = "23505"
	pgErrForeignKeyViolation = "23503"
)

// Infrastructure-specific error kinds
const (
	KindNotFound           RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure          RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey       RepositoryErrorKind = "DUPLICATE_KEY"
	KindForeignKeyViolated RepositoryErrorKind = "FOREIGN_KEY_VIOLATED"
	KindConflict           RepositoryErrorKind = "CONFLICT"
)
