package commands

import (
	"context"

	"locker-hub/internal/domain/locker"
	"locker-hub/internal/domain/reservation"
	"locker-hub/internal/domain/verification"
	"locker-hub/internal/pkg/errs"
)

var (
	ErrAccessCodeExhausted = errs.New("could not issue a unique access code")
	ErrDurationTooLong     = errs.New("duration exceeds the maximum reservation length")

	ErrIdempotencyKeyReused  = errs.New("idempotency key was used for a different request")
	ErrIdempotencyInProgress = errs.New("request with this idempotency key is still in progress")
)

// translateErr attaches a failure category to domain errors. Errors that
// already carry one (store failures classified by the unit of work) pass through.
func translateErr(err error) error {
	if err == nil {
		return nil
	}
	if errs.Category(err) != errs.ErrInternal {
		return err
	}

	switch {
	case errs.IsAny(err,
		reservation.ErrInvalidDuration,
		reservation.ErrInvalidAccessCode,
		reservation.ErrNegativePrice,
		ErrDurationTooLong,
		verification.ErrInvalidPhone,
		verification.ErrInvalidPurpose,
	):
		return errs.Mark(err, errs.ErrInvalidInput)
	case errs.Is(err, reservation.ErrNotOwner):
		return errs.Mark(err, errs.ErrForbidden)
	case errs.Is(err, locker.ErrUnavailable):
		return errs.Mark(err, errs.ErrResourceUnavailable)
	case errs.IsAny(err,
		reservation.ErrNotActive,
		reservation.ErrInvalidTransition,
		locker.ErrInvalidTransition,
		ErrIdempotencyKeyReused,
		ErrIdempotencyInProgress,
	):
		return errs.Mark(err, errs.ErrConflict)
	case errs.IsAny(err, ErrAccessCodeExhausted, context.DeadlineExceeded):
		return errs.Mark(err, errs.ErrTransient)
	default:
		return err
	}
}

// outcome is the metrics label for a finished operation.
func outcome(err error) string {
	switch errs.Category(err) {
	case errs.ErrInvalidInput:
		return "invalid_input"
	case errs.ErrNotFound:
		return "not_found"
	case errs.ErrForbidden:
		return "forbidden"
	case errs.ErrConflict:
		return "conflict"
	case errs.ErrResourceUnavailable:
		return "unavailable"
	case errs.ErrTransient:
		return "transient"
	}
	if err == nil {
		return "ok"
	}
	return "internal"
}
