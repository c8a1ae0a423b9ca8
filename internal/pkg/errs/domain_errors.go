package errs

import "errors"

// Failure categories returned by the command and query layers. Lower layers
// attach one of these with Mark; handlers switch on them with Is.
var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrNotFound            = errors.New("not found")
	ErrForbidden           = errors.New("forbidden")
	ErrConflict            = errors.New("conflict")
	ErrResourceUnavailable = errors.New("resource unavailable")
	ErrTransient           = errors.New("transient failure")
	ErrInternal            = errors.New("internal error")
)

// Category returns the taxonomy marker carried by err, or ErrInternal.
func Category(err error) error {
	for _, c := range []error{
		ErrInvalidInput,
		ErrNotFound,
		ErrForbidden,
		ErrResourceUnavailable,
		ErrConflict,
		ErrTransient,
	} {
		if Is(err, c) {
			return c
		}
	}
	return ErrInternal
}
