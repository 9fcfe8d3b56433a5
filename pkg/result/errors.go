package result

import "errors"

// Sentinels matched by errors.Is against the error returned from Result.Err.
var (
	ErrFailure    = errors.New("operation failed")
	ErrSecurity   = errors.New("security violation")
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrServer     = errors.New("server error")
	ErrCanceled   = errors.New("operation canceled")
)

// Programmer errors. These are raised as panics, never returned.
var (
	ErrNilHandler  = errors.New("result: nil handler")
	ErrSuccessLift = errors.New("result: cannot lift a success into a failure")
)

// ErrInvalidWire is returned when a serialized Result violates the invariants.
var ErrInvalidWire = errors.New("result: invalid wire representation")

// Error is the error form of a failed Result.
type Error struct {
	res Result
}

func (e *Error) Error() string {
	return e.res.ErrorMessage()
}

// Unwrap exposes the sentinel matching the failure type.
func (e *Error) Unwrap() error {
	switch e.res.FailureType() {
	case FailureSecurity:
		return ErrSecurity
	case FailureValidation:
		return ErrValidation
	case FailureNotFound:
		return ErrNotFound
	case FailureServerError:
		return ErrServer
	case FailureOperationCanceled:
		return ErrCanceled
	default:
		return ErrFailure
	}
}

// Result returns the failed Result this error was created from.
func (e *Error) Result() Result {
	return e.res
}

func (e *Error) FailureType() FailureType {
	return e.res.FailureType()
}

func (e *Error) Failures() Failures {
	return e.res.Failures()
}
