package result

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dmitrymomot/outcome/pkg/logger"
)

const (
	unknownErrorMessage     = "Unknown error"
	validationFailedMessage = "Validation failed"
	notFoundMessage         = "Not Found"
	unauthorizedMessage     = "Unauthorized"
	serverErrorMessage      = "Internal Server Error"
	canceledMessage         = "Operation canceled"
)

// Result is the outcome of an operation without a value.
//
// fail == nil is the success variant. The failure variant always carries a
// non-empty message and a non-nil Failures map.
type Result struct {
	kind ResultType
	fail *failure
}

type failure struct {
	typ      FailureType
	message  string
	failures Failures
}

// Option customizes a constructed Result.
type Option func(*options)

type options struct {
	resultType ResultType
	set        bool
}

// WithResultType overrides the ResultType. Successes accept Information and
// Warning; failures accept Information, Warning and Error. Other values are
// ignored.
func WithResultType(t ResultType) Option {
	return func(o *options) {
		o.resultType = t
		o.set = true
	}
}

var (
	success            = Result{kind: TypeSuccess}
	successInformation = Result{kind: TypeInformation}
	successWarning     = Result{kind: TypeWarning}
)

// Success returns a successful Result.
func Success(opts ...Option) Result {
	o := applyOptions(opts)
	if !o.set {
		return success
	}
	switch o.resultType {
	case TypeInformation:
		return successInformation
	case TypeWarning:
		return successWarning
	default:
		return success
	}
}

// Failure returns a generic business failure.
func Failure(message string, opts ...Option) Result {
	return newFailure(FailureError, message, nil, opts)
}

// ValidationFailure returns a failure carrying a per-field breakdown.
// The message is derived from failures: fields in sorted order, each with its
// messages in reported order, e.g. "Validation failed: Age: too young; Email: required".
// An empty map is allowed and yields "Validation failed".
func ValidationFailure(failures Failures) Result {
	return newFailure(FailureValidation, failures.summary(), failures, nil)
}

// NotFound returns a NotFound failure. The message is always "Not Found";
// subject is written to the debug log only, so identifiers never reach the wire.
func NotFound(subject string) Result {
	slog.Default().Debug("resource not found",
		logger.Component("result"),
		logger.Subject(subject),
	)
	return newFailure(FailureNotFound, notFoundMessage, nil, nil)
}

// Unauthorized returns a Security failure. An empty message becomes "Unauthorized".
func Unauthorized(message string) Result {
	if message == "" {
		message = unauthorizedMessage
	}
	return newFailure(FailureSecurity, message, nil, nil)
}

// ServerError returns a ServerError failure.
func ServerError(message string) Result {
	if message == "" {
		message = serverErrorMessage
	}
	return newFailure(FailureServerError, message, nil, nil)
}

// Canceled returns an OperationCanceled failure.
func Canceled(message string) Result {
	if message == "" {
		message = canceledMessage
	}
	return newFailure(FailureOperationCanceled, message, nil, nil)
}

// FromError converts err into a Result.
//
//   - nil is a success
//   - an error produced by Result.Err restores the original Result
//   - ErrSecurity maps to Security
//   - context.Canceled, context.DeadlineExceeded and ErrCanceled map to OperationCanceled
//   - ErrNotFound maps to NotFound, ErrServer to ServerError
//   - errors exposing Failures() map[string][]string map to Validation
//   - anything else is a generic Error with err.Error() as message
func FromError(err error) Result {
	if err == nil {
		return success
	}

	var rerr *Error
	if errors.As(err, &rerr) {
		return rerr.res
	}

	var fe interface{ Failures() map[string][]string }
	switch {
	case errors.Is(err, ErrSecurity):
		return newFailure(FailureSecurity, err.Error(), nil, nil)
	case isCancellation(err):
		return newFailure(FailureOperationCanceled, err.Error(), nil, nil)
	case errors.Is(err, ErrNotFound):
		return newFailure(FailureNotFound, notFoundMessage, nil, nil)
	case errors.Is(err, ErrServer):
		return newFailure(FailureServerError, err.Error(), nil, nil)
	case errors.As(err, &fe):
		return ValidationFailure(Failures(fe.Failures()))
	default:
		return newFailure(FailureError, err.Error(), nil, nil)
	}
}

func isCancellation(err error) bool {
	return errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, ErrCanceled)
}

func newFailure(ft FailureType, message string, failures Failures, opts []Option) Result {
	if message == "" {
		message = unknownErrorMessage
	}

	kind := TypeError
	if o := applyOptions(opts); o.set {
		switch o.resultType {
		case TypeInformation, TypeWarning, TypeError:
			kind = o.resultType
		}
	}

	return Result{
		kind: kind,
		fail: &failure{
			typ:      ft,
			message:  message,
			failures: failures.Clone(),
		},
	}
}

func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

func (r Result) IsSuccess() bool {
	return r.fail == nil
}

func (r Result) IsFailure() bool {
	return r.fail != nil
}

// ErrorMessage returns the failure summary, or "" on success.
func (r Result) ErrorMessage() string {
	if r.fail == nil {
		return ""
	}
	return r.fail.message
}

func (r Result) FailureType() FailureType {
	if r.fail == nil {
		return FailureNone
	}
	return r.fail.typ
}

func (r Result) ResultType() ResultType {
	return r.kind
}

// Failures returns a copy of the per-field errors. Never nil.
func (r Result) Failures() Failures {
	if r.fail == nil {
		return Failures{}
	}
	return r.fail.failures.Clone()
}

// Err returns nil on success, otherwise an *Error wrapping r.
func (r Result) Err() error {
	if r.fail == nil {
		return nil
	}
	return &Error{res: r}
}

func (r Result) String() string {
	if r.fail == nil {
		return r.kind.String()
	}
	return r.fail.typ.String() + ": " + r.fail.message
}
