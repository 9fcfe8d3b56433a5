package result

// Of is a Result that carries a value on success.
type Of[T any] struct {
	res   Result
	value T
}

// Ok wraps v in a successful Of[T]. A nil or zero v is still a success.
func Ok[T any](v T, opts ...Option) Of[T] {
	return Of[T]{res: Success(opts...), value: v}
}

// From converts a Go (value, error) pair. A nil err yields Ok(v); otherwise
// the value is dropped and err is classified by FromError.
func From[T any](v T, err error) Of[T] {
	if err != nil {
		return Of[T]{res: FromError(err)}
	}
	return Ok(v)
}

// Fail lifts a failed Result into Of[T]. It panics when r is a success,
// since there is no value to carry.
func Fail[T any](r Result) Of[T] {
	if r.IsSuccess() {
		panic(ErrSuccessLift)
	}
	return Of[T]{res: r}
}

func FailureOf[T any](message string, opts ...Option) Of[T] {
	return Of[T]{res: Failure(message, opts...)}
}

func ValidationFailureOf[T any](failures Failures) Of[T] {
	return Of[T]{res: ValidationFailure(failures)}
}

func NotFoundOf[T any](subject string) Of[T] {
	return Of[T]{res: NotFound(subject)}
}

// Value returns the stored value and true on success. On failure it returns
// the zero value and false.
func (r Of[T]) Value() (T, bool) {
	if r.res.IsFailure() {
		var zero T
		return zero, false
	}
	return r.value, true
}

// ValueOr returns the value on success and fallback otherwise.
func (r Of[T]) ValueOr(fallback T) T {
	if v, ok := r.Value(); ok {
		return v
	}
	return fallback
}

// Result drops the value and keeps the outcome.
func (r Of[T]) Result() Result {
	return r.res
}

func (r Of[T]) IsSuccess() bool { return r.res.IsSuccess() }
func (r Of[T]) IsFailure() bool { return r.res.IsFailure() }
func (r Of[T]) ErrorMessage() string { return r.res.ErrorMessage() }
func (r Of[T]) FailureType() FailureType { return r.res.FailureType() }
func (r Of[T]) ResultType() ResultType { return r.res.ResultType() }
func (r Of[T]) Failures() Failures { return r.res.Failures() }
func (r Of[T]) Err() error { return r.res.Err() }
func (r Of[T]) String() string { return r.res.String() }
