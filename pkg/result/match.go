package result

// Cases holds the handlers for MatchCases.
//
// Dispatch order for failures:
//   - Security          -> Security
//   - Validation        -> Validation, with the per-field failures
//   - OperationCanceled -> Canceled
//   - NotFound, ServerError, Error and any failure whose specific handler is
//     nil -> Error
//
// Success and Error are required.
type Cases[R any] struct {
	Success    func() R
	Error      func(Result) R
	Security   func(Result) R
	Validation func(Failures) R
	Canceled   func(Result) R
}

// ValueCases is Cases for Of[T]: Success receives the value.
type ValueCases[T, R any] struct {
	Success    func(T) R
	Error      func(Result) R
	Security   func(Result) R
	Validation func(Failures) R
	Canceled   func(Result) R
}

// SwitchCases is the side-effecting form of Cases.
type SwitchCases struct {
	Success    func()
	Error      func(Result)
	Security   func(Result)
	Validation func(Failures)
	Canceled   func(Result)
}

// ValueSwitchCases is the side-effecting form of ValueCases.
type ValueSwitchCases[T any] struct {
	Success    func(T)
	Error      func(Result)
	Security   func(Result)
	Validation func(Failures)
	Canceled   func(Result)
}

// Match calls onSuccess or onFailure and returns its value.
func Match[R any](r Result, onSuccess func() R, onFailure func(Result) R) R {
	mustHandlers(onSuccess != nil, onFailure != nil)
	if r.IsSuccess() {
		return onSuccess()
	}
	return onFailure(r)
}

// MatchValue calls onSuccess with the value, or onFailure.
func MatchValue[T, R any](r Of[T], onSuccess func(T) R, onFailure func(Result) R) R {
	mustHandlers(onSuccess != nil, onFailure != nil)
	if v, ok := r.Value(); ok {
		return onSuccess(v)
	}
	return onFailure(r.res)
}

// MatchCases dispatches on the failure type. See Cases for the order.
func MatchCases[R any](r Result, c Cases[R]) R {
	mustHandlers(c.Success != nil, c.Error != nil)
	if r.IsSuccess() {
		return c.Success()
	}
	return matchFailure(r, c.Error, c.Security, c.Validation, c.Canceled)
}

// MatchValueCases dispatches on the failure type. See Cases for the order.
func MatchValueCases[T, R any](r Of[T], c ValueCases[T, R]) R {
	mustHandlers(c.Success != nil, c.Error != nil)
	if v, ok := r.Value(); ok {
		return c.Success(v)
	}
	return matchFailure(r.res, c.Error, c.Security, c.Validation, c.Canceled)
}

func matchFailure[R any](
	r Result,
	onError func(Result) R,
	onSecurity func(Result) R,
	onValidation func(Failures) R,
	onCanceled func(Result) R,
) R {
	switch r.FailureType() {
	case FailureSecurity:
		if onSecurity != nil {
			return onSecurity(r)
		}
	case FailureValidation:
		if onValidation != nil {
			return onValidation(r.Failures())
		}
	case FailureOperationCanceled:
		if onCanceled != nil {
			return onCanceled(r)
		}
	}
	return onError(r)
}

// Switch calls onSuccess or onFailure.
func (r Result) Switch(onSuccess func(), onFailure func(Result)) {
	Match(r, unit(onSuccess), unitOf(onFailure))
}

// SwitchCases dispatches on the failure type like MatchCases.
func (r Result) SwitchCases(c SwitchCases) {
	MatchCases(r, Cases[struct{}]{
		Success:    unit(c.Success),
		Error:      unitOf(c.Error),
		Security:   unitOf(c.Security),
		Validation: unitOf(c.Validation),
		Canceled:   unitOf(c.Canceled),
	})
}

// Switch calls onSuccess with the value, or onFailure.
func (r Of[T]) Switch(onSuccess func(T), onFailure func(Result)) {
	MatchValue(r, unitOf(onSuccess), unitOf(onFailure))
}

// SwitchCases dispatches on the failure type like MatchValueCases.
func (r Of[T]) SwitchCases(c ValueSwitchCases[T]) {
	MatchValueCases(r, ValueCases[T, struct{}]{
		Success:    unitOf(c.Success),
		Error:      unitOf(c.Error),
		Security:   unitOf(c.Security),
		Validation: unitOf(c.Validation),
		Canceled:   unitOf(c.Canceled),
	})
}

func mustHandlers(ok ...bool) {
	for _, v := range ok {
		if !v {
			panic(ErrNilHandler)
		}
	}
}

// unit and unitOf adapt side-effecting handlers; nil stays nil so the
// fallback rules still apply.
func unit(fn func()) func() struct{} {
	if fn == nil {
		return nil
	}
	return func() struct{} {
		fn()
		return struct{}{}
	}
}

func unitOf[A any](fn func(A)) func(A) struct{} {
	if fn == nil {
		return nil
	}
	return func(a A) struct{} {
		fn(a)
		return struct{}{}
	}
}
