package result

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// wire is the serialized shape shared by Result and Of[T].
type wire struct {
	Error       string      `json:"error" yaml:"error"`
	FailureType FailureType `json:"failureType" yaml:"failureType"`
	ResultType  ResultType  `json:"resultType" yaml:"resultType"`
	Failures    Failures    `json:"failures" yaml:"failures"`
}

type valueWire struct {
	wire
	Value json.RawMessage `json:"value,omitempty"`
}

func (r Result) toWire() wire {
	return wire{
		Error:       r.ErrorMessage(),
		FailureType: r.FailureType(),
		ResultType:  r.ResultType(),
		Failures:    r.Failures(),
	}
}

// toResult rebuilds a Result and rejects states the constructors cannot produce.
func (w wire) toResult() (Result, error) {
	if w.FailureType == FailureNone {
		if w.Error != "" || len(w.Failures) > 0 {
			return Result{}, fmt.Errorf("%w: success with error details", ErrInvalidWire)
		}
		switch w.ResultType {
		case TypeSuccess, TypeInformation, TypeWarning:
			return Result{kind: w.ResultType}, nil
		default:
			return Result{}, fmt.Errorf("%w: success with result type %s", ErrInvalidWire, w.ResultType)
		}
	}

	if int(w.FailureType) >= len(failureTypeNames) {
		return Result{}, fmt.Errorf("%w: %s", ErrInvalidWire, w.FailureType)
	}
	if w.Error == "" {
		return Result{}, fmt.Errorf("%w: %s failure without error", ErrInvalidWire, w.FailureType)
	}
	switch w.ResultType {
	case TypeInformation, TypeWarning, TypeError:
	default:
		return Result{}, fmt.Errorf("%w: failure with result type %s", ErrInvalidWire, w.ResultType)
	}

	return Result{
		kind: w.ResultType,
		fail: &failure{
			typ:      w.FailureType,
			message:  w.Error,
			failures: w.Failures.Clone(),
		},
	}, nil
}

func (r Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.toWire())
}

func (r *Result) UnmarshalJSON(data []byte) error {
	var w wire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	res, err := w.toResult()
	if err != nil {
		return err
	}
	*r = res
	return nil
}

// MarshalJSON emits "value" on success, even when it encodes as null, and
// omits it on failure.
func (r Of[T]) MarshalJSON() ([]byte, error) {
	w := valueWire{wire: r.res.toWire()}
	if r.res.IsSuccess() {
		raw, err := json.Marshal(r.value)
		if err != nil {
			return nil, err
		}
		w.Value = raw
	}
	return json.Marshal(w)
}

// UnmarshalJSON accepts a missing or null value on success; Value then
// reports the zero value with ok == true. A value sent alongside a failure is
// ignored.
func (r *Of[T]) UnmarshalJSON(data []byte) error {
	var w valueWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	res, err := w.toResult()
	if err != nil {
		return err
	}

	var v T
	if res.IsSuccess() && len(w.Value) > 0 && !bytes.Equal(w.Value, []byte("null")) {
		if err := json.Unmarshal(w.Value, &v); err != nil {
			return fmt.Errorf("result: decode value: %w", err)
		}
	}

	*r = Of[T]{res: res, value: v}
	return nil
}

func (t ResultType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *ResultType) UnmarshalText(text []byte) error {
	v, err := ParseResultType(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// UnmarshalJSON accepts a name or an ordinal number.
func (t *ResultType) UnmarshalJSON(data []byte) error {
	return t.UnmarshalText(unquoteEnum(data))
}

func (t FailureType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *FailureType) UnmarshalText(text []byte) error {
	v, err := ParseFailureType(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// UnmarshalJSON accepts a name or an ordinal number.
func (t *FailureType) UnmarshalJSON(data []byte) error {
	return t.UnmarshalText(unquoteEnum(data))
}

func unquoteEnum(data []byte) []byte {
	if s, err := strconv.Unquote(string(data)); err == nil {
		return []byte(s)
	}
	return data
}
