package result

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

type valueWireYAML struct {
	Error       string      `yaml:"error"`
	FailureType FailureType `yaml:"failureType"`
	ResultType  ResultType  `yaml:"resultType"`
	Failures    Failures    `yaml:"failures"`
	Value       *yaml.Node  `yaml:"value,omitempty"`
}

func (w valueWireYAML) toWire() wire {
	return wire{
		Error:       w.Error,
		FailureType: w.FailureType,
		ResultType:  w.ResultType,
		Failures:    w.Failures,
	}
}

func (r Result) MarshalYAML() (any, error) {
	return r.toWire(), nil
}

func (r *Result) UnmarshalYAML(node *yaml.Node) error {
	var w wire
	if err := node.Decode(&w); err != nil {
		return err
	}
	res, err := w.toResult()
	if err != nil {
		return err
	}
	*r = res
	return nil
}

func (r Of[T]) MarshalYAML() (any, error) {
	base := r.res.toWire()
	w := valueWireYAML{
		Error:       base.Error,
		FailureType: base.FailureType,
		ResultType:  base.ResultType,
		Failures:    base.Failures,
	}
	if r.res.IsSuccess() {
		node := &yaml.Node{}
		if err := node.Encode(r.value); err != nil {
			return nil, err
		}
		w.Value = node
	}
	return w, nil
}

func (r *Of[T]) UnmarshalYAML(node *yaml.Node) error {
	var w valueWireYAML
	if err := node.Decode(&w); err != nil {
		return err
	}
	res, err := w.toWire().toResult()
	if err != nil {
		return err
	}

	var v T
	if res.IsSuccess() && w.Value != nil && w.Value.Tag != "!!null" {
		if err := w.Value.Decode(&v); err != nil {
			return fmt.Errorf("result: decode value: %w", err)
		}
	}

	*r = Of[T]{res: res, value: v}
	return nil
}

func (t ResultType) MarshalYAML() (any, error) {
	return t.String(), nil
}

// UnmarshalYAML accepts a name or an ordinal number.
func (t *ResultType) UnmarshalYAML(node *yaml.Node) error {
	return t.UnmarshalText([]byte(node.Value))
}

func (t FailureType) MarshalYAML() (any, error) {
	return t.String(), nil
}

// UnmarshalYAML accepts a name or an ordinal number.
func (t *FailureType) UnmarshalYAML(node *yaml.Node) error {
	return t.UnmarshalText([]byte(node.Value))
}
