package validator

import "reflect"

// ValueRules validates a property of any type.
type ValueRules[V any] struct {
	chain
	value V
}

// Value starts a chain of generic rules for property name.
func Value[V any](b Registrar, name string, value V) *ValueRules[V] {
	return &ValueRules[V]{chain: newChain(b, name), value: value}
}

// NotNil fails for nil pointers, maps, slices, channels, funcs and interfaces.
func (r *ValueRules[V]) NotNil() *ValueRules[V] {
	r.add(func() bool { return !isNil(r.value) }, "must not be nil")
	return r
}

// NotZero fails for the zero value of V.
func (r *ValueRules[V]) NotZero() *ValueRules[V] {
	r.add(func() bool {
		v := reflect.ValueOf(r.value)
		return v.IsValid() && !v.IsZero()
	}, "must not be empty")
	return r
}

// Equal compares with reflect.DeepEqual.
func (r *ValueRules[V]) Equal(other V) *ValueRules[V] {
	r.add(func() bool { return reflect.DeepEqual(r.value, other) }, "must be equal to %v", other)
	return r
}

func (r *ValueRules[V]) Must(pred func(V) bool) *ValueRules[V] {
	if pred == nil {
		panic(ErrNilPredicate)
	}
	r.add(func() bool { return pred(r.value) }, invalidMessage)
	return r
}

func (r *ValueRules[V]) When(pred func() bool) *ValueRules[V] {
	r.when(pred, true)
	return r
}

func (r *ValueRules[V]) Unless(pred func() bool) *ValueRules[V] {
	r.when(pred, false)
	return r
}

func (r *ValueRules[V]) WithMessage(text string) *ValueRules[V] {
	r.withMessage(text)
	return r
}

func isNil(i any) bool {
	if i == nil {
		return true
	}
	v := reflect.ValueOf(i)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}
