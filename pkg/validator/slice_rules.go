package validator

import "slices"

// SliceRules validates a slice property.
type SliceRules[E any] struct {
	chain
	value []E
}

// Slice starts a chain of collection rules for property name.
func Slice[E any](b Registrar, name string, value []E) *SliceRules[E] {
	return &SliceRules[E]{chain: newChain(b, name), value: value}
}

func (r *SliceRules[E]) NotEmpty() *SliceRules[E] {
	r.add(func() bool { return len(r.value) > 0 }, "must not be empty")
	return r
}

func (r *SliceRules[E]) Empty() *SliceRules[E] {
	r.add(func() bool { return len(r.value) == 0 }, "must be empty")
	return r
}

func (r *SliceRules[E]) MinCount(min int) *SliceRules[E] {
	r.add(func() bool { return len(r.value) >= min }, "must contain at least %d items", min)
	return r
}

func (r *SliceRules[E]) MaxCount(max int) *SliceRules[E] {
	r.add(func() bool { return len(r.value) <= max }, "must contain at most %d items", max)
	return r
}

func (r *SliceRules[E]) CountBetween(min, max int) *SliceRules[E] {
	r.add(func() bool { return len(r.value) >= min && len(r.value) <= max },
		"must contain between %d and %d items", min, max)
	return r
}

// Each requires pred to hold for every element.
func (r *SliceRules[E]) Each(pred func(E) bool) *SliceRules[E] {
	if pred == nil {
		panic(ErrNilPredicate)
	}
	r.add(func() bool {
		return !slices.ContainsFunc(r.value, func(e E) bool { return !pred(e) })
	}, "contains invalid items")
	return r
}

// Must registers a custom predicate over the whole slice.
func (r *SliceRules[E]) Must(pred func([]E) bool) *SliceRules[E] {
	if pred == nil {
		panic(ErrNilPredicate)
	}
	r.add(func() bool { return pred(r.value) }, invalidMessage)
	return r
}

func (r *SliceRules[E]) When(pred func() bool) *SliceRules[E] {
	r.when(pred, true)
	return r
}

func (r *SliceRules[E]) Unless(pred func() bool) *SliceRules[E] {
	r.when(pred, false)
	return r
}

func (r *SliceRules[E]) WithMessage(text string) *SliceRules[E] {
	r.withMessage(text)
	return r
}
