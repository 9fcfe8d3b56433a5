package validator

// Numeric is the constraint accepted by Number.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// NumberRules validates a numeric property.
type NumberRules[N Numeric] struct {
	chain
	value N
}

// Number starts a chain of numeric rules for property name.
func Number[N Numeric](b Registrar, name string, value N) *NumberRules[N] {
	return &NumberRules[N]{chain: newChain(b, name), value: value}
}

func (r *NumberRules[N]) NotZero() *NumberRules[N] {
	r.add(func() bool { return r.value != 0 }, "must not be zero")
	return r
}

func (r *NumberRules[N]) GreaterThan(n N) *NumberRules[N] {
	r.add(func() bool { return r.value > n }, "must be greater than %v", n)
	return r
}

func (r *NumberRules[N]) GreaterThanOrEqual(n N) *NumberRules[N] {
	r.add(func() bool { return r.value >= n }, "must be greater than or equal to %v", n)
	return r
}

func (r *NumberRules[N]) LessThan(n N) *NumberRules[N] {
	r.add(func() bool { return r.value < n }, "must be less than %v", n)
	return r
}

func (r *NumberRules[N]) LessThanOrEqual(n N) *NumberRules[N] {
	r.add(func() bool { return r.value <= n }, "must be less than or equal to %v", n)
	return r
}

// InclusiveBetween requires min <= value <= max.
func (r *NumberRules[N]) InclusiveBetween(min, max N) *NumberRules[N] {
	r.add(func() bool { return r.value >= min && r.value <= max },
		"must be between %v and %v", min, max)
	return r
}

// ExclusiveBetween requires min < value < max.
func (r *NumberRules[N]) ExclusiveBetween(min, max N) *NumberRules[N] {
	r.add(func() bool { return r.value > min && r.value < max },
		"must be between %v and %v (exclusive)", min, max)
	return r
}

func (r *NumberRules[N]) Positive() *NumberRules[N] {
	r.add(func() bool { return r.value > 0 }, "must be positive")
	return r
}

func (r *NumberRules[N]) Negative() *NumberRules[N] {
	r.add(func() bool { return r.value < 0 }, "must be negative")
	return r
}

func (r *NumberRules[N]) Equal(n N) *NumberRules[N] {
	r.add(func() bool { return r.value == n }, "must be equal to %v", n)
	return r
}

// Must registers a custom predicate. A panic inside pred is not recovered.
func (r *NumberRules[N]) Must(pred func(N) bool) *NumberRules[N] {
	if pred == nil {
		panic(ErrNilPredicate)
	}
	r.add(func() bool { return pred(r.value) }, invalidMessage)
	return r
}

func (r *NumberRules[N]) When(pred func() bool) *NumberRules[N] {
	r.when(pred, true)
	return r
}

func (r *NumberRules[N]) Unless(pred func() bool) *NumberRules[N] {
	r.when(pred, false)
	return r
}

func (r *NumberRules[N]) WithMessage(text string) *NumberRules[N] {
	r.withMessage(text)
	return r
}
