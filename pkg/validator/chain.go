package validator

// chain is embedded by every typed rule set. last is the index of the most
// recent rule this chain registered, or -1.
type chain struct {
	reg      Registrar
	property string
	last     int
}

func newChain(reg Registrar, property string) chain {
	return chain{reg: reg, property: property, last: -1}
}

func (c *chain) add(ok func() bool, format string, args ...any) {
	reg := c.reg
	c.last = reg.register(&check{
		property: c.property,
		ok:       ok,
		message:  func() string { return reg.sprintf(format, args...) },
	})
}

func (c *chain) wrap(fn func(Rule) Rule) {
	if c.last < 0 {
		panic(ErrNoRule)
	}
	c.reg.replace(c.last, fn)
}

func (c *chain) when(pred func() bool, want bool) {
	if pred == nil {
		panic(ErrNilPredicate)
	}
	c.wrap(func(r Rule) Rule {
		return &guarded{inner: r, guard: pred, want: want}
	})
}

func (c *chain) withMessage(text string) {
	c.wrap(func(r Rule) Rule {
		return &overridden{inner: r, message: text}
	})
}

// NestedRules is returned by Builder.Nested.
type NestedRules struct {
	chain
}

// When skips the nested rule unless pred returns true at Build time.
func (r *NestedRules) When(pred func() bool) *NestedRules {
	r.when(pred, true)
	return r
}

// Unless skips the nested rule when pred returns true at Build time.
func (r *NestedRules) Unless(pred func() bool) *NestedRules {
	r.when(pred, false)
	return r
}

// WithMessage reports text under the nested property instead of the nested
// failures.
func (r *NestedRules) WithMessage(text string) *NestedRules {
	r.withMessage(text)
	return r
}
