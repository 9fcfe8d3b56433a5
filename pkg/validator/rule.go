package validator

import "github.com/dmitrymomot/outcome/pkg/result"

// Rule is a single validation check bound to a property.
// Evaluate reports the message and true when the check fails.
type Rule interface {
	Property() string
	Evaluate() (message string, failed bool)
}

// collector is implemented by rules that may report under several properties.
type collector interface {
	collect(result.Failures)
}

const invalidMessage = "is invalid"

func collectInto(r Rule, f result.Failures) {
	if c, ok := r.(collector); ok {
		c.collect(f)
		return
	}
	if msg, failed := r.Evaluate(); failed {
		if msg == "" {
			msg = invalidMessage
		}
		f[r.Property()] = append(f[r.Property()], msg)
	}
}

type check struct {
	property string
	ok       func() bool
	message  func() string
}

func (c *check) Property() string { return c.property }

func (c *check) Evaluate() (string, bool) {
	if c.ok() {
		return "", false
	}
	return c.message(), true
}

// guarded runs inner only when guard() == want.
type guarded struct {
	inner Rule
	guard func() bool
	want  bool
}

func (g *guarded) Property() string { return g.inner.Property() }

func (g *guarded) Evaluate() (string, bool) {
	if g.guard() != g.want {
		return "", false
	}
	return g.inner.Evaluate()
}

func (g *guarded) collect(f result.Failures) {
	if g.guard() != g.want {
		return
	}
	collectInto(g.inner, f)
}

// overridden replaces whatever inner reports with a single fixed message.
type overridden struct {
	inner   Rule
	message string
}

func (o *overridden) Property() string { return o.inner.Property() }

func (o *overridden) Evaluate() (string, bool) {
	if _, failed := o.inner.Evaluate(); failed {
		return o.message, true
	}
	return "", false
}

func (o *overridden) collect(f result.Failures) {
	probe := result.Failures{}
	collectInto(o.inner, probe)
	if !probe.IsEmpty() {
		f[o.Property()] = append(f[o.Property()], o.message)
	}
}

// nested folds a Result produced by another validation into the parent.
type nested struct {
	property string
	res      result.Result
}

func (n *nested) Property() string { return n.property }

func (n *nested) Evaluate() (string, bool) {
	if n.res.IsSuccess() {
		return "", false
	}
	return n.res.ErrorMessage(), true
}

// collect merges the nested failures map key-wise. A failure without
// per-field details is reported under the parent property instead.
func (n *nested) collect(f result.Failures) {
	if n.res.IsSuccess() {
		return
	}
	if fs := n.res.Failures(); !fs.IsEmpty() {
		f.Merge(fs)
		return
	}
	f[n.property] = append(f[n.property], n.res.ErrorMessage())
}
