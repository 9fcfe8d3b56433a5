package validator

import (
	"fmt"
	"log/slog"

	"golang.org/x/text/message"

	"github.com/dmitrymomot/outcome/pkg/logger"
	"github.com/dmitrymomot/outcome/pkg/result"
)

// Registrar is the rule sink shared by every chain. It is implemented by
// Builder and cannot be implemented outside this package.
type Registrar interface {
	register(Rule) int
	replace(i int, wrap func(Rule) Rule)
	sprintf(format string, args ...any) string
}

// Option configures a Builder.
type Option func(*settings)

type settings struct {
	printer *message.Printer
	logger  *slog.Logger
}

// WithPrinter formats default messages through p.
func WithPrinter(p *message.Printer) Option {
	return func(s *settings) { s.printer = p }
}

// WithLogger sets the logger used for debug output. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) { s.logger = l }
}

// Builder accumulates rules and builds a T once they all pass.
type Builder[T any] struct {
	rules   []Rule
	printer *message.Printer
	logger  *slog.Logger
}

// New returns an empty Builder.
func New[T any](opts ...Option) *Builder[T] {
	s := &settings{}
	for _, opt := range opts {
		opt(s)
	}
	return &Builder[T]{
		printer: s.printer,
		logger:  logger.OrDefault(s.logger),
	}
}

// Add registers a custom rule.
func (b *Builder[T]) Add(r Rule) *Builder[T] {
	if r != nil {
		b.register(r)
	}
	return b
}

// Len returns the number of registered rules.
func (b *Builder[T]) Len() int {
	return len(b.rules)
}

// String starts a chain of string rules for property name.
func (b *Builder[T]) String(name, value string) *StringRules {
	return &StringRules{chain: newChain(b, name), value: value}
}

// Nested registers r as a rule of property name. A failed r contributes its
// failures map key-wise, or its message under name when it has no per-field
// details.
func (b *Builder[T]) Nested(name string, r result.Result) *NestedRules {
	c := newChain(b, name)
	c.last = b.register(&nested{property: name, res: r})
	return &NestedRules{chain: c}
}

// Validate evaluates every rule and returns the outcome without building.
func (b *Builder[T]) Validate() result.Result {
	failures := b.evaluate()
	if failures.IsEmpty() {
		return result.Success()
	}
	return result.ValidationFailure(failures)
}

// Build evaluates every rule once, in registration order. If none failed it
// calls factory exactly once and returns its value as a success; otherwise the
// factory is not called and a validation failure is returned.
func (b *Builder[T]) Build(factory func() T) result.Of[T] {
	if factory == nil {
		panic(ErrNilFactory)
	}
	failures := b.evaluate()
	if !failures.IsEmpty() {
		return result.ValidationFailureOf[T](failures)
	}
	return result.Ok(factory())
}

func (b *Builder[T]) evaluate() result.Failures {
	failures := result.Failures{}
	for _, r := range b.rules {
		collectInto(r, failures)
	}

	if !failures.IsEmpty() {
		b.logger.Debug("validation failed",
			logger.Component("validator"),
			logger.Count(len(failures)),
			slog.Any("fields", failures.Fields()),
		)
	}
	return failures
}

func (b *Builder[T]) register(r Rule) int {
	b.rules = append(b.rules, r)
	return len(b.rules) - 1
}

func (b *Builder[T]) replace(i int, wrap func(Rule) Rule) {
	b.rules[i] = wrap(b.rules[i])
}

func (b *Builder[T]) sprintf(format string, args ...any) string {
	if b.printer != nil {
		return b.printer.Sprintf(format, args...)
	}
	return fmt.Sprintf(format, args...)
}
