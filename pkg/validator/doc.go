// Package validator builds typed values only after their input has passed a
// set of per-property rules.
//
// A Builder[T] collects rules registered through typed chains: String,
// Number, Slice, UUID, UUIDString, Value and Nested. Each predicate call on a
// chain registers exactly one rule for the chain's property. Build evaluates
// every rule once, in registration order, without stopping at the first
// failure, and then either calls the factory and returns result.Ok, or returns
// a validation failure whose Failures map lists every message per property.
//
// # Usage
//
//	func NewSignup(in SignupForm) result.Of[Signup] {
//	    b := validator.New[Signup]()
//	    b.String("Email", in.Email).NotEmpty().Email()
//	    b.String("Password", in.Password).MinLength(12)
//	    validator.Number(b, "Age", in.Age).GreaterThanOrEqual(18).
//	        WithMessage("you must be an adult").
//	        Unless(func() bool { return in.GuardianConsent })
//	    b.Nested("Address", NewAddress(in.Address).Result())
//
//	    return b.Build(func() Signup {
//	        return Signup{Email: in.Email, Age: in.Age}
//	    })
//	}
//
// When, Unless and WithMessage modify the most recent rule registered by the
// chain they are called on. Guards are evaluated during Build, not at
// registration time.
//
// # Messages
//
// Default messages are English fmt format strings. WithLanguage formats them
// through golang.org/x/text/message using a catalog, which LoadCatalog can
// read from YAML keyed by language tag and English format string.
//
// # Concurrency
//
// A Builder is meant to be filled and built by one goroutine. Rules are
// evaluated sequentially, so the message order per property is deterministic.
// Predicates that panic are not recovered.
package validator
