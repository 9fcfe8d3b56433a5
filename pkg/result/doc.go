// Package result represents the outcome of an operation as a value instead of
// an (T, error) pair or a panic.
//
// A Result is either a success, optionally tagged as Information or Warning,
// or a failure that belongs to exactly one FailureType: Error, Security,
// Validation, NotFound, ServerError or OperationCanceled. Validation failures
// additionally carry a per-field Failures map suitable for form rendering.
// Of[T] adds a success value to the same failure surface.
//
// # Invariants
//
// For every Result r:
//
//	r.IsSuccess() == (r.ErrorMessage() == "") == (r.FailureType() == FailureNone)
//
// Results are immutable. Accessors return copies, so a Result can be shared
// between goroutines without synchronization. The zero Result and the zero
// Of[T] are successes.
//
// # Usage
//
//	func FindUser(ctx context.Context, id string) result.Of[User] {
//	    u, err := repo.Get(ctx, id)
//	    if errors.Is(err, sql.ErrNoRows) {
//	        return result.NotFoundOf[User]("user " + id)
//	    }
//	    return result.From(u, err)
//	}
//
//	msg := result.MatchValue(FindUser(ctx, id),
//	    func(u User) string { return "hello " + u.Name },
//	    func(f result.Result) string { return f.ErrorMessage() },
//	)
//
// Combine merges several outcomes into one; MatchCases and SwitchCases
// dispatch on the failure category with a fixed fallback order documented on
// Cases.
//
// # Serialization
//
// Result and Of[T] implement json.Marshaler/Unmarshaler and
// yaml.Marshaler/Unmarshaler using a stable wire shape:
//
//	{"error":"","failureType":"None","resultType":"Success","failures":{},"value":42}
//
// The value field is present (possibly null) on success and absent on failure.
// Decoding rejects payloads that violate the invariants with ErrInvalidWire.
package result
