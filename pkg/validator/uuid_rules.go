package validator

import (
	"strings"

	"github.com/google/uuid"
)

// UUID starts a chain of rules for a parsed UUID.
func (b *Builder[T]) UUID(name string, value uuid.UUID) *UUIDRules {
	return &UUIDRules{chain: newChain(b, name), value: value}
}

// UUIDString starts a chain of rules for a textual UUID.
func (b *Builder[T]) UUIDString(name, value string) *UUIDStringRules {
	return &UUIDStringRules{chain: newChain(b, name), value: value}
}

// UUIDRules validates a uuid.UUID property.
type UUIDRules struct {
	chain
	value uuid.UUID
}

// NotEmpty fails for uuid.Nil.
func (r *UUIDRules) NotEmpty() *UUIDRules {
	r.add(func() bool { return r.value != uuid.Nil }, "must not be empty")
	return r
}

func (r *UUIDRules) Empty() *UUIDRules {
	r.add(func() bool { return r.value == uuid.Nil }, "must be empty")
	return r
}

func (r *UUIDRules) Version(v int) *UUIDRules {
	r.add(func() bool { return int(r.value.Version()) == v }, "must be a version %d UUID", v)
	return r
}

func (r *UUIDRules) Must(pred func(uuid.UUID) bool) *UUIDRules {
	if pred == nil {
		panic(ErrNilPredicate)
	}
	r.add(func() bool { return pred(r.value) }, invalidMessage)
	return r
}

func (r *UUIDRules) When(pred func() bool) *UUIDRules {
	r.when(pred, true)
	return r
}

func (r *UUIDRules) Unless(pred func() bool) *UUIDRules {
	r.when(pred, false)
	return r
}

func (r *UUIDRules) WithMessage(text string) *UUIDRules {
	r.withMessage(text)
	return r
}

// UUIDStringRules validates a textual UUID in the canonical 36-character form.
type UUIDStringRules struct {
	chain
	value string
}

func (r *UUIDStringRules) Valid() *UUIDStringRules {
	r.add(func() bool {
		_, ok := parseCanonicalUUID(r.value)
		return ok
	}, "must be a valid UUID")
	return r
}

// NotEmpty fails for blank strings and for the nil UUID.
func (r *UUIDStringRules) NotEmpty() *UUIDStringRules {
	r.add(func() bool {
		if strings.TrimSpace(r.value) == "" {
			return false
		}
		id, ok := parseCanonicalUUID(r.value)
		return !ok || id != uuid.Nil
	}, "must not be empty")
	return r
}

func (r *UUIDStringRules) Version(v int) *UUIDStringRules {
	r.add(func() bool {
		id, ok := parseCanonicalUUID(r.value)
		return ok && int(id.Version()) == v
	}, "must be a version %d UUID", v)
	return r
}

func (r *UUIDStringRules) When(pred func() bool) *UUIDStringRules {
	r.when(pred, true)
	return r
}

func (r *UUIDStringRules) Unless(pred func() bool) *UUIDStringRules {
	r.when(pred, false)
	return r
}

func (r *UUIDStringRules) WithMessage(text string) *UUIDStringRules {
	r.withMessage(text)
	return r
}

// parseCanonicalUUID checks length and hyphen positions before parsing so
// that braced and URN forms accepted by uuid.Parse are rejected.
func parseCanonicalUUID(value string) (uuid.UUID, bool) {
	if len(value) != 36 {
		return uuid.Nil, false
	}
	if value[8] != '-' || value[13] != '-' || value[18] != '-' || value[23] != '-' {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
