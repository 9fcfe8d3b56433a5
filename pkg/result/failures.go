package result

import (
	"maps"
	"slices"
	"strings"
)

// Failures maps a property name to its error messages, in the order they
// were reported.
type Failures map[string][]string

// Add appends messages for field. Empty messages are skipped.
func (f Failures) Add(field string, messages ...string) {
	for _, m := range messages {
		if m == "" {
			continue
		}
		f[field] = append(f[field], m)
	}
}

func (f Failures) Has(field string) bool {
	return len(f[field]) > 0
}

// Get returns a copy of the messages reported for field.
func (f Failures) Get(field string) []string {
	return slices.Clone(f[field])
}

// Fields returns the field names in sorted order.
func (f Failures) Fields() []string {
	return slices.Sorted(maps.Keys(f))
}

func (f Failures) IsEmpty() bool {
	return len(f) == 0
}

// Merge appends every message of other to f. Messages of a field already
// present in f are kept and other's follow them.
func (f Failures) Merge(other Failures) {
	for field, messages := range other {
		f[field] = append(f[field], messages...)
	}
}

// Clone returns a deep copy. The copy of a nil Failures is empty, not nil.
func (f Failures) Clone() Failures {
	out := make(Failures, len(f))
	for field, messages := range f {
		out[field] = slices.Clone(messages)
	}
	return out
}

// summary renders a deterministic one-line description: fields sorted,
// messages in stored order.
func (f Failures) summary() string {
	if len(f) == 0 {
		return validationFailedMessage
	}

	parts := make([]string, 0, len(f))
	for _, field := range f.Fields() {
		parts = append(parts, field+": "+strings.Join(f[field], ", "))
	}
	return validationFailedMessage + ": " + strings.Join(parts, "; ")
}
