package validator_test

import (
	"regexp"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/outcome/pkg/validator"
)

// messages runs register against a fresh builder and returns what was
// reported for "Field".
func messages(register func(b *validator.Builder[struct{}])) []string {
	b := validator.New[struct{}]()
	register(b)
	return b.Validate().Failures().Get("Field")
}

func TestStringRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		rules func(*validator.StringRules)
		value string
		want  []string
	}{
		{"not empty ok", func(r *validator.StringRules) { r.NotEmpty() }, " ", nil},
		{"not empty", func(r *validator.StringRules) { r.NotEmpty() }, "", []string{"must not be empty"}},
		{"not blank", func(r *validator.StringRules) { r.NotBlank() }, " \t", []string{"must not be blank"}},
		{"empty", func(r *validator.StringRules) { r.Empty() }, "x", []string{"must be empty"}},
		{"length counts runes", func(r *validator.StringRules) { r.Length(2, 4) }, "żółw", nil},
		{"length", func(r *validator.StringRules) { r.Length(2, 4) }, "a", []string{"must be between 2 and 4 characters long"}},
		{"max length", func(r *validator.StringRules) { r.MaxLength(3) }, "abcd", []string{"must be at most 3 characters long"}},
		{"exact length", func(r *validator.StringRules) { r.ExactLength(3) }, "ab", []string{"must be exactly 3 characters long"}},
		{"email ok", func(r *validator.StringRules) { r.Email() }, "ann@example.com", nil},
		{"email display name", func(r *validator.StringRules) { r.Email() }, "Ann <ann@example.com>", []string{"must be a valid email address"}},
		{"email no tld", func(r *validator.StringRules) { r.Email() }, "ann@localhost", []string{"must be a valid email address"}},
		{"url ok", func(r *validator.StringRules) { r.URL() }, "https://example.com/a?b=c", nil},
		{"url relative", func(r *validator.StringRules) { r.URL() }, "example.com", []string{"must be a valid URL"}},
		{"matches", func(r *validator.StringRules) { r.Matches(regexp.MustCompile(`^[a-z]+$`)) }, "A1", []string{"must match pattern ^[a-z]+$"}},
		{"alpha", func(r *validator.StringRules) { r.Alpha() }, "abc1", []string{"must contain only letters"}},
		{"alphanumeric ok", func(r *validator.StringRules) { r.Alphanumeric() }, "abc1", nil},
		{"alphanumeric", func(r *validator.StringRules) { r.Alphanumeric() }, "abc-1", []string{"must contain only letters and digits"}},
		{"one of", func(r *validator.StringRules) { r.OneOf("red", "green") }, "blue", []string{"must be one of: red, green"}},
		{"equal", func(r *validator.StringRules) { r.Equal("yes") }, "no", []string{`must be equal to "yes"`}},
		{"not equal", func(r *validator.StringRules) { r.NotEqual("admin") }, "admin", []string{`must not be equal to "admin"`}},
		{"must", func(r *validator.StringRules) { r.Must(func(s string) bool { return strings.HasPrefix(s, "x") }) }, "y", []string{"is invalid"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := messages(func(b *validator.Builder[struct{}]) {
				tt.rules(b.String("Field", tt.value))
			})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNumberRules(t *testing.T) {
	t.Parallel()

	t.Run("integers", func(t *testing.T) {
		t.Parallel()

		got := messages(func(b *validator.Builder[struct{}]) {
			validator.Number(b, "Field", 0).
				NotZero().
				Positive().
				GreaterThan(0).
				LessThan(0).
				LessThanOrEqual(-1).
				ExclusiveBetween(0, 10).
				Equal(5)
		})
		assert.Equal(t, []string{
			"must not be zero",
			"must be positive",
			"must be greater than 0",
			"must be less than 0",
			"must be less than or equal to -1",
			"must be between 0 and 10 (exclusive)",
			"must be equal to 5",
		}, got)
	})

	t.Run("floats", func(t *testing.T) {
		t.Parallel()

		got := messages(func(b *validator.Builder[struct{}]) {
			validator.Number(b, "Field", 2.5).
				InclusiveBetween(2.5, 3).
				Negative().
				Must(func(f float64) bool { return f > 2 })
		})
		assert.Equal(t, []string{"must be negative"}, got)
	})

	t.Run("named types", func(t *testing.T) {
		t.Parallel()

		type cents int64
		got := messages(func(b *validator.Builder[struct{}]) {
			validator.Number(b, "Field", cents(99)).GreaterThanOrEqual(100)
		})
		assert.Equal(t, []string{"must be greater than or equal to 100"}, got)
	})
}

func TestSliceRules(t *testing.T) {
	t.Parallel()

	t.Run("counts", func(t *testing.T) {
		t.Parallel()

		got := messages(func(b *validator.Builder[struct{}]) {
			validator.Slice(b, "Field", []string{"a"}).
				NotEmpty().
				Empty().
				MinCount(2).
				MaxCount(0).
				CountBetween(2, 3)
		})
		assert.Equal(t, []string{
			"must be empty",
			"must contain at least 2 items",
			"must contain at most 0 items",
			"must contain between 2 and 3 items",
		}, got)
	})

	t.Run("each", func(t *testing.T) {
		t.Parallel()

		positive := func(n int) bool { return n > 0 }
		assert.Nil(t, messages(func(b *validator.Builder[struct{}]) {
			validator.Slice(b, "Field", []int{1, 2}).Each(positive)
		}))
		assert.Equal(t, []string{"contains invalid items"}, messages(func(b *validator.Builder[struct{}]) {
			validator.Slice(b, "Field", []int{1, -2}).Each(positive)
		}))
	})

	t.Run("nil slice is empty", func(t *testing.T) {
		t.Parallel()

		got := messages(func(b *validator.Builder[struct{}]) {
			validator.Slice[int](b, "Field", nil).NotEmpty()
		})
		assert.Equal(t, []string{"must not be empty"}, got)
	})
}

func TestUUIDRules(t *testing.T) {
	t.Parallel()

	v4 := uuid.New()
	v7 := uuid.Must(uuid.NewV7())

	assert.Equal(t, []string{"must not be empty"}, messages(func(b *validator.Builder[struct{}]) {
		b.UUID("Field", uuid.Nil).NotEmpty()
	}))
	assert.Nil(t, messages(func(b *validator.Builder[struct{}]) {
		b.UUID("Field", v4).NotEmpty().Version(4)
	}))
	assert.Equal(t, []string{"must be a version 7 UUID"}, messages(func(b *validator.Builder[struct{}]) {
		b.UUID("Field", v4).Version(7)
	}))
	assert.Equal(t, []string{"must be empty"}, messages(func(b *validator.Builder[struct{}]) {
		b.UUID("Field", v7).Empty()
	}))
}

func TestUUIDStringRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
		want  []string
	}{
		{"canonical", uuid.NewString(), nil},
		{"upper case", strings.ToUpper(uuid.NewString()), nil},
		{"braced", "{" + uuid.NewString() + "}", []string{"must be a valid UUID"}},
		{"urn", "urn:uuid:" + uuid.NewString(), []string{"must be a valid UUID"}},
		{"garbage", "not-a-uuid", []string{"must be a valid UUID"}},
		{"nil uuid", uuid.Nil.String(), []string{"must not be empty"}},
		{"blank", "", []string{"must be a valid UUID", "must not be empty"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := messages(func(b *validator.Builder[struct{}]) {
				b.UUIDString("Field", tt.value).Valid().NotEmpty()
			})
			assert.Equal(t, tt.want, got)
		})
	}

	assert.Equal(t, []string{"must be a version 7 UUID"}, messages(func(b *validator.Builder[struct{}]) {
		b.UUIDString("Field", uuid.NewString()).Version(7)
	}))
}

func TestValueRules(t *testing.T) {
	t.Parallel()

	type point struct{ X, Y int }

	t.Run("not nil", func(t *testing.T) {
		t.Parallel()

		var p *point
		var m map[string]int
		assert.Equal(t, []string{"must not be nil"}, messages(func(b *validator.Builder[struct{}]) {
			validator.Value(b, "Field", p).NotNil()
		}))
		assert.Equal(t, []string{"must not be nil"}, messages(func(b *validator.Builder[struct{}]) {
			validator.Value(b, "Field", m).NotNil()
		}))
		assert.Equal(t, []string{"must not be nil"}, messages(func(b *validator.Builder[struct{}]) {
			validator.Value[any](b, "Field", nil).NotNil()
		}))
		assert.Nil(t, messages(func(b *validator.Builder[struct{}]) {
			validator.Value(b, "Field", &point{}).NotNil()
		}))
	})

	t.Run("not zero", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, []string{"must not be empty"}, messages(func(b *validator.Builder[struct{}]) {
			validator.Value(b, "Field", point{}).NotZero()
		}))
		assert.Nil(t, messages(func(b *validator.Builder[struct{}]) {
			validator.Value(b, "Field", point{X: 1}).NotZero()
		}))
	})

	t.Run("equal and must", func(t *testing.T) {
		t.Parallel()

		got := messages(func(b *validator.Builder[struct{}]) {
			validator.Value(b, "Field", point{X: 1}).
				Equal(point{X: 2}).
				Must(func(p point) bool { return p.Y > 0 }).WithMessage("y must be set")
		})
		assert.Equal(t, []string{"must be equal to {2 0}", "y must be set"}, got)
	})
}
