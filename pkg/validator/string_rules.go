package validator

import (
	"net/mail"
	"net/url"
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"
)

var (
	alphanumericRegex  = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
	alphaRegex         = regexp.MustCompile(`^[a-zA-Z]+$`)
	numericStringRegex = regexp.MustCompile(`^[0-9]+$`)
)

// StringRules validates a string property. Lengths count runes, not bytes.
type StringRules struct {
	chain
	value string
}

func (r *StringRules) NotEmpty() *StringRules {
	r.add(func() bool { return r.value != "" }, "must not be empty")
	return r
}

// NotBlank fails for empty or whitespace-only strings.
func (r *StringRules) NotBlank() *StringRules {
	r.add(func() bool { return strings.TrimSpace(r.value) != "" }, "must not be blank")
	return r
}

func (r *StringRules) Empty() *StringRules {
	r.add(func() bool { return r.value == "" }, "must be empty")
	return r
}

// Length requires min <= length <= max.
func (r *StringRules) Length(min, max int) *StringRules {
	r.add(func() bool {
		n := utf8.RuneCountInString(r.value)
		return n >= min && n <= max
	}, "must be between %d and %d characters long", min, max)
	return r
}

func (r *StringRules) MinLength(min int) *StringRules {
	r.add(func() bool { return utf8.RuneCountInString(r.value) >= min },
		"must be at least %d characters long", min)
	return r
}

func (r *StringRules) MaxLength(max int) *StringRules {
	r.add(func() bool { return utf8.RuneCountInString(r.value) <= max },
		"must be at most %d characters long", max)
	return r
}

func (r *StringRules) ExactLength(n int) *StringRules {
	r.add(func() bool { return utf8.RuneCountInString(r.value) == n },
		"must be exactly %d characters long", n)
	return r
}

// Email accepts RFC 5322 addresses with a dotted domain, e.g. "ann@example.com".
func (r *StringRules) Email() *StringRules {
	r.add(func() bool { return isEmail(r.value) }, "must be a valid email address")
	return r
}

// URL requires an absolute URL with scheme and host.
func (r *StringRules) URL() *StringRules {
	r.add(func() bool {
		if strings.TrimSpace(r.value) == "" {
			return false
		}
		u, err := url.ParseRequestURI(r.value)
		return err == nil && u.Scheme != "" && u.Host != ""
	}, "must be a valid URL")
	return r
}

func (r *StringRules) Matches(re *regexp.Regexp) *StringRules {
	if re == nil {
		panic(ErrNilPredicate)
	}
	r.add(func() bool { return re.MatchString(r.value) }, "must match pattern %s", re.String())
	return r
}

func (r *StringRules) Alpha() *StringRules {
	r.add(func() bool { return alphaRegex.MatchString(r.value) }, "must contain only letters")
	return r
}

func (r *StringRules) Alphanumeric() *StringRules {
	r.add(func() bool { return alphanumericRegex.MatchString(r.value) }, "must contain only letters and digits")
	return r
}

func (r *StringRules) Numeric() *StringRules {
	r.add(func() bool { return numericStringRegex.MatchString(r.value) }, "must contain only digits")
	return r
}

func (r *StringRules) OneOf(options ...string) *StringRules {
	r.add(func() bool { return slices.Contains(options, r.value) },
		"must be one of: %s", strings.Join(options, ", "))
	return r
}

func (r *StringRules) Equal(other string) *StringRules {
	r.add(func() bool { return r.value == other }, "must be equal to %q", other)
	return r
}

func (r *StringRules) NotEqual(other string) *StringRules {
	r.add(func() bool { return r.value != other }, "must not be equal to %q", other)
	return r
}

// Must registers a custom predicate. A panic inside pred is not recovered.
func (r *StringRules) Must(pred func(string) bool) *StringRules {
	if pred == nil {
		panic(ErrNilPredicate)
	}
	r.add(func() bool { return pred(r.value) }, invalidMessage)
	return r
}

// When skips the previous rule unless pred returns true at Build time.
func (r *StringRules) When(pred func() bool) *StringRules {
	r.when(pred, true)
	return r
}

// Unless skips the previous rule when pred returns true at Build time.
func (r *StringRules) Unless(pred func() bool) *StringRules {
	r.when(pred, false)
	return r
}

// WithMessage replaces the previous rule's message.
func (r *StringRules) WithMessage(text string) *StringRules {
	r.withMessage(text)
	return r
}

func isEmail(value string) bool {
	if strings.TrimSpace(value) == "" {
		return false
	}

	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value {
		return false
	}

	local, domain, ok := strings.Cut(addr.Address, "@")
	if !ok || local == "" {
		return false
	}

	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	for part := range strings.SplitSeq(domain, ".") {
		if part == "" {
			return false
		}
	}
	return true
}
