package logger

import (
	"fmt"
	"log/slog"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// FailureType records a failure category under the key "failure_type".
// Accepts any fmt.Stringer so the result package does not leak into here.
func FailureType(ft fmt.Stringer) slog.Attr {
	if ft == nil {
		return slog.Attr{}
	}
	return slog.String("failure_type", ft.String())
}

// Subject records the entity a failure refers to under the key "subject".
// Subjects may carry identifiers, so they belong in logs and never on the wire.
func Subject(subject string) slog.Attr {
	if subject == "" {
		return slog.Attr{}
	}
	return slog.String("subject", subject)
}

// StatusCode records an HTTP status code under the key "status_code".
func StatusCode(code int) slog.Attr {
	return slog.Int("status_code", code)
}

// ContentType records a media type under the key "content_type".
func ContentType(mediaType string) slog.Attr {
	if mediaType == "" {
		return slog.Attr{}
	}
	return slog.String("content_type", mediaType)
}

// Property records a validated property name under the key "property".
func Property(name string) slog.Attr {
	return slog.String("property", name)
}

// Count records a number of items under the key "count".
func Count(n int) slog.Attr {
	return slog.Int("count", n)
}
