package httpresult

import (
	"log/slog"

	"github.com/dmitrymomot/outcome/pkg/logger"
)

// Option configures a single conversion.
type Option func(*options)

type options struct {
	maxBody    int64
	strictJSON bool
	logger     *slog.Logger
}

func newOptions(opts []Option) *options {
	cfg := DefaultConfig()
	o := &options{
		maxBody:    cfg.MaxBodyBytes,
		strictJSON: cfg.StrictJSON,
	}
	for _, opt := range opts {
		opt(o)
	}
	o.logger = logger.OrDefault(o.logger)
	return o
}

// WithConfig applies cfg. Zero values keep the defaults.
func WithConfig(cfg Config) Option {
	return func(o *options) {
		if cfg.MaxBodyBytes > 0 {
			o.maxBody = cfg.MaxBodyBytes
		}
		o.strictJSON = cfg.StrictJSON
	}
}

// WithMaxBodySize caps the number of body bytes read. Non-positive values are ignored.
func WithMaxBodySize(n int64) Option {
	return func(o *options) {
		if n > 0 {
			o.maxBody = n
		}
	}
}

// WithStrictJSON rejects JSON bodies with fields unknown to the target type.
func WithStrictJSON() Option {
	return func(o *options) { o.strictJSON = true }
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}
