// Package config loads typed configuration structs from environment
// variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11: optional
// .env files are loaded into the process environment first, then the
// environment is parsed into any struct annotated with `env` tags. Each
// configuration type is parsed once and cached for the lifetime of the
// process; ResetCache clears the cache, which is mostly useful in tests.
//
// # Usage
//
//	type ClientConfig struct {
//	    MaxBodyBytes int64 `env:"MAX_BODY_BYTES" envDefault:"10485760"`
//	}
//
//	var cfg ClientConfig
//	if err := config.Load(&cfg, config.WithPrefix("OUTCOME_HTTP_")); err != nil {
//	    return err
//	}
//
// # Error Handling
//
// Failures wrap one of the sentinel errors ErrParsingConfig, ErrNilPointer or
// ErrLoadingEnvFile and can be matched with errors.Is.
package config
