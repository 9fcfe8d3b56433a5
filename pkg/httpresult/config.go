package httpresult

import "github.com/dmitrymomot/outcome/pkg/config"

const defaultMaxBodyBytes = 10 << 20

// Config holds the tunables shared by every reader.
type Config struct {
	MaxBodyBytes int64 `env:"MAX_BODY_BYTES" envDefault:"10485760"` // MaxBodyBytes caps how much of a body is read.
	StrictJSON   bool  `env:"STRICT_JSON" envDefault:"false"`       // StrictJSON rejects unknown JSON object fields.
}

// DefaultConfig returns the configuration used when none is given.
func DefaultConfig() Config {
	return Config{MaxBodyBytes: defaultMaxBodyBytes}
}

// LoadConfig reads Config from OUTCOME_HTTP_* environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg, config.WithPrefix("OUTCOME_HTTP_")); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
