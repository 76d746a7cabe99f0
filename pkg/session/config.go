package session

import (
	"os"
	"path/filepath"
	"time"
)

// Config holds session cache configuration
type Config struct {
	// TTL is the fixed validity window stamped onto every written record.
	// Reads never extend it.
	TTL time.Duration `env:"SESSION_TTL" envDefault:"1h"`

	// Dir is the directory holding the session file for the default file
	// store. Empty selects $HOME/.countrykit.
	Dir string `env:"SESSION_DIR"`

	// RedisURL, when set, selects the Redis store instead of the file store
	// (format "redis://:password@localhost:6379/0").
	RedisURL string `env:"SESSION_REDIS_URL"`

	RedisRetryAttempts int           `env:"SESSION_REDIS_RETRY_ATTEMPTS" envDefault:"3"`
	RedisRetryInterval time.Duration `env:"SESSION_REDIS_RETRY_INTERVAL" envDefault:"5s"`
}

// DefaultConfig returns default session configuration
func DefaultConfig() Config {
	return Config{
		TTL:                time.Hour,
		RedisRetryAttempts: 3,
		RedisRetryInterval: 5 * time.Second,
	}
}

// StorageDir resolves the directory for the file store, falling back to a
// dot-directory under the user's home.
func (c Config) StorageDir() string {
	if c.Dir != "" {
		return c.Dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".countrykit"
	}
	return filepath.Join(home, ".countrykit")
}
