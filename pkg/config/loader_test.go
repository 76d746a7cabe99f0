package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/countrykit/pkg/config"
)

type gatewayTestConfig struct {
	BaseURL string        `env:"TEST_COUNTRIES_BASE_URL" envDefault:"https://restcountries.com/v3.1"`
	Timeout time.Duration `env:"TEST_COUNTRIES_TIMEOUT" envDefault:"30s"`
}

type sessionTestConfig struct {
	TTL time.Duration `env:"TEST_SESSION_TTL" envDefault:"1h"`
}

func TestLoadDefaults(t *testing.T) {
	var cfg gatewayTestConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "https://restcountries.com/v3.1", cfg.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("TEST_SESSION_TTL", "90m")

	var cfg sessionTestConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, 90*time.Minute, cfg.TTL)
}

func TestLoadCachesPerType(t *testing.T) {
	var first gatewayTestConfig
	require.NoError(t, config.Load(&first))

	// Changing the environment after the first load must not affect the
	// cached value.
	t.Setenv("TEST_COUNTRIES_BASE_URL", "https://example.com")

	var second gatewayTestConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, first.BaseURL, second.BaseURL)
}

func TestLoadNilPointer(t *testing.T) {
	var cfg *gatewayTestConfig
	err := config.Load(cfg)
	assert.ErrorIs(t, err, config.ErrNilPointer)
}
