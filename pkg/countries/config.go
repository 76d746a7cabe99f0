package countries

import "time"

// Config holds country-data gateway configuration
type Config struct {
	BaseURL string        `env:"COUNTRIES_BASE_URL" envDefault:"https://restcountries.com/v3.1"`
	Timeout time.Duration `env:"COUNTRIES_TIMEOUT" envDefault:"30s"`
}

// DefaultConfig returns default gateway configuration
func DefaultConfig() Config {
	return Config{
		BaseURL: "https://restcountries.com/v3.1",
		Timeout: 30 * time.Second,
	}
}
