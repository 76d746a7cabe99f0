package userapi

// Config holds user/auth service client configuration
type Config struct {
	BaseURL string `env:"USERAPI_BASE_URL" envDefault:"https://uptight-jori-randinim-b299a63f.koyeb.app"`
}

// DefaultConfig returns default client configuration, pointing at the hosted
// user service.
func DefaultConfig() Config {
	return Config{
		BaseURL: "https://uptight-jori-randinim-b299a63f.koyeb.app",
	}
}
