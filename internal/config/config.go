package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds runtime configuration for the server.
type Config struct {
	Port         string
	Provider     string
	FixtureDelay Duration // artificial latency for the fixture provider
	IPL          IPLConfig
	Views        ViewsConfig
	CORS         CORSConfig
	Metrics      MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
// A dotenv file (DOTENV_FILE, default .env) is applied first when present;
// variables already set in the environment win.
func Load() Config {
	loadDotEnv()
	return Config{
		Port:         envOrDefault(envPort, defaultPort),
		Provider:     envOrDefault(envProvider, defaultProvider),
		FixtureDelay: durationEnvOrDefault(envFixtureDelay, 0),
		IPL:          loadIPL(),
		Views:        loadViews(),
		CORS:         loadCORS(),
		Metrics:      loadMetrics(),
	}
}

func loadDotEnv() {
	path := envOrDefault(envDotEnvFile, defaultDotEnvFile)
	if _, err := os.Stat(path); err != nil {
		return
	}
	_ = godotenv.Load(path)
}
