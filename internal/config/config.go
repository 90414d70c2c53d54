package config

import "github.com/joho/godotenv"

// Config holds runtime configuration for the server.
type Config struct {
	Port         string
	PollInterval Duration
	Provider     string
	TeamID       int
	StatsAPI     StatsAPIConfig
	Detection    DetectionConfig
	Metrics      MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
// A local .env file is honored when present.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:         envOrDefault(envPort, defaultPort),
		PollInterval: durationEnvOrDefault(envPollInterval, defaultPollInterval),
		Provider:     envOrDefault(envProvider, defaultProvider),
		TeamID:       intEnvOrDefault(envTeamID, defaultTeamID),
		StatsAPI:     loadStatsAPI(),
		Detection:    loadDetection(),
		Metrics:      loadMetrics(),
	}
}
