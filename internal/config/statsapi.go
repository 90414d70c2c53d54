package config

import "time"

const (
	envStatsBaseURL = "STATSAPI_BASE_URL"
	envStatsTimeout = "STATSAPI_TIMEOUT"

	defaultStatsBaseURL = "https://statsapi.mlb.com"
	defaultStatsTimeout = 10 * time.Second
)

// StatsAPIConfig controls how we talk to the MLB Stats API.
type StatsAPIConfig struct {
	BaseURL string
	Timeout Duration
}

func loadStatsAPI() StatsAPIConfig {
	return StatsAPIConfig{
		BaseURL: envOrDefault(envStatsBaseURL, defaultStatsBaseURL),
		Timeout: durationEnvOrDefault(envStatsTimeout, defaultStatsTimeout),
	}
}
