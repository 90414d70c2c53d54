package config

import "time"

const (
	envPort         = "PORT"
	envPollInterval = "POLL_INTERVAL"
	envProvider     = "PROVIDER"
	envTeamID       = "TEAM_ID"
	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort = "5000"
	// The Stats API play feed lags live action by a few seconds; polling
	// faster than this buys nothing.
	defaultPollInterval = 15 * Duration(time.Second)
	defaultProvider     = "statsapi"
	// New York Mets. The apple belongs to them, after all.
	defaultTeamID      = 121
	defaultMetricsPort = "9090"
)
