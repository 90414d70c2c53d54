package server

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"mlb-apple-service/internal/config"
	"mlb-apple-service/internal/metrics"
	"mlb-apple-service/internal/providers"
	"mlb-apple-service/internal/providers/fixture"
	"mlb-apple-service/internal/providers/statsapi"
)

// providerFactory assembles the provider with the shared retry wrapper.
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providers.GameProvider {
	base := selectProvider(cfg)
	return providers.NewRetryingProvider(base, f.logger, f.metrics, normalizeProviderName(cfg.Provider, base), 0, 0)
}

func selectProvider(cfg config.Config) providers.GameProvider {
	switch strings.ToLower(cfg.Provider) {
	case "fixture":
		return fixture.New()
	default:
		return statsapi.NewClient(statsapi.Config{
			BaseURL:    cfg.StatsAPI.BaseURL,
			HTTPClient: &http.Client{Timeout: cfg.StatsAPI.Timeout},
		})
	}
}

// normalizeProviderName returns a lower-cased provider name, deriving from instance when not explicitly configured.
// Used across server wiring and provider factory to keep naming consistent in metrics/logs.
func normalizeProviderName(raw string, provider providers.GameProvider) string {
	if raw != "" {
		return strings.ToLower(raw)
	}
	if provider != nil {
		return strings.ToLower(fmt.Sprintf("%T", provider))
	}
	return "provider"
}
