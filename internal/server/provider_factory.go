package server

import (
	"log/slog"

	"github.com/arunreddynareddy/ipl-dashboard-app/internal/config"
	"github.com/arunreddynareddy/ipl-dashboard-app/internal/metrics"
	"github.com/arunreddynareddy/ipl-dashboard-app/internal/providers"
)

// providerFactory assembles the provider with shared wrappers (optional spacing + instrumentation).
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providers.TeamMatchesProvider {
	return f.wrap(cfg, selectProvider(cfg, f.logger))
}

func (f providerFactory) wrap(cfg config.Config, base providers.TeamMatchesProvider) providers.TeamMatchesProvider {
	name := normalizeProviderName(cfg.Provider, base)
	next := base
	if cfg.IPL.MinInterval > 0 {
		next = providers.NewRateLimitedProvider(next, cfg.IPL.MinInterval, f.logger)
	}
	return providers.NewInstrumentedProvider(next, f.logger, f.metrics, name)
}
