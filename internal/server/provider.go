package server

import (
	"log/slog"
	"strings"

	"github.com/arunreddynareddy/ipl-dashboard-app/internal/config"
	"github.com/arunreddynareddy/ipl-dashboard-app/internal/providers"
	"github.com/arunreddynareddy/ipl-dashboard-app/internal/providers/ccbp"
	"github.com/arunreddynareddy/ipl-dashboard-app/internal/providers/fixture"
)

func selectProvider(cfg config.Config, logger *slog.Logger) providers.TeamMatchesProvider {
	switch strings.ToLower(cfg.Provider) {
	case "ccbp", "":
		return ccbp.NewClient(ccbp.Config{
			BaseURL: cfg.IPL.BaseURL,
			Timeout: cfg.IPL.Timeout,
		})
	case "fixture":
		return fixture.New(cfg.FixtureDelay)
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to fixture", slog.String("provider", cfg.Provider))
		}
		return fixture.New(cfg.FixtureDelay)
	}
}
