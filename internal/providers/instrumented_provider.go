package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/arunreddynareddy/ipl-dashboard-app/internal/domain/matches"
	"github.com/arunreddynareddy/ipl-dashboard-app/internal/logging"
	"github.com/arunreddynareddy/ipl-dashboard-app/internal/metrics"
)

// instrumentedProvider records latency, errors and rate-limit hits for each upstream call.
// It never retries: a failed attempt is returned to the caller as-is.
type instrumentedProvider struct {
	inner        TeamMatchesProvider
	logger       *slog.Logger
	metrics      *metrics.Recorder
	providerName string
	now          func() time.Time
}

// NewInstrumentedProvider wraps inner with metrics and failure logging.
func NewInstrumentedProvider(inner TeamMatchesProvider, logger *slog.Logger, recorder *metrics.Recorder, providerName string) TeamMatchesProvider {
	if providerName == "" {
		providerName = "provider"
	}
	return &instrumentedProvider{
		inner:        inner,
		logger:       logger,
		metrics:      recorder,
		providerName: providerName,
		now:          time.Now,
	}
}

func (p *instrumentedProvider) FetchTeamMatches(ctx context.Context, teamID string) (matches.TeamView, error) {
	if p.inner == nil {
		return matches.TeamView{}, ErrProviderUnavailable
	}

	start := p.now()
	view, err := p.inner.FetchTeamMatches(ctx, teamID)
	elapsed := p.now().Sub(start)
	p.metrics.RecordProviderAttempt(p.providerName, elapsed, err)

	if err != nil {
		if rlErr, ok := AsRateLimitError(err); ok {
			p.metrics.RecordRateLimit(p.providerName, rlErr.RetryAfter)
		}
		logWithProvider(ctx, p.logger, slog.LevelWarn, p.providerName, "provider fetch failed",
			slog.String(logging.FieldTeamID, teamID),
			slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
			slog.Any("error", err),
		)
		return matches.TeamView{}, err
	}

	logWithProvider(ctx, p.logger, slog.LevelInfo, p.providerName, "provider fetched team matches",
		slog.String(logging.FieldTeamID, teamID),
		slog.Int(logging.FieldCount, len(view.RecentMatches)),
		slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
	)
	return view, nil
}

// Close releases resources held by the wrapped provider when it supports closing.
func (p *instrumentedProvider) Close() {
	if c, ok := p.inner.(interface{ Close() }); ok {
		c.Close()
	}
}
