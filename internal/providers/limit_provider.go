package providers

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/arunreddynareddy/ipl-dashboard-app/internal/domain/matches"
	"github.com/arunreddynareddy/ipl-dashboard-app/internal/logging"
)

// rateLimitedProvider wraps a TeamMatchesProvider and spaces upstream calls by a minimum interval.
type rateLimitedProvider struct {
	next     TeamMatchesProvider
	interval time.Duration
	logger   *slog.Logger
	now      func() time.Time

	mu     sync.Mutex
	nextAt time.Time // earliest time the next call may start
}

// NewRateLimitedProvider returns a provider that waits until interval has elapsed since the
// previously admitted call. The first call goes through immediately.
func NewRateLimitedProvider(next TeamMatchesProvider, interval time.Duration, logger *slog.Logger) TeamMatchesProvider {
	if interval <= 0 {
		interval = time.Second
	}
	return &rateLimitedProvider{
		next:     next,
		interval: interval,
		logger:   logger,
		now:      time.Now,
	}
}

func (p *rateLimitedProvider) FetchTeamMatches(ctx context.Context, teamID string) (matches.TeamView, error) {
	if p == nil || p.next == nil {
		if p != nil {
			logWithProvider(ctx, p.logger, slog.LevelWarn, "rate-limited", "provider unavailable")
		}
		return matches.TeamView{}, ErrProviderUnavailable
	}

	if wait := p.reserve(); wait > 0 {
		timer := time.NewTimer(wait)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			logWithProvider(ctx, p.logger, slog.LevelWarn, "rate-limited", "rate-limited fetch canceled",
				slog.String(logging.FieldTeamID, teamID))
			return matches.TeamView{}, ctx.Err()
		case <-timer.C:
		}
	}
	logWithProvider(ctx, p.logger, slog.LevelDebug, "rate-limited", "rate-limited provider fetch",
		slog.String(logging.FieldTeamID, teamID))
	return p.next.FetchTeamMatches(ctx, teamID)
}

// reserve claims the next free slot and returns how long the caller must wait for it.
func (p *rateLimitedProvider) reserve() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := p.now()
	slot := p.nextAt
	if slot.Before(now) {
		slot = now
	}
	p.nextAt = slot.Add(p.interval)
	return slot.Sub(now)
}
