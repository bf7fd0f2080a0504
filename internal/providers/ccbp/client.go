package ccbp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/arunreddynareddy/ipl-dashboard-app/internal/domain/matches"
	"github.com/arunreddynareddy/ipl-dashboard-app/internal/providers"
)

// Config controls how the ccbp client reaches the upstream IPL API.
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client fetches one team's matches from the ccbp IPL API and maps them to domain models.
type Client struct {
	baseURL    string
	httpClient httpDoer
	validate   *validator.Validate
	now        func() time.Time
}

// NewClient constructs a ccbp client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
		validate:   validator.New(),
		now:        time.Now,
	}
}

// FetchTeamMatches issues a single GET <base-url><team-id> and never retries.
func (c *Client) FetchTeamMatches(ctx context.Context, teamID string) (matches.TeamView, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, teamURL(c.baseURL, teamID), nil)
	if err != nil {
		return matches.TeamView{}, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return matches.TeamView{}, fmt.Errorf("%s: request team %q: %w", providerName, teamID, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return matches.TeamView{}, &providers.RateLimitError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After"), c.now()),
			Remaining:  resp.Header.Get("X-RateLimit-Remaining"),
		}
	case resp.StatusCode != http.StatusOK:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return matches.TeamView{}, &providers.StatusError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	var payload teamMatchesResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return matches.TeamView{}, &providers.PayloadError{Provider: providerName, Reason: "decode", Err: err}
	}
	if err := c.validate.Struct(payload); err != nil {
		return matches.TeamView{}, &providers.PayloadError{Provider: providerName, Reason: describeValidation(err), Err: err}
	}

	return mapTeamView(payload), nil
}

func describeValidation(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return "validation"
	}
	first := fieldErrs[0]
	return fmt.Sprintf("field %s failed %q", first.Namespace(), first.Tag())
}
