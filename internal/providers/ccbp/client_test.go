package ccbp

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/arunreddynareddy/ipl-dashboard-app/internal/providers"
)

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

const rcbPayload = `{
	"team_banner_url": "https://assets.ccbp.in/rcb.png",
	"latest_match_details": {
		"umpires": "Nitin Menon, Paul Reiffel",
		"result": "Royal Challengers Bangalore Won by 6 wickets",
		"man_of_the_match": "Glenn Maxwell",
		"id": "1254077",
		"date": "2021-04-09",
		"venue": "At MA Chidambaram Stadium, Chennai",
		"competing_team": "Mumbai Indians",
		"competing_team_logo": "https://assets.ccbp.in/mi.png",
		"first_innings": "Mumbai Indians",
		"second_innings": "Royal Challengers Bangalore",
		"match_status": "Won"
	},
	"recent_matches": [
		{"umpires": ["A", "B"], "id": "m1", "competing_team": "KKR", "match_status": "Won"},
		{"umpires": "C", "id": "m2", "competing_team": "CSK", "match_status": "Lost"},
		{"id": "m3", "competing_team": "MI", "match_status": "Won"},
		{"id": "m4", "competing_team": "DC", "match_status": "Drawn"}
	]
}`

func newTestClient(rt roundTripperFunc) *Client {
	return NewClient(Config{
		BaseURL:    "https://example.test/ipl",
		HTTPClient: &http.Client{Transport: rt},
	})
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
}

func TestFetchTeamMatchesHitsTeamPathAndMapsResponse(t *testing.T) {
	calls := 0
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		calls++
		if req.Method != http.MethodGet {
			t.Fatalf("expected GET, got %s", req.Method)
		}
		if got := req.URL.String(); got != "https://example.test/ipl/RCB" {
			t.Fatalf("unexpected url %s", got)
		}
		return jsonResponse(http.StatusOK, rcbPayload), nil
	})

	view, err := client.FetchTeamMatches(context.Background(), "RCB")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected exactly one request, got %d", calls)
	}
	if view.TeamBannerURL != "https://assets.ccbp.in/rcb.png" {
		t.Fatalf("unexpected banner %q", view.TeamBannerURL)
	}
	latest := view.LatestMatch
	if latest.ID != "1254077" || latest.ManOfTheMatch != "Glenn Maxwell" || latest.MatchStatus != "Won" {
		t.Fatalf("unexpected latest match %+v", latest)
	}
	if len(latest.Umpires) != 2 || latest.Umpires[0] != "Nitin Menon" || latest.Umpires[1] != "Paul Reiffel" {
		t.Fatalf("unexpected umpires %v", latest.Umpires)
	}
	if len(view.RecentMatches) != 4 {
		t.Fatalf("expected 4 recent matches, got %d", len(view.RecentMatches))
	}
	for i, want := range []string{"m1", "m2", "m3", "m4"} {
		if view.RecentMatches[i].ID != want {
			t.Fatalf("expected match %d to be %s, got %s", i, want, view.RecentMatches[i].ID)
		}
	}
	if got := view.RecentMatches[2].Umpires; got == nil || len(got) != 0 {
		t.Fatalf("expected empty umpire list for missing field, got %#v", got)
	}
}

func TestFetchTeamMatchesEscapesTeamID(t *testing.T) {
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		if got := req.URL.EscapedPath(); got != "/ipl/a%2Fb" {
			t.Fatalf("expected escaped team id, got %s", got)
		}
		return jsonResponse(http.StatusOK, rcbPayload), nil
	})
	if _, err := client.FetchTeamMatches(context.Background(), "a/b"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestFetchTeamMatchesReturnsStatusError(t *testing.T) {
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusNotFound, "  not here \n"), nil
	})

	_, err := client.FetchTeamMatches(context.Background(), "XYZ")
	var statusErr *providers.StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if statusErr.StatusCode != http.StatusNotFound || statusErr.Body != "not here" || statusErr.Provider != providerName {
		t.Fatalf("unexpected status error %+v", statusErr)
	}
}

func TestFetchTeamMatchesReturnsRateLimitError(t *testing.T) {
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		resp := jsonResponse(http.StatusTooManyRequests, "")
		resp.Header.Set("Retry-After", "7")
		resp.Header.Set("X-RateLimit-Remaining", "0")
		return resp, nil
	})

	_, err := client.FetchTeamMatches(context.Background(), "MI")
	rlErr, ok := providers.AsRateLimitError(err)
	if !ok {
		t.Fatalf("expected RateLimitError, got %v", err)
	}
	if rlErr.RetryAfter != 7*time.Second || rlErr.Remaining != "0" {
		t.Fatalf("unexpected rate limit error %+v", rlErr)
	}
}

func TestFetchTeamMatchesWrapsTransportError(t *testing.T) {
	boom := errors.New("dial failed")
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		return nil, boom
	})

	_, err := client.FetchTeamMatches(context.Background(), "CSK")
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped transport error, got %v", err)
	}
}

func TestFetchTeamMatchesRejectsInvalidPayloads(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"malformed json", `{"team_banner_url": `},
		{"missing banner", `{"latest_match_details": {"id": "1"}, "recent_matches": []}`},
		{"missing latest", `{"team_banner_url": "x", "recent_matches": []}`},
		{"missing recent", `{"team_banner_url": "x", "latest_match_details": {"id": "1"}}`},
		{"match without id", `{"team_banner_url": "x", "latest_match_details": {"id": "1"}, "recent_matches": [{"venue": "v"}]}`},
		{"duplicate ids", `{"team_banner_url": "x", "latest_match_details": {"id": "1"}, "recent_matches": [{"id": "a"}, {"id": "a"}]}`},
		{"bad umpires", `{"team_banner_url": "x", "latest_match_details": {"id": "1", "umpires": 5}, "recent_matches": []}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client := newTestClient(func(req *http.Request) (*http.Response, error) {
				return jsonResponse(http.StatusOK, tc.body), nil
			})
			_, err := client.FetchTeamMatches(context.Background(), "RCB")
			var payloadErr *providers.PayloadError
			if !errors.As(err, &payloadErr) {
				t.Fatalf("expected PayloadError, got %v", err)
			}
		})
	}
}

func TestFetchTeamMatchesAcceptsEmptyRecentList(t *testing.T) {
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{"team_banner_url": "x", "latest_match_details": {"id": "1"}, "recent_matches": []}`), nil
	})
	view, err := client.FetchTeamMatches(context.Background(), "DC")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if view.RecentMatches == nil || len(view.RecentMatches) != 0 {
		t.Fatalf("expected empty non-nil recent matches, got %#v", view.RecentMatches)
	}
}

func TestFetchTeamMatchesHonorsCanceledContext(t *testing.T) {
	client := NewClient(Config{BaseURL: "https://example.test/ipl/"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := client.FetchTeamMatches(ctx, "RR"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context canceled, got %v", err)
	}
}
