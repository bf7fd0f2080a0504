package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/arunreddynareddy/ipl-dashboard-app/internal/providers"
	"github.com/arunreddynareddy/ipl-dashboard-app/internal/testutil"
)

func TestWriteErrorIncludesRequestID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	logger, _ := testutil.NewBufferLogger()

	req.Header.Set("X-Request-ID", "abc123")

	rr := testutil.ServeRequest(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusTeapot, "boom", logger)
	}), req)

	if rr.Code != http.StatusTeapot {
		t.Fatalf("expected status 418, got %d", rr.Code)
	}
	if got := rr.Header().Get("Content-Type"); got != "application/json" {
		t.Fatalf("expected content type json, got %s", got)
	}
	if !bytes.Contains(rr.Body.Bytes(), []byte("abc123")) {
		t.Fatalf("expected requestId in body, got %s", rr.Body.String())
	}
}

func TestWriteJSONLogsEncodeError(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	rr := testutil.Serve(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, make(chan int), logger)
	}), http.MethodGet, "/encode-error", nil)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status written even on encode error, got %d", rr.Code)
	}
	if buf.Len() == 0 {
		t.Fatalf("expected logger to record encode error")
	}
}

func TestWriteHTMLSetsHeaders(t *testing.T) {
	rr := httptest.NewRecorder()
	writeHTML(rr, http.StatusOK, []byte("<p>hi</p>"), nil)

	if got := rr.Header().Get("Content-Type"); got != "text/html; charset=utf-8" {
		t.Fatalf("unexpected content type %s", got)
	}
	if got := rr.Header().Get("Cache-Control"); got != "no-store" {
		t.Fatalf("expected no-store, got %s", got)
	}
	if rr.Body.String() != "<p>hi</p>" {
		t.Fatalf("unexpected body %q", rr.Body.String())
	}
}

func TestWriteProviderErrorMapsStatuses(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		status     int
		retryAfter string
	}{
		{"rate limited", &providers.RateLimitError{StatusCode: 429, RetryAfter: 4 * time.Second}, http.StatusServiceUnavailable, "4"},
		{"rate limited rounds up", &providers.RateLimitError{StatusCode: 429, RetryAfter: 1500 * time.Millisecond}, http.StatusServiceUnavailable, "2"},
		{"rate limited under a second", &providers.RateLimitError{StatusCode: 429, RetryAfter: 300 * time.Millisecond}, http.StatusServiceUnavailable, "1"},
		{"rate limited without hint", &providers.RateLimitError{StatusCode: 429}, http.StatusServiceUnavailable, ""},
		{"fixture unknown team", providers.ErrTeamNotFound, http.StatusNotFound, ""},
		{"upstream 404", &providers.StatusError{Provider: "ccbp", StatusCode: 404}, http.StatusNotFound, ""},
		{"upstream 500", &providers.StatusError{Provider: "ccbp", StatusCode: 500}, http.StatusBadGateway, ""},
		{"bad payload", &providers.PayloadError{Provider: "ccbp", Reason: "decode"}, http.StatusBadGateway, ""},
		{"transport", errors.New("dial tcp: refused"), http.StatusBadGateway, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/team-matches/RCB", nil)
			writeProviderError(rr, req, tc.err, nil)

			testutil.AssertStatus(t, rr, tc.status)
			if got := rr.Header().Get("Retry-After"); got != tc.retryAfter {
				t.Fatalf("expected Retry-After %q, got %q", tc.retryAfter, got)
			}
		})
	}
}

func TestWriteErrorFallsBackToHeaderRequestID(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "header-id")
	writeError(rr, req, http.StatusTeapot, "boom", logger)
	if !bytes.Contains(rr.Body.Bytes(), []byte("header-id")) {
		t.Fatalf("expected header request id used when context missing")
	}
}
