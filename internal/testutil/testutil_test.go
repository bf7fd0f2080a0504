package testutil

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/arunreddynareddy/ipl-dashboard-app/internal/domain/matches"
	"github.com/arunreddynareddy/ipl-dashboard-app/internal/providers"
	"github.com/arunreddynareddy/ipl-dashboard-app/internal/sweeper"
)

func TestFixturesHelper(t *testing.T) {
	m := SampleMatch("id-1", matches.StatusLost)
	if m.ID != "id-1" || m.MatchStatus != matches.StatusLost || len(m.Umpires) != 2 {
		t.Fatalf("unexpected match fixture %+v", m)
	}
	view := SampleTeamView()
	if len(view.RecentMatches) != 4 || view.TeamBannerURL == "" {
		t.Fatalf("unexpected team view fixture %+v", view)
	}
	if got := matches.CountOutcomes(view.RecentMatches); got != (matches.OutcomeCounts{Won: 2, Lost: 1, Drawn: 1}) {
		t.Fatalf("unexpected fixture outcomes %+v", got)
	}
}

func TestServeHelpers(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	rr := Serve(handler, http.MethodPost, "/test", strings.NewReader("{}"))
	AssertStatus(t, rr, http.StatusCreated)
	var body map[string]bool
	DecodeJSON(t, rr, &body)
	if !body["ok"] {
		t.Fatalf("expected ok=true")
	}

	req := httptest.NewRequest(http.MethodGet, "/req", nil)
	rr2 := ServeRequest(handler, req)
	AssertStatus(t, rr2, http.StatusCreated)
}

func TestServerStubs(t *testing.T) {
	s := &StubSweeper{Err: errors.New("stop"), StatusVal: sweeper.Status{Running: true}}
	s.Start(context.Background())
	if err := s.Stop(context.Background()); !errors.Is(err, s.Err) {
		t.Fatalf("expected stop error")
	}
	if start, stop := s.Calls(); start != 1 || stop != 1 {
		t.Fatalf("unexpected call counts start=%d stop=%d", start, stop)
	}
	if !s.Status().IsReady() {
		t.Fatalf("expected status passthrough")
	}

	sh := &StubHTTPServer{ListenErr: errors.New("boom"), ShutdownErr: errors.New("down")}
	sh.HandlerVal = http.NewServeMux()
	_ = sh.ListenAndServe()
	_ = sh.Shutdown(context.Background())
	_ = sh.Handler()
	_ = sh.Addr()
	if sh.ListenCalls != 1 || sh.ShutdownCalls != 1 {
		t.Fatalf("expected listen/shutdown calls, got %+v", sh)
	}

	b := &BlockingHTTPServer{Unblock: make(chan struct{}), HandlerVal: http.NewServeMux()}
	if err := b.ListenAndServe(); err != nil {
		t.Fatalf("expected nil listen error for blocking server")
	}
	done := make(chan error, 1)
	go func() { done <- b.Shutdown(context.Background()) }()
	close(b.Unblock)
	if err := <-done; err != nil {
		t.Fatalf("expected nil shutdown err, got %v", err)
	}

	e := &ErrHTTPServer{}
	if err := e.ListenAndServe(); err == nil {
		t.Fatalf("expected listen error from ErrHTTPServer")
	}
	_ = e.Shutdown(context.Background())
	if e.Addr() == "" || e.ShutdownCalls != 1 {
		t.Fatalf("unexpected ErrHTTPServer state %+v", e)
	}

	c := &CloseableHTTPServer{}
	if err := c.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		t.Fatalf("expected ErrServerClosed, got %v", err)
	}
	_ = c.Shutdown(context.Background())
	if c.ShutdownCalls != 1 {
		t.Fatalf("expected shutdown call for CloseableHTTPServer")
	}
}

func TestLoggerAndMetricsHelpers(t *testing.T) {
	logger, buf := NewBufferLogger()
	logger.Info("hello", "k", "v")
	if buf.Len() == 0 {
		t.Fatalf("expected buffered log output")
	}
	rec, shutdown := NewRecorderWithShutdown()
	if rec == nil || shutdown == nil {
		t.Fatalf("expected recorder and shutdown")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("expected nil shutdown error, got %v", err)
	}
}

func TestProviderHelpers(t *testing.T) {
	ctx := context.Background()

	good := GoodProvider{View: SampleTeamView()}
	if got, _ := good.FetchTeamMatches(ctx, "RCB"); len(got.RecentMatches) != 4 {
		t.Fatalf("expected view from GoodProvider")
	}

	errProv := ErrProvider{Err: errors.New("boom")}
	if _, err := errProv.FetchTeamMatches(ctx, "RCB"); !errors.Is(err, errProv.Err) {
		t.Fatalf("expected error passthrough")
	}

	if _, err := (UnavailableProvider{}).FetchTeamMatches(ctx, "RCB"); !errors.Is(err, providers.ErrProviderUnavailable) {
		t.Fatalf("expected provider unavailable")
	}

	gated := NewGatedProvider(SampleTeamView())
	close(gated.Release)
	if _, err := gated.FetchTeamMatches(ctx, "RCB"); err != nil {
		t.Fatalf("expected released gate to succeed, got %v", err)
	}

	blocked := NewGatedProvider(SampleTeamView())
	cctx, cancel := context.WithTimeout(ctx, 10*time.Millisecond)
	defer cancel()
	if _, err := blocked.FetchTeamMatches(cctx, "RCB"); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
	if blocked.Calls.Load() != 1 || blocked.Canceled.Load() != 1 {
		t.Fatalf("unexpected gated counters calls=%d canceled=%d", blocked.Calls.Load(), blocked.Canceled.Load())
	}
}
