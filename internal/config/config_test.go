package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv(envDotEnvFile, filepath.Join(t.TempDir(), "missing.env"))
	cfg := Load()

	if cfg.Port != defaultPort {
		t.Fatalf("expected default port %s, got %s", defaultPort, cfg.Port)
	}
	if cfg.Provider != defaultProvider {
		t.Fatalf("expected default provider %s, got %s", defaultProvider, cfg.Provider)
	}
	if cfg.IPL.BaseURL != defaultIPLBaseURL {
		t.Fatalf("expected default ipl base url %s, got %s", defaultIPLBaseURL, cfg.IPL.BaseURL)
	}
	if cfg.IPL.Timeout != defaultIPLTimeout {
		t.Fatalf("expected default timeout %s, got %s", defaultIPLTimeout, cfg.IPL.Timeout)
	}
	if cfg.IPL.MinInterval != 0 {
		t.Fatalf("expected limiter disabled by default, got %s", cfg.IPL.MinInterval)
	}
	if cfg.Views.RenderWait != defaultRenderWait || cfg.Views.TTL != defaultViewTTL || cfg.Views.SweepInterval != defaultSweepPeriod {
		t.Fatalf("unexpected view defaults %+v", cfg.Views)
	}
	if !reflect.DeepEqual(cfg.CORS.AllowedOrigins, []string{"*"}) {
		t.Fatalf("expected wildcard cors origin, got %v", cfg.CORS.AllowedOrigins)
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.ServiceName != defaultServiceName {
		t.Fatalf("unexpected metrics defaults %+v", cfg.Metrics)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv(envDotEnvFile, filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv(envPort, "5000")
	t.Setenv(envProvider, "fixture")
	t.Setenv(envIPLBaseURL, "http://example.com/ipl")
	t.Setenv(envIPLTimeout, "3s")
	t.Setenv(envIPLMinInterval, "250ms")
	t.Setenv(envRenderWait, "500ms")
	t.Setenv(envViewTTL, "2m")
	t.Setenv(envSweepInterval, "5s")
	t.Setenv(envCORSOrigins, "https://a.example, https://b.example ,")
	t.Setenv(envMetricsOn, "false")
	t.Setenv(envFixtureDelay, "1s")

	cfg := Load()

	if cfg.Port != "5000" {
		t.Fatalf("expected port 5000, got %s", cfg.Port)
	}
	if cfg.Provider != "fixture" {
		t.Fatalf("expected provider fixture, got %s", cfg.Provider)
	}
	if cfg.IPL.BaseURL != "http://example.com/ipl" {
		t.Fatalf("expected ipl base url override, got %s", cfg.IPL.BaseURL)
	}
	if cfg.IPL.Timeout != 3*time.Second || cfg.IPL.MinInterval != 250*time.Millisecond {
		t.Fatalf("unexpected ipl durations %+v", cfg.IPL)
	}
	if cfg.Views.RenderWait != 500*time.Millisecond || cfg.Views.TTL != 2*time.Minute || cfg.Views.SweepInterval != 5*time.Second {
		t.Fatalf("unexpected view overrides %+v", cfg.Views)
	}
	if !reflect.DeepEqual(cfg.CORS.AllowedOrigins, []string{"https://a.example", "https://b.example"}) {
		t.Fatalf("unexpected cors origins %v", cfg.CORS.AllowedOrigins)
	}
	if cfg.Metrics.Enabled {
		t.Fatalf("expected metrics disabled")
	}
	if cfg.FixtureDelay != time.Second {
		t.Fatalf("expected fixture delay override, got %s", cfg.FixtureDelay)
	}
}

func TestLoadInvalidDurationFallsBack(t *testing.T) {
	t.Setenv(envRenderWait, "not-a-duration")
	t.Setenv(envViewTTL, "0s")

	cfg := Load()

	if cfg.Views.RenderWait != defaultRenderWait {
		t.Fatalf("expected default render wait on invalid value, got %s", cfg.Views.RenderWait)
	}
	if cfg.Views.TTL != defaultViewTTL {
		t.Fatalf("expected default ttl on non-positive value, got %s", cfg.Views.TTL)
	}
}

func TestLoadReadsDotEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte("IPL_TEST_ONLY_KEY=from-file\n"), 0o600); err != nil {
		t.Fatalf("write dotenv: %v", err)
	}
	t.Setenv(envDotEnvFile, path)
	t.Cleanup(func() { os.Unsetenv("IPL_TEST_ONLY_KEY") })

	Load()

	if got := os.Getenv("IPL_TEST_ONLY_KEY"); got != "from-file" {
		t.Fatalf("expected dotenv value to be applied, got %q", got)
	}
}
