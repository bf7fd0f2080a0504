package metrics

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

func TestSetupDisabledReturnsNoHandler(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{
		Enabled: false,
	})
	if err != nil {
		t.Fatalf("expected no error when disabled, got %v", err)
	}
	if rec == nil {
		t.Fatalf("expected recorder")
	}
	if handler != nil {
		t.Fatalf("expected nil handler when disabled")
	}
	if shutdown == nil {
		t.Fatalf("expected shutdown function")
	}
}

func TestSetupEnabledInitializesRecorderAndHandler(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{
		Enabled:     true,
		ServiceName: "ipl-dashboard",
		// No OTLP endpoint; uses Prometheus exporter only.
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rec == nil {
		t.Fatalf("expected recorder")
	}
	if handler == nil {
		t.Fatalf("expected handler when enabled")
	}
	if shutdown == nil {
		t.Fatalf("expected shutdown function")
	}

	// Exercise otel-backed recorders to ensure no panic.
	rec.RecordHTTPRequest("GET", "/health", 200, time.Millisecond)
	rec.RecordSweepCycle(time.Millisecond, 2)
	rec.RecordProviderAttempt("ccbp", time.Millisecond, nil)
	rec.RecordRateLimit("ccbp", time.Second)
	rec.RecordViewOutcome(OutcomeLoaded)

	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("expected clean shutdown, got %v", err)
	}
}

func TestSetupPropagatesReaderFactoryError(t *testing.T) {
	orig := promReaderFactory
	defer func() { promReaderFactory = orig }()
	promReaderFactory = func() (sdkmetric.Reader, http.Handler, error) {
		return nil, nil, errors.New("no registry")
	}

	if _, _, _, err := Setup(context.Background(), TelemetryConfig{Enabled: true}); err == nil {
		t.Fatalf("expected reader factory error to surface")
	}
}

type failingMeter struct{ metric.Meter }

func (failingMeter) Int64Counter(string, ...metric.Int64CounterOption) (metric.Int64Counter, error) {
	return nil, errors.New("counter unavailable")
}

type failingMeterProvider struct{ metric.MeterProvider }

func (failingMeterProvider) Meter(name string, _ ...metric.MeterOption) metric.Meter {
	return failingMeter{noop.NewMeterProvider().Meter(name)}
}

func TestNewOtelInstrumentsBuildsOnNoopProvider(t *testing.T) {
	inst, err := newOtelInstruments(noop.NewMeterProvider())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inst.requests == nil || inst.sweepLatencyMs == nil || inst.viewOutcomes == nil {
		t.Fatalf("expected all instruments to be created, got %+v", inst)
	}
	inst.recordViewOutcome("loaded")
	inst.recordSweep(time.Millisecond, 2)
}

func TestNewOtelInstrumentsReturnsFirstError(t *testing.T) {
	if _, err := newOtelInstruments(failingMeterProvider{}); err == nil {
		t.Fatalf("expected instrument creation error")
	}
}
