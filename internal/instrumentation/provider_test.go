package instrumentation

import (
	"context"
	"testing"
	"time"
)

func TestNewProvider_Disabled(t *testing.T) {
	config := Config{
		ServiceName:    "test-service",
		ServiceVersion: "1.0.0",
		Enabled:        false,
	}

	provider, err := NewProvider(context.Background(), config)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if provider == nil {
		t.Fatal("expected provider to be non-nil")
	}

	if provider.Enabled() {
		t.Error("expected provider to be disabled")
	}

	if provider.Metrics() == nil {
		t.Error("expected metrics to be non-nil even when disabled")
	}

	// Shutdown should not error for disabled provider
	if err := provider.Shutdown(context.Background()); err != nil {
		t.Errorf("expected no error on shutdown, got %v", err)
	}
}

func TestNewProvider_PrometheusExporter(t *testing.T) {
	config := Config{
		ServiceName:     "test-service",
		ServiceVersion:  "1.0.0",
		Enabled:         true,
		MetricsExporter: ExporterPrometheus,
		TracingExporter: ExporterNone,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	provider, err := NewProvider(ctx, config)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	defer func() { _ = provider.Shutdown(ctx) }()

	if !provider.Enabled() {
		t.Error("expected provider to be enabled")
	}
	if provider.Metrics() == nil {
		t.Error("expected metrics recorder")
	}
	if provider.Tracer("test") == nil {
		t.Error("expected tracer")
	}
}

func TestNewProvider_UnsupportedMetricsExporter(t *testing.T) {
	config := Config{
		ServiceName:     "test-service",
		Enabled:         true,
		MetricsExporter: "bogus",
		TracingExporter: ExporterNone,
	}

	if _, err := NewProvider(context.Background(), config); err == nil {
		t.Error("expected error for unsupported metrics exporter")
	}
}

func TestDisabledProviderMetricsAreNoOp(t *testing.T) {
	provider, err := NewProvider(context.Background(), Config{Enabled: false})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	// Recording on a no-op recorder must not panic
	m := provider.Metrics()
	ctx := context.Background()
	m.RecordHTTPRequest(ctx, "POST", "/mcp", 200, time.Millisecond)
	m.RecordGoogleAPIOperation(ctx, ServiceDrive, "list", StatusSuccess, time.Millisecond)
	m.RecordOAuthAuth(ctx, OAuthResultSuccess)
	m.RecordToolInvocation(ctx, "search", StatusSuccess, time.Millisecond)
	m.RecordToolInvocationWithAccount(ctx, "search", StatusSuccess, "default", time.Millisecond)
}
