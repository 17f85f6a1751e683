package otel_test

import (
	"context"
	"testing"

	"github.com/nrdn26/portfolio/internal/platform/otel"
)

func TestSetupNoopWhenEndpointEmpty(t *testing.T) {
	t.Parallel()

	shutdown, err := otel.Setup(context.Background(), "site", otel.Config{Enabled: true, Ratio: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetupNoopWhenDisabled(t *testing.T) {
	t.Parallel()

	shutdown, err := otel.Setup(context.Background(), "site", otel.Config{Endpoint: "http://localhost:4318", Ratio: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := shutdown(ctx); err != nil {
		t.Fatalf("noop shutdown should not error: %v", err)
	}
}

func TestSetupRejectsRatioOutOfRange(t *testing.T) {
	t.Parallel()

	_, err := otel.Setup(context.Background(), "site", otel.Config{Endpoint: "http://192.0.2.1:4318", Enabled: true, Ratio: 2})
	if err == nil {
		t.Fatal("expected ratio error")
	}
}

func TestSetupCreatesProviderWhenEndpointSet(t *testing.T) {
	// Non-routable address: nothing is exported before shutdown.
	shutdown, err := otel.Setup(context.Background(), "export", otel.Config{Endpoint: "http://192.0.2.1:4318", Enabled: true, Ratio: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}
