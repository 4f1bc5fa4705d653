package telemetry

import (
	"context"
	"os"
	"testing"
)

func TestTracerWithoutSetup(t *testing.T) {
	_, span := Tracer("test").Start(context.Background(), "noop")
	defer span.End()

	if span.SpanContext().IsValid() {
		t.Error("Expected an invalid span context before Setup")
	}
}

func TestNoopTracer(t *testing.T) {
	_, span := NoopTracer().Start(context.Background(), "noop")
	defer span.End()

	if span.IsRecording() {
		t.Error("Noop tracer should not record spans")
	}
}

func TestConfigureEnv(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")
	t.Setenv("HONEYCOMB_RANDOMMARCH_API_KEY", "secret")
	t.Setenv("HONEYCOMB_RANDOMMARCH_DATASET", "")

	ConfigureEnv("caves")

	if got := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"); got != "https://api.honeycomb.io" {
		t.Errorf("Expected default endpoint, got %q", got)
	}
	want := "x-honeycomb-team=secret,x-honeycomb-dataset=caves"
	if got := os.Getenv("OTEL_EXPORTER_OTLP_HEADERS"); got != want {
		t.Errorf("Expected headers %q, got %q", want, got)
	}
}

func TestConfigureEnvKeepsEndpoint(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "http://localhost:4318")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")
	t.Setenv("HONEYCOMB_RANDOMMARCH_API_KEY", "")

	ConfigureEnv("caves")

	if got := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"); got != "http://localhost:4318" {
		t.Errorf("Endpoint should not be overwritten, got %q", got)
	}
	if got := os.Getenv("OTEL_EXPORTER_OTLP_HEADERS"); got != "" {
		t.Errorf("Headers should stay empty without an API key, got %q", got)
	}
}
