// Package observability sets up OpenTelemetry tracing and metrics for
// seqkit binaries.
//
// Providers are always created so spans and measurements can be recorded;
// OTLP HTTP exporters are attached only when telemetry is enabled and an
// endpoint is configured.
//
// # Usage
//
//	providers, err := observability.Init(ctx, cfg)
//	defer providers.Shutdown(ctx)
//	inst, err := observability.NewInstruments(providers.Meter(observability.ScopeName))
package observability
