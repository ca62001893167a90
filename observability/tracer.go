package observability

import (
	"context"
	stderrors "errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/seqkit/logger"
)

// ScopeName is the instrumentation scope for seqkit tracers and meters.
const ScopeName = "github.com/kbukum/seqkit"

// Providers bundles the tracer and meter providers created by Init.
type Providers struct {
	tracer *sdktrace.TracerProvider
	meter  *sdkmetric.MeterProvider
}

// Option customizes Init.
type Option func(*options)

type options struct {
	spanExporters []sdktrace.SpanExporter
	readers       []sdkmetric.Reader
	global        bool
}

// WithSpanExporter adds a synchronous span exporter (e.g. an in-memory exporter in tests).
func WithSpanExporter(exp sdktrace.SpanExporter) Option {
	return func(o *options) { o.spanExporters = append(o.spanExporters, exp) }
}

// WithMetricReader adds a metric reader (e.g. a ManualReader in tests).
func WithMetricReader(r sdkmetric.Reader) Option {
	return func(o *options) { o.readers = append(o.readers, r) }
}

// WithoutGlobal keeps Init from installing the providers as otel globals.
func WithoutGlobal() Option {
	return func(o *options) { o.global = false }
}

// Init builds tracer and meter providers for cfg. When cfg.Exporting() is
// true, OTLP HTTP exporters are attached. Call Shutdown on exit.
func Init(ctx context.Context, cfg Config, opts ...Option) (*Providers, error) {
	o := options{global: true}
	for _, opt := range opts {
		opt(&o)
	}

	res, err := newResource(cfg.ServiceName, cfg.ServiceVersion, cfg.Environment)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	traceOpts := []sdktrace.TracerProviderOption{
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sampler(cfg.SampleRate)),
	}
	for _, exp := range o.spanExporters {
		traceOpts = append(traceOpts, sdktrace.WithSyncer(exp))
	}
	meterOpts := []sdkmetric.Option{sdkmetric.WithResource(res)}
	for _, r := range o.readers {
		meterOpts = append(meterOpts, sdkmetric.WithReader(r))
	}

	if cfg.Exporting() {
		traceExp, err := otlptracehttp.New(ctx, traceExporterOptions(cfg)...)
		if err != nil {
			return nil, fmt.Errorf("creating trace exporter: %w", err)
		}
		metricExp, err := otlpmetrichttp.New(ctx, metricExporterOptions(cfg)...)
		if err != nil {
			return nil, fmt.Errorf("creating metric exporter: %w", err)
		}
		traceOpts = append(traceOpts, sdktrace.WithBatcher(traceExp))
		meterOpts = append(meterOpts, sdkmetric.WithReader(sdkmetric.NewPeriodicReader(metricExp)))
	}

	p := &Providers{
		tracer: sdktrace.NewTracerProvider(traceOpts...),
		meter:  sdkmetric.NewMeterProvider(meterOpts...),
	}

	if o.global {
		otel.SetTracerProvider(p.tracer)
		otel.SetMeterProvider(p.meter)
		otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
			propagation.TraceContext{},
			propagation.Baggage{},
		))
	}

	logger.Debug("telemetry initialized", logger.Fields(
		"service", cfg.ServiceName,
		"exporting", cfg.Exporting(),
		"endpoint", cfg.Endpoint,
		"sample_rate", cfg.SampleRate,
	))
	return p, nil
}

// Tracer returns a tracer from the provider.
func (p *Providers) Tracer(name string) trace.Tracer {
	return p.tracer.Tracer(name)
}

// Meter returns a meter from the provider.
func (p *Providers) Meter(name string) metric.Meter {
	return p.meter.Meter(name)
}

// Shutdown flushes and stops both providers.
func (p *Providers) Shutdown(ctx context.Context) error {
	return stderrors.Join(p.tracer.Shutdown(ctx), p.meter.Shutdown(ctx))
}

func traceExporterOptions(cfg Config) []otlptracehttp.Option {
	opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(cfg.Endpoint)}
	if cfg.Insecure {
		opts = append(opts, otlptracehttp.WithInsecure())
	}
	return opts
}

func metricExporterOptions(cfg Config) []otlpmetrichttp.Option {
	opts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(cfg.Endpoint)}
	if cfg.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}
	return opts
}

func sampler(rate float64) sdktrace.Sampler {
	switch {
	case rate >= 1.0:
		return sdktrace.AlwaysSample()
	case rate <= 0:
		return sdktrace.NeverSample()
	default:
		return sdktrace.TraceIDRatioBased(rate)
	}
}

// newResource creates a resource with service metadata. The attributes are
// schemaless so they merge with the SDK default resource.
func newResource(serviceName, serviceVersion, environment string) (*resource.Resource, error) {
	attrs := []attribute.KeyValue{semconv.ServiceName(serviceName)}
	if serviceVersion != "" {
		attrs = append(attrs, semconv.ServiceVersion(serviceVersion))
	}
	if environment != "" {
		attrs = append(attrs, attribute.String("environment", environment))
	}
	return resource.Merge(resource.Default(), resource.NewSchemaless(attrs...))
}

// StartSpan starts a span on tracer with the given attributes.
func StartSpan(ctx context.Context, tracer trace.Tracer, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

// EndSpan records err on span, if any, and ends it.
func EndSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

// Common attribute keys.
const (
	AttrRunID       = "run.id"
	AttrSectionName = "section.name"
	AttrResultSize  = "section.result_size"
	AttrStatus      = "status"
)
