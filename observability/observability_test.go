package observability

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig("seqdemo")
	if cfg.ServiceName != "seqdemo" {
		t.Errorf("expected ServiceName 'seqdemo', got %s", cfg.ServiceName)
	}
	if cfg.SampleRate != 1.0 {
		t.Errorf("expected SampleRate 1.0, got %f", cfg.SampleRate)
	}
	if cfg.Exporting() {
		t.Error("expected export disabled by default")
	}
	cfg.Enabled = true
	if !cfg.Exporting() {
		t.Error("expected export when enabled with endpoint")
	}
	cfg.Endpoint = ""
	if cfg.Exporting() {
		t.Error("expected no export without endpoint")
	}
}

func TestSampler(t *testing.T) {
	tests := []struct {
		rate float64
		want string
	}{
		{1.0, "AlwaysOnSampler"},
		{2.0, "AlwaysOnSampler"},
		{0, "AlwaysOffSampler"},
		{-1, "AlwaysOffSampler"},
	}
	for _, tc := range tests {
		if got := sampler(tc.rate).Description(); got != tc.want {
			t.Errorf("sampler(%v) = %s, want %s", tc.rate, got, tc.want)
		}
	}
}

func TestInit_RecordsSpans(t *testing.T) {
	ctx := context.Background()
	exp := tracetest.NewInMemoryExporter()
	p, err := Init(ctx, DefaultConfig("seqdemo"), WithSpanExporter(exp), WithoutGlobal())
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer p.Shutdown(ctx)

	tracer := p.Tracer(ScopeName)
	_, span := StartSpan(ctx, tracer, "demo.section", attribute.String(AttrSectionName, "Map"))
	EndSpan(span, nil)
	_, failed := StartSpan(ctx, tracer, "demo.section")
	EndSpan(failed, errors.New("boom"))

	spans := exp.GetSpans()
	if len(spans) != 2 {
		t.Fatalf("expected 2 spans, got %d", len(spans))
	}
	if spans[0].Name != "demo.section" || spans[0].Status.Code != codes.Ok {
		t.Errorf("unexpected first span %+v", spans[0])
	}
	found := false
	for _, a := range spans[0].Attributes {
		if a.Key == AttrSectionName && a.Value.AsString() == "Map" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected %s attribute, got %v", AttrSectionName, spans[0].Attributes)
	}
	if spans[1].Status.Code != codes.Error || len(spans[1].Events) == 0 {
		t.Errorf("expected error status and exception event, got %+v", spans[1])
	}
}

func TestInstruments_RecordSection(t *testing.T) {
	ctx := context.Background()
	reader := sdkmetric.NewManualReader()
	p, err := Init(ctx, DefaultConfig("seqdemo"), WithMetricReader(reader), WithoutGlobal())
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer p.Shutdown(ctx)

	inst, err := NewInstruments(p.Meter(ScopeName))
	if err != nil {
		t.Fatalf("NewInstruments: %v", err)
	}
	inst.RecordSection(ctx, "Join", nil, 20, 5*time.Millisecond)
	inst.RecordSection(ctx, "Join", errors.New("boom"), 0, time.Millisecond)

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(ctx, &rm); err != nil {
		t.Fatalf("Collect: %v", err)
	}
	got := map[string]metricdata.Metrics{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			got[m.Name] = m
		}
	}

	sum, ok := got[MetricSections].Data.(metricdata.Sum[int64])
	if !ok {
		t.Fatalf("expected %s sum, got %T", MetricSections, got[MetricSections].Data)
	}
	var total int64
	for _, dp := range sum.DataPoints {
		total += dp.Value
	}
	if total != 2 || len(sum.DataPoints) != 2 {
		t.Errorf("expected two sections across two statuses, got %+v", sum.DataPoints)
	}

	sizes, ok := got[MetricResultSize].Data.(metricdata.Histogram[int64])
	if !ok {
		t.Fatalf("expected %s histogram, got %T", MetricResultSize, got[MetricResultSize].Data)
	}
	if len(sizes.DataPoints) != 1 || sizes.DataPoints[0].Count != 1 || sizes.DataPoints[0].Sum != 20 {
		t.Errorf("expected only the successful size to be recorded, got %+v", sizes.DataPoints)
	}

	if _, ok := got[MetricSectionDuration].Data.(metricdata.Histogram[float64]); !ok {
		t.Errorf("expected %s histogram", MetricSectionDuration)
	}
}

func TestNewInstruments_Noop(t *testing.T) {
	inst, err := NewInstruments(noop.NewMeterProvider().Meter("test"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	inst.RecordSection(context.Background(), "Map", nil, 5, time.Millisecond)
}

func TestNewResource(t *testing.T) {
	res, err := newResource("seqdemo", "1.2.3", "staging")
	if err != nil {
		t.Fatalf("newResource: %v", err)
	}
	want := map[attribute.Key]string{
		"service.name":    "seqdemo",
		"service.version": "1.2.3",
		"environment":     "staging",
	}
	for _, kv := range res.Attributes() {
		if v, ok := want[kv.Key]; ok && kv.Value.AsString() != v {
			t.Errorf("%s = %s, want %s", kv.Key, kv.Value.AsString(), v)
		}
	}
}
