package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metric instrument names.
const (
	MetricSections        = "seqkit.sections"
	MetricSectionDuration = "seqkit.section.duration"
	MetricResultSize      = "seqkit.section.result_size"
)

// Instruments holds the metric instruments recorded per demonstration section.
type Instruments struct {
	sections   metric.Int64Counter
	duration   metric.Float64Histogram
	resultSize metric.Int64Histogram
}

// NewInstruments creates metric instruments on the given meter.
func NewInstruments(meter metric.Meter) (*Instruments, error) {
	sections, err := meter.Int64Counter(MetricSections,
		metric.WithDescription("Number of sections run, by name and status"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s counter: %w", MetricSections, err)
	}

	duration, err := meter.Float64Histogram(MetricSectionDuration,
		metric.WithDescription("Duration of sections in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s histogram: %w", MetricSectionDuration, err)
	}

	resultSize, err := meter.Int64Histogram(MetricResultSize,
		metric.WithDescription("Number of elements produced by a section"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s histogram: %w", MetricResultSize, err)
	}

	return &Instruments{sections: sections, duration: duration, resultSize: resultSize}, nil
}

// RecordSection records one finished section. size is only recorded for
// successful sections.
func (i *Instruments) RecordSection(ctx context.Context, section string, err error, size int, d time.Duration) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	i.sections.Add(ctx, 1, metric.WithAttributes(
		attribute.String(AttrSectionName, section),
		attribute.String(AttrStatus, status),
	))
	nameAttr := metric.WithAttributes(attribute.String(AttrSectionName, section))
	i.duration.Record(ctx, d.Seconds(), nameAttr)
	if err == nil {
		i.resultSize.Record(ctx, int64(size), nameAttr)
	}
}
