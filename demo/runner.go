package demo

import (
	"context"
	stderrors "errors"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/kbukum/seqkit/errors"
	"github.com/kbukum/seqkit/logger"
	"github.com/kbukum/seqkit/observability"
)

// Runner executes demonstration sections in order.
type Runner struct {
	sections []Section
	out      io.Writer
	log      *logger.Logger
	tracer   trace.Tracer
	inst     *observability.Instruments
	runID    string
}

// Option configures a Runner.
type Option func(*Runner)

// WithOutput sets where sections are rendered. Defaults to stdout.
func WithOutput(w io.Writer) Option {
	return func(r *Runner) { r.out = w }
}

// WithLogger sets the logger. Defaults to the global logger.
func WithLogger(l *logger.Logger) Option {
	return func(r *Runner) { r.log = l }
}

// WithTracer sets the tracer for run and section spans.
func WithTracer(t trace.Tracer) Option {
	return func(r *Runner) { r.tracer = t }
}

// WithInstruments enables section metrics.
func WithInstruments(inst *observability.Instruments) Option {
	return func(r *Runner) { r.inst = inst }
}

// WithRunID overrides the generated run ID.
func WithRunID(id string) Option {
	return func(r *Runner) { r.runID = id }
}

// WithSections replaces the default sections.
func WithSections(sections ...Section) Option {
	return func(r *Runner) { r.sections = sections }
}

// NewRunner creates a Runner over cfg's default sections.
func NewRunner(cfg *Config, opts ...Option) *Runner {
	r := &Runner{
		sections: DefaultSections(cfg),
		out:      os.Stdout,
		tracer:   noop.NewTracerProvider().Tracer(observability.ScopeName),
		runID:    uuid.NewString(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.log == nil {
		r.log = logger.WithComponent("demo")
	}
	r.log = r.log.WithFields(logger.Fields(logger.FieldRunID, r.runID))
	return r
}

// RunID returns the identifier attached to this runner's logs and spans.
func (r *Runner) RunID() string { return r.runID }

// Sections returns the section names in run order.
func (r *Runner) Sections() []string {
	names := make([]string, len(r.sections))
	for i, s := range r.sections {
		names[i] = s.Name
	}
	return names
}

// Run executes the sections in order, or only the named ones (still in run
// order). It stops at the first failure.
func (r *Runner) Run(ctx context.Context, only ...string) (err error) {
	selected, err := r.selectSections(only)
	if err != nil {
		return err
	}

	ctx, span := observability.StartSpan(ctx, r.tracer, "demo.run",
		attribute.String(observability.AttrRunID, r.runID),
		attribute.Int("sections", len(selected)),
	)
	defer func() { observability.EndSpan(span, err) }()

	start := time.Now()
	r.log.Info("run started", logger.Fields("sections", len(selected)))
	for _, s := range selected {
		if err := ctx.Err(); err != nil {
			return errors.Internal(err).WithDetail(logger.FieldSection, s.Name)
		}
		if err := r.runSection(ctx, s); err != nil {
			r.log.WithError(err).Error("run aborted", logger.Fields(logger.FieldSection, s.Name))
			return err
		}
	}
	r.log.Info("run finished", logger.DurationFields("run", time.Since(start)))
	return nil
}

func (r *Runner) runSection(ctx context.Context, s Section) (err error) {
	ctx, span := observability.StartSpan(ctx, r.tracer, "demo.section",
		attribute.String(observability.AttrSectionName, s.Name),
	)
	start := time.Now()
	var size int
	defer func() {
		span.SetAttributes(attribute.Int(observability.AttrResultSize, size))
		observability.EndSpan(span, err)
		if r.inst != nil {
			r.inst.RecordSection(ctx, s.Name, err, size, time.Since(start))
		}
	}()

	r.log.Debug("section started", logger.Fields(logger.FieldSection, s.Name))
	size, err = s.Run(ctx, r.out)
	if err != nil {
		var outErr *outputError
		if stderrors.As(err, &outErr) {
			return errors.OutputFailed(outErr.err).WithDetail(logger.FieldSection, s.Name)
		}
		return errors.SectionFailed(s.Name, err)
	}
	r.log.Debug("section finished", logger.Fields(logger.FieldSection, s.Name, logger.FieldSize, size))
	return nil
}

func (r *Runner) selectSections(only []string) ([]Section, error) {
	if len(only) == 0 {
		return r.sections, nil
	}
	want := make(map[string]bool, len(only))
	for _, name := range only {
		want[name] = true
	}
	selected := make([]Section, 0, len(only))
	for _, s := range r.sections {
		if want[s.Name] {
			selected = append(selected, s)
			delete(want, s.Name)
		}
	}
	for _, name := range only {
		if want[name] {
			return nil, errors.InvalidInput("section", "unknown section "+name).
				WithDetail("available", r.Sections())
		}
	}
	return selected, nil
}
