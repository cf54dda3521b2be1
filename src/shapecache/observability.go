package shapecache

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const (
	// Instrumentation library name
	instrumentationName = "github.com/seuros/gopher-shapes/src/shapecache"
)

// ObservabilityConfig controls telemetry collection
type ObservabilityConfig struct {
	// EnableMetrics enables OpenTelemetry metrics collection
	EnableMetrics bool

	// MeterProvider supplies the meter. Nil means otel.GetMeterProvider().
	MeterProvider metric.MeterProvider

	// MetricAttributes are additional attributes to add to all metrics
	MetricAttributes []attribute.KeyValue
}

// DefaultObservabilityConfig returns default observability configuration
func DefaultObservabilityConfig() *ObservabilityConfig {
	return &ObservabilityConfig{
		EnableMetrics: true,
		MetricAttributes: []attribute.KeyValue{
			attribute.String("shapecache.library", "gopher-shapes"),
		},
	}
}

// instruments holds the cache's OpenTelemetry instruments
type instruments struct {
	entries  metric.Int64UpDownCounter
	lookups  metric.Int64Counter
	adds     metric.Int64Counter
	removals metric.Int64Counter
	errors   metric.Int64Counter

	common metric.MeasurementOption
	hit    metric.MeasurementOption
	miss   metric.MeasurementOption
}

func newInstruments(cfg *ObservabilityConfig) *instruments {
	if cfg == nil {
		cfg = DefaultObservabilityConfig()
	}

	var provider metric.MeterProvider
	switch {
	case !cfg.EnableMetrics:
		provider = noop.NewMeterProvider()
	case cfg.MeterProvider != nil:
		provider = cfg.MeterProvider
	default:
		provider = otel.GetMeterProvider()
	}
	meter := provider.Meter(instrumentationName, metric.WithInstrumentationVersion(Version()))

	attrs := cfg.MetricAttributes
	inst := &instruments{
		common: metric.WithAttributes(attrs...),
		hit:    metric.WithAttributes(withAttr(attrs, attribute.Bool("shapecache.hit", true))...),
		miss:   metric.WithAttributes(withAttr(attrs, attribute.Bool("shapecache.hit", false))...),
	}

	var err error

	inst.entries, err = meter.Int64UpDownCounter(
		"shapecache.entries",
		metric.WithDescription("Number of shapes currently registered"),
	)
	if err != nil {
		otel.Handle(err)
	}

	inst.lookups, err = meter.Int64Counter(
		"shapecache.lookups",
		metric.WithDescription("Number of shape lookups, by hit or miss"),
	)
	if err != nil {
		otel.Handle(err)
	}

	inst.adds, err = meter.Int64Counter(
		"shapecache.adds",
		metric.WithDescription("Number of shapes stored, including overwrites"),
	)
	if err != nil {
		otel.Handle(err)
	}

	inst.removals, err = meter.Int64Counter(
		"shapecache.removals",
		metric.WithDescription("Number of shapes removed"),
	)
	if err != nil {
		otel.Handle(err)
	}

	inst.errors, err = meter.Int64Counter(
		"shapecache.errors",
		metric.WithDescription("Number of rejected adds"),
	)
	if err != nil {
		otel.Handle(err)
	}

	return inst
}

func withAttr(attrs []attribute.KeyValue, extra attribute.KeyValue) []attribute.KeyValue {
	out := make([]attribute.KeyValue, 0, len(attrs)+1)
	out = append(out, attrs...)
	return append(out, extra)
}

func (i *instruments) recordLookup(hit bool) {
	if i.lookups == nil {
		return
	}
	if hit {
		i.lookups.Add(context.Background(), 1, i.hit)
	} else {
		i.lookups.Add(context.Background(), 1, i.miss)
	}
}

func (i *instruments) recordAdd(n int, added int) {
	ctx := context.Background()
	if i.adds != nil {
		i.adds.Add(ctx, int64(n), i.common)
	}
	if i.entries != nil && added != 0 {
		i.entries.Add(ctx, int64(added), i.common)
	}
}

func (i *instruments) recordRemove(n int) {
	if n == 0 {
		return
	}
	ctx := context.Background()
	if i.removals != nil {
		i.removals.Add(ctx, int64(n), i.common)
	}
	if i.entries != nil {
		i.entries.Add(ctx, -int64(n), i.common)
	}
}

func (i *instruments) recordError() {
	if i.errors != nil {
		i.errors.Add(context.Background(), 1, i.common)
	}
}
