package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	otelmetric "go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

// Observability records per-document decode metrics for batch commands.
type Observability struct {
	meterProvider  *metric.MeterProvider
	tracerProvider *sdktrace.TracerProvider
	meter          otelmetric.Meter
	decodeCounter  otelmetric.Int64Counter
	decodeDuration otelmetric.Float64Histogram
}

// New wires an otel meter to a prometheus exporter (the default registerer
// unless opts say otherwise). When the exporter cannot be created the
// returned value records nothing.
func New(serviceName string, opts ...prometheus.Option) (*Observability, error) {
	exporter, err := prometheus.New(opts...)
	if err != nil {
		return &Observability{}, err
	}

	provider := metric.NewMeterProvider(metric.WithReader(exporter))
	otel.SetMeterProvider(provider)
	meter := provider.Meter(serviceName)

	decodeCounter, err := meter.Int64Counter(
		"documents.decoded",
		otelmetric.WithDescription("Number of documents decoded"),
	)
	if err != nil {
		return &Observability{meterProvider: provider}, err
	}

	decodeDuration, err := meter.Float64Histogram(
		"documents.decode.duration",
		otelmetric.WithDescription("Document decode duration"),
		otelmetric.WithUnit("ms"),
	)
	if err != nil {
		return &Observability{meterProvider: provider}, err
	}

	// TODO: register an OTLP span exporter once a collector endpoint is configurable.
	return &Observability{
		meterProvider:  provider,
		tracerProvider: sdktrace.NewTracerProvider(),
		meter:          meter,
		decodeCounter:  decodeCounter,
		decodeDuration: decodeDuration,
	}, nil
}

// RecordDecode records one decoded document of the given record type.
func (o *Observability) RecordDecode(ctx context.Context, schema, status string, duration time.Duration) {
	attrs := otelmetric.WithAttributes(
		attribute.String("schema", schema),
		attribute.String("status", status),
	)
	if o.decodeCounter != nil {
		o.decodeCounter.Add(ctx, 1, attrs)
	}
	if o.decodeDuration != nil {
		o.decodeDuration.Record(ctx, float64(duration.Microseconds())/1000, attrs)
	}
}

// TracerProvider returns the provider decode spans are started from. The
// zero value falls back to the global provider.
func (o *Observability) TracerProvider() trace.TracerProvider {
	if o.tracerProvider == nil {
		return otel.GetTracerProvider()
	}
	return o.tracerProvider
}

// Shutdown flushes and stops the meter and tracer providers.
func (o *Observability) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var err error
	if o.tracerProvider != nil {
		err = o.tracerProvider.Shutdown(ctx)
	}
	if o.meterProvider != nil {
		if mErr := o.meterProvider.Shutdown(ctx); mErr != nil {
			err = mErr
		}
	}
	return err
}
