package observability

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/marcos-nsantos/image-variants/internal/infrastructure/config"
)

const serviceName = "image-variants"

// OtelMetrics exports counters to an OpenTelemetry collector over gRPC.
type OtelMetrics struct {
	provider *sdkmetric.MeterProvider
	counters map[MetricName]metric.Int64Counter
	logger   *zap.Logger
}

var counterDescriptions = map[MetricName]string{
	UploadReceived: "Number of received uploads",
	UploadFailed:   "Number of uploads that returned an error",
	FileRelocated:  "Number of files stored without resizing",
	VariantCreated: "Number of resized variants written",
}

func NewOtelMetrics(ctx context.Context, cfg config.TelemetryConfig, logger *zap.Logger) (*OtelMetrics, error) {
	conn, err := grpc.NewClient(
		cfg.GRPCEndpoint,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("creating collector connection: %w", err)
	}

	res, err := resource.New(ctx, resource.WithAttributes(semconv.ServiceNameKey.String(serviceName)))
	if err != nil {
		return nil, fmt.Errorf("creating otel resource: %w", err)
	}

	exporter, err := otlpmetricgrpc.New(ctx, otlpmetricgrpc.WithGRPCConn(conn))
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(
			exporter,
			sdkmetric.WithInterval(cfg.Interval),
		)),
	)

	return newOtelMetrics(provider, logger)
}

func newOtelMetrics(provider *sdkmetric.MeterProvider, logger *zap.Logger) (*OtelMetrics, error) {
	meter := provider.Meter(serviceName)
	counters := make(map[MetricName]metric.Int64Counter, len(counterDescriptions))
	for name, description := range counterDescriptions {
		counter, err := meter.Int64Counter(
			string(name),
			metric.WithDescription(description),
		)
		if err != nil {
			return nil, fmt.Errorf("creating counter %s: %w", name, err)
		}
		counters[name] = counter
	}

	return &OtelMetrics{
		provider: provider,
		counters: counters,
		logger:   logger,
	}, nil
}

func (m *OtelMetrics) Increment(ctx context.Context, name MetricName, attrs map[string]string) {
	counter, ok := m.counters[name]
	if !ok {
		m.logger.Warn("unknown metric", zap.String("metric", string(name)))
		return
	}

	kvs := make([]attribute.KeyValue, 0, len(attrs))
	for k, v := range attrs {
		kvs = append(kvs, attribute.String(k, v))
	}
	counter.Add(ctx, 1, metric.WithAttributeSet(attribute.NewSet(kvs...)))
}

func (m *OtelMetrics) Shutdown(ctx context.Context) error {
	if err := m.provider.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutting down meter provider: %w", err)
	}
	return nil
}

// NewMetrics returns the otel exporter when telemetry is enabled and a no-op
// implementation otherwise.
func NewMetrics(ctx context.Context, cfg config.TelemetryConfig, logger *zap.Logger) (Metrics, error) {
	if !cfg.Enabled {
		return NewNoopMetrics(), nil
	}
	return NewOtelMetrics(ctx, cfg, logger)
}
