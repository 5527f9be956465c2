package observability

import "context"

type MetricName string

const (
	UploadReceived MetricName = "upload.received"
	UploadFailed   MetricName = "upload.failed"
	FileRelocated  MetricName = "upload.file.relocated"
	VariantCreated MetricName = "upload.variant.created"
)

type Metrics interface {
	Increment(ctx context.Context, metric MetricName, attrs map[string]string)
	Shutdown(ctx context.Context) error
}

type NoopMetrics struct{}

func NewNoopMetrics() *NoopMetrics {
	return &NoopMetrics{}
}

func (n *NoopMetrics) Increment(ctx context.Context, metric MetricName, attrs map[string]string) {}

func (n *NoopMetrics) Shutdown(ctx context.Context) error {
	return nil
}
