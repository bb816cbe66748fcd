package tracing

import (
	"context"
	"testing"
	"time"

	"github.com/alimikegami/point-of-sales/cash-payment-service/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
)

func TestInitTracing_UsesConfiguredServiceName(t *testing.T) {
	tp, err := InitTracing(config.TracingConfig{CollectorHost: "localhost", ServiceName: "cash-payment-service-eu"})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	defer tp.Shutdown(ctx)

	_, span := tp.Tracer("test").Start(context.Background(), "span")
	defer span.End()

	ro, ok := span.(sdktrace.ReadOnlySpan)
	require.True(t, ok)

	value, found := ro.Resource().Set().Value(semconv.ServiceNameKey)
	require.True(t, found)
	assert.Equal(t, "cash-payment-service-eu", value.AsString())
}

func TestInitTracing_RequiresServiceName(t *testing.T) {
	_, err := InitTracing(config.TracingConfig{CollectorHost: "localhost"})
	assert.Error(t, err)
}
