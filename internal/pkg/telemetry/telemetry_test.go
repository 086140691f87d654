package telemetry_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/KirkDiggler/rpg-spellwizard/internal/pkg/telemetry"
)

func TestSetupNoopWhenDisabled(t *testing.T) {
	testCases := []struct {
		name string
		cfg  telemetry.Config
	}{
		{name: "no endpoint", cfg: telemetry.Config{ServiceName: "test", Enabled: true}},
		{name: "disabled", cfg: telemetry.Config{ServiceName: "test", Endpoint: "http://localhost:4318"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			shutdown, err := telemetry.Setup(context.Background(), tc.cfg)
			require.NoError(t, err)
			assert.NoError(t, shutdown(context.Background()))
		})
	}
}

func TestSetupCreatesProvider(t *testing.T) {
	// non-routable so nothing is exported
	shutdown, err := telemetry.Setup(context.Background(), telemetry.Config{
		ServiceName: "test",
		Endpoint:    "http://192.0.2.1:4318",
		Enabled:     true,
	})
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}

func TestGRPCLoggerAddsTraceIDs(t *testing.T) {
	var buf bytes.Buffer
	logger := telemetry.GRPCLogger(slog.New(slog.NewJSONHandler(&buf, nil)))

	tp := sdktrace.NewTracerProvider()
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	ctx, span := tp.Tracer("test").Start(context.Background(), "call")
	defer span.End()

	logger.Log(ctx, grpc_logging.LevelInfo, "finished call", "grpc.method", "GetSpell")

	out := buf.String()
	assert.Contains(t, out, `"msg":"finished call"`)
	assert.Contains(t, out, `"grpc.method":"GetSpell"`)
	assert.Contains(t, out, span.SpanContext().TraceID().String())
}

func TestGRPCLoggerWithoutSpan(t *testing.T) {
	var buf bytes.Buffer
	logger := telemetry.GRPCLogger(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	logger.Log(context.Background(), grpc_logging.LevelDebug, "started call")

	assert.Contains(t, buf.String(), `"level":"DEBUG"`)
	assert.NotContains(t, buf.String(), "trace_id")
}
