package telemetry

import (
	"context"
	"log/slog"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	"go.opentelemetry.io/otel/trace"
)

// GRPCLogger adapts an slog.Logger to the gRPC logging interceptor. Calls made
// inside a sampled span carry its trace and span IDs.
func GRPCLogger(l *slog.Logger) grpc_logging.Logger {
	return grpc_logging.LoggerFunc(func(ctx context.Context, lvl grpc_logging.Level, msg string, fields ...any) {
		if sc := trace.SpanFromContext(ctx).SpanContext(); sc.IsValid() {
			fields = append(fields, "trace_id", sc.TraceID().String(), "span_id", sc.SpanID().String())
		}
		l.Log(ctx, slog.Level(lvl), msg, fields...)
	})
}
