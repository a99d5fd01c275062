// Package tracing provides OpenTelemetry tracing for the HTTP layer and the
// repositories.
//
// Spans are created through the global tracer provider, so tests and the
// composition root can install any provider (for example an in-memory
// exporter) with otel.SetTracerProvider.
//
//	ctx, span := tracing.GetTracer().Start(ctx, "postgres.article.get")
//	defer span.End()
package tracing
