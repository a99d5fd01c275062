// Package observability groups the service's logging, metrics and tracing.
//
// Subpackages:
//   - logging: slog construction and request-scoped loggers
//   - metrics: the Prometheus registry for HTTP, database and domain events
//   - tracing: OpenTelemetry HTTP middleware and the shared tracer
package observability
