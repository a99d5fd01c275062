package tracing

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// TracerName is the instrumentation scope used for every span in the service.
const TracerName = "ncnews"

// GetTracer returns the tracer for creating spans. It resolves the global
// provider on each call so a provider installed after start-up is honoured.
func GetTracer() trace.Tracer {
	return otel.Tracer(TracerName)
}
