// Package http assembles the ncnews HTTP surface: the chi router, the
// cross-cutting middleware and the health and metrics endpoints. Resource
// handlers live in the topic, article, comment, user and catalogue
// subpackages.
package http

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/sony/gobreaker"

	"ncnews/internal/handler/http/respond"
	"ncnews/internal/observability/metrics"
)

// Check statuses reported by HealthHandler.
const (
	StatusHealthy   = "healthy"
	StatusDegraded  = "degraded"
	StatusUnhealthy = "unhealthy"
)

// HealthResponse is the /health body. Status is healthy or unhealthy; a
// degraded check does not fail the probe.
type HealthResponse struct {
	Status    string                 `json:"status"`
	Timestamp string                 `json:"timestamp"` // RFC 3339, UTC
	Checks    map[string]CheckStatus `json:"checks"`
	Version   string                 `json:"version"`
}

// CheckStatus is one named check.
type CheckStatus struct {
	Status  string                 `json:"status"`
	Message string                 `json:"message,omitempty"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// DBProbe is the part of a connection pool the probes need.
// *sql.DB, *sqlx.DB and *circuitbreaker.DB all satisfy it.
type DBProbe interface {
	PingContext(ctx context.Context) error
	Stats() sql.DBStats
}

// breakerState is implemented by probes that sit behind a circuit breaker.
type breakerState interface {
	State() gobreaker.State
}

// HealthHandler reports database connectivity, pool usage and, when the
// probe is wrapped in a breaker, the breaker state. It answers 503 only when
// the database check is unhealthy.
type HealthHandler struct {
	DB      DBProbe
	Version string
}

// ServeHTTP godoc
// @Summary      Health check
// @Description  Database connectivity, pool statistics and circuit breaker state
// @Tags         ops
// @Produce      json
// @Success      200  {object}  HealthResponse
// @Failure      503  {object}  HealthResponse
// @Router       /health [get]
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	resp := HealthResponse{
		Status:    StatusHealthy,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    map[string]CheckStatus{},
		Version:   h.Version,
	}

	switch {
	case h.DB == nil:
		resp.Checks["database"] = CheckStatus{Status: StatusUnhealthy, Message: "not configured"}
	default:
		resp.Checks["database"] = probeDatabase(ctx, h.DB)
		if b, ok := h.DB.(breakerState); ok {
			resp.Checks["circuit_breaker"] = checkBreaker(b.State())
		}
	}

	code := http.StatusOK
	if resp.Checks["database"].Status == StatusUnhealthy {
		resp.Status = StatusUnhealthy
		code = http.StatusServiceUnavailable
	}

	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	respond.JSON(w, code, resp)
}

// probeDatabase pings db and, when it answers, grades its pool. The pool
// gauges are refreshed as a side effect.
func probeDatabase(ctx context.Context, db DBProbe) CheckStatus {
	if err := db.PingContext(ctx); err != nil {
		return CheckStatus{Status: StatusUnhealthy, Message: respond.SanitizeError(err)}
	}
	stats := db.Stats()
	metrics.RecordDBStats(stats)
	return gradePool(stats)
}

// poolSaturation is the in-use share at which the pool is reported degraded.
const poolSaturation = 80.0

// gradePool turns pool statistics into a check. An unbounded pool
// (MaxOpenConnections 0) has no utilization and is always degraded.
func gradePool(stats sql.DBStats) CheckStatus {
	cs := CheckStatus{
		Status: StatusHealthy,
		Details: map[string]interface{}{
			"max_open_connections": stats.MaxOpenConnections,
			"open_connections":     stats.OpenConnections,
			"in_use":               stats.InUse,
			"idle":                 stats.Idle,
			"wait_count":           stats.WaitCount,
			"wait_duration_ms":     stats.WaitDuration.Milliseconds(),
		},
	}
	if stats.MaxOpenConnections == 0 {
		cs.Status = StatusDegraded
		cs.Message = "connection pool is unbounded"
		return cs
	}

	pct := float64(stats.InUse) / float64(stats.MaxOpenConnections) * 100
	cs.Details["utilization_percent"] = pct
	if pct >= poolSaturation {
		cs.Status = StatusDegraded
		cs.Message = fmt.Sprintf("connection pool %.0f%% in use", pct)
	}
	return cs
}

// checkBreaker is informational; an open breaker already fails the ping.
func checkBreaker(state gobreaker.State) CheckStatus {
	cs := CheckStatus{
		Status:  StatusHealthy,
		Details: map[string]interface{}{"state": state.String()},
	}
	if state != gobreaker.StateClosed {
		cs.Status = StatusDegraded
	}
	return cs
}

// ReadyHandler answers readiness probes. It is ready once the database
// answers a ping.
type ReadyHandler struct {
	DB DBProbe
}

// ServeHTTP godoc
// @Summary      Readiness probe
// @Tags         ops
// @Produce      plain
// @Success      200  {string}  string  "ready"
// @Failure      503  {string}  string
// @Router       /ready [get]
func (h *ReadyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if h.DB == nil {
		http.Error(w, "database not configured", http.StatusServiceUnavailable)
		return
	}

	if err := h.DB.PingContext(ctx); err != nil {
		http.Error(w, "database not ready: "+respond.SanitizeError(err), http.StatusServiceUnavailable)
		return
	}

	writePlain(w, "ready")
}

// LiveHandler answers liveness probes. It never touches the database.
type LiveHandler struct{}

// ServeHTTP godoc
// @Summary      Liveness probe
// @Tags         ops
// @Produce      plain
// @Success      200  {string}  string  "alive"
// @Router       /live [get]
func (h *LiveHandler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	writePlain(w, "alive")
}

func writePlain(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(body)); err != nil {
		slog.Default().Warn("failed to write probe response",
			slog.String("body", body),
			slog.Any("error", err))
	}
}
