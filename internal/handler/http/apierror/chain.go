// Package apierror turns errors into HTTP responses. It is the only place
// where an error becomes a status code.
//
// A Chain is an ordered list of stages. Each stage either claims an error,
// returning the status and client message, or passes. The first stage to
// claim wins, so a domain NotFound is never reinterpreted by the storage
// stage that follows it.
package apierror

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"ncnews/internal/domain/entity"
	"ncnews/internal/handler/http/respond"
	"ncnews/internal/infra/db/pgerr"
	"ncnews/internal/observability/logging"
	"ncnews/internal/observability/metrics"
	"ncnews/internal/observability/tracing"
)

// Client-facing messages.
const (
	MsgBadRequest   = "bad request"
	MsgNotFound     = "not found"
	MsgPathNotFound = "path not found"
	MsgInternal     = "Internal server error"
)

// Handler claims err by returning ok=true with the response status and message.
type Handler func(err error) (status int, msg string, ok bool)

// Stage is a named Handler.
type Stage struct {
	Name   string
	Handle Handler
}

// Chain runs its stages in order.
type Chain struct {
	stages []Stage
	logger *slog.Logger
}

// NewChain builds a chain from stages in the given order.
func NewChain(logger *slog.Logger, stages ...Stage) *Chain {
	if logger == nil {
		logger = slog.Default()
	}
	return &Chain{stages: stages, logger: logger}
}

// Default returns the service's chain: domain, then storage, then fallback.
func Default(logger *slog.Logger) *Chain {
	return NewChain(logger,
		Stage{Name: "domain", Handle: Domain},
		Stage{Name: "storage", Handle: Storage},
		Stage{Name: "fallback", Handle: Fallback},
	)
}

// Names returns the stage names in evaluation order.
func (c *Chain) Names() []string {
	names := make([]string, len(c.stages))
	for i, s := range c.stages {
		names[i] = s.Name
	}
	return names
}

// Resolve returns the first stage that claims err along with its response.
// If no stage claims it the result is a 500 from stage "unhandled".
func (c *Chain) Resolve(err error) (stage string, status int, msg string) {
	for _, s := range c.stages {
		if status, msg, ok := s.Handle(err); ok {
			return s.Name, status, msg
		}
	}
	return "unhandled", http.StatusInternalServerError, MsgInternal
}

// Write resolves err and writes {"msg": ...}. Server errors are logged with
// the request and trace ids; the client only sees the fixed message.
func (c *Chain) Write(w http.ResponseWriter, r *http.Request, err error) {
	stage, status, msg := c.Resolve(err)

	log := logging.WithRequestID(r.Context(), c.logger)
	if status >= http.StatusInternalServerError {
		log.Error("request failed",
			slog.String("stage", stage),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("trace_id", tracing.TraceID(r)),
			slog.String("error", respond.SanitizeError(err)))
	} else {
		log.Debug("request rejected",
			slog.String("stage", stage),
			slog.Int("status", status),
			slog.String("error", err.Error()))
	}

	metrics.RecordAPIError(stage, strconv.Itoa(status))
	respond.Message(w, status, msg)
}

// Domain claims errors raised deliberately by application code.
func Domain(err error) (int, string, bool) {
	var nf *entity.NotFoundError
	if errors.As(err, &nf) {
		return http.StatusNotFound, nf.Error(), true
	}
	if errors.Is(err, entity.ErrNotFound) {
		return http.StatusNotFound, MsgNotFound, true
	}
	if errors.Is(err, entity.ErrInvalidInput) {
		return http.StatusBadRequest, MsgBadRequest, true
	}
	var appErr *respond.AppError
	if errors.As(err, &appErr) {
		return appErr.Code, appErr.UserMsg, true
	}
	return 0, "", false
}

// Storage claims PostgreSQL errors by SQLSTATE.
func Storage(err error) (int, string, bool) {
	switch pgerr.Code(err) {
	case pgerr.InvalidTextRepresentation, pgerr.NumericValueOutOfRange, pgerr.SyntaxError, pgerr.UndefinedColumn, pgerr.NotNullViolation:
		return http.StatusBadRequest, MsgBadRequest, true
	case pgerr.ForeignKeyViolation:
		return http.StatusNotFound, MsgNotFound, true
	default:
		return 0, "", false
	}
}

// Fallback claims everything.
func Fallback(error) (int, string, bool) {
	return http.StatusInternalServerError, MsgInternal, true
}

// NotFoundRoute answers requests that match no route.
func NotFoundRoute(w http.ResponseWriter, _ *http.Request) {
	metrics.RecordAPIError("route", strconv.Itoa(http.StatusNotFound))
	respond.Message(w, http.StatusNotFound, MsgPathNotFound)
}
