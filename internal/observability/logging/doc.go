// Package logging builds the service's slog loggers and carries a
// request-scoped logger through the context.
//
//	logger := logging.NewLogger()
//	logger.Info("server starting", slog.String("addr", ":9090"))
//
//	log := logging.WithRequestID(r.Context(), logger)
//	log.Error("unexpected error", slog.Any("error", err))
package logging
