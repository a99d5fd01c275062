package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"

	"ncnews/internal/config"
	pgRepo "ncnews/internal/infra/adapter/persistence/postgres"
	"ncnews/internal/infra/db"
	"ncnews/internal/observability/logging"
	"ncnews/internal/observability/tracing"
	"ncnews/internal/resilience/circuitbreaker"

	artUC "ncnews/internal/usecase/article"
	cmtUC "ncnews/internal/usecase/comment"
	topUC "ncnews/internal/usecase/topic"
	usrUC "ncnews/internal/usecase/user"

	hhttp "ncnews/internal/handler/http"
	"ncnews/internal/handler/http/middleware"

	_ "ncnews/docs" // swagger docs
)

// @title           NC News API
// @version         1.0
// @description     Topics, articles, comments and users of a small news site.
// @description     Every error body has the shape {"msg": "..."}.

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:9090
// @BasePath  /

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to read .env", slog.Any("error", err))
	}

	logger := logging.NewLogger()
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("server exited", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tp := tracing.Setup(cfg.Version)
	defer func() {
		if err := tp.Shutdown(context.Background()); err != nil {
			logger.Warn("tracer shutdown failed", slog.Any("error", err))
		}
	}()

	database, err := initDatabase(ctx, logger, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	handler, err := setupRouter(logger, cfg, circuitbreaker.NewDBWithConfig(database, cfg.Breaker))
	if err != nil {
		return err
	}

	return serve(ctx, logger, cfg, handler)
}

// initDatabase opens the pool and applies migrations and the seed when
// asked to.
func initDatabase(ctx context.Context, logger *slog.Logger, cfg *config.AppConfig) (*sqlx.DB, error) {
	database, err := db.Open(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}

	steps := []struct {
		enabled bool
		command string
	}{
		{cfg.MigrateOnStart, db.CommandUp},
		{cfg.SeedOnStart, db.CommandSeed},
	}
	for _, s := range steps {
		if !s.enabled {
			continue
		}
		if err := db.Migrate(ctx, database.DB, s.command); err != nil {
			_ = database.Close()
			return nil, err
		}
		logger.Info("database step applied", slog.String("command", s.command))
	}
	return database, nil
}

// setupRouter wires repositories, use cases and handlers.
func setupRouter(logger *slog.Logger, cfg *config.AppConfig, database *circuitbreaker.DB) (http.Handler, error) {
	topics := pgRepo.NewTopicRepo(database)
	users := pgRepo.NewUserRepo(database)
	articles := pgRepo.NewArticleRepo(database)
	comments := pgRepo.NewCommentRepo(database)

	svcs := hhttp.Services{
		Topics:   &topUC.Service{Repo: topics},
		Users:    &usrUC.Service{Repo: users},
		Articles: &artUC.Service{Articles: articles, Topics: topics, Users: users},
		Comments: &cmtUC.Service{Comments: comments, Articles: articles, Users: users},
	}

	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowedOrigins = cfg.CORSOrigins
	corsCfg.Logger = logger
	if len(cfg.CORSOrigins) == 0 {
		logger.Info("CORS disabled")
	} else {
		logger.Info("CORS enabled", slog.Any("allowed_origins", cfg.CORSOrigins))
	}

	router, err := hhttp.NewRouter(hhttp.Options{
		Logger:         logger,
		DB:             database,
		Version:        cfg.Version,
		Pagination:     cfg.Pagination,
		MaxBodyBytes:   cfg.Server.MaxBodyBytes,
		RequestTimeout: cfg.Server.RequestTimeout,
		CORS:           corsCfg,
		Swagger:        cfg.Swagger,
	}, svcs)
	if err != nil {
		return nil, err
	}
	return router, nil
}

// serve runs the server until ctx is cancelled, then drains in-flight
// requests for at most ShutdownTimeout.
func serve(ctx context.Context, logger *slog.Logger, cfg *config.AppConfig, handler http.Handler) error {
	srv := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		BaseContext: func(_ net.Listener) context.Context {
			return context.WithoutCancel(ctx)
		},
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting",
			slog.String("addr", srv.Addr),
			slog.String("version", cfg.Version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	logger.Info("server stopped")
	return nil
}
