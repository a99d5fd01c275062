package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"ncnews/internal/common/pagination"
	"ncnews/internal/handler/http/apierror"
	"ncnews/internal/handler/http/article"
	"ncnews/internal/handler/http/catalogue"
	"ncnews/internal/handler/http/comment"
	"ncnews/internal/handler/http/middleware"
	"ncnews/internal/handler/http/requestid"
	"ncnews/internal/handler/http/topic"
	"ncnews/internal/handler/http/user"
	"ncnews/internal/observability/tracing"
)

// Registration steps, in the order NewRouter performs them.
const (
	StepMiddleware = "middleware"
	StepOps        = "ops"
	StepRoutes     = "routes"
	StepCatchAll   = "catch-all"
	StepNormalizer = "normalizer"
)

// DefaultMaxBodyBytes caps request bodies when Options leaves it unset.
const DefaultMaxBodyBytes = 1 << 20

// Services are the use cases behind the resource routes.
type Services struct {
	Topics   topic.Service
	Articles article.Service
	Comments comment.Service
	Users    user.Service
}

// Options configures NewRouter. Zero values are usable: no CORS, no
// request timeout, no swagger UI, 1MB body cap.
type Options struct {
	Logger         *slog.Logger
	DB             DBProbe
	Version        string
	Pagination     pagination.Config
	MaxBodyBytes   int64
	RequestTimeout time.Duration
	CORS           middleware.CORSConfig
	Swagger        bool
}

// Router is the assembled HTTP handler.
type Router struct {
	chi.Router

	// Errors is the normalizer every resource handler reports to.
	Errors *apierror.Chain

	steps []string
}

// Steps returns the registration steps in the order they ran.
func (rt *Router) Steps() []string {
	out := make([]string, len(rt.steps))
	copy(out, rt.steps)
	return out
}

func (rt *Router) step(name string) {
	rt.steps = append(rt.steps, name)
}

// NewRouter wires middleware, the ops endpoints, every /api route, the
// catch-all and finally the error normalizer. Resource handlers only hold a
// reference to the normalizer; its stages are fixed once the catch-all is
// in place.
func NewRouter(opts Options, svcs Services) (*Router, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	maxBody := opts.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = DefaultMaxBodyBytes
	}
	if opts.Pagination == (pagination.Config{}) {
		opts.Pagination = pagination.DefaultConfig()
	}
	if opts.CORS.Logger == nil {
		opts.CORS.Logger = logger
	}

	r := chi.NewRouter()
	rt := &Router{Router: r, Errors: apierror.Default(logger)}

	// outermost first; Recover must wrap Timeout, which re-panics on the
	// serving goroutine
	r.Use(
		requestid.Middleware,
		tracing.Middleware,
		MetricsMiddleware,
		Logging(logger),
		Recover(logger),
		middleware.CORS(opts.CORS),
		LimitRequestBody(maxBody),
		Timeout(opts.RequestTimeout),
	)
	rt.step(StepMiddleware)

	r.Method(http.MethodGet, "/health", &HealthHandler{DB: opts.DB, Version: opts.Version})
	r.Method(http.MethodGet, "/ready", &ReadyHandler{DB: opts.DB})
	r.Method(http.MethodGet, "/live", &LiveHandler{})
	r.Method(http.MethodGet, "/metrics", MetricsHandler())
	if opts.Swagger {
		r.Get("/swagger/*", httpSwagger.WrapHandler)
	}
	rt.step(StepOps)

	var routeErr error
	r.Route("/api", func(api chi.Router) {
		if err := catalogue.Register(api); err != nil {
			routeErr = err
			return
		}
		topic.Register(api, svcs.Topics, rt.Errors)
		article.Register(api, svcs.Articles, opts.Pagination, rt.Errors)
		comment.Register(api, svcs.Comments, opts.Pagination, rt.Errors)
		user.Register(api, svcs.Users, rt.Errors)
	})
	if routeErr != nil {
		return nil, fmt.Errorf("register routes: %w", routeErr)
	}
	rt.step(StepRoutes)

	// chi propagates these to the /api sub-router
	r.NotFound(apierror.NotFoundRoute)
	r.MethodNotAllowed(apierror.NotFoundRoute)
	rt.step(StepCatchAll)

	logger.Debug("error normalizer attached", slog.Any("stages", rt.Errors.Names()))
	rt.step(StepNormalizer)

	return rt, nil
}
