// Package config assembles the API server settings from the environment.
package config

import (
	"errors"
	"math"
	"strconv"
	"time"

	"ncnews/internal/common/pagination"
	"ncnews/internal/infra/db"
	"ncnews/internal/resilience/circuitbreaker"
	"ncnews/pkg/config"
)

// DefaultPort matches the port the service has always listened on.
const DefaultPort = 9090

// ServerConfig holds net/http server and middleware limits.
type ServerConfig struct {
	Port              int
	ReadHeaderTimeout time.Duration
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	ShutdownTimeout   time.Duration
	RequestTimeout    time.Duration // 0 disables the per-request deadline
	MaxBodyBytes      int64
}

// Addr is the listen address for Port.
func (s ServerConfig) Addr() string {
	return ":" + strconv.Itoa(s.Port)
}

// AppConfig is everything cmd/api needs to start.
type AppConfig struct {
	Version string
	Server  ServerConfig

	DB             db.Config
	Breaker        circuitbreaker.Config
	MigrateOnStart bool
	SeedOnStart    bool

	Pagination  pagination.Config
	CORSOrigins []string
	Swagger     bool
}

// Load reads the environment and validates the result. Unparsable values
// have already fallen back to their defaults by the time Validate runs, so
// errors here are about values that parse but make no sense.
func Load() (*AppConfig, error) {
	breaker := circuitbreaker.DBConfig()
	breaker.MaxRequests = envUint32("DB_BREAKER_MAX_REQUESTS", breaker.MaxRequests)
	breaker.MinRequests = envUint32("DB_BREAKER_MIN_REQUESTS", breaker.MinRequests)
	breaker.Interval = config.GetEnvDuration("DB_BREAKER_INTERVAL", breaker.Interval)
	breaker.Timeout = config.GetEnvDuration("DB_BREAKER_TIMEOUT", breaker.Timeout)

	cfg := &AppConfig{
		Version: config.GetEnvString("APP_VERSION", "dev"),
		Server: ServerConfig{
			Port:              config.GetEnvInt("PORT", DefaultPort),
			ReadHeaderTimeout: config.GetEnvDuration("HTTP_READ_HEADER_TIMEOUT", 10*time.Second),
			ReadTimeout:       config.GetEnvDuration("HTTP_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:      config.GetEnvDuration("HTTP_WRITE_TIMEOUT", 30*time.Second),
			IdleTimeout:       config.GetEnvDuration("HTTP_IDLE_TIMEOUT", 60*time.Second),
			ShutdownTimeout:   config.GetEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
			RequestTimeout:    config.GetEnvDuration("REQUEST_TIMEOUT", 20*time.Second),
			MaxBodyBytes:      config.GetEnvInt64("MAX_BODY_BYTES", 1<<20),
		},
		DB:             db.ConfigFromEnv(),
		Breaker:        breaker,
		MigrateOnStart: config.GetEnvBool("DB_MIGRATE", false),
		SeedOnStart:    config.GetEnvBool("DB_SEED", false),
		Pagination:     pagination.LoadFromEnv(),
		CORSOrigins:    config.GetEnvStringList("CORS_ALLOWED_ORIGINS", nil),
		Swagger:        config.GetEnvBool("SWAGGER_ENABLED", true),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports every problem at once.
func (c *AppConfig) Validate() error {
	var errs []error
	add := func(err error) {
		if err != nil {
			errs = append(errs, err)
		}
	}

	if c.DB.DSN == "" {
		add(db.ErrMissingDSN)
	}
	add(config.RequireOneOf("DB_DRIVER", c.DB.Driver, db.DriverPgx, db.DriverPq))
	add(config.RequireRange("PORT", c.Server.Port, 1, 65535))

	add(config.RequirePositive("HTTP_READ_HEADER_TIMEOUT", c.Server.ReadHeaderTimeout))
	add(config.RequireNonNegative("HTTP_READ_TIMEOUT", c.Server.ReadTimeout))
	add(config.RequireNonNegative("HTTP_WRITE_TIMEOUT", c.Server.WriteTimeout))
	add(config.RequireNonNegative("HTTP_IDLE_TIMEOUT", c.Server.IdleTimeout))
	add(config.RequirePositive("SHUTDOWN_TIMEOUT", c.Server.ShutdownTimeout))
	add(config.RequireNonNegative("REQUEST_TIMEOUT", c.Server.RequestTimeout))
	add(config.RequireRange("MAX_BODY_BYTES", c.Server.MaxBodyBytes, 1, math.MaxInt64))

	add(config.RequirePositive("DB_BREAKER_TIMEOUT", c.Breaker.Timeout))
	add(config.RequireNonNegative("DB_BREAKER_INTERVAL", c.Breaker.Interval))

	add(config.RequireRange("PAGINATION_DEFAULT_PAGE", c.Pagination.DefaultPage, 1, math.MaxInt32))
	add(config.RequireRange("PAGINATION_MAX_LIMIT", c.Pagination.MaxLimit, 1, math.MaxInt32))
	add(config.RequireRange("PAGINATION_DEFAULT_LIMIT", c.Pagination.DefaultLimit, 1, c.Pagination.MaxLimit))

	return errors.Join(errs...)
}

func envUint32(key string, def uint32) uint32 {
	v := config.GetEnvInt(key, int(def))
	if v < 0 || uint64(v) > math.MaxUint32 {
		return def
	}
	return uint32(v)
}
