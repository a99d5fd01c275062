package pagination

import "ncnews/pkg/config"

// Config holds pagination defaults for list endpoints.
type Config struct {
	DefaultPage  int // Page used when only "limit" is supplied
	DefaultLimit int // Page size used when only "p" is supplied
	MaxLimit     int // Largest accepted "limit"
}

// DefaultConfig returns the defaults used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		DefaultPage:  1,
		DefaultLimit: 10,
		MaxLimit:     100,
	}
}

// LoadFromEnv loads pagination settings from the environment:
//
//	PAGINATION_DEFAULT_PAGE  (default 1)
//	PAGINATION_DEFAULT_LIMIT (default 10)
//	PAGINATION_MAX_LIMIT     (default 100)
func LoadFromEnv() Config {
	d := DefaultConfig()
	return Config{
		DefaultPage:  config.GetEnvInt("PAGINATION_DEFAULT_PAGE", d.DefaultPage),
		DefaultLimit: config.GetEnvInt("PAGINATION_DEFAULT_LIMIT", d.DefaultLimit),
		MaxLimit:     config.GetEnvInt("PAGINATION_MAX_LIMIT", d.MaxLimit),
	}
}
