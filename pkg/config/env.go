// Package config reads typed settings from the environment.
//
// Every getter treats an unset or empty variable as "use the default". A
// value that is set but unparsable also falls back to the default and logs
// a warning through the default slog logger, so a typo never stops the
// server from starting with sane settings.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// GetEnvString returns the variable or def when it is unset or empty.
func GetEnvString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// GetEnvInt parses the variable as a base-10 integer.
func GetEnvInt(key string, def int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		warnFallback(key, raw, strconv.Itoa(def), err)
		return def
	}
	return v
}

// GetEnvInt64 is GetEnvInt for sizes that may not fit an int on 32-bit
// platforms, such as byte limits.
func GetEnvInt64(key string, def int64) int64 {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		warnFallback(key, raw, strconv.FormatInt(def, 10), err)
		return def
	}
	return v
}

// GetEnvBool accepts the spellings strconv.ParseBool does ("1", "true",
// "F", ...).
func GetEnvBool(key string, def bool) bool {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	v, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		warnFallback(key, raw, strconv.FormatBool(def), err)
		return def
	}
	return v
}

// GetEnvDuration parses the variable with time.ParseDuration ("30s", "1m30s").
func GetEnvDuration(key string, def time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	v, err := time.ParseDuration(strings.TrimSpace(raw))
	if err != nil {
		warnFallback(key, raw, def.String(), err)
		return def
	}
	return v
}

// GetEnvStringList splits a comma-separated variable, trimming blanks and
// dropping empty items. def is returned when nothing is left.
//
//	CORS_ALLOWED_ORIGINS="http://localhost:3000, https://ncnews.example.com"
func GetEnvStringList(key string, def []string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}

	var out []string
	for _, part := range strings.Split(raw, ",") {
		if s := strings.TrimSpace(part); s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

func warnFallback(key, raw, def string, err error) {
	slog.Warn("invalid environment value, using default",
		slog.String("key", key),
		slog.String("value", raw),
		slog.String("default", def),
		slog.Any("error", err))
}
