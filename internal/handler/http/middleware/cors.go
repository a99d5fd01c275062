// Package middleware holds optional cross-origin support for browser
// clients of the API.
package middleware

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
)

// CORSConfig holds the configuration for CORS middleware.
type CORSConfig struct {
	// AllowedOrigins is the origin allow-list. "*" allows any origin.
	// Example: ["http://localhost:3000", "https://ncnews.example.com"]
	AllowedOrigins []string

	// AllowedMethods is sent on preflight responses.
	AllowedMethods []string

	// AllowedHeaders is sent on preflight responses.
	AllowedHeaders []string

	// MaxAge is how long, in seconds, a preflight result may be cached.
	MaxAge int

	// Logger receives rejected origins at WARN and preflights at DEBUG.
	// Nil disables logging.
	Logger *slog.Logger
}

// DefaultCORSConfig returns the methods and headers the API uses, with no
// allowed origins.
func DefaultCORSConfig() CORSConfig {
	return CORSConfig{
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{"Content-Type", "X-Request-ID"},
		MaxAge:         86400,
	}
}

// CORS returns an HTTP middleware that handles CORS for cross-origin requests.
//
// Behavior:
//   - No Origin header: passed through untouched (same-origin request)
//   - Origin not allowed: logged and passed through without CORS headers,
//     so the browser blocks the response
//   - Allowed preflight (OPTIONS): answered with 204 and the preflight headers;
//     next is not called
//   - Allowed actual request: Access-Control-Allow-Origin is set and the
//     request is passed on
//
// An empty AllowedOrigins disables the middleware.
func CORS(config CORSConfig) func(http.Handler) http.Handler {
	validator := NewWhitelistValidator(config.AllowedOrigins)

	return func(next http.Handler) http.Handler {
		if len(validator.GetAllowedOrigins()) == 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin == "" {
				next.ServeHTTP(w, r)
				return
			}

			if !validator.IsAllowed(origin) {
				if config.Logger != nil {
					config.Logger.Warn("CORS: origin not allowed",
						slog.String("origin", origin),
						slog.String("path", r.URL.Path),
						slog.String("method", r.Method),
						slog.String("remote_addr", r.RemoteAddr))
				}
				next.ServeHTTP(w, r)
				return
			}

			h := w.Header()
			h.Add("Vary", "Origin")
			if validator.AllowsAny() {
				h.Set("Access-Control-Allow-Origin", "*")
			} else {
				h.Set("Access-Control-Allow-Origin", origin)
			}

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				h.Set("Access-Control-Allow-Methods", strings.Join(config.AllowedMethods, ", "))
				h.Set("Access-Control-Allow-Headers", strings.Join(config.AllowedHeaders, ", "))
				h.Set("Access-Control-Max-Age", strconv.Itoa(config.MaxAge))

				if config.Logger != nil {
					config.Logger.Debug("CORS: preflight request",
						slog.String("origin", origin),
						slog.String("requested_method", r.Header.Get("Access-Control-Request-Method")),
						slog.String("requested_headers", r.Header.Get("Access-Control-Request-Headers")))
				}

				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
