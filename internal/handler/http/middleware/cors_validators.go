package middleware

import (
	"strings"
)

// WhitelistValidator matches origins against an allow-list, ignoring case
// and a trailing slash. The entry "*" matches every origin.
type WhitelistValidator struct {
	allowedOrigins []string
	any            bool
}

// NewWhitelistValidator normalizes origins and drops empty entries.
func NewWhitelistValidator(origins []string) *WhitelistValidator {
	v := &WhitelistValidator{allowedOrigins: make([]string, 0, len(origins))}
	for _, origin := range origins {
		origin = normalizeOrigin(origin)
		if origin == "" {
			continue
		}
		if origin == "*" {
			v.any = true
		}
		v.allowedOrigins = append(v.allowedOrigins, origin)
	}
	return v
}

// IsAllowed reports whether origin may make cross-origin requests.
func (v *WhitelistValidator) IsAllowed(origin string) bool {
	origin = normalizeOrigin(origin)
	if origin == "" {
		return false
	}
	if v.any {
		return true
	}
	for _, allowed := range v.allowedOrigins {
		if origin == allowed {
			return true
		}
	}
	return false
}

// AllowsAny reports whether the allow-list contains "*".
func (v *WhitelistValidator) AllowsAny() bool {
	return v.any
}

// GetAllowedOrigins returns a copy of the normalized allow-list.
func (v *WhitelistValidator) GetAllowedOrigins() []string {
	out := make([]string, len(v.allowedOrigins))
	copy(out, v.allowedOrigins)
	return out
}

func normalizeOrigin(origin string) string {
	origin = strings.ToLower(strings.TrimSpace(origin))
	return strings.TrimSuffix(origin, "/")
}
