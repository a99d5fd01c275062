package config

import (
	"cmp"
	"errors"
	"fmt"
	"time"
)

// ErrInvalidSetting is wrapped by every validation failure in this package.
var ErrInvalidSetting = errors.New("invalid setting")

// RequirePositive fails when d is zero or negative.
func RequirePositive(key string, d time.Duration) error {
	if d <= 0 {
		return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidSetting, key, d)
	}
	return nil
}

// RequireNonNegative fails when d is negative. Zero usually means "off".
func RequireNonNegative(key string, d time.Duration) error {
	if d < 0 {
		return fmt.Errorf("%w: %s must not be negative, got %v", ErrInvalidSetting, key, d)
	}
	return nil
}

// RequireRange fails unless lo <= v <= hi.
func RequireRange[T cmp.Ordered](key string, v, lo, hi T) error {
	if lo > hi {
		return fmt.Errorf("%w: %s has an empty range [%v, %v]", ErrInvalidSetting, key, lo, hi)
	}
	if v < lo || v > hi {
		return fmt.Errorf("%w: %s must be within [%v, %v], got %v", ErrInvalidSetting, key, lo, hi, v)
	}
	return nil
}

// RequireOneOf fails unless v is one of allowed.
func RequireOneOf(key, v string, allowed ...string) error {
	for _, a := range allowed {
		if v == a {
			return nil
		}
	}
	return fmt.Errorf("%w: %s must be one of %v, got %q", ErrInvalidSetting, key, allowed, v)
}
