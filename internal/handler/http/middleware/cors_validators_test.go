package middleware

import (
	"testing"
)

func TestWhitelistValidator_IsAllowed(t *testing.T) {
	validator := NewWhitelistValidator([]string{
		"http://localhost:3000",
		" https://ncnews.example.com/ ",
		"",
	})

	testCases := []struct {
		name     string
		origin   string
		expected bool
	}{
		{"allowed localhost", "http://localhost:3000", true},
		{"allowed after normalization", "https://ncnews.example.com", true},
		{"uppercase scheme", "HTTP://localhost:3000", true},
		{"mixed case host", "http://LoCaLhOsT:3000", true},
		{"trailing slash", "http://localhost:3000/", true},
		{"disallowed origin", "http://malicious.com", false},
		{"disallowed subdomain", "http://api.ncnews.example.com", false},
		{"different port", "http://localhost:3001", false},
		{"empty", "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := validator.IsAllowed(tc.origin)
			if result != tc.expected {
				t.Errorf("IsAllowed(%q) = %v, expected %v", tc.origin, result, tc.expected)
			}
		})
	}
}

func TestWhitelistValidator_Wildcard(t *testing.T) {
	validator := NewWhitelistValidator([]string{"*"})

	if !validator.AllowsAny() {
		t.Fatal("expected AllowsAny for \"*\"")
	}
	if !validator.IsAllowed("https://anything.example") {
		t.Error("expected any origin to be allowed")
	}
	if validator.IsAllowed("") {
		t.Error("empty origin must never be allowed")
	}
}

func TestWhitelistValidator_GetAllowedOrigins(t *testing.T) {
	validator := NewWhitelistValidator([]string{"HTTP://Localhost:3000/", "  "})

	got := validator.GetAllowedOrigins()
	if len(got) != 1 || got[0] != "http://localhost:3000" {
		t.Fatalf("GetAllowedOrigins() = %v", got)
	}

	got[0] = "mutated"
	if validator.GetAllowedOrigins()[0] != "http://localhost:3000" {
		t.Error("GetAllowedOrigins must return a copy")
	}
}
