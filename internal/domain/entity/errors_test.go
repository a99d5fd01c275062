package entity

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		message  string
		expected string
	}{
		{
			name:     "required field error",
			field:    "username",
			message:  "required",
			expected: "validation error on field 'username': required",
		},
		{
			name:     "sort key error",
			field:    "sort_by",
			message:  "unsupported value \"Kimiko\"",
			expected: "validation error on field 'sort_by': unsupported value \"Kimiko\"",
		},
		{
			name:     "empty field name",
			field:    "",
			message:  "test message",
			expected: "validation error on field '': test message",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := &ValidationError{
				Field:   tt.field,
				Message: tt.message,
			}

			assert.Equal(t, tt.expected, err.Error())
		})
	}
}

func TestValidationError_UnwrapsToInvalidInput(t *testing.T) {
	var err error = &ValidationError{Field: "order", Message: "bad"}
	wrapped := fmt.Errorf("list: %w", err)

	assert.True(t, errors.Is(wrapped, ErrInvalidInput))
	assert.False(t, errors.Is(wrapped, ErrNotFound))

	var ve *ValidationError
	assert.True(t, errors.As(wrapped, &ve))
	assert.Equal(t, "order", ve.Field)
}

func TestNotFoundError(t *testing.T) {
	tests := []struct {
		name     string
		err      *NotFoundError
		expected string
	}{
		{"article", NewNotFound("article", int64(9999)), "article not found"},
		{"topic", NewNotFound("topic", "not-a-topic"), "topic not found"},
		{"user", NewNotFound("user", "nobody"), "user not found"},
		{"unnamed resource", &NotFoundError{}, "not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
			assert.True(t, errors.Is(fmt.Errorf("get: %w", tt.err), ErrNotFound))
		})
	}
}
