// Package request decodes and validates JSON request bodies.
package request

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"ncnews/internal/domain/entity"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validator returns the shared validator. Field names in its errors are the
// JSON names of the struct fields.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// Decode reads a JSON object from r's body into dst and validates it against
// dst's `validate` tags. Every failure is an *entity.ValidationError.
func Decode(r *http.Request, dst any) error {
	if r.Body == nil {
		return &entity.ValidationError{Field: "body", Message: "request body is required"}
	}

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		return decodeError(err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return &entity.ValidationError{Field: "body", Message: "must contain a single JSON object"}
	}

	return Validate(dst)
}

// Validate runs the struct validator on v.
func Validate(v any) error {
	err := Validator().Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return &entity.ValidationError{Field: fe.Field(), Message: describe(fe)}
	}
	return &entity.ValidationError{Field: "body", Message: err.Error()}
}

func decodeError(err error) error {
	var (
		typeErr *json.UnmarshalTypeError
		sizeErr *http.MaxBytesError
	)
	switch {
	case errors.Is(err, io.EOF):
		return &entity.ValidationError{Field: "body", Message: "request body is required"}
	case errors.As(err, &typeErr):
		return &entity.ValidationError{
			Field:   typeErr.Field,
			Message: fmt.Sprintf("must be %s", typeErr.Type.Kind()),
		}
	case errors.As(err, &sizeErr):
		return &entity.ValidationError{
			Field:   "body",
			Message: fmt.Sprintf("must be at most %d bytes", sizeErr.Limit),
		}
	default:
		return &entity.ValidationError{Field: "body", Message: "malformed JSON"}
	}
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required"
	case "url", "http_url":
		return "must be a valid URL"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	default:
		return "failed " + fe.Tag() + " check"
	}
}

// Vote is the body of PATCH /api/articles/{id} and /api/comments/{id}.
// IncVotes is a pointer so that an explicit 0 passes "required", and an
// int32 to match the INT votes columns.
type Vote struct {
	IncVotes *int32 `json:"inc_votes" validate:"required" example:"1"`
}
