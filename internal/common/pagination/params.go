package pagination

import (
	"fmt"
	"net/http"
	"strconv"

	"ncnews/internal/domain/entity"
)

// Params is the requested page window. The zero value means the whole
// collection is returned.
type Params struct {
	Page  int // 1-based page number
	Limit int // Items per page, 0 when unpaginated
}

// Enabled reports whether a page window was requested.
func (p Params) Enabled() bool { return p.Limit > 0 }

// Offset returns the number of rows to skip.
func (p Params) Offset() int { return CalculateOffset(p.Page, p.Limit) }

// ParseQueryParams reads the "limit" and "p" query parameters.
// Neither present leaves the result unpaginated. "p" alone pages with the
// configured default limit. Any value that is not a positive integer, or a
// limit above MaxLimit, yields an *entity.ValidationError.
func ParseQueryParams(r *http.Request, config Config) (Params, error) {
	q := r.URL.Query()
	limitStr, pageStr := q.Get("limit"), q.Get("p")
	if limitStr == "" && pageStr == "" {
		return Params{}, nil
	}

	params := Params{
		Page:  config.DefaultPage,
		Limit: config.DefaultLimit,
	}

	if pageStr != "" {
		page, err := strconv.Atoi(pageStr)
		if err != nil || page < 1 {
			return Params{}, &entity.ValidationError{Field: "p", Message: "must be a positive integer"}
		}
		params.Page = page
	}

	if limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 || limit > config.MaxLimit {
			return Params{}, &entity.ValidationError{
				Field:   "limit",
				Message: fmt.Sprintf("must be between 1 and %d", config.MaxLimit),
			}
		}
		params.Limit = limit
	}

	return params, nil
}
