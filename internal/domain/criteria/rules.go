// Package criteria holds the allow-lists that decide which client-supplied
// strings may shape a query: sortable columns and order directions.
//
// Every rule is a pure function. Values that pass a rule are safe to place
// in SQL text; everything else is rejected with an *entity.ValidationError
// before a query is built.
package criteria

import (
	"fmt"
	"strings"

	"ncnews/internal/domain/entity"
)

// Direction is a validated ORDER BY direction.
type Direction string

const (
	Asc  Direction = "ASC"
	Desc Direction = "DESC"
)

// DefaultSortField is used when a list request names no sort column.
const DefaultSortField = "created_at"

// DefaultDirection is used when a list request names no order.
const DefaultDirection = Desc

// FieldSet is an allow-list of sortable fields. Keys are the names clients
// send; values are the column expressions placed in the ORDER BY clause.
type FieldSet struct {
	name    string
	columns map[string]string
}

// NewFieldSet builds a named allow-list.
func NewFieldSet(name string, columns map[string]string) FieldSet {
	return FieldSet{name: name, columns: columns}
}

// Allows reports whether field may be sorted on.
func (s FieldSet) Allows(field string) bool {
	_, ok := s.columns[field]
	return ok
}

// Column returns the SQL expression for an allowed field.
func (s FieldSet) Column(field string) (string, bool) {
	col, ok := s.columns[field]
	return col, ok
}

// String names the resource the set belongs to.
func (s FieldSet) String() string { return s.name }

// ArticleSortFields lists the columns an article list may be ordered by.
var ArticleSortFields = NewFieldSet("articles", map[string]string{
	"article_id":    "articles.article_id",
	"title":         "articles.title",
	"topic":         "articles.topic",
	"author":        "articles.author",
	"created_at":    "articles.created_at",
	"votes":         "articles.votes",
	"comment_count": "comment_count",
})

// CommentSortFields lists the columns a comment list may be ordered by.
var CommentSortFields = NewFieldSet("comments", map[string]string{
	"comment_id": "comments.comment_id",
	"author":     "comments.author",
	"created_at": "comments.created_at",
	"votes":      "comments.votes",
})

// Sort is a validated ORDER BY clause.
type Sort struct {
	Column    string
	Direction Direction
}

// ValidateSortField returns the column expression for field, or the default
// column when field is empty. Field names are matched exactly.
func ValidateSortField(fields FieldSet, field string) (string, error) {
	if field == "" {
		field = DefaultSortField
	}
	col, ok := fields.Column(field)
	if !ok {
		return "", &entity.ValidationError{
			Field:   "sort_by",
			Message: fmt.Sprintf("unsupported value %q", field),
		}
	}
	return col, nil
}

// ValidateDirection accepts ASC or DESC in any letter case. An empty value
// yields DefaultDirection.
func ValidateDirection(order string) (Direction, error) {
	if order == "" {
		return DefaultDirection, nil
	}
	switch d := Direction(strings.ToUpper(order)); d {
	case Asc, Desc:
		return d, nil
	default:
		return "", &entity.ValidationError{
			Field:   "order",
			Message: fmt.Sprintf("unsupported value %q", order),
		}
	}
}

// ParseSort validates a sort_by/order pair against fields.
func ParseSort(fields FieldSet, sortBy, order string) (Sort, error) {
	col, err := ValidateSortField(fields, sortBy)
	if err != nil {
		return Sort{}, err
	}
	dir, err := ValidateDirection(order)
	if err != nil {
		return Sort{}, err
	}
	return Sort{Column: col, Direction: dir}, nil
}

// DefaultSort returns created_at DESC for fields.
func DefaultSort(fields FieldSet) Sort {
	col, _ := fields.Column(DefaultSortField)
	return Sort{Column: col, Direction: DefaultDirection}
}
