package postgres

import (
	"strconv"
	"strings"

	"ncnews/internal/common/pagination"
	"ncnews/internal/domain/criteria"
)

// QueryBuilder composes a parameterized statement from a base SELECT and
// optional WHERE, GROUP BY, ORDER BY and LIMIT/OFFSET clauses.
//
// Values are never written into the SQL text. Each one is appended to the
// argument list and referenced by its position, so placeholder numbers
// follow from the order of the calls. Column names passed to Where and
// GroupBy must be literals from code; ORDER BY columns must come from a
// criteria.Sort validated against an allow-list.
type QueryBuilder struct {
	base    string
	where   []string
	groupBy []string
	orderBy string
	window  string
	args    []interface{}
}

// NewQuery starts a builder from a base statement, e.g. "SELECT ... FROM t".
func NewQuery(base string) *QueryBuilder {
	return &QueryBuilder{base: strings.TrimSpace(base)}
}

func (qb *QueryBuilder) bind(value interface{}) string {
	qb.args = append(qb.args, value)
	return "$" + strconv.Itoa(len(qb.args))
}

// Where adds an equality predicate. Predicates are joined with AND.
func (qb *QueryBuilder) Where(column string, value interface{}) *QueryBuilder {
	qb.where = append(qb.where, column+" = "+qb.bind(value))
	return qb
}

// GroupBy sets the GROUP BY columns.
func (qb *QueryBuilder) GroupBy(columns ...string) *QueryBuilder {
	qb.groupBy = append(qb.groupBy, columns...)
	return qb
}

// OrderBy sets the ORDER BY clause. Tiebreakers follow the primary column in
// the same direction so that pages are stable. An unknown direction falls
// back to criteria.DefaultDirection.
func (qb *QueryBuilder) OrderBy(sort criteria.Sort, tiebreakers ...string) *QueryBuilder {
	if sort.Column == "" {
		return qb
	}
	dir := sort.Direction
	if dir != criteria.Asc && dir != criteria.Desc {
		dir = criteria.DefaultDirection
	}

	terms := make([]string, 0, 1+len(tiebreakers))
	terms = append(terms, sort.Column+" "+string(dir))
	for _, col := range tiebreakers {
		if col != sort.Column {
			terms = append(terms, col+" "+string(dir))
		}
	}
	qb.orderBy = strings.Join(terms, ", ")
	return qb
}

// Paginate adds LIMIT/OFFSET when a page window was requested.
func (qb *QueryBuilder) Paginate(page pagination.Params) *QueryBuilder {
	if !page.Enabled() {
		return qb
	}
	qb.window = "LIMIT " + qb.bind(page.Limit) + " OFFSET " + qb.bind(page.Offset())
	return qb
}

// Build returns the statement and its bound arguments.
func (qb *QueryBuilder) Build() (string, []interface{}) {
	parts := []string{qb.base}
	if len(qb.where) > 0 {
		parts = append(parts, "WHERE "+strings.Join(qb.where, " AND "))
	}
	if len(qb.groupBy) > 0 {
		parts = append(parts, "GROUP BY "+strings.Join(qb.groupBy, ", "))
	}
	if qb.orderBy != "" {
		parts = append(parts, "ORDER BY "+qb.orderBy)
	}
	if qb.window != "" {
		parts = append(parts, qb.window)
	}
	return strings.Join(parts, "\n"), qb.args
}
