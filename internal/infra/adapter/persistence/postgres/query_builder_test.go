package postgres_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"ncnews/internal/common/pagination"
	"ncnews/internal/domain/criteria"
	"ncnews/internal/infra/adapter/persistence/postgres"
)

/* ──────────────────────────── QueryBuilder ──────────────────────────── */

func TestQueryBuilder_BaseOnly(t *testing.T) {
	query, args := postgres.NewQuery("  SELECT slug FROM topics\n").Build()

	if query != "SELECT slug FROM topics" {
		t.Errorf("query = %q", query)
	}
	if len(args) != 0 {
		t.Errorf("args should be empty, got %v", args)
	}
}

func TestQueryBuilder_Build(t *testing.T) {
	sortVotes := criteria.Sort{Column: "articles.votes", Direction: criteria.Asc}

	tests := []struct {
		name      string
		build     func() *postgres.QueryBuilder
		wantQuery string
		wantArgs  []interface{}
	}{
		{
			name: "single filter",
			build: func() *postgres.QueryBuilder {
				return postgres.NewQuery("SELECT * FROM articles").Where("topic", "mitch")
			},
			wantQuery: "SELECT * FROM articles\nWHERE topic = $1",
			wantArgs:  []interface{}{"mitch"},
		},
		{
			name: "two filters are ANDed in call order",
			build: func() *postgres.QueryBuilder {
				return postgres.NewQuery("SELECT * FROM articles").
					Where("topic", "mitch").
					Where("author", "rogersop")
			},
			wantQuery: "SELECT * FROM articles\nWHERE topic = $1 AND author = $2",
			wantArgs:  []interface{}{"mitch", "rogersop"},
		},
		{
			name: "group, order and page",
			build: func() *postgres.QueryBuilder {
				return postgres.NewQuery("SELECT * FROM articles").
					Where("topic", "cats").
					GroupBy("articles.article_id").
					OrderBy(sortVotes, "articles.article_id").
					Paginate(pagination.Params{Page: 3, Limit: 5})
			},
			wantQuery: "SELECT * FROM articles\nWHERE topic = $1\nGROUP BY articles.article_id\n" +
				"ORDER BY articles.votes ASC, articles.article_id ASC\nLIMIT $2 OFFSET $3",
			wantArgs: []interface{}{"cats", 5, 10},
		},
		{
			name: "page without filter starts at $1",
			build: func() *postgres.QueryBuilder {
				return postgres.NewQuery("SELECT * FROM comments").
					OrderBy(criteria.Sort{Column: "comments.created_at", Direction: criteria.Desc}).
					Paginate(pagination.Params{Page: 1, Limit: 10})
			},
			wantQuery: "SELECT * FROM comments\nORDER BY comments.created_at DESC\nLIMIT $1 OFFSET $2",
			wantArgs:  []interface{}{10, 0},
		},
		{
			name: "unpaginated request adds no window",
			build: func() *postgres.QueryBuilder {
				return postgres.NewQuery("SELECT * FROM comments").Paginate(pagination.Params{})
			},
			wantQuery: "SELECT * FROM comments",
			wantArgs:  nil,
		},
		{
			name: "unknown direction falls back to DESC",
			build: func() *postgres.QueryBuilder {
				return postgres.NewQuery("SELECT * FROM articles").
					OrderBy(criteria.Sort{Column: "articles.title", Direction: "; DROP TABLE users"})
			},
			wantQuery: "SELECT * FROM articles\nORDER BY articles.title DESC",
			wantArgs:  nil,
		},
		{
			name: "tiebreaker equal to sort column is skipped",
			build: func() *postgres.QueryBuilder {
				return postgres.NewQuery("SELECT * FROM articles").
					OrderBy(criteria.Sort{Column: "articles.article_id", Direction: criteria.Asc}, "articles.article_id")
			},
			wantQuery: "SELECT * FROM articles\nORDER BY articles.article_id ASC",
			wantArgs:  nil,
		},
		{
			name: "values never reach the SQL text",
			build: func() *postgres.QueryBuilder {
				return postgres.NewQuery("SELECT * FROM articles").Where("topic", "x' OR '1'='1")
			},
			wantQuery: "SELECT * FROM articles\nWHERE topic = $1",
			wantArgs:  []interface{}{"x' OR '1'='1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args := tt.build().Build()
			if query != tt.wantQuery {
				t.Errorf("query =\n%s\nwant\n%s", query, tt.wantQuery)
			}
			if diff := cmp.Diff(tt.wantArgs, args); diff != "" {
				t.Errorf("args mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
