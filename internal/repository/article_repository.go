package repository

import (
	"context"

	"ncnews/internal/common/pagination"
	"ncnews/internal/domain/criteria"
	"ncnews/internal/domain/entity"
)

// ArticleFilters contains optional filters for listing articles.
// Empty strings mean "no filter".
type ArticleFilters struct {
	Topic  string // Filter by topic slug
	Author string // Filter by author username
}

// ArticleListQuery bundles the validated modifiers of an article list request.
type ArticleListQuery struct {
	Filters ArticleFilters
	Sort    criteria.Sort
	Page    pagination.Params
}

type ArticleRepository interface {
	// Get returns the article with its comment_count.
	// Returns *entity.NotFoundError when no article has the id.
	Get(ctx context.Context, id int64) (*entity.Article, error)
	// List returns the articles matching q, each with its comment_count.
	// Zero matches is an empty slice, never an error.
	List(ctx context.Context, q ArticleListQuery) ([]*entity.Article, error)
	// Count returns the number of articles matching filters, ignoring pagination.
	Count(ctx context.Context, filters ArticleFilters) (int64, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, article entity.NewArticle) (*entity.Article, error)
	// AddVotes increments votes by delta and returns the updated article.
	AddVotes(ctx context.Context, id int64, delta int) (*entity.Article, error)
}
