package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"ncnews/internal/domain/criteria"
	"ncnews/internal/domain/entity"
	"ncnews/internal/repository"
)

type ArticleRepo struct {
	db DB
}

func NewArticleRepo(db DB) repository.ArticleRepository {
	return &ArticleRepo{db: db}
}

// articleSummarySelect is the list projection. The body is omitted and
// comment_count is aggregated over an outer join so articles without
// comments report 0.
const articleSummarySelect = `
SELECT articles.article_id, articles.title, articles.topic, articles.author,
       articles.created_at, articles.votes, articles.article_img_url,
       COUNT(comments.comment_id)::int AS comment_count
FROM articles
LEFT JOIN comments ON comments.article_id = articles.article_id`

const articleDetailSelect = `
SELECT articles.article_id, articles.title, articles.topic, articles.author,
       articles.body, articles.created_at, articles.votes, articles.article_img_url,
       COUNT(comments.comment_id)::int AS comment_count
FROM articles
LEFT JOIN comments ON comments.article_id = articles.article_id`

const articleReturning = `
RETURNING article_id, title, topic, author, body, created_at, votes, article_img_url`

func applyArticleFilters(qb *QueryBuilder, filters repository.ArticleFilters) *QueryBuilder {
	if filters.Topic != "" {
		qb.Where("articles.topic", filters.Topic)
	}
	if filters.Author != "" {
		qb.Where("articles.author", filters.Author)
	}
	return qb
}

func (repo *ArticleRepo) Get(ctx context.Context, id int64) (article *entity.Article, err error) {
	ctx, done := instrument(ctx, "article.get")
	defer done(&err)

	query, args := NewQuery(articleDetailSelect).
		Where("articles.article_id", id).
		GroupBy("articles.article_id").
		Build()

	article, err = getOne[entity.Article](ctx, repo.db, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.NewNotFound("article", id)
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return article, nil
}

func (repo *ArticleRepo) List(ctx context.Context, q repository.ArticleListQuery) (articles []*entity.Article, err error) {
	ctx, done := instrument(ctx, "article.list")
	defer done(&err)

	sort := q.Sort
	if sort.Column == "" {
		sort = criteria.DefaultSort(criteria.ArticleSortFields)
	}

	query, args := applyArticleFilters(NewQuery(articleSummarySelect), q.Filters).
		GroupBy("articles.article_id").
		OrderBy(sort, "articles.article_id").
		Paginate(q.Page).
		Build()

	articles, err = selectAll[entity.Article](ctx, repo.db, query, args...)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	return articles, nil
}

func (repo *ArticleRepo) Count(ctx context.Context, filters repository.ArticleFilters) (n int64, err error) {
	ctx, done := instrument(ctx, "article.count")
	defer done(&err)

	query, args := applyArticleFilters(NewQuery(`SELECT COUNT(*) FROM articles`), filters).Build()
	n, err = scalar[int64](ctx, repo.db, query, args...)
	if err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return n, nil
}

func (repo *ArticleRepo) Exists(ctx context.Context, id int64) (ok bool, err error) {
	ctx, done := instrument(ctx, "article.exists")
	defer done(&err)

	const query = `SELECT EXISTS (SELECT 1 FROM articles WHERE article_id = $1)`
	ok, err = scalar[bool](ctx, repo.db, query, id)
	if err != nil {
		return false, fmt.Errorf("Exists: %w", err)
	}
	return ok, nil
}

func (repo *ArticleRepo) Create(ctx context.Context, a entity.NewArticle) (article *entity.Article, err error) {
	ctx, done := instrument(ctx, "article.create")
	defer done(&err)

	imageURL := a.ImageURL
	if imageURL == "" {
		imageURL = entity.DefaultArticleImageURL
	}

	const query = `
INSERT INTO articles (title, topic, author, body, article_img_url)
VALUES ($1, $2, $3, $4, $5)` + articleReturning

	article, err = getOne[entity.Article](ctx, repo.db, query,
		a.Title, a.Topic, a.Author, a.Body, imageURL)
	if err != nil {
		err = translateForeignKey(err, map[string]interface{}{"topic": a.Topic, "user": a.Author})
		return nil, fmt.Errorf("Create: %w", err)
	}
	return article, nil
}

func (repo *ArticleRepo) AddVotes(ctx context.Context, id int64, delta int) (article *entity.Article, err error) {
	ctx, done := instrument(ctx, "article.add_votes")
	defer done(&err)

	const query = `
UPDATE articles SET votes = votes + $1
WHERE article_id = $2` + articleReturning + `,
  (SELECT COUNT(*)::int FROM comments WHERE comments.article_id = articles.article_id) AS comment_count`

	article, err = getOne[entity.Article](ctx, repo.db, query, delta, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.NewNotFound("article", id)
	}
	if err != nil {
		return nil, fmt.Errorf("AddVotes: %w", err)
	}
	return article, nil
}
