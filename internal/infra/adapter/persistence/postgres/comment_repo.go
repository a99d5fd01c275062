package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"ncnews/internal/common/pagination"
	"ncnews/internal/domain/criteria"
	"ncnews/internal/domain/entity"
	"ncnews/internal/repository"
)

type CommentRepo struct {
	db DB
}

func NewCommentRepo(db DB) repository.CommentRepository {
	return &CommentRepo{db: db}
}

const commentColumns = `comment_id, article_id, author, body, votes, created_at`

const commentSelect = `SELECT comments.comment_id, comments.article_id, comments.author,
       comments.body, comments.votes, comments.created_at
FROM comments`

func (repo *CommentRepo) ListByArticle(ctx context.Context, articleID int64, sort criteria.Sort, page pagination.Params) (comments []*entity.Comment, err error) {
	ctx, done := instrument(ctx, "comment.list_by_article")
	defer done(&err)

	if sort.Column == "" {
		sort = criteria.DefaultSort(criteria.CommentSortFields)
	}

	query, args := NewQuery(commentSelect).
		Where("comments.article_id", articleID).
		OrderBy(sort, "comments.comment_id").
		Paginate(page).
		Build()

	comments, err = selectAll[entity.Comment](ctx, repo.db, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ListByArticle: %w", err)
	}
	return comments, nil
}

func (repo *CommentRepo) Get(ctx context.Context, id int64) (comment *entity.Comment, err error) {
	ctx, done := instrument(ctx, "comment.get")
	defer done(&err)

	query, args := NewQuery(commentSelect).Where("comments.comment_id", id).Build()
	comment, err = getOne[entity.Comment](ctx, repo.db, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.NewNotFound("comment", id)
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return comment, nil
}

func (repo *CommentRepo) Create(ctx context.Context, c entity.NewComment) (comment *entity.Comment, err error) {
	ctx, done := instrument(ctx, "comment.create")
	defer done(&err)

	const query = `
INSERT INTO comments (article_id, author, body)
VALUES ($1, $2, $3)
RETURNING ` + commentColumns

	comment, err = getOne[entity.Comment](ctx, repo.db, query, c.ArticleID, c.Author, c.Body)
	if err != nil {
		err = translateForeignKey(err, map[string]interface{}{"article": c.ArticleID, "user": c.Author})
		return nil, fmt.Errorf("Create: %w", err)
	}
	return comment, nil
}

func (repo *CommentRepo) AddVotes(ctx context.Context, id int64, delta int) (comment *entity.Comment, err error) {
	ctx, done := instrument(ctx, "comment.add_votes")
	defer done(&err)

	const query = `
UPDATE comments SET votes = votes + $1
WHERE comment_id = $2
RETURNING ` + commentColumns

	comment, err = getOne[entity.Comment](ctx, repo.db, query, delta, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.NewNotFound("comment", id)
	}
	if err != nil {
		return nil, fmt.Errorf("AddVotes: %w", err)
	}
	return comment, nil
}

func (repo *CommentRepo) Delete(ctx context.Context, id int64) (err error) {
	ctx, done := instrument(ctx, "comment.delete")
	defer done(&err)

	const query = `DELETE FROM comments WHERE comment_id = $1`
	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("Delete: RowsAffected: %w", err)
	}
	if n == 0 {
		return entity.NewNotFound("comment", id)
	}
	return nil
}
