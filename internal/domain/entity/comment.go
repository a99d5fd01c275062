package entity

import "time"

// Comment is a comment left on an article.
type Comment struct {
	ID        int64     `db:"comment_id"`
	ArticleID int64     `db:"article_id"`
	Author    string    `db:"author"`
	Body      string    `db:"body"`
	Votes     int       `db:"votes"`
	CreatedAt time.Time `db:"created_at"`
}

// NewComment holds the fields required to post a comment on an article.
type NewComment struct {
	ArticleID int64
	Author    string
	Body      string
}

// Validate checks that the comment has an author, a body and a parent article.
func (c NewComment) Validate() error {
	if c.ArticleID <= 0 {
		return &ValidationError{Field: "article_id", Message: "must be positive"}
	}
	if err := requireNonBlank("username", c.Author); err != nil {
		return err
	}
	return requireNonBlank("body", c.Body)
}
