// Package entity defines the core domain records of the news API: topics,
// articles, comments and users, together with the domain errors raised when
// they cannot be found or a request for them is malformed.
package entity

import "time"

// DefaultArticleImageURL is stored when an article is created without an image.
const DefaultArticleImageURL = "https://images.pexels.com/photos/97050/pexels-photo-97050.jpeg?w=700&h=700"

// Article is a published article. CommentCount is derived when the article
// is read and is never stored.
type Article struct {
	ID           int64     `db:"article_id"`
	Title        string    `db:"title"`
	Topic        string    `db:"topic"`
	Author       string    `db:"author"`
	Body         string    `db:"body"`
	CreatedAt    time.Time `db:"created_at"`
	Votes        int       `db:"votes"`
	ImageURL     string    `db:"article_img_url"`
	CommentCount int       `db:"comment_count"`
}

// NewArticle holds the fields a client supplies when creating an article.
type NewArticle struct {
	Title    string
	Topic    string
	Author   string
	Body     string
	ImageURL string
}

// Validate checks required fields and the optional image URL.
func (a NewArticle) Validate() error {
	for _, f := range []struct{ name, value string }{
		{"title", a.Title},
		{"topic", a.Topic},
		{"author", a.Author},
		{"body", a.Body},
	} {
		if err := requireNonBlank(f.name, f.value); err != nil {
			return err
		}
	}
	if a.ImageURL != "" {
		return ValidateImageURL(a.ImageURL)
	}
	return nil
}
