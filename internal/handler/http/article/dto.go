// Package article provides HTTP handlers for reading, listing, publishing and
// voting on articles.
package article

import (
	"time"

	"ncnews/internal/domain/entity"
)

// DTO represents the JSON structure for an article. Body is omitted from list
// responses.
type DTO struct {
	ID           int64     `json:"article_id" example:"1"`
	Title        string    `json:"title" example:"Living in the shadow of a great man"`
	Topic        string    `json:"topic" example:"mitch"`
	Author       string    `json:"author" example:"butter_bridge"`
	Body         string    `json:"body,omitempty" example:"I find this existence challenging"`
	CreatedAt    time.Time `json:"created_at" example:"2020-07-09T20:11:00Z"`
	Votes        int       `json:"votes" example:"100"`
	ImageURL     string    `json:"article_img_url" example:"https://images.pexels.com/photos/158651/news-newsletter-newspaper-information-158651.jpeg?w=700&h=700"`
	CommentCount int       `json:"comment_count" example:"11"`
}

func toDTO(a *entity.Article) DTO {
	return DTO{
		ID:           a.ID,
		Title:        a.Title,
		Topic:        a.Topic,
		Author:       a.Author,
		Body:         a.Body,
		CreatedAt:    a.CreatedAt,
		Votes:        a.Votes,
		ImageURL:     a.ImageURL,
		CommentCount: a.CommentCount,
	}
}

// ListResponse is the envelope for GET /api/articles.
type ListResponse struct {
	Articles   []DTO `json:"articles"`
	TotalCount int64 `json:"total_count" example:"13"`
}

// ItemResponse is the envelope for a single article.
type ItemResponse struct {
	Article DTO `json:"article"`
}

// CreateRequest is the body of POST /api/articles.
type CreateRequest struct {
	Title    string `json:"title" validate:"required" example:"Seven inspirational thought leaders from Manchester UK"`
	Topic    string `json:"topic" validate:"required" example:"mitch"`
	Author   string `json:"author" validate:"required" example:"rogersop"`
	Body     string `json:"body" validate:"required" example:"Who are we kidding, there is only one, and it's Mitch!"`
	ImageURL string `json:"article_img_url,omitempty" validate:"omitempty,http_url"`
}
