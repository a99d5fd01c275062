// Package comment provides HTTP handlers for article comments.
package comment

import (
	"time"

	"ncnews/internal/domain/entity"
)

// DTO represents the JSON structure for a comment.
type DTO struct {
	ID        int64     `json:"comment_id" example:"19"`
	ArticleID int64     `json:"article_id" example:"2"`
	Author    string    `json:"author" example:"butter_bridge"`
	Body      string    `json:"body" example:"The beautiful thing about treasure is that it exists."`
	Votes     int       `json:"votes" example:"0"`
	CreatedAt time.Time `json:"created_at" example:"2020-04-06T12:17:00Z"`
}

func toDTO(c *entity.Comment) DTO {
	return DTO{
		ID:        c.ID,
		ArticleID: c.ArticleID,
		Author:    c.Author,
		Body:      c.Body,
		Votes:     c.Votes,
		CreatedAt: c.CreatedAt,
	}
}

type ListResponse struct {
	Comments []DTO `json:"comments"`
}

type ItemResponse struct {
	Comment DTO `json:"comment"`
}

// CreateRequest is the body of POST /api/articles/{article_id}/comments.
type CreateRequest struct {
	Username string `json:"username" validate:"required" example:"butter_bridge"`
	Body     string `json:"body" validate:"required" example:"x"`
}
