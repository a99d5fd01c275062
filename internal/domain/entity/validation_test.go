package entity

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateImageURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{"https url", "https://images.pexels.com/photos/1/a.jpeg", false},
		{"http url with query", "http://example.com/a.png?w=700&h=700", false},
		{"empty", "", true},
		{"no scheme", "example.com/a.png", true},
		{"ftp scheme", "ftp://example.com/a.png", true},
		{"missing host", "https:///a.png", true},
		{"too long", "https://example.com/" + strings.Repeat("a", maxURLLength), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateImageURL(tt.url)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidInput))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNewArticle_Validate(t *testing.T) {
	valid := NewArticle{Title: "t", Topic: "cats", Author: "rogersop", Body: "b"}

	tests := []struct {
		name      string
		mutate    func(a *NewArticle)
		wantField string
	}{
		{"valid without image", func(a *NewArticle) {}, ""},
		{"valid with image", func(a *NewArticle) { a.ImageURL = "https://example.com/x.jpg" }, ""},
		{"missing title", func(a *NewArticle) { a.Title = "" }, "title"},
		{"blank topic", func(a *NewArticle) { a.Topic = "   " }, "topic"},
		{"missing author", func(a *NewArticle) { a.Author = "" }, "author"},
		{"missing body", func(a *NewArticle) { a.Body = "" }, "body"},
		{"bad image", func(a *NewArticle) { a.ImageURL = "not a url" }, "article_img_url"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := valid
			tt.mutate(&a)
			err := a.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var ve *ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, tt.wantField, ve.Field)
		})
	}
}

func TestNewComment_Validate(t *testing.T) {
	tests := []struct {
		name      string
		comment   NewComment
		wantField string
	}{
		{"valid", NewComment{ArticleID: 2, Author: "butter_bridge", Body: "x"}, ""},
		{"zero article", NewComment{ArticleID: 0, Author: "butter_bridge", Body: "x"}, "article_id"},
		{"missing username", NewComment{ArticleID: 2, Body: "x"}, "username"},
		{"missing body", NewComment{ArticleID: 2, Author: "butter_bridge"}, "body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.comment.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var ve *ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, tt.wantField, ve.Field)
		})
	}
}
