package topic_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"ncnews/internal/domain/entity"
	"ncnews/internal/handler/http/apierror"
	"ncnews/internal/handler/http/topic"
)

type stubService struct {
	topics []*entity.Topic
	err    error
}

func (s stubService) List(context.Context) ([]*entity.Topic, error) { return s.topics, s.err }

func TestListHandler(t *testing.T) {
	tests := []struct {
		name     string
		svc      stubService
		wantCode int
		wantBody string
	}{
		{
			name: "topics",
			svc: stubService{topics: []*entity.Topic{
				{Slug: "cats", Description: "Not dogs"},
				{Slug: "mitch", Description: "The man, the Mitch, the legend"},
			}},
			wantCode: http.StatusOK,
			wantBody: `{"topics":[{"slug":"cats","description":"Not dogs"},{"slug":"mitch","description":"The man, the Mitch, the legend"}]}`,
		},
		{
			name:     "no topics is an empty array",
			svc:      stubService{},
			wantCode: http.StatusOK,
			wantBody: `{"topics":[]}`,
		},
		{
			name:     "storage failure",
			svc:      stubService{err: errors.New("connection refused")},
			wantCode: http.StatusInternalServerError,
			wantBody: `{"msg":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := topic.ListHandler{Svc: tt.svc, Errors: apierror.Default(nil)}
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/topics", nil))

			if rr.Code != tt.wantCode {
				t.Fatalf("status = %d, want %d", rr.Code, tt.wantCode)
			}
			if got := rr.Body.String(); got != tt.wantBody+"\n" && got != tt.wantBody {
				t.Errorf("body = %s, want %s", got, tt.wantBody)
			}
		})
	}
}
