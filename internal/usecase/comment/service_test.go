package comment_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ncnews/internal/common/pagination"
	"ncnews/internal/domain/criteria"
	"ncnews/internal/domain/entity"
	"ncnews/internal/repository"
	commentUC "ncnews/internal/usecase/comment"
)

/* ───────── stubs ───────── */

type stubComments struct {
	byArticle map[int64][]*entity.Comment
	all       map[int64]*entity.Comment
	nextID    int64
	listErr   error
	created   int
}

func newStubComments() *stubComments {
	c := &entity.Comment{ID: 1, ArticleID: 9, Author: "butter_bridge", Body: "Oh, I've got compassion running out of my nose, pal!", Votes: 16, CreatedAt: time.Now()}
	return &stubComments{
		byArticle: map[int64][]*entity.Comment{9: {c}},
		all:       map[int64]*entity.Comment{1: c},
		nextID:    19,
	}
}

func (s *stubComments) ListByArticle(_ context.Context, id int64, _ criteria.Sort, _ pagination.Params) ([]*entity.Comment, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	out := s.byArticle[id]
	if out == nil {
		out = []*entity.Comment{}
	}
	return out, nil
}

func (s *stubComments) Get(_ context.Context, id int64) (*entity.Comment, error) {
	c, ok := s.all[id]
	if !ok {
		return nil, entity.NewNotFound("comment", id)
	}
	return c, nil
}

func (s *stubComments) Create(_ context.Context, in entity.NewComment) (*entity.Comment, error) {
	s.created++
	c := &entity.Comment{ID: s.nextID, ArticleID: in.ArticleID, Author: in.Author, Body: in.Body}
	s.all[c.ID] = c
	s.nextID++
	return c, nil
}

func (s *stubComments) AddVotes(_ context.Context, id int64, delta int) (*entity.Comment, error) {
	c, ok := s.all[id]
	if !ok {
		return nil, entity.NewNotFound("comment", id)
	}
	c.Votes += delta
	return c, nil
}

func (s *stubComments) Delete(_ context.Context, id int64) error {
	if _, ok := s.all[id]; !ok {
		return entity.NewNotFound("comment", id)
	}
	delete(s.all, id)
	return nil
}

type stubArticles struct {
	repository.ArticleRepository
	known map[int64]bool
}

func (s *stubArticles) Exists(_ context.Context, id int64) (bool, error) {
	return s.known[id], nil
}

type stubUsers struct {
	repository.UserRepository
	known map[string]bool
}

func (s *stubUsers) Exists(_ context.Context, u string) (bool, error) {
	return s.known[u], nil
}

func newService() (*commentUC.Service, *stubComments) {
	comments := newStubComments()
	return &commentUC.Service{
		Comments: comments,
		Articles: &stubArticles{known: map[int64]bool{1: true, 2: true, 9: true}},
		Users:    &stubUsers{known: map[string]bool{"butter_bridge": true, "lurker": true}},
	}, comments
}

/* ───────── ListByArticle ───────── */

func TestService_ListByArticle(t *testing.T) {
	tests := []struct {
		name    string
		article int64
		wantLen int
		wantErr string
	}{
		{name: "article with comments", article: 9, wantLen: 1},
		{name: "article without comments", article: 2, wantLen: 0},
		{name: "unknown article", article: 1000, wantErr: "article not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newService()

			got, err := svc.ListByArticle(context.Background(), tt.article, criteria.Sort{}, pagination.Params{})

			if tt.wantErr != "" {
				var nf *entity.NotFoundError
				require.ErrorAs(t, err, &nf)
				assert.Equal(t, tt.wantErr, nf.Error())
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, got)
			assert.Len(t, got, tt.wantLen)
		})
	}
}

func TestService_ListByArticle_RepositoryError(t *testing.T) {
	svc, comments := newService()
	boom := errors.New("timeout")
	comments.listErr = boom

	_, err := svc.ListByArticle(context.Background(), 9, criteria.Sort{}, pagination.Params{})
	assert.ErrorIs(t, err, boom)
}

/* ───────── Create ───────── */

func TestService_Create(t *testing.T) {
	tests := []struct {
		name     string
		in       entity.NewComment
		wantKind error
		wantMsg  string
	}{
		{name: "ok", in: entity.NewComment{ArticleID: 2, Author: "butter_bridge", Body: "x"}},
		{name: "missing body", in: entity.NewComment{ArticleID: 2, Author: "butter_bridge"}, wantKind: entity.ErrInvalidInput},
		{name: "missing username", in: entity.NewComment{ArticleID: 2, Body: "x"}, wantKind: entity.ErrInvalidInput},
		{name: "unknown article", in: entity.NewComment{ArticleID: 1000, Author: "butter_bridge", Body: "x"}, wantKind: entity.ErrNotFound, wantMsg: "article not found"},
		{name: "unknown user", in: entity.NewComment{ArticleID: 2, Author: "nobody", Body: "x"}, wantKind: entity.ErrNotFound, wantMsg: "user not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, comments := newService()

			got, err := svc.Create(context.Background(), tt.in)

			if tt.wantKind != nil {
				require.ErrorIs(t, err, tt.wantKind)
				if tt.wantMsg != "" {
					var nf *entity.NotFoundError
					require.ErrorAs(t, err, &nf)
					assert.Equal(t, tt.wantMsg, nf.Error())
				}
				assert.Zero(t, comments.created)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(2), got.ArticleID)
			assert.Equal(t, "butter_bridge", got.Author)
		})
	}
}

/* ───────── AddVotes / Delete ───────── */

func TestService_AddVotes(t *testing.T) {
	svc, _ := newService()

	got, err := svc.AddVotes(context.Background(), 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 17, got.Votes)

	got, err = svc.AddVotes(context.Background(), 1, -20)
	require.NoError(t, err)
	assert.Equal(t, -3, got.Votes)

	_, err = svc.AddVotes(context.Background(), 1000, 1)
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestService_Delete_Twice(t *testing.T) {
	svc, _ := newService()

	require.NoError(t, svc.Delete(context.Background(), 1))

	err := svc.Delete(context.Background(), 1)
	var nf *entity.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "comment not found", nf.Error())
}
