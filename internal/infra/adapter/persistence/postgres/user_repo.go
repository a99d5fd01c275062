package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"ncnews/internal/domain/entity"
	"ncnews/internal/repository"
)

type UserRepo struct {
	db DB
}

func NewUserRepo(db DB) repository.UserRepository {
	return &UserRepo{db: db}
}

const userColumns = `username, name, avatar_url`

func (repo *UserRepo) List(ctx context.Context) (users []*entity.User, err error) {
	ctx, done := instrument(ctx, "user.list")
	defer done(&err)

	const query = `SELECT ` + userColumns + ` FROM users ORDER BY username`
	users, err = selectAll[entity.User](ctx, repo.db, query)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	return users, nil
}

func (repo *UserRepo) Get(ctx context.Context, username string) (user *entity.User, err error) {
	ctx, done := instrument(ctx, "user.get")
	defer done(&err)

	const query = `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	user, err = getOne[entity.User](ctx, repo.db, query, username)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.NewNotFound("user", username)
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return user, nil
}

func (repo *UserRepo) Exists(ctx context.Context, username string) (ok bool, err error) {
	ctx, done := instrument(ctx, "user.exists")
	defer done(&err)

	const query = `SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`
	ok, err = scalar[bool](ctx, repo.db, query, username)
	if err != nil {
		return false, fmt.Errorf("Exists: %w", err)
	}
	return ok, nil
}
