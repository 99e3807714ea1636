package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/evgeniy-krivenko/smart-notes/internal/entity"
	"github.com/evgeniy-krivenko/smart-notes/internal/repository/converter"
	notesrepo "github.com/evgeniy-krivenko/smart-notes/internal/repository/notes/gen"
)

const uniqueViolation = "23505"

func (r *Repo) CreateUser(ctx context.Context, username string, passwordHash []byte) (entity.User, error) {
	row, err := r.notesDB.CreateUser(ctx, notesrepo.CreateUserParams{
		Username:     username,
		PasswordHash: passwordHash,
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return entity.User{}, entity.ErrUserExists
		}
		return entity.User{}, fmt.Errorf("create user: %v", err)
	}

	return converter.ConvertUserToEntity(row), nil
}

func (r *Repo) GetUser(ctx context.Context, id int64) (entity.User, error) {
	row, err := r.notesDB.GetUser(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.User{}, entity.ErrUserNotFound
		}
		return entity.User{}, fmt.Errorf("get user: %v", err)
	}

	return converter.ConvertUserToEntity(row), nil
}

func (r *Repo) GetUserByUsername(ctx context.Context, username string) (entity.User, error) {
	row, err := r.notesDB.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.User{}, entity.ErrUserNotFound
		}
		return entity.User{}, fmt.Errorf("get user by username: %v", err)
	}

	return converter.ConvertUserToEntity(row), nil
}
