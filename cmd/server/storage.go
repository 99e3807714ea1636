package main

import (
	"context"
	"fmt"

	"github.com/evgeniy-krivenko/smart-notes/internal/config"
	"github.com/evgeniy-krivenko/smart-notes/internal/entity"
	"github.com/evgeniy-krivenko/smart-notes/internal/migrations"
	"github.com/evgeniy-krivenko/smart-notes/internal/repository"
	"github.com/evgeniy-krivenko/smart-notes/internal/repository/inmem"
	"github.com/evgeniy-krivenko/smart-notes/pkg/database"
	"github.com/evgeniy-krivenko/smart-notes/pkg/logger/slogx"
)

type repo interface {
	SaveNote(ctx context.Context, note entity.Note) (entity.Note, error)
	GetNote(ctx context.Context, id int64) (entity.Note, error)
	GetNotesByUserID(ctx context.Context, userID int64) ([]entity.Note, error)
	UpdateNote(ctx context.Context, id int64, draft entity.NoteDraft) (entity.Note, error)
	DeleteNote(ctx context.Context, id int64) error

	CreateUser(ctx context.Context, username string, passwordHash []byte) (entity.User, error)
	GetUser(ctx context.Context, id int64) (entity.User, error)
	GetUserByUsername(ctx context.Context, username string) (entity.User, error)
}

type txManager interface {
	RunInTx(ctx context.Context, f func(context.Context) error) error
}

type pinger interface {
	Ping(ctx context.Context) error
}

type storage struct {
	repo   repo
	tx     txManager
	pinger pinger
	close  func()
}

func openStorage(ctx context.Context, cfg config.Config) (*storage, error) {
	if cfg.App.Storage == config.StorageMemory {
		slogx.Warn(ctx, "using in-memory storage, data is lost on restart")

		r := inmem.New()
		return &storage{repo: r, tx: r, pinger: r, close: func() {}}, nil
	}

	pool, err := database.NewPGX(ctx, database.NewOptions(
		cfg.Database.Addr(),
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Name,
		database.WithRetryAttempts(cfg.Database.RetryAttempts),
		database.WithMaxConns(cfg.Database.MaxConns),
		database.WithLogger(slogx.Default()),
	))
	if err != nil {
		return nil, fmt.Errorf("connect to database: %v", err)
	}

	if err := migrations.Up(ctx, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("migrate database: %v", err)
	}

	db := database.NewDatabase(pool)

	return &storage{
		repo:   repository.New(db),
		tx:     db,
		pinger: db,
		close:  pool.Close,
	}, nil
}
