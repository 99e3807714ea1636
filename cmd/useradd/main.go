package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/evgeniy-krivenko/smart-notes/internal/config"
	"github.com/evgeniy-krivenko/smart-notes/internal/entity"
	"github.com/evgeniy-krivenko/smart-notes/internal/identity"
	"github.com/evgeniy-krivenko/smart-notes/internal/migrations"
	"github.com/evgeniy-krivenko/smart-notes/internal/repository"
	"github.com/evgeniy-krivenko/smart-notes/pkg/database"
	"github.com/evgeniy-krivenko/smart-notes/pkg/logger/slogx"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("useradd: %v", err)
	}
}

func run() error {
	username := flag.String("username", "", "login of the new user")
	password := flag.String("password", "", "password of the new user")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Parse()
	if err != nil {
		return fmt.Errorf("parse cfg: %v", err)
	}

	if err := slogx.InitGlobal(os.Stderr, cfg.App.LogLevel, cfg.App.Pretty); err != nil {
		return fmt.Errorf("init logger: %v", err)
	}

	if cfg.App.Storage != config.StoragePostgres {
		return fmt.Errorf("useradd needs postgres storage, got %q", cfg.App.Storage)
	}

	pool, err := database.NewPGX(ctx, database.NewOptions(
		cfg.Database.Addr(),
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Name,
		database.WithLogger(slogx.Default()),
	))
	if err != nil {
		return fmt.Errorf("connect to database: %v", err)
	}
	defer pool.Close()

	if err := migrations.Up(ctx, pool); err != nil {
		return fmt.Errorf("migrate database: %v", err)
	}

	ident, err := identity.New(identity.NewOptions(
		repository.New(database.NewDatabase(pool)),
		[]byte(cfg.Auth.Secret),
	))
	if err != nil {
		return fmt.Errorf("init identity: %v", err)
	}

	u, err := ident.CreateUser(ctx, entity.Credentials{Username: *username, Password: *password})
	if err != nil {
		return err
	}

	slogx.Info(ctx, "user added", slogx.UserId(u.ID), slog.String("username", u.Username))
	return nil
}
