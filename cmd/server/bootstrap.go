package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/evgeniy-krivenko/smart-notes/internal/config"
	"github.com/evgeniy-krivenko/smart-notes/internal/entity"
	"github.com/evgeniy-krivenko/smart-notes/pkg/logger/slogx"
)

type userCreator interface {
	CreateUser(ctx context.Context, creds entity.Credentials) (entity.User, error)
}

// bootstrapUser creates the configured account so a fresh store, in-memory
// included, has someone to log in as.
func bootstrapUser(ctx context.Context, users userCreator, cfg config.AuthConfig) error {
	if cfg.BootstrapUsername == "" || cfg.BootstrapPassword == "" {
		return nil
	}

	_, err := users.CreateUser(ctx, entity.Credentials{
		Username: cfg.BootstrapUsername,
		Password: cfg.BootstrapPassword,
	})
	if errors.Is(err, entity.ErrUserExists) {
		slogx.Debug(ctx, "bootstrap user already exists", slog.String("username", cfg.BootstrapUsername))
		return nil
	}
	if err != nil {
		return fmt.Errorf("bootstrap user: %v", err)
	}

	return nil
}
